package coerce

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildArgs_structuredParams(t *testing.T) {
	t.Run("round-trips any JSON value as the first argument", func(t *testing.T) {
		cases := map[string]any{
			`{"chain":"eth","address":"0xabc"}`: map[string]any{"chain": "eth", "address": "0xabc"},
			`[1,2,3]`:                           []any{float64(1), float64(2), float64(3)},
			`"hello"`:                           "hello",
			`42.5`:                              float64(42.5),
			`true`:                              true,
			`null`:                              nil,
		}
		for raw, want := range cases {
			args, err := BuildArgs(raw, nil)
			require.NoError(t, err, "params: %s", raw)
			require.Len(t, args, 1)
			assert.Equal(t, want, args[0])
		}
	})

	t.Run("malformed params fail with ParseError and no argument list", func(t *testing.T) {
		args, err := BuildArgs("{invalid", nil)
		require.Error(t, err)
		assert.Nil(t, args)

		var parseErr *ParseError
		require.ErrorAs(t, err, &parseErr)
		assert.Equal(t, "{invalid", parseErr.Raw)
		assert.Error(t, parseErr.Unwrap())
	})

	t.Run("params are prepended before positional values", func(t *testing.T) {
		args, err := BuildArgs(`{"limit":5}`, []string{"0xabc"})
		require.NoError(t, err)
		require.Len(t, args, 2)
		assert.Equal(t, map[string]any{"limit": float64(5)}, args[0])
		assert.Equal(t, "0xabc", args[1])
	})
}

func TestBuildArgs_positionalTokens(t *testing.T) {
	t.Run("JSON-shaped tokens are typed, the rest stay literal strings", func(t *testing.T) {
		args, err := BuildArgs("", []string{"hello", "42", "true", "not-json-{"})
		require.NoError(t, err)
		assert.Equal(t, []any{"hello", float64(42), true, "not-json-{"}, args)
	})

	t.Run("quoted token forces a string", func(t *testing.T) {
		args, err := BuildArgs("", []string{`"42"`})
		require.NoError(t, err)
		assert.Equal(t, []any{"42"}, args)
	})

	t.Run("token order is preserved", func(t *testing.T) {
		args, err := BuildArgs("", []string{"c", "a", "b"})
		require.NoError(t, err)
		assert.Equal(t, []any{"c", "a", "b"}, args)
	})
}

func TestBuildArgs_emptyInput(t *testing.T) {
	args, err := BuildArgs("", nil)
	require.NoError(t, err)
	require.NotNil(t, args)
	assert.Empty(t, args)
}
