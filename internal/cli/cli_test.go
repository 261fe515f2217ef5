package cli

import (
	"bytes"
	"testing"

	"github.com/apicall-dev/apicall/internal/app"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	t.Run("call with params and positional tokens", func(t *testing.T) {
		var out bytes.Buffer
		cfg, shouldExit, err := Parse([]string{
			"--params", `{"chain":"eth"}`,
			"--base-url", "https://api.example.com",
			"accounts", "getNativeBalance", "0xabc", "42",
		}, &out)
		require.NoError(t, err)
		require.False(t, shouldExit)

		assert.Equal(t, app.ModeCall, cfg.Mode)
		assert.Equal(t, "accounts", cfg.Module)
		assert.Equal(t, "getNativeBalance", cfg.Method)
		assert.Equal(t, []string{"0xabc", "42"}, cfg.Positional)
		assert.Equal(t, `{"chain":"eth"}`, cfg.RawParams)
		assert.Equal(t, "https://api.example.com", cfg.BaseURL)
	})

	t.Run("shorthand params flag", func(t *testing.T) {
		var out bytes.Buffer
		cfg, _, err := Parse([]string{"-p", `{"a":1}`, "accounts", "getNativeBalance"}, &out)
		require.NoError(t, err)
		assert.Equal(t, `{"a":1}`, cfg.RawParams)
	})

	t.Run("list mode needs no module or method", func(t *testing.T) {
		var out bytes.Buffer
		cfg, shouldExit, err := Parse([]string{"--list"}, &out)
		require.NoError(t, err)
		require.False(t, shouldExit)
		assert.Equal(t, app.ModeList, cfg.Mode)
	})

	t.Run("describe mode", func(t *testing.T) {
		var out bytes.Buffer
		cfg, _, err := Parse([]string{"--describe", "token", "getTokenPrice"}, &out)
		require.NoError(t, err)
		assert.Equal(t, app.ModeDescribe, cfg.Mode)
		assert.Equal(t, "token", cfg.Module)
		assert.Equal(t, "getTokenPrice", cfg.Method)
	})

	t.Run("modules allow-list is split and trimmed", func(t *testing.T) {
		var out bytes.Buffer
		cfg, _, err := Parse([]string{"--modules", "accounts, token ,", "--list"}, &out)
		require.NoError(t, err)
		assert.Equal(t, []string{"accounts", "token"}, cfg.Modules)
	})

	t.Run("no arguments prints usage and exits cleanly", func(t *testing.T) {
		var out bytes.Buffer
		cfg, shouldExit, err := Parse(nil, &out)
		require.NoError(t, err)
		assert.True(t, shouldExit)
		assert.Nil(t, cfg)
		assert.Contains(t, out.String(), "Usage:")
	})

	t.Run("missing method is an exit error", func(t *testing.T) {
		var out bytes.Buffer
		_, _, err := Parse([]string{"accounts"}, &out)
		require.Error(t, err)

		exitErr, ok := err.(*ExitError)
		require.True(t, ok)
		assert.Equal(t, 2, exitErr.Code)
	})

	t.Run("invalid log-format is an exit error", func(t *testing.T) {
		var out bytes.Buffer
		_, _, err := Parse([]string{"--log-format", "xml", "--list"}, &out)
		require.Error(t, err)

		exitErr, ok := err.(*ExitError)
		require.True(t, ok)
		assert.Equal(t, 2, exitErr.Code)
		assert.Contains(t, exitErr.Message, "log-format")
	})

	t.Run("invalid log-level is an exit error", func(t *testing.T) {
		var out bytes.Buffer
		_, _, err := Parse([]string{"--log-level", "loud", "--list"}, &out)
		require.Error(t, err)
		assert.IsType(t, &ExitError{}, err)
	})

	t.Run("unknown flag is an exit error", func(t *testing.T) {
		var out bytes.Buffer
		_, _, err := Parse([]string{"--no-such-flag"}, &out)
		require.Error(t, err)
		assert.IsType(t, &ExitError{}, err)
	})
}
