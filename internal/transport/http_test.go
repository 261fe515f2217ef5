package transport

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTP_Call(t *testing.T) {
	t.Run("posts the call envelope and returns the result", func(t *testing.T) {
		var gotEnvelope callEnvelope
		var gotAPIKey string

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotAPIKey = r.Header.Get("X-API-Key")
			assert.NoError(t, json.NewDecoder(r.Body).Decode(&gotEnvelope))
			json.NewEncoder(w).Encode(callResult{Result: map[string]any{"balance": "100"}})
		}))
		defer srv.Close()

		tr := NewHTTP(srv.URL, "secret", 5*time.Second)
		result, err := tr.Call(context.Background(), "account.getNativeBalance", map[string]any{"chain": "eth"}, "0xabc")
		require.NoError(t, err)

		assert.Equal(t, map[string]any{"balance": "100"}, result)
		assert.Equal(t, "secret", gotAPIKey)
		assert.Equal(t, "account.getNativeBalance", gotEnvelope.Method)
		assert.Equal(t, []any{map[string]any{"chain": "eth"}, "0xabc"}, gotEnvelope.Params)
	})

	t.Run("empty args encode as an empty params array", func(t *testing.T) {
		var gotBody map[string]any
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
			json.NewEncoder(w).Encode(callResult{Result: "ok"})
		}))
		defer srv.Close()

		tr := NewHTTP(srv.URL, "", 5*time.Second)
		_, err := tr.Call(context.Background(), "block.getLatestBlock")
		require.NoError(t, err)
		assert.Equal(t, []any{}, gotBody["params"])
	})

	t.Run("remote error envelope becomes an error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			json.NewEncoder(w).Encode(callResult{Error: "address is invalid"})
		}))
		defer srv.Close()

		tr := NewHTTP(srv.URL, "", 5*time.Second)
		_, err := tr.Call(context.Background(), "account.getNativeBalance")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "address is invalid")
	})

	t.Run("non-200 status becomes an error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "nope", http.StatusUnauthorized)
		}))
		defer srv.Close()

		tr := NewHTTP(srv.URL, "", 5*time.Second)
		_, err := tr.Call(context.Background(), "account.getNativeBalance")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "401")
	})

	t.Run("respects context cancellation", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			<-r.Context().Done()
		}))
		defer srv.Close()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		tr := NewHTTP(srv.URL, "", 5*time.Second)
		_, err := tr.Call(ctx, "account.getNativeBalance")
		require.Error(t, err)
	})
}
