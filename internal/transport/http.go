package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/apicall-dev/apicall/internal/ctxlog"
)

// callEnvelope is the request body the remote endpoint understands.
type callEnvelope struct {
	Method string `json:"method"`
	Params []any  `json:"params"`
}

// callResult is the response envelope.
type callResult struct {
	Result any    `json:"result"`
	Error  string `json:"error,omitempty"`
}

// HTTP posts call envelopes as JSON to a single endpoint.
type HTTP struct {
	endpoint string
	apiKey   string
	client   *http.Client
}

// NewHTTP builds the HTTP transport. The timeout bounds every call made
// through it.
func NewHTTP(endpoint, apiKey string, timeout time.Duration) *HTTP {
	return &HTTP{
		endpoint: endpoint,
		apiKey:   apiKey,
		client: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		},
	}
}

// Call implements Caller.
func (t *HTTP) Call(ctx context.Context, method string, args ...any) (any, error) {
	logger := ctxlog.FromContext(ctx).With("transport", "http", "remote_method", method)

	if args == nil {
		args = []any{}
	}
	body, err := json.Marshal(callEnvelope{Method: method, Params: args})
	if err != nil {
		return nil, fmt.Errorf("failed to encode call %s: %w", method, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, t.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request for %s: %w", method, err)
	}
	req.Header.Set("Content-Type", "application/json")
	if t.apiKey != "" {
		req.Header.Set("X-API-Key", t.apiKey)
	}

	logger.Debug("Sending call envelope.", "endpoint", t.endpoint)
	resp, err := t.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("call %s failed: %w", method, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("call %s failed: remote returned %s", method, resp.Status)
	}

	var out callResult
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("failed to decode response for %s: %w", method, err)
	}
	if out.Error != "" {
		return nil, fmt.Errorf("remote error on %s: %s", method, out.Error)
	}

	logger.Debug("Call envelope resolved.")
	return out.Result, nil
}
