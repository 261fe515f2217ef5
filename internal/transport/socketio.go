package transport

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"sync/atomic"
	"time"

	"github.com/apicall-dev/apicall/internal/ctxlog"
	"github.com/zishang520/engine.io-client-go/transports"
	"github.com/zishang520/engine.io/v2/types"
	"github.com/zishang520/socket.io-client-go/socket"
)

// streamResult passes the first event (or failure) out of the socket
// callbacks.
type streamResult struct {
	value any
	err   error
}

// SocketIO is the streaming transport behind the streams module. Each
// Subscribe is one short-lived connection.
type SocketIO struct {
	url     string
	timeout time.Duration
}

// NewSocketIO builds the streaming transport for the given endpoint URL.
func NewSocketIO(rawURL string, timeout time.Duration) *SocketIO {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &SocketIO{url: rawURL, timeout: timeout}
}

// Subscribe implements Subscriber. It connects to the configured endpoint,
// emits emitEvent with emitData once connected (when emitEvent is set), and
// resolves with the first payload of the awaited event, bounded by the
// transport timeout.
func (t *SocketIO) Subscribe(ctx context.Context, namespace, event, emitEvent string, emitData any) (any, error) {
	logger := ctxlog.FromContext(ctx).With("transport", "socketio", "url", t.url, "namespace", namespace, "event", event)
	logger.Debug("Stream subscription started")
	defer logger.Debug("Stream subscription finished")

	var isConnected atomic.Bool

	done := make(chan streamResult, 1)
	opCtx, cancel := context.WithTimeout(ctx, t.timeout)
	defer cancel()

	parsedURL, err := url.Parse(t.url)
	if err != nil {
		return nil, fmt.Errorf("failed to parse stream URL: %w", err)
	}

	baseURL := fmt.Sprintf("%s://%s", parsedURL.Scheme, parsedURL.Host)
	opts := socket.DefaultOptions()
	opts.SetPath(parsedURL.Path)
	opts.SetTransports(types.NewSet(transports.WebSocket))

	manager := socket.NewManager(baseURL, opts)
	io := manager.Socket(namespace, opts)
	defer func() {
		logger.Debug("Disconnecting stream client")
		io.Disconnect()
	}()

	io.On(types.EventName("connect"), func(...any) {
		isConnected.Store(true)
		logger.Info("Stream connected.", "sid", io.Id())
		if emitEvent != "" {
			payload, _ := json.Marshal(emitData)
			logger.Debug("Emitting subscribe event.", "emit_event", emitEvent, "data", string(payload))
			io.Emit(emitEvent, emitData)
		}
	})

	io.On(types.EventName("connect_error"), func(errs ...any) {
		if len(errs) > 0 {
			if connErr, ok := errs[0].(error); ok {
				done <- streamResult{err: connErr}
				return
			}
		}
		done <- streamResult{err: fmt.Errorf("stream connection failed")}
	})

	io.On(types.EventName(event), func(data ...any) {
		var payload any
		if len(data) > 0 {
			payload = data[0]
		}
		done <- streamResult{value: payload}
	})

	io.Connect()

	select {
	case <-opCtx.Done():
		if isConnected.Load() {
			return nil, fmt.Errorf("timed out after connecting while waiting for event %q", event)
		}
		return nil, fmt.Errorf("timed out while waiting for initial connection")
	case res := <-done:
		return res.value, res.err
	}
}
