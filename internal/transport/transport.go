// Package transport owns the wire boundary underneath the client graph:
// a JSON-over-HTTP caller for request/response operations and a socket.io
// subscriber for streaming ones. Timeouts and cancellation live here; the
// dispatch layer above adds neither.
package transport

import "context"

// Caller performs one remote call by its dotted method name. Implementations
// must be safe for concurrent use.
type Caller interface {
	Call(ctx context.Context, method string, args ...any) (any, error)
}

// Subscriber performs one short-lived streaming subscription: connect, emit
// an optional subscribe event, and resolve with the first payload of the
// awaited event.
type Subscriber interface {
	Subscribe(ctx context.Context, namespace, event, emitEvent string, emitData any) (any, error)
}
