package client

import (
	"context"

	"github.com/apicall-dev/apicall/internal/transport"
)

// Streams exposes live event subscriptions over the socket transport. It
// publishes no OperationSpecs table; the upstream stream API ships no
// parameter metadata, so signature queries report as unavailable.
type Streams struct {
	stream transport.Subscriber
}

// SubscribeBlocks waits for the next block event. An optional first argument
// is forwarded as the subscription filter.
func (s *Streams) SubscribeBlocks(ctx context.Context, args ...any) (any, error) {
	return s.stream.Subscribe(ctx, "/blocks", "block", "subscribe", firstOrNil(args))
}

// SubscribeTransfers waits for the next transfer event. An optional first
// argument is forwarded as the subscription filter.
func (s *Streams) SubscribeTransfers(ctx context.Context, args ...any) (any, error) {
	return s.stream.Subscribe(ctx, "/transfers", "transfer", "subscribe", firstOrNil(args))
}

func firstOrNil(args []any) any {
	if len(args) > 0 {
		return args[0]
	}
	return nil
}
