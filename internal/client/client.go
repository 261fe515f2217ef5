// Package client is the pre-generated API client graph the dispatcher
// introspects: a struct of module fields, each exposing remote operations
// with the uniform signature func(context.Context, ...any) (any, error) and
// a declared metadata table for signature hints. The graph is immutable
// after construction.
package client

import (
	"time"

	"github.com/apicall-dev/apicall/internal/transport"
)

// Config carries everything needed to assemble the client graph.
type Config struct {
	BaseURL   string
	StreamURL string
	APIKey    string
	Timeout   time.Duration
}

// Client is the callable object graph. Exported struct-pointer fields are
// the dispatchable modules; Transport is reserved for the wire layer and is
// excluded from all discovery.
type Client struct {
	Transport transport.Caller

	Accounts *Accounts
	Blocks   *Blocks
	Nft      *Nft
	Resolve  *Resolve
	Streams  *Streams
	Token    *Token
}

// New assembles the client graph over the default HTTP and socket.io
// transports.
func New(cfg Config) *Client {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}
	return NewWithTransport(
		transport.NewHTTP(cfg.BaseURL, cfg.APIKey, cfg.Timeout),
		transport.NewSocketIO(cfg.StreamURL, cfg.Timeout),
	)
}

// NewWithTransport wires the module graph over explicit transports. Tests
// substitute fakes through it.
func NewWithTransport(caller transport.Caller, stream transport.Subscriber) *Client {
	return &Client{
		Transport: caller,
		Accounts:  &Accounts{caller: caller},
		Blocks:    &Blocks{caller: caller},
		Nft:       &Nft{caller: caller},
		Resolve:   &Resolve{caller: caller},
		Streams:   &Streams{stream: stream},
		Token:     &Token{caller: caller},
	}
}
