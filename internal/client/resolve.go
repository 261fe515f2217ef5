package client

import (
	"context"

	"github.com/apicall-dev/apicall/internal/dispatch"
	"github.com/apicall-dev/apicall/internal/transport"
)

// Resolve exposes name-service resolution.
type Resolve struct {
	caller transport.Caller
}

// ResolveDomain resolves a name-service domain to an address.
func (r *Resolve) ResolveDomain(ctx context.Context, args ...any) (any, error) {
	return r.caller.Call(ctx, "resolve.resolveDomain", args...)
}

// ResolveAddress reverse-resolves an address to its registered domain.
func (r *Resolve) ResolveAddress(ctx context.Context, args ...any) (any, error) {
	return r.caller.Call(ctx, "resolve.resolveAddress", args...)
}

// OperationSpecs declares the call shape of every operation in this module.
func (r *Resolve) OperationSpecs() map[string]dispatch.OpSpec {
	return map[string]dispatch.OpSpec{
		"resolveDomain":  {Params: "domain string"},
		"resolveAddress": {Params: "address string"},
	}
}
