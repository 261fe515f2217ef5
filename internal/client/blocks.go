package client

import (
	"context"

	"github.com/apicall-dev/apicall/internal/dispatch"
	"github.com/apicall-dev/apicall/internal/transport"
)

// Blocks exposes block-level queries.
type Blocks struct {
	caller transport.Caller
}

// GetBlock returns a block by number.
func (b *Blocks) GetBlock(ctx context.Context, args ...any) (any, error) {
	return b.caller.Call(ctx, "block.getBlock", args...)
}

// GetBlockByHash returns a block by hash.
func (b *Blocks) GetBlockByHash(ctx context.Context, args ...any) (any, error) {
	return b.caller.Call(ctx, "block.getBlockByHash", args...)
}

// GetLatestBlock returns the most recent block.
func (b *Blocks) GetLatestBlock(ctx context.Context, args ...any) (any, error) {
	return b.caller.Call(ctx, "block.getLatestBlock", args...)
}

// OperationSpecs declares the call shape of every operation in this module.
func (b *Blocks) OperationSpecs() map[string]dispatch.OpSpec {
	return map[string]dispatch.OpSpec{
		"getBlock":       {Params: "blockNumber number"},
		"getBlockByHash": {Params: "blockHash string"},
		"getLatestBlock": {},
	}
}
