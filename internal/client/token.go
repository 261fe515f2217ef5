package client

import (
	"context"

	"github.com/apicall-dev/apicall/internal/dispatch"
	"github.com/apicall-dev/apicall/internal/transport"
)

// Token exposes ERC-20 token queries.
type Token struct {
	caller transport.Caller
}

// GetTokenPrice returns the current price of a token.
func (t *Token) GetTokenPrice(ctx context.Context, args ...any) (any, error) {
	return t.caller.Call(ctx, "token.getTokenPrice", args...)
}

// GetTokenMetadata returns name, symbol, and decimals for a token contract.
func (t *Token) GetTokenMetadata(ctx context.Context, args ...any) (any, error) {
	return t.caller.Call(ctx, "token.getTokenMetadata", args...)
}

// GetTokenAllowance returns the spender allowance for an owner.
func (t *Token) GetTokenAllowance(ctx context.Context, args ...any) (any, error) {
	return t.caller.Call(ctx, "token.getTokenAllowance", args...)
}

// OperationSpecs declares the call shape of every operation in this module.
func (t *Token) OperationSpecs() map[string]dispatch.OpSpec {
	return map[string]dispatch.OpSpec{
		"getTokenPrice":     {OptionalRequestParams: true},
		"getTokenMetadata":  {Params: "addresses []string"},
		"getTokenAllowance": {Params: "address string, ownerAddress string, spenderAddress string"},
	}
}
