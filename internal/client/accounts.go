package client

import (
	"context"

	"github.com/apicall-dev/apicall/internal/dispatch"
	"github.com/apicall-dev/apicall/internal/transport"
)

// Accounts exposes wallet- and address-level queries.
type Accounts struct {
	caller transport.Caller
}

// GetNativeBalance returns the native-token balance for an address.
func (a *Accounts) GetNativeBalance(ctx context.Context, args ...any) (any, error) {
	return a.caller.Call(ctx, "account.getNativeBalance", args...)
}

// GetTokenBalances returns all ERC-20 balances held by an address.
func (a *Accounts) GetTokenBalances(ctx context.Context, args ...any) (any, error) {
	return a.caller.Call(ctx, "account.getTokenBalances", args...)
}

// GetTransactions returns the transaction history of an address.
func (a *Accounts) GetTransactions(ctx context.Context, args ...any) (any, error) {
	return a.caller.Call(ctx, "account.getTransactions", args...)
}

// OperationSpecs declares the call shape of every operation in this module.
func (a *Accounts) OperationSpecs() map[string]dispatch.OpSpec {
	return map[string]dispatch.OpSpec{
		"getNativeBalance": {OptionalRequestParams: true},
		"getTokenBalances": {OptionalRequestParams: true},
		"getTransactions":  {Params: "address string, limit number"},
	}
}
