package client

import (
	"context"

	"github.com/apicall-dev/apicall/internal/dispatch"
	"github.com/apicall-dev/apicall/internal/transport"
)

// Nft exposes NFT contract and wallet queries.
type Nft struct {
	caller transport.Caller
}

// GetWalletNfts returns the NFTs held by an address.
func (n *Nft) GetWalletNfts(ctx context.Context, args ...any) (any, error) {
	return n.caller.Call(ctx, "nft.getWalletNfts", args...)
}

// GetContractNfts returns the NFTs minted by a contract.
func (n *Nft) GetContractNfts(ctx context.Context, args ...any) (any, error) {
	return n.caller.Call(ctx, "nft.getContractNfts", args...)
}

// GetNftMetadata returns the metadata of a single token.
func (n *Nft) GetNftMetadata(ctx context.Context, args ...any) (any, error) {
	return n.caller.Call(ctx, "nft.getNftMetadata", args...)
}

// OperationSpecs declares the call shape of every operation in this module.
func (n *Nft) OperationSpecs() map[string]dispatch.OpSpec {
	return map[string]dispatch.OpSpec{
		"getWalletNfts":   {OptionalRequestParams: true},
		"getContractNfts": {OptionalRequestParams: true},
		"getNftMetadata":  {Params: "address string, tokenId string"},
	}
}
