package keeper

import (
	"context"
	"errors"

	"cosmossdk.io/collections"
	sdkerrors "cosmossdk.io/errors"

	"github.com/acurast/hyperdrive-relay/x/tokenbridge/types"
)

// GetParams returns the bridge params.
func (k Keeper) GetParams(ctx context.Context) (types.Params, error) {
	return k.Params.Get(ctx)
}

// GetOutgoingTransfer returns the transfer recorded under nonce.
func (k Keeper) GetOutgoingTransfer(ctx context.Context, nonce uint64) (types.BridgeTransfer, error) {
	t, err := k.OutgoingTransfers.Get(ctx, nonce)
	if errors.Is(err, collections.ErrNotFound) {
		return types.BridgeTransfer{}, sdkerrors.Wrapf(types.ErrTransferNotFound, "nonce %d", nonce)
	}
	return t, err
}

// GetNextTransferNonce returns the nonce the next outgoing transfer will use.
func (k Keeper) GetNextTransferNonce(ctx context.Context) (uint64, error) {
	return k.NextTransferNonce.Peek(ctx)
}

// IsIncomingNonceUsed reports whether an incoming transfer nonce was already processed.
func (k Keeper) IsIncomingNonceUsed(ctx context.Context, nonce uint32) (bool, error) {
	return k.IncomingTransferNonces.Has(ctx, nonce)
}
