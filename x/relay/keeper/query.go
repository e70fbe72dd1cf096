package keeper

import (
	"context"
	"errors"

	"cosmossdk.io/collections"
	sdkerrors "cosmossdk.io/errors"
	"github.com/ethereum/go-ethereum/common"

	"github.com/acurast/hyperdrive-relay/x/relay/types"
)

// GetOutgoing returns the outgoing message stored under id.
func (k Keeper) GetOutgoing(ctx context.Context, id common.Hash) (types.OutgoingMessage, error) {
	msg, err := k.Outgoing.Get(ctx, id.Bytes())
	if errors.Is(err, collections.ErrNotFound) {
		return types.OutgoingMessage{}, sdkerrors.Wrapf(types.ErrMessageNotFound, "id %s", id.Hex())
	}
	return msg, err
}

// GetIncoming returns the incoming message stored under id.
func (k Keeper) GetIncoming(ctx context.Context, id common.Hash) (types.IncomingMessage, error) {
	msg, err := k.Incoming.Get(ctx, id.Bytes())
	if errors.Is(err, collections.ErrNotFound) {
		return types.IncomingMessage{}, sdkerrors.Wrapf(types.ErrMessageNotFound, "id %s", id.Hex())
	}
	return msg, err
}

// GetParams returns the module params.
func (k Keeper) GetParams(ctx context.Context) (types.Params, error) {
	return k.Params.Get(ctx)
}
