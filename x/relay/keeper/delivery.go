package keeper

import (
	"context"
	"errors"

	"cosmossdk.io/collections"
	sdkerrors "cosmossdk.io/errors"
	"github.com/ethereum/go-ethereum/common"

	"github.com/acurast/hyperdrive-relay/x/relay/types"
)

// ConfirmMessageDelivery marks an outgoing message delivered once enough oracles attest to it.
func (k Keeper) ConfirmMessageDelivery(ctx context.Context, confirmer common.Address, id common.Hash, signatures [][]byte) error {
	msg, err := k.Outgoing.Get(ctx, id.Bytes())
	if errors.Is(err, collections.ErrNotFound) {
		return sdkerrors.Wrapf(types.ErrMessageNotFound, "id %s", id.Hex())
	}
	if err != nil {
		return err
	}
	if msg.Status == types.StatusDelivered {
		return sdkerrors.Wrapf(types.ErrMessageDelivered, "id %s", id.Hex())
	}

	cfg, err := k.Config.Get(ctx)
	if err != nil {
		return err
	}

	digest := types.DeliveryDigest(msg, confirmer)
	if err := k.verifySignatures(ctx, digest, signatures, cfg.MinDeliverySignatures); err != nil {
		return err
	}

	msg.Status = types.StatusDelivered
	msg.DeliveredBy = confirmer
	if err := k.Outgoing.Set(ctx, id.Bytes(), msg); err != nil {
		return err
	}

	event, err := types.NewMessageDeliveredEvent(types.MessageDeliveredEvent{
		ID:        id.Hex(),
		Confirmer: confirmer.Hex(),
	})
	if err != nil {
		return err
	}
	emitEvent(ctx, event)

	return nil
}
