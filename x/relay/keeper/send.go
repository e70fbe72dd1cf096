package keeper

import (
	"context"
	"errors"

	"cosmossdk.io/collections"
	sdkerrors "cosmossdk.io/errors"
	"cosmossdk.io/math"

	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"

	"github.com/acurast/hyperdrive-relay/x/relay/types"
)

// SendMessage records an outgoing message for the oracles to pick up and returns its id.
//
// A message with the same (caller, nonce) may be re-sent once its previous
// incarnation has lapsed past its TTL without being delivered; the stored
// record is then replaced.
func (k Keeper) SendMessage(
	ctx context.Context,
	caller common.Address,
	nonce common.Hash,
	recipient common.Hash,
	payload []byte,
	ttl uint64,
	fee math.Int,
) (common.Hash, error) {
	cfg, err := k.Config.Get(ctx)
	if err != nil {
		return common.Hash{}, err
	}
	if err := cfg.CheckTTL(ttl); err != nil {
		return common.Hash{}, err
	}

	if fee.IsNil() {
		fee = math.ZeroInt()
	}
	if fee.IsNegative() {
		return common.Hash{}, sdkerrors.Wrapf(types.ErrInvalidFee, "%s", fee)
	}

	params, err := k.Params.Get(ctx)
	if err != nil {
		return common.Hash{}, err
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	height := sdkCtx.BlockHeight()
	id := types.OutgoingMessageID(caller, nonce)

	existing, err := k.Outgoing.Get(ctx, id.Bytes())
	switch {
	case err == nil:
		if existing.Status == types.StatusDelivered {
			return common.Hash{}, sdkerrors.Wrapf(types.ErrMessageDelivered, "id %s", id.Hex())
		}
		if existing.InFlight(height) {
			return common.Hash{}, sdkerrors.Wrapf(types.ErrMessagePending, "id %s sent at %d with ttl %d", id.Hex(), existing.SentAtHeight, existing.TTL)
		}
	case !errors.Is(err, collections.ErrNotFound):
		return common.Hash{}, err
	}

	msg := types.OutgoingMessage{
		Sender:           caller,
		Nonce:            nonce,
		DestinationChain: params.RemoteChain,
		Recipient:        recipient,
		Payload:          hexutil.Bytes(payload),
		Fee:              fee,
		TTL:              ttl,
		SentAtHeight:     height,
		Status:           types.StatusPending,
	}

	if err := k.Outgoing.Set(ctx, id.Bytes(), msg); err != nil {
		return common.Hash{}, err
	}

	event, err := types.NewMessageReadyToSendEvent(types.MessageReadyToSendEvent{
		ID:               id.Hex(),
		Sender:           caller.Hex(),
		Nonce:            nonce.Hex(),
		DestinationChain: uint8(msg.DestinationChain),
		Recipient:        recipient.Hex(),
		Payload:          msg.Payload.String(),
		TTL:              ttl,
		Fee:              fee.String(),
		SentAtHeight:     height,
	})
	if err != nil {
		return common.Hash{}, err
	}
	emitEvent(ctx, event)

	return id, nil
}
