package keeper

import (
	"context"

	"cosmossdk.io/errors"

	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"

	"github.com/acurast/hyperdrive-relay/x/relay/types"
)

// ReceiveMessage accepts an oracle-attested message from the remote chain and
// hands its payload to the registered recipient. Either everything commits or nothing does.
func (k Keeper) ReceiveMessage(
	ctx context.Context,
	relayer common.Address,
	sender common.Hash,
	nonce common.Hash,
	recipientChain types.ChainTag,
	recipient common.Address,
	payload []byte,
	relayerID common.Hash,
	signatures [][]byte,
) (common.Hash, error) {
	if err := k.guard.enter(); err != nil {
		return common.Hash{}, err
	}
	defer k.guard.exit()

	id := types.IncomingMessageID(sender, nonce)

	received, err := k.Incoming.Has(ctx, id.Bytes())
	if err != nil {
		return common.Hash{}, err
	}
	if received {
		return common.Hash{}, errors.Wrapf(types.ErrMessageReceived, "id %s", id.Hex())
	}

	params, err := k.Params.Get(ctx)
	if err != nil {
		return common.Hash{}, err
	}
	if recipientChain != params.LocalChain {
		return common.Hash{}, errors.Wrapf(types.ErrWrongRecipientChain, "got %s, local chain is %s", recipientChain, params.LocalChain)
	}
	cfg, err := k.Config.Get(ctx)
	if err != nil {
		return common.Hash{}, err
	}

	digest := types.ReceiptDigest(params.RemoteChain, sender, nonce, recipientChain, recipient, payload)
	if err := k.verifySignatures(ctx, digest, signatures, cfg.MinReceiptSignatures); err != nil {
		return common.Hash{}, err
	}

	handler, ok := k.recipients[recipient]
	if !ok {
		return common.Hash{}, errors.Wrapf(types.ErrRecipientNotFound, "%s", recipient.Hex())
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	tmpCtx, commit := sdkCtx.CacheContext()

	msg := types.IncomingMessage{
		OriginChain:      params.RemoteChain,
		Sender:           sender,
		Nonce:            nonce,
		RecipientChain:   recipientChain,
		Recipient:        recipient,
		Payload:          hexutil.Bytes(payload),
		Relayer:          relayer,
		RelayerID:        relayerID,
		ReceivedAtHeight: sdkCtx.BlockHeight(),
		Status:           types.StatusReceived,
	}
	if err := k.Incoming.Set(tmpCtx, id.Bytes(), msg); err != nil {
		return common.Hash{}, err
	}

	if err := handler.ProcessMessage(tmpCtx, k.Address(), sender, payload); err != nil {
		k.Logger().Debug("recipient rejected message", "id", id.Hex(), "recipient", recipient.Hex(), "error", err)
		return common.Hash{}, err
	}

	event, err := types.NewMessageProcessedEvent(types.MessageProcessedEvent{
		ID:        id.Hex(),
		Sender:    sender.Hex(),
		Nonce:     nonce.Hex(),
		Recipient: recipient.Hex(),
		Relayer:   relayer.Hex(),
		RelayerID: relayerID.Hex(),
	})
	if err != nil {
		return common.Hash{}, err
	}
	emitEvent(tmpCtx, event)

	commit()
	return id, nil
}
