package keeper

import (
	"context"

	"cosmossdk.io/errors"

	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/ethereum/go-ethereum/common"

	"github.com/acurast/hyperdrive-relay/x/tokenbridge/types"
)

// ProcessMessage handles a payload delivered by the relay.
func (k Keeper) ProcessMessage(ctx context.Context, origin common.Address, sender common.Hash, payload []byte) error {
	if !k.processing.CompareAndSwap(false, true) {
		return types.ErrReentrantCall
	}
	defer k.processing.Store(false)

	params, err := k.Params.Get(ctx)
	if err != nil {
		return err
	}
	if origin != params.RelayContract {
		return errors.Wrapf(types.ErrUnauthorizedOrigin, "got %s", origin.Hex())
	}

	action, err := types.DecodeActionTag(payload)
	if err != nil {
		return err
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	tmpCtx, commit := sdkCtx.CacheContext()

	switch action {
	case types.ActionTransfer:
		err = k.processTransfer(tmpCtx, params, sender, payload)
	case types.ActionEnable:
		err = k.processEnable(tmpCtx, params, sender, payload)
	default:
		err = errors.Wrapf(types.ErrUnsupportedAction, "action %d", action)
	}
	if err != nil {
		return err
	}

	commit()
	return nil
}

func (k Keeper) processTransfer(ctx context.Context, params types.Params, sender common.Hash, payload []byte) error {
	if sender != params.TokenPalletAccount {
		return errors.Wrapf(types.ErrUnauthorizedSender, "got %s", sender.Hex())
	}

	transfer, err := types.DecodeTransfer(payload)
	if err != nil {
		return err
	}
	if transfer.AssetID != types.NativeAssetID {
		return errors.Wrapf(types.ErrUnsupportedAsset, "asset %d", transfer.AssetID)
	}
	if transfer.Recipient == (common.Address{}) {
		return types.ErrInvalidRecipient
	}

	used, err := k.IncomingTransferNonces.Has(ctx, transfer.TransferNonce)
	if err != nil {
		return err
	}
	if used {
		return errors.Wrapf(types.ErrTransferAlreadyReceived, "nonce %d", transfer.TransferNonce)
	}
	if err := k.IncomingTransferNonces.Set(ctx, transfer.TransferNonce); err != nil {
		return err
	}

	if err := k.tokenKeeper.CrosschainMint(ctx, k.Address(), transfer.Recipient, transfer.Amount); err != nil {
		return errors.Wrap(err, "failed to mint")
	}

	event, err := types.NewTransferReceivedEvent(types.TransferReceivedEvent{
		Amount:    transfer.Amount.String(),
		Recipient: transfer.Recipient.Hex(),
		Nonce:     transfer.TransferNonce,
	})
	if err != nil {
		return err
	}
	emitEvent(ctx, event)

	return nil
}

func (k Keeper) processEnable(ctx context.Context, params types.Params, sender common.Hash, payload []byte) error {
	if sender != params.TokenPalletAccount {
		return errors.Wrapf(types.ErrUnauthorizedSender, "got %s", sender.Hex())
	}

	flag, err := types.DecodeEnable(payload)
	if err != nil {
		return err
	}
	if flag != 1 {
		return errors.Wrapf(types.ErrInvalidEnableFlag, "flag %d", flag)
	}

	if err := k.tokenKeeper.UpdateTransferRestrictor(ctx, k.Address(), common.Address{}); err != nil {
		return errors.Wrap(err, "failed to lift transfer restriction")
	}

	event, err := types.NewTransfersEnabledEvent(types.TransfersEnabledEvent{Sender: sender.Hex()})
	if err != nil {
		return err
	}
	emitEvent(ctx, event)

	k.Logger().Info("token transfers enabled")
	return nil
}
