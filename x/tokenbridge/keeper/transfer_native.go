package keeper

import (
	"context"
	"math"

	"cosmossdk.io/errors"
	sdkmath "cosmossdk.io/math"

	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/ethereum/go-ethereum/common"

	"github.com/acurast/hyperdrive-relay/x/tokenbridge/types"
)

// TransferNative burns amount from caller and sends it to dest on the remote chain.
// Returns the bridge transfer nonce.
func (k Keeper) TransferNative(ctx context.Context, caller common.Address, amount sdkmath.Int, dest common.Hash, fee sdkmath.Int) (uint64, error) {
	if amount.IsNil() || !amount.IsPositive() {
		return 0, types.ErrZeroAmount
	}

	balance, err := k.tokenKeeper.BalanceOf(ctx, caller)
	if err != nil {
		return 0, err
	}
	if amount.GT(balance) {
		return 0, errors.Wrapf(types.ErrInsufficientBalance, "balance %s, amount %s", balance, amount)
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	tmpCtx, commit := sdkCtx.CacheContext()

	if err := k.tokenKeeper.CrosschainBurn(tmpCtx, k.Address(), caller, amount); err != nil {
		return 0, errors.Wrap(err, "failed to burn")
	}

	nonce, err := k.NextTransferNonce.Next(tmpCtx)
	if err != nil {
		return 0, err
	}

	transfer := types.BridgeTransfer{
		Sender: caller,
		Amount: amount,
		Dest:   dest,
		Nonce:  nonce,
	}
	if err := k.OutgoingTransfers.Set(tmpCtx, nonce, transfer); err != nil {
		return 0, err
	}

	if err := k.send(tmpCtx, transfer, fee, false); err != nil {
		return 0, err
	}

	commit()
	return nonce, nil
}

// send hands the encoded transfer to the relay and emits transfer_sent.
func (k Keeper) send(ctx context.Context, transfer types.BridgeTransfer, fee sdkmath.Int, retry bool) error {
	if transfer.Nonce > math.MaxUint32 {
		return errors.Wrapf(types.ErrNonceOverflow, "%d", transfer.Nonce)
	}

	params, err := k.Params.Get(ctx)
	if err != nil {
		return err
	}

	payload, err := types.EncodeOutgoingTransfer(transfer.Amount, uint32(transfer.Nonce), transfer.Dest)
	if err != nil {
		return err
	}

	messageID, err := k.relayKeeper.SendMessage(ctx, k.Address(), types.RelayNonce(transfer.Nonce), params.TokenPalletAccount, payload, params.OutgoingTTL, fee)
	if err != nil {
		return err
	}

	if fee.IsNil() {
		fee = sdkmath.ZeroInt()
	}

	event, err := types.NewTransferSentEvent(types.TransferSentEvent{
		Amount:    transfer.Amount.String(),
		Fee:       fee.String(),
		Dest:      transfer.Dest.Hex(),
		Nonce:     transfer.Nonce,
		Sender:    transfer.Sender.Hex(),
		MessageID: messageID.Hex(),
		Retry:     retry,
	})
	if err != nil {
		return err
	}
	emitEvent(ctx, event)

	k.Logger().Debug("transfer sent", "nonce", transfer.Nonce, "amount", transfer.Amount.String(), "retry", retry)
	return nil
}
