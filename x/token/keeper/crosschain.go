package keeper

import (
	"context"

	"cosmossdk.io/errors"
	"cosmossdk.io/math"

	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/ethereum/go-ethereum/common"

	"github.com/acurast/hyperdrive-relay/x/token/types"
)

// CrosschainMint credits to with amount. Requires TOKEN_BRIDGE; never consults the restrictor.
func (k Keeper) CrosschainMint(ctx context.Context, caller, to common.Address, amount math.Int) error {
	if err := k.requireRole(ctx, types.RoleTokenBridge, caller); err != nil {
		return err
	}
	if to == (common.Address{}) {
		return errors.Wrap(types.ErrInvalidReceiver, "cannot mint to the zero address")
	}
	if amount.IsNil() || amount.IsNegative() {
		return errors.Wrapf(types.ErrInvalidAmount, "%s", amount)
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	tmpCtx, commit := sdkCtx.CacheContext()

	bal, err := k.BalanceOf(tmpCtx, to)
	if err != nil {
		return err
	}
	if err := k.setBalance(tmpCtx, to, bal.Add(amount)); err != nil {
		return err
	}
	if err := k.addSupply(tmpCtx, amount); err != nil {
		return err
	}

	if err := k.emitCrosschain(tmpCtx, types.EventTypeCrosschainMint, common.Address{}, to, caller, amount); err != nil {
		return err
	}

	commit()
	return nil
}

// CrosschainBurn debits amount from from. Requires TOKEN_BRIDGE; never consults the restrictor.
func (k Keeper) CrosschainBurn(ctx context.Context, caller, from common.Address, amount math.Int) error {
	if err := k.requireRole(ctx, types.RoleTokenBridge, caller); err != nil {
		return err
	}
	if from == (common.Address{}) {
		return errors.Wrap(types.ErrInvalidSender, "cannot burn from the zero address")
	}
	if amount.IsNil() || amount.IsNegative() {
		return errors.Wrapf(types.ErrInvalidAmount, "%s", amount)
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	tmpCtx, commit := sdkCtx.CacheContext()

	bal, err := k.BalanceOf(tmpCtx, from)
	if err != nil {
		return err
	}
	if bal.LT(amount) {
		return errors.Wrapf(types.ErrInsufficientBalance, "balance %s, needed %s", bal, amount)
	}
	if err := k.setBalance(tmpCtx, from, bal.Sub(amount)); err != nil {
		return err
	}
	if err := k.addSupply(tmpCtx, amount.Neg()); err != nil {
		return err
	}

	if err := k.emitCrosschain(tmpCtx, types.EventTypeCrosschainBurn, from, common.Address{}, caller, amount); err != nil {
		return err
	}

	commit()
	return nil
}

func (k Keeper) emitCrosschain(ctx context.Context, eventType string, from, to, caller common.Address, amount math.Int) error {
	account := to
	if eventType == types.EventTypeCrosschainBurn {
		account = from
	}

	event, err := types.NewCrosschainEvent(eventType, types.CrosschainEvent{
		Account: account.Hex(),
		Amount:  amount.String(),
		Sender:  caller.Hex(),
	})
	if err != nil {
		return err
	}
	emitEvent(ctx, event)

	transferEvent, err := types.NewTransferEvent(types.TransferEvent{
		From:   from.Hex(),
		To:     to.Hex(),
		Amount: amount.String(),
	})
	if err != nil {
		return err
	}
	emitEvent(ctx, transferEvent)

	return nil
}
