package keeper

import (
	"context"

	"cosmossdk.io/collections"
	"cosmossdk.io/errors"
	"cosmossdk.io/math"

	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/ethereum/go-ethereum/common"

	"github.com/acurast/hyperdrive-relay/x/token/types"
)

// Transfer moves amount from caller to to, subject to the active restrictor.
func (k Keeper) Transfer(ctx context.Context, caller, to common.Address, amount math.Int) error {
	sdkCtx := sdk.UnwrapSDKContext(ctx)
	tmpCtx, commit := sdkCtx.CacheContext()

	if err := k.checkRestrictor(tmpCtx, caller, to, amount); err != nil {
		return err
	}
	if err := k.transfer(tmpCtx, caller, to, amount); err != nil {
		return err
	}

	commit()
	return nil
}

// TransferFrom moves amount from from to to using spender's allowance.
func (k Keeper) TransferFrom(ctx context.Context, spender, from, to common.Address, amount math.Int) error {
	sdkCtx := sdk.UnwrapSDKContext(ctx)
	tmpCtx, commit := sdkCtx.CacheContext()

	if err := k.checkRestrictor(tmpCtx, from, to, amount); err != nil {
		return err
	}

	allowance, err := k.Allowance(tmpCtx, from, spender)
	if err != nil {
		return err
	}
	if allowance.LT(amount) {
		return errors.Wrapf(types.ErrInsufficientAllowance, "allowance %s, needed %s", allowance, amount)
	}
	if err := k.Allowances.Set(tmpCtx, collections.Join(from.Bytes(), spender.Bytes()), allowance.Sub(amount)); err != nil {
		return err
	}

	if err := k.transfer(tmpCtx, from, to, amount); err != nil {
		return err
	}

	commit()
	return nil
}

// Approve sets spender's allowance over caller's balance.
func (k Keeper) Approve(ctx context.Context, caller, spender common.Address, amount math.Int) error {
	if spender == (common.Address{}) {
		return errors.Wrap(types.ErrInvalidAddress, "spender cannot be the zero address")
	}
	if amount.IsNil() || amount.IsNegative() {
		return errors.Wrapf(types.ErrInvalidAmount, "%s", amount)
	}

	if err := k.Allowances.Set(ctx, collections.Join(caller.Bytes(), spender.Bytes()), amount); err != nil {
		return err
	}

	event, err := types.NewApprovalEvent(types.ApprovalEvent{
		Owner:   caller.Hex(),
		Spender: spender.Hex(),
		Amount:  amount.String(),
	})
	if err != nil {
		return err
	}
	emitEvent(ctx, event)

	return nil
}

// transfer moves balance without consulting the restrictor; callers check it first.
func (k Keeper) transfer(ctx context.Context, from, to common.Address, amount math.Int) error {
	if to == (common.Address{}) {
		return errors.Wrap(types.ErrInvalidReceiver, "cannot transfer to the zero address")
	}
	if from == (common.Address{}) {
		return errors.Wrap(types.ErrInvalidSender, "cannot transfer from the zero address")
	}
	if amount.IsNil() || amount.IsNegative() {
		return errors.Wrapf(types.ErrInvalidAmount, "%s", amount)
	}

	fromBal, err := k.BalanceOf(ctx, from)
	if err != nil {
		return err
	}
	if fromBal.LT(amount) {
		return errors.Wrapf(types.ErrInsufficientBalance, "balance %s, needed %s", fromBal, amount)
	}
	if err := k.setBalance(ctx, from, fromBal.Sub(amount)); err != nil {
		return err
	}

	toBal, err := k.BalanceOf(ctx, to)
	if err != nil {
		return err
	}
	if err := k.setBalance(ctx, to, toBal.Add(amount)); err != nil {
		return err
	}

	event, err := types.NewTransferEvent(types.TransferEvent{
		From:   from.Hex(),
		To:     to.Hex(),
		Amount: amount.String(),
	})
	if err != nil {
		return err
	}
	emitEvent(ctx, event)

	return nil
}
