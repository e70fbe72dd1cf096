package keeper

import (
	"context"
	"errors"

	"cosmossdk.io/collections"
	sdkerrors "cosmossdk.io/errors"
	"cosmossdk.io/math"
	"github.com/ethereum/go-ethereum/common"

	"github.com/acurast/hyperdrive-relay/x/token/types"
)

// GetTransferRestrictor returns the address of the active restrictor.
func (k Keeper) GetTransferRestrictor(ctx context.Context) (common.Address, error) {
	bz, err := k.Restrictor.Get(ctx)
	if errors.Is(err, collections.ErrNotFound) {
		return types.DefaultRestrictorAddress, nil
	}
	if err != nil {
		return common.Address{}, err
	}
	return common.BytesToAddress(bz), nil
}

// UpdateTransferRestrictor swaps the active restrictor. Requires RESTRICTOR_UPDATER.
func (k Keeper) UpdateTransferRestrictor(ctx context.Context, caller, restrictor common.Address) error {
	if err := k.requireRole(ctx, types.RoleRestrictorUpdater, caller); err != nil {
		return err
	}

	old, err := k.GetTransferRestrictor(ctx)
	if err != nil {
		return err
	}

	if err := k.Restrictor.Set(ctx, restrictor.Bytes()); err != nil {
		return err
	}

	k.Logger().Info("transfer restrictor updated", "old", old.Hex(), "new", restrictor.Hex())

	event, err := types.NewRestrictorUpdatedEvent(types.RestrictorUpdatedEvent{
		Old: old.Hex(),
		New: restrictor.Hex(),
	})
	if err != nil {
		return err
	}
	emitEvent(ctx, event)

	return nil
}

// IsTransferAllowed evaluates the active restrictor without mutating state.
func (k Keeper) IsTransferAllowed(ctx context.Context, from, to common.Address, amount math.Int) (bool, error) {
	addr, err := k.GetTransferRestrictor(ctx)
	if err != nil {
		return false, err
	}
	if addr == types.PermissiveRestrictorAddress {
		return true, nil
	}
	r, ok := k.restrictors[addr]
	if !ok {
		return false, sdkerrors.Wrapf(types.ErrRestrictorNotCallable, "%s", addr.Hex())
	}
	return r.IsTransferAllowed(ctx, from, to, amount), nil
}

func (k Keeper) checkRestrictor(ctx context.Context, from, to common.Address, amount math.Int) error {
	allowed, err := k.IsTransferAllowed(ctx, from, to, amount)
	if err != nil {
		return err
	}
	if !allowed {
		return sdkerrors.Wrapf(types.ErrTransferRestricted, "from %s to %s", from.Hex(), to.Hex())
	}
	return nil
}
