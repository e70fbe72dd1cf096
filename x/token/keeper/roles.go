package keeper

import (
	"context"

	"cosmossdk.io/collections"
	"cosmossdk.io/errors"
	sdkErrors "github.com/cosmos/cosmos-sdk/types/errors"
	"github.com/ethereum/go-ethereum/common"

	"github.com/acurast/hyperdrive-relay/x/token/types"
)

// HasRole reports whether account holds role.
func (k Keeper) HasRole(ctx context.Context, role common.Hash, account common.Address) (bool, error) {
	return k.Roles.Has(ctx, collections.Join(role.Bytes(), account.Bytes()))
}

// GrantRole assigns role to account. Admin only.
func (k Keeper) GrantRole(ctx context.Context, caller common.Address, role common.Hash, account common.Address) error {
	if err := k.requireAdmin(ctx, caller); err != nil {
		return err
	}
	if account == (common.Address{}) {
		return errors.Wrap(types.ErrInvalidAddress, "cannot grant a role to the zero address")
	}

	if err := k.Roles.Set(ctx, collections.Join(role.Bytes(), account.Bytes())); err != nil {
		return err
	}

	event, err := types.NewRoleEvent(types.EventTypeRoleGranted, types.RoleEvent{
		Role:    types.RoleName(role),
		Account: account.Hex(),
		Sender:  caller.Hex(),
	})
	if err != nil {
		return err
	}
	emitEvent(ctx, event)

	return nil
}

// RevokeRole removes role from account. Admin only.
func (k Keeper) RevokeRole(ctx context.Context, caller common.Address, role common.Hash, account common.Address) error {
	if err := k.requireAdmin(ctx, caller); err != nil {
		return err
	}

	if err := k.Roles.Remove(ctx, collections.Join(role.Bytes(), account.Bytes())); err != nil {
		return err
	}

	event, err := types.NewRoleEvent(types.EventTypeRoleRevoked, types.RoleEvent{
		Role:    types.RoleName(role),
		Account: account.Hex(),
		Sender:  caller.Hex(),
	})
	if err != nil {
		return err
	}
	emitEvent(ctx, event)

	return nil
}

func (k Keeper) requireAdmin(ctx context.Context, caller common.Address) error {
	params, err := k.Params.Get(ctx)
	if err != nil {
		return err
	}
	if params.Admin != caller {
		return errors.Wrapf(sdkErrors.ErrUnauthorized, "invalid admin; expected %s, got %s", params.Admin.Hex(), caller.Hex())
	}
	return nil
}

func (k Keeper) requireRole(ctx context.Context, role common.Hash, caller common.Address) error {
	ok, err := k.HasRole(ctx, role, caller)
	if err != nil {
		return err
	}
	if !ok {
		return errors.Wrapf(types.ErrMissingRole, "%s lacks %s", caller.Hex(), types.RoleName(role))
	}
	return nil
}
