package keeper

import (
	"context"
	"errors"

	"cosmossdk.io/collections"
	"cosmossdk.io/math"
	"github.com/ethereum/go-ethereum/common"
)

// BalanceOf returns the balance of addr in base units.
func (k Keeper) BalanceOf(ctx context.Context, addr common.Address) (math.Int, error) {
	bal, err := k.Balances.Get(ctx, addr.Bytes())
	if errors.Is(err, collections.ErrNotFound) {
		return math.ZeroInt(), nil
	}
	return bal, err
}

// Allowance returns how much spender may move on behalf of owner.
func (k Keeper) Allowance(ctx context.Context, owner, spender common.Address) (math.Int, error) {
	amt, err := k.Allowances.Get(ctx, collections.Join(owner.Bytes(), spender.Bytes()))
	if errors.Is(err, collections.ErrNotFound) {
		return math.ZeroInt(), nil
	}
	return amt, err
}

// GetTotalSupply returns the circulating supply in base units.
func (k Keeper) GetTotalSupply(ctx context.Context) (math.Int, error) {
	supply, err := k.TotalSupply.Get(ctx)
	if errors.Is(err, collections.ErrNotFound) {
		return math.ZeroInt(), nil
	}
	return supply, err
}

func (k Keeper) setBalance(ctx context.Context, addr common.Address, amount math.Int) error {
	if amount.IsZero() {
		return k.Balances.Remove(ctx, addr.Bytes())
	}
	return k.Balances.Set(ctx, addr.Bytes(), amount)
}

func (k Keeper) addSupply(ctx context.Context, delta math.Int) error {
	supply, err := k.GetTotalSupply(ctx)
	if err != nil {
		return err
	}
	return k.TotalSupply.Set(ctx, supply.Add(delta))
}
