package keeper

import (
	"context"

	"cosmossdk.io/collections"
	"cosmossdk.io/math"
	"github.com/ethereum/go-ethereum/common"

	"github.com/acurast/hyperdrive-relay/x/token/types"
)

// InitGenesis initializes the module's state from a genesis state.
func (k *Keeper) InitGenesis(ctx context.Context, data *types.GenesisState) error {
	if err := data.Validate(); err != nil {
		return err
	}

	if err := k.Params.Set(ctx, data.Params); err != nil {
		return err
	}
	if err := k.Metadata.Set(ctx, data.Metadata); err != nil {
		return err
	}
	if err := k.Restrictor.Set(ctx, data.Restrictor.Bytes()); err != nil {
		return err
	}

	for _, g := range data.Roles {
		if err := k.Roles.Set(ctx, collections.Join(g.Role.Bytes(), g.Account.Bytes())); err != nil {
			return err
		}
	}

	if len(data.Balances) > 0 {
		for _, b := range data.Balances {
			if err := k.setBalance(ctx, b.Address, b.Amount); err != nil {
				return err
			}
			if err := k.addSupply(ctx, b.Amount); err != nil {
				return err
			}
		}
		return nil
	}

	for _, ib := range data.InitialBalances {
		amount := types.ScaleWholeUnits(ib.Amount)
		bal, err := k.BalanceOf(ctx, ib.Source)
		if err != nil {
			return err
		}
		if err := k.setBalance(ctx, ib.Source, bal.Add(amount)); err != nil {
			return err
		}
		if err := k.addSupply(ctx, amount); err != nil {
			return err
		}
	}

	return nil
}

// ExportGenesis exports the module's state to a genesis state.
func (k *Keeper) ExportGenesis(ctx context.Context) *types.GenesisState {
	params, err := k.Params.Get(ctx)
	if err != nil {
		panic(err)
	}
	metadata, err := k.Metadata.Get(ctx)
	if err != nil {
		panic(err)
	}
	restrictor, err := k.GetTransferRestrictor(ctx)
	if err != nil {
		panic(err)
	}

	gs := &types.GenesisState{
		Params:     params,
		Metadata:   metadata,
		Restrictor: restrictor,
	}

	err = k.Roles.Walk(ctx, nil, func(key collections.Pair[[]byte, []byte]) (bool, error) {
		gs.Roles = append(gs.Roles, types.RoleGrant{
			Role:    common.BytesToHash(key.K1()),
			Account: common.BytesToAddress(key.K2()),
		})
		return false, nil
	})
	if err != nil {
		panic(err)
	}

	err = k.Balances.Walk(ctx, nil, func(addr []byte, amount math.Int) (bool, error) {
		gs.Balances = append(gs.Balances, types.Balance{
			Address: common.BytesToAddress(addr),
			Amount:  amount,
		})
		return false, nil
	})
	if err != nil {
		panic(err)
	}

	return gs
}
