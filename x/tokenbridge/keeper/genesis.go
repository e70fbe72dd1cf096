package keeper

import (
	"context"

	"github.com/acurast/hyperdrive-relay/x/tokenbridge/types"
)

// InitGenesis initializes the module's state from a genesis state.
func (k *Keeper) InitGenesis(ctx context.Context, data *types.GenesisState) error {
	if err := data.Validate(); err != nil {
		return err
	}

	if err := k.Params.Set(ctx, data.Params); err != nil {
		return err
	}
	if err := k.NextTransferNonce.Set(ctx, data.NextTransferNonce); err != nil {
		return err
	}
	for _, t := range data.OutgoingTransfers {
		if err := k.OutgoingTransfers.Set(ctx, t.Nonce, t); err != nil {
			return err
		}
	}
	for _, n := range data.IncomingTransferNonces {
		if err := k.IncomingTransferNonces.Set(ctx, n); err != nil {
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
	next, err := k.NextTransferNonce.Peek(ctx)
	if err != nil {
		panic(err)
	}

	gs := &types.GenesisState{
		Params:            params,
		NextTransferNonce: next,
	}

	err = k.OutgoingTransfers.Walk(ctx, nil, func(_ uint64, t types.BridgeTransfer) (bool, error) {
		gs.OutgoingTransfers = append(gs.OutgoingTransfers, t)
		return false, nil
	})
	if err != nil {
		panic(err)
	}

	err = k.IncomingTransferNonces.Walk(ctx, nil, func(n uint32) (bool, error) {
		gs.IncomingTransferNonces = append(gs.IncomingTransferNonces, n)
		return false, nil
	})
	if err != nil {
		panic(err)
	}

	return gs
}
