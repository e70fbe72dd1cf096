package keeper

import (
	"context"

	"github.com/acurast/hyperdrive-relay/x/relay/types"
)

// InitGenesis initializes the module's state from a genesis state.
func (k *Keeper) InitGenesis(ctx context.Context, data *types.GenesisState) error {
	if err := data.Validate(); err != nil {
		return err
	}

	if err := k.Params.Set(ctx, data.Params); err != nil {
		return err
	}
	if err := k.Config.Set(ctx, data.Config); err != nil {
		return err
	}

	for _, o := range data.Oracles {
		if err := k.Oracles.Set(ctx, o.Bytes()); err != nil {
			return err
		}
	}
	for _, m := range data.Outgoing {
		if err := k.Outgoing.Set(ctx, m.ID().Bytes(), m); err != nil {
			return err
		}
	}
	for _, m := range data.Incoming {
		if err := k.Incoming.Set(ctx, m.ID().Bytes(), m); err != nil {
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
	cfg, err := k.Config.Get(ctx)
	if err != nil {
		panic(err)
	}
	oracles, err := k.GetOracles(ctx)
	if err != nil {
		panic(err)
	}

	gs := &types.GenesisState{
		Params:  params,
		Config:  cfg,
		Oracles: oracles,
	}

	err = k.Outgoing.Walk(ctx, nil, func(_ []byte, m types.OutgoingMessage) (bool, error) {
		gs.Outgoing = append(gs.Outgoing, m)
		return false, nil
	})
	if err != nil {
		panic(err)
	}

	err = k.Incoming.Walk(ctx, nil, func(_ []byte, m types.IncomingMessage) (bool, error) {
		gs.Incoming = append(gs.Incoming, m)
		return false, nil
	})
	if err != nil {
		panic(err)
	}

	return gs
}
