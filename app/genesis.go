package app

import (
	"encoding/json"
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/ethereum/go-ethereum/common"

	relaytypes "github.com/acurast/hyperdrive-relay/x/relay/types"
	tokentypes "github.com/acurast/hyperdrive-relay/x/token/types"
	bridgetypes "github.com/acurast/hyperdrive-relay/x/tokenbridge/types"
)

// GenesisState is the genesis of every module keyed by module name.
type GenesisState map[string]json.RawMessage

// DefaultGenesis returns a genesis owned by owner with the bridge holding
// the token roles it needs and trusting this app's relay.
func (a *App) DefaultGenesis(owner common.Address) (GenesisState, error) {
	token := tokentypes.DefaultGenesis()
	token.Params.Admin = owner
	token.Roles = []tokentypes.RoleGrant{
		{Role: tokentypes.RoleTokenBridge, Account: a.BridgeKeeper.Address()},
		{Role: tokentypes.RoleRestrictorUpdater, Account: a.BridgeKeeper.Address()},
	}

	relay := relaytypes.DefaultGenesis()
	relay.Params.Owner = owner

	bridge := bridgetypes.DefaultGenesis()
	bridge.Params.Owner = owner
	bridge.Params.RelayContract = a.RelayKeeper.Address()

	gs := make(GenesisState)
	for name, v := range map[string]any{
		tokentypes.ModuleName:  token,
		relaytypes.ModuleName:  relay,
		bridgetypes.ModuleName: bridge,
	} {
		bz, err := json.Marshal(v)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal %s genesis: %w", name, err)
		}
		gs[name] = bz
	}
	return gs, nil
}

// InitChain loads genesis into the stores and commits the first block.
func (a *App) InitChain(gs GenesisState) error {
	var (
		token  tokentypes.GenesisState
		relay  relaytypes.GenesisState
		bridge bridgetypes.GenesisState
	)
	for name, dst := range map[string]any{
		tokentypes.ModuleName:  &token,
		relaytypes.ModuleName:  &relay,
		bridgetypes.ModuleName: &bridge,
	} {
		raw, ok := gs[name]
		if !ok {
			return fmt.Errorf("missing %s genesis", name)
		}
		if err := json.Unmarshal(raw, dst); err != nil {
			return fmt.Errorf("failed to unmarshal %s genesis: %w", name, err)
		}
	}

	_, err := a.Exec(func(ctx sdk.Context) error {
		if err := a.TokenKeeper.InitGenesis(ctx, &token); err != nil {
			return fmt.Errorf("token genesis: %w", err)
		}
		if err := a.RelayKeeper.InitGenesis(ctx, &relay); err != nil {
			return fmt.Errorf("relay genesis: %w", err)
		}
		if err := a.BridgeKeeper.InitGenesis(ctx, &bridge); err != nil {
			return fmt.Errorf("tokenbridge genesis: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	a.Commit()
	return nil
}

// ExportGenesis dumps committed state of every module.
func (a *App) ExportGenesis() (GenesisState, error) {
	ctx := a.Context()

	gs := make(GenesisState)
	for name, v := range map[string]any{
		tokentypes.ModuleName:  a.TokenKeeper.ExportGenesis(ctx),
		relaytypes.ModuleName:  a.RelayKeeper.ExportGenesis(ctx),
		bridgetypes.ModuleName: a.BridgeKeeper.ExportGenesis(ctx),
	} {
		bz, err := json.Marshal(v)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal %s genesis: %w", name, err)
		}
		gs[name] = bz
	}
	return gs, nil
}
