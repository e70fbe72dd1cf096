package main

import (
	"encoding/json"
	"fmt"
	"os"

	"cosmossdk.io/log"
	dbm "github.com/cosmos/cosmos-db"
	"github.com/ethereum/go-ethereum/common"

	"github.com/acurast/hyperdrive-relay/app"
	"github.com/acurast/hyperdrive-relay/oracle/config"
	relaytypes "github.com/acurast/hyperdrive-relay/x/relay/types"
)

const ledgerDBName = "ledger"

// openLedger opens the relay ledger persisted under dir. A fresh ledger gets
// a genesis with oracle as owner and sole oracle; an existing one is resumed
// at its last committed height.
func openLedger(dir string, oracle common.Address, cfg config.Config) (*app.App, func() error, error) {
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, nil, fmt.Errorf("failed to create ledger directory: %w", err)
	}

	db, err := dbm.NewDB(ledgerDBName, dbm.GoLevelDBBackend, dir)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open ledger database: %w", err)
	}

	ledger, err := app.New(log.NewNopLogger(), db)
	if err != nil {
		_ = db.Close()
		return nil, nil, err
	}

	if ledger.Height() == 0 {
		if err := initLedger(ledger, oracle, cfg); err != nil {
			_ = db.Close()
			return nil, nil, err
		}
	}
	return ledger, db.Close, nil
}

func initLedger(ledger *app.App, oracle common.Address, cfg config.Config) error {
	gs, err := ledger.DefaultGenesis(oracle)
	if err != nil {
		return err
	}

	var relay relaytypes.GenesisState
	if err := json.Unmarshal(gs[relaytypes.ModuleName], &relay); err != nil {
		return err
	}
	if relay.Params.LocalChain, err = relaytypes.ParseChainTag(cfg.LocalChain); err != nil {
		return err
	}
	if relay.Params.RemoteChain, err = relaytypes.ParseChainTag(cfg.RemoteChain); err != nil {
		return err
	}
	relay.Oracles = []common.Address{oracle}
	if gs[relaytypes.ModuleName], err = json.Marshal(relay); err != nil {
		return err
	}

	return ledger.InitChain(gs)
}
