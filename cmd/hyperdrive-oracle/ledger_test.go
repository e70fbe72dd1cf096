package main

import (
	"testing"

	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/require"

	"github.com/acurast/hyperdrive-relay/oracle/config"
	relaytypes "github.com/acurast/hyperdrive-relay/x/relay/types"
)

func TestOpenLedger_ResumesCommittedState(t *testing.T) {
	dir := t.TempDir()
	cfg, err := config.LoadDefaultConfig()
	require.NoError(t, err)

	oracle := common.HexToAddress("0x00000000000000000000000000000000000000a1")
	peer := common.HexToAddress("0x00000000000000000000000000000000000000a2")

	ledger, closeLedger, err := openLedger(dir, oracle, *cfg)
	require.NoError(t, err)
	require.Equal(t, int64(1), ledger.Height())

	_, err = ledger.Exec(func(ctx sdk.Context) error {
		return ledger.RelayKeeper.AddOracle(ctx, oracle, peer)
	})
	require.NoError(t, err)
	ledger.Commit()
	require.NoError(t, closeLedger())

	// a second start with another key must not re-run genesis
	other := common.HexToAddress("0x00000000000000000000000000000000000000b1")
	ledger, closeLedger, err = openLedger(dir, other, *cfg)
	require.NoError(t, err)
	defer closeLedger()

	require.Equal(t, int64(2), ledger.Height())

	params, err := ledger.RelayKeeper.GetParams(ledger.Context())
	require.NoError(t, err)
	require.Equal(t, oracle, params.Owner)
	require.Equal(t, relaytypes.ChainEthereum, params.LocalChain)
	require.Equal(t, relaytypes.ChainAcurast, params.RemoteChain)

	oracles, err := ledger.RelayKeeper.GetOracles(ledger.Context())
	require.NoError(t, err)
	require.ElementsMatch(t, []common.Address{oracle, peer}, oracles)
}
