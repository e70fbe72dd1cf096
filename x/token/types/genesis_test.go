package types_test

import (
	"context"
	"math/big"
	"testing"

	"cosmossdk.io/math"
	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/require"

	"github.com/acurast/hyperdrive-relay/x/token/types"
)

func TestGenesisState_Validate(t *testing.T) {
	admin := common.HexToAddress("0x00000000000000000000000000000000000000a1")
	source := common.HexToAddress("0xcC5739Af13B822154d9d858E36EeF11587c09546")

	maxU128 := new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 128), big.NewInt(1))

	tests := []struct {
		name    string
		mutate  func(gs *types.GenesisState)
		wantErr error
	}{
		{
			name:   "valid",
			mutate: func(gs *types.GenesisState) {},
		},
		{
			name:    "zero admin",
			mutate:  func(gs *types.GenesisState) { gs.Params.Admin = common.Address{} },
			wantErr: types.ErrInvalidAddress,
		},
		{
			name: "zero funding source",
			mutate: func(gs *types.GenesisState) {
				gs.InitialBalances = append(gs.InitialBalances, types.InitialBalance{Amount: math.NewInt(1)})
			},
			wantErr: types.ErrInvalidAddress,
		},
		{
			name: "amount beyond 128 bits",
			mutate: func(gs *types.GenesisState) {
				gs.InitialBalances[0].Amount = math.NewIntFromBigInt(new(big.Int).Add(maxU128, big.NewInt(1)))
			},
			wantErr: types.ErrSupplyOverflow,
		},
		{
			name: "exported balance for the zero address",
			mutate: func(gs *types.GenesisState) {
				gs.Balances = []types.Balance{{Amount: math.NewInt(1)}}
			},
			wantErr: types.ErrInvalidAddress,
		},
		{
			name: "negative exported balance",
			mutate: func(gs *types.GenesisState) {
				gs.Balances = []types.Balance{{Address: source, Amount: math.NewInt(-1)}}
			},
			wantErr: types.ErrInvalidAmount,
		},
		{
			name: "missing exported amount",
			mutate: func(gs *types.GenesisState) {
				gs.Balances = []types.Balance{{Address: source}}
			},
			wantErr: types.ErrInvalidAmount,
		},
		{
			name: "duplicate exported balance",
			mutate: func(gs *types.GenesisState) {
				gs.Balances = []types.Balance{
					{Address: source, Amount: math.NewInt(1)},
					{Address: source, Amount: math.NewInt(2)},
				}
			},
			wantErr: types.ErrInvalidAddress,
		},
		{
			name: "exported balances beyond 256 bits",
			mutate: func(gs *types.GenesisState) {
				maxU256 := new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 256), big.NewInt(1))
				gs.Balances = []types.Balance{
					{Address: source, Amount: math.NewIntFromBigInt(maxU256)},
					{Address: admin, Amount: math.NewInt(1)},
				}
			},
			wantErr: types.ErrSupplyOverflow,
		},
		{
			name: "valid exported balances",
			mutate: func(gs *types.GenesisState) {
				gs.Balances = []types.Balance{{Address: source, Amount: math.NewInt(7)}}
			},
		},
		{
			name: "wrong decimals",
			mutate: func(gs *types.GenesisState) {
				gs.Metadata.Decimals = 18
			},
			wantErr: types.ErrInvalidMetadata,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			gs := types.DefaultGenesis()
			gs.Params.Admin = admin
			gs.InitialBalances = []types.InitialBalance{{Source: source, Amount: math.NewInt(5_000_000)}}
			tc.mutate(gs)

			err := gs.Validate()
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestInitialSupply_SumsScaledAmounts(t *testing.T) {
	maxU128 := new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 128), big.NewInt(1))
	gs := types.DefaultGenesis()
	gs.Params.Admin = common.HexToAddress("0x01")

	for i := 0; i < 4; i++ {
		gs.InitialBalances = append(gs.InitialBalances, types.InitialBalance{
			Source: common.BigToAddress(big.NewInt(int64(i + 1))),
			Amount: math.NewIntFromBigInt(maxU128),
		})
	}

	total, err := gs.InitialSupply()
	require.NoError(t, err)
	expected := new(big.Int).Mul(maxU128, big.NewInt(4))
	expected.Mul(expected, new(big.Int).Exp(big.NewInt(10), big.NewInt(12), nil))
	require.Equal(t, expected.String(), total.String())
}

func TestAllowListRestrictor(t *testing.T) {
	a := common.HexToAddress("0x0a")
	b := common.HexToAddress("0x0b")
	c := common.HexToAddress("0x0c")

	ctx := context.Background()

	r := types.NewAllowListRestrictor(a)
	require.True(t, r.IsTransferAllowed(ctx, a, b, math.NewInt(1)))
	require.True(t, r.IsTransferAllowed(ctx, b, a, math.NewInt(1)))
	require.False(t, r.IsTransferAllowed(ctx, b, c, math.NewInt(1)))

	require.False(t, types.NewAllowListRestrictor().IsTransferAllowed(ctx, a, b, math.NewInt(1)))
	require.False(t, types.BlockAllRestrictor{}.IsTransferAllowed(ctx, a, b, math.NewInt(1)))
}
