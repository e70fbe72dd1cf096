package types

import (
	"math/big"

	"cosmossdk.io/errors"
	"cosmossdk.io/math"
	"github.com/ethereum/go-ethereum/common"
)

// InitialBalance funds Source with Amount whole tokens at genesis.
type InitialBalance struct {
	Source common.Address `json:"source"`
	Amount math.Int       `json:"amount"`
}

// RoleGrant assigns Role to Account at genesis.
type RoleGrant struct {
	Role    common.Hash    `json:"role"`
	Account common.Address `json:"account"`
}

// Balance is an exported account balance in base units.
type Balance struct {
	Address common.Address `json:"address"`
	Amount  math.Int       `json:"amount"`
}

// GenesisState defines the token module genesis state.
type GenesisState struct {
	Params          Params           `json:"params"`
	Metadata        Metadata         `json:"metadata"`
	Restrictor      common.Address   `json:"restrictor"`
	InitialBalances []InitialBalance `json:"initial_balances,omitempty"`
	Roles           []RoleGrant      `json:"roles,omitempty"`

	// Balances is populated on export and takes precedence over
	// InitialBalances on import.
	Balances []Balance `json:"balances,omitempty"`
}

var (
	maxUint128 = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 128), big.NewInt(1))
	maxUint256 = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 256), big.NewInt(1))
	unit       = new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(Decimals)), nil)
)

// DefaultGenesis returns the default genesis state.
func DefaultGenesis() *GenesisState {
	return &GenesisState{
		Params: DefaultParams(),
		Metadata: Metadata{
			Name:     "ACU",
			Symbol:   "ACU",
			Decimals: Decimals,
		},
		Restrictor: DefaultRestrictorAddress,
	}
}

// ScaleWholeUnits converts a whole-token amount to base units.
func ScaleWholeUnits(amount math.Int) math.Int {
	return math.NewIntFromBigInt(new(big.Int).Mul(amount.BigInt(), unit))
}

// Validate performs basic genesis state validation returning an error upon any failure.
func (gs GenesisState) Validate() error {
	if err := gs.Params.ValidateBasic(); err != nil {
		return err
	}
	if err := gs.Metadata.ValidateBasic(); err != nil {
		return err
	}
	if _, err := gs.InitialSupply(); err != nil {
		return err
	}
	return gs.validateBalances()
}

// validateBalances checks the exported balances the way InitialSupply checks
// the initial distribution, in base units.
func (gs GenesisState) validateBalances() error {
	seen := make(map[common.Address]struct{}, len(gs.Balances))
	total := new(big.Int)
	for i, b := range gs.Balances {
		if b.Address == (common.Address{}) {
			return errors.Wrapf(ErrInvalidAddress, "balance %d", i)
		}
		if _, ok := seen[b.Address]; ok {
			return errors.Wrapf(ErrInvalidAddress, "duplicate balance for %s", b.Address.Hex())
		}
		seen[b.Address] = struct{}{}
		if b.Amount.IsNil() || b.Amount.IsNegative() {
			return errors.Wrapf(ErrInvalidAmount, "balance %d", i)
		}
		total.Add(total, b.Amount.BigInt())
		if total.Cmp(maxUint256) > 0 {
			return errors.Wrap(ErrSupplyOverflow, "total balance exceeds 256 bits")
		}
	}
	return nil
}

// InitialSupply validates the initial distribution and returns the total in base units.
func (gs GenesisState) InitialSupply() (math.Int, error) {
	total := new(big.Int)
	for i, ib := range gs.InitialBalances {
		if ib.Source == (common.Address{}) {
			return math.Int{}, errors.Wrapf(ErrInvalidAddress, "initial balance %d", i)
		}
		if ib.Amount.IsNil() || ib.Amount.IsNegative() {
			return math.Int{}, errors.Wrapf(ErrInvalidAmount, "initial balance %d", i)
		}
		if ib.Amount.BigInt().Cmp(maxUint128) > 0 {
			return math.Int{}, errors.Wrapf(ErrSupplyOverflow, "initial balance %d exceeds 128 bits", i)
		}
		total.Add(total, new(big.Int).Mul(ib.Amount.BigInt(), unit))
		if total.Cmp(maxUint256) > 0 {
			return math.Int{}, errors.Wrap(ErrSupplyOverflow, "total initial supply exceeds 256 bits")
		}
	}
	return math.NewIntFromBigInt(total), nil
}
