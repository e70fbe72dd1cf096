package types

import (
	"encoding/json"

	"cosmossdk.io/errors"
	"github.com/ethereum/go-ethereum/common"
)

// Params defines the token module parameters.
type Params struct {
	// Admin grants and revokes roles.
	Admin common.Address `json:"admin"`
}

// DefaultParams returns default module parameters.
func DefaultParams() Params {
	return Params{}
}

// String implements the Stringer interface.
func (p Params) String() string {
	bz, err := json.Marshal(p)
	if err != nil {
		panic(err)
	}
	return string(bz)
}

// ValidateBasic performs basic validation on token parameters.
func (p Params) ValidateBasic() error {
	if p.Admin == (common.Address{}) {
		return errors.Wrap(ErrInvalidAddress, "admin cannot be the zero address")
	}
	return nil
}

// Metadata describes the token.
type Metadata struct {
	Name     string `json:"name"`
	Symbol   string `json:"symbol"`
	Decimals uint8  `json:"decimals"`
}

// Decimals is the fixed precision of the token.
const Decimals uint8 = 12

func (m Metadata) ValidateBasic() error {
	if m.Name == "" || m.Symbol == "" {
		return errors.Wrap(ErrInvalidMetadata, "name and symbol are required")
	}
	if m.Decimals != Decimals {
		return errors.Wrapf(ErrInvalidMetadata, "decimals must be %d, got %d", Decimals, m.Decimals)
	}
	return nil
}
