package types

import (
	"cosmossdk.io/errors"
	"github.com/ethereum/go-ethereum/common"
)

// GenesisState defines the relay module genesis state.
type GenesisState struct {
	Params   Params            `json:"params"`
	Config   Config            `json:"config"`
	Oracles  []common.Address  `json:"oracles,omitempty"`
	Outgoing []OutgoingMessage `json:"outgoing,omitempty"`
	Incoming []IncomingMessage `json:"incoming,omitempty"`
}

// DefaultGenesis returns the default genesis state.
func DefaultGenesis() *GenesisState {
	return &GenesisState{
		Params: DefaultParams(),
		Config: DefaultConfig(),
	}
}

// Validate performs basic genesis state validation returning an error upon any failure.
func (gs GenesisState) Validate() error {
	if err := gs.Params.ValidateBasic(); err != nil {
		return err
	}
	if err := gs.Config.ValidateBasic(); err != nil {
		return err
	}

	seen := make(map[common.Address]struct{}, len(gs.Oracles))
	for _, o := range gs.Oracles {
		if o == (common.Address{}) {
			return errors.Wrap(ErrInvalidAddress, "oracle cannot be the zero address")
		}
		if _, ok := seen[o]; ok {
			return errors.Wrapf(ErrOracleAlreadyExists, "%s", o.Hex())
		}
		seen[o] = struct{}{}
	}
	return nil
}
