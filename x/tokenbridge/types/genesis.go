package types

import (
	"cosmossdk.io/errors"
)

// GenesisState defines the token bridge genesis state.
type GenesisState struct {
	Params                 Params           `json:"params"`
	OutgoingTransfers      []BridgeTransfer `json:"outgoing_transfers,omitempty"`
	NextTransferNonce      uint64           `json:"next_transfer_nonce"`
	IncomingTransferNonces []uint32         `json:"incoming_transfer_nonces,omitempty"`
}

// DefaultGenesis returns the default genesis state.
func DefaultGenesis() *GenesisState {
	return &GenesisState{
		Params: DefaultParams(),
	}
}

// Validate performs basic genesis state validation returning an error upon any failure.
func (gs GenesisState) Validate() error {
	if err := gs.Params.ValidateBasic(); err != nil {
		return err
	}

	for _, t := range gs.OutgoingTransfers {
		if t.Nonce >= gs.NextTransferNonce {
			return errors.Wrapf(ErrTransferNotFound, "transfer nonce %d not below next nonce %d", t.Nonce, gs.NextTransferNonce)
		}
	}
	return nil
}
