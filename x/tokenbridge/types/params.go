package types

import (
	"encoding/json"

	"cosmossdk.io/errors"
	"github.com/ethereum/go-ethereum/common"
)

// DefaultTokenPalletAccount is the token pallet account on the Acurast parachain ("modlhyptoken").
var DefaultTokenPalletAccount = common.HexToHash("0x6d6f646c687970746f6b656e0000000000000000000000000000000000000000")

const DefaultOutgoingTTL uint64 = 100

// Params defines the token bridge parameters.
type Params struct {
	Owner common.Address `json:"owner"`

	// RelayContract is the only origin allowed to deliver messages.
	RelayContract common.Address `json:"relay_contract"`

	// TokenPalletAccount is the remote sender trusted for bridge actions and
	// the recipient of outgoing transfers.
	TokenPalletAccount common.Hash `json:"token_pallet_account"`

	OutgoingTTL uint64 `json:"outgoing_ttl"`
}

// DefaultParams returns default module parameters.
func DefaultParams() Params {
	return Params{
		TokenPalletAccount: DefaultTokenPalletAccount,
		OutgoingTTL:        DefaultOutgoingTTL,
	}
}

// String implements the Stringer interface.
func (p Params) String() string {
	bz, err := json.Marshal(p)
	if err != nil {
		panic(err)
	}
	return string(bz)
}

// ValidateBasic performs basic validation on bridge parameters.
func (p Params) ValidateBasic() error {
	if p.Owner == (common.Address{}) {
		return errors.Wrap(ErrInvalidAddress, "owner cannot be the zero address")
	}
	if p.RelayContract == (common.Address{}) {
		return ErrInvalidRelayContract
	}
	if p.OutgoingTTL == 0 {
		return errors.Wrap(ErrOutgoingTTLTooSmall, "outgoing ttl cannot be zero")
	}
	return nil
}
