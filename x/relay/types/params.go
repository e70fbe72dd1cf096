package types

import (
	"encoding/json"

	"cosmossdk.io/errors"
	"github.com/ethereum/go-ethereum/common"
)

// ChainTag identifies a chain inside message digests.
type ChainTag uint8

const (
	ChainAcurast  ChainTag = 0
	ChainEthereum ChainTag = 3
)

// Params defines the relay module parameters.
type Params struct {
	// Owner configures the relay, manages oracles and prunes the incoming index.
	Owner common.Address `json:"owner"`

	// RemoteChain is the counterpart chain messages are exchanged with.
	RemoteChain ChainTag `json:"remote_chain"`

	// LocalChain is the chain this ledger runs on.
	LocalChain ChainTag `json:"local_chain"`
}

// DefaultParams returns default module parameters.
func DefaultParams() Params {
	return Params{
		RemoteChain: ChainAcurast,
		LocalChain:  ChainEthereum,
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

// ValidateBasic performs basic validation on relay parameters.
func (p Params) ValidateBasic() error {
	if p.Owner == (common.Address{}) {
		return errors.Wrap(ErrInvalidAddress, "owner cannot be the zero address")
	}
	return nil
}

// Config holds the quorum and liveness settings of the relay.
type Config struct {
	MinDeliverySignatures uint32 `json:"min_delivery_signatures"`
	MinReceiptSignatures  uint32 `json:"min_receipt_signatures"`
	MinTTL                uint64 `json:"min_ttl"`
	MaxTTL                uint64 `json:"max_ttl"`
	IncomingTTL           uint64 `json:"incoming_ttl"`
}

// DefaultConfig returns the configuration installed at genesis.
func DefaultConfig() Config {
	return Config{
		MinDeliverySignatures: 1,
		MinReceiptSignatures:  1,
		MinTTL:                20,
		MaxTTL:                200,
		IncomingTTL:           30,
	}
}

func (c Config) ValidateBasic() error {
	if c.MinDeliverySignatures == 0 {
		return errors.Wrap(ErrInvalidConfig, "min delivery signatures must be at least 1")
	}
	if c.MinReceiptSignatures == 0 {
		return errors.Wrap(ErrInvalidConfig, "min receipt signatures must be at least 1")
	}
	if c.MinTTL > c.MaxTTL {
		return errors.Wrapf(ErrInvalidConfig, "min ttl %d exceeds max ttl %d", c.MinTTL, c.MaxTTL)
	}
	return nil
}

// CheckTTL reports whether ttl lies within [MinTTL, MaxTTL].
func (c Config) CheckTTL(ttl uint64) error {
	if ttl < c.MinTTL {
		return errors.Wrapf(ErrTTLTooSmall, "ttl %d below %d", ttl, c.MinTTL)
	}
	if ttl > c.MaxTTL {
		return errors.Wrapf(ErrTTLTooLarge, "ttl %d above %d", ttl, c.MaxTTL)
	}
	return nil
}
