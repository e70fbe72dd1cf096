package types

import (
	"math/big"

	"cosmossdk.io/math"
	"github.com/ethereum/go-ethereum/common"
)

// BridgeTransfer records a burn that was forwarded to the remote chain.
type BridgeTransfer struct {
	Sender common.Address `json:"sender"`
	Amount math.Int       `json:"amount"`
	Dest   common.Hash    `json:"dest"`
	Nonce  uint64         `json:"nonce"`
}

// RelayNonce is the relay-level nonce used when sending transfer nonce n.
func RelayNonce(n uint64) common.Hash {
	return common.BigToHash(new(big.Int).SetUint64(n))
}
