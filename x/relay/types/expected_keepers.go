package types

import (
	"context"

	"github.com/ethereum/go-ethereum/common"
)

// MessageRecipient handles payloads delivered by the relay.
// origin is the relay's own address; sender is the remote sender identifier.
// Returning an error aborts the whole receive.
type MessageRecipient interface {
	ProcessMessage(ctx context.Context, origin common.Address, sender common.Hash, payload []byte) error
}
