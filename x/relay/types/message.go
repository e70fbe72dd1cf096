package types

import (
	"cosmossdk.io/math"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
)

type MessageStatus string

const (
	StatusPending   MessageStatus = "PENDING"
	StatusDelivered MessageStatus = "DELIVERED"
	StatusReceived  MessageStatus = "RECEIVED"
)

// OutgoingMessage is a message sent from this chain to the remote chain.
type OutgoingMessage struct {
	Sender           common.Address `json:"sender"`
	Nonce            common.Hash    `json:"nonce"`
	DestinationChain ChainTag       `json:"destination_chain"`
	Recipient        common.Hash    `json:"recipient"`
	Payload          hexutil.Bytes  `json:"payload"`
	Fee              math.Int       `json:"fee"`
	TTL              uint64         `json:"ttl"`
	SentAtHeight     int64          `json:"sent_at_height"`
	Status           MessageStatus  `json:"status"`
	DeliveredBy      common.Address `json:"delivered_by,omitempty"`
}

// ID returns the identity of the message.
func (m OutgoingMessage) ID() common.Hash {
	return OutgoingMessageID(m.Sender, m.Nonce)
}

// InFlight reports whether m is undelivered and still within its TTL at height.
func (m OutgoingMessage) InFlight(height int64) bool {
	if m.Status != StatusPending {
		return false
	}
	if height < m.SentAtHeight {
		return true
	}
	return uint64(height-m.SentAtHeight) < m.TTL
}

// IncomingMessage is a message received from the remote chain.
type IncomingMessage struct {
	OriginChain      ChainTag       `json:"origin_chain"`
	Sender           common.Hash    `json:"sender"`
	Nonce            common.Hash    `json:"nonce"`
	RecipientChain   ChainTag       `json:"recipient_chain"`
	Recipient        common.Address `json:"recipient"`
	Payload          hexutil.Bytes  `json:"payload"`
	Relayer          common.Address `json:"relayer"`
	RelayerID        common.Hash    `json:"relayer_id"`
	ReceivedAtHeight int64          `json:"received_at_height"`
	Status           MessageStatus  `json:"status"`
}

// ID returns the identity of the message.
func (m IncomingMessage) ID() common.Hash {
	return IncomingMessageID(m.Sender, m.Nonce)
}

// Expired reports whether the entry is older than incomingTTL at height.
func (m IncomingMessage) Expired(height int64, incomingTTL uint64) bool {
	if height < m.ReceivedAtHeight {
		return false
	}
	return uint64(height-m.ReceivedAtHeight) > incomingTTL
}
