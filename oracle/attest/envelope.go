package attest

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"

	relaytypes "github.com/acurast/hyperdrive-relay/x/relay/types"
)

// Envelope is an incoming message observed on the remote chain.
type Envelope struct {
	OriginChain    relaytypes.ChainTag `json:"origin_chain"`
	Sender         common.Hash         `json:"sender"`
	Nonce          common.Hash         `json:"nonce"`
	RecipientChain relaytypes.ChainTag `json:"recipient_chain"`
	Recipient      common.Address      `json:"recipient"`
	Payload        hexutil.Bytes       `json:"payload"`
	RelayerID      common.Hash         `json:"relayer_id"`
}

// ID is the relay ledger's identifier for the envelope.
func (e Envelope) ID() common.Hash {
	return relaytypes.IncomingMessageID(e.Sender, e.Nonce)
}

// Digest is what oracles sign to attest the envelope.
func (e Envelope) Digest() common.Hash {
	return relaytypes.ReceiptDigest(e.OriginChain, e.Sender, e.Nonce, e.RecipientChain, e.Recipient, e.Payload)
}

// Delivery is a confirmation that an outgoing message arrived on the remote chain.
type Delivery struct {
	Message   relaytypes.OutgoingMessage `json:"message"`
	Confirmer common.Address             `json:"confirmer"`
}

// ID is the relay ledger's identifier for the confirmed message.
func (d Delivery) ID() common.Hash {
	return d.Message.ID()
}

// Digest is what oracles sign to confirm delivery.
func (d Delivery) Digest() common.Hash {
	return relaytypes.DeliveryDigest(d.Message, d.Confirmer)
}
