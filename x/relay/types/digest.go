package types

import (
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
)

var (
	addressType, _ = abi.NewType("address", "", nil)
	bytes32Type, _ = abi.NewType("bytes32", "", nil)

	outgoingIDArgs = abi.Arguments{{Type: addressType}, {Type: bytes32Type}}
	incomingIDArgs = abi.Arguments{{Type: bytes32Type}, {Type: bytes32Type}}
)

// OutgoingMessageID is keccak256(abi.encode(address sender, bytes32 nonce)).
func OutgoingMessageID(sender common.Address, nonce common.Hash) common.Hash {
	bz, err := outgoingIDArgs.Pack(sender, [32]byte(nonce))
	if err != nil {
		panic(err)
	}
	return crypto.Keccak256Hash(bz)
}

// IncomingMessageID is keccak256(abi.encode(bytes32 sender, bytes32 nonce)).
func IncomingMessageID(sender, nonce common.Hash) common.Hash {
	bz, err := incomingIDArgs.Pack([32]byte(sender), [32]byte(nonce))
	if err != nil {
		panic(err)
	}
	return crypto.Keccak256Hash(bz)
}

// ReceiptDigest is the digest oracles sign to attest an incoming message.
//
//	keccak256(uint8 origin | bytes32 sender | bytes32 nonce | uint8 recipientChain | address recipient | payload)
func ReceiptDigest(origin ChainTag, sender, nonce common.Hash, recipientChain ChainTag, recipient common.Address, payload []byte) common.Hash {
	return crypto.Keccak256Hash(
		[]byte{byte(origin)},
		sender.Bytes(),
		nonce.Bytes(),
		[]byte{byte(recipientChain)},
		recipient.Bytes(),
		payload,
	)
}

// DeliveryDigest is the digest oracles sign to confirm an outgoing message arrived.
// The sender is widened to its 32-byte identifier form.
//
//	keccak256(uint8 dest | bytes32 sender | bytes32 nonce | uint8 dest | bytes32 recipient | payload | address confirmer)
func DeliveryDigest(m OutgoingMessage, confirmer common.Address) common.Hash {
	return crypto.Keccak256Hash(
		[]byte{byte(m.DestinationChain)},
		common.BytesToHash(m.Sender.Bytes()).Bytes(),
		m.Nonce.Bytes(),
		[]byte{byte(m.DestinationChain)},
		m.Recipient.Bytes(),
		m.Payload,
		confirmer.Bytes(),
	)
}
