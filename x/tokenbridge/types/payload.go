package types

import (
	"encoding/binary"

	"cosmossdk.io/errors"
	"cosmossdk.io/math"
	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
)

// Action tags, big-endian u32 at the start of every bridge payload.
const (
	ActionTransfer uint32 = 0
	ActionEnable   uint32 = 1
)

const (
	actionTagLength = 4
	amountLength    = 16

	// TransferPayloadLength is tag | amount u128 | assetId u32 | nonce u32 | recipient [20].
	TransferPayloadLength = actionTagLength + amountLength + 4 + 4 + common.AddressLength

	// EnablePayloadLength is tag | flag u8.
	EnablePayloadLength = actionTagLength + 1

	// OutgoingTransferPayloadLength is tag | amount u128 | assetId u32 | nonce u32 | dest [32].
	OutgoingTransferPayloadLength = actionTagLength + amountLength + 4 + 4 + common.HashLength
)

// NativeAssetID is the only asset the bridge moves.
const NativeAssetID uint32 = 0

// TransferAction is an incoming transfer decoded from a relay payload.
type TransferAction struct {
	Amount        math.Int
	AssetID       uint32
	TransferNonce uint32
	Recipient     common.Address
}

// DecodeActionTag reads the leading action tag.
func DecodeActionTag(payload []byte) (uint32, error) {
	if len(payload) < actionTagLength {
		return 0, errors.Wrapf(ErrInvalidAction, "payload length %d", len(payload))
	}
	return binary.BigEndian.Uint32(payload[:actionTagLength]), nil
}

// DecodeTransfer decodes a full transfer payload including its tag.
func DecodeTransfer(payload []byte) (TransferAction, error) {
	if len(payload) != TransferPayloadLength {
		return TransferAction{}, errors.Wrapf(ErrInvalidActionPayload, "transfer payload length %d, want %d", len(payload), TransferPayloadLength)
	}

	body := payload[actionTagLength:]
	amount := new(uint256.Int).SetBytes(body[:amountLength])
	body = body[amountLength:]

	return TransferAction{
		Amount:        math.NewIntFromBigInt(amount.ToBig()),
		AssetID:       binary.BigEndian.Uint32(body[0:4]),
		TransferNonce: binary.BigEndian.Uint32(body[4:8]),
		Recipient:     common.BytesToAddress(body[8:]),
	}, nil
}

// EncodeTransfer builds an incoming transfer payload.
func EncodeTransfer(a TransferAction) ([]byte, error) {
	amount, err := encodeU128(a.Amount)
	if err != nil {
		return nil, err
	}

	out := make([]byte, 0, TransferPayloadLength)
	out = binary.BigEndian.AppendUint32(out, ActionTransfer)
	out = append(out, amount...)
	out = binary.BigEndian.AppendUint32(out, a.AssetID)
	out = binary.BigEndian.AppendUint32(out, a.TransferNonce)
	out = append(out, a.Recipient.Bytes()...)
	return out, nil
}

// DecodeEnable decodes an enable payload and returns its flag.
func DecodeEnable(payload []byte) (uint8, error) {
	if len(payload) != EnablePayloadLength {
		return 0, errors.Wrapf(ErrInvalidActionPayload, "enable payload length %d, want %d", len(payload), EnablePayloadLength)
	}
	return payload[actionTagLength], nil
}

// EncodeEnable builds an enable payload.
func EncodeEnable(flag uint8) []byte {
	out := binary.BigEndian.AppendUint32(make([]byte, 0, EnablePayloadLength), ActionEnable)
	return append(out, flag)
}

// EncodeOutgoingTransfer builds the payload sent to the token pallet for a burn.
func EncodeOutgoingTransfer(amount math.Int, nonce uint32, dest common.Hash) ([]byte, error) {
	amt, err := encodeU128(amount)
	if err != nil {
		return nil, err
	}

	out := make([]byte, 0, OutgoingTransferPayloadLength)
	out = binary.BigEndian.AppendUint32(out, ActionTransfer)
	out = append(out, amt...)
	out = binary.BigEndian.AppendUint32(out, NativeAssetID)
	out = binary.BigEndian.AppendUint32(out, nonce)
	out = append(out, dest.Bytes()...)
	return out, nil
}

func encodeU128(amount math.Int) ([]byte, error) {
	if amount.IsNil() || amount.IsNegative() {
		return nil, errors.Wrapf(ErrAmountOverflow, "invalid amount %s", amount)
	}
	v, overflow := uint256.FromBig(amount.BigInt())
	if overflow || v.BitLen() > amountLength*8 {
		return nil, errors.Wrapf(ErrAmountOverflow, "%s", amount)
	}
	word := v.Bytes32()
	return word[32-amountLength:], nil
}
