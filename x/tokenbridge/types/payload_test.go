package types_test

import (
	"encoding/hex"
	"math/big"
	"testing"

	"cosmossdk.io/math"
	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/require"

	"github.com/acurast/hyperdrive-relay/x/tokenbridge/types"
)

func TestDecodeActionTag(t *testing.T) {
	_, err := types.DecodeActionTag([]byte{0x00, 0x00})
	require.ErrorIs(t, err, types.ErrInvalidAction)

	tag, err := types.DecodeActionTag([]byte{0x00, 0x00, 0x00, 0x01, 0xff})
	require.NoError(t, err)
	require.Equal(t, types.ActionEnable, tag)
}

func TestTransferPayloadLayout(t *testing.T) {
	recipient := common.HexToAddress("0x5780dFA96011dC8F6a85f94640aCa0490949dfcA")

	payload, err := types.EncodeTransfer(types.TransferAction{
		Amount:        math.NewInt(1_000_000_000_000),
		AssetID:       0,
		TransferNonce: 7,
		Recipient:     recipient,
	})
	require.NoError(t, err)
	require.Len(t, payload, types.TransferPayloadLength)
	require.Equal(t, 48, types.TransferPayloadLength)

	expected := "00000000" + // tag
		"0000000000000000000000e8d4a51000" + // amount u128
		"00000000" + // asset id
		"00000007" + // nonce
		"5780dfa96011dc8f6a85f94640aca0490949dfca"
	require.Equal(t, expected, hex.EncodeToString(payload))

	decoded, err := types.DecodeTransfer(payload)
	require.NoError(t, err)
	require.True(t, decoded.Amount.Equal(math.NewInt(1_000_000_000_000)))
	require.Equal(t, uint32(7), decoded.TransferNonce)
	require.Equal(t, recipient, decoded.Recipient)

	_, err = types.DecodeTransfer(payload[:47])
	require.ErrorIs(t, err, types.ErrInvalidActionPayload)
}

func TestEncodeOutgoingTransfer(t *testing.T) {
	dest := common.HexToHash("0x0102")

	payload, err := types.EncodeOutgoingTransfer(math.NewInt(256), 3, dest)
	require.NoError(t, err)
	require.Len(t, payload, types.OutgoingTransferPayloadLength)
	require.Equal(t, []byte{0, 0, 0, 0}, payload[:4])
	require.Equal(t, byte(1), payload[18])
	require.Equal(t, byte(0), payload[19])
	require.Equal(t, []byte{0, 0, 0, 3}, payload[24:28])
	require.Equal(t, dest.Bytes(), payload[28:])

	tooLarge := math.NewIntFromBigInt(new(big.Int).Lsh(big.NewInt(1), 128))
	_, err = types.EncodeOutgoingTransfer(tooLarge, 0, dest)
	require.ErrorIs(t, err, types.ErrAmountOverflow)

	maxU128 := math.NewIntFromBigInt(new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 128), big.NewInt(1)))
	payload, err = types.EncodeOutgoingTransfer(maxU128, 0, dest)
	require.NoError(t, err)
	for _, b := range payload[4:20] {
		require.Equal(t, byte(0xff), b)
	}
}

func TestEnablePayload(t *testing.T) {
	payload := types.EncodeEnable(1)
	require.Equal(t, []byte{0, 0, 0, 1, 1}, payload)

	flag, err := types.DecodeEnable(payload)
	require.NoError(t, err)
	require.Equal(t, uint8(1), flag)

	_, err = types.DecodeEnable(payload[:4])
	require.ErrorIs(t, err, types.ErrInvalidActionPayload)
}
