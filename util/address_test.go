package util

import (
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/require"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

func TestParseAddress(t *testing.T) {
	hexAddr := "0x00000000000000000000000000000000000000e1"

	got, err := ParseAddress(hexAddr)
	require.NoError(t, err)
	require.Equal(t, common.HexToAddress(hexAddr), got)

	bech32 := sdk.AccAddress(got.Bytes()).String()
	fromBech32, err := ParseAddress(bech32)
	require.NoError(t, err)
	require.Equal(t, got, fromBech32)

	empty, err := ParseAddress("")
	require.NoError(t, err)
	require.Equal(t, common.Address{}, empty)

	_, err = ParseAddress("not-an-address")
	require.Error(t, err)

	acc, evm, err := GetAddressPair(hexAddr)
	require.NoError(t, err)
	require.Equal(t, got, evm)
	require.Equal(t, got.Bytes(), acc.Bytes())
}

func TestParseHash(t *testing.T) {
	full := "0x6d6f646c687970746f6b656e0000000000000000000000000000000000000000"
	h, err := ParseHash(full)
	require.NoError(t, err)
	require.Equal(t, common.HexToHash(full), h)

	bare, err := ParseHash(full[2:])
	require.NoError(t, err)
	require.Equal(t, h, bare)

	widened, err := ParseHash("0x00000000000000000000000000000000000000e1")
	require.NoError(t, err)
	require.Equal(t, common.HexToHash("0xe1"), widened)

	_, err = ParseHash("0x0102")
	require.ErrorContains(t, err, "invalid identifier length")

	_, err = ParseHash("0xzz")
	require.ErrorContains(t, err, "invalid hex")
}

func TestParseBytes(t *testing.T) {
	bz, err := ParseBytes("")
	require.NoError(t, err)
	require.Empty(t, bz)

	bz, err = ParseBytes("0x0000000101")
	require.NoError(t, err)
	require.Equal(t, []byte{0, 0, 0, 1, 1}, bz)

	_, err = ParseBytes("0x0")
	require.Error(t, err)
}
