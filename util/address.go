package util

import (
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

// convert the 0x and/or bech32 address to raw bytes
func ConvertAnyAddressToBytes(addr string) ([]byte, error) {
	if len(addr) == 0 {
		return common.Address{}.Bytes(), nil
	}

	if common.IsHexAddress(addr) {
		return common.HexToAddress(addr).Bytes(), nil
	}

	return sdk.AccAddressFromBech32(addr)
}

// ParseAddress parses a 0x or bech32 address into its 20-byte form.
func ParseAddress(addr string) (common.Address, error) {
	bz, err := ConvertAnyAddressToBytes(addr)
	if err != nil {
		return common.Address{}, err
	}
	if len(bz) != common.AddressLength {
		return common.Address{}, fmt.Errorf("invalid address length: got %d, want %d", len(bz), common.AddressLength)
	}
	return common.BytesToAddress(bz), nil
}

// ParseHash parses a 32-byte identifier. A 20-byte address is accepted and
// left-padded to 32 bytes, matching how addresses are widened on the relay.
func ParseHash(s string) (common.Hash, error) {
	bz, err := hexutil.Decode(with0x(s))
	if err != nil {
		return common.Hash{}, fmt.Errorf("invalid hex %q: %w", s, err)
	}
	switch len(bz) {
	case common.HashLength, common.AddressLength:
		return common.BytesToHash(bz), nil
	default:
		return common.Hash{}, fmt.Errorf("invalid identifier length: got %d, want %d", len(bz), common.HashLength)
	}
}

// ParseBytes parses a 0x-prefixed (or bare) hex payload. An empty string is an empty payload.
func ParseBytes(s string) ([]byte, error) {
	if s == "" || s == "0x" {
		return []byte{}, nil
	}
	bz, err := hexutil.Decode(with0x(s))
	if err != nil {
		return nil, fmt.Errorf("invalid hex %q: %w", s, err)
	}
	return bz, nil
}

// get address pair returns both the bech32 and the 0x addresses, or an error
func GetAddressPair(addr string) (sdk.AccAddress, common.Address, error) {
	a, err := ParseAddress(addr)
	if err != nil {
		return nil, common.Address{}, err
	}
	return sdk.AccAddress(a.Bytes()), a, nil
}

func with0x(s string) string {
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		return "0x" + s[2:]
	}
	return "0x" + s
}
