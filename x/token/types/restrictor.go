package types

import (
	"context"

	"cosmossdk.io/math"
	"github.com/ethereum/go-ethereum/common"
)

var (
	// PermissiveRestrictorAddress disables the transfer policy entirely.
	PermissiveRestrictorAddress = common.Address{}

	// DefaultRestrictorAddress is the block-all policy installed at genesis.
	DefaultRestrictorAddress = common.HexToAddress("0x000000000000000000000000000000000000dEaD")
)

// TransferRestrictor decides whether an ordinary transfer is currently permitted.
// Crosschain mint and burn never consult it.
type TransferRestrictor interface {
	IsTransferAllowed(ctx context.Context, from, to common.Address, amount math.Int) bool
}

// BlockAllRestrictor rejects every transfer.
type BlockAllRestrictor struct{}

var _ TransferRestrictor = BlockAllRestrictor{}

func (BlockAllRestrictor) IsTransferAllowed(context.Context, common.Address, common.Address, math.Int) bool {
	return false
}

// AllowListRestrictor permits transfers where either side is on the list.
type AllowListRestrictor struct {
	allowed map[common.Address]struct{}
}

var _ TransferRestrictor = (*AllowListRestrictor)(nil)

// NewAllowListRestrictor builds an allow-list policy. An empty list blocks everything.
func NewAllowListRestrictor(addrs ...common.Address) *AllowListRestrictor {
	r := &AllowListRestrictor{allowed: make(map[common.Address]struct{}, len(addrs))}
	for _, a := range addrs {
		r.allowed[a] = struct{}{}
	}
	return r
}

func (r *AllowListRestrictor) IsTransferAllowed(_ context.Context, from, to common.Address, _ math.Int) bool {
	if _, ok := r.allowed[from]; ok {
		return true
	}
	_, ok := r.allowed[to]
	return ok
}

// Allowed reports whether addr is on the list.
func (r *AllowListRestrictor) Allowed(addr common.Address) bool {
	_, ok := r.allowed[addr]
	return ok
}
