package types

//go:generate mockgen -source=expected_keepers.go -destination=../mocks/expected_keepers.go -package=mocks

import (
	"context"

	"cosmossdk.io/math"
	"github.com/ethereum/go-ethereum/common"

	relaytypes "github.com/acurast/hyperdrive-relay/x/relay/types"
)

// TokenKeeper is the crosschain surface of the token ledger.
type TokenKeeper interface {
	BalanceOf(ctx context.Context, addr common.Address) (math.Int, error)
	CrosschainMint(ctx context.Context, caller, to common.Address, amount math.Int) error
	CrosschainBurn(ctx context.Context, caller, from common.Address, amount math.Int) error
	UpdateTransferRestrictor(ctx context.Context, caller, restrictor common.Address) error
}

// RelayKeeper is the send side of the relay ledger.
type RelayKeeper interface {
	SendMessage(ctx context.Context, caller common.Address, nonce, recipient common.Hash, payload []byte, ttl uint64, fee math.Int) (common.Hash, error)
	GetConfig(ctx context.Context) (relaytypes.Config, error)
}
