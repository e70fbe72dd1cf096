package keeper

import (
	"context"
	"errors"

	"cosmossdk.io/collections"
	sdkerrors "cosmossdk.io/errors"
	"cosmossdk.io/math"

	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/ethereum/go-ethereum/common"

	"github.com/acurast/hyperdrive-relay/x/tokenbridge/types"
)

// RetryTransferNative re-sends a recorded transfer without burning again.
//
// The relay rejects the resend with "Message with same nonce pending" while
// the previous send is undelivered and inside its TTL; after it lapsed the
// resend replaces it.
func (k Keeper) RetryTransferNative(ctx context.Context, caller common.Address, nonce uint64, fee math.Int) error {
	transfer, err := k.OutgoingTransfers.Get(ctx, nonce)
	if errors.Is(err, collections.ErrNotFound) {
		return sdkerrors.Wrapf(types.ErrTransferNotFound, "nonce %d", nonce)
	}
	if err != nil {
		return err
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	tmpCtx, commit := sdkCtx.CacheContext()

	if err := k.send(tmpCtx, transfer, fee, true); err != nil {
		return err
	}

	k.Logger().Info("transfer retried", "nonce", nonce, "caller", caller.Hex())

	commit()
	return nil
}
