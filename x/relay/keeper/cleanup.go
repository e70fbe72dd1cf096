package keeper

import (
	"context"
	"errors"

	"cosmossdk.io/collections"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/ethereum/go-ethereum/common"

	"github.com/acurast/hyperdrive-relay/x/relay/types"
)

// CleanIncomingIndex prunes incoming entries older than IncomingTTL. Owner only.
// Absent or unexpired ids are skipped. An empty list sweeps the whole index.
// Pruned ids lose their replay protection.
func (k Keeper) CleanIncomingIndex(ctx context.Context, caller common.Address, ids []common.Hash) (uint64, error) {
	if err := k.requireOwner(ctx, caller); err != nil {
		return 0, err
	}

	cfg, err := k.Config.Get(ctx)
	if err != nil {
		return 0, err
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	height := sdkCtx.BlockHeight()

	var expired [][]byte
	if len(ids) == 0 {
		err = k.Incoming.Walk(ctx, nil, func(key []byte, msg types.IncomingMessage) (bool, error) {
			if msg.Expired(height, cfg.IncomingTTL) {
				expired = append(expired, key)
			}
			return false, nil
		})
		if err != nil {
			return 0, err
		}
	} else {
		seen := make(map[common.Hash]struct{}, len(ids))
		for _, id := range ids {
			if _, dup := seen[id]; dup {
				continue
			}
			seen[id] = struct{}{}

			msg, err := k.Incoming.Get(ctx, id.Bytes())
			if errors.Is(err, collections.ErrNotFound) {
				continue
			}
			if err != nil {
				return 0, err
			}
			if msg.Expired(height, cfg.IncomingTTL) {
				expired = append(expired, id.Bytes())
			}
		}
	}

	var removed uint64
	for _, key := range expired {
		if err := k.Incoming.Remove(ctx, key); err != nil {
			return 0, err
		}
		removed++
	}

	event, err := types.NewIncomingCleanedEvent(types.IncomingCleanedEvent{
		Removed: removed,
		Height:  height,
	})
	if err != nil {
		return 0, err
	}
	emitEvent(ctx, event)

	return removed, nil
}
