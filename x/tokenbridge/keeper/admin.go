package keeper

import (
	"context"
	"strconv"

	"cosmossdk.io/errors"
	"github.com/ethereum/go-ethereum/common"

	"github.com/acurast/hyperdrive-relay/x/tokenbridge/types"
)

// UpdateRelayContract changes the only origin allowed to deliver messages. Owner only.
func (k Keeper) UpdateRelayContract(ctx context.Context, caller, relay common.Address) error {
	if err := k.requireOwner(ctx, caller); err != nil {
		return err
	}
	if relay == (common.Address{}) {
		return types.ErrInvalidRelayContract
	}

	params, err := k.Params.Get(ctx)
	if err != nil {
		return err
	}
	old := params.RelayContract
	params.RelayContract = relay

	return k.updateParams(ctx, params, types.EventTypeRelayContractUpdated, old.Hex(), relay.Hex())
}

// UpdateTokenPalletAccount changes the trusted remote sender. Owner only.
func (k Keeper) UpdateTokenPalletAccount(ctx context.Context, caller common.Address, account common.Hash) error {
	if err := k.requireOwner(ctx, caller); err != nil {
		return err
	}

	params, err := k.Params.Get(ctx)
	if err != nil {
		return err
	}
	old := params.TokenPalletAccount
	params.TokenPalletAccount = account

	return k.updateParams(ctx, params, types.EventTypePalletAccountUpdated, old.Hex(), account.Hex())
}

// SetOutgoingTTL changes the TTL used for outgoing transfers. It must lie
// within the relay's current [MinTTL, MaxTTL]. Owner only.
func (k Keeper) SetOutgoingTTL(ctx context.Context, caller common.Address, ttl uint64) error {
	if err := k.requireOwner(ctx, caller); err != nil {
		return err
	}

	cfg, err := k.relayKeeper.GetConfig(ctx)
	if err != nil {
		return err
	}
	if ttl < cfg.MinTTL {
		return errors.Wrapf(types.ErrOutgoingTTLTooSmall, "%d below %d", ttl, cfg.MinTTL)
	}
	if ttl > cfg.MaxTTL {
		return errors.Wrapf(types.ErrOutgoingTTLTooLarge, "%d above %d", ttl, cfg.MaxTTL)
	}

	params, err := k.Params.Get(ctx)
	if err != nil {
		return err
	}
	old := params.OutgoingTTL
	params.OutgoingTTL = ttl

	return k.updateParams(ctx, params, types.EventTypeOutgoingTTLUpdated, strconv.FormatUint(old, 10), strconv.FormatUint(ttl, 10))
}

// TransferOwnership hands the bridge to a new owner. Owner only.
func (k Keeper) TransferOwnership(ctx context.Context, caller, owner common.Address) error {
	if err := k.requireOwner(ctx, caller); err != nil {
		return err
	}
	if owner == (common.Address{}) {
		return errors.Wrap(types.ErrInvalidAddress, "owner cannot be the zero address")
	}

	params, err := k.Params.Get(ctx)
	if err != nil {
		return err
	}
	params.Owner = owner

	return k.updateParams(ctx, params, types.EventTypeOwnershipTransferred, caller.Hex(), owner.Hex())
}

func (k Keeper) updateParams(ctx context.Context, params types.Params, eventType, old, updated string) error {
	if err := k.Params.Set(ctx, params); err != nil {
		return err
	}

	event, err := types.NewUpdatedEvent(eventType, types.UpdatedEvent{Old: old, New: updated})
	if err != nil {
		return err
	}
	emitEvent(ctx, event)

	k.Logger().Info("bridge params updated", "event", eventType, "old", old, "new", updated)
	return nil
}
