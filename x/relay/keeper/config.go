package keeper

import (
	"context"

	"cosmossdk.io/errors"
	"github.com/ethereum/go-ethereum/common"

	"github.com/acurast/hyperdrive-relay/x/relay/types"
)

// Configure replaces the relay configuration. Owner only.
func (k Keeper) Configure(ctx context.Context, caller common.Address, cfg types.Config) error {
	if err := k.requireOwner(ctx, caller); err != nil {
		return err
	}
	if err := cfg.ValidateBasic(); err != nil {
		return err
	}

	if err := k.Config.Set(ctx, cfg); err != nil {
		return err
	}

	k.Logger().Info("relay config updated",
		"min_delivery_signatures", cfg.MinDeliverySignatures,
		"min_receipt_signatures", cfg.MinReceiptSignatures,
		"min_ttl", cfg.MinTTL,
		"max_ttl", cfg.MaxTTL,
		"incoming_ttl", cfg.IncomingTTL,
	)

	event, err := types.NewConfigUpdatedEvent(types.ConfigUpdatedEvent{Config: cfg})
	if err != nil {
		return err
	}
	emitEvent(ctx, event)

	return nil
}

// GetConfig returns the active relay configuration.
func (k Keeper) GetConfig(ctx context.Context) (types.Config, error) {
	return k.Config.Get(ctx)
}

// AddOracle admits addr to the oracle set. Owner only.
func (k Keeper) AddOracle(ctx context.Context, caller, addr common.Address) error {
	if err := k.requireOwner(ctx, caller); err != nil {
		return err
	}
	if addr == (common.Address{}) {
		return errors.Wrap(types.ErrInvalidAddress, "oracle cannot be the zero address")
	}

	exists, err := k.Oracles.Has(ctx, addr.Bytes())
	if err != nil {
		return err
	}
	if exists {
		return errors.Wrapf(types.ErrOracleAlreadyExists, "%s", addr.Hex())
	}

	if err := k.Oracles.Set(ctx, addr.Bytes()); err != nil {
		return err
	}

	event, err := types.NewOracleEvent(types.EventTypeOracleAdded, types.OracleEvent{Oracle: addr.Hex()})
	if err != nil {
		return err
	}
	emitEvent(ctx, event)

	return nil
}

// RemoveOracle drops addr from the oracle set. Owner only.
func (k Keeper) RemoveOracle(ctx context.Context, caller, addr common.Address) error {
	if err := k.requireOwner(ctx, caller); err != nil {
		return err
	}

	exists, err := k.Oracles.Has(ctx, addr.Bytes())
	if err != nil {
		return err
	}
	if !exists {
		return errors.Wrapf(types.ErrOracleNotFound, "%s", addr.Hex())
	}

	if err := k.Oracles.Remove(ctx, addr.Bytes()); err != nil {
		return err
	}

	event, err := types.NewOracleEvent(types.EventTypeOracleRemoved, types.OracleEvent{Oracle: addr.Hex()})
	if err != nil {
		return err
	}
	emitEvent(ctx, event)

	return nil
}

// IsOracle reports whether addr may sign digests.
func (k Keeper) IsOracle(ctx context.Context, addr common.Address) (bool, error) {
	return k.Oracles.Has(ctx, addr.Bytes())
}

// GetOracles lists the oracle set in key order.
func (k Keeper) GetOracles(ctx context.Context) ([]common.Address, error) {
	var oracles []common.Address
	err := k.Oracles.Walk(ctx, nil, func(key []byte) (bool, error) {
		oracles = append(oracles, common.BytesToAddress(key))
		return false, nil
	})
	return oracles, err
}
