package keeper

import (
	"context"

	"cosmossdk.io/collections"
	storetypes "cosmossdk.io/core/store"
	"cosmossdk.io/errors"
	"cosmossdk.io/log"

	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkErrors "github.com/cosmos/cosmos-sdk/types/errors"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"
	"github.com/ethereum/go-ethereum/common"

	"github.com/acurast/hyperdrive-relay/utils/collcodec"
	"github.com/acurast/hyperdrive-relay/x/relay/types"
)

type Keeper struct {
	logger log.Logger

	// state management
	Params   collections.Item[types.Params]
	Config   collections.Item[types.Config]
	Oracles  collections.KeySet[[]byte]
	Outgoing collections.Map[[]byte, types.OutgoingMessage]
	Incoming collections.Map[[]byte, types.IncomingMessage]

	// recipients and guard are shared by every copy of the keeper.
	recipients map[common.Address]types.MessageRecipient
	guard      *reentrancyGuard
}

// NewKeeper creates a new Keeper instance
func NewKeeper(
	storeService storetypes.KVStoreService,
	logger log.Logger,
) Keeper {
	logger = logger.With(log.ModuleKey, "x/"+types.ModuleName)

	sb := collections.NewSchemaBuilder(storeService)

	k := Keeper{
		logger: logger,

		Params:   collections.NewItem(sb, types.ParamsKey, types.ParamsName, collcodec.JSONValue[types.Params]()),
		Config:   collections.NewItem(sb, types.ConfigKey, types.ConfigName, collcodec.JSONValue[types.Config]()),
		Oracles:  collections.NewKeySet(sb, types.OraclesKey, types.OraclesName, collections.BytesKey),
		Outgoing: collections.NewMap(sb, types.OutgoingKey, types.OutgoingName, collections.BytesKey, collcodec.JSONValue[types.OutgoingMessage]()),
		Incoming: collections.NewMap(sb, types.IncomingKey, types.IncomingName, collections.BytesKey, collcodec.JSONValue[types.IncomingMessage]()),

		recipients: make(map[common.Address]types.MessageRecipient),
		guard:      new(reentrancyGuard),
	}

	return k
}

func (k Keeper) Logger() log.Logger {
	return k.logger
}

// Address is the origin the relay presents to message recipients.
func (k Keeper) Address() common.Address {
	return common.BytesToAddress(authtypes.NewModuleAddress(types.ModuleName))
}

// RegisterRecipient binds a local address to the handler invoked for messages addressed to it.
func (k Keeper) RegisterRecipient(addr common.Address, r types.MessageRecipient) error {
	if addr == (common.Address{}) {
		return errors.Wrap(types.ErrInvalidAddress, "recipient cannot be the zero address")
	}
	if _, ok := k.recipients[addr]; ok {
		return errors.Wrapf(types.ErrRecipientRegistered, "%s", addr.Hex())
	}
	k.recipients[addr] = r
	return nil
}

func (k Keeper) requireOwner(ctx context.Context, caller common.Address) error {
	params, err := k.Params.Get(ctx)
	if err != nil {
		return err
	}
	if params.Owner != caller {
		return errors.Wrapf(sdkErrors.ErrUnauthorized, "invalid owner; expected %s, got %s", params.Owner.Hex(), caller.Hex())
	}
	return nil
}

func emitEvent(ctx context.Context, event sdk.Event) {
	sdk.UnwrapSDKContext(ctx).EventManager().EmitEvent(event)
}
