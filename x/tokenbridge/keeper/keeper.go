package keeper

import (
	"context"
	"sync/atomic"

	"cosmossdk.io/collections"
	storetypes "cosmossdk.io/core/store"
	"cosmossdk.io/errors"
	"cosmossdk.io/log"

	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkErrors "github.com/cosmos/cosmos-sdk/types/errors"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"
	"github.com/ethereum/go-ethereum/common"

	"github.com/acurast/hyperdrive-relay/utils/collcodec"
	relaytypes "github.com/acurast/hyperdrive-relay/x/relay/types"
	"github.com/acurast/hyperdrive-relay/x/tokenbridge/types"
)

var _ relaytypes.MessageRecipient = Keeper{}

type Keeper struct {
	logger log.Logger

	// state management
	Params                 collections.Item[types.Params]
	OutgoingTransfers      collections.Map[uint64, types.BridgeTransfer]
	NextTransferNonce      collections.Sequence
	IncomingTransferNonces collections.KeySet[uint32]

	tokenKeeper types.TokenKeeper
	relayKeeper types.RelayKeeper

	// processing is shared by keeper copies and rejects nested ProcessMessage calls.
	processing *atomic.Bool
}

// NewKeeper creates a new Keeper instance
func NewKeeper(
	storeService storetypes.KVStoreService,
	logger log.Logger,
	tokenKeeper types.TokenKeeper,
	relayKeeper types.RelayKeeper,
) Keeper {
	logger = logger.With(log.ModuleKey, "x/"+types.ModuleName)

	sb := collections.NewSchemaBuilder(storeService)

	k := Keeper{
		logger: logger,

		Params:                 collections.NewItem(sb, types.ParamsKey, types.ParamsName, collcodec.JSONValue[types.Params]()),
		OutgoingTransfers:      collections.NewMap(sb, types.OutgoingTransfersKey, types.OutgoingTransfersName, collections.Uint64Key, collcodec.JSONValue[types.BridgeTransfer]()),
		NextTransferNonce:      collections.NewSequence(sb, types.NextTransferNonceKey, types.NextTransferNonceName),
		IncomingTransferNonces: collections.NewKeySet(sb, types.IncomingTransferNoncesKey, types.IncomingTransferNoncesName, collections.Uint32Key),

		tokenKeeper: tokenKeeper,
		relayKeeper: relayKeeper,

		processing: new(atomic.Bool),
	}

	return k
}

func (k Keeper) Logger() log.Logger {
	return k.logger
}

// Address is the account the bridge acts as towards the token and relay ledgers.
func (k Keeper) Address() common.Address {
	return common.BytesToAddress(authtypes.NewModuleAddress(types.ModuleName))
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
