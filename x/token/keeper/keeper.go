package keeper

import (
	"context"

	"cosmossdk.io/collections"
	storetypes "cosmossdk.io/core/store"
	"cosmossdk.io/errors"
	"cosmossdk.io/log"
	"cosmossdk.io/math"

	sdk "github.com/cosmos/cosmos-sdk/types"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"
	"github.com/ethereum/go-ethereum/common"

	"github.com/acurast/hyperdrive-relay/utils/collcodec"
	"github.com/acurast/hyperdrive-relay/x/token/types"
)

type Keeper struct {
	logger log.Logger

	// state management
	Params      collections.Item[types.Params]
	Metadata    collections.Item[types.Metadata]
	Balances    collections.Map[[]byte, math.Int]
	Allowances  collections.Map[collections.Pair[[]byte, []byte], math.Int]
	TotalSupply collections.Item[math.Int]
	Roles       collections.KeySet[collections.Pair[[]byte, []byte]]
	Restrictor  collections.Item[[]byte]

	// restrictors resolves restrictor addresses to policies. Shared by keeper copies.
	restrictors map[common.Address]types.TransferRestrictor
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

		Params:      collections.NewItem(sb, types.ParamsKey, types.ParamsName, collcodec.JSONValue[types.Params]()),
		Metadata:    collections.NewItem(sb, types.MetadataKey, types.MetadataName, collcodec.JSONValue[types.Metadata]()),
		Balances:    collections.NewMap(sb, types.BalancesKey, types.BalancesName, collections.BytesKey, sdk.IntValue),
		Allowances:  collections.NewMap(sb, types.AllowancesKey, types.AllowancesName, collections.PairKeyCodec(collections.BytesKey, collections.BytesKey), sdk.IntValue),
		TotalSupply: collections.NewItem(sb, types.TotalSupplyKey, types.TotalSupplyName, sdk.IntValue),
		Roles:       collections.NewKeySet(sb, types.RolesKey, types.RolesName, collections.PairKeyCodec(collections.BytesKey, collections.BytesKey)),
		Restrictor:  collections.NewItem(sb, types.RestrictorKey, types.RestrictorName, collections.BytesValue),

		restrictors: map[common.Address]types.TransferRestrictor{
			types.DefaultRestrictorAddress: types.BlockAllRestrictor{},
		},
	}

	return k
}

func (k Keeper) Logger() log.Logger {
	return k.logger
}

// Address returns the module account address in EVM form.
func (k Keeper) Address() common.Address {
	return common.BytesToAddress(authtypes.NewModuleAddress(types.ModuleName))
}

// RegisterRestrictor makes a policy resolvable at addr.
func (k Keeper) RegisterRestrictor(addr common.Address, r types.TransferRestrictor) error {
	if addr == types.PermissiveRestrictorAddress {
		return errors.Wrap(types.ErrInvalidAddress, "cannot register a restrictor at the zero address")
	}
	if _, ok := k.restrictors[addr]; ok {
		return errors.Wrapf(types.ErrRestrictorAlreadyExists, "%s", addr.Hex())
	}
	k.restrictors[addr] = r
	return nil
}

func emitEvent(ctx context.Context, event sdk.Event) {
	sdk.UnwrapSDKContext(ctx).EventManager().EmitEvent(event)
}
