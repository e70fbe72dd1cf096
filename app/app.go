package app

import (
	"fmt"

	dbm "github.com/cosmos/cosmos-db"

	"cosmossdk.io/log"
	"cosmossdk.io/store"
	"cosmossdk.io/store/metrics"
	storetypes "cosmossdk.io/store/types"

	cmtproto "github.com/cometbft/cometbft/proto/tendermint/types"
	"github.com/cosmos/cosmos-sdk/runtime"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/ethereum/go-ethereum/common"

	relaykeeper "github.com/acurast/hyperdrive-relay/x/relay/keeper"
	relaytypes "github.com/acurast/hyperdrive-relay/x/relay/types"
	tokenkeeper "github.com/acurast/hyperdrive-relay/x/token/keeper"
	tokentypes "github.com/acurast/hyperdrive-relay/x/token/types"
	bridgekeeper "github.com/acurast/hyperdrive-relay/x/tokenbridge/keeper"
	bridgetypes "github.com/acurast/hyperdrive-relay/x/tokenbridge/types"
)

const Name = "hyperdrive"

// App wires the token ledger, the relay ledger and the token bridge over one
// commit multistore.
type App struct {
	logger log.Logger

	cms  storetypes.CommitMultiStore
	keys map[string]*storetypes.KVStoreKey

	height int64

	TokenKeeper  tokenkeeper.Keeper
	RelayKeeper  relaykeeper.Keeper
	BridgeKeeper bridgekeeper.Keeper
}

// Option customizes an App before its stores are loaded.
type Option func(*App) error

// WithRestrictor makes a transfer policy resolvable at addr.
func WithRestrictor(addr common.Address, r tokentypes.TransferRestrictor) Option {
	return func(a *App) error {
		return a.TokenKeeper.RegisterRestrictor(addr, r)
	}
}

// WithRecipient registers an additional relay message recipient.
func WithRecipient(addr common.Address, r relaytypes.MessageRecipient) Option {
	return func(a *App) error {
		return a.RelayKeeper.RegisterRecipient(addr, r)
	}
}

// New creates the application on top of db.
func New(logger log.Logger, db dbm.DB, opts ...Option) (*App, error) {
	a := &App{
		logger: logger.With("app", Name),
		keys:   storetypes.NewKVStoreKeys(tokentypes.StoreKey, relaytypes.StoreKey, bridgetypes.StoreKey),
	}

	a.cms = store.NewCommitMultiStore(db, logger, metrics.NewNoOpMetrics())
	for _, key := range a.keys {
		a.cms.MountStoreWithDB(key, storetypes.StoreTypeIAVL, db)
	}

	a.TokenKeeper = tokenkeeper.NewKeeper(runtime.NewKVStoreService(a.keys[tokentypes.StoreKey]), logger)
	a.RelayKeeper = relaykeeper.NewKeeper(runtime.NewKVStoreService(a.keys[relaytypes.StoreKey]), logger)
	a.BridgeKeeper = bridgekeeper.NewKeeper(
		runtime.NewKVStoreService(a.keys[bridgetypes.StoreKey]),
		logger,
		a.TokenKeeper,
		a.RelayKeeper,
	)

	if err := a.RelayKeeper.RegisterRecipient(a.BridgeKeeper.Address(), a.BridgeKeeper); err != nil {
		return nil, fmt.Errorf("failed to register bridge recipient: %w", err)
	}

	for _, opt := range opts {
		if err := opt(a); err != nil {
			return nil, err
		}
	}

	if err := a.cms.LoadLatestVersion(); err != nil {
		return nil, fmt.Errorf("failed to load stores: %w", err)
	}
	a.height = a.cms.LastCommitID().Version

	return a, nil
}

func (a *App) Logger() log.Logger {
	return a.logger
}

// Height returns the height of the last committed block.
func (a *App) Height() int64 {
	return a.height
}

// Context returns a read-only view of committed state.
func (a *App) Context() sdk.Context {
	return sdk.NewContext(a.cms.CacheMultiStore(), cmtproto.Header{Height: a.height}, false, a.logger)
}

// Exec runs fn as one transaction in the block being built. State written by
// fn is kept only when fn succeeds; the returned events are those it emitted.
func (a *App) Exec(fn func(ctx sdk.Context) error) (sdk.Events, error) {
	ms := a.cms.CacheMultiStore()
	ctx := sdk.NewContext(ms, cmtproto.Header{Height: a.height + 1}, false, a.logger).
		WithEventManager(sdk.NewEventManager())

	if err := fn(ctx); err != nil {
		return nil, err
	}

	ms.Write()
	return ctx.EventManager().Events(), nil
}

// Commit seals the current block and advances the height.
func (a *App) Commit() storetypes.CommitID {
	id := a.cms.Commit()
	a.height = id.Version
	return id
}

// AdvanceBlocks commits n empty blocks.
func (a *App) AdvanceBlocks(n int) {
	for i := 0; i < n; i++ {
		a.Commit()
	}
}
