package relayer

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"cosmossdk.io/log"
	dbm "github.com/cosmos/cosmos-db"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/acurast/hyperdrive-relay/app"
	"github.com/acurast/hyperdrive-relay/oracle/attest"
	"github.com/acurast/hyperdrive-relay/oracle/db"
	oerrors "github.com/acurast/hyperdrive-relay/oracle/errors"
	"github.com/acurast/hyperdrive-relay/oracle/store"
	relaytypes "github.com/acurast/hyperdrive-relay/x/relay/types"
	tokentypes "github.com/acurast/hyperdrive-relay/x/token/types"
	bridgetypes "github.com/acurast/hyperdrive-relay/x/tokenbridge/types"
)

func TestAppSubmitter_EnableTransfers(t *testing.T) {
	a, err := app.New(log.NewTestLogger(t), dbm.NewMemDB())
	require.NoError(t, err)

	key, err := crypto.GenerateKey()
	require.NoError(t, err)

	gs, err := a.DefaultGenesis(common.HexToAddress("0x00000000000000000000000000000000000000a1"))
	require.NoError(t, err)
	var relay relaytypes.GenesisState
	require.NoError(t, json.Unmarshal(gs[relaytypes.ModuleName], &relay))
	relay.Oracles = []common.Address{crypto.PubkeyToAddress(key.PublicKey)}
	gs[relaytypes.ModuleName], err = json.Marshal(relay)
	require.NoError(t, err)
	require.NoError(t, a.InitChain(gs))

	d, err := db.OpenInMemoryDB(true)
	require.NoError(t, err)
	defer d.Close()

	signer := attest.NewSigner(key, "acurast", d, zerolog.Nop())
	env := attest.Envelope{
		OriginChain:    relaytypes.ChainAcurast,
		Sender:         bridgetypes.DefaultTokenPalletAccount,
		Nonce:          common.HexToHash("0x01"),
		RecipientChain: relaytypes.ChainEthereum,
		Recipient:      a.BridgeKeeper.Address(),
		Payload:        bridgetypes.EncodeEnable(1),
	}
	_, err = signer.AttestReceipt(env)
	require.NoError(t, err)

	r := NewRelayer(d, NewAppSubmitter(a, common.HexToAddress("0x00000000000000000000000000000000000000d1"), "ethereum"), Config{
		Chain:       "ethereum",
		Interval:    time.Second,
		BatchSize:   10,
		MaxAttempts: 3,
		Retry:       &oerrors.RetryConfig{MaxAttempts: 1},
	}, zerolog.Nop())

	height := a.Height()
	n, err := r.ProcessPending(context.Background())
	require.NoError(t, err)
	require.Equal(t, 1, n)
	require.Equal(t, height+1, a.Height())

	restrictor, err := a.TokenKeeper.GetTransferRestrictor(a.Context())
	require.NoError(t, err)
	require.Equal(t, tokentypes.PermissiveRestrictorAddress, restrictor)

	msg, err := a.RelayKeeper.GetIncoming(a.Context(), env.ID())
	require.NoError(t, err)
	require.Equal(t, env.Payload, msg.Payload)

	// a peer oracle's late copy of the same envelope settles as already received
	peer, err := crypto.GenerateKey()
	require.NoError(t, err)
	_, err = attest.NewSigner(peer, "acurast", d, zerolog.Nop()).AttestReceipt(env)
	require.NoError(t, err)

	n, err = r.ProcessPending(context.Background())
	require.NoError(t, err)
	require.Equal(t, 1, n)

	atts, err := d.GetAttestations(db.MessageKey{Kind: store.KindReceipt, MessageID: env.ID().Hex()})
	require.NoError(t, err)
	require.Len(t, atts, 2)
	for _, att := range atts {
		require.Equal(t, store.StatusSubmitted, att.Status)
	}
}

func TestAppSubmitter_Errors(t *testing.T) {
	a, err := app.New(log.NewTestLogger(t), dbm.NewMemDB())
	require.NoError(t, err)
	gs, err := a.DefaultGenesis(common.HexToAddress("0x00000000000000000000000000000000000000a1"))
	require.NoError(t, err)
	require.NoError(t, a.InitChain(gs))

	s := NewAppSubmitter(a, common.HexToAddress("0x00000000000000000000000000000000000000d1"), "ethereum")
	confirmer := common.HexToAddress("0x00000000000000000000000000000000000000c1")

	t.Run("ledger rejection is a submission error", func(t *testing.T) {
		height := a.Height()
		err := s.SubmitDelivery(context.Background(), common.HexToHash("0x01"), confirmer, nil)
		require.ErrorIs(t, err, relaytypes.ErrMessageNotFound)
		require.True(t, oerrors.HasCode(err, oerrors.ErrCodeSubmission))
		require.Equal(t, height, a.Height())
	})

	t.Run("expired deadline is a timeout", func(t *testing.T) {
		ctx, cancel := context.WithTimeout(context.Background(), -time.Second)
		defer cancel()

		err := s.SubmitDelivery(ctx, common.HexToHash("0x01"), confirmer, nil)
		require.True(t, oerrors.HasCode(err, oerrors.ErrCodeTimeout))
		require.ErrorIs(t, err, context.DeadlineExceeded)
		require.True(t, oerrors.IsRetryable(err))
	})

	t.Run("cancellation passes through", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		err := s.SubmitDelivery(ctx, common.HexToHash("0x01"), confirmer, nil)
		require.ErrorIs(t, err, context.Canceled)
		require.False(t, oerrors.HasCode(err, oerrors.ErrCodeTimeout))
	})
}
