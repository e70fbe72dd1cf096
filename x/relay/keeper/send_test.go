package keeper_test

import (
	stdmath "math"
	"testing"

	"cosmossdk.io/math"
	"github.com/stretchr/testify/require"

	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"

	"github.com/acurast/hyperdrive-relay/x/relay/types"
)

func TestSendMessage(t *testing.T) {
	f := SetupTest(t)

	sender := common.HexToAddress("0x00000000000000000000000000000000000000b1")
	nonce := crypto.Keccak256Hash([]byte("test"))
	recipient := common.HexToHash("0x6d6f646c687970746f6b656e0000000000000000000000000000000000000000")
	payload := []byte{0x12, 0x34}

	t.Run("fail; ttl too small", func(t *testing.T) {
		_, err := f.k.SendMessage(f.ctx, sender, nonce, recipient, payload, 19, math.ZeroInt())
		require.ErrorIs(t, err, types.ErrTTLTooSmall)
	})

	t.Run("fail; ttl too large", func(t *testing.T) {
		_, err := f.k.SendMessage(f.ctx, sender, nonce, recipient, payload, 201, math.ZeroInt())
		require.ErrorIs(t, err, types.ErrTTLTooLarge)
	})

	t.Run("fail; negative fee", func(t *testing.T) {
		_, err := f.k.SendMessage(f.ctx, sender, nonce, recipient, payload, 20, math.NewInt(-1))
		require.ErrorIs(t, err, types.ErrInvalidFee)
	})

	t.Run("success; stores message and emits ready event", func(t *testing.T) {
		ctx := f.ctx.WithEventManager(sdk.NewEventManager())

		id, err := f.k.SendMessage(ctx, sender, nonce, recipient, payload, 20, math.NewInt(1_000))
		require.NoError(t, err)
		require.Equal(t, types.OutgoingMessageID(sender, nonce), id)

		msg, err := f.k.GetOutgoing(ctx, id)
		require.NoError(t, err)
		require.Equal(t, types.StatusPending, msg.Status)
		require.Equal(t, types.ChainAcurast, msg.DestinationChain)
		require.Equal(t, int64(100), msg.SentAtHeight)
		require.True(t, msg.Fee.Equal(math.NewInt(1_000)))
		require.Equal(t, payload, []byte(msg.Payload))

		events := ctx.EventManager().Events()
		require.Len(t, events, 1)
		require.Equal(t, types.EventTypeMessageReadyToSend, events[0].Type)
		attr, ok := events[0].GetAttribute("id")
		require.True(t, ok)
		require.Equal(t, id.Hex(), attr.Value)
	})

	t.Run("fail; same nonce still in flight", func(t *testing.T) {
		_, err := f.k.SendMessage(f.ctx.WithBlockHeight(119), sender, nonce, recipient, payload, 20, math.ZeroInt())
		require.ErrorIs(t, err, types.ErrMessagePending)
	})

	t.Run("success; resend after ttl lapsed replaces the record", func(t *testing.T) {
		ctx := f.ctx.WithBlockHeight(120)
		id, err := f.k.SendMessage(ctx, sender, nonce, recipient, payload, 30, math.ZeroInt())
		require.NoError(t, err)

		msg, err := f.k.GetOutgoing(ctx, id)
		require.NoError(t, err)
		require.Equal(t, int64(120), msg.SentAtHeight)
		require.Equal(t, uint64(30), msg.TTL)
	})
}

func TestSendMessage_MaxTTL(t *testing.T) {
	f := SetupTest(t)

	cfg := types.DefaultConfig()
	cfg.MaxTTL = stdmath.MaxUint64
	require.NoError(t, f.k.Configure(f.ctx, f.owner, cfg))

	sender := common.HexToAddress("0x00000000000000000000000000000000000000b1")
	nonce := crypto.Keccak256Hash([]byte("long-ttl"))
	recipient := common.HexToHash("0x01")

	_, err := f.k.SendMessage(f.ctx, sender, nonce, recipient, nil, 1<<63, math.ZeroInt())
	require.NoError(t, err)

	_, err = f.k.SendMessage(f.ctx, sender, nonce, recipient, nil, 1<<63, math.ZeroInt())
	require.ErrorIs(t, err, types.ErrMessagePending)

	_, err = f.k.SendMessage(f.ctx.WithBlockHeight(1_000_000), sender, nonce, recipient, nil, 20, math.ZeroInt())
	require.ErrorIs(t, err, types.ErrMessagePending)
}

func TestConfirmMessageDelivery(t *testing.T) {
	f := SetupTest(t)

	sender := common.HexToAddress("0x00000000000000000000000000000000000000b1")
	nonce := crypto.Keccak256Hash([]byte("delivery"))
	confirmer := common.HexToAddress("0x00000000000000000000000000000000000000c1")

	id, err := f.k.SendMessage(f.ctx, sender, nonce, common.HexToHash("0x01"), []byte{0xaa}, 20, math.ZeroInt())
	require.NoError(t, err)

	msg, err := f.k.GetOutgoing(f.ctx, id)
	require.NoError(t, err)
	digest := types.DeliveryDigest(msg, confirmer)

	t.Run("fail; message not found", func(t *testing.T) {
		err := f.k.ConfirmMessageDelivery(f.ctx, confirmer, common.HexToHash("0xdead"), sign(t, digest, f.oracleKeys[0]))
		require.ErrorIs(t, err, types.ErrMessageNotFound)
	})

	t.Run("fail; signature bound to another confirmer", func(t *testing.T) {
		other := types.DeliveryDigest(msg, common.HexToAddress("0x02"))
		err := f.k.ConfirmMessageDelivery(f.ctx, confirmer, id, sign(t, other, f.oracleKeys[0]))
		require.ErrorIs(t, err, types.ErrInvalidSignature)
	})

	t.Run("fail; not enough signatures", func(t *testing.T) {
		err := f.k.ConfirmMessageDelivery(f.ctx, confirmer, id, nil)
		require.ErrorIs(t, err, types.ErrNotEnoughSignatures)
	})

	t.Run("success; marks delivered", func(t *testing.T) {
		ctx := f.ctx.WithEventManager(sdk.NewEventManager())
		require.NoError(t, f.k.ConfirmMessageDelivery(ctx, confirmer, id, sign(t, digest, f.oracleKeys[0])))

		msg, err := f.k.GetOutgoing(ctx, id)
		require.NoError(t, err)
		require.Equal(t, types.StatusDelivered, msg.Status)
		require.Equal(t, confirmer, msg.DeliveredBy)

		events := ctx.EventManager().Events()
		require.Len(t, events, 1)
		require.Equal(t, types.EventTypeMessageDelivered, events[0].Type)
	})

	t.Run("fail; already delivered", func(t *testing.T) {
		err := f.k.ConfirmMessageDelivery(f.ctx, confirmer, id, sign(t, digest, f.oracleKeys[0]))
		require.ErrorIs(t, err, types.ErrMessageDelivered)
	})

	t.Run("fail; delivered message cannot be re-sent", func(t *testing.T) {
		_, err := f.k.SendMessage(f.ctx.WithBlockHeight(1_000), sender, nonce, common.HexToHash("0x01"), []byte{0xaa}, 20, math.ZeroInt())
		require.ErrorIs(t, err, types.ErrMessageDelivered)
	})
}
