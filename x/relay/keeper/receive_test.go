package keeper_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"

	"github.com/acurast/hyperdrive-relay/x/relay/types"
)

type envelope struct {
	sender    common.Hash
	nonce     common.Hash
	recipient common.Address
	payload   []byte
}

func newEnvelope(seed string, recipient common.Address) envelope {
	return envelope{
		sender:    common.HexToHash("0x6d6f646c687970746f6b656e0000000000000000000000000000000000000000"),
		nonce:     crypto.Keccak256Hash([]byte(seed)),
		recipient: recipient,
		payload:   []byte{0x00, 0x00, 0x00, 0x01, 0x01},
	}
}

func (e envelope) digest() common.Hash {
	return types.ReceiptDigest(types.ChainAcurast, e.sender, e.nonce, types.ChainEthereum, e.recipient, e.payload)
}

func (f *testFixture) receive(ctx context.Context, e envelope, sigs [][]byte) (common.Hash, error) {
	relayer := common.HexToAddress("0x00000000000000000000000000000000000000d1")
	return f.k.ReceiveMessage(ctx, relayer, e.sender, e.nonce, types.ChainEthereum, e.recipient, e.payload, common.HexToHash("0x01"), sigs)
}

func TestReceiveMessage(t *testing.T) {
	f := SetupTest(t)

	recipientAddr := common.HexToAddress("0x00000000000000000000000000000000000000e1")
	recipient := &recordingRecipient{}
	require.NoError(t, f.k.RegisterRecipient(recipientAddr, recipient))

	t.Run("success; stores message and invokes recipient", func(t *testing.T) {
		e := newEnvelope("ok", recipientAddr)
		ctx := f.ctx.WithEventManager(sdk.NewEventManager())

		id, err := f.receive(ctx, e, sign(t, e.digest(), f.oracleKeys[0]))
		require.NoError(t, err)
		require.Equal(t, types.IncomingMessageID(e.sender, e.nonce), id)

		require.Equal(t, 1, recipient.calls)
		require.Equal(t, f.k.Address(), recipient.origin)
		require.Equal(t, e.sender, recipient.sender)
		require.Equal(t, e.payload, recipient.payload)

		msg, err := f.k.GetIncoming(ctx, id)
		require.NoError(t, err)
		require.Equal(t, types.StatusReceived, msg.Status)
		require.Equal(t, int64(100), msg.ReceivedAtHeight)

		events := ctx.EventManager().Events()
		require.Len(t, events, 1)
		require.Equal(t, types.EventTypeMessageProcessed, events[0].Type)
	})

	t.Run("fail; replay of a received message", func(t *testing.T) {
		e := newEnvelope("ok", recipientAddr)
		_, err := f.receive(f.ctx, e, sign(t, e.digest(), f.oracleKeys[0]))
		require.ErrorIs(t, err, types.ErrMessageReceived)
	})

	t.Run("fail; signature from a non-oracle", func(t *testing.T) {
		e := newEnvelope("outsider", recipientAddr)
		_, err := f.receive(f.ctx, e, sign(t, e.digest(), f.oracleKeys[0], f.outsider))
		require.ErrorIs(t, err, types.ErrInvalidSignature)
	})

	t.Run("fail; malformed signature", func(t *testing.T) {
		e := newEnvelope("malformed", recipientAddr)
		_, err := f.receive(f.ctx, e, [][]byte{{0x01, 0x02}})
		require.ErrorIs(t, err, types.ErrInvalidSignature)
	})

	t.Run("fail; signature over a different payload", func(t *testing.T) {
		e := newEnvelope("tampered", recipientAddr)
		signed := e
		signed.payload = []byte{0xff}
		_, err := f.receive(f.ctx, e, sign(t, signed.digest(), f.oracleKeys[0]))
		require.ErrorIs(t, err, types.ErrInvalidSignature)
	})

	t.Run("fail; duplicate signer regardless of count", func(t *testing.T) {
		e := newEnvelope("duplicate", recipientAddr)
		sigs := sign(t, e.digest(), f.oracleKeys[0], f.oracleKeys[1], f.oracleKeys[0])
		_, err := f.receive(f.ctx, e, sigs)
		require.ErrorIs(t, err, types.ErrDuplicateSignature)
	})

	t.Run("fail; no recipient registered", func(t *testing.T) {
		e := newEnvelope("unregistered", common.HexToAddress("0x00000000000000000000000000000000000000e2"))
		_, err := f.receive(f.ctx, e, sign(t, e.digest(), f.oracleKeys[0]))
		require.ErrorIs(t, err, types.ErrRecipientNotFound)
	})

	t.Run("fail; quorum-signed message for another chain", func(t *testing.T) {
		e := newEnvelope("elsewhere", recipientAddr)
		digest := types.ReceiptDigest(types.ChainAcurast, e.sender, e.nonce, types.ChainAcurast, e.recipient, e.payload)
		relayer := common.HexToAddress("0x00000000000000000000000000000000000000d1")

		_, err := f.k.ReceiveMessage(f.ctx, relayer, e.sender, e.nonce, types.ChainAcurast, e.recipient, e.payload, common.HexToHash("0x01"), sign(t, digest, f.oracleKeys[0]))
		require.ErrorIs(t, err, types.ErrWrongRecipientChain)

		_, err = f.k.GetIncoming(f.ctx, types.IncomingMessageID(e.sender, e.nonce))
		require.ErrorIs(t, err, types.ErrMessageNotFound)
	})

	t.Run("fail; quorum not reached", func(t *testing.T) {
		cfg := types.DefaultConfig()
		cfg.MinReceiptSignatures = 2
		require.NoError(t, f.k.Configure(f.ctx, f.owner, cfg))
		t.Cleanup(func() { require.NoError(t, f.k.Configure(f.ctx, f.owner, types.DefaultConfig())) })

		e := newEnvelope("quorum", recipientAddr)
		_, err := f.receive(f.ctx, e, sign(t, e.digest(), f.oracleKeys[0]))
		require.ErrorIs(t, err, types.ErrNotEnoughSignatures)

		_, err = f.receive(f.ctx, e, sign(t, e.digest(), f.oracleKeys[0], f.oracleKeys[2]))
		require.NoError(t, err)
	})
}

func TestReceiveMessage_RecipientFailureReverts(t *testing.T) {
	f := SetupTest(t)

	recipientAddr := common.HexToAddress("0x00000000000000000000000000000000000000e1")
	recipient := &recordingRecipient{err: errors.New("Unsupported action")}
	require.NoError(t, f.k.RegisterRecipient(recipientAddr, recipient))

	e := newEnvelope("revert", recipientAddr)
	ctx := f.ctx.WithEventManager(sdk.NewEventManager())

	_, err := f.receive(ctx, e, sign(t, e.digest(), f.oracleKeys[0]))
	require.ErrorContains(t, err, "Unsupported action")
	require.Empty(t, ctx.EventManager().Events())

	_, err = f.k.GetIncoming(ctx, types.IncomingMessageID(e.sender, e.nonce))
	require.ErrorIs(t, err, types.ErrMessageNotFound)

	// the message stays receivable once the recipient recovers
	recipient.err = nil
	_, err = f.receive(ctx, e, sign(t, e.digest(), f.oracleKeys[0]))
	require.NoError(t, err)
}

func TestReceiveMessage_Reentrancy(t *testing.T) {
	f := SetupTest(t)

	recipientAddr := common.HexToAddress("0x00000000000000000000000000000000000000e1")
	inner := newEnvelope("inner", recipientAddr)

	var innerErr error
	recipient := &recordingRecipient{}
	recipient.onCall = func(ctx context.Context) error {
		if recipient.calls > 1 {
			return nil
		}
		_, innerErr = f.receive(ctx, inner, sign(t, inner.digest(), f.oracleKeys[1]))
		return innerErr
	}
	require.NoError(t, f.k.RegisterRecipient(recipientAddr, recipient))

	outer := newEnvelope("outer", recipientAddr)
	_, err := f.receive(f.ctx, outer, sign(t, outer.digest(), f.oracleKeys[0]))
	require.ErrorIs(t, err, types.ErrReentrantCall)
	require.ErrorIs(t, innerErr, types.ErrReentrantCall)

	// the guard is released after the outer call returns
	_, err = f.receive(f.ctx, inner, sign(t, inner.digest(), f.oracleKeys[1]))
	require.NoError(t, err)
}

func TestRegisterRecipient(t *testing.T) {
	f := SetupTest(t)
	addr := common.HexToAddress("0x00000000000000000000000000000000000000e1")

	require.ErrorIs(t, f.k.RegisterRecipient(common.Address{}, &recordingRecipient{}), types.ErrInvalidAddress)
	require.NoError(t, f.k.RegisterRecipient(addr, &recordingRecipient{}))
	require.ErrorIs(t, f.k.RegisterRecipient(addr, &recordingRecipient{}), types.ErrRecipientRegistered)
}
