package keeper_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/ethereum/go-ethereum/common"

	"github.com/acurast/hyperdrive-relay/x/tokenbridge/types"
)

func transferPayload(t *testing.T, amount int64, assetID, nonce uint32, recipient common.Address) []byte {
	t.Helper()
	payload, err := types.EncodeTransfer(types.TransferAction{
		Amount:        math.NewInt(amount),
		AssetID:       assetID,
		TransferNonce: nonce,
		Recipient:     recipient,
	})
	require.NoError(t, err)
	return payload
}

func TestProcessMessage_Transfer(t *testing.T) {
	f := SetupTest(t)
	pallet := types.DefaultTokenPalletAccount
	recipient := common.HexToAddress("0x00000000000000000000000000000000000000e1")

	t.Run("fail; unauthorized origin", func(t *testing.T) {
		err := f.k.ProcessMessage(f.ctx, f.user, pallet, transferPayload(t, 1, 0, 1, recipient))
		require.ErrorIs(t, err, types.ErrUnauthorizedOrigin)
	})

	t.Run("fail; payload shorter than the action tag", func(t *testing.T) {
		err := f.k.ProcessMessage(f.ctx, f.relay, pallet, []byte{0x00, 0x00, 0x00})
		require.ErrorIs(t, err, types.ErrInvalidAction)
	})

	t.Run("fail; unauthorized sender", func(t *testing.T) {
		err := f.k.ProcessMessage(f.ctx, f.relay, common.HexToHash("0xbad"), transferPayload(t, 1, 0, 1, recipient))
		require.ErrorIs(t, err, types.ErrUnauthorizedSender)
	})

	t.Run("fail; truncated transfer payload", func(t *testing.T) {
		payload := transferPayload(t, 1, 0, 1, recipient)
		err := f.k.ProcessMessage(f.ctx, f.relay, pallet, payload[:len(payload)-1])
		require.ErrorIs(t, err, types.ErrInvalidActionPayload)
	})

	t.Run("fail; unsupported asset", func(t *testing.T) {
		err := f.k.ProcessMessage(f.ctx, f.relay, pallet, transferPayload(t, 1, 1, 1, recipient))
		require.ErrorIs(t, err, types.ErrUnsupportedAsset)
	})

	t.Run("fail; zero recipient", func(t *testing.T) {
		err := f.k.ProcessMessage(f.ctx, f.relay, pallet, transferPayload(t, 1, 0, 1, common.Address{}))
		require.ErrorIs(t, err, types.ErrInvalidRecipient)
	})

	t.Run("fail; mint failure leaves the nonce unused", func(t *testing.T) {
		f.mockTokenKeeper.EXPECT().CrosschainMint(gomock.Any(), f.bridge, recipient, intEq(1)).Return(errors.New("missing role"))

		err := f.k.ProcessMessage(f.ctx, f.relay, pallet, transferPayload(t, 1, 0, 1, recipient))
		require.ErrorContains(t, err, "failed to mint")

		used, err := f.k.IsIncomingNonceUsed(f.ctx, 1)
		require.NoError(t, err)
		require.False(t, used)
	})

	t.Run("success; mints and marks the nonce", func(t *testing.T) {
		f.mockTokenKeeper.EXPECT().CrosschainMint(gomock.Any(), f.bridge, recipient, intEq(5_000)).Return(nil)

		ctx := f.ctx.WithEventManager(sdk.NewEventManager())
		require.NoError(t, f.k.ProcessMessage(ctx, f.relay, pallet, transferPayload(t, 5_000, 0, 1, recipient)))

		used, err := f.k.IsIncomingNonceUsed(ctx, 1)
		require.NoError(t, err)
		require.True(t, used)

		events := ctx.EventManager().Events()
		require.Len(t, events, 1)
		require.Equal(t, types.EventTypeTransferReceived, events[0].Type)
		attr, ok := events[0].GetAttribute("recipient")
		require.True(t, ok)
		require.Equal(t, recipient.Hex(), attr.Value)
	})

	t.Run("fail; replayed transfer nonce", func(t *testing.T) {
		err := f.k.ProcessMessage(f.ctx, f.relay, pallet, transferPayload(t, 5_000, 0, 1, recipient))
		require.ErrorIs(t, err, types.ErrTransferAlreadyReceived)
	})
}

func TestProcessMessage_Enable(t *testing.T) {
	f := SetupTest(t)
	pallet := types.DefaultTokenPalletAccount

	t.Run("fail; unauthorized sender", func(t *testing.T) {
		err := f.k.ProcessMessage(f.ctx, f.relay, common.HexToHash("0xbad"), types.EncodeEnable(1))
		require.ErrorIs(t, err, types.ErrUnauthorizedSender)
	})

	t.Run("fail; trailing bytes", func(t *testing.T) {
		err := f.k.ProcessMessage(f.ctx, f.relay, pallet, append(types.EncodeEnable(1), 0x00))
		require.ErrorIs(t, err, types.ErrInvalidActionPayload)
	})

	t.Run("fail; flag other than one", func(t *testing.T) {
		err := f.k.ProcessMessage(f.ctx, f.relay, pallet, types.EncodeEnable(0))
		require.ErrorIs(t, err, types.ErrInvalidEnableFlag)
	})

	t.Run("success; lifts the transfer restriction", func(t *testing.T) {
		f.mockTokenKeeper.EXPECT().UpdateTransferRestrictor(gomock.Any(), f.bridge, common.Address{}).Return(nil)

		ctx := f.ctx.WithEventManager(sdk.NewEventManager())
		require.NoError(t, f.k.ProcessMessage(ctx, f.relay, pallet, types.EncodeEnable(1)))

		events := ctx.EventManager().Events()
		require.Len(t, events, 1)
		require.Equal(t, types.EventTypeTransfersEnabled, events[0].Type)
	})
}

func TestProcessMessage_UnsupportedAction(t *testing.T) {
	f := SetupTest(t)

	err := f.k.ProcessMessage(f.ctx, f.relay, types.DefaultTokenPalletAccount, []byte{0x00, 0x00, 0x00, 0x02, 0x01})
	require.ErrorIs(t, err, types.ErrUnsupportedAction)
}

func TestProcessMessage_Reentrancy(t *testing.T) {
	f := SetupTest(t)
	pallet := types.DefaultTokenPalletAccount
	recipient := common.HexToAddress("0x00000000000000000000000000000000000000e1")

	var innerErr error
	f.mockTokenKeeper.EXPECT().CrosschainMint(gomock.Any(), f.bridge, recipient, intEq(1)).
		DoAndReturn(func(_ context.Context, _, _ common.Address, _ math.Int) error {
			innerErr = f.k.ProcessMessage(f.ctx, f.relay, pallet, transferPayload(t, 1, 0, 2, recipient))
			return nil
		})

	require.NoError(t, f.k.ProcessMessage(f.ctx, f.relay, pallet, transferPayload(t, 1, 0, 1, recipient)))
	require.ErrorIs(t, innerErr, types.ErrReentrantCall)
}
