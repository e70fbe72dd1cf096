package relayer

import (
	"context"
	"errors"

	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/ethereum/go-ethereum/common"

	"github.com/acurast/hyperdrive-relay/app"
	"github.com/acurast/hyperdrive-relay/oracle/attest"
	oerrors "github.com/acurast/hyperdrive-relay/oracle/errors"
)

// AppSubmitter submits directly into an in-process App, one block per call.
type AppSubmitter struct {
	app     *app.App
	relayer common.Address
	chain   string
}

func NewAppSubmitter(a *app.App, relayer common.Address, chain string) *AppSubmitter {
	return &AppSubmitter{app: a, relayer: relayer, chain: chain}
}

func (s *AppSubmitter) SubmitReceipt(ctx context.Context, env attest.Envelope, signatures [][]byte) error {
	return s.exec(ctx, func(sdkCtx sdk.Context) error {
		_, err := s.app.RelayKeeper.ReceiveMessage(
			sdkCtx,
			s.relayer,
			env.Sender,
			env.Nonce,
			env.RecipientChain,
			env.Recipient,
			env.Payload,
			env.RelayerID,
			signatures,
		)
		return err
	})
}

func (s *AppSubmitter) SubmitDelivery(ctx context.Context, id common.Hash, confirmer common.Address, signatures [][]byte) error {
	return s.exec(ctx, func(sdkCtx sdk.Context) error {
		return s.app.RelayKeeper.ConfirmMessageDelivery(sdkCtx, confirmer, id, signatures)
	})
}

func (s *AppSubmitter) exec(ctx context.Context, fn func(sdk.Context) error) error {
	if err := ctx.Err(); err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return oerrors.NewTimeoutError(s.chain, "submission deadline exceeded", err)
		}
		return err
	}
	if _, err := s.app.Exec(fn); err != nil {
		return oerrors.NewSubmissionError(s.chain, "relay ledger rejected submission", err)
	}
	s.app.Commit()
	return nil
}
