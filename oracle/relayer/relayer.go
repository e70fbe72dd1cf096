// Package relayer submits signed attestations to the relay ledger.
package relayer

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/rs/zerolog"

	"github.com/acurast/hyperdrive-relay/oracle/attest"
	"github.com/acurast/hyperdrive-relay/oracle/db"
	oerrors "github.com/acurast/hyperdrive-relay/oracle/errors"
	"github.com/acurast/hyperdrive-relay/oracle/store"
	relaytypes "github.com/acurast/hyperdrive-relay/x/relay/types"
)

// Submitter delivers signatures to the relay ledger.
type Submitter interface {
	SubmitReceipt(ctx context.Context, env attest.Envelope, signatures [][]byte) error
	SubmitDelivery(ctx context.Context, id common.Hash, confirmer common.Address, signatures [][]byte) error
}

// Config tunes the relayer loop.
type Config struct {
	Chain       string
	Interval    time.Duration
	BatchSize   int
	MaxAttempts int
	// SubmitTimeout bounds a single submission; zero means no bound.
	SubmitTimeout time.Duration
	Retry         *oerrors.RetryConfig
}

// Relayer periodically submits pending attestations grouped per message.
type Relayer struct {
	db        *db.DB
	submitter Submitter
	cfg       Config
	logger    zerolog.Logger

	stopCh   chan struct{}
	stopOnce sync.Once
}

func NewRelayer(database *db.DB, submitter Submitter, cfg Config, logger zerolog.Logger) *Relayer {
	if cfg.Retry == nil {
		cfg.Retry = oerrors.DefaultRetryConfig()
	}
	return &Relayer{
		db:        database,
		submitter: submitter,
		cfg:       cfg,
		logger:    logger.With().Str("component", "relayer").Logger(),
		stopCh:    make(chan struct{}),
	}
}

// Start runs the submission loop until ctx is cancelled or Stop is called.
func (r *Relayer) Start(ctx context.Context) {
	r.logger.Info().
		Dur("interval", r.cfg.Interval).
		Int("batch_size", r.cfg.BatchSize).
		Msg("starting relayer")

	ticker := time.NewTicker(r.cfg.Interval)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				r.logger.Info().Msg("context cancelled, stopping relayer")
				return
			case <-r.stopCh:
				r.logger.Info().Msg("stop signal received, stopping relayer")
				return
			case <-ticker.C:
				if _, err := r.ProcessPending(ctx); err != nil {
					r.logger.Error().
						Err(err).
						Str("severity", string(oerrors.GetSeverity(err))).
						Msg("failed to process pending attestations")
				}
			}
		}
	}()
}

// Stop ends the submission loop.
func (r *Relayer) Stop() {
	r.stopOnce.Do(func() { close(r.stopCh) })
}

// ProcessPending submits one batch and returns how many messages were
// finalized as submitted.
func (r *Relayer) ProcessPending(ctx context.Context) (int, error) {
	keys, err := r.db.PendingMessages(r.cfg.BatchSize)
	if err != nil {
		return 0, oerrors.NewDatabaseError(r.cfg.Chain, "failed to list pending messages", err)
	}

	submitted := 0
	for _, key := range keys {
		if ctx.Err() != nil {
			return submitted, ctx.Err()
		}

		ok, err := r.processMessage(ctx, key)
		if err != nil {
			return submitted, err
		}
		if ok {
			submitted++
		}
	}
	return submitted, nil
}

func (r *Relayer) processMessage(ctx context.Context, key db.MessageKey) (bool, error) {
	logger := r.logger.With().Str("kind", key.Kind).Str("message_id", key.MessageID).Logger()

	attestations, err := r.db.GetAttestations(key)
	if err != nil {
		return false, oerrors.NewDatabaseError(r.cfg.Chain, "failed to load attestations", err)
	}

	var (
		signatures [][]byte
		data       []byte
	)
	for _, a := range attestations {
		if a.Status != store.StatusSigned {
			continue
		}
		signatures = append(signatures, a.Signature)
		data = a.Data
	}
	if len(signatures) == 0 {
		return false, nil
	}

	submitErr := oerrors.RetryWithConfig(ctx, func() error {
		return r.submit(ctx, key, data, signatures)
	}, r.cfg.Retry)

	switch {
	case submitErr == nil:
		logger.Info().Int("signatures", len(signatures)).Msg("attestation submitted")
		return r.markSubmitted(key)

	case errors.Is(submitErr, relaytypes.ErrMessageReceived), errors.Is(submitErr, relaytypes.ErrMessageDelivered):
		logger.Info().Msg("message already settled on the relay ledger")
		return r.markSubmitted(key)

	case ctx.Err() != nil:
		return false, ctx.Err()

	case deferrable(submitErr):
		attempts, err := r.db.RecordAttempt(key, submitErr.Error())
		if err != nil {
			return false, oerrors.NewDatabaseError(r.cfg.Chain, "failed to record attempt", err)
		}
		if r.cfg.MaxAttempts > 0 && attempts >= r.cfg.MaxAttempts {
			logger.Warn().Err(submitErr).Int("attempts", attempts).Msg("giving up on attestation")
			return false, r.db.MarkFailed(key, submitErr.Error())
		}
		logger.Debug().Err(submitErr).Int("attempts", attempts).Msg("submission deferred")
		return false, nil

	case oerrors.HasCode(submitErr, oerrors.ErrCodeValidation):
		logger.Warn().Err(submitErr).Msg("malformed attestation discarded")
		return false, r.db.MarkFailed(key, submitErr.Error())

	default:
		logger.Warn().Err(submitErr).Msg("attestation rejected")
		return false, r.db.MarkFailed(key, submitErr.Error())
	}
}

// markSubmitted records a settled message. Failing here leaves the store
// behind the ledger, so the error is critical.
func (r *Relayer) markSubmitted(key db.MessageKey) (bool, error) {
	if err := r.db.MarkSubmitted(key); err != nil {
		return false, oerrors.NewDatabaseError(r.cfg.Chain, "failed to mark attestation submitted", err).
			WithSeverity(oerrors.SeverityCritical)
	}
	return true, nil
}

func (r *Relayer) submit(ctx context.Context, key db.MessageKey, data []byte, signatures [][]byte) error {
	if r.cfg.SubmitTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.cfg.SubmitTimeout)
		defer cancel()
	}

	switch key.Kind {
	case store.KindReceipt:
		var env attest.Envelope
		if err := json.Unmarshal(data, &env); err != nil {
			return oerrors.New(oerrors.ErrCodeValidation, r.cfg.Chain, "malformed envelope", err)
		}
		return r.submitter.SubmitReceipt(ctx, env, signatures)

	case store.KindDelivery:
		var d attest.Delivery
		if err := json.Unmarshal(data, &d); err != nil {
			return oerrors.New(oerrors.ErrCodeValidation, r.cfg.Chain, "malformed delivery", err)
		}
		return r.submitter.SubmitDelivery(ctx, common.HexToHash(key.MessageID), d.Confirmer, signatures)

	default:
		return oerrors.NewValidationError(r.cfg.Chain, "unknown attestation kind "+key.Kind)
	}
}

// deferrable reports whether a failed submission may succeed on a later tick:
// transient failures, a quorum still waiting on peer signatures, or a
// delivery whose outgoing message the ledger has not recorded yet.
func deferrable(err error) bool {
	if errors.Is(err, relaytypes.ErrNotEnoughSignatures) || errors.Is(err, relaytypes.ErrMessageNotFound) {
		return true
	}
	return oerrors.IsRetryable(err) || oerrors.IsRetryable(errors.Unwrap(err))
}
