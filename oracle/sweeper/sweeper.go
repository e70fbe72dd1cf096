// Package sweeper prunes finalized attestations from the oracle store.
package sweeper

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/acurast/hyperdrive-relay/oracle/db"
)

// Config tunes the sweeper.
type Config struct {
	Interval  time.Duration
	Retention time.Duration
}

// Sweeper periodically deletes submitted or failed attestations older than
// the retention period.
type Sweeper struct {
	db     *db.DB
	cfg    Config
	now    func() time.Time
	logger zerolog.Logger

	stopCh   chan struct{}
	stopOnce sync.Once
}

func NewSweeper(database *db.DB, cfg Config, logger zerolog.Logger) *Sweeper {
	return &Sweeper{
		db:     database,
		cfg:    cfg,
		now:    time.Now,
		logger: logger.With().Str("component", "sweeper").Logger(),
		stopCh: make(chan struct{}),
	}
}

// Start performs an initial sweep and then sweeps on every tick until ctx is
// cancelled or Stop is called.
func (s *Sweeper) Start(ctx context.Context) {
	s.logger.Info().
		Dur("interval", s.cfg.Interval).
		Dur("retention", s.cfg.Retention).
		Msg("starting sweeper")

	if _, err := s.Sweep(); err != nil {
		s.logger.Error().Err(err).Msg("failed to perform initial sweep")
	}

	ticker := time.NewTicker(s.cfg.Interval)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				s.logger.Info().Msg("context cancelled, stopping sweeper")
				return
			case <-s.stopCh:
				s.logger.Info().Msg("stop signal received, stopping sweeper")
				return
			case <-ticker.C:
				if _, err := s.Sweep(); err != nil {
					s.logger.Error().Err(err).Msg("failed to perform scheduled sweep")
				}
			}
		}
	}()
}

// Stop ends the sweep loop.
func (s *Sweeper) Stop() {
	s.stopOnce.Do(func() { close(s.stopCh) })
}

// Sweep deletes finalized attestations past retention and returns the count.
func (s *Sweeper) Sweep() (int64, error) {
	start := s.now()
	cutoff := start.Add(-s.cfg.Retention)

	deleted, err := s.db.DeleteFinalizedBefore(cutoff)
	if err != nil {
		return 0, err
	}

	if deleted > 0 {
		if err := s.db.Checkpoint(); err != nil {
			s.logger.Warn().Err(err).Msg("failed to checkpoint WAL after sweep")
		}
		s.logger.Info().
			Int64("deleted", deleted).
			Time("cutoff", cutoff).
			Dur("duration", time.Since(start)).
			Msg("sweep completed")
	}
	return deleted, nil
}
