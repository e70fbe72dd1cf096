package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/acurast/hyperdrive-relay/oracle/config"
	"github.com/acurast/hyperdrive-relay/oracle/db"
	oerrors "github.com/acurast/hyperdrive-relay/oracle/errors"
	"github.com/acurast/hyperdrive-relay/oracle/keys"
	"github.com/acurast/hyperdrive-relay/oracle/logger"
	"github.com/acurast/hyperdrive-relay/oracle/relayer"
	"github.com/acurast/hyperdrive-relay/oracle/sweeper"
)

func startCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "start",
		Short: "Run the relayer and sweeper against the local relay ledger",
		Long: `Opens the single-node relay ledger under <home>/data, creating it with this
oracle as its only oracle and owner on first start, then submits queued
attestations to it and prunes finalized ones until interrupted.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			home := homeDir(cmd)

			cfg, err := config.Load(home)
			if err != nil {
				return err
			}
			key, err := keys.Load(home)
			if err != nil {
				return err
			}
			oracle := keys.Address(key)

			zlog := logger.New(cfg.LogLevel, cfg.LogFormat, cfg.LogSampler)

			database, err := db.OpenFileDB(cfg.DataDir(), cfg.DatabaseFile, true)
			if err != nil {
				return err
			}
			defer database.Close()

			ledger, closeLedger, err := openLedger(cfg.DataDir(), oracle, cfg)
			if err != nil {
				return err
			}
			defer closeLedger()

			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			r := relayer.NewRelayer(database, relayer.NewAppSubmitter(ledger, oracle, cfg.LocalChain), relayer.Config{
				Chain:         cfg.LocalChain,
				Interval:      cfg.RelayInterval(),
				BatchSize:     cfg.RelayBatchSize,
				MaxAttempts:   cfg.MaxSubmitAttempts,
				SubmitTimeout: cfg.RelayInterval(),
				Retry: &oerrors.RetryConfig{
					MaxAttempts:     cfg.MaxRetries,
					InitialDelay:    cfg.RetryBackoff(),
					MaxDelay:        cfg.RetryBackoff() * 30,
					Multiplier:      2.0,
					RetryableErrors: oerrors.DefaultRetryConfig().RetryableErrors,
				},
			}, zlog)
			s := sweeper.NewSweeper(database, sweeper.Config{
				Interval:  cfg.SweepInterval(),
				Retention: cfg.RetentionPeriod(),
			}, zlog)

			r.Start(ctx)
			s.Start(ctx)

			zlog.Info().
				Str("oracle", oracle.Hex()).
				Str("relay", ledger.RelayKeeper.Address().Hex()).
				Str("bridge", ledger.BridgeKeeper.Address().Hex()).
				Int64("height", ledger.Height()).
				Msg("oracle started")

			<-ctx.Done()
			r.Stop()
			s.Stop()
			return nil
		},
	}
}
