package main

import (
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/spf13/cobra"

	"github.com/acurast/hyperdrive-relay/oracle/attest"
	"github.com/acurast/hyperdrive-relay/oracle/config"
	"github.com/acurast/hyperdrive-relay/oracle/db"
	"github.com/acurast/hyperdrive-relay/oracle/keys"
	"github.com/acurast/hyperdrive-relay/oracle/logger"
	"github.com/acurast/hyperdrive-relay/oracle/store"
)

type signOutput struct {
	MessageID string        `json:"message_id"`
	Digest    string        `json:"digest"`
	Signer    string        `json:"signer"`
	Signature hexutil.Bytes `json:"signature"`
}

func signCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sign",
		Short: "Sign a message digest and queue it for relaying",
	}

	cmd.AddCommand(signReceiptCmd())
	cmd.AddCommand(signDeliveryCmd())

	return cmd
}

func signReceiptCmd() *cobra.Command {
	var f envelopeFlags

	cmd := &cobra.Command{
		Use:   "receipt",
		Short: "Attest an incoming message",
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := f.envelope()
			if err != nil {
				return err
			}
			return withSigner(cmd, func(s *attest.Signer) (*store.Attestation, error) {
				return s.AttestReceipt(env)
			})
		},
	}

	f.bind(cmd)
	return cmd
}

func signDeliveryCmd() *cobra.Command {
	var f deliveryFlags

	cmd := &cobra.Command{
		Use:   "delivery",
		Short: "Confirm delivery of an outgoing message",
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := f.delivery()
			if err != nil {
				return err
			}
			return withSigner(cmd, func(s *attest.Signer) (*store.Attestation, error) {
				return s.AttestDelivery(d)
			})
		},
	}

	f.bind(cmd)
	return cmd
}

func withSigner(cmd *cobra.Command, fn func(*attest.Signer) (*store.Attestation, error)) error {
	home := homeDir(cmd)

	cfg, err := config.Load(home)
	if err != nil {
		return err
	}
	key, err := keys.Load(home)
	if err != nil {
		return err
	}

	database, err := db.OpenFileDB(cfg.DataDir(), cfg.DatabaseFile, true)
	if err != nil {
		return err
	}
	defer database.Close()

	log := logger.NewWithWriter(cmd.ErrOrStderr(), cfg.LogLevel, cfg.LogFormat, cfg.LogSampler)
	a, err := fn(attest.NewSigner(key, cfg.RemoteChain, database, log))
	if err != nil {
		return err
	}

	return printJSON(cmd, signOutput{
		MessageID: a.MessageID,
		Digest:    a.Digest,
		Signer:    a.Signer,
		Signature: a.Signature,
	})
}
