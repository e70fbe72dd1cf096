package main

import (
	"encoding/json"

	"github.com/ethereum/go-ethereum/common"
	"github.com/spf13/cobra"
)

type digestOutput struct {
	MessageID common.Hash `json:"message_id"`
	Digest    common.Hash `json:"digest"`
}

func digestCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "digest",
		Short: "Compute the digest oracles sign for a message",
	}

	cmd.AddCommand(digestReceiptCmd())
	cmd.AddCommand(digestDeliveryCmd())

	return cmd
}

func digestReceiptCmd() *cobra.Command {
	var f envelopeFlags

	cmd := &cobra.Command{
		Use:   "receipt",
		Short: "Digest attesting an incoming message",
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := f.envelope()
			if err != nil {
				return err
			}
			return printJSON(cmd, digestOutput{MessageID: env.ID(), Digest: env.Digest()})
		},
	}

	f.bind(cmd)
	return cmd
}

func digestDeliveryCmd() *cobra.Command {
	var f deliveryFlags

	cmd := &cobra.Command{
		Use:   "delivery",
		Short: "Digest confirming delivery of an outgoing message",
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := f.delivery()
			if err != nil {
				return err
			}
			return printJSON(cmd, digestOutput{MessageID: d.ID(), Digest: d.Digest()})
		},
	}

	f.bind(cmd)
	return cmd
}

func printJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
