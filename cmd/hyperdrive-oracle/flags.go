package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/acurast/hyperdrive-relay/oracle/attest"
	"github.com/acurast/hyperdrive-relay/util"
	relaytypes "github.com/acurast/hyperdrive-relay/x/relay/types"
)

type envelopeFlags struct {
	originChain    string
	recipientChain string
	sender         string
	nonce          string
	recipient      string
	payload        string
	relayerID      string
}

func (f *envelopeFlags) bind(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.originChain, "origin-chain", "acurast", "chain the message was sent from")
	cmd.Flags().StringVar(&f.recipientChain, "recipient-chain", "ethereum", "chain the message is addressed to")
	cmd.Flags().StringVar(&f.sender, "sender", "", "32-byte sender identifier")
	cmd.Flags().StringVar(&f.nonce, "nonce", "", "32-byte message nonce")
	cmd.Flags().StringVar(&f.recipient, "recipient", "", "recipient address (0x or bech32)")
	cmd.Flags().StringVar(&f.payload, "payload", "", "hex payload")
	cmd.Flags().StringVar(&f.relayerID, "relayer-id", "", "optional 32-byte relayer identifier")
	_ = cmd.MarkFlagRequired("sender")
	_ = cmd.MarkFlagRequired("nonce")
	_ = cmd.MarkFlagRequired("recipient")
}

func (f *envelopeFlags) envelope() (attest.Envelope, error) {
	var (
		env attest.Envelope
		err error
	)
	if env.OriginChain, err = relaytypes.ParseChainTag(f.originChain); err != nil {
		return env, err
	}
	if env.RecipientChain, err = relaytypes.ParseChainTag(f.recipientChain); err != nil {
		return env, err
	}
	if env.Sender, err = util.ParseHash(f.sender); err != nil {
		return env, fmt.Errorf("sender: %w", err)
	}
	if env.Nonce, err = util.ParseHash(f.nonce); err != nil {
		return env, fmt.Errorf("nonce: %w", err)
	}
	if env.Recipient, err = util.ParseAddress(f.recipient); err != nil {
		return env, fmt.Errorf("recipient: %w", err)
	}
	if env.Payload, err = util.ParseBytes(f.payload); err != nil {
		return env, fmt.Errorf("payload: %w", err)
	}
	if f.relayerID != "" {
		if env.RelayerID, err = util.ParseHash(f.relayerID); err != nil {
			return env, fmt.Errorf("relayer-id: %w", err)
		}
	}
	return env, nil
}

type deliveryFlags struct {
	destinationChain string
	sender           string
	nonce            string
	recipient        string
	payload          string
	confirmer        string
}

func (f *deliveryFlags) bind(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.destinationChain, "destination-chain", "acurast", "chain the message was delivered to")
	cmd.Flags().StringVar(&f.sender, "sender", "", "sender address on the relay ledger")
	cmd.Flags().StringVar(&f.nonce, "nonce", "", "32-byte message nonce")
	cmd.Flags().StringVar(&f.recipient, "recipient", "", "32-byte recipient identifier")
	cmd.Flags().StringVar(&f.payload, "payload", "", "hex payload")
	cmd.Flags().StringVar(&f.confirmer, "confirmer", "", "address confirming delivery")
	_ = cmd.MarkFlagRequired("sender")
	_ = cmd.MarkFlagRequired("nonce")
	_ = cmd.MarkFlagRequired("recipient")
	_ = cmd.MarkFlagRequired("confirmer")
}

func (f *deliveryFlags) delivery() (attest.Delivery, error) {
	var (
		d   attest.Delivery
		err error
	)
	if d.Message.DestinationChain, err = relaytypes.ParseChainTag(f.destinationChain); err != nil {
		return d, err
	}
	if d.Message.Sender, err = util.ParseAddress(f.sender); err != nil {
		return d, fmt.Errorf("sender: %w", err)
	}
	if d.Message.Nonce, err = util.ParseHash(f.nonce); err != nil {
		return d, fmt.Errorf("nonce: %w", err)
	}
	if d.Message.Recipient, err = util.ParseHash(f.recipient); err != nil {
		return d, fmt.Errorf("recipient: %w", err)
	}
	if d.Message.Payload, err = util.ParseBytes(f.payload); err != nil {
		return d, fmt.Errorf("payload: %w", err)
	}
	if d.Confirmer, err = util.ParseAddress(f.confirmer); err != nil {
		return d, fmt.Errorf("confirmer: %w", err)
	}
	return d, nil
}
