package main

import (
	"crypto/ecdsa"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/acurast/hyperdrive-relay/oracle/keys"
	"github.com/acurast/hyperdrive-relay/util"
)

func keysCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "keys",
		Short: "Manage the oracle signing key",
	}

	cmd.AddCommand(keysAddCmd())
	cmd.AddCommand(keysShowCmd())

	return cmd
}

func keysAddCmd() *cobra.Command {
	var (
		recoverHex string
		overwrite  bool
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create (or import with --recover) the oracle signing key",
		RunE: func(cmd *cobra.Command, args []string) error {
			home := homeDir(cmd)

			create := func() (*ecdsa.PrivateKey, error) { return keys.Generate(home, overwrite) }
			if recoverHex != "" {
				create = func() (*ecdsa.PrivateKey, error) { return keys.Import(home, recoverHex, overwrite) }
			}

			key, err := create()
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "oracle address: %s\nkey file: %s\n", keys.Address(key).Hex(), keys.Path(home))
			return nil
		},
	}

	cmd.Flags().StringVar(&recoverHex, "recover", "", "hex-encoded private key to import")
	cmd.Flags().BoolVar(&overwrite, "overwrite", false, "replace an existing key")
	return cmd
}

func keysShowCmd() *cobra.Command {
	var bech32 bool

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the oracle address",
		RunE: func(cmd *cobra.Command, args []string) error {
			key, err := keys.Load(homeDir(cmd))
			if err != nil {
				return err
			}

			acc, evm, err := util.GetAddressPair(keys.Address(key).Hex())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), evm.Hex())
			if bech32 {
				fmt.Fprintln(cmd.OutOrStdout(), acc.String())
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&bech32, "bech32", false, "also print the bech32 form of the address")
	return cmd
}
