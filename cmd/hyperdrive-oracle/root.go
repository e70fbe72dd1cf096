package main

import (
	"github.com/spf13/cobra"

	"github.com/acurast/hyperdrive-relay/utils/env"
)

const flagHome = "home"

func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "hyperdrive-oracle",
		Short:         "Hyperdrive relay oracle",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().String(flagHome, env.DefaultHome(), "oracle home directory")

	InitRootCmd(rootCmd)

	return rootCmd
}

func homeDir(cmd *cobra.Command) string {
	home, _ := cmd.Flags().GetString(flagHome)
	return home
}
