package main

import (
	"fmt"

	sdkversion "github.com/cosmos/cosmos-sdk/version"
	"github.com/spf13/cobra"

	"github.com/acurast/hyperdrive-relay/oracle/config"
)

func InitRootCmd(rootCmd *cobra.Command) {
	rootCmd.AddCommand(initCmd())
	rootCmd.AddCommand(keysCmd())
	rootCmd.AddCommand(digestCmd())
	rootCmd.AddCommand(signCmd())
	rootCmd.AddCommand(startCmd())
	rootCmd.AddCommand(versionCmd())
}

func initCmd() *cobra.Command {
	var overwrite bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write the default oracle config into the home directory",
		RunE: func(cmd *cobra.Command, args []string) error {
			home := homeDir(cmd)

			if _, err := config.Load(home); err == nil && !overwrite {
				return fmt.Errorf("config already exists in %s; use --overwrite to replace it", home)
			}

			cfg, err := config.LoadDefaultConfig()
			if err != nil {
				return err
			}
			cfg.NodeHome = home

			if err := config.Save(cfg, home); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "initialized oracle home at %s\n", home)
			return nil
		},
	}

	cmd.Flags().BoolVar(&overwrite, "overwrite", false, "replace an existing config")
	return cmd
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print hyperdrive-oracle version info",
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Name:       %s\n", sdkversion.Name)
			fmt.Fprintf(out, "App Name:   %s\n", sdkversion.AppName)
			fmt.Fprintf(out, "Version:    %s\n", sdkversion.Version)
			fmt.Fprintf(out, "Commit:     %s\n", sdkversion.Commit)
			fmt.Fprintf(out, "Build Tags: %s\n", sdkversion.BuildTags)
		},
	}
}
