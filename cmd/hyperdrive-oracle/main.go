package main

import (
	"fmt"
	"os"

	"github.com/acurast/hyperdrive-relay/utils/env"
)

func main() {
	// Load environment variables from the nearest .env file if available
	if _, err := env.LoadEnv(); err != nil {
		fmt.Fprintln(os.Stderr, "warning: failed to load .env:", err)
	}

	rootCmd := NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(rootCmd.OutOrStderr(), err)
		os.Exit(1)
	}
}
