package main

import (
	"os"

	"github.com/spf13/cobra"

	"subtrack/internal/interfaces/cli/migrate"
	"subtrack/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "subtrack",
		Short: "Subtrack - subscription tracking backend",
		Long:  `Subtrack is a subscription management backend with a service catalog, a per-user subscription ledger, and spend reporting.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
