package main

import (
	"os"

	"github.com/spf13/cobra"

	"propflow/internal/interfaces/cli/migrate"
	"propflow/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "propflow",
		Short: "Propflow - property maintenance management",
		Long:  `Propflow manages maintenance tickets, staff assignment and parts inventory for multi-property landlords.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
