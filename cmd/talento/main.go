package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/talento-hq/talento/internal/interfaces/cli/migrate"
	"github.com/talento-hq/talento/internal/interfaces/cli/seed"
	"github.com/talento-hq/talento/internal/interfaces/cli/server"
	"github.com/talento-hq/talento/internal/shared/version"
)

func main() {
	rootCmd := &cobra.Command{
		Use:     "talento",
		Short:   "Talento - interview practice platform",
		Long:    `Talento serves the interview practice API and ships the migration and seed tooling it needs.`,
		Version: version.String(),
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
		seed.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
