package main

import (
	"os"

	"github.com/spf13/cobra"

	"geoshare/internal/interfaces/cli/migrate"
	"geoshare/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "geoshare",
		Short: "geoshare - territorial alerting and shared infrastructure service",
		Long:  `geoshare serves geo-targeted risk alerts and shared sports infrastructure capacity over the French administrative hierarchy.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
