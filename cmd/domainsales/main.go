package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/GraziArcH/domain-sales/internal/interfaces/cli/migrate"
	"github.com/GraziArcH/domain-sales/internal/interfaces/cli/seed"
	"github.com/GraziArcH/domain-sales/internal/interfaces/cli/server"
	"github.com/GraziArcH/domain-sales/internal/interfaces/cli/token"
	"github.com/GraziArcH/domain-sales/internal/interfaces/cli/version"
)

// @title                      Domain Sales API
// @version                    1.0
// @description                Plan catalog, company subscriptions and seat usage.
// @BasePath                   /api
// @securityDefinitions.apikey Bearer
// @in                         header
// @name                       Authorization
// @securityDefinitions.apikey ServiceKey
// @in                         header
// @name                       X-Service-Key
func main() {
	rootCmd := &cobra.Command{
		Use:          "domainsales",
		Short:        "Domain sales - plans, subscriptions and seats",
		Long:         `domainsales serves the plan catalog, company subscriptions and the seat engine, and ships the migration and seeding tools for its databases.`,
		SilenceUsage: true,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
		seed.NewCommand(),
		token.NewCommand(),
		version.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
