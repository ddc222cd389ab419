package main

import (
	"fmt"
	"log/slog"

	"github.com/SscSPs/asset_management_app/internal/adapters/database/pgsql"
	"github.com/SscSPs/asset_management_app/internal/platform/config"
	"github.com/spf13/cobra"
)

func migrateCmd(logger *slog.Logger) *cobra.Command {
	var source string

	cmd := &cobra.Command{
		Use:   "migrate [up|down]",
		Short: "Apply or revert the postgres schema migrations",
		Long: `Apply or revert the postgres schema migrations.

Examples:
  assetmgmt migrate up
  assetmgmt migrate down --source file://migrations`,
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{pgsql.MigrateUp, pgsql.MigrateDown},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig()
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			if cfg.DBDriver != config.DriverPostgres {
				return fmt.Errorf("migrations only apply to DB_DRIVER=%s, got %q", config.DriverPostgres, cfg.DBDriver)
			}
			if source == "" {
				source = cfg.MigrationsPath
			}
			return pgsql.RunMigrations(cfg.DatabaseURL, source, args[0], logger)
		},
	}

	cmd.Flags().StringVar(&source, "source", "", "migration source URL (defaults to MIGRATIONS_PATH)")

	return cmd
}
