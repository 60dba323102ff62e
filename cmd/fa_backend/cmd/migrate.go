package cmd

import (
	"log/slog"

	"github.com/SscSPs/fin_automation_app/internal/repositories"
	"github.com/spf13/cobra"
)

// migrateCmd applies schema migrations without starting the server.
var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply database migrations for the configured storage backend",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := repositories.Migrate(cfg); err != nil {
			slog.Error("Failed to apply migrations", slog.String("error", err.Error()))
			return err
		}
		slog.Info("Migrations up to date", slog.String("backend", cfg.StorageBackend))
		return nil
	},
}
