// Package repositories opens the Ledger Store backend named by configuration.
package repositories

import (
	"context"
	"fmt"
	"log/slog"

	portsrepo "github.com/SscSPs/fin_automation_app/internal/core/ports/repositories"
	"github.com/SscSPs/fin_automation_app/internal/platform/config"
	"github.com/SscSPs/fin_automation_app/internal/repositories/database/pgsql"
	"github.com/SscSPs/fin_automation_app/internal/repositories/database/sqlite"
	"github.com/SscSPs/fin_automation_app/internal/repositories/document"
	"github.com/SscSPs/fin_automation_app/internal/repositories/memory"
	"github.com/SscSPs/fin_automation_app/pkg/database"
)

// Open connects to the configured backend, applying migrations first when
// cfg.RunMigrations is set. The returned func releases the backend.
func Open(ctx context.Context, cfg *config.Config) (portsrepo.RepositoryProvider, func(), error) {
	if cfg.RunMigrations {
		if err := Migrate(cfg); err != nil {
			return portsrepo.RepositoryProvider{}, nil, err
		}
	}

	switch cfg.StorageBackend {
	case config.BackendMemory:
		slog.Warn("Using in-memory storage; data is lost on restart")
		return memory.NewRepositoryProvider(memory.NewStore()), func() {}, nil

	case config.BackendPostgres:
		pool, err := database.NewPgxPool(ctx, cfg.DatabaseURL, cfg.EnableDBCheck)
		if err != nil {
			return portsrepo.RepositoryProvider{}, nil, err
		}
		return pgsql.NewRepositoryProvider(pool), func() { database.ClosePgxPool(pool) }, nil

	case config.BackendSQLite:
		db, err := database.OpenSQLite(cfg.SQLitePath)
		if err != nil {
			return portsrepo.RepositoryProvider{}, nil, err
		}
		slog.Info("Opened SQLite database", slog.String("path", cfg.SQLitePath))
		return sqlite.NewRepositoryProvider(db), closeWithLog("sqlite", db.Close), nil

	case config.BackendBolt:
		db, err := database.OpenBolt(cfg.BoltPath)
		if err != nil {
			return portsrepo.RepositoryProvider{}, nil, err
		}
		if err := document.Init(db); err != nil {
			db.Close()
			return portsrepo.RepositoryProvider{}, nil, err
		}
		slog.Info("Opened bolt database", slog.String("path", cfg.BoltPath))
		return document.NewRepositoryProvider(db), closeWithLog("bolt", db.Close), nil
	}
	return portsrepo.RepositoryProvider{}, nil, fmt.Errorf("unknown storage backend %q", cfg.StorageBackend)
}

// Migrate applies schema migrations for the relational backends. Other backends need none.
func Migrate(cfg *config.Config) error {
	switch cfg.StorageBackend {
	case config.BackendPostgres:
		slog.Info("Running database migrations", slog.String("backend", cfg.StorageBackend))
		return database.MigratePostgres(cfg.DatabaseURL)
	case config.BackendSQLite:
		slog.Info("Running database migrations", slog.String("backend", cfg.StorageBackend))
		return database.MigrateSQLite(cfg.SQLitePath)
	}
	return nil
}

func closeWithLog(name string, closeFn func() error) func() {
	return func() {
		if err := closeFn(); err != nil {
			slog.Error("Error closing database", slog.String("backend", name), slog.String("error", err.Error()))
		}
	}
}
