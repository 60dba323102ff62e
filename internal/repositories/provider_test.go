package repositories

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/SscSPs/fin_automation_app/internal/core/domain"
	"github.com/SscSPs/fin_automation_app/internal/platform/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpen_EachEmbeddedBackend(t *testing.T) {
	dir := t.TempDir()
	tests := []struct {
		name string
		cfg  config.Config
	}{
		{"memory", config.Config{StorageBackend: config.BackendMemory}},
		{"sqlite", config.Config{StorageBackend: config.BackendSQLite, SQLitePath: filepath.Join(dir, "a.db"), RunMigrations: true}},
		{"bolt", config.Config{StorageBackend: config.BackendBolt, BoltPath: filepath.Join(dir, "a.bolt")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			repos, closeFn, err := Open(ctx, &tt.cfg)
			require.NoError(t, err)
			defer closeFn()

			n, err := repos.AccountRepo.SeedAccounts(ctx, []domain.Account{
				{Code: "111", Name: "Kas", NormalBalance: domain.NormalDebit, Group: domain.BalanceSheet},
			})
			require.NoError(t, err)
			assert.Equal(t, 1, n)
			assert.NotNil(t, repos.JournalRepo)
			assert.NotNil(t, repos.ExpenseRepo)
		})
	}
}

func TestOpen_UnknownBackend(t *testing.T) {
	_, _, err := Open(context.Background(), &config.Config{StorageBackend: "mongo"})
	assert.Error(t, err)
}
