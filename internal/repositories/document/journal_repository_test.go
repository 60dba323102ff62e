package document

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/SscSPs/fin_automation_app/internal/core/domain"
	portsrepo "github.com/SscSPs/fin_automation_app/internal/core/ports/repositories"
	"github.com/SscSPs/fin_automation_app/internal/models"
	"github.com/SscSPs/fin_automation_app/pkg/database"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	bolt "go.etcd.io/bbolt"
)

func TestListTransactions_LineWithoutStoredAccountKeepsEmptyLabels(t *testing.T) {
	db, err := database.OpenBolt(filepath.Join(t.TempDir(), "ledger.bolt"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, Init(db))

	ctx := context.Background()
	repos := NewRepositoryProvider(db)
	_, err = repos.AccountRepo.SeedAccounts(ctx, []domain.Account{
		{Code: "111", Name: "Kas", NormalBalance: domain.NormalDebit, Group: domain.BalanceSheet},
	})
	require.NoError(t, err)

	// written straight to the bucket; CreateTransaction refuses unknown accounts
	require.NoError(t, db.Update(func(tx *bolt.Tx) error {
		return put(tx.Bucket(transactionsBucket), 1, models.Transaction{
			TransactionID: 1,
			TxnDate:       time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
			Description:   "legacy",
			CreatedAt:     time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC),
			Lines: []models.JournalLine{
				{LineID: 1, TransactionID: 1, AccountID: 1, Debit: decimal.NewFromInt(5), Credit: decimal.Zero},
				{LineID: 2, TransactionID: 1, AccountID: 42, Debit: decimal.Zero, Credit: decimal.NewFromInt(5)},
			},
		})
	}))

	txns, err := repos.JournalRepo.ListTransactions(ctx, portsrepo.ListTransactionsParams{})
	require.NoError(t, err)
	require.Len(t, txns, 1)
	require.Len(t, txns[0].Lines, 2)
	assert.Equal(t, "111", txns[0].Lines[0].AccountCode)
	assert.Equal(t, "Kas", txns[0].Lines[0].AccountName)
	assert.Equal(t, int64(42), txns[0].Lines[1].AccountID)
	assert.Empty(t, txns[0].Lines[1].AccountCode)
	assert.Empty(t, txns[0].Lines[1].AccountName)

	got, err := repos.JournalRepo.FindTransactionByID(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, got.Lines, 2)
}
