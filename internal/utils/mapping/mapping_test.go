package mapping

import (
	"testing"
	"time"

	"github.com/SscSPs/fin_automation_app/internal/core/domain"
	"github.com/SscSPs/fin_automation_app/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToDomainTransaction_NormalisesDates(t *testing.T) {
	jakarta := time.FixedZone("WIB", 7*3600)
	m := models.Transaction{
		TransactionID: 3,
		TxnDate:       time.Date(2025, 3, 4, 0, 0, 0, 0, jakarta),
		Description:   "DP",
		CreatedAt:     time.Date(2025, 3, 4, 16, 0, 0, 0, jakarta),
		Lines: []models.JournalLine{
			{LineID: 10, TransactionID: 3, AccountID: 1, AccountCode: "111", AccountName: "Kas", Debit: decimal.NewFromInt(5), Credit: decimal.Zero},
		},
	}

	d := ToDomainTransaction(m)

	assert.Equal(t, time.Date(2025, 3, 4, 0, 0, 0, 0, time.UTC), d.Date)
	assert.Equal(t, time.UTC, d.CreatedAt.Location())
	assert.True(t, d.CreatedAt.Equal(m.CreatedAt))
	require.Len(t, d.Lines, 1)
	assert.Equal(t, "Kas", d.Lines[0].AccountName)
	assert.Equal(t, int64(10), d.Lines[0].LineID)
}

func TestToModelTransaction_StampsTransactionID(t *testing.T) {
	d := domain.Transaction{
		TransactionID: 8,
		Lines:         []domain.JournalLine{domain.DebitLine(1, decimal.NewFromInt(1)), domain.CreditLine(2, decimal.NewFromInt(1))},
	}

	m := ToModelTransaction(d)

	require.Len(t, m.Lines, 2)
	for _, l := range m.Lines {
		assert.Equal(t, int64(8), l.TransactionID)
	}
}

func TestAccountRoundTrip(t *testing.T) {
	acc := domain.Account{AccountID: 4, Code: "114", Name: "Piutang Usaha", NormalBalance: domain.NormalDebit, Group: domain.BalanceSheet}
	assert.Equal(t, acc, ToDomainAccount(ToModelAccount(acc)))
}
