package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is a row of the transactions table.
// The document store embeds Lines in the same record.
type Transaction struct {
	TransactionID int64         `db:"id" json:"id"`
	TxnDate       time.Time     `db:"txn_date" json:"date"`
	Description   string        `db:"description" json:"description"`
	CreatedAt     time.Time     `db:"created_at" json:"createdAt"`
	Lines         []JournalLine `db:"-" json:"lines"`
}

// JournalLine is a row of the journal_lines table joined to its account.
type JournalLine struct {
	LineID        int64           `db:"id" json:"id"`
	TransactionID int64           `db:"transaction_id" json:"transactionID"`
	AccountID     int64           `db:"account_id" json:"accountID"`
	AccountCode   string          `db:"code" json:"-"`
	AccountName   string          `db:"name" json:"-"`
	Debit         decimal.Decimal `db:"debit" json:"debit"`
	Credit        decimal.Decimal `db:"credit" json:"credit"`
}
