package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// JournalLine is a single debit or credit movement against one account.
// AccountCode and AccountName are filled when lines are read back from a store.
type JournalLine struct {
	LineID      int64           `json:"id,omitempty"`
	AccountID   int64           `json:"accountID"`
	AccountCode string          `json:"accountCode,omitempty"`
	AccountName string          `json:"accountName,omitempty"`
	Debit       decimal.Decimal `json:"debit"`
	Credit      decimal.Decimal `json:"credit"`
}

// DebitLine builds a line debiting accountID by amount.
func DebitLine(accountID int64, amount decimal.Decimal) JournalLine {
	return JournalLine{AccountID: accountID, Debit: amount, Credit: decimal.Zero}
}

// CreditLine builds a line crediting accountID by amount.
func CreditLine(accountID int64, amount decimal.Decimal) JournalLine {
	return JournalLine{AccountID: accountID, Debit: decimal.Zero, Credit: amount}
}

// Transaction is a posted journal entry: a header plus its ordered lines.
// Transactions are immutable once stored; corrections are new entries.
type Transaction struct {
	TransactionID int64         `json:"id"`
	Date          time.Time     `json:"date"`
	Description   string        `json:"description"`
	Lines         []JournalLine `json:"lines"`
	CreatedAt     time.Time     `json:"createdAt"`
}

// TotalDebit sums the debit side of the transaction.
func (t Transaction) TotalDebit() decimal.Decimal {
	total := decimal.Zero
	for _, l := range t.Lines {
		total = total.Add(l.Debit)
	}
	return total
}

// TotalCredit sums the credit side of the transaction.
func (t Transaction) TotalCredit() decimal.Decimal {
	total := decimal.Zero
	for _, l := range t.Lines {
		total = total.Add(l.Credit)
	}
	return total
}

// DateLayout is the calendar date format used on the wire and in storage.
const DateLayout = "2006-01-02"

// TruncateDate drops the clock part of t, keeping its calendar date in UTC.
func TruncateDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// JournalPreview is a generated journal shown to the user before it is posted.
type JournalPreview struct {
	Lines       []JournalLine   `json:"lines"`
	TotalDebit  decimal.Decimal `json:"totalDebit"`
	TotalCredit decimal.Decimal `json:"totalCredit"`
	Balanced    bool            `json:"balanced"`
}
