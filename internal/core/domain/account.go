package domain

import "fmt"

// NormalBalance is the side on which an account normally increases.
type NormalBalance string

const (
	NormalDebit  NormalBalance = "DEBIT"
	NormalCredit NormalBalance = "CREDIT"
)

// Valid reports whether b is a known side.
func (b NormalBalance) Valid() bool {
	return b == NormalDebit || b == NormalCredit
}

// AccountGroup is the financial statement an account reports on.
type AccountGroup string

const (
	BalanceSheet    AccountGroup = "BALANCE_SHEET"
	IncomeStatement AccountGroup = "INCOME_STATEMENT"
)

// Valid reports whether g is a known group.
func (g AccountGroup) Valid() bool {
	return g == BalanceSheet || g == IncomeStatement
}

// Account is a single entry of the chart of accounts.
// Accounts are reference data: seeded once and never mutated.
type Account struct {
	AccountID     int64         `json:"id"`
	Code          string        `json:"code"`
	Name          string        `json:"name"`
	NormalBalance NormalBalance `json:"normalBalance"`
	Group         AccountGroup  `json:"group"`
}

// Label renders the account the way the entry forms display it,
// e.g. "[111] Kas (DEBIT – BALANCE_SHEET)".
func (a Account) Label() string {
	return fmt.Sprintf("[%s] %s (%s – %s)", a.Code, a.Name, a.NormalBalance, a.Group)
}
