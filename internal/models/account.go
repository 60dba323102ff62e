package models

// NormalBalance is the stored form of an account's normal side.
type NormalBalance string

const (
	Debit  NormalBalance = "DEBIT"
	Credit NormalBalance = "CREDIT"
)

// AccountGroup is the stored form of an account's statement group.
type AccountGroup string

const (
	BalanceSheet    AccountGroup = "BALANCE_SHEET"
	IncomeStatement AccountGroup = "INCOME_STATEMENT"
)

// Account is a row of the accounts table.
type Account struct {
	AccountID     int64         `db:"id" json:"id"`
	Code          string        `db:"code" json:"code"`
	Name          string        `db:"name" json:"name"`
	NormalBalance NormalBalance `db:"normal_balance" json:"normalBalance"`
	AccountGroup  AccountGroup  `db:"account_group" json:"group"`
}
