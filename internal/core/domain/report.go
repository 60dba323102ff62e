package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TrialBalanceRow is one account's net balance, shown on the side where it sits.
type TrialBalanceRow struct {
	Account Account
	Debit   decimal.Decimal
	Credit  decimal.Decimal
}

// TrialBalance lists every account with a non-zero balance as of a date.
type TrialBalance struct {
	AsOf        time.Time
	Rows        []TrialBalanceRow
	TotalDebit  decimal.Decimal
	TotalCredit decimal.Decimal
}

// AccountAmount pairs an account with an amount in a financial report.
type AccountAmount struct {
	Account Account
	Amount  decimal.Decimal
}

// PAndLReport is the profit and loss over an inclusive date range.
type PAndLReport struct {
	From          time.Time
	To            time.Time
	Revenue       []AccountAmount
	Expenses      []AccountAmount
	TotalRevenue  decimal.Decimal
	TotalExpenses decimal.Decimal
	NetProfit     decimal.Decimal
}
