package accounting

import (
	"github.com/SscSPs/fin_automation_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// BalanceTolerance is the largest debit/credit difference still treated as balanced.
var BalanceTolerance = decimal.New(1, -2) // 0.01

// BalanceResult is the outcome of ValidateBalance.
type BalanceResult struct {
	Balanced    bool            `json:"balanced"`
	TotalDebit  decimal.Decimal `json:"totalDebit"`
	TotalCredit decimal.Decimal `json:"totalCredit"`
}

// Difference returns TotalDebit - TotalCredit.
func (r BalanceResult) Difference() decimal.Decimal {
	return r.TotalDebit.Sub(r.TotalCredit)
}

// ValidateBalance sums both sides of lines and reports whether they agree within
// BalanceTolerance. It only looks at aggregates and never modifies lines.
func ValidateBalance(lines []domain.JournalLine) BalanceResult {
	totalDebit := decimal.Zero
	totalCredit := decimal.Zero
	for _, line := range lines {
		totalDebit = totalDebit.Add(line.Debit)
		totalCredit = totalCredit.Add(line.Credit)
	}

	return BalanceResult{
		Balanced:    totalDebit.Sub(totalCredit).Abs().LessThanOrEqual(BalanceTolerance),
		TotalDebit:  totalDebit,
		TotalCredit: totalCredit,
	}
}
