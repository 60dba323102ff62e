package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// ExpenseCategory classifies an expense.
type ExpenseCategory string

const (
	ExpenseService ExpenseCategory = "SERVICE"
	ExpenseGoods   ExpenseCategory = "GOODS"
)

// Valid reports whether c is a known category.
func (c ExpenseCategory) Valid() bool {
	return c == ExpenseService || c == ExpenseGoods
}

// ParseExpenseCategory accepts the canonical names and the Indonesian
// form values "jasa" and "barang".
func ParseExpenseCategory(s string) (ExpenseCategory, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "service", "jasa":
		return ExpenseService, nil
	case "goods", "barang":
		return ExpenseGoods, nil
	}
	return "", fmt.Errorf("unknown expense category %q", s)
}

// Expense is a standalone spending record with no double-entry semantics.
type Expense struct {
	ExpenseID   int64           `json:"id"`
	Date        time.Time       `json:"date"`
	Category    ExpenseCategory `json:"category"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	CreatedAt   time.Time       `json:"createdAt"`
}

// ExpenseFilter restricts an expense listing to an inclusive date range.
// A nil bound is open.
type ExpenseFilter struct {
	StartDate *time.Time
	EndDate   *time.Time
}

// ExpenseSummary aggregates a set of expenses.
type ExpenseSummary struct {
	Count      int                                 `json:"count"`
	Total      decimal.Decimal                     `json:"total"`
	ByCategory map[ExpenseCategory]decimal.Decimal `json:"byCategory"`
}

// SummarizeExpenses totals expenses overall and per category.
func SummarizeExpenses(expenses []Expense) ExpenseSummary {
	s := ExpenseSummary{
		Total: decimal.Zero,
		ByCategory: map[ExpenseCategory]decimal.Decimal{
			ExpenseService: decimal.Zero,
			ExpenseGoods:   decimal.Zero,
		},
	}
	for _, e := range expenses {
		s.Count++
		s.Total = s.Total.Add(e.Amount)
		s.ByCategory[e.Category] = s.ByCategory[e.Category].Add(e.Amount)
	}
	return s
}
