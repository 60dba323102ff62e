package dto

import (
	"time"

	"github.com/SscSPs/fin_automation_app/internal/core/domain"
	"github.com/SscSPs/fin_automation_app/internal/utils"
	"github.com/shopspring/decimal"
)

// CreateExpenseRequest defines the data needed to record an expense.
type CreateExpenseRequest struct {
	Date        string          `json:"date" binding:"required,datetime=2006-01-02"`
	Category    string          `json:"category" binding:"required,expense_category"`
	Description string          `json:"description" binding:"required"`
	Amount      decimal.Decimal `json:"amount" binding:"decimal_gt0"`
}

// ListExpensesParams defines query parameters for listing expenses.
// The range only applies when both bounds are given.
type ListExpensesParams struct {
	StartDate string `form:"startDate" binding:"omitempty,datetime=2006-01-02"`
	EndDate   string `form:"endDate" binding:"omitempty,datetime=2006-01-02"`
}

// ExpenseResponse defines the data returned for an expense.
type ExpenseResponse struct {
	ExpenseID   int64                  `json:"id"`
	Date        string                 `json:"date"`
	Category    domain.ExpenseCategory `json:"category"`
	Description string                 `json:"description"`
	Amount      decimal.Decimal        `json:"amount"`
	CreatedAt   time.Time              `json:"createdAt"`
}

// ExpenseSummaryResponse is the expense total overall and per category.
type ExpenseSummaryResponse struct {
	Count               int                                        `json:"count"`
	Total               decimal.Decimal                            `json:"total"`
	TotalFormatted      string                                     `json:"totalFormatted"`
	ByCategory          map[domain.ExpenseCategory]decimal.Decimal `json:"byCategory"`
	ByCategoryFormatted map[domain.ExpenseCategory]string          `json:"byCategoryFormatted"`
}

// ToExpenseResponse converts a domain.Expense to ExpenseResponse DTO.
func ToExpenseResponse(e *domain.Expense) ExpenseResponse {
	return ExpenseResponse{
		ExpenseID:   e.ExpenseID,
		Date:        e.Date.Format(domain.DateLayout),
		Category:    e.Category,
		Description: e.Description,
		Amount:      e.Amount,
		CreatedAt:   e.CreatedAt,
	}
}

// ToExpenseResponses converts a slice of domain.Expense to []ExpenseResponse.
func ToExpenseResponses(expenses []domain.Expense) []ExpenseResponse {
	res := make([]ExpenseResponse, len(expenses))
	for i, e := range expenses {
		res[i] = ToExpenseResponse(&e)
	}
	return res
}

// ToExpenseSummaryResponse converts a domain.ExpenseSummary to its DTO.
func ToExpenseSummaryResponse(s domain.ExpenseSummary) ExpenseSummaryResponse {
	labels := make(map[domain.ExpenseCategory]string, len(s.ByCategory))
	for cat, total := range s.ByCategory {
		labels[cat] = utils.FormatRupiah(total)
	}
	return ExpenseSummaryResponse{
		Count:               s.Count,
		Total:               s.Total,
		TotalFormatted:      utils.FormatRupiah(s.Total),
		ByCategory:          s.ByCategory,
		ByCategoryFormatted: labels,
	}
}
