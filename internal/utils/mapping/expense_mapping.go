package mapping

import (
	"github.com/SscSPs/fin_automation_app/internal/core/domain"
	"github.com/SscSPs/fin_automation_app/internal/models"
)

// ToModelExpense converts a domain Expense to a model Expense
func ToModelExpense(d domain.Expense) models.Expense {
	return models.Expense{
		ExpenseID:   d.ExpenseID,
		ExpenseDate: d.Date,
		Category:    string(d.Category),
		Description: d.Description,
		Amount:      d.Amount,
		CreatedAt:   d.CreatedAt,
	}
}

// ToDomainExpense converts a model Expense to a domain Expense
func ToDomainExpense(m models.Expense) domain.Expense {
	return domain.Expense{
		ExpenseID:   m.ExpenseID,
		Date:        domain.TruncateDate(m.ExpenseDate),
		Category:    domain.ExpenseCategory(m.Category),
		Description: m.Description,
		Amount:      m.Amount,
		CreatedAt:   m.CreatedAt.UTC(),
	}
}
