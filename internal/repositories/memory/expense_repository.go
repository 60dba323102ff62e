package memory

import (
	"context"
	"sort"

	"github.com/SscSPs/fin_automation_app/internal/apperrors"
	"github.com/SscSPs/fin_automation_app/internal/core/domain"
	portsrepo "github.com/SscSPs/fin_automation_app/internal/core/ports/repositories"
)

type expenseRepository struct {
	store *Store
}

var _ portsrepo.ExpenseRepositoryFacade = (*expenseRepository)(nil)

func (r *expenseRepository) CreateExpense(ctx context.Context, expense domain.Expense) (int64, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextExpenseID++
	expense.ExpenseID = s.nextExpenseID
	s.expenses = append(s.expenses, expense)
	return expense.ExpenseID, nil
}

// ListExpenses returns expenses within filter, latest date first and then by id.
func (r *expenseRepository) ListExpenses(ctx context.Context, filter domain.ExpenseFilter) ([]domain.Expense, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]domain.Expense, 0, len(s.expenses))
	for _, e := range s.expenses {
		if filter.StartDate != nil && e.Date.Before(*filter.StartDate) {
			continue
		}
		if filter.EndDate != nil && e.Date.After(*filter.EndDate) {
			continue
		}
		result = append(result, e)
	}
	sort.Slice(result, func(i, j int) bool {
		if !result[i].Date.Equal(result[j].Date) {
			return result[i].Date.After(result[j].Date)
		}
		return result[i].ExpenseID > result[j].ExpenseID
	})
	return result, nil
}

func (r *expenseRepository) DeleteExpense(ctx context.Context, expenseID int64) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, e := range s.expenses {
		if e.ExpenseID == expenseID {
			s.expenses = append(s.expenses[:i], s.expenses[i+1:]...)
			return nil
		}
	}
	return apperrors.ErrNotFound
}
