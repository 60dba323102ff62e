package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/SscSPs/fin_automation_app/internal/apperrors"
	"github.com/SscSPs/fin_automation_app/internal/core/domain"
	portsrepo "github.com/SscSPs/fin_automation_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/fin_automation_app/internal/core/ports/services"
	"github.com/shopspring/decimal"
)

var ErrExpenseAmount = errors.New("expense amount must be greater than zero")

type expenseService struct {
	BaseService
	expenseRepo portsrepo.ExpenseRepositoryFacade
}

// NewExpenseService creates a new ExpenseService.
func NewExpenseService(repo portsrepo.ExpenseRepositoryFacade) portssvc.ExpenseSvcFacade {
	return &expenseService{expenseRepo: repo}
}

var _ portssvc.ExpenseSvcFacade = (*expenseService)(nil)

func (s *expenseService) CreateExpense(ctx context.Context, date time.Time, category domain.ExpenseCategory, description string, amount decimal.Decimal) (*domain.Expense, error) {
	description = strings.TrimSpace(description)
	switch {
	case date.IsZero():
		return nil, fmt.Errorf("%w: expense date is required", apperrors.ErrValidation)
	case !category.Valid():
		return nil, fmt.Errorf("%w: unknown expense category %q", apperrors.ErrValidation, category)
	case description == "":
		return nil, fmt.Errorf("%w: expense description is required", apperrors.ErrValidation)
	case !amount.IsPositive():
		return nil, fmt.Errorf("%w: %w", apperrors.ErrValidation, ErrExpenseAmount)
	}

	expense := domain.Expense{
		Date:        domain.TruncateDate(date),
		Category:    category,
		Description: description,
		Amount:      amount,
		CreatedAt:   s.Now(),
	}
	id, err := s.expenseRepo.CreateExpense(ctx, expense)
	if err != nil {
		s.LogError(ctx, err, "Failed to save expense in repository")
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to save expense", err)
	}
	expense.ExpenseID = id

	s.LogInfo(ctx, "Expense saved",
		slog.Int64("expense_id", id),
		slog.String("date", expense.Date.Format(domain.DateLayout)),
		slog.String("category", string(category)),
		slog.String("amount", amount.String()))
	return &expense, nil
}

func validateFilter(filter domain.ExpenseFilter) error {
	if filter.StartDate != nil && filter.EndDate != nil && filter.EndDate.Before(*filter.StartDate) {
		return fmt.Errorf("%w: endDate is before startDate", apperrors.ErrValidation)
	}
	return nil
}

func (s *expenseService) ListExpenses(ctx context.Context, filter domain.ExpenseFilter) ([]domain.Expense, error) {
	if err := validateFilter(filter); err != nil {
		return nil, err
	}
	expenses, err := s.expenseRepo.ListExpenses(ctx, filter)
	if err != nil {
		s.LogError(ctx, err, "Failed to list expenses from repository")
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to list expenses", err)
	}
	if expenses == nil {
		return []domain.Expense{}, nil
	}
	return expenses, nil
}

func (s *expenseService) SummarizeExpenses(ctx context.Context, filter domain.ExpenseFilter) (*domain.ExpenseSummary, error) {
	expenses, err := s.ListExpenses(ctx, filter)
	if err != nil {
		return nil, err
	}
	summary := domain.SummarizeExpenses(expenses)
	return &summary, nil
}

func (s *expenseService) DeleteExpense(ctx context.Context, expenseID int64) error {
	if expenseID <= 0 {
		return fmt.Errorf("%w: expense id must be positive", apperrors.ErrValidation)
	}
	if err := s.expenseRepo.DeleteExpense(ctx, expenseID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return err
		}
		s.LogError(ctx, err, "Failed to delete expense", slog.Int64("expense_id", expenseID))
		return apperrors.NewAppError(http.StatusInternalServerError, "failed to delete expense", err)
	}
	s.LogInfo(ctx, "Expense deleted", slog.Int64("expense_id", expenseID))
	return nil
}
