package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"sync"

	"github.com/SscSPs/fin_automation_app/internal/apperrors"
	"github.com/SscSPs/fin_automation_app/internal/core/domain"
	portsrepo "github.com/SscSPs/fin_automation_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/fin_automation_app/internal/core/ports/services"
)

// ErrChartNotInitialized is returned when the chart is used before InitializeChart ran.
var ErrChartNotInitialized = errors.New("chart of accounts not initialized")

// accountService implements the AccountSvcFacade interface
type accountService struct {
	BaseService
	accountRepo portsrepo.AccountRepositoryFacade

	mu    sync.RWMutex
	chart *domain.Chart
}

// NewAccountService creates a new account service.
func NewAccountService(repo portsrepo.AccountRepositoryFacade) portssvc.AccountSvcFacade {
	return &accountService{accountRepo: repo}
}

// Ensure accountService implements the AccountSvcFacade interface
var _ portssvc.AccountSvcFacade = (*accountService)(nil)

// InitializeChart seeds the store when it holds no accounts, then builds the live
// chart from the stored rows so ids are the ones the store assigned.
func (s *accountService) InitializeChart(ctx context.Context, def domain.ChartDefinition) error {
	inserted, err := s.accountRepo.SeedAccounts(ctx, def.Accounts)
	if err != nil {
		s.LogError(ctx, err, "Failed to seed chart of accounts")
		return fmt.Errorf("failed to seed chart of accounts: %w", err)
	}
	if inserted > 0 {
		s.LogInfo(ctx, "Seeded chart of accounts", slog.Int("accounts", inserted))
	}

	accounts, err := s.accountRepo.ListAccounts(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to load chart of accounts")
		return fmt.Errorf("failed to load chart of accounts: %w", err)
	}

	chart, err := domain.NewChart(accounts, def.Roles)
	if err != nil {
		s.LogError(ctx, err, "Stored chart does not satisfy template roles")
		return err
	}

	s.mu.Lock()
	s.chart = chart
	s.mu.Unlock()

	s.LogInfo(ctx, "Chart of accounts ready", slog.Int("accounts", chart.Len()))
	return nil
}

// Chart returns the chart loaded by InitializeChart.
func (s *accountService) Chart(ctx context.Context) (*domain.Chart, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.chart == nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "chart unavailable", ErrChartNotInitialized)
	}
	return s.chart, nil
}

// ListAccounts returns every account ordered by code.
func (s *accountService) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	accounts, err := s.accountRepo.ListAccounts(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list accounts from repository")
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	if accounts == nil {
		return []domain.Account{}, nil
	}
	s.LogDebug(ctx, "Accounts listed successfully from service", slog.Int("count", len(accounts)))
	return accounts, nil
}

// GetAccountByID retrieves a single account.
func (s *accountService) GetAccountByID(ctx context.Context, accountID int64) (*domain.Account, error) {
	account, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		// Note: Don't log if error is ErrNotFound, as it's an expected outcome
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find account by ID in repository", slog.Int64("account_id", accountID))
		}
		return nil, err
	}
	return account, nil
}
