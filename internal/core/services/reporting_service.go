package services

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/SscSPs/fin_automation_app/internal/apperrors"
	"github.com/SscSPs/fin_automation_app/internal/core/domain"
	portsrepo "github.com/SscSPs/fin_automation_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/fin_automation_app/internal/core/ports/services"
	"github.com/SscSPs/fin_automation_app/internal/utils/accounting"
)

// reportingService implements the ReportingService interface
type reportingService struct {
	BaseService
	accountSvc portssvc.AccountReaderSvc
	ledger     portsrepo.TransactionReader
}

// NewReportingService creates a new reporting service reading posted transactions from ledger.
func NewReportingService(ledger portsrepo.TransactionReader, accountSvc portssvc.AccountReaderSvc) portssvc.ReportingService {
	return &reportingService{
		accountSvc: accountSvc,
		ledger:     ledger,
	}
}

// Ensure reportingService implements the ReportingService interface
var _ portssvc.ReportingService = (*reportingService)(nil)

// loadLedger returns the chart and every posted transaction.
func (s *reportingService) loadLedger(ctx context.Context) (*domain.Chart, []domain.Transaction, error) {
	chart, err := s.accountSvc.Chart(ctx)
	if err != nil {
		return nil, nil, err
	}
	txns, err := s.ledger.ListTransactions(ctx, portsrepo.ListTransactionsParams{})
	if err != nil {
		s.LogError(ctx, err, "Failed to read ledger for report")
		return nil, nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to read ledger", err)
	}
	return chart, txns, nil
}

// TrialBalance generates a trial balance report as of a specific date
func (s *reportingService) TrialBalance(ctx context.Context, asOf time.Time) (*domain.TrialBalance, error) {
	if asOf.IsZero() {
		return nil, fmt.Errorf("%w: report date is required", apperrors.ErrValidation)
	}

	chart, txns, err := s.loadLedger(ctx)
	if err != nil {
		return nil, err
	}

	tb := accounting.BuildTrialBalance(txns, chart, asOf)
	if !tb.TotalDebit.Equal(tb.TotalCredit) {
		// posted transactions may each differ by up to the tolerance
		s.GetLogger(ctx).Warn("Trial balance does not balance",
			slog.String("total_debit", tb.TotalDebit.String()),
			slog.String("total_credit", tb.TotalCredit.String()))
	}

	s.LogInfo(ctx, "Trial balance report generated successfully",
		slog.String("asOf", tb.AsOf.Format(domain.DateLayout)),
		slog.Int("row_count", len(tb.Rows)))
	return &tb, nil
}

// ProfitAndLoss generates a profit and loss report for an inclusive date range
func (s *reportingService) ProfitAndLoss(ctx context.Context, from, to time.Time) (*domain.PAndLReport, error) {
	if from.IsZero() || to.IsZero() {
		return nil, fmt.Errorf("%w: report range needs both dates", apperrors.ErrValidation)
	}
	if to.Before(from) {
		return nil, fmt.Errorf("%w: report range ends before it starts", apperrors.ErrValidation)
	}

	chart, txns, err := s.loadLedger(ctx)
	if err != nil {
		return nil, err
	}

	report := accounting.BuildProfitAndLoss(txns, chart, from, to)

	s.LogInfo(ctx, "Profit and loss report generated successfully",
		slog.String("from", report.From.Format(domain.DateLayout)),
		slog.String("to", report.To.Format(domain.DateLayout)),
		slog.Int("revenue_accounts", len(report.Revenue)),
		slog.Int("expense_accounts", len(report.Expenses)))
	return &report, nil
}
