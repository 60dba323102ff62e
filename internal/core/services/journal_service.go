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
	"github.com/SscSPs/fin_automation_app/internal/dto"
	"github.com/SscSPs/fin_automation_app/internal/utils/accounting"
	"github.com/SscSPs/fin_automation_app/internal/utils/pagination"
)

var (
	ErrDescriptionMissing = errors.New("transaction description is required")
	ErrDateMissing        = errors.New("transaction date is required")
	ErrJournalNoLines     = errors.New("journal must have at least one line")
	ErrNegativeAmount     = errors.New("debit and credit must not be negative")
	ErrEmptyLine          = errors.New("journal line needs a positive debit or credit")
	ErrTemplateInputs     = errors.New("template inputs cannot produce a journal")
)

// journalService generates, validates, posts and lists ledger transactions.
type journalService struct {
	BaseService
	accountSvc  portssvc.AccountReaderSvc
	journalRepo portsrepo.JournalRepositoryFacade
}

// JournalServiceOption is a functional option for configuring the journal service
type JournalServiceOption func(*journalService)

// WithClock overrides the clock used for CreatedAt.
func WithClock(now func() time.Time) JournalServiceOption {
	return func(s *journalService) {
		s.now = now
	}
}

// NewJournalService creates a new JournalService.
func NewJournalService(journalRepo portsrepo.JournalRepositoryFacade, accountSvc portssvc.AccountReaderSvc, options ...JournalServiceOption) portssvc.JournalSvcFacade {
	svc := &journalService{
		accountSvc:  accountSvc,
		journalRepo: journalRepo,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

// Ensure journalService implements the portssvc.JournalSvcFacade interface
var _ portssvc.JournalSvcFacade = (*journalService)(nil)

// validateLines checks the per-line rules. It does not look at totals.
func validateLines(lines []domain.JournalLine) error {
	if len(lines) == 0 {
		return fmt.Errorf("%w: %w", apperrors.ErrValidation, ErrJournalNoLines)
	}
	for i, line := range lines {
		if line.AccountID <= 0 {
			return fmt.Errorf("%w: line %d has no account", apperrors.ErrValidation, i+1)
		}
		if line.Debit.IsNegative() || line.Credit.IsNegative() {
			return fmt.Errorf("%w: line %d: %w", apperrors.ErrValidation, i+1, ErrNegativeAmount)
		}
		if !line.Debit.IsPositive() && !line.Credit.IsPositive() {
			return fmt.Errorf("%w: line %d: %w", apperrors.ErrValidation, i+1, ErrEmptyLine)
		}
	}
	return nil
}

// enrichLines resolves every line's account and copies its code and name onto the line.
func enrichLines(resolver domain.AccountResolver, lines []domain.JournalLine) ([]domain.JournalLine, error) {
	enriched := make([]domain.JournalLine, len(lines))
	for i, line := range lines {
		acc, err := resolver.ResolveAccount(line.AccountID)
		if err != nil {
			var unknown *domain.UnknownAccountError
			if errors.As(err, &unknown) {
				return nil, &domain.UnknownAccountError{AccountID: line.AccountID, LineIndex: i}
			}
			return nil, err
		}
		line.AccountCode = acc.Code
		line.AccountName = acc.Name
		enriched[i] = line
	}
	return enriched, nil
}

// PostTransaction validates lines, checks they balance, resolves every account and
// only then hands the transaction to the store. Nothing is written on rejection.
func (s *journalService) PostTransaction(ctx context.Context, date time.Time, description string, lines []domain.JournalLine) (*domain.Transaction, error) {
	logger := s.GetLogger(ctx)

	description = strings.TrimSpace(description)
	if description == "" {
		return nil, fmt.Errorf("%w: %w", apperrors.ErrValidation, ErrDescriptionMissing)
	}
	if date.IsZero() {
		return nil, fmt.Errorf("%w: %w", apperrors.ErrValidation, ErrDateMissing)
	}
	if err := validateLines(lines); err != nil {
		logger.Warn("Rejected journal lines", slog.String("error", err.Error()))
		return nil, err
	}

	balance := accounting.ValidateBalance(lines)
	if !balance.Balanced {
		logger.Warn("Rejected unbalanced journal",
			slog.String("total_debit", balance.TotalDebit.String()),
			slog.String("total_credit", balance.TotalCredit.String()))
		return nil, &domain.ImbalanceError{TotalDebit: balance.TotalDebit, TotalCredit: balance.TotalCredit}
	}

	chart, err := s.accountSvc.Chart(ctx)
	if err != nil {
		return nil, err
	}
	enriched, err := enrichLines(chart, lines)
	if err != nil {
		logger.Warn("Rejected journal with unknown account", slog.String("error", err.Error()))
		return nil, err
	}

	txn := domain.Transaction{
		Date:        domain.TruncateDate(date),
		Description: description,
		Lines:       enriched,
		CreatedAt:   s.Now(),
	}

	id, err := s.journalRepo.CreateTransaction(ctx, txn)
	if err != nil {
		s.LogError(ctx, err, "Failed to save transaction in repository")
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to save transaction", err)
	}
	txn.TransactionID = id

	logger.Info("Transaction posted",
		slog.Int64("transaction_id", id),
		slog.String("date", txn.Date.Format(domain.DateLayout)),
		slog.String("description", txn.Description))
	for i, line := range txn.Lines {
		logger.Info("Journal line",
			slog.Int("line", i+1),
			slog.String("account_code", line.AccountCode),
			slog.String("account_name", line.AccountName),
			slog.String("debit", line.Debit.String()),
			slog.String("credit", line.Credit.String()))
	}

	return &txn, nil
}

// generate runs the journal generator against the live chart.
func (s *journalService) generate(ctx context.Context, tpl domain.Template) (*domain.Chart, []domain.JournalLine, error) {
	if tpl == nil {
		return nil, nil, fmt.Errorf("%w: %w", apperrors.ErrValidation, ErrTemplateInputs)
	}
	chart, err := s.accountSvc.Chart(ctx)
	if err != nil {
		return nil, nil, err
	}
	lines := accounting.GenerateJournal(tpl, chart)
	if len(lines) == 0 {
		reason := accounting.DiagnoseTemplate(tpl, chart)
		s.LogDebug(ctx, "Template produced no journal lines",
			slog.String("template", string(tpl.Kind())),
			slog.String("reason", reason))
		if reason == "" {
			return nil, nil, fmt.Errorf("%w: %w for %s", apperrors.ErrValidation, ErrTemplateInputs, tpl.Kind())
		}
		return nil, nil, fmt.Errorf("%w: %w for %s: %s", apperrors.ErrValidation, ErrTemplateInputs, tpl.Kind(), reason)
	}
	return chart, lines, nil
}

// PostTemplate generates the journal for tpl and posts it.
func (s *journalService) PostTemplate(ctx context.Context, date time.Time, description string, tpl domain.Template) (*domain.Transaction, error) {
	_, lines, err := s.generate(ctx, tpl)
	if err != nil {
		return nil, err
	}
	s.LogDebug(ctx, "Generated journal from template", slog.String("template", string(tpl.Kind())), slog.Int("lines", len(lines)))
	return s.PostTransaction(ctx, date, description, lines)
}

// PreviewTemplate generates the journal for tpl, enriches and totals it, and persists nothing.
func (s *journalService) PreviewTemplate(ctx context.Context, tpl domain.Template) (*domain.JournalPreview, error) {
	chart, lines, err := s.generate(ctx, tpl)
	if err != nil {
		return nil, err
	}
	enriched, err := enrichLines(chart, lines)
	if err != nil {
		return nil, err
	}
	balance := accounting.ValidateBalance(enriched)
	return &domain.JournalPreview{
		Lines:       enriched,
		TotalDebit:  balance.TotalDebit,
		TotalCredit: balance.TotalCredit,
		Balanced:    balance.Balanced,
	}, nil
}

// ListTransactions returns a page of transactions, newest first.
func (s *journalService) ListTransactions(ctx context.Context, params dto.ListTransactionsParams) (*dto.ListTransactionsResponse, error) {
	repoParams := portsrepo.ListTransactionsParams{}
	if params.NextToken != nil && *params.NextToken != "" {
		beforeID, err := pagination.DecodeIDCursor(*params.NextToken)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", apperrors.ErrValidation, err)
		}
		repoParams.BeforeID = beforeID
	}
	if params.Limit < 0 {
		return nil, fmt.Errorf("%w: limit must not be negative", apperrors.ErrValidation)
	}
	if params.Limit > 0 {
		// one extra row tells us whether another page exists
		repoParams.Limit = params.Limit + 1
	}

	txns, err := s.journalRepo.ListTransactions(ctx, repoParams)
	if err != nil {
		s.LogError(ctx, err, "Failed to list transactions from repository")
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to list transactions", err)
	}

	var nextToken *string
	if params.Limit > 0 && len(txns) > params.Limit {
		txns = txns[:params.Limit]
		token := pagination.EncodeIDCursor(txns[len(txns)-1].TransactionID)
		nextToken = &token
	}

	s.LogDebug(ctx, "Transactions listed", slog.Int("count", len(txns)))
	return &dto.ListTransactionsResponse{
		Transactions: dto.ToTransactionResponses(txns),
		NextToken:    nextToken,
	}, nil
}

// GetTransaction retrieves a single transaction with its lines.
func (s *journalService) GetTransaction(ctx context.Context, transactionID int64) (*domain.Transaction, error) {
	if transactionID <= 0 {
		return nil, fmt.Errorf("%w: transaction id must be positive", apperrors.ErrValidation)
	}
	txn, err := s.journalRepo.FindTransactionByID(ctx, transactionID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find transaction", slog.Int64("transaction_id", transactionID))
			return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to load transaction", err)
		}
		return nil, err
	}
	return txn, nil
}
