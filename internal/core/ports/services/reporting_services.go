package services

import (
	"context"
	"time"

	"github.com/SscSPs/fin_automation_app/internal/core/domain"
)

// ReportingService defines operations for generating financial reports
type ReportingService interface {
	// TrialBalance generates a trial balance report as of a specific date
	TrialBalance(ctx context.Context, asOf time.Time) (*domain.TrialBalance, error)

	// ProfitAndLoss generates a profit and loss report for an inclusive date range
	ProfitAndLoss(ctx context.Context, from, to time.Time) (*domain.PAndLReport, error)
}
