package domain

import (
	"fmt"

	"github.com/SscSPs/fin_automation_app/internal/apperrors"
	"github.com/shopspring/decimal"
)

// ImbalanceError reports a journal whose debits and credits differ beyond tolerance.
type ImbalanceError struct {
	TotalDebit  decimal.Decimal
	TotalCredit decimal.Decimal
}

func (e *ImbalanceError) Error() string {
	return fmt.Sprintf("%s: total debit %s, total credit %s",
		apperrors.ErrImbalance.Error(), e.TotalDebit.String(), e.TotalCredit.String())
}

func (e *ImbalanceError) Unwrap() error {
	return apperrors.ErrImbalance
}

// UnknownAccountError reports a line referencing an account outside the chart.
// LineIndex is -1 when the lookup was not tied to a particular line.
type UnknownAccountError struct {
	AccountID int64
	LineIndex int
}

func (e *UnknownAccountError) Error() string {
	if e.LineIndex < 0 {
		return fmt.Sprintf("%s: account id %d", apperrors.ErrUnknownAccount.Error(), e.AccountID)
	}
	return fmt.Sprintf("%s: account id %d on line %d", apperrors.ErrUnknownAccount.Error(), e.AccountID, e.LineIndex+1)
}

func (e *UnknownAccountError) Unwrap() error {
	return apperrors.ErrUnknownAccount
}
