package dto

import (
	"time"

	"github.com/SscSPs/fin_automation_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// JournalLineRequest is one (account, debit, credit) triple as submitted by the form.
type JournalLineRequest struct {
	AccountID int64           `json:"account_id" binding:"required,gt=0"`
	Debit     decimal.Decimal `json:"debit" binding:"decimal_gte0"`
	Credit    decimal.Decimal `json:"credit" binding:"decimal_gte0"`
}

// CreateTransactionRequest defines the data needed to post a manual transaction.
type CreateTransactionRequest struct {
	Date        string               `json:"date" binding:"required,datetime=2006-01-02"`
	Description string               `json:"description" binding:"required"`
	Lines       []JournalLineRequest `json:"lines" binding:"required,min=1,dive"`
}

// ToDomainLines converts the request lines to journal lines.
func ToDomainLines(lines []JournalLineRequest) []domain.JournalLine {
	out := make([]domain.JournalLine, len(lines))
	for i, l := range lines {
		out[i] = domain.JournalLine{AccountID: l.AccountID, Debit: l.Debit, Credit: l.Credit}
	}
	return out
}

// JournalLineResponse defines the data returned for a journal line.
type JournalLineResponse struct {
	LineID      int64           `json:"id,omitempty"`
	AccountID   int64           `json:"accountID"`
	AccountCode string          `json:"accountCode"`
	AccountName string          `json:"accountName"`
	Debit       decimal.Decimal `json:"debit"`
	Credit      decimal.Decimal `json:"credit"`
}

// TransactionResponse defines the data returned for a posted transaction.
type TransactionResponse struct {
	TransactionID int64                 `json:"id"`
	Date          string                `json:"date"`
	Description   string                `json:"description"`
	Lines         []JournalLineResponse `json:"lines"`
	TotalDebit    decimal.Decimal       `json:"totalDebit"`
	TotalCredit   decimal.Decimal       `json:"totalCredit"`
	CreatedAt     time.Time             `json:"createdAt"`
}

// ListTransactionsParams defines query parameters for listing transactions.
type ListTransactionsParams struct {
	Limit     int     `form:"limit" binding:"omitempty,min=1,max=500"`
	NextToken *string `form:"nextToken"`
}

// ListTransactionsResponse wraps a page of transactions.
type ListTransactionsResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	NextToken    *string               `json:"nextToken,omitempty"`
}

// ToJournalLineResponses converts journal lines to their DTOs.
func ToJournalLineResponses(lines []domain.JournalLine) []JournalLineResponse {
	res := make([]JournalLineResponse, len(lines))
	for i, l := range lines {
		res[i] = JournalLineResponse{
			LineID:      l.LineID,
			AccountID:   l.AccountID,
			AccountCode: l.AccountCode,
			AccountName: l.AccountName,
			Debit:       l.Debit,
			Credit:      l.Credit,
		}
	}
	return res
}

// ToTransactionResponse converts a domain.Transaction to TransactionResponse DTO.
func ToTransactionResponse(txn *domain.Transaction) TransactionResponse {
	return TransactionResponse{
		TransactionID: txn.TransactionID,
		Date:          txn.Date.Format(domain.DateLayout),
		Description:   txn.Description,
		Lines:         ToJournalLineResponses(txn.Lines),
		TotalDebit:    txn.TotalDebit(),
		TotalCredit:   txn.TotalCredit(),
		CreatedAt:     txn.CreatedAt,
	}
}

// ToTransactionResponses converts a slice of domain.Transaction to []TransactionResponse.
func ToTransactionResponses(txns []domain.Transaction) []TransactionResponse {
	responses := make([]TransactionResponse, len(txns))
	for i, txn := range txns {
		responses[i] = ToTransactionResponse(&txn)
	}
	return responses
}

// JournalPreviewResponse is the generated journal for a template, before posting.
type JournalPreviewResponse struct {
	Template    domain.TemplateKind   `json:"template"`
	Lines       []JournalLineResponse `json:"lines"`
	TotalDebit  decimal.Decimal       `json:"totalDebit"`
	TotalCredit decimal.Decimal       `json:"totalCredit"`
	Balanced    bool                  `json:"balanced"`
}

// ToJournalPreviewResponse converts a domain.JournalPreview to its DTO.
func ToJournalPreviewResponse(kind domain.TemplateKind, p *domain.JournalPreview) JournalPreviewResponse {
	return JournalPreviewResponse{
		Template:    kind,
		Lines:       ToJournalLineResponses(p.Lines),
		TotalDebit:  p.TotalDebit,
		TotalCredit: p.TotalCredit,
		Balanced:    p.Balanced,
	}
}
