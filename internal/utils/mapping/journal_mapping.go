package mapping

import (
	"github.com/SscSPs/fin_automation_app/internal/core/domain"
	"github.com/SscSPs/fin_automation_app/internal/models"
)

// ToModelTransaction converts a domain Transaction to a model Transaction with its lines
func ToModelTransaction(d domain.Transaction) models.Transaction {
	lines := make([]models.JournalLine, len(d.Lines))
	for i, l := range d.Lines {
		lines[i] = ToModelJournalLine(d.TransactionID, l)
	}
	return models.Transaction{
		TransactionID: d.TransactionID,
		TxnDate:       d.Date,
		Description:   d.Description,
		CreatedAt:     d.CreatedAt,
		Lines:         lines,
	}
}

// ToModelJournalLine converts a domain JournalLine to a model JournalLine
func ToModelJournalLine(transactionID int64, d domain.JournalLine) models.JournalLine {
	return models.JournalLine{
		LineID:        d.LineID,
		TransactionID: transactionID,
		AccountID:     d.AccountID,
		AccountCode:   d.AccountCode,
		AccountName:   d.AccountName,
		Debit:         d.Debit,
		Credit:        d.Credit,
	}
}

// ToDomainJournalLine converts a model JournalLine to a domain JournalLine
func ToDomainJournalLine(m models.JournalLine) domain.JournalLine {
	return domain.JournalLine{
		LineID:      m.LineID,
		AccountID:   m.AccountID,
		AccountCode: m.AccountCode,
		AccountName: m.AccountName,
		Debit:       m.Debit,
		Credit:      m.Credit,
	}
}

// ToDomainTransaction converts a model Transaction and its lines to a domain Transaction
func ToDomainTransaction(m models.Transaction) domain.Transaction {
	lines := make([]domain.JournalLine, len(m.Lines))
	for i, l := range m.Lines {
		lines[i] = ToDomainJournalLine(l)
	}
	return domain.Transaction{
		TransactionID: m.TransactionID,
		Date:          domain.TruncateDate(m.TxnDate),
		Description:   m.Description,
		Lines:         lines,
		CreatedAt:     m.CreatedAt.UTC(),
	}
}
