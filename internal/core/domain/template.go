package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// TemplateKind names one of the journal templates.
type TemplateKind string

const (
	TemplateDownPayment          TemplateKind = "DOWN_PAYMENT"
	TemplateFullPayment          TemplateKind = "FULL_PAYMENT"
	TemplateReceivableSettlement TemplateKind = "RECEIVABLE_SETTLEMENT"
	TemplateManual               TemplateKind = "MANUAL"
)

// ParseTemplateKind accepts the canonical name or its URL slug ("down-payment").
func ParseTemplateKind(s string) (TemplateKind, error) {
	switch s {
	case string(TemplateDownPayment), "down-payment":
		return TemplateDownPayment, nil
	case string(TemplateFullPayment), "full-payment":
		return TemplateFullPayment, nil
	case string(TemplateReceivableSettlement), "receivable-settlement":
		return TemplateReceivableSettlement, nil
	case string(TemplateManual), "manual":
		return TemplateManual, nil
	}
	return "", fmt.Errorf("unknown journal template %q", s)
}

// Template is a closed set of business events the journal generator understands.
// Only the types in this file implement it.
type Template interface {
	Kind() TemplateKind
	isTemplate()
}

// DownPayment is a sale where part is paid now and the rest becomes a receivable.
type DownPayment struct {
	CashAccountID     int64
	DownPaymentAmount decimal.Decimal
	ReceivableAmount  decimal.Decimal
	CostOfGoods       decimal.Decimal
	AdminFee          decimal.Decimal
}

// FullPayment is a sale paid in full.
type FullPayment struct {
	CashAccountID   int64
	TotalSaleAmount decimal.Decimal
	CostOfGoods     decimal.Decimal
	AdminFee        decimal.Decimal
}

// ReceivableSettlement records the collection of an outstanding receivable.
type ReceivableSettlement struct {
	CashAccountID    int64
	SettlementAmount decimal.Decimal
	ShippingFee      decimal.Decimal
	AdminFee         decimal.Decimal
}

// ManualLine is one caller-supplied (account, debit, credit) triple.
type ManualLine struct {
	AccountID int64
	Debit     decimal.Decimal
	Credit    decimal.Decimal
}

// Manual passes caller-supplied lines through unchanged.
type Manual struct {
	Lines []ManualLine
}

func (DownPayment) Kind() TemplateKind          { return TemplateDownPayment }
func (FullPayment) Kind() TemplateKind          { return TemplateFullPayment }
func (ReceivableSettlement) Kind() TemplateKind { return TemplateReceivableSettlement }
func (Manual) Kind() TemplateKind               { return TemplateManual }

func (DownPayment) isTemplate()          {}
func (FullPayment) isTemplate()          {}
func (ReceivableSettlement) isTemplate() {}
func (Manual) isTemplate()               {}
