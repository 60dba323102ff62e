package dto

import (
	"fmt"

	"github.com/SscSPs/fin_automation_app/internal/apperrors"
	"github.com/SscSPs/fin_automation_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// TemplateRequest carries the inputs of every journal template. Which fields are
// read depends on the template named in the URL; the rest are ignored.
// Date and Description are only needed when the journal is posted.
type TemplateRequest struct {
	Date        string `json:"date" binding:"omitempty,datetime=2006-01-02"`
	Description string `json:"description"`

	CashAccountID     int64           `json:"cash_account_id" binding:"gte=0"`
	DownPaymentAmount decimal.Decimal `json:"down_payment_amount"`
	ReceivableAmount  decimal.Decimal `json:"receivable_amount"`
	TotalSaleAmount   decimal.Decimal `json:"total_sale_amount"`
	SettlementAmount  decimal.Decimal `json:"settlement_amount"`
	CostOfGoods       decimal.Decimal `json:"cost_of_goods" binding:"decimal_gte0"`
	AdminFee          decimal.Decimal `json:"admin_fee" binding:"decimal_gte0"`
	ShippingFee       decimal.Decimal `json:"shipping_fee" binding:"decimal_gte0"`

	Lines []JournalLineRequest `json:"lines" binding:"omitempty,dive"`
}

// ToTemplate builds the typed template input for kind.
func (r TemplateRequest) ToTemplate(kind domain.TemplateKind) (domain.Template, error) {
	switch kind {
	case domain.TemplateDownPayment:
		return domain.DownPayment{
			CashAccountID:     r.CashAccountID,
			DownPaymentAmount: r.DownPaymentAmount,
			ReceivableAmount:  r.ReceivableAmount,
			CostOfGoods:       r.CostOfGoods,
			AdminFee:          r.AdminFee,
		}, nil
	case domain.TemplateFullPayment:
		return domain.FullPayment{
			CashAccountID:   r.CashAccountID,
			TotalSaleAmount: r.TotalSaleAmount,
			CostOfGoods:     r.CostOfGoods,
			AdminFee:        r.AdminFee,
		}, nil
	case domain.TemplateReceivableSettlement:
		return domain.ReceivableSettlement{
			CashAccountID:    r.CashAccountID,
			SettlementAmount: r.SettlementAmount,
			ShippingFee:      r.ShippingFee,
			AdminFee:         r.AdminFee,
		}, nil
	case domain.TemplateManual:
		lines := make([]domain.ManualLine, len(r.Lines))
		for i, l := range r.Lines {
			lines[i] = domain.ManualLine{AccountID: l.AccountID, Debit: l.Debit, Credit: l.Credit}
		}
		return domain.Manual{Lines: lines}, nil
	}
	return nil, fmt.Errorf("%w: unknown journal template %q", apperrors.ErrValidation, kind)
}
