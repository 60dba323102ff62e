package accounting

import (
	"github.com/SscSPs/fin_automation_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// RoleLookup resolves a template role to the account bound to it.
// *domain.Chart satisfies it.
type RoleLookup interface {
	Role(role domain.AccountRole) (domain.Account, bool)
}

// GenerateJournal derives the journal lines for a business event.
//
// An empty result means the inputs cannot produce a journal: a required amount is
// missing or non-positive, an optional amount is negative, the cash account is not
// given, or the chart lacks an account a template needs. Callers must treat it as
// a validation failure.
//
// Lines come out in a fixed order: the primary movement, then cost of goods,
// then the admin fee.
func GenerateJournal(tpl domain.Template, chart RoleLookup) []domain.JournalLine {
	switch t := tpl.(type) {
	case domain.DownPayment:
		return downPaymentLines(t, chart)
	case *domain.DownPayment:
		return downPaymentLines(*t, chart)
	case domain.FullPayment:
		return fullPaymentLines(t, chart)
	case *domain.FullPayment:
		return fullPaymentLines(*t, chart)
	case domain.ReceivableSettlement:
		return settlementLines(t, chart)
	case *domain.ReceivableSettlement:
		return settlementLines(*t, chart)
	case domain.Manual:
		return manualLines(t)
	case *domain.Manual:
		return manualLines(*t)
	}
	return nil
}

func downPaymentLines(in domain.DownPayment, chart RoleLookup) []domain.JournalLine {
	if in.CashAccountID == 0 || !in.DownPaymentAmount.IsPositive() || !in.ReceivableAmount.IsPositive() {
		return nil
	}
	if !optionalOK(in.CostOfGoods, in.AdminFee) {
		return nil
	}
	accs, ok := lookupRoles(chart, domain.RoleReceivable, domain.RoleSales)
	if !ok {
		return nil
	}

	lines := []domain.JournalLine{
		domain.DebitLine(in.CashAccountID, in.DownPaymentAmount),
		domain.DebitLine(accs[domain.RoleReceivable], in.ReceivableAmount),
		domain.CreditLine(accs[domain.RoleSales], in.DownPaymentAmount.Add(in.ReceivableAmount)),
	}
	return appendSaleExtras(lines, in.CostOfGoods, in.AdminFee, chart)
}

func fullPaymentLines(in domain.FullPayment, chart RoleLookup) []domain.JournalLine {
	if in.CashAccountID == 0 || !in.TotalSaleAmount.IsPositive() {
		return nil
	}
	if !optionalOK(in.CostOfGoods, in.AdminFee) {
		return nil
	}
	accs, ok := lookupRoles(chart, domain.RoleSales)
	if !ok {
		return nil
	}

	lines := []domain.JournalLine{
		domain.DebitLine(in.CashAccountID, in.TotalSaleAmount),
		domain.CreditLine(accs[domain.RoleSales], in.TotalSaleAmount),
	}
	return appendSaleExtras(lines, in.CostOfGoods, in.AdminFee, chart)
}

// settlementLines books a receivable collection. When a shipping fee is present
// the payment gateway receives the combined remittance and the shipping line is
// credited against the shipping expense account that financed it.
func settlementLines(in domain.ReceivableSettlement, chart RoleLookup) []domain.JournalLine {
	if in.CashAccountID == 0 || !in.SettlementAmount.IsPositive() {
		return nil
	}
	if !optionalOK(in.ShippingFee, in.AdminFee) {
		return nil
	}
	accs, ok := lookupRoles(chart, domain.RoleReceivable)
	if !ok {
		return nil
	}

	var lines []domain.JournalLine
	if in.ShippingFee.IsPositive() {
		extra, ok := lookupRoles(chart, domain.RolePaymentGateway, domain.RoleShippingExpense)
		if !ok {
			return nil
		}
		lines = []domain.JournalLine{
			domain.DebitLine(extra[domain.RolePaymentGateway], in.SettlementAmount.Add(in.ShippingFee)),
			domain.CreditLine(accs[domain.RoleReceivable], in.SettlementAmount),
			domain.CreditLine(extra[domain.RoleShippingExpense], in.ShippingFee),
		}
	} else {
		lines = []domain.JournalLine{
			domain.DebitLine(in.CashAccountID, in.SettlementAmount),
			domain.CreditLine(accs[domain.RoleReceivable], in.SettlementAmount),
		}
	}

	if in.AdminFee.IsPositive() {
		fee, ok := adminFeeLines(in.AdminFee, chart)
		if !ok {
			return nil
		}
		lines = append(lines, fee...)
	}
	return lines
}

func manualLines(in domain.Manual) []domain.JournalLine {
	if len(in.Lines) == 0 {
		return nil
	}
	lines := make([]domain.JournalLine, 0, len(in.Lines))
	for _, l := range in.Lines {
		if l.AccountID == 0 || l.Debit.IsNegative() || l.Credit.IsNegative() {
			return nil
		}
		if !l.Debit.IsPositive() && !l.Credit.IsPositive() {
			return nil
		}
		lines = append(lines, domain.JournalLine{AccountID: l.AccountID, Debit: l.Debit, Credit: l.Credit})
	}
	return lines
}

// appendSaleExtras adds the cost-of-goods pair and then the admin-fee pair.
func appendSaleExtras(lines []domain.JournalLine, costOfGoods, adminFee decimal.Decimal, chart RoleLookup) []domain.JournalLine {
	if costOfGoods.IsPositive() {
		accs, ok := lookupRoles(chart, domain.RoleCostOfGoods, domain.RolePayable)
		if !ok {
			return nil
		}
		lines = append(lines,
			domain.DebitLine(accs[domain.RoleCostOfGoods], costOfGoods),
			domain.CreditLine(accs[domain.RolePayable], costOfGoods),
		)
	}
	if adminFee.IsPositive() {
		fee, ok := adminFeeLines(adminFee, chart)
		if !ok {
			return nil
		}
		lines = append(lines, fee...)
	}
	return lines
}

func adminFeeLines(adminFee decimal.Decimal, chart RoleLookup) ([]domain.JournalLine, bool) {
	accs, ok := lookupRoles(chart, domain.RoleOtherExpense, domain.RolePaymentGateway)
	if !ok {
		return nil, false
	}
	return []domain.JournalLine{
		domain.DebitLine(accs[domain.RoleOtherExpense], adminFee),
		domain.CreditLine(accs[domain.RolePaymentGateway], adminFee),
	}, true
}

func lookupRoles(chart RoleLookup, roles ...domain.AccountRole) (map[domain.AccountRole]int64, bool) {
	if chart == nil {
		return nil, false
	}
	ids := make(map[domain.AccountRole]int64, len(roles))
	for _, role := range roles {
		acc, ok := chart.Role(role)
		if !ok || acc.AccountID == 0 {
			return nil, false
		}
		ids[role] = acc.AccountID
	}
	return ids, true
}

// optionalOK rejects negative optional amounts; zero means "not given".
func optionalOK(amounts ...decimal.Decimal) bool {
	for _, a := range amounts {
		if a.IsNegative() {
			return false
		}
	}
	return true
}
