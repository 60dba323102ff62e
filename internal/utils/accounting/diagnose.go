package accounting

import (
	"fmt"

	"github.com/SscSPs/fin_automation_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// DiagnoseTemplate names the first condition that makes GenerateJournal return an
// empty result for tpl, in the order the generator checks them. It returns "" when
// the inputs can produce a journal.
func DiagnoseTemplate(tpl domain.Template, chart RoleLookup) string {
	switch t := tpl.(type) {
	case domain.DownPayment:
		return diagnoseDownPayment(t, chart)
	case *domain.DownPayment:
		return diagnoseDownPayment(*t, chart)
	case domain.FullPayment:
		return diagnoseFullPayment(t, chart)
	case *domain.FullPayment:
		return diagnoseFullPayment(*t, chart)
	case domain.ReceivableSettlement:
		return diagnoseSettlement(t, chart)
	case *domain.ReceivableSettlement:
		return diagnoseSettlement(*t, chart)
	case domain.Manual:
		return diagnoseManual(t)
	case *domain.Manual:
		return diagnoseManual(*t)
	}
	return "unsupported template"
}

func diagnoseDownPayment(in domain.DownPayment, chart RoleLookup) string {
	if msg := firstOf(
		requireCash(in.CashAccountID),
		requirePositive("down_payment_amount", in.DownPaymentAmount),
		requirePositive("receivable_amount", in.ReceivableAmount),
		rejectNegative("cost_of_goods", in.CostOfGoods),
		rejectNegative("admin_fee", in.AdminFee),
		requireRoles(chart, domain.RoleReceivable, domain.RoleSales),
	); msg != "" {
		return msg
	}
	return diagnoseSaleExtras(in.CostOfGoods, in.AdminFee, chart)
}

func diagnoseFullPayment(in domain.FullPayment, chart RoleLookup) string {
	if msg := firstOf(
		requireCash(in.CashAccountID),
		requirePositive("total_sale_amount", in.TotalSaleAmount),
		rejectNegative("cost_of_goods", in.CostOfGoods),
		rejectNegative("admin_fee", in.AdminFee),
		requireRoles(chart, domain.RoleSales),
	); msg != "" {
		return msg
	}
	return diagnoseSaleExtras(in.CostOfGoods, in.AdminFee, chart)
}

func diagnoseSettlement(in domain.ReceivableSettlement, chart RoleLookup) string {
	if msg := firstOf(
		requireCash(in.CashAccountID),
		requirePositive("settlement_amount", in.SettlementAmount),
		rejectNegative("shipping_fee", in.ShippingFee),
		rejectNegative("admin_fee", in.AdminFee),
		requireRoles(chart, domain.RoleReceivable),
	); msg != "" {
		return msg
	}
	if in.ShippingFee.IsPositive() {
		if msg := requireRoles(chart, domain.RolePaymentGateway, domain.RoleShippingExpense); msg != "" {
			return msg
		}
	}
	if in.AdminFee.IsPositive() {
		return requireRoles(chart, domain.RoleOtherExpense, domain.RolePaymentGateway)
	}
	return ""
}

func diagnoseManual(in domain.Manual) string {
	if len(in.Lines) == 0 {
		return "at least one line is required"
	}
	for i, l := range in.Lines {
		switch {
		case l.AccountID == 0:
			return fmt.Sprintf("line %d: account_id is required", i+1)
		case l.Debit.IsNegative() || l.Credit.IsNegative():
			return fmt.Sprintf("line %d: debit and credit must not be negative", i+1)
		case !l.Debit.IsPositive() && !l.Credit.IsPositive():
			return fmt.Sprintf("line %d: needs a positive debit or credit", i+1)
		}
	}
	return ""
}

func diagnoseSaleExtras(costOfGoods, adminFee decimal.Decimal, chart RoleLookup) string {
	if costOfGoods.IsPositive() {
		if msg := requireRoles(chart, domain.RoleCostOfGoods, domain.RolePayable); msg != "" {
			return msg
		}
	}
	if adminFee.IsPositive() {
		return requireRoles(chart, domain.RoleOtherExpense, domain.RolePaymentGateway)
	}
	return ""
}

func firstOf(msgs ...string) string {
	for _, m := range msgs {
		if m != "" {
			return m
		}
	}
	return ""
}

func requireCash(id int64) string {
	if id == 0 {
		return "cash_account_id is required"
	}
	return ""
}

func requirePositive(field string, v decimal.Decimal) string {
	if !v.IsPositive() {
		return field + " must be greater than zero"
	}
	return ""
}

func rejectNegative(field string, v decimal.Decimal) string {
	if v.IsNegative() {
		return field + " must not be negative"
	}
	return ""
}

func requireRoles(chart RoleLookup, roles ...domain.AccountRole) string {
	if chart == nil {
		return "chart of accounts is not loaded"
	}
	for _, role := range roles {
		if acc, ok := chart.Role(role); !ok || acc.AccountID == 0 {
			return fmt.Sprintf("chart has no account bound to role %s", role)
		}
	}
	return ""
}
