package accounting

import (
	"sort"
	"time"

	"github.com/SscSPs/fin_automation_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// AccountLookup resolves an account id. *domain.Chart satisfies it.
type AccountLookup interface {
	ByID(id int64) (domain.Account, bool)
}

type movement struct {
	debit  decimal.Decimal
	credit decimal.Decimal
}

// sumByAccount totals the lines of transactions dated within [from, to].
// A zero from is open.
func sumByAccount(txns []domain.Transaction, from, to time.Time) map[int64]*movement {
	sums := make(map[int64]*movement)
	for _, txn := range txns {
		date := domain.TruncateDate(txn.Date)
		if (!from.IsZero() && date.Before(from)) || date.After(to) {
			continue
		}
		for _, line := range txn.Lines {
			m, ok := sums[line.AccountID]
			if !ok {
				m = &movement{debit: decimal.Zero, credit: decimal.Zero}
				sums[line.AccountID] = m
			}
			m.debit = m.debit.Add(line.Debit)
			m.credit = m.credit.Add(line.Credit)
		}
	}
	return sums
}

// resolve returns the account for id, falling back to the code and name joined
// onto the lines when the chart does not know it.
func resolve(chart AccountLookup, id int64, txns []domain.Transaction) domain.Account {
	if chart != nil {
		if acc, ok := chart.ByID(id); ok {
			return acc
		}
	}
	for _, txn := range txns {
		for _, line := range txn.Lines {
			if line.AccountID == id {
				return domain.Account{AccountID: id, Code: line.AccountCode, Name: line.AccountName}
			}
		}
	}
	return domain.Account{AccountID: id}
}

// BuildTrialBalance nets every account over the transactions dated on or before
// asOf. Accounts that net to zero are left out. Rows are ordered by code.
func BuildTrialBalance(txns []domain.Transaction, chart AccountLookup, asOf time.Time) domain.TrialBalance {
	asOf = domain.TruncateDate(asOf)
	tb := domain.TrialBalance{
		AsOf:        asOf,
		Rows:        []domain.TrialBalanceRow{},
		TotalDebit:  decimal.Zero,
		TotalCredit: decimal.Zero,
	}

	for id, m := range sumByAccount(txns, time.Time{}, asOf) {
		net := m.debit.Sub(m.credit)
		if net.IsZero() {
			continue
		}
		row := domain.TrialBalanceRow{Account: resolve(chart, id, txns), Debit: decimal.Zero, Credit: decimal.Zero}
		if net.IsPositive() {
			row.Debit = net
		} else {
			row.Credit = net.Neg()
		}
		tb.Rows = append(tb.Rows, row)
		tb.TotalDebit = tb.TotalDebit.Add(row.Debit)
		tb.TotalCredit = tb.TotalCredit.Add(row.Credit)
	}

	sort.Slice(tb.Rows, func(i, j int) bool { return tb.Rows[i].Account.Code < tb.Rows[j].Account.Code })
	return tb
}

// BuildProfitAndLoss totals the income statement accounts over [from, to].
// Credit-normal accounts count as revenue and debit-normal accounts as expenses,
// each measured on its normal side.
func BuildProfitAndLoss(txns []domain.Transaction, chart AccountLookup, from, to time.Time) domain.PAndLReport {
	from, to = domain.TruncateDate(from), domain.TruncateDate(to)
	report := domain.PAndLReport{
		From:          from,
		To:            to,
		Revenue:       []domain.AccountAmount{},
		Expenses:      []domain.AccountAmount{},
		TotalRevenue:  decimal.Zero,
		TotalExpenses: decimal.Zero,
	}

	for id, m := range sumByAccount(txns, from, to) {
		acc := resolve(chart, id, txns)
		if acc.Group != domain.IncomeStatement {
			continue
		}
		if acc.NormalBalance == domain.NormalCredit {
			amount := m.credit.Sub(m.debit)
			if !amount.IsZero() {
				report.Revenue = append(report.Revenue, domain.AccountAmount{Account: acc, Amount: amount})
				report.TotalRevenue = report.TotalRevenue.Add(amount)
			}
			continue
		}
		amount := m.debit.Sub(m.credit)
		if !amount.IsZero() {
			report.Expenses = append(report.Expenses, domain.AccountAmount{Account: acc, Amount: amount})
			report.TotalExpenses = report.TotalExpenses.Add(amount)
		}
	}

	byCode := func(list []domain.AccountAmount) func(i, j int) bool {
		return func(i, j int) bool { return list[i].Account.Code < list[j].Account.Code }
	}
	sort.Slice(report.Revenue, byCode(report.Revenue))
	sort.Slice(report.Expenses, byCode(report.Expenses))
	report.NetProfit = report.TotalRevenue.Sub(report.TotalExpenses)
	return report
}
