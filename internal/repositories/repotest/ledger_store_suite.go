// Package repotest holds the behaviour every Ledger Store backend must share.
// Backend packages run LedgerStoreSuite from their own tests.
package repotest

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/SscSPs/fin_automation_app/internal/apperrors"
	"github.com/SscSPs/fin_automation_app/internal/core/domain"
	portsrepo "github.com/SscSPs/fin_automation_app/internal/core/ports/repositories"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

// LedgerStoreSuite checks a RepositoryProvider against the store contract.
// NewProvider is called before every test and must return an empty store.
// CountLines is optional; backends with a separate line table use it to count
// the stored journal line rows directly.
type LedgerStoreSuite struct {
	suite.Suite
	NewProvider func() (portsrepo.RepositoryProvider, func())
	CountLines  func() (int, error)

	repos   portsrepo.RepositoryProvider
	cleanup func()
}

func (s *LedgerStoreSuite) SetupTest() {
	s.repos, s.cleanup = s.NewProvider()
}

func (s *LedgerStoreSuite) TearDownTest() {
	if s.cleanup != nil {
		s.cleanup()
	}
}

func sampleAccounts() []domain.Account {
	return []domain.Account{
		{Code: "111", Name: "Kas", NormalBalance: domain.NormalDebit, Group: domain.BalanceSheet},
		{Code: "112", Name: "Midtrans", NormalBalance: domain.NormalDebit, Group: domain.BalanceSheet},
		{Code: "114", Name: "Piutang Usaha", NormalBalance: domain.NormalDebit, Group: domain.BalanceSheet},
		{Code: "411", Name: "Penjualan", NormalBalance: domain.NormalCredit, Group: domain.IncomeStatement},
		{Code: "811", Name: "Beban Lain- Lain", NormalBalance: domain.NormalDebit, Group: domain.IncomeStatement},
	}
}

func (s *LedgerStoreSuite) seed() map[string]domain.Account {
	ctx := context.Background()
	_, err := s.repos.AccountRepo.SeedAccounts(ctx, sampleAccounts())
	s.Require().NoError(err)
	accounts, err := s.repos.AccountRepo.ListAccounts(ctx)
	s.Require().NoError(err)
	byCode := make(map[string]domain.Account, len(accounts))
	for _, acc := range accounts {
		byCode[acc.Code] = acc
	}
	return byCode
}

func line(acc domain.Account, debit, credit string) domain.JournalLine {
	return domain.JournalLine{
		AccountID:   acc.AccountID,
		AccountCode: acc.Code,
		AccountName: acc.Name,
		Debit:       decimal.RequireFromString(debit),
		Credit:      decimal.RequireFromString(credit),
	}
}

func (s *LedgerStoreSuite) newTransaction(accs map[string]domain.Account, day int, description string) domain.Transaction {
	return domain.Transaction{
		Date:        time.Date(2025, 3, day, 0, 0, 0, 0, time.UTC),
		Description: description,
		CreatedAt:   time.Date(2025, 3, day, 9, 15, 30, 0, time.UTC),
		Lines: []domain.JournalLine{
			line(accs["111"], "500000", "0"),
			line(accs["114"], "1000000", "0"),
			line(accs["411"], "0", "1500000"),
			line(accs["811"], "20000.50", "0"),
			line(accs["112"], "0", "20000.50"),
		},
	}
}

func (s *LedgerStoreSuite) TestSeedAccounts_OnlyWhenEmpty() {
	ctx := context.Background()
	n, err := s.repos.AccountRepo.SeedAccounts(ctx, sampleAccounts())
	s.Require().NoError(err)
	s.Equal(5, n)

	n, err = s.repos.AccountRepo.SeedAccounts(ctx, sampleAccounts())
	s.Require().NoError(err)
	s.Zero(n)

	accounts, err := s.repos.AccountRepo.ListAccounts(ctx)
	s.Require().NoError(err)
	s.Require().Len(accounts, 5)
	seen := map[int64]bool{}
	for i, acc := range accounts {
		s.Positive(acc.AccountID)
		s.False(seen[acc.AccountID], "duplicate id %d", acc.AccountID)
		seen[acc.AccountID] = true
		if i > 0 {
			s.Less(accounts[i-1].Code, acc.Code)
		}
	}
	s.Equal(domain.NormalCredit, accounts[3].NormalBalance)
	s.Equal(domain.IncomeStatement, accounts[3].Group)
}

func (s *LedgerStoreSuite) TestFindAccountByID() {
	accs := s.seed()
	ctx := context.Background()

	acc, err := s.repos.AccountRepo.FindAccountByID(ctx, accs["114"].AccountID)
	s.Require().NoError(err)
	s.Equal("Piutang Usaha", acc.Name)

	_, err = s.repos.AccountRepo.FindAccountByID(ctx, 9999)
	s.ErrorIs(err, apperrors.ErrNotFound)
}

func (s *LedgerStoreSuite) TestCreateAndFindTransaction() {
	accs := s.seed()
	ctx := context.Background()
	txn := s.newTransaction(accs, 4, "DP pesanan #12")

	id, err := s.repos.JournalRepo.CreateTransaction(ctx, txn)
	s.Require().NoError(err)
	s.Positive(id)

	got, err := s.repos.JournalRepo.FindTransactionByID(ctx, id)
	s.Require().NoError(err)
	s.Equal(id, got.TransactionID)
	s.Equal("DP pesanan #12", got.Description)
	s.True(got.Date.Equal(txn.Date), "date %s", got.Date)
	s.True(got.CreatedAt.Equal(txn.CreatedAt), "createdAt %s", got.CreatedAt)
	s.Require().Len(got.Lines, 5)
	for i, l := range got.Lines {
		s.Equal(txn.Lines[i].AccountID, l.AccountID, "line %d", i)
		s.Equal(txn.Lines[i].AccountCode, l.AccountCode, "line %d", i)
		s.Equal(txn.Lines[i].AccountName, l.AccountName, "line %d", i)
		s.True(txn.Lines[i].Debit.Equal(l.Debit), "line %d debit %s", i, l.Debit)
		s.True(txn.Lines[i].Credit.Equal(l.Credit), "line %d credit %s", i, l.Credit)
	}
	s.True(got.TotalDebit().Equal(decimal.RequireFromString("1520000.50")))

	_, err = s.repos.JournalRepo.FindTransactionByID(ctx, id+100)
	s.ErrorIs(err, apperrors.ErrNotFound)
}

func (s *LedgerStoreSuite) TestListTransactions_NewestFirstWithCursor() {
	accs := s.seed()
	ctx := context.Background()

	var ids []int64
	for day := 1; day <= 4; day++ {
		id, err := s.repos.JournalRepo.CreateTransaction(ctx, s.newTransaction(accs, day, fmt.Sprintf("txn %d", day)))
		s.Require().NoError(err)
		ids = append(ids, id)
	}
	for i := 1; i < len(ids); i++ {
		s.Greater(ids[i], ids[i-1])
	}

	all, err := s.repos.JournalRepo.ListTransactions(ctx, portsrepo.ListTransactionsParams{})
	s.Require().NoError(err)
	s.Require().Len(all, 4)
	s.Equal(ids[3], all[0].TransactionID)
	s.Equal(ids[0], all[3].TransactionID)
	s.Len(all[0].Lines, 5)
	s.Equal("111", all[0].Lines[0].AccountCode)

	page, err := s.repos.JournalRepo.ListTransactions(ctx, portsrepo.ListTransactionsParams{Limit: 2, BeforeID: ids[3]})
	s.Require().NoError(err)
	s.Require().Len(page, 2)
	s.Equal(ids[2], page[0].TransactionID)
	s.Equal(ids[1], page[1].TransactionID)
	s.Len(page[1].Lines, 5)
}

func (s *LedgerStoreSuite) TestListTransactions_Empty() {
	txns, err := s.repos.JournalRepo.ListTransactions(context.Background(), portsrepo.ListTransactionsParams{})
	s.Require().NoError(err)
	s.Empty(txns)
}

func (s *LedgerStoreSuite) TestCreateTransaction_ConcurrentWritersSeeWholeTransactions() {
	accs := s.seed()
	ctx := context.Background()
	const writers = 8

	var wg sync.WaitGroup
	errs := make(chan error, writers)
	for w := 0; w < writers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			_, err := s.repos.JournalRepo.CreateTransaction(ctx, s.newTransaction(accs, w+1, fmt.Sprintf("writer %d", w)))
			errs <- err
		}(w)
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		s.Require().NoError(err)
	}

	txns, err := s.repos.JournalRepo.ListTransactions(ctx, portsrepo.ListTransactionsParams{})
	s.Require().NoError(err)
	s.Require().Len(txns, writers)
	seen := map[int64]bool{}
	for _, txn := range txns {
		s.False(seen[txn.TransactionID])
		seen[txn.TransactionID] = true
		s.Len(txn.Lines, 5)
		s.True(txn.TotalDebit().Equal(txn.TotalCredit()))
	}
}

func (s *LedgerStoreSuite) TestCreateTransaction_FailedLineLeavesNothing() {
	accs := s.seed()
	ctx := context.Background()
	missing := domain.Account{AccountID: 9999, Code: "999", Name: "Tidak Ada"}

	_, err := s.repos.JournalRepo.CreateTransaction(ctx, domain.Transaction{
		Date:        time.Date(2025, 3, 7, 0, 0, 0, 0, time.UTC),
		Description: "line 2 names an unknown account",
		CreatedAt:   time.Date(2025, 3, 7, 10, 0, 0, 0, time.UTC),
		Lines: []domain.JournalLine{
			line(accs["111"], "5", "0"),
			line(missing, "0", "5"),
		},
	})
	s.Require().Error(err)

	txns, err := s.repos.JournalRepo.ListTransactions(ctx, portsrepo.ListTransactionsParams{})
	s.Require().NoError(err)
	s.Empty(txns)

	if s.CountLines != nil {
		n, err := s.CountLines()
		s.Require().NoError(err)
		s.Zero(n)
	}

	// the store still accepts writes
	id, err := s.repos.JournalRepo.CreateTransaction(ctx, s.newTransaction(accs, 8, "after failure"))
	s.Require().NoError(err)
	got, err := s.repos.JournalRepo.FindTransactionByID(ctx, id)
	s.Require().NoError(err)
	s.Len(got.Lines, 5)
}

func (s *LedgerStoreSuite) TestCreateTransaction_CancelledContextLeavesNothing() {
	accs := s.seed()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := s.repos.JournalRepo.CreateTransaction(ctx, s.newTransaction(accs, 9, "cancelled"))
	s.Require().Error(err)

	txns, err := s.repos.JournalRepo.ListTransactions(context.Background(), portsrepo.ListTransactionsParams{})
	s.Require().NoError(err)
	s.Empty(txns)
}

func (s *LedgerStoreSuite) TestExpenses() {
	ctx := context.Background()
	mk := func(day int, category domain.ExpenseCategory, description, amount string) int64 {
		id, err := s.repos.ExpenseRepo.CreateExpense(ctx, domain.Expense{
			Date:        time.Date(2025, 5, day, 0, 0, 0, 0, time.UTC),
			Category:    category,
			Description: description,
			Amount:      decimal.RequireFromString(amount),
			CreatedAt:   time.Date(2025, 5, day, 8, 0, 0, 0, time.UTC),
		})
		s.Require().NoError(err)
		return id
	}
	first := mk(10, domain.ExpenseService, "Jasa desain", "150000")
	second := mk(12, domain.ExpenseGoods, "Kertas", "20000.25")
	third := mk(10, domain.ExpenseGoods, "Tinta", "35000")

	all, err := s.repos.ExpenseRepo.ListExpenses(ctx, domain.ExpenseFilter{})
	s.Require().NoError(err)
	s.Require().Len(all, 3)
	s.Equal(second, all[0].ExpenseID)
	s.Equal(third, all[1].ExpenseID)
	s.Equal(first, all[2].ExpenseID)
	s.Equal(domain.ExpenseGoods, all[0].Category)
	s.True(all[0].Amount.Equal(decimal.RequireFromString("20000.25")))
	s.True(all[0].Date.Equal(time.Date(2025, 5, 12, 0, 0, 0, 0, time.UTC)))

	start := time.Date(2025, 5, 10, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 5, 11, 0, 0, 0, 0, time.UTC)
	inRange, err := s.repos.ExpenseRepo.ListExpenses(ctx, domain.ExpenseFilter{StartDate: &start, EndDate: &end})
	s.Require().NoError(err)
	s.Require().Len(inRange, 2)
	s.Equal(third, inRange[0].ExpenseID)

	s.Require().NoError(s.repos.ExpenseRepo.DeleteExpense(ctx, third))
	s.ErrorIs(s.repos.ExpenseRepo.DeleteExpense(ctx, third), apperrors.ErrNotFound)

	rest, err := s.repos.ExpenseRepo.ListExpenses(ctx, domain.ExpenseFilter{})
	s.Require().NoError(err)
	s.Len(rest, 2)
}
