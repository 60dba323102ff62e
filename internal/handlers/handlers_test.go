package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/SscSPs/fin_automation_app/internal/apperrors"
	"github.com/SscSPs/fin_automation_app/internal/core/domain"
	portssvc "github.com/SscSPs/fin_automation_app/internal/core/ports/services"
	"github.com/SscSPs/fin_automation_app/internal/dto"
	"github.com/SscSPs/fin_automation_app/internal/handlers"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Test Suite ---
type HandlersTestSuite struct {
	suite.Suite
	router             *gin.Engine
	mockAccountService *MockAccountService
	mockJournalService *MockJournalService
	mockExpenseService *MockExpenseService
	mockReportingSvc   *MockReportingService
}

func (suite *HandlersTestSuite) SetupSuite() {
	gin.SetMode(gin.TestMode)
	suite.Require().NoError(handlers.RegisterValidators())
}

func (suite *HandlersTestSuite) SetupTest() {
	suite.router = gin.New()
	suite.mockAccountService = new(MockAccountService)
	suite.mockJournalService = new(MockJournalService)
	suite.mockExpenseService = new(MockExpenseService)
	suite.mockReportingSvc = new(MockReportingService)

	handlers.RegisterRoutes(suite.router, &portssvc.ServiceContainer{
		Account:   suite.mockAccountService,
		Journal:   suite.mockJournalService,
		Expense:   suite.mockExpenseService,
		Reporting: suite.mockReportingSvc,
	})
}

func (suite *HandlersTestSuite) TearDownTest() {
	suite.mockAccountService.AssertExpectations(suite.T())
	suite.mockJournalService.AssertExpectations(suite.T())
	suite.mockExpenseService.AssertExpectations(suite.T())
	suite.mockReportingSvc.AssertExpectations(suite.T())
}

func TestHandlersTestSuite(t *testing.T) {
	suite.Run(t, new(HandlersTestSuite))
}

func (suite *HandlersTestSuite) do(method, url string, body any) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		suite.Require().NoError(err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req, _ := http.NewRequest(method, url, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *HandlersTestSuite) decode(w *httptest.ResponseRecorder, v any) {
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), v), w.Body.String())
}

func dec(v int64) decimal.Decimal { return decimal.NewFromInt(v) }

func sameDate(want string) any {
	return mock.MatchedBy(func(got time.Time) bool {
		return got.Format(domain.DateLayout) == want
	})
}

func postedTransaction() *domain.Transaction {
	return &domain.Transaction{
		TransactionID: 7,
		Date:          time.Date(2025, 3, 4, 0, 0, 0, 0, time.UTC),
		Description:   "Penjualan tunai",
		CreatedAt:     time.Date(2025, 3, 4, 10, 30, 0, 0, time.UTC),
		Lines: []domain.JournalLine{
			{LineID: 1, AccountID: 1, AccountCode: "111", AccountName: "Kas", Debit: dec(100000), Credit: decimal.Zero},
			{LineID: 2, AccountID: 16, AccountCode: "411", AccountName: "Penjualan", Debit: decimal.Zero, Credit: dec(100000)},
		},
	}
}

// --- Test Cases ---

func (suite *HandlersTestSuite) TestHealth() {
	w := suite.do(http.MethodGet, "/health", nil)
	suite.Equal(http.StatusOK, w.Code)
	suite.Equal("OK", w.Body.String())
}

func (suite *HandlersTestSuite) TestListAccounts_Success() {
	suite.mockAccountService.On("ListAccounts", mock.Anything).Return([]domain.Account{
		{AccountID: 1, Code: "111", Name: "Kas", NormalBalance: domain.NormalDebit, Group: domain.BalanceSheet},
		{AccountID: 16, Code: "411", Name: "Penjualan", NormalBalance: domain.NormalCredit, Group: domain.IncomeStatement},
	}, nil).Once()

	w := suite.do(http.MethodGet, "/api/accounts", nil)

	suite.Equal(http.StatusOK, w.Code)
	var body []dto.AccountResponse
	suite.decode(w, &body)
	suite.Require().Len(body, 2)
	suite.Equal("111", body[0].Code)
	suite.Equal("[111] Kas (DEBIT – BALANCE_SHEET)", body[0].Label)
	suite.Equal(domain.NormalCredit, body[1].NormalBalance)
}

func (suite *HandlersTestSuite) TestListAccounts_StorageFailure() {
	suite.mockAccountService.On("ListAccounts", mock.Anything).
		Return(nil, apperrors.NewAppError(500, "failed to list accounts", fmt.Errorf("disk gone"))).Once()

	w := suite.do(http.MethodGet, "/api/accounts", nil)

	suite.Equal(http.StatusInternalServerError, w.Code)
	suite.NotContains(w.Body.String(), "disk gone")
}

func (suite *HandlersTestSuite) TestGetAccount() {
	suite.mockAccountService.On("GetAccountByID", mock.Anything, int64(1)).
		Return(&domain.Account{AccountID: 1, Code: "111", Name: "Kas"}, nil).Once()
	suite.mockAccountService.On("GetAccountByID", mock.Anything, int64(99)).
		Return(nil, apperrors.ErrNotFound).Once()

	suite.Equal(http.StatusOK, suite.do(http.MethodGet, "/api/accounts/1", nil).Code)
	suite.Equal(http.StatusNotFound, suite.do(http.MethodGet, "/api/accounts/99", nil).Code)
	suite.Equal(http.StatusBadRequest, suite.do(http.MethodGet, "/api/accounts/abc", nil).Code)
}

func (suite *HandlersTestSuite) TestCreateTransaction_Success() {
	suite.mockJournalService.On("PostTransaction", mock.Anything, sameDate("2025-03-04"), "Penjualan tunai",
		mock.MatchedBy(func(lines []domain.JournalLine) bool {
			return len(lines) == 2 &&
				lines[0].AccountID == 1 && lines[0].Debit.Equal(dec(100000)) && lines[0].Credit.IsZero() &&
				lines[1].AccountID == 16 && lines[1].Credit.Equal(dec(100000))
		}),
	).Return(postedTransaction(), nil).Once()

	w := suite.do(http.MethodPost, "/api/transactions", gin.H{
		"date":        "2025-03-04",
		"description": "Penjualan tunai",
		"lines": []gin.H{
			{"account_id": 1, "debit": 100000},
			{"account_id": 16, "credit": "100000"},
		},
	})

	suite.Equal(http.StatusCreated, w.Code, w.Body.String())
	var body map[string]any
	suite.decode(w, &body)
	suite.Equal(float64(7), body["id"])
	suite.Equal("2025-03-04", body["date"])
	suite.Equal("100000", body["totalDebit"])
	suite.Equal("100000", body["totalCredit"])
	lines := body["lines"].([]any)
	suite.Require().Len(lines, 2)
	suite.Equal("Kas", lines[0].(map[string]any)["accountName"])
}

func (suite *HandlersTestSuite) TestCreateTransaction_InvalidRequests() {
	tests := []struct {
		name string
		body gin.H
	}{
		{name: "missing date", body: gin.H{"description": "x", "lines": []gin.H{{"account_id": 1, "debit": 1}}}},
		{name: "bad date", body: gin.H{"date": "04/03/2025", "description": "x", "lines": []gin.H{{"account_id": 1, "debit": 1}}}},
		{name: "missing description", body: gin.H{"date": "2025-03-04", "lines": []gin.H{{"account_id": 1, "debit": 1}}}},
		{name: "no lines", body: gin.H{"date": "2025-03-04", "description": "x", "lines": []gin.H{}}},
		{name: "negative debit", body: gin.H{"date": "2025-03-04", "description": "x", "lines": []gin.H{{"account_id": 1, "debit": -5}}}},
		{name: "missing account", body: gin.H{"date": "2025-03-04", "description": "x", "lines": []gin.H{{"debit": 5}}}},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			w := suite.do(http.MethodPost, "/api/transactions", tt.body)
			suite.Equal(http.StatusBadRequest, w.Code, w.Body.String())
			suite.Contains(w.Body.String(), "Invalid request format")
		})
	}
	suite.mockJournalService.AssertNotCalled(suite.T(), "PostTransaction")
}

func (suite *HandlersTestSuite) TestCreateTransaction_NotBalanced() {
	suite.mockJournalService.On("PostTransaction", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(nil, &domain.ImbalanceError{TotalDebit: dec(100000), TotalCredit: dec(99998)}).Once()

	w := suite.do(http.MethodPost, "/api/transactions", gin.H{
		"date":        "2025-03-04",
		"description": "Selisih",
		"lines": []gin.H{
			{"account_id": 1, "debit": 100000},
			{"account_id": 16, "credit": 99998},
		},
	})

	suite.Equal(http.StatusBadRequest, w.Code)
	var body map[string]any
	suite.decode(w, &body)
	suite.Equal("Journal not balanced", body["error"])
	suite.Equal("100000", body["totalDebit"])
	suite.Equal("99998", body["totalCredit"])
}

func (suite *HandlersTestSuite) TestCreateTransaction_UnknownAccount() {
	suite.mockJournalService.On("PostTransaction", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(nil, &domain.UnknownAccountError{AccountID: 999, LineIndex: 1}).Once()

	w := suite.do(http.MethodPost, "/api/transactions", gin.H{
		"date":        "2025-03-04",
		"description": "Salah akun",
		"lines": []gin.H{
			{"account_id": 1, "debit": 10},
			{"account_id": 999, "credit": 10},
		},
	})

	suite.Equal(http.StatusBadRequest, w.Code)
	var body map[string]any
	suite.decode(w, &body)
	suite.Equal(float64(999), body["accountID"])
	suite.Equal(float64(2), body["line"])
}

func (suite *HandlersTestSuite) TestListTransactions() {
	next := "abc"
	suite.mockJournalService.On("ListTransactions", mock.Anything,
		mock.MatchedBy(func(p dto.ListTransactionsParams) bool {
			return p.Limit == 2 && p.NextToken != nil && *p.NextToken == "tok"
		}),
	).Return(&dto.ListTransactionsResponse{
		Transactions: []dto.TransactionResponse{dto.ToTransactionResponse(postedTransaction())},
		NextToken:    &next,
	}, nil).Once()

	w := suite.do(http.MethodGet, "/api/transactions?limit=2&nextToken=tok", nil)

	suite.Equal(http.StatusOK, w.Code)
	var body dto.ListTransactionsResponse
	suite.decode(w, &body)
	suite.Len(body.Transactions, 1)
	suite.Require().NotNil(body.NextToken)
	suite.Equal("abc", *body.NextToken)

	suite.Equal(http.StatusBadRequest, suite.do(http.MethodGet, "/api/transactions?limit=0", nil).Code)
	suite.Equal(http.StatusBadRequest, suite.do(http.MethodGet, "/api/transactions?limit=501", nil).Code)
}

func (suite *HandlersTestSuite) TestGetTransaction() {
	suite.mockJournalService.On("GetTransaction", mock.Anything, int64(7)).Return(postedTransaction(), nil).Once()
	suite.mockJournalService.On("GetTransaction", mock.Anything, int64(8)).Return(nil, apperrors.ErrNotFound).Once()

	suite.Equal(http.StatusOK, suite.do(http.MethodGet, "/api/transactions/7", nil).Code)
	suite.Equal(http.StatusNotFound, suite.do(http.MethodGet, "/api/transactions/8", nil).Code)
	suite.Equal(http.StatusBadRequest, suite.do(http.MethodGet, "/api/transactions/-1", nil).Code)
}

func (suite *HandlersTestSuite) TestPostTemplate_DownPayment() {
	suite.mockJournalService.On("PostTemplate", mock.Anything, sameDate("2025-03-04"), "DP pesanan",
		mock.MatchedBy(func(tpl domain.Template) bool {
			dp, ok := tpl.(domain.DownPayment)
			return ok && dp.CashAccountID == 1 &&
				dp.DownPaymentAmount.Equal(dec(500000)) &&
				dp.ReceivableAmount.Equal(dec(1000000)) &&
				dp.AdminFee.Equal(dec(20000)) &&
				dp.CostOfGoods.IsZero()
		}),
	).Return(postedTransaction(), nil).Once()

	w := suite.do(http.MethodPost, "/api/transactions/templates/down-payment", gin.H{
		"date":                "2025-03-04",
		"description":         "DP pesanan",
		"cash_account_id":     1,
		"down_payment_amount": 500000,
		"receivable_amount":   1000000,
		"admin_fee":           20000,
	})

	suite.Equal(http.StatusCreated, w.Code, w.Body.String())
}

func (suite *HandlersTestSuite) TestPostTemplate_Rejections() {
	w := suite.do(http.MethodPost, "/api/transactions/templates/refund", gin.H{"date": "2025-03-04", "description": "x"})
	suite.Equal(http.StatusNotFound, w.Code)

	w = suite.do(http.MethodPost, "/api/transactions/templates/full-payment", gin.H{"cash_account_id": 1, "total_sale_amount": 10})
	suite.Equal(http.StatusBadRequest, w.Code)

	w = suite.do(http.MethodPost, "/api/transactions/templates/full-payment", gin.H{
		"date": "2025-03-04", "description": "x", "cash_account_id": 1, "total_sale_amount": 10, "admin_fee": -1,
	})
	suite.Equal(http.StatusBadRequest, w.Code)

	suite.mockJournalService.On("PostTemplate", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(nil, fmt.Errorf("%w: template inputs cannot produce a journal", apperrors.ErrValidation)).Once()
	w = suite.do(http.MethodPost, "/api/transactions/templates/full-payment", gin.H{
		"date": "2025-03-04", "description": "x", "cash_account_id": 1,
	})
	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *HandlersTestSuite) TestPreviewTemplate() {
	suite.mockJournalService.On("PreviewTemplate", mock.Anything,
		mock.MatchedBy(func(tpl domain.Template) bool {
			st, ok := tpl.(domain.ReceivableSettlement)
			return ok && st.SettlementAmount.Equal(dec(1000000)) && st.ShippingFee.Equal(dec(15000))
		}),
	).Return(&domain.JournalPreview{
		Lines: []domain.JournalLine{
			{AccountID: 2, AccountCode: "112", AccountName: "Midtrans", Debit: dec(1015000)},
			{AccountID: 4, AccountCode: "114", AccountName: "Piutang Usaha", Credit: dec(1000000)},
			{AccountID: 30, AccountCode: "611", AccountName: "Beban Ongkir", Credit: dec(15000)},
		},
		TotalDebit:  dec(1015000),
		TotalCredit: dec(1015000),
		Balanced:    true,
	}, nil).Once()

	w := suite.do(http.MethodPost, "/api/journal/preview/receivable-settlement", gin.H{
		"cash_account_id":   1,
		"settlement_amount": 1000000,
		"shipping_fee":      15000,
	})

	suite.Equal(http.StatusOK, w.Code, w.Body.String())
	var body map[string]any
	suite.decode(w, &body)
	suite.Equal("RECEIVABLE_SETTLEMENT", body["template"])
	suite.Equal(true, body["balanced"])
	suite.Len(body["lines"], 3)
}

func (suite *HandlersTestSuite) TestCreateExpense() {
	suite.mockExpenseService.On("CreateExpense", mock.Anything, sameDate("2025-03-01"), domain.ExpenseService, "Jasa desain",
		mock.MatchedBy(func(a decimal.Decimal) bool { return a.Equal(dec(150000)) }),
	).Return(&domain.Expense{
		ExpenseID:   3,
		Date:        time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
		Category:    domain.ExpenseService,
		Description: "Jasa desain",
		Amount:      dec(150000),
	}, nil).Once()

	w := suite.do(http.MethodPost, "/api/expenses", gin.H{
		"date":        "2025-03-01",
		"category":    "jasa",
		"description": "Jasa desain",
		"amount":      150000,
	})
	suite.Equal(http.StatusCreated, w.Code, w.Body.String())

	var body dto.ExpenseResponse
	suite.decode(w, &body)
	suite.Equal(int64(3), body.ExpenseID)
	suite.Equal(domain.ExpenseService, body.Category)
}

func (suite *HandlersTestSuite) TestCreateExpense_Invalid() {
	for name, body := range map[string]gin.H{
		"bad category": {"date": "2025-03-01", "category": "travel", "description": "x", "amount": 10},
		"zero amount":  {"date": "2025-03-01", "category": "GOODS", "description": "x", "amount": 0},
		"no date":      {"category": "GOODS", "description": "x", "amount": 10},
	} {
		suite.Run(name, func() {
			suite.Equal(http.StatusBadRequest, suite.do(http.MethodPost, "/api/expenses", body).Code)
		})
	}
	suite.mockExpenseService.AssertNotCalled(suite.T(), "CreateExpense")
}

func (suite *HandlersTestSuite) TestListExpenses_FilterNeedsBothBounds() {
	suite.mockExpenseService.On("ListExpenses", mock.Anything, domain.ExpenseFilter{}).Return([]domain.Expense{}, nil).Twice()
	suite.mockExpenseService.On("ListExpenses", mock.Anything,
		mock.MatchedBy(func(f domain.ExpenseFilter) bool {
			return f.StartDate != nil && f.EndDate != nil &&
				f.StartDate.Format(domain.DateLayout) == "2025-03-01" &&
				f.EndDate.Format(domain.DateLayout) == "2025-03-31"
		}),
	).Return([]domain.Expense{}, nil).Once()

	suite.Equal(http.StatusOK, suite.do(http.MethodGet, "/api/expenses", nil).Code)
	suite.Equal(http.StatusOK, suite.do(http.MethodGet, "/api/expenses?startDate=2025-03-01", nil).Code)
	w := suite.do(http.MethodGet, "/api/expenses?startDate=2025-03-01&endDate=2025-03-31", nil)
	suite.Equal(http.StatusOK, w.Code)
	suite.JSONEq("[]", w.Body.String())

	suite.Equal(http.StatusBadRequest, suite.do(http.MethodGet, "/api/expenses?startDate=March", nil).Code)
}

func (suite *HandlersTestSuite) TestSummarizeExpenses() {
	suite.mockExpenseService.On("SummarizeExpenses", mock.Anything, domain.ExpenseFilter{}).Return(&domain.ExpenseSummary{
		Count: 2,
		Total: dec(170000),
		ByCategory: map[domain.ExpenseCategory]decimal.Decimal{
			domain.ExpenseService: dec(150000),
			domain.ExpenseGoods:   dec(20000),
		},
	}, nil).Once()

	w := suite.do(http.MethodGet, "/api/expenses/summary", nil)

	suite.Equal(http.StatusOK, w.Code)
	var body map[string]any
	suite.decode(w, &body)
	suite.Equal(float64(2), body["count"])
	suite.Equal("170000", body["total"])
	suite.NotEmpty(body["totalFormatted"])
}

func (suite *HandlersTestSuite) TestDeleteExpense() {
	suite.mockExpenseService.On("DeleteExpense", mock.Anything, int64(3)).Return(nil).Once()
	suite.mockExpenseService.On("DeleteExpense", mock.Anything, int64(4)).Return(apperrors.ErrNotFound).Once()

	suite.Equal(http.StatusNoContent, suite.do(http.MethodDelete, "/api/expenses/3", nil).Code)
	suite.Equal(http.StatusNotFound, suite.do(http.MethodDelete, "/api/expenses/4", nil).Code)
	suite.Equal(http.StatusBadRequest, suite.do(http.MethodDelete, "/api/expenses/x", nil).Code)
}

func (suite *HandlersTestSuite) TestTrialBalance() {
	asOf := time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC)
	suite.mockReportingSvc.On("TrialBalance", mock.Anything, sameDate("2025-03-31")).Return(&domain.TrialBalance{
		AsOf: asOf,
		Rows: []domain.TrialBalanceRow{
			{Account: domain.Account{AccountID: 1, Code: "111", Name: "Kas"}, Debit: dec(100000), Credit: decimal.Zero},
			{Account: domain.Account{AccountID: 16, Code: "411", Name: "Penjualan"}, Debit: decimal.Zero, Credit: dec(100000)},
		},
		TotalDebit:  dec(100000),
		TotalCredit: dec(100000),
	}, nil).Once()

	w := suite.do(http.MethodGet, "/api/reports/trial-balance?asOf=2025-03-31", nil)

	suite.Equal(http.StatusOK, w.Code, w.Body.String())
	var body dto.TrialBalanceResponse
	suite.decode(w, &body)
	suite.Equal("2025-03-31", body.AsOf)
	suite.Require().Len(body.Rows, 2)
	suite.Equal("411", body.Rows[1].AccountCode)
	suite.True(body.Totals.Debit.Equal(dec(100000)))

	suite.Equal(http.StatusBadRequest, suite.do(http.MethodGet, "/api/reports/trial-balance?asOf=yesterday", nil).Code)
}

func (suite *HandlersTestSuite) TestProfitAndLoss() {
	suite.mockReportingSvc.On("ProfitAndLoss", mock.Anything, sameDate("2025-03-01"), sameDate("2025-03-31")).Return(&domain.PAndLReport{
		From:          time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
		To:            time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC),
		Revenue:       []domain.AccountAmount{{Account: domain.Account{AccountID: 16, Code: "411", Name: "Penjualan"}, Amount: dec(100000)}},
		Expenses:      []domain.AccountAmount{},
		TotalRevenue:  dec(100000),
		TotalExpenses: decimal.Zero,
		NetProfit:     dec(100000),
	}, nil).Once()

	w := suite.do(http.MethodGet, "/api/reports/profit-and-loss?from=2025-03-01&to=2025-03-31", nil)

	suite.Equal(http.StatusOK, w.Code, w.Body.String())
	var body dto.ProfitAndLossResponse
	suite.decode(w, &body)
	suite.Require().Len(body.Revenue, 1)
	suite.NotEmpty(body.Revenue[0].AmountFormatted)
	suite.True(body.Summary.NetProfit.Equal(dec(100000)))

	suite.Equal(http.StatusBadRequest, suite.do(http.MethodGet, "/api/reports/profit-and-loss?from=2025-03-01", nil).Code)
}

func TestRegisterRoutes_WriteMiddlewareGuardsWrites(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	accounts := new(MockAccountService)
	accounts.On("ListAccounts", mock.Anything).Return([]domain.Account{}, nil)

	blocked := func(c *gin.Context) { c.AbortWithStatus(http.StatusTooManyRequests) }
	handlers.RegisterRoutes(r, &portssvc.ServiceContainer{
		Account:   accounts,
		Journal:   new(MockJournalService),
		Expense:   new(MockExpenseService),
		Reporting: new(MockReportingService),
	}, blocked)

	for _, tc := range []struct {
		method, path string
		want         int
	}{
		{http.MethodGet, "/api/accounts", http.StatusOK},
		{http.MethodPost, "/api/transactions", http.StatusTooManyRequests},
		{http.MethodPost, "/api/transactions/templates/manual", http.StatusTooManyRequests},
		{http.MethodPost, "/api/expenses", http.StatusTooManyRequests},
		{http.MethodDelete, "/api/expenses/1", http.StatusTooManyRequests},
	} {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest(tc.method, tc.path, bytes.NewReader([]byte("{}")))
		r.ServeHTTP(w, req)
		if w.Code != tc.want {
			t.Errorf("%s %s: got %d, want %d", tc.method, tc.path, w.Code, tc.want)
		}
	}
}
