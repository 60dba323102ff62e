package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/SscSPs/fin_automation_app/internal/apperrors"
	"github.com/SscSPs/fin_automation_app/internal/core/domain"
	portssvc "github.com/SscSPs/fin_automation_app/internal/core/ports/services"
	"github.com/SscSPs/fin_automation_app/internal/core/services"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type AccountServiceTestSuite struct {
	suite.Suite
	mockRepo *MockAccountRepository
	service  portssvc.AccountSvcFacade
	def      domain.ChartDefinition
	stored   []domain.Account
}

func (suite *AccountServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockAccountRepository)
	suite.service = services.NewAccountService(suite.mockRepo)

	suite.def = domain.ChartDefinition{
		Accounts: []domain.Account{
			{Code: "111", Name: "Kas", NormalBalance: domain.NormalDebit, Group: domain.BalanceSheet},
			{Code: "411", Name: "Penjualan", NormalBalance: domain.NormalCredit, Group: domain.IncomeStatement},
		},
		Roles: domain.TemplateRoles{domain.RoleSales: "411"},
	}
	suite.stored = []domain.Account{
		{AccountID: 1, Code: "111", Name: "Kas", NormalBalance: domain.NormalDebit, Group: domain.BalanceSheet},
		{AccountID: 2, Code: "411", Name: "Penjualan", NormalBalance: domain.NormalCredit, Group: domain.IncomeStatement},
	}
}

func TestAccountServiceSuite(t *testing.T) {
	suite.Run(t, new(AccountServiceTestSuite))
}

func (suite *AccountServiceTestSuite) TestChart_BeforeInitialize() {
	_, err := suite.service.Chart(context.Background())
	suite.Require().Error(err)
	suite.ErrorIs(err, services.ErrChartNotInitialized)
}

func (suite *AccountServiceTestSuite) TestInitializeChart_SeedsAndLoads() {
	ctx := context.Background()
	suite.mockRepo.On("SeedAccounts", ctx, suite.def.Accounts).Return(2, nil).Once()
	suite.mockRepo.On("ListAccounts", ctx).Return(suite.stored, nil).Once()

	suite.Require().NoError(suite.service.InitializeChart(ctx, suite.def))

	chart, err := suite.service.Chart(ctx)
	suite.Require().NoError(err)
	suite.Equal(2, chart.Len())
	sales, ok := chart.Role(domain.RoleSales)
	suite.True(ok)
	suite.Equal(int64(2), sales.AccountID)

	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestInitializeChart_AlreadySeeded() {
	ctx := context.Background()
	suite.mockRepo.On("SeedAccounts", ctx, suite.def.Accounts).Return(0, nil).Once()
	suite.mockRepo.On("ListAccounts", ctx).Return(suite.stored, nil).Once()

	suite.NoError(suite.service.InitializeChart(ctx, suite.def))
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestInitializeChart_StoredChartMissesRole() {
	ctx := context.Background()
	suite.mockRepo.On("SeedAccounts", ctx, suite.def.Accounts).Return(0, nil).Once()
	suite.mockRepo.On("ListAccounts", ctx).Return(suite.stored[:1], nil).Once()

	err := suite.service.InitializeChart(ctx, suite.def)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *AccountServiceTestSuite) TestInitializeChart_SeedFails() {
	ctx := context.Background()
	dbErr := errors.New("disk full")
	suite.mockRepo.On("SeedAccounts", ctx, suite.def.Accounts).Return(0, dbErr).Once()

	err := suite.service.InitializeChart(ctx, suite.def)
	suite.ErrorIs(err, dbErr)
	suite.mockRepo.AssertNotCalled(suite.T(), "ListAccounts", mock.Anything)
}

func (suite *AccountServiceTestSuite) TestListAccounts() {
	ctx := context.Background()
	suite.mockRepo.On("ListAccounts", ctx).Return(suite.stored, nil).Once()

	accounts, err := suite.service.ListAccounts(ctx)
	suite.Require().NoError(err)
	suite.Equal(suite.stored, accounts)
}

func (suite *AccountServiceTestSuite) TestListAccounts_NilBecomesEmpty() {
	ctx := context.Background()
	suite.mockRepo.On("ListAccounts", ctx).Return([]domain.Account(nil), nil).Once()

	accounts, err := suite.service.ListAccounts(ctx)
	suite.Require().NoError(err)
	suite.NotNil(accounts)
	suite.Empty(accounts)
}

func (suite *AccountServiceTestSuite) TestGetAccountByID_NotFound() {
	ctx := context.Background()
	suite.mockRepo.On("FindAccountByID", ctx, int64(99)).Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.GetAccountByID(ctx, 99)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}
