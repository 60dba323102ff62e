package mapping

import (
	"github.com/SscSPs/fin_automation_app/internal/core/domain"
	"github.com/SscSPs/fin_automation_app/internal/models"
)

// ToModelAccount converts a domain Account to a model Account
func ToModelAccount(d domain.Account) models.Account {
	return models.Account{
		AccountID:     d.AccountID,
		Code:          d.Code,
		Name:          d.Name,
		NormalBalance: models.NormalBalance(d.NormalBalance),
		AccountGroup:  models.AccountGroup(d.Group),
	}
}

// ToDomainAccount converts a model Account to a domain Account
func ToDomainAccount(m models.Account) domain.Account {
	return domain.Account{
		AccountID:     m.AccountID,
		Code:          m.Code,
		Name:          m.Name,
		NormalBalance: domain.NormalBalance(m.NormalBalance),
		Group:         domain.AccountGroup(m.AccountGroup),
	}
}

// ToDomainAccounts converts a slice of model Accounts to domain Accounts
func ToDomainAccounts(ms []models.Account) []domain.Account {
	accounts := make([]domain.Account, len(ms))
	for i, m := range ms {
		accounts[i] = ToDomainAccount(m)
	}
	return accounts
}
