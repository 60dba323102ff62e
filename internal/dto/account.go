package dto

import (
	"github.com/SscSPs/fin_automation_app/internal/core/domain"
)

// AccountResponse defines the data returned for an account.
type AccountResponse struct {
	AccountID     int64                `json:"id"`
	Code          string               `json:"code"`
	Name          string               `json:"name"`
	NormalBalance domain.NormalBalance `json:"normalBalance"`
	Group         domain.AccountGroup  `json:"group"`
	Label         string               `json:"label"`
}

// ToAccountResponse converts a domain.Account to AccountResponse DTO
func ToAccountResponse(acc *domain.Account) AccountResponse {
	return AccountResponse{
		AccountID:     acc.AccountID,
		Code:          acc.Code,
		Name:          acc.Name,
		NormalBalance: acc.NormalBalance,
		Group:         acc.Group,
		Label:         acc.Label(),
	}
}

// ToListAccountResponse converts a slice of domain.Account to a slice of AccountResponse DTOs
func ToListAccountResponse(accounts []domain.Account) []AccountResponse {
	res := make([]AccountResponse, len(accounts))
	for i, acc := range accounts {
		res[i] = ToAccountResponse(&acc)
	}
	return res
}
