package domain

import (
	"fmt"
	"sort"

	"github.com/SscSPs/fin_automation_app/internal/apperrors"
)

// AccountRole names the part an account plays in a journal template.
type AccountRole string

const (
	RoleSales           AccountRole = "sales"
	RoleReceivable      AccountRole = "receivable"
	RoleCostOfGoods     AccountRole = "cost_of_goods"
	RolePayable         AccountRole = "payable"
	RoleOtherExpense    AccountRole = "other_expense"
	RolePaymentGateway  AccountRole = "payment_gateway"
	RoleShippingExpense AccountRole = "shipping_expense"
)

// AllRoles lists every role a template may ask for.
var AllRoles = []AccountRole{
	RoleSales,
	RoleReceivable,
	RoleCostOfGoods,
	RolePayable,
	RoleOtherExpense,
	RolePaymentGateway,
	RoleShippingExpense,
}

// TemplateRoles maps template roles to account codes.
type TemplateRoles map[AccountRole]string

// AccountResolver is the capability of turning an account id into an Account.
type AccountResolver interface {
	ResolveAccount(accountID int64) (Account, error)
}

// Chart is an immutable, code-ordered view over the chart of accounts.
type Chart struct {
	accounts []Account
	byID     map[int64]Account
	byCode   map[string]Account
	roles    TemplateRoles
}

var _ AccountResolver = (*Chart)(nil)

// NewChart builds a chart from accounts and role bindings. Duplicate ids or codes,
// and roles bound to codes absent from the accounts, are rejected.
func NewChart(accounts []Account, roles TemplateRoles) (*Chart, error) {
	c := &Chart{
		accounts: make([]Account, len(accounts)),
		byID:     make(map[int64]Account, len(accounts)),
		byCode:   make(map[string]Account, len(accounts)),
		roles:    make(TemplateRoles, len(roles)),
	}
	copy(c.accounts, accounts)
	sort.SliceStable(c.accounts, func(i, j int) bool {
		return c.accounts[i].Code < c.accounts[j].Code
	})

	for _, acc := range c.accounts {
		if _, dup := c.byCode[acc.Code]; dup {
			return nil, fmt.Errorf("%w: duplicate account code %s", apperrors.ErrValidation, acc.Code)
		}
		if acc.AccountID != 0 {
			if _, dup := c.byID[acc.AccountID]; dup {
				return nil, fmt.Errorf("%w: duplicate account id %d", apperrors.ErrValidation, acc.AccountID)
			}
			c.byID[acc.AccountID] = acc
		}
		c.byCode[acc.Code] = acc
	}

	for role, code := range roles {
		if _, ok := c.byCode[code]; !ok {
			return nil, fmt.Errorf("%w: role %s bound to unknown account code %s", apperrors.ErrValidation, role, code)
		}
		c.roles[role] = code
	}
	return c, nil
}

// Accounts returns the accounts sorted by code.
func (c *Chart) Accounts() []Account {
	out := make([]Account, len(c.accounts))
	copy(out, c.accounts)
	return out
}

// Len returns the number of accounts in the chart.
func (c *Chart) Len() int {
	return len(c.accounts)
}

// ByCode looks an account up by its code.
func (c *Chart) ByCode(code string) (Account, bool) {
	acc, ok := c.byCode[code]
	return acc, ok
}

// ByID looks an account up by its id.
func (c *Chart) ByID(accountID int64) (Account, bool) {
	acc, ok := c.byID[accountID]
	return acc, ok
}

// ResolveAccount returns the account with the given id or an UnknownAccountError.
func (c *Chart) ResolveAccount(accountID int64) (Account, error) {
	acc, ok := c.byID[accountID]
	if !ok {
		return Account{}, &UnknownAccountError{AccountID: accountID, LineIndex: -1}
	}
	return acc, nil
}

// Role returns the account bound to a template role.
func (c *Chart) Role(role AccountRole) (Account, bool) {
	code, ok := c.roles[role]
	if !ok {
		return Account{}, false
	}
	return c.ByCode(code)
}

// Roles returns a copy of the role bindings.
func (c *Chart) Roles() TemplateRoles {
	out := make(TemplateRoles, len(c.roles))
	for k, v := range c.roles {
		out[k] = v
	}
	return out
}

// ChartDefinition is the seed data for a chart: accounts in code order, without ids,
// plus the role bindings the templates use.
type ChartDefinition struct {
	Accounts []Account
	Roles    TemplateRoles
}
