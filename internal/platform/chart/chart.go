// Package chart loads the chart of accounts and its template role bindings.
package chart

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/SscSPs/fin_automation_app/internal/apperrors"
	"github.com/SscSPs/fin_automation_app/internal/core/domain"
	"gopkg.in/yaml.v3"
)

//go:embed default_chart.yaml
var defaultChart []byte

type accountEntry struct {
	Code          string `yaml:"code"`
	Name          string `yaml:"name"`
	NormalBalance string `yaml:"normal_balance"`
	Group         string `yaml:"group"`
}

type chartFile struct {
	Accounts []accountEntry    `yaml:"accounts"`
	Roles    map[string]string `yaml:"roles"`
}

// Default returns the embedded chart of accounts.
func Default() (domain.ChartDefinition, error) {
	return Parse(defaultChart)
}

// Load reads a chart file from path, falling back to the embedded chart when path is empty.
func Load(path string) (domain.ChartDefinition, error) {
	if path == "" {
		return Default()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return domain.ChartDefinition{}, fmt.Errorf("failed to read chart file: %w", err)
	}
	return Parse(data)
}

// Parse decodes a YAML chart and checks it is self-consistent.
func Parse(data []byte) (domain.ChartDefinition, error) {
	var file chartFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return domain.ChartDefinition{}, fmt.Errorf("failed to parse chart YAML: %w", err)
	}
	if len(file.Accounts) == 0 {
		return domain.ChartDefinition{}, fmt.Errorf("%w: chart has no accounts", apperrors.ErrValidation)
	}

	def := domain.ChartDefinition{
		Accounts: make([]domain.Account, 0, len(file.Accounts)),
		Roles:    make(domain.TemplateRoles, len(file.Roles)),
	}
	for i, e := range file.Accounts {
		acc := domain.Account{
			Code:          e.Code,
			Name:          e.Name,
			NormalBalance: domain.NormalBalance(e.NormalBalance),
			Group:         domain.AccountGroup(e.Group),
		}
		if acc.Code == "" || acc.Name == "" {
			return domain.ChartDefinition{}, fmt.Errorf("%w: account #%d needs a code and a name", apperrors.ErrValidation, i+1)
		}
		if !acc.NormalBalance.Valid() {
			return domain.ChartDefinition{}, fmt.Errorf("%w: account %s has invalid normal balance %q", apperrors.ErrValidation, acc.Code, e.NormalBalance)
		}
		if !acc.Group.Valid() {
			return domain.ChartDefinition{}, fmt.Errorf("%w: account %s has invalid group %q", apperrors.ErrValidation, acc.Code, e.Group)
		}
		def.Accounts = append(def.Accounts, acc)
	}

	known := make(map[domain.AccountRole]bool, len(domain.AllRoles))
	for _, r := range domain.AllRoles {
		known[r] = true
	}
	for name, code := range file.Roles {
		role := domain.AccountRole(name)
		if !known[role] {
			return domain.ChartDefinition{}, fmt.Errorf("%w: unknown template role %q", apperrors.ErrValidation, name)
		}
		def.Roles[role] = code
	}

	// NewChart rejects duplicate codes and roles bound to missing accounts.
	if _, err := domain.NewChart(def.Accounts, def.Roles); err != nil {
		return domain.ChartDefinition{}, err
	}
	return def, nil
}
