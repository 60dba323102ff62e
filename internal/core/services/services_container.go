package services

import (
	portsrepo "github.com/SscSPs/fin_automation_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/fin_automation_app/internal/core/ports/services"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(repos portsrepo.RepositoryProvider, journalOptions ...JournalServiceOption) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// The journal service resolves accounts through the account service's chart.
	container.Account = NewAccountService(repos.AccountRepo)
	container.Journal = NewJournalService(repos.JournalRepo, container.Account, journalOptions...)
	container.Expense = NewExpenseService(repos.ExpenseRepo)
	container.Reporting = NewReportingService(repos.JournalRepo, container.Account)

	return container
}
