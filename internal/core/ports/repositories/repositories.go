package repositories

// RepositoryProvider holds all repository interfaces needed by services.
// Every storage backend fills it with its own implementations.
type RepositoryProvider struct {
	AccountRepo AccountRepositoryFacade
	JournalRepo JournalRepositoryFacade
	ExpenseRepo ExpenseRepositoryFacade
}
