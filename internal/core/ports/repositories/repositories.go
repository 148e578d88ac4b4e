package repositories

// RepositoryProvider holds all repository interfaces needed by services.
// This makes passing dependencies to the service container constructor cleaner.
type RepositoryProvider struct {
	OrganizationRepo OrganizationRepositoryFacade
	AccountRepo      AccountRepositoryFacade
	CategoryRepo     CategoryRepositoryFacade
	CounterpartyRepo CounterpartyRepositoryFacade
	TransactionRepo  TransactionRepositoryFacade
	InvoiceRepo      InvoiceRepositoryWithTx
	ReportingRepo    ReportingRepository
	// ReportCache is optional; nil disables report caching.
	ReportCache      ReportCache
}
