package services

import (
	portsrepo "github.com/SscSPs/finacc/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/finacc/internal/core/ports/services"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	shared := []BaseOption{
		WithOrganizationReader(repos.OrganizationRepo),
	}
	if repos.ReportCache != nil {
		shared = append(shared, WithReportCache(repos.ReportCache))
	}

	return &portssvc.ServiceContainer{
		Organization: NewOrganizationService(repos.OrganizationRepo),
		Account:      NewAccountService(repos.AccountRepo, repos.TransactionRepo, shared...),
		Category:     NewCategoryService(repos.CategoryRepo, shared...),
		Counterparty: NewCounterpartyService(repos.CounterpartyRepo, shared...),
		Transaction:  NewTransactionService(repos.TransactionRepo, repos.AccountRepo, repos.CategoryRepo, shared...),
		Invoice: NewInvoiceService(
			repos.InvoiceRepo,
			repos.TransactionRepo,
			repos.AccountRepo,
			repos.CategoryRepo,
			repos.CounterpartyRepo,
			shared...,
		),
		Reporting: NewReportingService(repos.ReportingRepo, shared...),
	}
}
