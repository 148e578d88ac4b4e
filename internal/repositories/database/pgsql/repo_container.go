package pgsql

import (
	portsrepo "github.com/SscSPs/finacc/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewRepositoryProvider wires the pgx repositories. cache may be nil.
func NewRepositoryProvider(dbPool *pgxpool.Pool, cache portsrepo.ReportCache) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		OrganizationRepo: newPgxOrganizationRepository(dbPool),
		AccountRepo:      newPgxAccountRepository(dbPool),
		CategoryRepo:     newPgxCategoryRepository(dbPool),
		CounterpartyRepo: newPgxCounterpartyRepository(dbPool),
		TransactionRepo:  newPgxTransactionRepository(dbPool),
		InvoiceRepo:      newPgxInvoiceRepository(dbPool),
		ReportingRepo:    newReportingRepository(dbPool),
		ReportCache:      cache,
	}
}
