package pgsql

import (
	"context"
	"time"

	portsrepo "github.com/SscSPs/finacc/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// reportingRepository implements the ReportingRepository interface
type reportingRepository struct {
	BaseRepository
}

// newReportingRepository creates a new reporting repository
func newReportingRepository(db *pgxpool.Pool) portsrepo.ReportingRepository {
	return &reportingRepository{
		BaseRepository: BaseRepository{Pool: db},
	}
}

// LoadReportSnapshot reads everything a report needs under one repeatable-read snapshot.
// Invoices are limited to the range. Transactions are read up to its end, which covers
// the cash flow opening balance.
func (r *reportingRepository) LoadReportSnapshot(ctx context.Context, organizationID int64, from, to time.Time) (*portsrepo.ReportSnapshot, error) {
	tx, err := r.Pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.RepeatableRead, AccessMode: pgx.ReadOnly})
	if err != nil {
		return nil, mapPgError(err, "failed to begin report snapshot")
	}
	defer r.Rollback(ctx, tx) // Ignored once committed

	categories, err := listCategories(ctx, tx, organizationID)
	if err != nil {
		return nil, err
	}
	invoices, err := listInvoices(ctx, tx, portsrepo.InvoiceFilter{OrganizationID: organizationID, From: &from, To: &to})
	if err != nil {
		return nil, err
	}
	transactions, err := listTransactions(ctx, tx, portsrepo.TransactionFilter{OrganizationID: organizationID, To: &to})
	if err != nil {
		return nil, err
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}
	return &portsrepo.ReportSnapshot{
		Categories:   categories,
		Invoices:     invoices,
		Transactions: transactions,
	}, nil
}
