package pgsql

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/SscSPs/finacc/internal/apperrors"
	"github.com/SscSPs/finacc/internal/core/domain"
	portsrepo "github.com/SscSPs/finacc/internal/core/ports/repositories"
	"github.com/SscSPs/finacc/internal/models"
	"github.com/SscSPs/finacc/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

const invoiceColumns = `invoice_id, organization_id, account_id, category_id, counterparty_id, invoice_type,
	invoice_date, pay_up_date, amount, paid_amount, status, comment,
	created_at, created_by, last_updated_at, last_updated_by`

// PgxInvoiceRepository implements portsrepo.InvoiceRepositoryWithTx using pgx
type PgxInvoiceRepository struct {
	BaseRepository
}

func newPgxInvoiceRepository(pool *pgxpool.Pool) *PgxInvoiceRepository {
	return &PgxInvoiceRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.InvoiceRepositoryWithTx = (*PgxInvoiceRepository)(nil)

func (r *PgxInvoiceRepository) SaveInvoice(ctx context.Context, invoice domain.Invoice) (int64, error) {
	m := mapping.ToModelInvoice(invoice)
	query := `
		INSERT INTO invoices (organization_id, account_id, category_id, counterparty_id, invoice_type, invoice_date,
			pay_up_date, amount, paid_amount, status, comment, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		RETURNING invoice_id;
	`
	var id int64
	err := r.Pool.QueryRow(ctx, query,
		m.OrganizationID, m.AccountID, m.CategoryID, m.CounterpartyID, m.InvoiceType, m.InvoiceDate,
		m.PayUpDate, m.Amount, m.PaidAmount, m.Status, m.Comment, m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	).Scan(&id)
	if err != nil {
		return 0, mapPgError(err, "failed to save invoice")
	}
	return id, nil
}

func (r *PgxInvoiceRepository) FindInvoiceByID(ctx context.Context, organizationID, invoiceID int64) (*domain.Invoice, error) {
	return findInvoice(ctx, r.Pool, organizationID, invoiceID, false)
}

// FindInvoiceByIDForUpdate locks the invoice row until tx ends, serializing payments.
func (r *PgxInvoiceRepository) FindInvoiceByIDForUpdate(ctx context.Context, tx pgx.Tx, organizationID, invoiceID int64) (*domain.Invoice, error) {
	return findInvoice(ctx, tx, organizationID, invoiceID, true)
}

func findInvoice(ctx context.Context, q querier, organizationID, invoiceID int64, lock bool) (*domain.Invoice, error) {
	query := `SELECT ` + invoiceColumns + ` FROM invoices WHERE organization_id = $1 AND invoice_id = $2`
	if lock {
		query += ` FOR UPDATE`
	}
	rows, err := q.Query(ctx, query, organizationID, invoiceID)
	if err != nil {
		return nil, mapPgError(err, fmt.Sprintf("failed to find invoice %d", invoiceID))
	}
	m, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[models.Invoice])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, mapPgError(err, fmt.Sprintf("failed to scan invoice %d", invoiceID))
	}
	invoice := mapping.ToDomainInvoice(m)
	return &invoice, nil
}

func (r *PgxInvoiceRepository) ListInvoices(ctx context.Context, filter portsrepo.InvoiceFilter) ([]domain.Invoice, error) {
	return listInvoices(ctx, r.Pool, filter)
}

func listInvoices(ctx context.Context, q querier, filter portsrepo.InvoiceFilter) ([]domain.Invoice, error) {
	query := `SELECT ` + invoiceColumns + ` FROM invoices WHERE organization_id = $1`
	args := []any{filter.OrganizationID}
	if filter.From != nil {
		args = append(args, *filter.From)
		query += ` AND invoice_date >= $` + strconv.Itoa(len(args))
	}
	if filter.To != nil {
		args = append(args, *filter.To)
		query += ` AND invoice_date <= $` + strconv.Itoa(len(args))
	}
	query += ` ORDER BY invoice_date DESC, invoice_id DESC;`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, mapPgError(err, "failed to list invoices")
	}
	ms, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Invoice])
	if err != nil {
		return nil, mapPgError(err, "failed to scan invoices")
	}
	return mapping.ToDomainInvoiceSlice(ms), nil
}

// UpdateInvoicePaymentTx writes the new paid amount and status only if the stored
// paid amount still equals previousPaid.
func (r *PgxInvoiceRepository) UpdateInvoicePaymentTx(ctx context.Context, tx pgx.Tx, invoice domain.Invoice, previousPaid decimal.Decimal) error {
	query := `
		UPDATE invoices
		SET paid_amount = $3, status = $4, last_updated_at = $5, last_updated_by = $6
		WHERE organization_id = $1 AND invoice_id = $2 AND paid_amount = $7;
	`
	tag, err := tx.Exec(ctx, query,
		invoice.OrganizationID, invoice.InvoiceID, invoice.PaidAmount, string(invoice.Status),
		invoice.LastUpdatedAt, invoice.LastUpdatedBy, previousPaid,
	)
	if err != nil {
		return mapPgError(err, "failed to update invoice payment")
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: invoice %d was paid concurrently", apperrors.ErrConflict, invoice.InvoiceID)
	}
	return nil
}
