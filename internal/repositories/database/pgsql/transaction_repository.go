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
	"github.com/SscSPs/finacc/internal/utils/pagination"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const transactionColumns = `transaction_id, organization_id, account_id, category_id, transaction_type, date, amount,
	status, counterparty, related_account_id, related_transaction_id, origin_kind, origin_invoice_id,
	created_at, created_by, last_updated_at, last_updated_by`

// Newest first; the id breaks ties between rows of the same day.
const transactionOrder = `ORDER BY date DESC, transaction_id DESC`

const defaultPageSize = 20

type PgxTransactionRepository struct {
	BaseRepository
}

func newPgxTransactionRepository(pool *pgxpool.Pool) *PgxTransactionRepository {
	return &PgxTransactionRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.TransactionRepositoryFacade = (*PgxTransactionRepository)(nil)

func (r *PgxTransactionRepository) SaveTransaction(ctx context.Context, txn domain.Transaction) (int64, error) {
	return saveTransaction(ctx, r.Pool, txn)
}

// SaveTransactionTx inserts a transaction as part of tx.
func (r *PgxTransactionRepository) SaveTransactionTx(ctx context.Context, tx pgx.Tx, txn domain.Transaction) (int64, error) {
	return saveTransaction(ctx, tx, txn)
}

func saveTransaction(ctx context.Context, q querier, txn domain.Transaction) (int64, error) {
	m := mapping.ToModelTransaction(txn)
	query := `
		INSERT INTO transactions (organization_id, account_id, category_id, transaction_type, date, amount, status,
			counterparty, related_account_id, related_transaction_id, origin_kind, origin_invoice_id,
			created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
		RETURNING transaction_id;
	`
	var id int64
	err := q.QueryRow(ctx, query,
		m.OrganizationID, m.AccountID, m.CategoryID, m.TransactionType, m.Date, m.Amount, m.Status,
		m.Counterparty, m.RelatedAccountID, m.RelatedTransactionID, m.OriginKind, m.OriginInvoiceID,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	).Scan(&id)
	if err != nil {
		return 0, mapPgError(err, "failed to save transaction")
	}
	return id, nil
}

func (r *PgxTransactionRepository) FindTransactionByID(ctx context.Context, organizationID, transactionID int64) (*domain.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE organization_id = $1 AND transaction_id = $2;`
	rows, err := r.Pool.Query(ctx, query, organizationID, transactionID)
	if err != nil {
		return nil, mapPgError(err, "failed to find transaction")
	}
	m, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[models.Transaction])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, mapPgError(err, "failed to scan transaction")
	}
	txn := mapping.ToDomainTransaction(m)
	return &txn, nil
}

func (r *PgxTransactionRepository) ListTransactions(ctx context.Context, filter portsrepo.TransactionFilter) ([]domain.Transaction, error) {
	return listTransactions(ctx, r.Pool, filter)
}

// ListTransactionsByAccountTx reads an account's transactions as part of tx, so the
// balance it yields is consistent with the locks held by tx.
func (r *PgxTransactionRepository) ListTransactionsByAccountTx(ctx context.Context, tx pgx.Tx, organizationID, accountID int64) ([]domain.Transaction, error) {
	return listTransactions(ctx, tx, portsrepo.TransactionFilter{OrganizationID: organizationID, AccountID: &accountID})
}

func listTransactions(ctx context.Context, q querier, filter portsrepo.TransactionFilter) ([]domain.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE organization_id = $1`
	args := []any{filter.OrganizationID}
	if filter.AccountID != nil {
		args = append(args, *filter.AccountID)
		query += ` AND account_id = $` + strconv.Itoa(len(args))
	}
	if filter.From != nil {
		args = append(args, *filter.From)
		query += ` AND date >= $` + strconv.Itoa(len(args))
	}
	if filter.To != nil {
		args = append(args, *filter.To)
		query += ` AND date <= $` + strconv.Itoa(len(args))
	}
	query += ` ` + transactionOrder + `;`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, mapPgError(err, "failed to list transactions")
	}
	ms, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Transaction])
	if err != nil {
		return nil, mapPgError(err, "failed to scan transactions")
	}
	return mapping.ToDomainTransactionSlice(ms), nil
}

// ListTransactionsPage returns one page of an organization's transactions, newest first.
// The token encodes the date and id of the last row returned.
func (r *PgxTransactionRepository) ListTransactionsPage(ctx context.Context, organizationID int64, limit int, nextToken *string) ([]domain.Transaction, *string, error) {
	if limit <= 0 {
		limit = defaultPageSize
	}
	// We fetch one extra item to determine if there's a next page.
	fetchLimit := limit + 1

	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE organization_id = $1`
	args := []any{organizationID}

	if nextToken != nil && *nextToken != "" {
		lastDate, lastID, err := pagination.DecodeToken(*nextToken)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: invalid nextToken: %v", apperrors.ErrValidation, err)
		}
		args = append(args, lastDate, lastID)
		query += ` AND (date, transaction_id) < ($2, $3)`
	}
	args = append(args, fetchLimit)
	query += ` ` + transactionOrder + ` LIMIT $` + strconv.Itoa(len(args)) + `;`

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, mapPgError(err, "failed to query transactions page")
	}
	ms, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Transaction])
	if err != nil {
		return nil, nil, mapPgError(err, "failed to scan transactions page")
	}

	var nextTokenVal *string
	if len(ms) > limit {
		ms = ms[:limit]
		last := ms[limit-1]
		token := pagination.EncodeToken(last.Date, last.TransactionID)
		nextTokenVal = &token
	}
	return mapping.ToDomainTransactionSlice(ms), nextTokenVal, nil
}
