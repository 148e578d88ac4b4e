package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/SscSPs/finacc/internal/apperrors"
	"github.com/SscSPs/finacc/internal/core/domain"
	portsrepo "github.com/SscSPs/finacc/internal/core/ports/repositories"
	"github.com/SscSPs/finacc/internal/models"
	"github.com/SscSPs/finacc/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const accountColumns = `account_id, organization_id, name, account_type, currency, account_number, description,
	is_active, created_at, created_by, last_updated_at, last_updated_by`

// PgxAccountRepository implements portsrepo.AccountRepositoryFacade using pgx
type PgxAccountRepository struct {
	BaseRepository
}

// newPgxAccountRepository creates a new repository for account data.
func newPgxAccountRepository(pool *pgxpool.Pool) *PgxAccountRepository {
	return &PgxAccountRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxAccountRepository implements portsrepo.AccountRepositoryFacade
var _ portsrepo.AccountRepositoryFacade = (*PgxAccountRepository)(nil)

// SaveAccount inserts a new account and returns its generated id.
func (r *PgxAccountRepository) SaveAccount(ctx context.Context, account domain.Account) (int64, error) {
	m := mapping.ToModelAccount(account)
	query := `
		INSERT INTO accounts (organization_id, name, account_type, currency, account_number, description, is_active,
			created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING account_id;
	`
	var id int64
	err := r.Pool.QueryRow(ctx, query,
		m.OrganizationID, m.Name, m.AccountType, m.Currency, m.AccountNumber, m.Description, m.IsActive,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	).Scan(&id)
	if err != nil {
		return 0, mapPgError(err, "failed to save account")
	}
	return id, nil
}

// FindAccountByID retrieves an account by its ID within an organization.
func (r *PgxAccountRepository) FindAccountByID(ctx context.Context, organizationID, accountID int64) (*domain.Account, error) {
	return findAccount(ctx, r.Pool, organizationID, accountID, false)
}

// FindAccountByIDForUpdate retrieves an account and locks its row until tx ends.
func (r *PgxAccountRepository) FindAccountByIDForUpdate(ctx context.Context, tx pgx.Tx, organizationID, accountID int64) (*domain.Account, error) {
	return findAccount(ctx, tx, organizationID, accountID, true)
}

func findAccount(ctx context.Context, q querier, organizationID, accountID int64, lock bool) (*domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE organization_id = $1 AND account_id = $2`
	if lock {
		query += ` FOR UPDATE`
	}
	rows, err := q.Query(ctx, query, organizationID, accountID)
	if err != nil {
		return nil, mapPgError(err, fmt.Sprintf("failed to find account %d", accountID))
	}
	m, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[models.Account])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, mapPgError(err, fmt.Sprintf("failed to scan account %d", accountID))
	}
	account := mapping.ToDomainAccount(m)
	return &account, nil
}

// ListAccounts retrieves every account of an organization ordered by name.
func (r *PgxAccountRepository) ListAccounts(ctx context.Context, organizationID int64) ([]domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE organization_id = $1 ORDER BY name, account_id;`
	rows, err := r.Pool.Query(ctx, query, organizationID)
	if err != nil {
		return nil, mapPgError(err, "failed to list accounts")
	}
	ms, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Account])
	if err != nil {
		return nil, mapPgError(err, "failed to scan accounts")
	}
	return mapping.ToDomainAccountSlice(ms), nil
}

// UpdateAccount updates the mutable fields of an account.
func (r *PgxAccountRepository) UpdateAccount(ctx context.Context, account domain.Account) error {
	m := mapping.ToModelAccount(account)
	query := `
		UPDATE accounts
		SET name = $3, account_number = $4, description = $5, is_active = $6, last_updated_at = $7, last_updated_by = $8
		WHERE organization_id = $1 AND account_id = $2;
	`
	tag, err := r.Pool.Exec(ctx, query,
		m.OrganizationID, m.AccountID, m.Name, m.AccountNumber, m.Description, m.IsActive, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return mapPgError(err, "failed to update account")
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeactivateAccount marks an account as inactive. An already inactive account is a validation error.
func (r *PgxAccountRepository) DeactivateAccount(ctx context.Context, organizationID, accountID int64, userID string, now time.Time) error {
	query := `
		UPDATE accounts
		SET is_active = FALSE, last_updated_at = $3, last_updated_by = $4
		WHERE organization_id = $1 AND account_id = $2 AND is_active = TRUE;
	`
	tag, err := r.Pool.Exec(ctx, query, organizationID, accountID, now, userID)
	if err != nil {
		return mapPgError(err, "failed to deactivate account")
	}
	if tag.RowsAffected() > 0 {
		return nil
	}

	// Distinguish a missing account from one that is already inactive.
	if _, err := r.FindAccountByID(ctx, organizationID, accountID); err != nil {
		return err
	}
	return fmt.Errorf("%w: account %d is already inactive", apperrors.ErrValidation, accountID)
}
