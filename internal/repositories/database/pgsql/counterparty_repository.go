package pgsql

import (
	"context"
	"errors"

	"github.com/SscSPs/finacc/internal/apperrors"
	"github.com/SscSPs/finacc/internal/core/domain"
	portsrepo "github.com/SscSPs/finacc/internal/core/ports/repositories"
	"github.com/SscSPs/finacc/internal/models"
	"github.com/SscSPs/finacc/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const counterpartyColumns = `counterparty_id, organization_id, name, type, category, phone, email,
	created_at, created_by, last_updated_at, last_updated_by`

type PgxCounterpartyRepository struct {
	BaseRepository
}

func newPgxCounterpartyRepository(pool *pgxpool.Pool) *PgxCounterpartyRepository {
	return &PgxCounterpartyRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.CounterpartyRepositoryFacade = (*PgxCounterpartyRepository)(nil)

func (r *PgxCounterpartyRepository) SaveCounterparty(ctx context.Context, counterparty domain.Counterparty) (int64, error) {
	m := mapping.ToModelCounterparty(counterparty)
	query := `
		INSERT INTO counterparties (organization_id, name, type, category, phone, email,
			created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING counterparty_id;
	`
	var id int64
	err := r.Pool.QueryRow(ctx, query,
		m.OrganizationID, m.Name, m.Type, m.Category, m.Phone, m.Email,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	).Scan(&id)
	if err != nil {
		return 0, mapPgError(err, "failed to save counterparty")
	}
	return id, nil
}

func (r *PgxCounterpartyRepository) FindCounterpartyByID(ctx context.Context, organizationID, counterpartyID int64) (*domain.Counterparty, error) {
	query := `SELECT ` + counterpartyColumns + ` FROM counterparties WHERE organization_id = $1 AND counterparty_id = $2;`
	rows, err := r.Pool.Query(ctx, query, organizationID, counterpartyID)
	if err != nil {
		return nil, mapPgError(err, "failed to find counterparty")
	}
	m, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[models.Counterparty])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, mapPgError(err, "failed to scan counterparty")
	}
	counterparty := mapping.ToDomainCounterparty(m)
	return &counterparty, nil
}

func (r *PgxCounterpartyRepository) ListCounterparties(ctx context.Context, organizationID int64) ([]domain.Counterparty, error) {
	query := `SELECT ` + counterpartyColumns + ` FROM counterparties WHERE organization_id = $1 ORDER BY name, counterparty_id;`
	rows, err := r.Pool.Query(ctx, query, organizationID)
	if err != nil {
		return nil, mapPgError(err, "failed to list counterparties")
	}
	ms, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Counterparty])
	if err != nil {
		return nil, mapPgError(err, "failed to scan counterparties")
	}
	return mapping.ToDomainCounterpartySlice(ms), nil
}

func (r *PgxCounterpartyRepository) UpdateCounterparty(ctx context.Context, counterparty domain.Counterparty) error {
	m := mapping.ToModelCounterparty(counterparty)
	query := `
		UPDATE counterparties
		SET name = $3, type = $4, category = $5, phone = $6, email = $7, last_updated_at = $8, last_updated_by = $9
		WHERE organization_id = $1 AND counterparty_id = $2;
	`
	tag, err := r.Pool.Exec(ctx, query,
		m.OrganizationID, m.CounterpartyID, m.Name, m.Type, m.Category, m.Phone, m.Email, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return mapPgError(err, "failed to update counterparty")
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
