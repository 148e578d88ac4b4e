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

const organizationColumns = `organization_id, name, legal_entity_name, registration_number, tax_id,
	full_address, email, phone, created_at, created_by, last_updated_at, last_updated_by`

// PgxOrganizationRepository implements portsrepo.OrganizationRepositoryFacade using pgx
type PgxOrganizationRepository struct {
	BaseRepository
}

func newPgxOrganizationRepository(pool *pgxpool.Pool) *PgxOrganizationRepository {
	return &PgxOrganizationRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.OrganizationRepositoryFacade = (*PgxOrganizationRepository)(nil)

func (r *PgxOrganizationRepository) SaveOrganization(ctx context.Context, org domain.Organization) (int64, error) {
	m := mapping.ToModelOrganization(org)
	query := `
		INSERT INTO organizations (name, legal_entity_name, registration_number, tax_id, full_address, email, phone,
			created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING organization_id;
	`
	var id int64
	err := r.Pool.QueryRow(ctx, query,
		m.Name, m.LegalEntityName, m.RegistrationNumber, m.TaxID, m.FullAddress, m.Email, m.Phone,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	).Scan(&id)
	if err != nil {
		return 0, mapPgError(err, "failed to save organization")
	}
	return id, nil
}

func (r *PgxOrganizationRepository) FindOrganizationByID(ctx context.Context, organizationID int64) (*domain.Organization, error) {
	query := `SELECT ` + organizationColumns + ` FROM organizations WHERE organization_id = $1;`
	rows, err := r.Pool.Query(ctx, query, organizationID)
	if err != nil {
		return nil, mapPgError(err, "failed to find organization")
	}
	m, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[models.Organization])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, mapPgError(err, "failed to scan organization")
	}
	org := mapping.ToDomainOrganization(m)
	return &org, nil
}

func (r *PgxOrganizationRepository) ListOrganizations(ctx context.Context, limit int, offset int) ([]domain.Organization, error) {
	query := `SELECT ` + organizationColumns + ` FROM organizations ORDER BY name, organization_id LIMIT $1 OFFSET $2;`
	rows, err := r.Pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, mapPgError(err, "failed to list organizations")
	}
	ms, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Organization])
	if err != nil {
		return nil, mapPgError(err, "failed to scan organizations")
	}
	return mapping.ToDomainOrganizationSlice(ms), nil
}

func (r *PgxOrganizationRepository) UpdateOrganization(ctx context.Context, org domain.Organization) error {
	m := mapping.ToModelOrganization(org)
	query := `
		UPDATE organizations
		SET name = $2, legal_entity_name = $3, registration_number = $4, tax_id = $5, full_address = $6,
			email = $7, phone = $8, last_updated_at = $9, last_updated_by = $10
		WHERE organization_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query,
		m.OrganizationID, m.Name, m.LegalEntityName, m.RegistrationNumber, m.TaxID, m.FullAddress,
		m.Email, m.Phone, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return mapPgError(err, "failed to update organization")
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
