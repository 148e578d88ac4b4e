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

const categoryColumns = `category_id, organization_id, parent_id, name, category_type, activity_type,
	created_at, created_by, last_updated_at, last_updated_by`

// visibleCategory matches rows owned by the organization in $1 and shared rows.
const visibleCategory = `(organization_id = $1 OR organization_id IS NULL)`

type PgxCategoryRepository struct {
	BaseRepository
}

func newPgxCategoryRepository(pool *pgxpool.Pool) *PgxCategoryRepository {
	return &PgxCategoryRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.CategoryRepositoryFacade = (*PgxCategoryRepository)(nil)

func (r *PgxCategoryRepository) SaveCategory(ctx context.Context, category domain.Category) (int64, error) {
	m := mapping.ToModelCategory(category)
	query := `
		INSERT INTO categories (organization_id, parent_id, name, category_type, activity_type,
			created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING category_id;
	`
	var id int64
	err := r.Pool.QueryRow(ctx, query,
		m.OrganizationID, m.ParentID, m.Name, m.CategoryType, m.ActivityType,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	).Scan(&id)
	if err != nil {
		return 0, mapPgError(err, "failed to save category")
	}
	return id, nil
}

func (r *PgxCategoryRepository) FindCategoryByID(ctx context.Context, organizationID, categoryID int64) (*domain.Category, error) {
	query := `SELECT ` + categoryColumns + ` FROM categories WHERE ` + visibleCategory + ` AND category_id = $2;`
	rows, err := r.Pool.Query(ctx, query, organizationID, categoryID)
	if err != nil {
		return nil, mapPgError(err, "failed to find category")
	}
	m, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[models.Category])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, mapPgError(err, "failed to scan category")
	}
	category := mapping.ToDomainCategory(m)
	return &category, nil
}

func (r *PgxCategoryRepository) ListCategories(ctx context.Context, organizationID int64) ([]domain.Category, error) {
	return listCategories(ctx, r.Pool, organizationID)
}

func listCategories(ctx context.Context, q querier, organizationID int64) ([]domain.Category, error) {
	query := `SELECT ` + categoryColumns + ` FROM categories WHERE ` + visibleCategory + ` ORDER BY category_type, name, category_id;`
	rows, err := q.Query(ctx, query, organizationID)
	if err != nil {
		return nil, mapPgError(err, "failed to list categories")
	}
	ms, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Category])
	if err != nil {
		return nil, mapPgError(err, "failed to scan categories")
	}
	return mapping.ToDomainCategorySlice(ms), nil
}
