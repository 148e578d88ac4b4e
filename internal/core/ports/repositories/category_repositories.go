package repositories

import (
	"context"

	"github.com/SscSPs/finacc/internal/core/domain"
)

// CategoryReader defines read operations for category data.
// Every lookup sees the organization's own categories plus shared ones.
type CategoryReader interface {
	// FindCategoryByID retrieves a category owned by organizationID or shared.
	FindCategoryByID(ctx context.Context, organizationID, categoryID int64) (*domain.Category, error)

	// ListCategories retrieves visible categories ordered by category type, then name.
	ListCategories(ctx context.Context, organizationID int64) ([]domain.Category, error)
}

// CategoryWriter defines write operations for category data
type CategoryWriter interface {
	// SaveCategory persists a new category and returns its identifier.
	SaveCategory(ctx context.Context, category domain.Category) (int64, error)
}

// CategoryRepositoryFacade combines all category-related repository interfaces
type CategoryRepositoryFacade interface {
	CategoryReader
	CategoryWriter
}
