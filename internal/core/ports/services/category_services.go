package services

import (
	"context"

	"github.com/SscSPs/finacc/internal/core/domain"
	"github.com/SscSPs/finacc/internal/dto"
)

// CategorySvcFacade defines operations for the category chart
type CategorySvcFacade interface {
	// CreateCategory persists a category owned by the organization.
	CreateCategory(ctx context.Context, organizationID int64, req dto.CreateCategoryRequest, userID string) (*domain.Category, error)

	// ListCategories retrieves the organization's own and shared categories.
	ListCategories(ctx context.Context, organizationID int64) ([]domain.Category, error)

	// GetCategoryTree arranges the visible categories into a tree.
	GetCategoryTree(ctx context.Context, organizationID int64) (domain.CategoryTree, error)
}
