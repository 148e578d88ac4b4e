package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/finacc/internal/apperrors"
	"github.com/SscSPs/finacc/internal/core/domain"
	portsrepo "github.com/SscSPs/finacc/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/finacc/internal/core/ports/services"
	"github.com/SscSPs/finacc/internal/dto"
)

type categoryService struct {
	BaseService
	categoryRepo portsrepo.CategoryRepositoryFacade
}

// NewCategoryService creates a new category service.
func NewCategoryService(repo portsrepo.CategoryRepositoryFacade, options ...BaseOption) portssvc.CategorySvcFacade {
	svc := &categoryService{categoryRepo: repo}
	svc.apply(options)
	return svc
}

var _ portssvc.CategorySvcFacade = (*categoryService)(nil)

func (s *categoryService) CreateCategory(ctx context.Context, organizationID int64, req dto.CreateCategoryRequest, userID string) (*domain.Category, error) {
	if err := s.EnsureOrganization(ctx, organizationID); err != nil {
		return nil, err
	}
	categoryType := domain.NormalizeFlowType(string(req.CategoryType))
	if !categoryType.IsValid() {
		return nil, fmt.Errorf("%w: unknown category type %q", apperrors.ErrValidation, req.CategoryType)
	}
	if req.ParentID != nil {
		// Parents may be shared categories; cycles cannot form since the new row has no children yet.
		if _, err := s.categoryRepo.FindCategoryByID(ctx, organizationID, *req.ParentID); err != nil {
			return nil, notFoundf(err, "parent category %d not found", *req.ParentID)
		}
	}

	now := time.Now().UTC()
	orgID := organizationID
	category := domain.Category{
		OrganizationID: &orgID,
		ParentID:       req.ParentID,
		Name:           req.Name,
		CategoryType:   categoryType,
		ActivityType:   strings.ToUpper(strings.TrimSpace(req.ActivityType)),
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	id, err := s.categoryRepo.SaveCategory(ctx, category)
	if err != nil {
		s.LogError(ctx, err, "Failed to save category", slog.Int64("organization_id", organizationID))
		return nil, err
	}
	category.CategoryID = id
	s.InvalidateReports(ctx, organizationID)

	s.LogInfo(ctx, "Category created", slog.Int64("category_id", id))
	return &category, nil
}

func (s *categoryService) ListCategories(ctx context.Context, organizationID int64) ([]domain.Category, error) {
	if err := s.EnsureOrganization(ctx, organizationID); err != nil {
		return nil, err
	}
	categories, err := s.categoryRepo.ListCategories(ctx, organizationID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list categories", slog.Int64("organization_id", organizationID))
		return nil, err
	}
	return categories, nil
}

func (s *categoryService) GetCategoryTree(ctx context.Context, organizationID int64) (domain.CategoryTree, error) {
	categories, err := s.ListCategories(ctx, organizationID)
	if err != nil {
		return domain.CategoryTree{}, err
	}
	return domain.BuildCategoryTree(categories), nil
}
