package services

import (
	"context"

	"github.com/SscSPs/finacc/internal/core/domain"
	"github.com/SscSPs/finacc/internal/dto"
)

// OrganizationReaderSvc defines read operations for organizations
type OrganizationReaderSvc interface {
	// GetOrganizationByID retrieves an organization or apperrors.ErrNotFound.
	GetOrganizationByID(ctx context.Context, organizationID int64) (*domain.Organization, error)

	// ListOrganizations retrieves a page of organizations.
	ListOrganizations(ctx context.Context, limit int, offset int) ([]domain.Organization, error)
}

// OrganizationWriterSvc defines write operations for organizations
type OrganizationWriterSvc interface {
	// CreateOrganization registers a new tenant.
	CreateOrganization(ctx context.Context, req dto.CreateOrganizationRequest, userID string) (*domain.Organization, error)

	// UpdateOrganization applies the provided fields of req.
	UpdateOrganization(ctx context.Context, organizationID int64, req dto.UpdateOrganizationRequest, userID string) (*domain.Organization, error)
}

// OrganizationSvcFacade combines all organization-related service interfaces
type OrganizationSvcFacade interface {
	OrganizationReaderSvc
	OrganizationWriterSvc
}
