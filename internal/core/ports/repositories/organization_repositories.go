package repositories

import (
	"context"

	"github.com/SscSPs/finacc/internal/core/domain"
)

// OrganizationReader defines read operations for organization data
type OrganizationReader interface {
	// FindOrganizationByID retrieves an organization by its identifier.
	FindOrganizationByID(ctx context.Context, organizationID int64) (*domain.Organization, error)

	// ListOrganizations retrieves a page of organizations ordered by name.
	ListOrganizations(ctx context.Context, limit int, offset int) ([]domain.Organization, error)
}

// OrganizationWriter defines write operations for organization data
type OrganizationWriter interface {
	// SaveOrganization persists a new organization and returns its identifier.
	SaveOrganization(ctx context.Context, org domain.Organization) (int64, error)

	// UpdateOrganization updates the descriptive fields of an organization.
	UpdateOrganization(ctx context.Context, org domain.Organization) error
}

// OrganizationRepositoryFacade combines all organization-related repository interfaces
type OrganizationRepositoryFacade interface {
	OrganizationReader
	OrganizationWriter
}
