package services

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/SscSPs/finacc/internal/apperrors"
	"github.com/SscSPs/finacc/internal/core/domain"
	portsrepo "github.com/SscSPs/finacc/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/finacc/internal/core/ports/services"
	"github.com/SscSPs/finacc/internal/dto"
)

type organizationService struct {
	BaseService
	organizationRepo portsrepo.OrganizationRepositoryFacade
}

// NewOrganizationService creates a new organization service.
func NewOrganizationService(repo portsrepo.OrganizationRepositoryFacade, options ...BaseOption) portssvc.OrganizationSvcFacade {
	svc := &organizationService{organizationRepo: repo}
	svc.apply(options)
	return svc
}

var _ portssvc.OrganizationSvcFacade = (*organizationService)(nil)

func (s *organizationService) CreateOrganization(ctx context.Context, req dto.CreateOrganizationRequest, userID string) (*domain.Organization, error) {
	now := time.Now().UTC()
	org := domain.Organization{
		Name:               req.Name,
		LegalEntityName:    req.LegalEntityName,
		RegistrationNumber: req.RegistrationNumber,
		TaxID:              req.TaxID,
		FullAddress:        req.FullAddress,
		Email:              req.Email,
		Phone:              req.Phone,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	id, err := s.organizationRepo.SaveOrganization(ctx, org)
	if err != nil {
		s.LogError(ctx, err, "Failed to save organization")
		return nil, err
	}
	org.OrganizationID = id

	s.LogInfo(ctx, "Organization created", slog.Int64("organization_id", id), slog.String("created_by", userID))
	return &org, nil
}

func (s *organizationService) GetOrganizationByID(ctx context.Context, organizationID int64) (*domain.Organization, error) {
	org, err := s.organizationRepo.FindOrganizationByID(ctx, organizationID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find organization", slog.Int64("organization_id", organizationID))
		}
		return nil, err
	}
	return org, nil
}

func (s *organizationService) ListOrganizations(ctx context.Context, limit int, offset int) ([]domain.Organization, error) {
	orgs, err := s.organizationRepo.ListOrganizations(ctx, limit, offset)
	if err != nil {
		s.LogError(ctx, err, "Failed to list organizations", slog.Int("limit", limit), slog.Int("offset", offset))
		return nil, err
	}
	if orgs == nil {
		return []domain.Organization{}, nil
	}
	return orgs, nil
}

// UpdateOrganization applies the provided fields. The identifier never changes.
func (s *organizationService) UpdateOrganization(ctx context.Context, organizationID int64, req dto.UpdateOrganizationRequest, userID string) (*domain.Organization, error) {
	org, err := s.GetOrganizationByID(ctx, organizationID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		org.Name = *req.Name
	}
	if req.LegalEntityName != nil {
		org.LegalEntityName = *req.LegalEntityName
	}
	if req.RegistrationNumber != nil {
		org.RegistrationNumber = *req.RegistrationNumber
	}
	if req.TaxID != nil {
		org.TaxID = *req.TaxID
	}
	if req.FullAddress != nil {
		org.FullAddress = *req.FullAddress
	}
	if req.Email != nil {
		org.Email = *req.Email
	}
	if req.Phone != nil {
		org.Phone = *req.Phone
	}
	org.LastUpdatedAt = time.Now().UTC()
	org.LastUpdatedBy = userID

	if err := s.organizationRepo.UpdateOrganization(ctx, *org); err != nil {
		s.LogError(ctx, err, "Failed to update organization", slog.Int64("organization_id", organizationID))
		return nil, err
	}
	return org, nil
}
