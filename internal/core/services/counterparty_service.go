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

type counterpartyService struct {
	BaseService
	counterpartyRepo portsrepo.CounterpartyRepositoryFacade
}

// NewCounterpartyService creates a new counterparty service.
func NewCounterpartyService(repo portsrepo.CounterpartyRepositoryFacade, options ...BaseOption) portssvc.CounterpartySvcFacade {
	svc := &counterpartyService{counterpartyRepo: repo}
	svc.apply(options)
	return svc
}

var _ portssvc.CounterpartySvcFacade = (*counterpartyService)(nil)

func (s *counterpartyService) CreateCounterparty(ctx context.Context, organizationID int64, req dto.CreateCounterpartyRequest, userID string) (*domain.Counterparty, error) {
	if err := s.EnsureOrganization(ctx, organizationID); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	counterparty := domain.Counterparty{
		OrganizationID: organizationID,
		Name:           req.Name,
		Type:           req.Type,
		Category:       req.Category,
		Phone:          req.Phone,
		Email:          req.Email,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	id, err := s.counterpartyRepo.SaveCounterparty(ctx, counterparty)
	if err != nil {
		s.LogError(ctx, err, "Failed to save counterparty", slog.Int64("organization_id", organizationID))
		return nil, err
	}
	counterparty.CounterpartyID = id

	s.LogInfo(ctx, "Counterparty created", slog.Int64("counterparty_id", id))
	return &counterparty, nil
}

func (s *counterpartyService) GetCounterpartyByID(ctx context.Context, organizationID, counterpartyID int64) (*domain.Counterparty, error) {
	counterparty, err := s.counterpartyRepo.FindCounterpartyByID(ctx, organizationID, counterpartyID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find counterparty", slog.Int64("counterparty_id", counterpartyID))
		}
		return nil, err
	}
	return counterparty, nil
}

func (s *counterpartyService) ListCounterparties(ctx context.Context, organizationID int64) ([]domain.Counterparty, error) {
	if err := s.EnsureOrganization(ctx, organizationID); err != nil {
		return nil, err
	}
	counterparties, err := s.counterpartyRepo.ListCounterparties(ctx, organizationID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list counterparties", slog.Int64("organization_id", organizationID))
		return nil, err
	}
	return counterparties, nil
}

// UpdateCounterparty applies only the provided fields. Transactions keep the
// counterparty name they were written with.
func (s *counterpartyService) UpdateCounterparty(ctx context.Context, organizationID, counterpartyID int64, req dto.UpdateCounterpartyRequest, userID string) (*domain.Counterparty, error) {
	counterparty, err := s.GetCounterpartyByID(ctx, organizationID, counterpartyID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		counterparty.Name = *req.Name
	}
	if req.Type != nil {
		counterparty.Type = *req.Type
	}
	if req.Category != nil {
		counterparty.Category = *req.Category
	}
	if req.Phone != nil {
		counterparty.Phone = *req.Phone
	}
	if req.Email != nil {
		counterparty.Email = *req.Email
	}
	counterparty.LastUpdatedAt = time.Now().UTC()
	counterparty.LastUpdatedBy = userID

	if err := s.counterpartyRepo.UpdateCounterparty(ctx, *counterparty); err != nil {
		s.LogError(ctx, err, "Failed to update counterparty", slog.Int64("counterparty_id", counterpartyID))
		return nil, err
	}
	return counterparty, nil
}
