package services

import (
	"context"

	"github.com/SscSPs/finacc/internal/core/domain"
	"github.com/SscSPs/finacc/internal/dto"
)

// CounterpartySvcFacade defines operations for counterparties
type CounterpartySvcFacade interface {
	// CreateCounterparty persists a new counterparty.
	CreateCounterparty(ctx context.Context, organizationID int64, req dto.CreateCounterpartyRequest, userID string) (*domain.Counterparty, error)

	// GetCounterpartyByID retrieves a counterparty of the organization.
	GetCounterpartyByID(ctx context.Context, organizationID, counterpartyID int64) (*domain.Counterparty, error)

	// ListCounterparties retrieves the organization's counterparties ordered by name.
	ListCounterparties(ctx context.Context, organizationID int64) ([]domain.Counterparty, error)

	// UpdateCounterparty applies only the fields present in req.
	UpdateCounterparty(ctx context.Context, organizationID, counterpartyID int64, req dto.UpdateCounterpartyRequest, userID string) (*domain.Counterparty, error)
}
