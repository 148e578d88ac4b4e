package repositories

import (
	"context"

	"github.com/SscSPs/finacc/internal/core/domain"
)

// CounterpartyReader defines read operations for counterparty data
type CounterpartyReader interface {
	// FindCounterpartyByID retrieves a counterparty that belongs to organizationID.
	FindCounterpartyByID(ctx context.Context, organizationID, counterpartyID int64) (*domain.Counterparty, error)

	// ListCounterparties retrieves every counterparty of an organization ordered by name.
	ListCounterparties(ctx context.Context, organizationID int64) ([]domain.Counterparty, error)
}

// CounterpartyWriter defines write operations for counterparty data
type CounterpartyWriter interface {
	// SaveCounterparty persists a new counterparty and returns its identifier.
	SaveCounterparty(ctx context.Context, counterparty domain.Counterparty) (int64, error)

	// UpdateCounterparty overwrites the mutable fields of a counterparty.
	UpdateCounterparty(ctx context.Context, counterparty domain.Counterparty) error
}

// CounterpartyRepositoryFacade combines all counterparty-related repository interfaces
type CounterpartyRepositoryFacade interface {
	CounterpartyReader
	CounterpartyWriter
}
