package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/finacc/internal/core/domain"
	"github.com/jackc/pgx/v5"
)

// AccountReader defines read operations for account data
type AccountReader interface {
	// FindAccountByID retrieves an account that belongs to organizationID.
	FindAccountByID(ctx context.Context, organizationID, accountID int64) (*domain.Account, error)

	// ListAccounts retrieves every account of an organization ordered by name.
	ListAccounts(ctx context.Context, organizationID int64) ([]domain.Account, error)
}

// AccountWriter defines write operations for account data
type AccountWriter interface {
	// SaveAccount persists a new account and returns its identifier.
	SaveAccount(ctx context.Context, account domain.Account) (int64, error)

	// UpdateAccount updates an existing account's details.
	UpdateAccount(ctx context.Context, account domain.Account) error

	// DeactivateAccount marks an account as inactive.
	DeactivateAccount(ctx context.Context, organizationID, accountID int64, userID string, now time.Time) error
}

// AccountTransactionSupport defines operations that support account transactions
type AccountTransactionSupport interface {
	// FindAccountByIDForUpdate selects an account and locks it within a transaction.
	FindAccountByIDForUpdate(ctx context.Context, tx pgx.Tx, organizationID, accountID int64) (*domain.Account, error)
}

// AccountRepositoryFacade combines all account-related repository interfaces
// This is a facade for clients that need access to all operations
type AccountRepositoryFacade interface {
	AccountReader
	AccountWriter
	AccountTransactionSupport
}
