package services

import (
	"context"

	"github.com/SscSPs/finacc/internal/core/domain"
	"github.com/SscSPs/finacc/internal/dto"
	"github.com/shopspring/decimal"
)

// AccountReaderSvc defines read operations for account data
type AccountReaderSvc interface {
	// GetAccountByID retrieves an account of the organization together with its balance.
	GetAccountByID(ctx context.Context, organizationID, accountID int64) (*domain.AccountWithBalance, error)

	// ListAccounts retrieves every account of the organization with its balance.
	ListAccounts(ctx context.Context, organizationID int64) ([]domain.AccountWithBalance, error)
}

// AccountWriterSvc defines write operations for account data
type AccountWriterSvc interface {
	// CreateAccount persists a new account.
	CreateAccount(ctx context.Context, organizationID int64, req dto.CreateAccountRequest, userID string) (*domain.Account, error)

	// UpdateAccount updates an existing account's details.
	UpdateAccount(ctx context.Context, organizationID, accountID int64, req dto.UpdateAccountRequest, userID string) (*domain.AccountWithBalance, error)

	// DeactivateAccount marks an account as inactive.
	DeactivateAccount(ctx context.Context, organizationID, accountID int64, userID string) error
}

// AccountCalculatorSvc defines calculation operations for account data
type AccountCalculatorSvc interface {
	// ComputeBalance derives an account's balance: income minus expense over all its transactions.
	ComputeBalance(ctx context.Context, organizationID, accountID int64) (decimal.Decimal, error)
}

// AccountSvcFacade combines all account-related service interfaces
// This is a facade for clients that need access to all operations
type AccountSvcFacade interface {
	AccountReaderSvc
	AccountWriterSvc
	AccountCalculatorSvc
}
