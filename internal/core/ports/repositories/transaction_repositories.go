package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/finacc/internal/core/domain"
	"github.com/jackc/pgx/v5"
)

// TransactionFilter narrows a transaction listing. Nil fields are not applied.
type TransactionFilter struct {
	OrganizationID int64
	AccountID      *int64
	From           *time.Time // Inclusive
	To             *time.Time // Inclusive
}

// TransactionReader defines read operations for transaction data
type TransactionReader interface {
	// FindTransactionByID retrieves a transaction that belongs to organizationID.
	FindTransactionByID(ctx context.Context, organizationID, transactionID int64) (*domain.Transaction, error)

	// ListTransactions retrieves all transactions matching filter, newest first.
	ListTransactions(ctx context.Context, filter TransactionFilter) ([]domain.Transaction, error)

	// ListTransactionsPage retrieves a page of an organization's transactions using token-based pagination.
	// It returns the transactions, a token for the next page, and an error.
	ListTransactionsPage(ctx context.Context, organizationID int64, limit int, nextToken *string) ([]domain.Transaction, *string, error)
}

// TransactionWriter defines write operations for transaction data
type TransactionWriter interface {
	// SaveTransaction persists a new transaction and returns its identifier.
	SaveTransaction(ctx context.Context, txn domain.Transaction) (int64, error)
}

// TransactionTxSupport defines transaction operations that run inside a database transaction
type TransactionTxSupport interface {
	// ListTransactionsByAccountTx retrieves every transaction of an account within tx.
	ListTransactionsByAccountTx(ctx context.Context, tx pgx.Tx, organizationID, accountID int64) ([]domain.Transaction, error)

	// SaveTransactionTx persists a new transaction within tx and returns its identifier.
	SaveTransactionTx(ctx context.Context, tx pgx.Tx, txn domain.Transaction) (int64, error)
}

// TransactionRepositoryFacade combines all transaction-related repository interfaces
type TransactionRepositoryFacade interface {
	TransactionReader
	TransactionWriter
	TransactionTxSupport
}
