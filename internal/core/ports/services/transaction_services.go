package services

import (
	"context"

	"github.com/SscSPs/finacc/internal/core/domain"
	"github.com/SscSPs/finacc/internal/dto"
)

// TransactionSvcFacade defines operations for organic transactions
type TransactionSvcFacade interface {
	// CreateTransaction records a transaction entered directly by a user.
	CreateTransaction(ctx context.Context, organizationID int64, req dto.CreateTransactionRequest, userID string) (*domain.Transaction, error)

	// ListTransactions retrieves a page of the organization's transactions, newest first.
	ListTransactions(ctx context.Context, organizationID int64, params dto.ListTransactionsParams) (*dto.ListTransactionsResponse, error)

	// ListTransactionsByAccount retrieves every transaction of one account, newest first.
	ListTransactionsByAccount(ctx context.Context, organizationID, accountID int64) ([]domain.Transaction, error)
}
