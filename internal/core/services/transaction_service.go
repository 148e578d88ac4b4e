package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/finacc/internal/apperrors"
	"github.com/SscSPs/finacc/internal/core/domain"
	portsrepo "github.com/SscSPs/finacc/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/finacc/internal/core/ports/services"
	"github.com/SscSPs/finacc/internal/dto"
)

type transactionService struct {
	BaseService
	transactionRepo portsrepo.TransactionRepositoryFacade
	accountRepo     portsrepo.AccountReader
	categoryRepo    portsrepo.CategoryReader
}

// NewTransactionService creates a new transaction service.
func NewTransactionService(
	transactionRepo portsrepo.TransactionRepositoryFacade,
	accountRepo portsrepo.AccountReader,
	categoryRepo portsrepo.CategoryReader,
	options ...BaseOption,
) portssvc.TransactionSvcFacade {
	svc := &transactionService{
		transactionRepo: transactionRepo,
		accountRepo:     accountRepo,
		categoryRepo:    categoryRepo,
	}
	svc.apply(options)
	return svc
}

var _ portssvc.TransactionSvcFacade = (*transactionService)(nil)

// CreateTransaction records a directly entered transaction. A status carrying the
// settlement marker classifies it as a settlement, so reports leave it out.
func (s *transactionService) CreateTransaction(ctx context.Context, organizationID int64, req dto.CreateTransactionRequest, userID string) (*domain.Transaction, error) {
	if !req.Amount.IsPositive() {
		return nil, fmt.Errorf("%w: amount must be greater than zero", apperrors.ErrValidation)
	}
	if !domain.FitsMoneyScale(req.Amount) {
		return nil, fmt.Errorf("%w: amount %s has more than %d decimal places",
			apperrors.ErrValidation, req.Amount.String(), domain.MoneyScale)
	}
	flow := domain.NormalizeFlowType(string(req.TransactionType))
	if !flow.IsValid() {
		return nil, fmt.Errorf("%w: unknown transaction type %q", apperrors.ErrValidation, req.TransactionType)
	}

	now := time.Now().UTC()
	date := domain.DateOnly(now)
	if req.Date != "" {
		d, err := dto.ParseDate(req.Date)
		if err != nil {
			return nil, err
		}
		date = d
	}

	if _, err := s.accountRepo.FindAccountByID(ctx, organizationID, req.AccountID); err != nil {
		return nil, notFoundf(err, "account %d not found", req.AccountID)
	}
	if _, err := s.categoryRepo.FindCategoryByID(ctx, organizationID, req.CategoryID); err != nil {
		return nil, notFoundf(err, "category %d not found", req.CategoryID)
	}
	if req.RelatedAccountID != nil {
		if _, err := s.accountRepo.FindAccountByID(ctx, organizationID, *req.RelatedAccountID); err != nil {
			return nil, notFoundf(err, "related account %d not found", *req.RelatedAccountID)
		}
	}

	txn := domain.Transaction{
		OrganizationID:       organizationID,
		AccountID:            req.AccountID,
		CategoryID:           req.CategoryID,
		TransactionType:      flow,
		Date:                 date,
		Amount:               req.Amount,
		Status:               req.Status,
		Counterparty:         req.Counterparty,
		RelatedAccountID:     req.RelatedAccountID,
		RelatedTransactionID: req.RelatedTransactionID,
		Origin:               enteredOrigin(req.Status),
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	id, err := s.transactionRepo.SaveTransaction(ctx, txn)
	if err != nil {
		s.LogError(ctx, err, "Failed to save transaction", slog.Int64("organization_id", organizationID))
		return nil, fmt.Errorf("failed to save transaction: %w", err)
	}
	txn.TransactionID = id
	s.InvalidateReports(ctx, organizationID)

	s.LogInfo(ctx, "Transaction created", slog.Int64("transaction_id", id), slog.Int64("account_id", txn.AccountID))
	return &txn, nil
}

func (s *transactionService) ListTransactions(ctx context.Context, organizationID int64, params dto.ListTransactionsParams) (*dto.ListTransactionsResponse, error) {
	if err := s.EnsureOrganization(ctx, organizationID); err != nil {
		return nil, err
	}
	txns, nextToken, err := s.transactionRepo.ListTransactionsPage(ctx, organizationID, params.Limit, params.NextToken)
	if err != nil {
		if !errors.Is(err, apperrors.ErrValidation) {
			s.LogError(ctx, err, "Failed to list transactions", slog.Int64("organization_id", organizationID))
		}
		return nil, err
	}
	return &dto.ListTransactionsResponse{
		Transactions: dto.ToListTransactionResponse(txns),
		NextToken:    nextToken,
	}, nil
}

func (s *transactionService) ListTransactionsByAccount(ctx context.Context, organizationID, accountID int64) ([]domain.Transaction, error) {
	if _, err := s.accountRepo.FindAccountByID(ctx, organizationID, accountID); err != nil {
		return nil, err
	}
	txns, err := s.transactionRepo.ListTransactions(ctx, portsrepo.TransactionFilter{
		OrganizationID: organizationID,
		AccountID:      &accountID,
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to list account transactions", slog.Int64("account_id", accountID))
		return nil, err
	}
	return txns, nil
}

// enteredOrigin classifies a directly entered transaction by its status.
// A marked entry is not linked to the invoice it names, which may not exist.
func enteredOrigin(status string) domain.Origin {
	if origin := domain.OriginFromStatus(status); origin.IsSettlement() {
		return domain.Origin{Kind: domain.OriginInvoiceSettlement}
	}
	return domain.OrganicOrigin()
}

// notFoundf rewrites a not-found lookup error with a specific message and passes others through.
func notFoundf(err error, format string, args ...any) error {
	if errors.Is(err, apperrors.ErrNotFound) {
		return fmt.Errorf("%w: %s", apperrors.ErrNotFound, fmt.Sprintf(format, args...))
	}
	return err
}
