package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/finacc/internal/apperrors"
	"github.com/SscSPs/finacc/internal/core/domain"
	portsrepo "github.com/SscSPs/finacc/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/finacc/internal/core/ports/services"
	"github.com/SscSPs/finacc/internal/dto"
	"github.com/SscSPs/finacc/internal/utils/accounting"
	"github.com/shopspring/decimal"
)

// accountService implements the AccountSvcFacade interface
type accountService struct {
	BaseService
	accountRepo     portsrepo.AccountRepositoryFacade
	transactionRepo portsrepo.TransactionReader
}

// NewAccountService creates a new account service with the provided options
func NewAccountService(accountRepo portsrepo.AccountRepositoryFacade, transactionRepo portsrepo.TransactionReader, options ...BaseOption) portssvc.AccountSvcFacade {
	svc := &accountService{
		accountRepo:     accountRepo,
		transactionRepo: transactionRepo,
	}
	svc.apply(options)
	return svc
}

// Ensure accountService implements the AccountSvcFacade interface
var _ portssvc.AccountSvcFacade = (*accountService)(nil)

func (s *accountService) CreateAccount(ctx context.Context, organizationID int64, req dto.CreateAccountRequest, userID string) (*domain.Account, error) {
	if err := s.EnsureOrganization(ctx, organizationID); err != nil {
		return nil, err
	}
	if !req.AccountType.IsValid() {
		return nil, fmt.Errorf("%w: unknown account type %q", apperrors.ErrValidation, req.AccountType)
	}

	currency := strings.ToUpper(strings.TrimSpace(req.Currency))
	if currency == "" {
		currency = domain.DefaultCurrency
	}

	now := time.Now().UTC()
	account := domain.Account{
		OrganizationID: organizationID,
		Name:           req.Name,
		AccountType:    req.AccountType,
		Currency:       currency,
		AccountNumber:  req.AccountNumber,
		Description:    req.Description,
		IsActive:       true, // Default to active on creation
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	id, err := s.accountRepo.SaveAccount(ctx, account)
	if err != nil {
		s.LogError(ctx, err, "Failed to save account in repository", slog.Int64("organization_id", organizationID))
		return nil, err
	}
	account.AccountID = id

	s.LogInfo(ctx, "Account created successfully in service", slog.Int64("account_id", id))
	return &account, nil
}

func (s *accountService) GetAccountByID(ctx context.Context, organizationID, accountID int64) (*domain.AccountWithBalance, error) {
	account, err := s.accountRepo.FindAccountByID(ctx, organizationID, accountID)
	if err != nil {
		// Don't log ErrNotFound, it is an expected outcome
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find account by ID in repository", slog.Int64("account_id", accountID))
		}
		return nil, err
	}

	balance, err := s.balance(ctx, organizationID, accountID)
	if err != nil {
		return nil, err
	}
	return &domain.AccountWithBalance{Account: *account, Balance: balance}, nil
}

// ListAccounts loads the organization's transactions once and derives every balance from them.
func (s *accountService) ListAccounts(ctx context.Context, organizationID int64) ([]domain.AccountWithBalance, error) {
	if err := s.EnsureOrganization(ctx, organizationID); err != nil {
		return nil, err
	}
	accounts, err := s.accountRepo.ListAccounts(ctx, organizationID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list accounts from repository", slog.Int64("organization_id", organizationID))
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	if len(accounts) == 0 {
		return []domain.AccountWithBalance{}, nil
	}

	txns, err := s.transactionRepo.ListTransactions(ctx, portsrepo.TransactionFilter{OrganizationID: organizationID})
	if err != nil {
		s.LogError(ctx, err, "Failed to list transactions for balances", slog.Int64("organization_id", organizationID))
		return nil, fmt.Errorf("failed to compute balances: %w", err)
	}

	ids := make([]int64, len(accounts))
	for i, a := range accounts {
		ids[i] = a.AccountID
	}
	balances := accounting.ComputeBalances(ids, txns)

	res := make([]domain.AccountWithBalance, len(accounts))
	for i, a := range accounts {
		res[i] = domain.AccountWithBalance{Account: a, Balance: balances[a.AccountID]}
	}
	s.LogDebug(ctx, "Accounts listed successfully from service", slog.Int("count", len(res)))
	return res, nil
}

func (s *accountService) UpdateAccount(ctx context.Context, organizationID, accountID int64, req dto.UpdateAccountRequest, userID string) (*domain.AccountWithBalance, error) {
	account, err := s.accountRepo.FindAccountByID(ctx, organizationID, accountID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find account for update", slog.Int64("account_id", accountID))
		}
		return nil, err
	}

	if req.Name != nil {
		account.Name = *req.Name
	}
	if req.AccountNumber != nil {
		account.AccountNumber = *req.AccountNumber
	}
	if req.Description != nil {
		account.Description = *req.Description
	}
	if req.IsActive != nil {
		account.IsActive = *req.IsActive
	}
	account.LastUpdatedAt = time.Now().UTC()
	account.LastUpdatedBy = userID

	if err := s.accountRepo.UpdateAccount(ctx, *account); err != nil {
		s.LogError(ctx, err, "Failed to update account in repository", slog.Int64("account_id", accountID))
		return nil, err
	}

	balance, err := s.balance(ctx, organizationID, accountID)
	if err != nil {
		return nil, err
	}
	s.LogInfo(ctx, "Account updated successfully", slog.Int64("account_id", accountID))
	return &domain.AccountWithBalance{Account: *account, Balance: balance}, nil
}

// DeactivateAccount marks an account as inactive.
func (s *accountService) DeactivateAccount(ctx context.Context, organizationID, accountID int64, userID string) error {
	err := s.accountRepo.DeactivateAccount(ctx, organizationID, accountID, userID, time.Now().UTC())
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) && !errors.Is(err, apperrors.ErrValidation) {
			s.LogError(ctx, err, "Failed to deactivate account in repository", slog.Int64("account_id", accountID))
		}
		// Propagate known errors (NotFound, Validation[already inactive]) and unexpected ones
		return err
	}

	s.LogInfo(ctx, "Account deactivated successfully in service", slog.Int64("account_id", accountID))
	return nil
}

// ComputeBalance returns income minus expense over all of the account's transactions,
// settlements included. An account without transactions has a zero balance.
func (s *accountService) ComputeBalance(ctx context.Context, organizationID, accountID int64) (decimal.Decimal, error) {
	if _, err := s.accountRepo.FindAccountByID(ctx, organizationID, accountID); err != nil {
		return decimal.Zero, err
	}
	return s.balance(ctx, organizationID, accountID)
}

func (s *accountService) balance(ctx context.Context, organizationID, accountID int64) (decimal.Decimal, error) {
	txns, err := s.transactionRepo.ListTransactions(ctx, portsrepo.TransactionFilter{
		OrganizationID: organizationID,
		AccountID:      &accountID,
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to list account transactions", slog.Int64("account_id", accountID))
		return decimal.Zero, fmt.Errorf("failed to compute balance: %w", err)
	}
	return accounting.ComputeBalance(txns), nil
}
