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
	"github.com/SscSPs/finacc/internal/utils/accounting"
	"github.com/shopspring/decimal"
)

// invoiceService implements the InvoiceSvcFacade interface
type invoiceService struct {
	BaseService
	invoiceRepo      portsrepo.InvoiceRepositoryWithTx
	transactionRepo  portsrepo.TransactionRepositoryFacade
	accountRepo      portsrepo.AccountRepositoryFacade
	categoryRepo     portsrepo.CategoryReader
	counterpartyRepo portsrepo.CounterpartyReader
	now              func() time.Time
}

// NewInvoiceService creates a new invoice service.
func NewInvoiceService(
	invoiceRepo portsrepo.InvoiceRepositoryWithTx,
	transactionRepo portsrepo.TransactionRepositoryFacade,
	accountRepo portsrepo.AccountRepositoryFacade,
	categoryRepo portsrepo.CategoryReader,
	counterpartyRepo portsrepo.CounterpartyReader,
	options ...BaseOption,
) portssvc.InvoiceSvcFacade {
	svc := &invoiceService{
		invoiceRepo:      invoiceRepo,
		transactionRepo:  transactionRepo,
		accountRepo:      accountRepo,
		categoryRepo:     categoryRepo,
		counterpartyRepo: counterpartyRepo,
		now:              time.Now,
	}
	svc.apply(options)
	return svc
}

var _ portssvc.InvoiceSvcFacade = (*invoiceService)(nil)

func (s *invoiceService) CreateInvoice(ctx context.Context, organizationID int64, req dto.CreateInvoiceRequest, userID string) (*domain.InvoiceDetails, error) {
	if err := s.EnsureOrganization(ctx, organizationID); err != nil {
		return nil, err
	}
	if !req.Amount.IsPositive() {
		return nil, fmt.Errorf("%w: invoice amount must be greater than zero", apperrors.ErrValidation)
	}
	if !domain.FitsMoneyScale(req.Amount) {
		return nil, fmt.Errorf("%w: invoice amount %s has more than %d decimal places",
			apperrors.ErrValidation, req.Amount.String(), domain.MoneyScale)
	}
	invoiceType := domain.NormalizeFlowType(string(req.InvoiceType))
	if !invoiceType.IsValid() {
		return nil, fmt.Errorf("%w: unknown invoice type %q", apperrors.ErrValidation, req.InvoiceType)
	}
	invoiceDate, err := dto.ParseDate(req.InvoiceDate)
	if err != nil {
		return nil, err
	}
	var payUpDate time.Time
	if req.PayUpDate != "" {
		if payUpDate, err = dto.ParseDate(req.PayUpDate); err != nil {
			return nil, err
		}
	}
	status := domain.InvoiceUnpaid
	if req.Status != "" {
		status = domain.InvoiceStatus(req.Status)
		if !status.IsValid() {
			return nil, fmt.Errorf("%w: unknown invoice status %q", apperrors.ErrValidation, req.Status)
		}
	}

	account, err := s.accountRepo.FindAccountByID(ctx, organizationID, req.AccountID)
	if err != nil {
		return nil, s.lookupError(ctx, err, "account", req.AccountID)
	}
	category, err := s.categoryRepo.FindCategoryByID(ctx, organizationID, req.CategoryID)
	if err != nil {
		return nil, s.lookupError(ctx, err, "category", req.CategoryID)
	}
	counterparty, err := s.counterpartyRepo.FindCounterpartyByID(ctx, organizationID, req.CounterpartyID)
	if err != nil {
		return nil, s.lookupError(ctx, err, "counterparty", req.CounterpartyID)
	}

	now := s.now().UTC()
	invoice := domain.Invoice{
		OrganizationID: organizationID,
		AccountID:      account.AccountID,
		CategoryID:     category.CategoryID,
		CounterpartyID: counterparty.CounterpartyID,
		InvoiceType:    invoiceType,
		InvoiceDate:    invoiceDate,
		PayUpDate:      payUpDate,
		Amount:         req.Amount,
		PaidAmount:     decimal.Zero,
		Status:         status,
		Comment:        req.Comment,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	id, err := s.invoiceRepo.SaveInvoice(ctx, invoice)
	if err != nil {
		s.LogError(ctx, err, "Failed to save invoice", slog.Int64("organization_id", organizationID))
		return nil, fmt.Errorf("failed to save invoice: %w", err)
	}
	invoice.InvoiceID = id
	s.InvalidateReports(ctx, organizationID)

	s.LogInfo(ctx, "Invoice created", slog.Int64("invoice_id", id), slog.Int64("organization_id", organizationID))
	return details(invoice, account.Name, category, counterparty.Name), nil
}

func (s *invoiceService) GetInvoice(ctx context.Context, organizationID, invoiceID int64) (*domain.InvoiceDetails, error) {
	invoice, err := s.invoiceRepo.FindInvoiceByID(ctx, organizationID, invoiceID)
	if err != nil {
		return nil, s.lookupError(ctx, err, "invoice", invoiceID)
	}
	return s.enrich(ctx, *invoice, newNameCache()), nil
}

func (s *invoiceService) ListInvoices(ctx context.Context, organizationID int64) ([]domain.InvoiceDetails, error) {
	if err := s.EnsureOrganization(ctx, organizationID); err != nil {
		return nil, err
	}
	invoices, err := s.invoiceRepo.ListInvoices(ctx, portsrepo.InvoiceFilter{OrganizationID: organizationID})
	if err != nil {
		s.LogError(ctx, err, "Failed to list invoices", slog.Int64("organization_id", organizationID))
		return nil, fmt.Errorf("failed to list invoices: %w", err)
	}

	names := newNameCache()
	res := make([]domain.InvoiceDetails, 0, len(invoices))
	for _, invoice := range invoices {
		res = append(res, *s.enrich(ctx, invoice, names))
	}
	return res, nil
}

// PayInvoice applies one payment. Preconditions are checked in a fixed order and the
// first failing one is reported. The settlement transaction and the invoice update are
// written in one database transaction with the invoice and paying account rows locked,
// so concurrent payments against either are serialized.
func (s *invoiceService) PayInvoice(ctx context.Context, organizationID, invoiceID int64, req dto.PayInvoiceRequest, userID string) (*domain.InvoiceDetails, error) {
	logger := s.GetLogger(ctx).With(
		slog.Int64("organization_id", organizationID),
		slog.Int64("invoice_id", invoiceID),
		slog.Int64("account_id", req.AccountID),
	)

	if !req.Amount.IsPositive() {
		return nil, fmt.Errorf("%w: payment amount must be greater than zero", apperrors.ErrValidation)
	}
	if !domain.FitsMoneyScale(req.Amount) {
		return nil, fmt.Errorf("%w: payment amount %s has more than %d decimal places",
			apperrors.ErrValidation, req.Amount.String(), domain.MoneyScale)
	}

	tx, err := s.invoiceRepo.Begin(ctx)
	if err != nil {
		logger.Error("Failed to begin settlement transaction", slog.String("error", err.Error()))
		return nil, err
	}
	defer s.invoiceRepo.Rollback(ctx, tx) // Ignored once committed

	invoice, err := s.invoiceRepo.FindInvoiceByIDForUpdate(ctx, tx, organizationID, invoiceID)
	if err != nil {
		return nil, s.lookupError(ctx, err, "invoice", invoiceID)
	}
	account, err := s.accountRepo.FindAccountByIDForUpdate(ctx, tx, organizationID, req.AccountID)
	if err != nil {
		return nil, s.lookupError(ctx, err, "account", req.AccountID)
	}
	category, err := s.categoryRepo.FindCategoryByID(ctx, organizationID, invoice.CategoryID)
	if err != nil {
		return nil, s.lookupError(ctx, err, "category", invoice.CategoryID)
	}
	counterparty, err := s.counterpartyRepo.FindCounterpartyByID(ctx, organizationID, invoice.CounterpartyID)
	if err != nil {
		return nil, s.lookupError(ctx, err, "counterparty", invoice.CounterpartyID)
	}

	updated := *invoice
	if err := updated.ApplyPayment(req.Amount); err != nil {
		return nil, err
	}

	invoiceType := domain.NormalizeFlowType(string(invoice.InvoiceType))
	if invoiceType == domain.Expense {
		txns, err := s.transactionRepo.ListTransactionsByAccountTx(ctx, tx, organizationID, account.AccountID)
		if err != nil {
			logger.Error("Failed to load paying account transactions", slog.String("error", err.Error()))
			return nil, err
		}
		balance := accounting.ComputeBalance(txns)
		if balance.LessThan(req.Amount) {
			return nil, fmt.Errorf("%w: account %d balance %s is less than payment %s",
				apperrors.ErrInsufficientFunds, account.AccountID, balance.String(), req.Amount.String())
		}
	}

	// Resolved before any write so the response never needs a read after commit.
	accountName := account.Name
	if invoice.AccountID != account.AccountID {
		accountName = s.accountName(ctx, organizationID, invoice.AccountID)
	}

	now := s.now().UTC()
	settlement := domain.Transaction{
		OrganizationID:  organizationID,
		AccountID:       account.AccountID,
		CategoryID:      invoice.CategoryID,
		TransactionType: invoiceType,
		Date:            domain.DateOnly(now),
		Amount:          req.Amount,
		Status:          domain.SettlementStatus(invoice.InvoiceID),
		Counterparty:    counterparty.Name,
		Origin:          domain.SettlementOrigin(invoice.InvoiceID),
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}
	transactionID, err := s.transactionRepo.SaveTransactionTx(ctx, tx, settlement)
	if err != nil {
		logger.Error("Failed to save settlement transaction", slog.String("error", err.Error()))
		return nil, err
	}

	updated.LastUpdatedAt = now
	updated.LastUpdatedBy = userID
	if err := s.invoiceRepo.UpdateInvoicePaymentTx(ctx, tx, updated, invoice.PaidAmount); err != nil {
		if !errors.Is(err, apperrors.ErrConflict) {
			logger.Error("Failed to update invoice payment", slog.String("error", err.Error()))
		}
		return nil, err
	}

	if err := s.invoiceRepo.Commit(ctx, tx); err != nil {
		logger.Error("Failed to commit settlement", slog.String("error", err.Error()))
		return nil, err
	}
	s.InvalidateReports(ctx, organizationID)

	logger.Info("Invoice payment applied",
		slog.Int64("transaction_id", transactionID),
		slog.String("amount", req.Amount.String()),
		slog.String("status", string(updated.Status)))
	res := details(updated, accountName, category, counterparty.Name)
	res.PayingAccountName = account.Name
	return res, nil
}

// lookupError wraps a failed lookup so not-found cases name the missing entity.
func (s *invoiceService) lookupError(ctx context.Context, err error, entity string, id int64) error {
	if errors.Is(err, apperrors.ErrNotFound) {
		return fmt.Errorf("%w: %s %d not found", apperrors.ErrNotFound, entity, id)
	}
	s.LogError(ctx, err, "Failed to load "+entity, slog.Int64(entity+"_id", id))
	return err
}

func (s *invoiceService) accountName(ctx context.Context, organizationID, accountID int64) string {
	account, err := s.accountRepo.FindAccountByID(ctx, organizationID, accountID)
	if err != nil {
		s.LogDebug(ctx, "Invoice account name unavailable", slog.Int64("account_id", accountID), slog.String("error", err.Error()))
		return ""
	}
	return account.Name
}

// nameCache avoids repeated lookups while enriching a list of invoices.
type nameCache struct {
	accounts       map[int64]string
	categories     map[int64]*domain.Category
	counterparties map[int64]string
}

func newNameCache() *nameCache {
	return &nameCache{
		accounts:       map[int64]string{},
		categories:     map[int64]*domain.Category{},
		counterparties: map[int64]string{},
	}
}

// enrich resolves display names. Missing references leave the name empty.
func (s *invoiceService) enrich(ctx context.Context, invoice domain.Invoice, names *nameCache) *domain.InvoiceDetails {
	org := invoice.OrganizationID

	accountName, ok := names.accounts[invoice.AccountID]
	if !ok {
		accountName = s.accountName(ctx, org, invoice.AccountID)
		names.accounts[invoice.AccountID] = accountName
	}

	category, ok := names.categories[invoice.CategoryID]
	if !ok {
		if c, err := s.categoryRepo.FindCategoryByID(ctx, org, invoice.CategoryID); err == nil {
			category = c
		}
		names.categories[invoice.CategoryID] = category
	}

	counterpartyName, ok := names.counterparties[invoice.CounterpartyID]
	if !ok {
		if cp, err := s.counterpartyRepo.FindCounterpartyByID(ctx, org, invoice.CounterpartyID); err == nil {
			counterpartyName = cp.Name
		}
		names.counterparties[invoice.CounterpartyID] = counterpartyName
	}

	return details(invoice, accountName, category, counterpartyName)
}

func details(invoice domain.Invoice, accountName string, category *domain.Category, counterpartyName string) *domain.InvoiceDetails {
	d := &domain.InvoiceDetails{
		Invoice:          invoice,
		AccountName:      accountName,
		CounterpartyName: counterpartyName,
	}
	if category != nil {
		d.CategoryName = category.Name
		d.CategoryType = category.CategoryType
	}
	return d
}
