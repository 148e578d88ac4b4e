package services_test

import (
	"context"
	"time"

	"github.com/SscSPs/finacc/internal/core/domain"
	portsrepo "github.com/SscSPs/finacc/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// fakeTx stands in for a database transaction; only its identity matters.
type fakeTx struct {
	pgx.Tx
}

// --- Organization ---

type MockOrganizationRepository struct {
	mock.Mock
}

func (m *MockOrganizationRepository) FindOrganizationByID(ctx context.Context, organizationID int64) (*domain.Organization, error) {
	args := m.Called(ctx, organizationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Organization), args.Error(1)
}

func (m *MockOrganizationRepository) ListOrganizations(ctx context.Context, limit int, offset int) ([]domain.Organization, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Organization), args.Error(1)
}

func (m *MockOrganizationRepository) SaveOrganization(ctx context.Context, org domain.Organization) (int64, error) {
	args := m.Called(ctx, org)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockOrganizationRepository) UpdateOrganization(ctx context.Context, org domain.Organization) error {
	args := m.Called(ctx, org)
	return args.Error(0)
}

// --- Account ---

type MockAccountRepository struct {
	mock.Mock
}

func (m *MockAccountRepository) FindAccountByID(ctx context.Context, organizationID, accountID int64) (*domain.Account, error) {
	args := m.Called(ctx, organizationID, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountRepository) ListAccounts(ctx context.Context, organizationID int64) ([]domain.Account, error) {
	args := m.Called(ctx, organizationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}

func (m *MockAccountRepository) SaveAccount(ctx context.Context, account domain.Account) (int64, error) {
	args := m.Called(ctx, account)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockAccountRepository) UpdateAccount(ctx context.Context, account domain.Account) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

func (m *MockAccountRepository) DeactivateAccount(ctx context.Context, organizationID, accountID int64, userID string, now time.Time) error {
	args := m.Called(ctx, organizationID, accountID, userID, now)
	return args.Error(0)
}

func (m *MockAccountRepository) FindAccountByIDForUpdate(ctx context.Context, tx pgx.Tx, organizationID, accountID int64) (*domain.Account, error) {
	args := m.Called(ctx, tx, organizationID, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

// --- Category ---

type MockCategoryRepository struct {
	mock.Mock
}

func (m *MockCategoryRepository) FindCategoryByID(ctx context.Context, organizationID, categoryID int64) (*domain.Category, error) {
	args := m.Called(ctx, organizationID, categoryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Category), args.Error(1)
}

func (m *MockCategoryRepository) ListCategories(ctx context.Context, organizationID int64) ([]domain.Category, error) {
	args := m.Called(ctx, organizationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Category), args.Error(1)
}

func (m *MockCategoryRepository) SaveCategory(ctx context.Context, category domain.Category) (int64, error) {
	args := m.Called(ctx, category)
	return args.Get(0).(int64), args.Error(1)
}

// --- Counterparty ---

type MockCounterpartyRepository struct {
	mock.Mock
}

func (m *MockCounterpartyRepository) FindCounterpartyByID(ctx context.Context, organizationID, counterpartyID int64) (*domain.Counterparty, error) {
	args := m.Called(ctx, organizationID, counterpartyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Counterparty), args.Error(1)
}

func (m *MockCounterpartyRepository) ListCounterparties(ctx context.Context, organizationID int64) ([]domain.Counterparty, error) {
	args := m.Called(ctx, organizationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Counterparty), args.Error(1)
}

func (m *MockCounterpartyRepository) SaveCounterparty(ctx context.Context, counterparty domain.Counterparty) (int64, error) {
	args := m.Called(ctx, counterparty)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCounterpartyRepository) UpdateCounterparty(ctx context.Context, counterparty domain.Counterparty) error {
	args := m.Called(ctx, counterparty)
	return args.Error(0)
}

// --- Transaction ---

type MockTransactionRepository struct {
	mock.Mock
}

func (m *MockTransactionRepository) FindTransactionByID(ctx context.Context, organizationID, transactionID int64) (*domain.Transaction, error) {
	args := m.Called(ctx, organizationID, transactionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) ListTransactions(ctx context.Context, filter portsrepo.TransactionFilter) ([]domain.Transaction, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) ListTransactionsPage(ctx context.Context, organizationID int64, limit int, nextToken *string) ([]domain.Transaction, *string, error) {
	args := m.Called(ctx, organizationID, limit, nextToken)
	var txns []domain.Transaction
	if args.Get(0) != nil {
		txns = args.Get(0).([]domain.Transaction)
	}
	var token *string
	if args.Get(1) != nil {
		token = args.Get(1).(*string)
	}
	return txns, token, args.Error(2)
}

func (m *MockTransactionRepository) SaveTransaction(ctx context.Context, txn domain.Transaction) (int64, error) {
	args := m.Called(ctx, txn)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockTransactionRepository) ListTransactionsByAccountTx(ctx context.Context, tx pgx.Tx, organizationID, accountID int64) ([]domain.Transaction, error) {
	args := m.Called(ctx, tx, organizationID, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) SaveTransactionTx(ctx context.Context, tx pgx.Tx, txn domain.Transaction) (int64, error) {
	args := m.Called(ctx, tx, txn)
	return args.Get(0).(int64), args.Error(1)
}

// --- Invoice ---

type MockInvoiceRepository struct {
	mock.Mock
}

func (m *MockInvoiceRepository) Begin(ctx context.Context) (pgx.Tx, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(pgx.Tx), args.Error(1)
}

func (m *MockInvoiceRepository) Commit(ctx context.Context, tx pgx.Tx) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

func (m *MockInvoiceRepository) Rollback(ctx context.Context, tx pgx.Tx) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

func (m *MockInvoiceRepository) FindInvoiceByID(ctx context.Context, organizationID, invoiceID int64) (*domain.Invoice, error) {
	args := m.Called(ctx, organizationID, invoiceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Invoice), args.Error(1)
}

func (m *MockInvoiceRepository) ListInvoices(ctx context.Context, filter portsrepo.InvoiceFilter) ([]domain.Invoice, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Invoice), args.Error(1)
}

func (m *MockInvoiceRepository) SaveInvoice(ctx context.Context, invoice domain.Invoice) (int64, error) {
	args := m.Called(ctx, invoice)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockInvoiceRepository) FindInvoiceByIDForUpdate(ctx context.Context, tx pgx.Tx, organizationID, invoiceID int64) (*domain.Invoice, error) {
	args := m.Called(ctx, tx, organizationID, invoiceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Invoice), args.Error(1)
}

func (m *MockInvoiceRepository) UpdateInvoicePaymentTx(ctx context.Context, tx pgx.Tx, invoice domain.Invoice, previousPaid decimal.Decimal) error {
	args := m.Called(ctx, tx, invoice, previousPaid)
	return args.Error(0)
}

// --- Reporting ---

type MockReportingRepository struct {
	mock.Mock
}

func (m *MockReportingRepository) LoadReportSnapshot(ctx context.Context, organizationID int64, from, to time.Time) (*portsrepo.ReportSnapshot, error) {
	args := m.Called(ctx, organizationID, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*portsrepo.ReportSnapshot), args.Error(1)
}

type MockReportCache struct {
	mock.Mock
}

func (m *MockReportCache) Get(ctx context.Context, organizationID int64, key string, dest any) (bool, error) {
	args := m.Called(ctx, organizationID, key, dest)
	return args.Bool(0), args.Error(1)
}

func (m *MockReportCache) Set(ctx context.Context, organizationID int64, key string, value any) error {
	args := m.Called(ctx, organizationID, key, value)
	return args.Error(0)
}

func (m *MockReportCache) Invalidate(ctx context.Context, organizationID int64) error {
	args := m.Called(ctx, organizationID)
	return args.Error(0)
}

var (
	_ portsrepo.OrganizationRepositoryFacade = (*MockOrganizationRepository)(nil)
	_ portsrepo.AccountRepositoryFacade      = (*MockAccountRepository)(nil)
	_ portsrepo.CategoryRepositoryFacade     = (*MockCategoryRepository)(nil)
	_ portsrepo.CounterpartyRepositoryFacade = (*MockCounterpartyRepository)(nil)
	_ portsrepo.TransactionRepositoryFacade  = (*MockTransactionRepository)(nil)
	_ portsrepo.InvoiceRepositoryWithTx      = (*MockInvoiceRepository)(nil)
	_ portsrepo.ReportingRepository          = (*MockReportingRepository)(nil)
	_ portsrepo.ReportCache                  = (*MockReportCache)(nil)
)
