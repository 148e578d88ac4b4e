package handlers_test

import (
	"context"

	"github.com/SscSPs/finacc/internal/core/domain"
	portssvc "github.com/SscSPs/finacc/internal/core/ports/services"
	"github.com/SscSPs/finacc/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// --- Mock OrganizationService ---
type MockOrganizationService struct {
	mock.Mock
}

func (m *MockOrganizationService) GetOrganizationByID(ctx context.Context, organizationID int64) (*domain.Organization, error) {
	args := m.Called(ctx, organizationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Organization), args.Error(1)
}
func (m *MockOrganizationService) ListOrganizations(ctx context.Context, limit int, offset int) ([]domain.Organization, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Organization), args.Error(1)
}
func (m *MockOrganizationService) CreateOrganization(ctx context.Context, req dto.CreateOrganizationRequest, userID string) (*domain.Organization, error) {
	args := m.Called(ctx, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Organization), args.Error(1)
}
func (m *MockOrganizationService) UpdateOrganization(ctx context.Context, organizationID int64, req dto.UpdateOrganizationRequest, userID string) (*domain.Organization, error) {
	args := m.Called(ctx, organizationID, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Organization), args.Error(1)
}

var _ portssvc.OrganizationSvcFacade = (*MockOrganizationService)(nil)

// --- Mock AccountService ---
type MockAccountService struct {
	mock.Mock
}

func (m *MockAccountService) GetAccountByID(ctx context.Context, organizationID, accountID int64) (*domain.AccountWithBalance, error) {
	args := m.Called(ctx, organizationID, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AccountWithBalance), args.Error(1)
}
func (m *MockAccountService) ListAccounts(ctx context.Context, organizationID int64) ([]domain.AccountWithBalance, error) {
	args := m.Called(ctx, organizationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.AccountWithBalance), args.Error(1)
}
func (m *MockAccountService) CreateAccount(ctx context.Context, organizationID int64, req dto.CreateAccountRequest, userID string) (*domain.Account, error) {
	args := m.Called(ctx, organizationID, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}
func (m *MockAccountService) UpdateAccount(ctx context.Context, organizationID, accountID int64, req dto.UpdateAccountRequest, userID string) (*domain.AccountWithBalance, error) {
	args := m.Called(ctx, organizationID, accountID, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AccountWithBalance), args.Error(1)
}
func (m *MockAccountService) DeactivateAccount(ctx context.Context, organizationID, accountID int64, userID string) error {
	args := m.Called(ctx, organizationID, accountID, userID)
	return args.Error(0)
}
func (m *MockAccountService) ComputeBalance(ctx context.Context, organizationID, accountID int64) (decimal.Decimal, error) {
	args := m.Called(ctx, organizationID, accountID)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

var _ portssvc.AccountSvcFacade = (*MockAccountService)(nil)

// --- Mock CategoryService ---
type MockCategoryService struct {
	mock.Mock
}

func (m *MockCategoryService) CreateCategory(ctx context.Context, organizationID int64, req dto.CreateCategoryRequest, userID string) (*domain.Category, error) {
	args := m.Called(ctx, organizationID, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Category), args.Error(1)
}
func (m *MockCategoryService) ListCategories(ctx context.Context, organizationID int64) ([]domain.Category, error) {
	args := m.Called(ctx, organizationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Category), args.Error(1)
}
func (m *MockCategoryService) GetCategoryTree(ctx context.Context, organizationID int64) (domain.CategoryTree, error) {
	args := m.Called(ctx, organizationID)
	return args.Get(0).(domain.CategoryTree), args.Error(1)
}

var _ portssvc.CategorySvcFacade = (*MockCategoryService)(nil)

// --- Mock CounterpartyService ---
type MockCounterpartyService struct {
	mock.Mock
}

func (m *MockCounterpartyService) CreateCounterparty(ctx context.Context, organizationID int64, req dto.CreateCounterpartyRequest, userID string) (*domain.Counterparty, error) {
	args := m.Called(ctx, organizationID, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Counterparty), args.Error(1)
}
func (m *MockCounterpartyService) GetCounterpartyByID(ctx context.Context, organizationID, counterpartyID int64) (*domain.Counterparty, error) {
	args := m.Called(ctx, organizationID, counterpartyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Counterparty), args.Error(1)
}
func (m *MockCounterpartyService) ListCounterparties(ctx context.Context, organizationID int64) ([]domain.Counterparty, error) {
	args := m.Called(ctx, organizationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Counterparty), args.Error(1)
}
func (m *MockCounterpartyService) UpdateCounterparty(ctx context.Context, organizationID, counterpartyID int64, req dto.UpdateCounterpartyRequest, userID string) (*domain.Counterparty, error) {
	args := m.Called(ctx, organizationID, counterpartyID, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Counterparty), args.Error(1)
}

var _ portssvc.CounterpartySvcFacade = (*MockCounterpartyService)(nil)

// --- Mock TransactionService ---
type MockTransactionService struct {
	mock.Mock
}

func (m *MockTransactionService) CreateTransaction(ctx context.Context, organizationID int64, req dto.CreateTransactionRequest, userID string) (*domain.Transaction, error) {
	args := m.Called(ctx, organizationID, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}
func (m *MockTransactionService) ListTransactions(ctx context.Context, organizationID int64, params dto.ListTransactionsParams) (*dto.ListTransactionsResponse, error) {
	args := m.Called(ctx, organizationID, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ListTransactionsResponse), args.Error(1)
}
func (m *MockTransactionService) ListTransactionsByAccount(ctx context.Context, organizationID, accountID int64) ([]domain.Transaction, error) {
	args := m.Called(ctx, organizationID, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

var _ portssvc.TransactionSvcFacade = (*MockTransactionService)(nil)

// --- Mock InvoiceService ---
type MockInvoiceService struct {
	mock.Mock
}

func (m *MockInvoiceService) GetInvoice(ctx context.Context, organizationID, invoiceID int64) (*domain.InvoiceDetails, error) {
	args := m.Called(ctx, organizationID, invoiceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.InvoiceDetails), args.Error(1)
}
func (m *MockInvoiceService) ListInvoices(ctx context.Context, organizationID int64) ([]domain.InvoiceDetails, error) {
	args := m.Called(ctx, organizationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.InvoiceDetails), args.Error(1)
}
func (m *MockInvoiceService) CreateInvoice(ctx context.Context, organizationID int64, req dto.CreateInvoiceRequest, userID string) (*domain.InvoiceDetails, error) {
	args := m.Called(ctx, organizationID, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.InvoiceDetails), args.Error(1)
}
func (m *MockInvoiceService) PayInvoice(ctx context.Context, organizationID, invoiceID int64, req dto.PayInvoiceRequest, userID string) (*domain.InvoiceDetails, error) {
	args := m.Called(ctx, organizationID, invoiceID, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.InvoiceDetails), args.Error(1)
}

var _ portssvc.InvoiceSvcFacade = (*MockInvoiceService)(nil)

// --- Mock ReportingService ---
type MockReportingService struct {
	mock.Mock
}

func (m *MockReportingService) ProfitAndLoss(ctx context.Context, req domain.ReportRequest) (*domain.ProfitAndLoss, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ProfitAndLoss), args.Error(1)
}
func (m *MockReportingService) CashFlow(ctx context.Context, req domain.ReportRequest) (*domain.CashFlow, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CashFlow), args.Error(1)
}

var _ portssvc.ReportingService = (*MockReportingService)(nil)
