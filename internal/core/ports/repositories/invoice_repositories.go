package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/finacc/internal/core/domain"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// InvoiceFilter narrows an invoice listing by invoice date. Nil bounds are not applied.
type InvoiceFilter struct {
	OrganizationID int64
	From           *time.Time // Inclusive
	To             *time.Time // Inclusive
}

// InvoiceReader defines read operations for invoice data
type InvoiceReader interface {
	// FindInvoiceByID retrieves an invoice that belongs to organizationID.
	FindInvoiceByID(ctx context.Context, organizationID, invoiceID int64) (*domain.Invoice, error)

	// ListInvoices retrieves invoices matching filter ordered by invoice date, newest first.
	ListInvoices(ctx context.Context, filter InvoiceFilter) ([]domain.Invoice, error)
}

// InvoiceWriter defines write operations for invoice data
type InvoiceWriter interface {
	// SaveInvoice persists a new invoice and returns its identifier.
	SaveInvoice(ctx context.Context, invoice domain.Invoice) (int64, error)
}

// InvoiceTransactionSupport defines invoice operations that run inside a database transaction
type InvoiceTransactionSupport interface {
	// FindInvoiceByIDForUpdate selects an invoice and locks its row within tx.
	FindInvoiceByIDForUpdate(ctx context.Context, tx pgx.Tx, organizationID, invoiceID int64) (*domain.Invoice, error)

	// UpdateInvoicePaymentTx stores the paid amount and status of invoice within tx.
	// It fails with apperrors.ErrConflict when the stored paid amount no longer equals previousPaid.
	UpdateInvoicePaymentTx(ctx context.Context, tx pgx.Tx, invoice domain.Invoice, previousPaid decimal.Decimal) error
}

// InvoiceRepositoryFacade combines all invoice-related repository interfaces
type InvoiceRepositoryFacade interface {
	InvoiceReader
	InvoiceWriter
	InvoiceTransactionSupport
}

// InvoiceRepositoryWithTx extends InvoiceRepositoryFacade with transaction capabilities
type InvoiceRepositoryWithTx interface {
	InvoiceRepositoryFacade
	TransactionManager
}
