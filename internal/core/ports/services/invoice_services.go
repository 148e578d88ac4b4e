package services

import (
	"context"

	"github.com/SscSPs/finacc/internal/core/domain"
	"github.com/SscSPs/finacc/internal/dto"
)

// InvoiceReaderSvc defines read operations for invoices
type InvoiceReaderSvc interface {
	// GetInvoice retrieves an invoice with display names resolved.
	GetInvoice(ctx context.Context, organizationID, invoiceID int64) (*domain.InvoiceDetails, error)

	// ListInvoices retrieves the organization's invoices, newest first.
	ListInvoices(ctx context.Context, organizationID int64) ([]domain.InvoiceDetails, error)
}

// InvoiceWriterSvc defines write operations for invoices
type InvoiceWriterSvc interface {
	// CreateInvoice registers a new invoice with nothing paid.
	CreateInvoice(ctx context.Context, organizationID int64, req dto.CreateInvoiceRequest, userID string) (*domain.InvoiceDetails, error)
}

// InvoiceSettlementSvc applies payments to invoices
type InvoiceSettlementSvc interface {
	// PayInvoice validates a payment, posts the settlement transaction and advances
	// the invoice status, all in one database transaction.
	PayInvoice(ctx context.Context, organizationID, invoiceID int64, req dto.PayInvoiceRequest, userID string) (*domain.InvoiceDetails, error)
}

// InvoiceSvcFacade combines all invoice-related service interfaces
type InvoiceSvcFacade interface {
	InvoiceReaderSvc
	InvoiceWriterSvc
	InvoiceSettlementSvc
}
