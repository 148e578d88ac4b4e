package mapping

import (
	"time"

	"github.com/SscSPs/finacc/internal/core/domain"
	"github.com/SscSPs/finacc/internal/models"
)

// ToModelInvoice converts a domain Invoice to a model Invoice
func ToModelInvoice(d domain.Invoice) models.Invoice {
	var payUp *time.Time
	if !d.PayUpDate.IsZero() {
		t := d.PayUpDate
		payUp = &t
	}
	return models.Invoice{
		InvoiceID:      d.InvoiceID,
		OrganizationID: d.OrganizationID,
		AccountID:      d.AccountID,
		CategoryID:     d.CategoryID,
		CounterpartyID: d.CounterpartyID,
		InvoiceType:    string(d.InvoiceType),
		InvoiceDate:    d.InvoiceDate,
		PayUpDate:      payUp,
		Amount:         d.Amount,
		PaidAmount:     d.PaidAmount,
		Status:         string(d.Status),
		Comment:        d.Comment,
		AuditFields:    ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainInvoice converts a model Invoice to a domain Invoice
func ToDomainInvoice(m models.Invoice) domain.Invoice {
	var payUp time.Time
	if m.PayUpDate != nil {
		payUp = domain.DateOnly(*m.PayUpDate)
	}
	return domain.Invoice{
		InvoiceID:      m.InvoiceID,
		OrganizationID: m.OrganizationID,
		AccountID:      m.AccountID,
		CategoryID:     m.CategoryID,
		CounterpartyID: m.CounterpartyID,
		InvoiceType:    domain.NormalizeFlowType(m.InvoiceType),
		InvoiceDate:    domain.DateOnly(m.InvoiceDate),
		PayUpDate:      payUp,
		Amount:         m.Amount,
		PaidAmount:     m.PaidAmount,
		Status:         domain.InvoiceStatus(m.Status),
		Comment:        m.Comment,
		AuditFields:    ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainInvoiceSlice converts a slice of model Invoices to domain Invoices
func ToDomainInvoiceSlice(ms []models.Invoice) []domain.Invoice {
	return toDomainSlice(ms, ToDomainInvoice)
}
