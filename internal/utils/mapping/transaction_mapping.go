package mapping

import (
	"github.com/SscSPs/finacc/internal/core/domain"
	"github.com/SscSPs/finacc/internal/models"
)

// ToModelTransaction converts a domain Transaction to a model Transaction.
// The origin is always written explicitly.
func ToModelTransaction(d domain.Transaction) models.Transaction {
	kind := string(d.Origin.Kind)
	if kind == "" {
		kind = string(domain.OriginOrganic)
	}
	var invoiceID *int64
	if d.Origin.IsSettlement() && d.Origin.InvoiceID > 0 {
		id := d.Origin.InvoiceID
		invoiceID = &id
	}
	return models.Transaction{
		TransactionID:        d.TransactionID,
		OrganizationID:       d.OrganizationID,
		AccountID:            d.AccountID,
		CategoryID:           d.CategoryID,
		TransactionType:      string(d.TransactionType),
		Date:                 d.Date,
		Amount:               d.Amount,
		Status:               d.Status,
		Counterparty:         d.Counterparty,
		RelatedAccountID:     d.RelatedAccountID,
		RelatedTransactionID: d.RelatedTransactionID,
		OriginKind:           &kind,
		OriginInvoiceID:      invoiceID,
		AuditFields:          ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainTransaction converts a model Transaction to a domain Transaction.
// Rows without a recorded settlement origin are classified by their status text.
func ToDomainTransaction(m models.Transaction) domain.Transaction {
	return domain.Transaction{
		TransactionID:        m.TransactionID,
		OrganizationID:       m.OrganizationID,
		AccountID:            m.AccountID,
		CategoryID:           m.CategoryID,
		TransactionType:      domain.NormalizeFlowType(m.TransactionType),
		Date:                 domain.DateOnly(m.Date),
		Amount:               m.Amount,
		Status:               m.Status,
		Counterparty:         m.Counterparty,
		RelatedAccountID:     m.RelatedAccountID,
		RelatedTransactionID: m.RelatedTransactionID,
		Origin:               toDomainOrigin(m),
		AuditFields:          ToDomainAuditFields(m.AuditFields),
	}
}

func toDomainOrigin(m models.Transaction) domain.Origin {
	if m.OriginKind == nil || *m.OriginKind == "" {
		return domain.OriginFromStatus(m.Status)
	}
	if domain.OriginKind(*m.OriginKind) != domain.OriginInvoiceSettlement {
		return domain.OriginFromStatus(m.Status)
	}
	var invoiceID int64
	if m.OriginInvoiceID != nil {
		invoiceID = *m.OriginInvoiceID
	}
	return domain.SettlementOrigin(invoiceID)
}

// ToDomainTransactionSlice converts a slice of model Transactions to domain Transactions
func ToDomainTransactionSlice(ms []models.Transaction) []domain.Transaction {
	return toDomainSlice(ms, ToDomainTransaction)
}
