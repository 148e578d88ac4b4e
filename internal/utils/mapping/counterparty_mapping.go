package mapping

import (
	"github.com/SscSPs/finacc/internal/core/domain"
	"github.com/SscSPs/finacc/internal/models"
)

// ToModelCounterparty converts a domain Counterparty to a model Counterparty
func ToModelCounterparty(d domain.Counterparty) models.Counterparty {
	return models.Counterparty{
		CounterpartyID: d.CounterpartyID,
		OrganizationID: d.OrganizationID,
		Name:           d.Name,
		Type:           d.Type,
		Category:       d.Category,
		Phone:          d.Phone,
		Email:          d.Email,
		AuditFields:    ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainCounterparty converts a model Counterparty to a domain Counterparty
func ToDomainCounterparty(m models.Counterparty) domain.Counterparty {
	return domain.Counterparty{
		CounterpartyID: m.CounterpartyID,
		OrganizationID: m.OrganizationID,
		Name:           m.Name,
		Type:           m.Type,
		Category:       m.Category,
		Phone:          m.Phone,
		Email:          m.Email,
		AuditFields:    ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainCounterpartySlice converts a slice of model Counterparties to domain Counterparties
func ToDomainCounterpartySlice(ms []models.Counterparty) []domain.Counterparty {
	return toDomainSlice(ms, ToDomainCounterparty)
}
