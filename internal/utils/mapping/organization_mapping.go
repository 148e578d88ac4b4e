package mapping

import (
	"github.com/SscSPs/finacc/internal/core/domain"
	"github.com/SscSPs/finacc/internal/models"
)

// ToModelOrganization converts a domain Organization to a model Organization
func ToModelOrganization(d domain.Organization) models.Organization {
	return models.Organization{
		OrganizationID:     d.OrganizationID,
		Name:               d.Name,
		LegalEntityName:    d.LegalEntityName,
		RegistrationNumber: d.RegistrationNumber,
		TaxID:              d.TaxID,
		FullAddress:        d.FullAddress,
		Email:              d.Email,
		Phone:              d.Phone,
		AuditFields:        ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainOrganization converts a model Organization to a domain Organization
func ToDomainOrganization(m models.Organization) domain.Organization {
	return domain.Organization{
		OrganizationID:     m.OrganizationID,
		Name:               m.Name,
		LegalEntityName:    m.LegalEntityName,
		RegistrationNumber: m.RegistrationNumber,
		TaxID:              m.TaxID,
		FullAddress:        m.FullAddress,
		Email:              m.Email,
		Phone:              m.Phone,
		AuditFields:        ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainOrganizationSlice converts a slice of model Organizations to domain Organizations
func ToDomainOrganizationSlice(ms []models.Organization) []domain.Organization {
	return toDomainSlice(ms, ToDomainOrganization)
}
