package mapping

import (
	"github.com/SscSPs/finacc/internal/core/domain"
	"github.com/SscSPs/finacc/internal/models"
)

// ToModelAccount converts a domain Account to a model Account
func ToModelAccount(d domain.Account) models.Account {
	return models.Account{
		AccountID:      d.AccountID,
		OrganizationID: d.OrganizationID,
		Name:           d.Name,
		AccountType:    string(d.AccountType),
		Currency:       d.Currency,
		AccountNumber:  d.AccountNumber,
		Description:    d.Description,
		IsActive:       d.IsActive,
		AuditFields:    ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainAccount converts a model Account to a domain Account
func ToDomainAccount(m models.Account) domain.Account {
	return domain.Account{
		AccountID:      m.AccountID,
		OrganizationID: m.OrganizationID,
		Name:           m.Name,
		AccountType:    domain.AccountType(m.AccountType),
		Currency:       m.Currency,
		AccountNumber:  m.AccountNumber,
		Description:    m.Description,
		IsActive:       m.IsActive,
		AuditFields:    ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainAccountSlice converts a slice of model Accounts to a slice of domain Accounts
func ToDomainAccountSlice(ms []models.Account) []domain.Account {
	return toDomainSlice(ms, ToDomainAccount)
}
