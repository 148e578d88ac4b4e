package domain

import (
	"github.com/shopspring/decimal"
)

// AccountType describes where the money of an account is held.
type AccountType string

const (
	AccountTypeCash       AccountType = "cash"
	AccountTypeCurrency   AccountType = "currency"
	AccountTypePayment    AccountType = "payment"
	AccountTypeIndividual AccountType = "individual"
)

// DefaultCurrency is used when an account is created without a currency.
const DefaultCurrency = "RUB"

// IsValid reports whether t is one of the known account types.
func (t AccountType) IsValid() bool {
	switch t {
	case AccountTypeCash, AccountTypeCurrency, AccountTypePayment, AccountTypeIndividual:
		return true
	}
	return false
}

// Account represents a money account within an organization.
// Its balance is never stored; see AccountWithBalance.
type Account struct {
	AccountID      int64       `json:"accountID"`      // Primary Key
	OrganizationID int64       `json:"organizationID"` // FK -> organizations.organization_id
	Name           string      `json:"name"`
	AccountType    AccountType `json:"accountType"`
	Currency       string      `json:"currency"`
	AccountNumber  string      `json:"accountNumber"` // Optional
	Description    string      `json:"description"`   // Optional
	IsActive       bool        `json:"isActive"`
	AuditFields
}

// AccountWithBalance pairs an account with its derived balance.
type AccountWithBalance struct {
	Account
	Balance decimal.Decimal `json:"balance"`
}
