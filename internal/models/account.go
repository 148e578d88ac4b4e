package models

// Account is a row of the accounts table. Balances are never stored.
type Account struct {
	AccountID      int64  `db:"account_id"`
	OrganizationID int64  `db:"organization_id"`
	Name           string `db:"name"`
	AccountType    string `db:"account_type"`
	Currency       string `db:"currency"`
	AccountNumber  string `db:"account_number"`
	Description    string `db:"description"`
	IsActive       bool   `db:"is_active"`
	AuditFields
}
