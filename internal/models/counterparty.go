package models

// Counterparty is a row of the counterparties table.
type Counterparty struct {
	CounterpartyID int64  `db:"counterparty_id"`
	OrganizationID int64  `db:"organization_id"`
	Name           string `db:"name"`
	Type           string `db:"type"`
	Category       string `db:"category"`
	Phone          string `db:"phone"`
	Email          string `db:"email"`
	AuditFields
}
