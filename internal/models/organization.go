package models

// Organization is a row of the organizations table.
type Organization struct {
	OrganizationID     int64  `db:"organization_id"`
	Name               string `db:"name"`
	LegalEntityName    string `db:"legal_entity_name"`
	RegistrationNumber string `db:"registration_number"`
	TaxID              string `db:"tax_id"`
	FullAddress        string `db:"full_address"`
	Email              string `db:"email"`
	Phone              string `db:"phone"`
	AuditFields
}
