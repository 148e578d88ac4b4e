package domain

// Counterparty is a customer or supplier of an organization.
type Counterparty struct {
	CounterpartyID int64  `json:"counterpartyID"`
	OrganizationID int64  `json:"organizationID"`
	Name           string `json:"name"`
	Type           string `json:"type"`     // Optional
	Category       string `json:"category"` // Optional
	Phone          string `json:"phone"`    // Optional
	Email          string `json:"email"`    // Optional
	AuditFields
}
