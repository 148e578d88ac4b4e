package domain

// Organization is the tenant that owns every other entity.
type Organization struct {
	OrganizationID     int64  `json:"organizationID"`
	Name               string `json:"name"`
	LegalEntityName    string `json:"legalEntityName"`
	RegistrationNumber string `json:"registrationNumber"`
	TaxID              string `json:"taxID"`
	FullAddress        string `json:"fullAddress"`
	Email              string `json:"email"`
	Phone              string `json:"phone"`
	AuditFields
}
