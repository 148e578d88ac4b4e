package dto

import (
	"time"

	"github.com/SscSPs/finacc/internal/core/domain"
)

// CreateOrganizationRequest defines the data needed to create a new organization.
type CreateOrganizationRequest struct {
	Name               string `json:"name" binding:"required,max=255"`
	LegalEntityName    string `json:"legalEntityName" binding:"max=255"`
	RegistrationNumber string `json:"registrationNumber" binding:"max=64"`
	TaxID              string `json:"taxID" binding:"max=64"`
	FullAddress        string `json:"fullAddress"`
	Email              string `json:"email" binding:"omitempty,email"`
	Phone              string `json:"phone" binding:"max=32"`
}

// UpdateOrganizationRequest defines the data allowed for updating an organization.
// Use pointers to distinguish between zero-value updates and fields not provided.
type UpdateOrganizationRequest struct {
	Name               *string `json:"name" binding:"omitempty,min=1,max=255"`
	LegalEntityName    *string `json:"legalEntityName"`
	RegistrationNumber *string `json:"registrationNumber"`
	TaxID              *string `json:"taxID"`
	FullAddress        *string `json:"fullAddress"`
	Email              *string `json:"email" binding:"omitempty,email"`
	Phone              *string `json:"phone"`
}

// ListOrganizationsParams defines query parameters for listing organizations.
type ListOrganizationsParams struct {
	Limit  int `form:"limit,default=20" binding:"min=1,max=100"`
	Offset int `form:"offset,default=0" binding:"min=0"`
}

// OrganizationResponse defines the data returned for an organization.
type OrganizationResponse struct {
	OrganizationID     int64     `json:"organizationID"`
	Name               string    `json:"name"`
	LegalEntityName    string    `json:"legalEntityName"`
	RegistrationNumber string    `json:"registrationNumber"`
	TaxID              string    `json:"taxID"`
	FullAddress        string    `json:"fullAddress"`
	Email              string    `json:"email"`
	Phone              string    `json:"phone"`
	CreatedAt          time.Time `json:"createdAt"`
	LastUpdatedAt      time.Time `json:"lastUpdatedAt"`
}

// ToOrganizationResponse converts a domain.Organization to OrganizationResponse DTO
func ToOrganizationResponse(org *domain.Organization) OrganizationResponse {
	return OrganizationResponse{
		OrganizationID:     org.OrganizationID,
		Name:               org.Name,
		LegalEntityName:    org.LegalEntityName,
		RegistrationNumber: org.RegistrationNumber,
		TaxID:              org.TaxID,
		FullAddress:        org.FullAddress,
		Email:              org.Email,
		Phone:              org.Phone,
		CreatedAt:          org.CreatedAt,
		LastUpdatedAt:      org.LastUpdatedAt,
	}
}

// ToListOrganizationResponse converts a slice of domain.Organization to DTOs
func ToListOrganizationResponse(orgs []domain.Organization) []OrganizationResponse {
	res := make([]OrganizationResponse, len(orgs))
	for i := range orgs {
		res[i] = ToOrganizationResponse(&orgs[i])
	}
	return res
}
