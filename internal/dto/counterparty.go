package dto

import (
	"github.com/SscSPs/finacc/internal/core/domain"
)

// CreateCounterpartyRequest defines the data needed to create a counterparty.
type CreateCounterpartyRequest struct {
	Name     string `json:"name" binding:"required,max=255"`
	Type     string `json:"type" binding:"max=64"`
	Category string `json:"category" binding:"max=128"`
	Phone    string `json:"phone" binding:"max=32"`
	Email    string `json:"email" binding:"omitempty,email"`
}

// UpdateCounterpartyRequest applies only the fields that are present.
type UpdateCounterpartyRequest struct {
	Name     *string `json:"name" binding:"omitempty,min=1,max=255"`
	Type     *string `json:"type"`
	Category *string `json:"category"`
	Phone    *string `json:"phone"`
	Email    *string `json:"email" binding:"omitempty,email"`
}

// CounterpartyResponse defines the data returned for a counterparty.
type CounterpartyResponse struct {
	CounterpartyID int64  `json:"counterpartyID"`
	OrganizationID int64  `json:"organizationID"`
	Name           string `json:"name"`
	Type           string `json:"type"`
	Category       string `json:"category"`
	Phone          string `json:"phone"`
	Email          string `json:"email"`
}

// ToCounterpartyResponse converts a domain.Counterparty to CounterpartyResponse DTO
func ToCounterpartyResponse(c *domain.Counterparty) CounterpartyResponse {
	return CounterpartyResponse{
		CounterpartyID: c.CounterpartyID,
		OrganizationID: c.OrganizationID,
		Name:           c.Name,
		Type:           c.Type,
		Category:       c.Category,
		Phone:          c.Phone,
		Email:          c.Email,
	}
}

// ToListCounterpartyResponse converts a slice of domain.Counterparty to DTOs
func ToListCounterpartyResponse(cs []domain.Counterparty) []CounterpartyResponse {
	res := make([]CounterpartyResponse, len(cs))
	for i := range cs {
		res[i] = ToCounterpartyResponse(&cs[i])
	}
	return res
}
