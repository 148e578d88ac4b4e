package dto

import (
	"time"

	"github.com/SscSPs/finacc/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateAccountRequest defines the data needed to create a new account.
type CreateAccountRequest struct {
	Name          string             `json:"name" binding:"required,max=255"`
	AccountType   domain.AccountType `json:"accountType" binding:"required,oneof=cash currency payment individual"`
	Currency      string             `json:"currency" binding:"omitempty,len=3"` // Defaults to RUB
	AccountNumber string             `json:"accountNumber" binding:"max=64"`    // Optional
	Description   string             `json:"description"`                       // Optional
}

// UpdateAccountRequest defines the data allowed for updating an account.
// Use pointers to distinguish between zero-value updates and fields not provided.
type UpdateAccountRequest struct {
	Name          *string `json:"name" binding:"omitempty,min=1,max=255"`
	AccountNumber *string `json:"accountNumber"`
	Description   *string `json:"description"`
	IsActive      *bool   `json:"isActive"`
}

// AccountResponse defines the data returned for an account, including its derived balance.
type AccountResponse struct {
	AccountID      int64              `json:"accountID"`
	OrganizationID int64              `json:"organizationID"`
	Name           string             `json:"name"`
	AccountType    domain.AccountType `json:"accountType"`
	Currency       string             `json:"currency"`
	AccountNumber  string             `json:"accountNumber"`
	Description    string             `json:"description"`
	IsActive       bool               `json:"isActive"`
	Balance        decimal.Decimal    `json:"balance"`
	CreatedAt      time.Time          `json:"createdAt"`
	CreatedBy      string             `json:"createdBy"`
	LastUpdatedAt  time.Time          `json:"lastUpdatedAt"`
	LastUpdatedBy  string             `json:"lastUpdatedBy"`
}

// ToAccountResponse converts a domain.AccountWithBalance to AccountResponse DTO
func ToAccountResponse(acc *domain.AccountWithBalance) AccountResponse {
	return AccountResponse{
		AccountID:      acc.AccountID,
		OrganizationID: acc.OrganizationID,
		Name:           acc.Name,
		AccountType:    acc.AccountType,
		Currency:       acc.Currency,
		AccountNumber:  acc.AccountNumber,
		Description:    acc.Description,
		IsActive:       acc.IsActive,
		Balance:        acc.Balance,
		CreatedAt:      acc.CreatedAt,
		CreatedBy:      acc.CreatedBy,
		LastUpdatedAt:  acc.LastUpdatedAt,
		LastUpdatedBy:  acc.LastUpdatedBy,
	}
}

// ToListAccountResponse converts a slice of accounts to a slice of AccountResponse DTOs
func ToListAccountResponse(accounts []domain.AccountWithBalance) []AccountResponse {
	res := make([]AccountResponse, len(accounts))
	for i := range accounts {
		res[i] = ToAccountResponse(&accounts[i])
	}
	return res
}

// AccountBalanceResponse defines the data returned for an account balance query.
type AccountBalanceResponse struct {
	AccountID int64           `json:"accountID"`
	Balance   decimal.Decimal `json:"balance"`
}
