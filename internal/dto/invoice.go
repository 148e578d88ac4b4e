package dto

import (
	"time"

	"github.com/SscSPs/finacc/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateInvoiceRequest defines the data needed to issue or register an invoice.
type CreateInvoiceRequest struct {
	AccountID      int64           `json:"accountID" binding:"required"`
	CategoryID     int64           `json:"categoryID" binding:"required"`
	CounterpartyID int64           `json:"counterpartyID" binding:"required"`
	InvoiceType    domain.FlowType `json:"invoiceType" binding:"required,oneof=INCOME EXPENSE"`
	InvoiceDate    string          `json:"invoiceDate" binding:"required,datetime=2006-01-02"`
	PayUpDate      string          `json:"payUpDate" binding:"omitempty,datetime=2006-01-02"`
	Amount         decimal.Decimal `json:"amount" binding:"decimal_gt0,money_scale"`
	Status         string          `json:"status"` // Optional, defaults to "Не оплачен"
	Comment        string          `json:"comment"`
}

// PayInvoiceRequest defines a payment against an invoice.
// The amount is validated by the settlement engine so every rule reports the same way.
type PayInvoiceRequest struct {
	AccountID int64           `json:"accountID" binding:"required"`
	Amount    decimal.Decimal `json:"amount"`
}

// InvoiceResponse defines the data returned for an invoice, with display names resolved.
type InvoiceResponse struct {
	InvoiceID         int64                `json:"invoiceID"`
	OrganizationID    int64                `json:"organizationID"`
	AccountID         int64                `json:"accountID"`
	AccountName       string               `json:"accountName"`
	PayingAccountName string               `json:"payingAccountName,omitempty"` // Payment responses only
	CategoryID        int64                `json:"categoryID"`
	CategoryName      string               `json:"categoryName"`
	CategoryType      domain.FlowType      `json:"categoryType"`
	CounterpartyID    int64                `json:"counterpartyID"`
	CounterpartyName  string               `json:"counterpartyName"`
	InvoiceType       domain.FlowType      `json:"invoiceType"`
	InvoiceDate       string               `json:"invoiceDate"`
	PayUpDate         string               `json:"payUpDate"`
	Amount            decimal.Decimal      `json:"amount"`
	PaidAmount        decimal.Decimal      `json:"paidAmount"`
	Remaining         decimal.Decimal      `json:"remaining"`
	Status            domain.InvoiceStatus `json:"status"`
	Comment           string               `json:"comment"`
	CreatedAt         time.Time            `json:"createdAt"`
	LastUpdatedAt     time.Time            `json:"lastUpdatedAt"`
}

// ToInvoiceResponse converts a domain.InvoiceDetails to InvoiceResponse DTO
func ToInvoiceResponse(d *domain.InvoiceDetails) InvoiceResponse {
	return InvoiceResponse{
		InvoiceID:         d.InvoiceID,
		OrganizationID:    d.OrganizationID,
		AccountID:         d.AccountID,
		AccountName:       d.AccountName,
		PayingAccountName: d.PayingAccountName,
		CategoryID:        d.CategoryID,
		CategoryName:      d.CategoryName,
		CategoryType:      d.CategoryType,
		CounterpartyID:    d.CounterpartyID,
		CounterpartyName:  d.CounterpartyName,
		InvoiceType:       d.InvoiceType,
		InvoiceDate:       FormatDate(d.InvoiceDate),
		PayUpDate:         FormatDate(d.PayUpDate),
		Amount:            d.Amount,
		PaidAmount:        d.PaidAmount,
		Remaining:         d.Remaining(),
		Status:            d.Status,
		Comment:           d.Comment,
		CreatedAt:         d.CreatedAt,
		LastUpdatedAt:     d.LastUpdatedAt,
	}
}

// ToListInvoiceResponse converts a slice of domain.InvoiceDetails to DTOs
func ToListInvoiceResponse(invoices []domain.InvoiceDetails) []InvoiceResponse {
	res := make([]InvoiceResponse, len(invoices))
	for i := range invoices {
		res[i] = ToInvoiceResponse(&invoices[i])
	}
	return res
}
