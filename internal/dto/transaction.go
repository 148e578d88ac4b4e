package dto

import (
	"time"

	"github.com/SscSPs/finacc/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateTransactionRequest defines the data needed to record a transaction directly.
type CreateTransactionRequest struct {
	AccountID            int64           `json:"accountID" binding:"required"`
	CategoryID           int64           `json:"categoryID" binding:"required"`
	TransactionType      domain.FlowType `json:"transactionType" binding:"required,oneof=INCOME EXPENSE"`
	Date                 string          `json:"date" binding:"omitempty,datetime=2006-01-02"` // Defaults to today
	Amount               decimal.Decimal `json:"amount" binding:"decimal_gt0,money_scale"`
	Status               string          `json:"status" binding:"max=255"`
	Counterparty         string          `json:"counterparty" binding:"max=255"`
	RelatedAccountID     *int64          `json:"relatedAccountID"`
	RelatedTransactionID *int64          `json:"relatedTransactionID"`
}

// ListTransactionsParams defines query parameters for listing transactions.
type ListTransactionsParams struct {
	Limit     int     `form:"limit,default=20" binding:"min=1,max=100"`
	NextToken *string `form:"nextToken"`
}

// TransactionResponse defines the data returned for a transaction.
type TransactionResponse struct {
	TransactionID        int64             `json:"transactionID"`
	OrganizationID       int64             `json:"organizationID"`
	AccountID            int64             `json:"accountID"`
	CategoryID           int64             `json:"categoryID"`
	TransactionType      domain.FlowType   `json:"transactionType"`
	Date                 string            `json:"date"`
	Amount               decimal.Decimal   `json:"amount"`
	Status               string            `json:"status"`
	Counterparty         string            `json:"counterparty"`
	RelatedAccountID     *int64            `json:"relatedAccountID,omitempty"`
	RelatedTransactionID *int64            `json:"relatedTransactionID,omitempty"`
	Origin               domain.OriginKind `json:"origin"`
	InvoiceID            *int64            `json:"invoiceID,omitempty"` // Set for invoice settlements
	CreatedAt            time.Time         `json:"createdAt"`
	CreatedBy            string            `json:"createdBy"`
}

// ListTransactionsResponse wraps a page of transactions.
type ListTransactionsResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	NextToken    *string               `json:"nextToken,omitempty"`
}

// ToTransactionResponse converts a domain.Transaction to TransactionResponse DTO
func ToTransactionResponse(t *domain.Transaction) TransactionResponse {
	res := TransactionResponse{
		TransactionID:        t.TransactionID,
		OrganizationID:       t.OrganizationID,
		AccountID:            t.AccountID,
		CategoryID:           t.CategoryID,
		TransactionType:      t.TransactionType,
		Date:                 FormatDate(t.Date),
		Amount:               t.Amount,
		Status:               t.Status,
		Counterparty:         t.Counterparty,
		RelatedAccountID:     t.RelatedAccountID,
		RelatedTransactionID: t.RelatedTransactionID,
		Origin:               t.Origin.Kind,
		CreatedAt:            t.CreatedAt,
		CreatedBy:            t.CreatedBy,
	}
	if t.Origin.IsSettlement() && t.Origin.InvoiceID > 0 {
		invoiceID := t.Origin.InvoiceID
		res.InvoiceID = &invoiceID
	}
	return res
}

// ToListTransactionResponse converts a slice of domain.Transaction to DTOs
func ToListTransactionResponse(txns []domain.Transaction) []TransactionResponse {
	res := make([]TransactionResponse, len(txns))
	for i := range txns {
		res[i] = ToTransactionResponse(&txns[i])
	}
	return res
}
