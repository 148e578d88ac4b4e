package domain

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// OriginKind tells whether a transaction was entered directly or produced by an invoice payment.
type OriginKind string

const (
	OriginOrganic           OriginKind = "ORGANIC"
	OriginInvoiceSettlement OriginKind = "INVOICE_SETTLEMENT"
)

// SettlementStatusPrefix starts the human-readable status of every settlement transaction.
const SettlementStatusPrefix = "Оплата счета #"

// Origin records where a transaction came from. InvoiceID is set only for settlements.
type Origin struct {
	Kind      OriginKind `json:"kind"`
	InvoiceID int64      `json:"invoiceID,omitempty"`
}

// OrganicOrigin is the origin of a directly entered transaction.
func OrganicOrigin() Origin {
	return Origin{Kind: OriginOrganic}
}

// SettlementOrigin is the origin of a transaction posted by paying invoiceID.
func SettlementOrigin(invoiceID int64) Origin {
	return Origin{Kind: OriginInvoiceSettlement, InvoiceID: invoiceID}
}

// IsSettlement reports whether the transaction already has its revenue or expense
// recognized through an invoice.
func (o Origin) IsSettlement() bool {
	return o.Kind == OriginInvoiceSettlement
}

// SettlementStatus renders the status text written on a settlement transaction.
func SettlementStatus(invoiceID int64) string {
	return fmt.Sprintf("%s%d", SettlementStatusPrefix, invoiceID)
}

// OriginFromStatus derives an origin from the settlement marker in a status.
// The invoice id is 0 when the marker carries none.
// The marker match is case-insensitive; an unparsable invoice id still yields a settlement.
func OriginFromStatus(status string) Origin {
	lowered := strings.ToLower(status)
	prefix := strings.ToLower(SettlementStatusPrefix)
	if !strings.HasPrefix(lowered, prefix) {
		return OrganicOrigin()
	}
	rest := strings.TrimSpace(lowered[len(prefix):])
	end := 0
	for end < len(rest) && rest[end] >= '0' && rest[end] <= '9' {
		end++
	}
	id, _ := strconv.ParseInt(rest[:end], 10, 64)
	return SettlementOrigin(id)
}

// Transaction is a single money movement on an account.
type Transaction struct {
	TransactionID        int64           `json:"transactionID"`
	OrganizationID       int64           `json:"organizationID"`
	AccountID            int64           `json:"accountID"`
	CategoryID           int64           `json:"categoryID"`
	TransactionType      FlowType        `json:"transactionType"` // INCOME or EXPENSE
	Date                 time.Time       `json:"date"`            // Calendar date (UTC midnight)
	Amount               decimal.Decimal `json:"amount"`          // Always positive
	Status               string          `json:"status"`          // Free text
	Counterparty         string          `json:"counterparty"`    // Free text
	RelatedAccountID     *int64          `json:"relatedAccountID,omitempty"`
	RelatedTransactionID *int64          `json:"relatedTransactionID,omitempty"`
	Origin               Origin          `json:"origin"`
	AuditFields
}

// SignedAmount is +Amount for income and -Amount for expense.
func (t Transaction) SignedAmount() decimal.Decimal {
	if t.TransactionType == Expense {
		return t.Amount.Neg()
	}
	return t.Amount
}

// IsSettlement reports whether the transaction is an invoice payment, by its
// recorded origin or by the settlement marker in its status.
func (t Transaction) IsSettlement() bool {
	return t.Origin.IsSettlement() || OriginFromStatus(t.Status).IsSettlement()
}
