package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is a row of the transactions table.
// OriginKind is NULL on rows written before origins were recorded.
type Transaction struct {
	TransactionID        int64           `db:"transaction_id"`
	OrganizationID       int64           `db:"organization_id"`
	AccountID            int64           `db:"account_id"`
	CategoryID           int64           `db:"category_id"`
	TransactionType      string          `db:"transaction_type"`
	Date                 time.Time       `db:"date"`
	Amount               decimal.Decimal `db:"amount"`
	Status               string          `db:"status"`
	Counterparty         string          `db:"counterparty"`
	RelatedAccountID     *int64          `db:"related_account_id"`
	RelatedTransactionID *int64          `db:"related_transaction_id"`
	OriginKind           *string         `db:"origin_kind"`
	OriginInvoiceID      *int64          `db:"origin_invoice_id"`
	AuditFields
}
