package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Invoice is a row of the invoices table.
type Invoice struct {
	InvoiceID      int64           `db:"invoice_id"`
	OrganizationID int64           `db:"organization_id"`
	AccountID      int64           `db:"account_id"`
	CategoryID     int64           `db:"category_id"`
	CounterpartyID int64           `db:"counterparty_id"`
	InvoiceType    string          `db:"invoice_type"`
	InvoiceDate    time.Time       `db:"invoice_date"`
	PayUpDate      *time.Time      `db:"pay_up_date"`
	Amount         decimal.Decimal `db:"amount"`
	PaidAmount     decimal.Decimal `db:"paid_amount"`
	Status         string          `db:"status"`
	Comment        string          `db:"comment"`
	AuditFields
}
