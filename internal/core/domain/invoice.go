package domain

import (
	"fmt"
	"time"

	"github.com/SscSPs/finacc/internal/apperrors"
	"github.com/shopspring/decimal"
)

// InvoiceStatus is the payment state of an invoice.
type InvoiceStatus string

const (
	InvoiceUnpaid  InvoiceStatus = "Не оплачен"
	InvoicePartial InvoiceStatus = "Оплачен частично"
	InvoicePaid    InvoiceStatus = "Оплачен" // Terminal
)

// IsValid reports whether s is one of the known statuses.
func (s InvoiceStatus) IsValid() bool {
	switch s {
	case InvoiceUnpaid, InvoicePartial, InvoicePaid:
		return true
	}
	return false
}

// Invoice is an amount owed to or by an organization.
type Invoice struct {
	InvoiceID      int64           `json:"invoiceID"`
	OrganizationID int64           `json:"organizationID"`
	AccountID      int64           `json:"accountID"`
	CategoryID     int64           `json:"categoryID"`
	CounterpartyID int64           `json:"counterpartyID"`
	InvoiceType    FlowType        `json:"invoiceType"`
	InvoiceDate    time.Time       `json:"invoiceDate"`
	PayUpDate      time.Time       `json:"payUpDate"`
	Amount         decimal.Decimal `json:"amount"`     // Total owed
	PaidAmount     decimal.Decimal `json:"paidAmount"` // Cumulative, 0 <= PaidAmount <= Amount
	Status         InvoiceStatus   `json:"status"`
	Comment        string          `json:"comment"`
	AuditFields
}

// Remaining returns the unpaid portion of the invoice.
func (i Invoice) Remaining() decimal.Decimal {
	return i.Amount.Sub(i.PaidAmount)
}

// IsSettled reports whether nothing remains to be paid.
func (i Invoice) IsSettled() bool {
	return !i.Remaining().IsPositive()
}

// ApplyPayment records a payment of amount and moves the status forward.
// The invoice is left untouched when the payment is rejected.
func (i *Invoice) ApplyPayment(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return fmt.Errorf("%w: payment amount must be greater than zero", apperrors.ErrValidation)
	}
	if !FitsMoneyScale(amount) {
		return fmt.Errorf("%w: payment amount %s has more than %d decimal places", apperrors.ErrValidation, amount.String(), MoneyScale)
	}
	if amount.GreaterThan(i.Remaining()) {
		return fmt.Errorf("%w: payment amount %s exceeds the remaining invoice balance %s",
			apperrors.ErrValidation, amount.String(), i.Remaining().String())
	}
	i.PaidAmount = i.PaidAmount.Add(amount)
	if i.IsSettled() {
		i.Status = InvoicePaid
	} else {
		i.Status = InvoicePartial
	}
	return nil
}

// InvoiceDetails is an invoice enriched with display names of the records it points to.
type InvoiceDetails struct {
	Invoice
	AccountName       string   `json:"accountName"`
	PayingAccountName string   `json:"payingAccountName,omitempty"` // Set on a payment response only
	CategoryName      string   `json:"categoryName"`
	CategoryType      FlowType `json:"categoryType"`
	CounterpartyName  string   `json:"counterpartyName"`
}
