package domain

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// MoneyScale is the number of fractional digits amounts are stored with.
const MoneyScale = 2

// FitsMoneyScale reports whether d can be stored without rounding.
// Trailing zeros do not count, so 10.500 fits while 10.505 does not.
func FitsMoneyScale(d decimal.Decimal) bool {
	return d.Equal(d.Round(MoneyScale))
}

// AuditFields holds standard audit information for domain entities.
type AuditFields struct {
	CreatedAt     time.Time `json:"createdAt"`
	CreatedBy     string    `json:"createdBy"` // UserID Reference (JWT subject)
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
	LastUpdatedBy string    `json:"lastUpdatedBy"` // UserID Reference
}

// FlowType is the direction of money for categories, transactions and invoices.
type FlowType string

const (
	Income  FlowType = "INCOME"
	Expense FlowType = "EXPENSE"
)

// IsValid reports whether t is INCOME or EXPENSE.
func (t FlowType) IsValid() bool {
	return t == Income || t == Expense
}

// NormalizeFlowType upper-cases and trims s so "expense " and "EXPENSE" compare equal.
func NormalizeFlowType(s string) FlowType {
	return FlowType(strings.ToUpper(strings.TrimSpace(s)))
}

// DateOnly truncates t to a UTC calendar date.
func DateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
