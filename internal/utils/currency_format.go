package utils

import (
	"github.com/SscSPs/finacc/internal/core/domain"
	"github.com/shopspring/decimal"
)

// FormatMoney formats an amount with the fraction digits amounts are stored with.
// Example: 12.3456 returns "12.35", 7 returns "7.00"
func FormatMoney(amount decimal.Decimal) string {
	return amount.StringFixed(domain.MoneyScale)
}
