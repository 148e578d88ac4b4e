package accounting

import (
	"strings"

	"github.com/SscSPs/finacc/internal/core/domain"
)

// cogsMarkers are lower-case fragments that put an expense into cost of goods sold.
var cogsMarkers = []string{"cogs", "себестоим", "сырь", "материал"}

// ProfitAndLossBucket splits expenses for the P&L. Any activity type that
// mentions one of the COGS markers is COGS, everything else is OPEX.
func ProfitAndLossBucket(activityType string) domain.ExpenseBucket {
	lowered := strings.ToLower(activityType)
	for _, marker := range cogsMarkers {
		if strings.Contains(lowered, marker) {
			return domain.BucketCOGS
		}
	}
	return domain.BucketOPEX
}

// CashFlowActivity maps a category activity type to a Cash Flow section.
// Unknown or empty values fall back to OPERATING.
func CashFlowActivity(activityType string) domain.ActivityKind {
	switch strings.ToUpper(strings.TrimSpace(activityType)) {
	case "INVESTING":
		return domain.ActivityInvesting
	case "FINANCIAL":
		return domain.ActivityFinancial
	default:
		// OPERATING, ADMINISTRATIVE, MARKETING and COGS land here too.
		return domain.ActivityOperating
	}
}
