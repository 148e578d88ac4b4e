package accounting

import (
	"sort"
	"time"

	"github.com/SscSPs/finacc/internal/core/domain"
	"github.com/shopspring/decimal"
)

// UncategorizedName labels revenue whose category cannot be resolved.
const UncategorizedName = "—"

var hundred = decimal.NewFromInt(100)

// BuildProfitAndLoss aggregates an accrual-basis P&L.
// Invoices count at their invoice date whatever their payment state. Transactions
// count only when they are not invoice settlements, since the invoice already
// recognized that revenue or expense.
func BuildProfitAndLoss(req domain.ReportRequest, invoices []domain.Invoice, txns []domain.Transaction, categories map[int64]domain.Category) domain.ProfitAndLoss {
	periods := PeriodKeys(req.From, req.To, req.Granularity)
	idx := periodIndex(periods)
	n := len(periods)

	revenue := zeros(n)
	cogs := zeros(n)
	opex := zeros(n)
	byCategory := make(map[string][]decimal.Decimal)

	record := func(flow domain.FlowType, categoryID int64, date time.Time, amount decimal.Decimal) {
		if !InRange(date, req.From, req.To) {
			return
		}
		i, ok := idx[PeriodKey(date, req.Granularity)]
		if !ok {
			return
		}
		category, found := categories[categoryID]

		switch domain.NormalizeFlowType(string(flow)) {
		case domain.Income:
			revenue[i] = revenue[i].Add(amount)
			name := UncategorizedName
			if found && category.Name != "" {
				name = category.Name
			}
			series, ok := byCategory[name]
			if !ok {
				series = zeros(n)
				byCategory[name] = series
			}
			series[i] = series[i].Add(amount)
		case domain.Expense:
			activity := ""
			if found {
				activity = category.ActivityType
			}
			if ProfitAndLossBucket(activity) == domain.BucketCOGS {
				cogs[i] = cogs[i].Add(amount)
			} else {
				opex[i] = opex[i].Add(amount)
			}
		}
	}

	for _, inv := range invoices {
		record(inv.InvoiceType, inv.CategoryID, inv.InvoiceDate, inv.Amount)
	}
	for _, txn := range txns {
		if txn.IsSettlement() {
			continue
		}
		record(txn.TransactionType, txn.CategoryID, txn.Date, txn.Amount)
	}

	report := domain.ProfitAndLoss{
		Granularity:       req.Granularity,
		From:              domain.DateOnly(req.From),
		To:                domain.DateOnly(req.To),
		Periods:           periods,
		Revenue:           revenue,
		RevenueByCategory: sortedCategorySeries(byCategory),
		COGS:              cogs,
		GrossProfit:       zeros(n),
		GrossMargin:       zeros(n),
		OPEX:              opex,
		OperatingProfit:   zeros(n),
		OperatingMargin:   zeros(n),
		NetProfit:         zeros(n),
		NetMargin:         zeros(n),
	}
	for i := range periods {
		gross := revenue[i].Sub(cogs[i])
		operating := gross.Sub(opex[i])
		report.GrossProfit[i] = gross
		report.OperatingProfit[i] = operating
		report.NetProfit[i] = operating
		report.GrossMargin[i] = margin(gross, revenue[i])
		report.OperatingMargin[i] = margin(operating, revenue[i])
		report.NetMargin[i] = margin(operating, revenue[i])
	}
	return report
}

// margin returns value as a percentage of revenue, rounded to two places, or 0 without revenue.
func margin(value, revenue decimal.Decimal) decimal.Decimal {
	if revenue.IsZero() {
		return decimal.Zero
	}
	return value.Div(revenue).Mul(hundred).Round(2)
}

// sortedCategorySeries orders categories by total revenue, largest first; ties by name.
func sortedCategorySeries(byCategory map[string][]decimal.Decimal) []domain.CategorySeries {
	out := make([]domain.CategorySeries, 0, len(byCategory))
	for name, values := range byCategory {
		out = append(out, domain.CategorySeries{Name: name, Values: values, Total: sum(values)})
	}
	sort.Slice(out, func(a, b int) bool {
		if c := out[a].Total.Cmp(out[b].Total); c != 0 {
			return c > 0
		}
		return out[a].Name < out[b].Name
	})
	return out
}

func zeros(n int) []decimal.Decimal {
	s := make([]decimal.Decimal, n)
	for i := range s {
		s[i] = decimal.Zero
	}
	return s
}

func sum(values []decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, v := range values {
		total = total.Add(v)
	}
	return total
}
