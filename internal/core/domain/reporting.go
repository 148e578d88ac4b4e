package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/SscSPs/finacc/internal/apperrors"
	"github.com/shopspring/decimal"
)

// Granularity selects the width of a report period.
type Granularity string

const (
	GranularityMonth   Granularity = "month"
	GranularityQuarter Granularity = "quarter"
	GranularityHalf    Granularity = "half"
	GranularityYear    Granularity = "year"
)

// ParseGranularity accepts month, quarter, half (or half-year) and year. Empty means month.
func ParseGranularity(s string) (Granularity, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "month":
		return GranularityMonth, nil
	case "quarter":
		return GranularityQuarter, nil
	case "half", "half-year", "halfyear":
		return GranularityHalf, nil
	case "year":
		return GranularityYear, nil
	}
	return "", fmt.Errorf("%w: unknown granularity %q", apperrors.ErrValidation, s)
}

// ActivityKind is the Cash Flow activity a category belongs to.
type ActivityKind string

const (
	ActivityOperating ActivityKind = "OPERATING"
	ActivityInvesting ActivityKind = "INVESTING"
	ActivityFinancial ActivityKind = "FINANCIAL"
)

// ExpenseBucket is the P&L split of expenses.
type ExpenseBucket string

const (
	BucketCOGS ExpenseBucket = "COGS"
	BucketOPEX ExpenseBucket = "OPEX"
)

// ReportRequest carries the inputs shared by every report.
type ReportRequest struct {
	OrganizationID int64
	Granularity    Granularity
	From           time.Time // Inclusive calendar date
	To             time.Time // Inclusive calendar date
}

// CategorySeries is one revenue-by-category row.
type CategorySeries struct {
	Name   string            `json:"name"`
	Values []decimal.Decimal `json:"values"`
	Total  decimal.Decimal   `json:"total"`
}

// ProfitAndLoss is an accrual-basis report; every series is parallel to Periods.
type ProfitAndLoss struct {
	Granularity       Granularity       `json:"granularity"`
	From              time.Time         `json:"from"`
	To                time.Time         `json:"to"`
	Periods           []string          `json:"periods"`
	Revenue           []decimal.Decimal `json:"revenue"`
	RevenueByCategory []CategorySeries  `json:"revenueByCategory"`
	COGS              []decimal.Decimal `json:"cogs"`
	GrossProfit       []decimal.Decimal `json:"grossProfit"`
	GrossMargin       []decimal.Decimal `json:"grossMargin"`
	OPEX              []decimal.Decimal `json:"opex"`
	OperatingProfit   []decimal.Decimal `json:"operatingProfit"`
	OperatingMargin   []decimal.Decimal `json:"operatingMargin"`
	NetProfit         []decimal.Decimal `json:"netProfit"`
	NetMargin         []decimal.Decimal `json:"netMargin"`
}

// CashFlow is a cash-basis report; every series is parallel to Periods.
type CashFlow struct {
	Granularity      Granularity       `json:"granularity"`
	From             time.Time         `json:"from"`
	To               time.Time         `json:"to"`
	Periods          []string          `json:"periods"`
	BeginningBalance []decimal.Decimal `json:"beginningBalance"` // Same scalar in every period
	OperatingIncome  []decimal.Decimal `json:"operatingIncome"`
	OperatingExpense []decimal.Decimal `json:"operatingExpense"`
	InvestingIncome  []decimal.Decimal `json:"investingIncome"`
	InvestingExpense []decimal.Decimal `json:"investingExpense"`
	FinancialIncome  []decimal.Decimal `json:"financialIncome"`
	FinancialExpense []decimal.Decimal `json:"financialExpense"`
	NetChange        []decimal.Decimal `json:"netChange"`
	EndingBalance    []decimal.Decimal `json:"endingBalance"`
}

// ReportRow is one metric of a ReportTable.
type ReportRow struct {
	Key    string            `json:"key"`
	Label  string            `json:"label"`
	Values []decimal.Decimal `json:"values"`
}

// ReportTable lays a report out as one row per metric and one column per period.
type ReportTable struct {
	Title   string      `json:"title"`
	Periods []string    `json:"periods"`
	Rows    []ReportRow `json:"rows"`
}

// Table flattens the P&L into display rows.
func (r ProfitAndLoss) Table() ReportTable {
	rows := []ReportRow{{Key: "revenue", Label: "Revenue", Values: r.Revenue}}
	for _, c := range r.RevenueByCategory {
		rows = append(rows, ReportRow{Key: "revenue:" + c.Name, Label: "  " + c.Name, Values: c.Values})
	}
	rows = append(rows,
		ReportRow{Key: "cogs", Label: "Cost of goods sold", Values: r.COGS},
		ReportRow{Key: "grossProfit", Label: "Gross profit", Values: r.GrossProfit},
		ReportRow{Key: "grossMargin", Label: "Gross margin, %", Values: r.GrossMargin},
		ReportRow{Key: "opex", Label: "Operating expenses", Values: r.OPEX},
		ReportRow{Key: "operatingProfit", Label: "Operating profit", Values: r.OperatingProfit},
		ReportRow{Key: "operatingMargin", Label: "Operating margin, %", Values: r.OperatingMargin},
		ReportRow{Key: "netProfit", Label: "Net profit", Values: r.NetProfit},
		ReportRow{Key: "netMargin", Label: "Net margin, %", Values: r.NetMargin},
	)
	return ReportTable{Title: "Profit and Loss", Periods: r.Periods, Rows: rows}
}

// Table flattens the Cash Flow into display rows.
func (r CashFlow) Table() ReportTable {
	return ReportTable{
		Title:   "Cash Flow",
		Periods: r.Periods,
		Rows: []ReportRow{
			{Key: "beginningBalance", Label: "Beginning balance", Values: r.BeginningBalance},
			{Key: "operatingIncome", Label: "Operating inflow", Values: r.OperatingIncome},
			{Key: "operatingExpense", Label: "Operating outflow", Values: r.OperatingExpense},
			{Key: "investingIncome", Label: "Investing inflow", Values: r.InvestingIncome},
			{Key: "investingExpense", Label: "Investing outflow", Values: r.InvestingExpense},
			{Key: "financialIncome", Label: "Financing inflow", Values: r.FinancialIncome},
			{Key: "financialExpense", Label: "Financing outflow", Values: r.FinancialExpense},
			{Key: "netChange", Label: "Net change", Values: r.NetChange},
			{Key: "endingBalance", Label: "Ending balance", Values: r.EndingBalance},
		},
	}
}
