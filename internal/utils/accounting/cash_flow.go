package accounting

import (
	"github.com/SscSPs/finacc/internal/core/domain"
	"github.com/shopspring/decimal"
)

// BuildCashFlow aggregates a cash-basis Cash Flow statement from transactions.
// Invoice settlements are left out entirely, including from the beginning balance.
func BuildCashFlow(req domain.ReportRequest, txns []domain.Transaction, categories map[int64]domain.Category) domain.CashFlow {
	periods := PeriodKeys(req.From, req.To, req.Granularity)
	idx := periodIndex(periods)
	n := len(periods)
	from := domain.DateOnly(req.From)

	report := domain.CashFlow{
		Granularity:      req.Granularity,
		From:             from,
		To:               domain.DateOnly(req.To),
		Periods:          periods,
		BeginningBalance: zeros(n),
		OperatingIncome:  zeros(n),
		OperatingExpense: zeros(n),
		InvestingIncome:  zeros(n),
		InvestingExpense: zeros(n),
		FinancialIncome:  zeros(n),
		FinancialExpense: zeros(n),
		NetChange:        zeros(n),
		EndingBalance:    zeros(n),
	}

	beginning := decimal.Zero
	for _, txn := range txns {
		if txn.IsSettlement() {
			continue
		}
		flow := domain.NormalizeFlowType(string(txn.TransactionType))
		if !flow.IsValid() {
			continue
		}
		if domain.DateOnly(txn.Date).Before(from) {
			beginning = beginning.Add(txn.SignedAmount())
			continue
		}
		if !InRange(txn.Date, req.From, req.To) {
			continue
		}
		i, ok := idx[PeriodKey(txn.Date, req.Granularity)]
		if !ok {
			continue
		}

		var inflow, outflow []decimal.Decimal
		switch CashFlowActivity(categories[txn.CategoryID].ActivityType) {
		case domain.ActivityInvesting:
			inflow, outflow = report.InvestingIncome, report.InvestingExpense
		case domain.ActivityFinancial:
			inflow, outflow = report.FinancialIncome, report.FinancialExpense
		default:
			inflow, outflow = report.OperatingIncome, report.OperatingExpense
		}
		if flow == domain.Income {
			inflow[i] = inflow[i].Add(txn.Amount)
		} else {
			outflow[i] = outflow[i].Add(txn.Amount)
		}
	}

	running := beginning
	for i := range periods {
		net := report.OperatingIncome[i].Sub(report.OperatingExpense[i]).
			Add(report.InvestingIncome[i].Sub(report.InvestingExpense[i])).
			Add(report.FinancialIncome[i].Sub(report.FinancialExpense[i]))
		running = running.Add(net)
		report.BeginningBalance[i] = beginning
		report.NetChange[i] = net
		report.EndingBalance[i] = running
	}
	return report
}
