package accounting

import (
	"github.com/SscSPs/finacc/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ComputeBalance returns income minus expense over txns.
// Settlement transactions are real cash movements and are included.
func ComputeBalance(txns []domain.Transaction) decimal.Decimal {
	income := decimal.Zero
	expense := decimal.Zero
	for _, txn := range txns {
		switch domain.NormalizeFlowType(string(txn.TransactionType)) {
		case domain.Income:
			income = income.Add(txn.Amount)
		case domain.Expense:
			expense = expense.Add(txn.Amount)
		}
	}
	return income.Sub(expense)
}

// ComputeBalances groups txns by account and computes each balance.
// Every id in accountIDs is present in the result, zero when it has no transactions.
func ComputeBalances(accountIDs []int64, txns []domain.Transaction) map[int64]decimal.Decimal {
	grouped := make(map[int64][]domain.Transaction, len(accountIDs))
	for _, txn := range txns {
		grouped[txn.AccountID] = append(grouped[txn.AccountID], txn)
	}
	balances := make(map[int64]decimal.Decimal, len(accountIDs))
	for _, id := range accountIDs {
		balances[id] = ComputeBalance(grouped[id])
	}
	return balances
}
