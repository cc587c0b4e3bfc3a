package analytics

import (
	"sort"

	"github.com/shopspring/decimal"
)

// DefaultRecentLimit is the number of transactions shown in the recent view.
const DefaultRecentLimit = 5

// Totals holds period-wide sums. NetSavings is TotalIncome - TotalExpense
// and may be negative.
type Totals struct {
	TotalExpense decimal.Decimal
	TotalIncome  decimal.Decimal
	NetSavings   decimal.Decimal
}

func ComputeTotals(transactions []Transaction) Totals {
	expense := decimal.Zero
	income := decimal.Zero
	for _, tx := range transactions {
		switch tx.Type {
		case TransactionTypeExpense:
			expense = expense.Add(tx.Amount)
		case TransactionTypeIncome:
			income = income.Add(tx.Amount)
		}
	}

	return Totals{
		TotalExpense: expense,
		TotalIncome:  income,
		NetSavings:   income.Sub(expense),
	}
}

// RecentTransactions returns up to k transactions ordered by date, newest
// first. Transactions with equal dates keep their input order.
func RecentTransactions(transactions []Transaction, k int) []Transaction {
	if k <= 0 || len(transactions) == 0 {
		return []Transaction{}
	}

	sorted := make([]Transaction, len(transactions))
	copy(sorted, transactions)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date.After(sorted[j].Date)
	})

	if len(sorted) > k {
		sorted = sorted[:k]
	}
	return sorted
}

// InPeriod returns the transactions dated within p, preserving order.
func InPeriod(transactions []Transaction, p Period) []Transaction {
	var out []Transaction
	for _, tx := range transactions {
		if p.Contains(tx.Date) {
			out = append(out, tx)
		}
	}
	return out
}
