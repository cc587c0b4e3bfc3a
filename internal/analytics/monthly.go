package analytics

import (
	"sort"

	"github.com/shopspring/decimal"
)

type MonthTotal struct {
	Period Period
	Total  decimal.Decimal
}

// MonthlyExpenseTotals sums expense transactions per calendar month and
// returns the months that have any expense, oldest first.
func MonthlyExpenseTotals(transactions []Transaction) []MonthTotal {
	byPeriod := make(map[Period]decimal.Decimal)
	for _, tx := range transactions {
		if !tx.IsExpense() {
			continue
		}
		p := PeriodOf(tx.Date)
		byPeriod[p] = byPeriod[p].Add(tx.Amount)
	}

	out := make([]MonthTotal, 0, len(byPeriod))
	for p, total := range byPeriod {
		out = append(out, MonthTotal{Period: p, Total: total})
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Period.Before(out[j].Period)
	})
	return out
}
