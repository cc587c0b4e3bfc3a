package analytics

import (
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

// CategoryTotals holds expense spend per category. Spend without a category,
// or pointing at a category that no longer exists, lands in Uncategorized.
type CategoryTotals struct {
	ByCategory    map[uuid.UUID]decimal.Decimal
	Uncategorized decimal.Decimal
}

// CategoryAmount is one named slice of a breakdown.
type CategoryAmount struct {
	Category CategoryRef
	Name     string
	Amount   decimal.Decimal
}

// CategoryExpenseTotals buckets expense transactions by category. Every
// expense category starts with a zero bucket so it is present even without
// spend. The sum of all buckets equals ComputeTotals(transactions).TotalExpense.
func CategoryExpenseTotals(transactions []Transaction, categories []Category) CategoryTotals {
	known := categoryIndex(categories)
	totals := CategoryTotals{
		ByCategory:    make(map[uuid.UUID]decimal.Decimal, len(categories)),
		Uncategorized: decimal.Zero,
	}

	for _, c := range categories {
		if c.Type == TransactionTypeExpense {
			totals.ByCategory[c.ID] = decimal.Zero
		}
	}

	for _, tx := range transactions {
		if !tx.IsExpense() {
			continue
		}
		id, ok := tx.Category.ID()
		if _, exists := known[id]; !ok || !exists {
			totals.Uncategorized = totals.Uncategorized.Add(tx.Amount)
			continue
		}
		totals.ByCategory[id] = totals.ByCategory[id].Add(tx.Amount)
	}

	return totals
}

func (c CategoryTotals) Sum() decimal.Decimal {
	sum := c.Uncategorized
	for _, amount := range c.ByCategory {
		sum = sum.Add(amount)
	}
	return sum
}

// Breakdown returns the non-zero buckets with resolved names, ordered by name.
func (c CategoryTotals) Breakdown(categories []Category) []CategoryAmount {
	known := categoryIndex(categories)
	out := make([]CategoryAmount, 0, len(c.ByCategory)+1)

	for id, amount := range c.ByCategory {
		if amount.IsZero() {
			continue
		}
		name := UncategorizedName
		if cat, ok := known[id]; ok {
			name = cat.Name
		}
		out = append(out, CategoryAmount{Category: SomeCategory(id), Name: name, Amount: amount})
	}
	if !c.Uncategorized.IsZero() {
		out = append(out, CategoryAmount{Category: NoCategory(), Name: UncategorizedName, Amount: c.Uncategorized})
	}

	sortByName(out,
		func(a CategoryAmount) string { return a.Name },
		func(a CategoryAmount) CategoryRef { return a.Category },
	)
	return out
}
