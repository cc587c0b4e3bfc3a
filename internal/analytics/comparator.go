package analytics

import (
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

// ComparisonRow is budgeted versus actual spend for one category in a period.
// Variance is Actual - Budgeted, positive when over budget.
type ComparisonRow struct {
	Category     CategoryRef
	CategoryName string
	Budgeted     decimal.Decimal
	Actual       decimal.Decimal
	Variance     decimal.Decimal
}

// CompareBudgetToActual joins the budgets of period p with the expense
// transactions dated in p. There is one row per category reference touched
// by either side; spend in a category without a budget produces a row with a
// zero budget. Rows are ordered by category name.
//
// The sum of Actual over all rows equals the period's total expense.
func CompareBudgetToActual(budgets []Budget, transactions []Transaction, categories []Category, p Period) []ComparisonRow {
	known := categoryIndex(categories)
	index := make(map[CategoryRef]int)
	var rows []ComparisonRow

	rowFor := func(ref CategoryRef) *ComparisonRow {
		if i, ok := index[ref]; ok {
			return &rows[i]
		}
		rows = append(rows, ComparisonRow{
			Category:     ref,
			CategoryName: resolveName(known, ref),
			Budgeted:     decimal.Zero,
			Actual:       decimal.Zero,
		})
		index[ref] = len(rows) - 1
		return &rows[len(rows)-1]
	}

	for _, b := range budgets {
		if b.Period() != p {
			continue
		}
		row := rowFor(SomeCategory(b.CategoryID))
		row.Budgeted = nonNegative(b.Amount)
	}

	for _, tx := range transactions {
		if !tx.IsExpense() || !p.Contains(tx.Date) {
			continue
		}
		row := rowFor(tx.Category)
		row.Actual = row.Actual.Add(tx.Amount)
	}

	for i := range rows {
		rows[i].Variance = rows[i].Actual.Sub(rows[i].Budgeted)
	}

	sortByName(rows,
		func(r ComparisonRow) string { return r.CategoryName },
		func(r ComparisonRow) CategoryRef { return r.Category },
	)
	if rows == nil {
		return []ComparisonRow{}
	}
	return rows
}

func resolveName(known map[uuid.UUID]Category, ref CategoryRef) string {
	id, ok := ref.ID()
	if !ok {
		return UncategorizedName
	}
	if c, exists := known[id]; exists {
		return c.Name
	}
	return UncategorizedName
}

func nonNegative(d decimal.Decimal) decimal.Decimal {
	if d.IsPositive() {
		return d
	}
	return decimal.Zero
}
