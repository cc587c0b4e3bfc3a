package analytics

import (
	"github.com/shopspring/decimal"
)

type InsightKind string

const (
	InsightOverBudgetSummary  InsightKind = "OverBudgetSummary"
	InsightUnderBudgetSummary InsightKind = "UnderBudgetSummary"
	InsightCategoryStatus     InsightKind = "CategoryStatus"
	InsightNoBudgetsSet       InsightKind = "NoBudgetsSet"
	InsightTotalExpenses      InsightKind = "TotalExpenses"
	InsightNoExpenses         InsightKind = "NoExpenses"
)

type BudgetStatus string

const (
	BudgetStatusOver  BudgetStatus = "OVER"
	BudgetStatusUnder BudgetStatus = "UNDER"
	BudgetStatusExact BudgetStatus = "EXACT"
)

// ExactTolerance is half a minor currency unit. Spend closer than this to the
// budget counts as on budget.
var ExactTolerance = decimal.New(5, -3)

// Insight is one structured record in an insight sequence. Which fields are
// meaningful depends on Kind:
//
//	OverBudgetSummary, UnderBudgetSummary: Count, Plural
//	CategoryStatus:                        Row, Status
//	TotalExpenses:                         Total
type Insight struct {
	Kind   InsightKind
	Count  int
	Plural bool
	Row    ComparisonRow
	Status BudgetStatus
	Total  decimal.Decimal
}

func ClassifyVariance(budgeted, actual decimal.Decimal) BudgetStatus {
	diff := actual.Sub(budgeted)
	if diff.Abs().LessThan(ExactTolerance) {
		return BudgetStatusExact
	}
	if diff.IsPositive() {
		return BudgetStatusOver
	}
	return BudgetStatusUnder
}

// GenerateInsights builds the insight sequence for period p:
//
//  1. NoBudgetsSet when no budget targets p. Otherwise an optional
//     OverBudgetSummary (or, failing that, UnderBudgetSummary) followed by
//     one CategoryStatus per comparison row in name order.
//  2. NoExpenses when the period's expense total is zero, else TotalExpenses.
func GenerateInsights(budgets []Budget, transactions []Transaction, categories []Category, p Period) []Insight {
	periodTransactions := InPeriod(transactions, p)
	total := ComputeTotals(periodTransactions).TotalExpense

	var out []Insight
	if !hasBudgetFor(budgets, p) {
		out = append(out, Insight{Kind: InsightNoBudgetsSet})
	} else {
		out = append(out, budgetInsights(CompareBudgetToActual(budgets, periodTransactions, categories, p))...)
	}

	if total.IsZero() {
		out = append(out, Insight{Kind: InsightNoExpenses})
	} else {
		out = append(out, Insight{Kind: InsightTotalExpenses, Total: total})
	}
	return out
}

func budgetInsights(rows []ComparisonRow) []Insight {
	statuses := make([]Insight, len(rows))
	over, under := 0, 0
	for i, row := range rows {
		status := ClassifyVariance(row.Budgeted, row.Actual)
		switch status {
		case BudgetStatusOver:
			over++
		case BudgetStatusUnder:
			under++
		}
		statuses[i] = Insight{Kind: InsightCategoryStatus, Row: row, Status: status}
	}

	out := make([]Insight, 0, len(rows)+1)
	switch {
	case over > 0:
		out = append(out, Insight{Kind: InsightOverBudgetSummary, Count: over, Plural: over != 1})
	case under > 0:
		out = append(out, Insight{Kind: InsightUnderBudgetSummary, Count: under, Plural: under != 1})
	}
	return append(out, statuses...)
}

func hasBudgetFor(budgets []Budget, p Period) bool {
	for _, b := range budgets {
		if b.Period() == p {
			return true
		}
	}
	return false
}
