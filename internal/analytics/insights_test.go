package analytics

import (
	"testing"
	"time"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func kinds(insights []Insight) []InsightKind {
	out := make([]InsightKind, len(insights))
	for i, in := range insights {
		out[i] = in.Kind
	}
	return out
}

// -- ClassifyVariance tests --

func TestClassifyVariance(t *testing.T) {
	tests := []struct {
		name     string
		budgeted string
		actual   string
		expected BudgetStatus
	}{
		{"over", "500", "600", BudgetStatusOver},
		{"under", "100", "50", BudgetStatusUnder},
		{"equal", "100", "100", BudgetStatusExact},
		{"within tolerance above", "100.00", "100.001", BudgetStatusExact},
		{"within tolerance below", "100.00", "99.996", BudgetStatusExact},
		{"at tolerance is over", "100.00", "100.005", BudgetStatusOver},
		{"at tolerance is under", "100.00", "99.995", BudgetStatusUnder},
		{"zero budget with spend", "0", "0.01", BudgetStatusOver},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ClassifyVariance(dec(tt.budgeted), dec(tt.actual)))
		})
	}
}

// -- GenerateInsights tests --

func TestGenerateInsights_OverSummaryThenRowsThenTotal(t *testing.T) {
	now := day(2025, time.March, 8)
	catA := expenseCategory("catA")
	catB := expenseCategory("catB")
	budgets := []Budget{budgetFor(catA, "500", march2025), budgetFor(catB, "100", march2025)}
	txs := []Transaction{
		expense("600", now, SomeCategory(catA.ID)),
		expense("50", now, SomeCategory(catB.ID)),
	}

	insights := GenerateInsights(budgets, txs, []Category{catA, catB}, march2025)

	require.Equal(t, []InsightKind{
		InsightOverBudgetSummary,
		InsightCategoryStatus,
		InsightCategoryStatus,
		InsightTotalExpenses,
	}, kinds(insights), spew.Sdump(insights))

	assert.Equal(t, 1, insights[0].Count)
	assert.False(t, insights[0].Plural)

	assert.Equal(t, "catA", insights[1].Row.CategoryName)
	assert.Equal(t, BudgetStatusOver, insights[1].Status)
	assertDecimal(t, "100", insights[1].Row.Variance)

	assert.Equal(t, "catB", insights[2].Row.CategoryName)
	assert.Equal(t, BudgetStatusUnder, insights[2].Status)
	assertDecimal(t, "-50", insights[2].Row.Variance)

	assertDecimal(t, "650", insights[3].Total)
}

func TestGenerateInsights_NoBudgetsNoExpenses(t *testing.T) {
	insights := GenerateInsights(nil, nil, nil, march2025)

	assert.Equal(t, []InsightKind{InsightNoBudgetsSet, InsightNoExpenses}, kinds(insights))
}

func TestGenerateInsights_BudgetsForOtherPeriodOnly(t *testing.T) {
	food := expenseCategory("Food")
	now := day(2025, time.March, 8)

	insights := GenerateInsights(
		[]Budget{budgetFor(food, "100", Period{Month: 1, Year: 2025})},
		[]Transaction{expense("20", now, SomeCategory(food.ID))},
		[]Category{food},
		march2025,
	)

	require.Equal(t, []InsightKind{InsightNoBudgetsSet, InsightTotalExpenses}, kinds(insights))
	assertDecimal(t, "20", insights[1].Total)
}

func TestGenerateInsights_UnderSummaryPlural(t *testing.T) {
	food := expenseCategory("Food")
	rent := expenseCategory("Rent")
	now := day(2025, time.March, 8)

	insights := GenerateInsights(
		[]Budget{budgetFor(food, "100", march2025), budgetFor(rent, "1000", march2025)},
		[]Transaction{expense("20", now, SomeCategory(food.ID))},
		[]Category{food, rent},
		march2025,
	)

	require.Equal(t, InsightUnderBudgetSummary, insights[0].Kind)
	assert.Equal(t, 2, insights[0].Count)
	assert.True(t, insights[0].Plural)
}

func TestGenerateInsights_AllExactHasNoSummary(t *testing.T) {
	food := expenseCategory("Food")
	now := day(2025, time.March, 8)

	insights := GenerateInsights(
		[]Budget{budgetFor(food, "100.00", march2025)},
		[]Transaction{expense("100.001", now, SomeCategory(food.ID))},
		[]Category{food},
		march2025,
	)

	require.Equal(t, []InsightKind{InsightCategoryStatus, InsightTotalExpenses}, kinds(insights))
	assert.Equal(t, BudgetStatusExact, insights[0].Status)
}

func TestGenerateInsights_BudgetsWithoutSpend(t *testing.T) {
	food := expenseCategory("Food")

	insights := GenerateInsights(
		[]Budget{budgetFor(food, "100", march2025)},
		nil,
		[]Category{food},
		march2025,
	)

	assert.Equal(t, []InsightKind{InsightUnderBudgetSummary, InsightCategoryStatus, InsightNoExpenses}, kinds(insights))
}

func TestGenerateInsights_DanglingSpendCountsAsOver(t *testing.T) {
	food := expenseCategory("Food")
	now := day(2025, time.March, 8)

	insights := GenerateInsights(
		[]Budget{budgetFor(food, "100", march2025)},
		[]Transaction{
			expense("10", now, SomeCategory(food.ID)),
			expense("5", now, SomeCategory(newID())),
		},
		[]Category{food},
		march2025,
	)

	require.Equal(t, InsightOverBudgetSummary, insights[0].Kind)
	assert.Equal(t, 1, insights[0].Count)
	assert.Equal(t, "Food", insights[1].Row.CategoryName)
	assert.Equal(t, UncategorizedName, insights[2].Row.CategoryName)
	assert.Equal(t, BudgetStatusOver, insights[2].Status)
}
