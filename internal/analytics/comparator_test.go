package analytics

import (
	"testing"
	"time"

	"github.com/davecgh/go-spew/spew"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var march2025 = Period{Month: 2, Year: 2025}

func TestCompareBudgetToActual_Empty(t *testing.T) {
	rows := CompareBudgetToActual(nil, nil, nil, march2025)

	assert.NotNil(t, rows)
	assert.Empty(t, rows)
}

func TestCompareBudgetToActual_JoinsBudgetsAndSpend(t *testing.T) {
	now := day(2025, time.March, 5)
	food := expenseCategory("Food")
	travel := expenseCategory("Travel")
	budgets := []Budget{
		budgetFor(food, "300", march2025),
		budgetFor(travel, "200", march2025),
	}
	txs := []Transaction{
		expense("120", now, SomeCategory(food.ID)),
		expense("30.50", now, SomeCategory(food.ID)),
		expense("250", now, SomeCategory(travel.ID)),
	}

	rows := CompareBudgetToActual(budgets, txs, []Category{food, travel}, march2025)

	require.Len(t, rows, 2, spew.Sdump(rows))
	assert.Equal(t, "Food", rows[0].CategoryName)
	assertDecimal(t, "300", rows[0].Budgeted)
	assertDecimal(t, "150.50", rows[0].Actual)
	assertDecimal(t, "-149.50", rows[0].Variance)
	assert.Equal(t, "Travel", rows[1].CategoryName)
	assertDecimal(t, "50", rows[1].Variance)
}

func TestCompareBudgetToActual_IgnoresOtherPeriodsAndIncome(t *testing.T) {
	food := expenseCategory("Food")
	budgets := []Budget{
		budgetFor(food, "100", march2025),
		budgetFor(food, "999", Period{Month: 3, Year: 2025}),
	}
	txs := []Transaction{
		expense("10", day(2025, time.March, 1), SomeCategory(food.ID)),
		expense("80", day(2025, time.April, 1), SomeCategory(food.ID)),
		expense("80", day(2024, time.March, 1), SomeCategory(food.ID)),
		income("500", day(2025, time.March, 1)),
	}

	rows := CompareBudgetToActual(budgets, txs, []Category{food}, march2025)

	require.Len(t, rows, 1)
	assertDecimal(t, "100", rows[0].Budgeted)
	assertDecimal(t, "10", rows[0].Actual)
}

func TestCompareBudgetToActual_SyntheticRowForUnbudgetedSpend(t *testing.T) {
	now := day(2025, time.March, 5)
	food := expenseCategory("Food")
	fun := expenseCategory("Entertainment")

	rows := CompareBudgetToActual(
		[]Budget{budgetFor(food, "100", march2025)},
		[]Transaction{expense("42", now, SomeCategory(fun.ID))},
		[]Category{food, fun},
		march2025,
	)

	require.Len(t, rows, 2)
	assert.Equal(t, "Entertainment", rows[0].CategoryName)
	assertDecimal(t, "0", rows[0].Budgeted)
	assertDecimal(t, "42", rows[0].Actual)
	assertDecimal(t, "42", rows[0].Variance)
	assert.Equal(t, "Food", rows[1].CategoryName)
	assertDecimal(t, "0", rows[1].Actual)
}

func TestCompareBudgetToActual_DanglingReferenceNamedUncategorized(t *testing.T) {
	now := day(2025, time.March, 5)
	missing := newID()

	rows := CompareBudgetToActual(nil, []Transaction{
		expense("19.99", now, SomeCategory(missing)),
	}, nil, march2025)

	require.Len(t, rows, 1)
	assert.Equal(t, UncategorizedName, rows[0].CategoryName)
	id, ok := rows[0].Category.ID()
	assert.True(t, ok)
	assert.Equal(t, missing, id)
}

func TestCompareBudgetToActual_UncategorizedSpendSharesOneRow(t *testing.T) {
	now := day(2025, time.March, 5)

	rows := CompareBudgetToActual(nil, []Transaction{
		expense("1", now, NoCategory()),
		expense("2", now, NoCategory()),
	}, nil, march2025)

	require.Len(t, rows, 1)
	assert.True(t, rows[0].Category.IsNone())
	assertDecimal(t, "3", rows[0].Actual)
}

func TestCompareBudgetToActual_NonPositiveBudgetTreatedAsZero(t *testing.T) {
	food := expenseCategory("Food")
	b := budgetFor(food, "100", march2025)
	b.Amount = decimal.NewFromInt(-20)

	rows := CompareBudgetToActual([]Budget{b}, nil, []Category{food}, march2025)

	require.Len(t, rows, 1)
	assertDecimal(t, "0", rows[0].Budgeted)
	assertDecimal(t, "0", rows[0].Variance)
}

func TestCompareBudgetToActual_DuplicateBudgetLastWins(t *testing.T) {
	food := expenseCategory("Food")

	rows := CompareBudgetToActual([]Budget{
		budgetFor(food, "100", march2025),
		budgetFor(food, "250", march2025),
	}, nil, []Category{food}, march2025)

	require.Len(t, rows, 1)
	assertDecimal(t, "250", rows[0].Budgeted)
}

func TestCompareBudgetToActual_CaseInsensitiveOrder(t *testing.T) {
	cats := []Category{expenseCategory("utilities"), expenseCategory("Books"), expenseCategory("apparel")}
	var budgets []Budget
	for _, c := range cats {
		budgets = append(budgets, budgetFor(c, "10", march2025))
	}

	rows := CompareBudgetToActual(budgets, nil, cats, march2025)

	require.Len(t, rows, 3)
	assert.Equal(t, []string{"apparel", "Books", "utilities"},
		[]string{rows[0].CategoryName, rows[1].CategoryName, rows[2].CategoryName})
}

func TestCompareBudgetToActual_Conservation(t *testing.T) {
	now := day(2025, time.March, 20)
	food := expenseCategory("Food")
	rent := expenseCategory("Rent")
	txs := []Transaction{
		expense("10.10", now, SomeCategory(food.ID)),
		expense("900", now, SomeCategory(rent.ID)),
		expense("3.333", now, SomeCategory(newID())),
		expense("7", now, NoCategory()),
		expense("55", day(2025, time.February, 1), SomeCategory(food.ID)),
	}

	rows := CompareBudgetToActual([]Budget{budgetFor(food, "50", march2025)}, txs, []Category{food, rent}, march2025)

	sum := decimal.Zero
	for _, r := range rows {
		sum = sum.Add(r.Actual)
	}
	expected := ComputeTotals(InPeriod(txs, march2025)).TotalExpense
	assert.True(t, sum.Equal(expected), "sum %s != total %s\n%s", sum, expected, spew.Sdump(rows))
}
