package analytics

import (
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func newID() uuid.UUID {
	return uuid.Must(uuid.NewV4())
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 12, 0, 0, 0, time.UTC)
}

func expense(amount string, date time.Time, ref CategoryRef) Transaction {
	return Transaction{
		ID:          newID(),
		Amount:      dec(amount),
		Date:        date,
		Description: "expense " + amount,
		Type:        TransactionTypeExpense,
		Category:    ref,
	}
}

func income(amount string, date time.Time) Transaction {
	return Transaction{
		ID:          newID(),
		Amount:      dec(amount),
		Date:        date,
		Description: "income " + amount,
		Type:        TransactionTypeIncome,
	}
}

func expenseCategory(name string) Category {
	return Category{ID: newID(), Name: name, Type: TransactionTypeExpense}
}

func budgetFor(c Category, amount string, p Period) Budget {
	return Budget{ID: newID(), CategoryID: c.ID, Month: p.Month, Year: p.Year, Amount: dec(amount)}
}

func assertDecimal(t *testing.T, expected string, actual decimal.Decimal) {
	t.Helper()
	assert.True(t, dec(expected).Equal(actual), "expected %s, got %s", expected, actual.String())
}
