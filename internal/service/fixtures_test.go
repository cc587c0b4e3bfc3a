package service

import (
	"testing"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/finance-tracker/internal/storage"
)

type testDeps struct {
	categories   *mockCategoryReader
	transactions *mockTransactionReader
	budgets      *mockBudgetReader
	processor    *mockProcessor
	store        *storage.Storage
}

func newTestDeps(t *testing.T) *testDeps {
	t.Helper()
	d := &testDeps{
		categories:   new(mockCategoryReader),
		transactions: new(mockTransactionReader),
		budgets:      new(mockBudgetReader),
		processor:    new(mockProcessor),
	}
	d.store = &storage.Storage{
		Categories:   d.categories,
		Transactions: d.transactions,
		Budgets:      d.budgets,
	}
	t.Cleanup(func() {
		d.categories.AssertExpectations(t)
		d.transactions.AssertExpectations(t)
		d.budgets.AssertExpectations(t)
		d.processor.AssertExpectations(t)
	})
	return d
}

func newID() uuid.UUID {
	return uuid.Must(uuid.NewV4())
}
