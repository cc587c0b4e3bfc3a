package service

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/mock"

	"github.com/carson-networks/finance-tracker/internal/analytics"
	"github.com/carson-networks/finance-tracker/internal/operator/actions"
	"github.com/carson-networks/finance-tracker/internal/storage/budget"
	"github.com/carson-networks/finance-tracker/internal/storage/category"
	"github.com/carson-networks/finance-tracker/internal/storage/transaction"
)

type mockCategoryReader struct {
	mock.Mock
}

func (m *mockCategoryReader) FindByID(ctx context.Context, id uuid.UUID) (*category.Category, error) {
	args := m.Called(ctx, id)
	c, _ := args.Get(0).(*category.Category)
	return c, args.Error(1)
}

func (m *mockCategoryReader) List(ctx context.Context) ([]*category.Category, error) {
	args := m.Called(ctx)
	c, _ := args.Get(0).([]*category.Category)
	return c, args.Error(1)
}

type mockTransactionReader struct {
	mock.Mock
}

func (m *mockTransactionReader) FindByID(ctx context.Context, id uuid.UUID) (*transaction.Transaction, error) {
	args := m.Called(ctx, id)
	t, _ := args.Get(0).(*transaction.Transaction)
	return t, args.Error(1)
}

func (m *mockTransactionReader) List(ctx context.Context, filter *transaction.TransactionFilter) ([]*transaction.Transaction, error) {
	args := m.Called(ctx, filter)
	t, _ := args.Get(0).([]*transaction.Transaction)
	return t, args.Error(1)
}

func (m *mockTransactionReader) LatestCreation(ctx context.Context) (time.Time, error) {
	args := m.Called(ctx)
	return args.Get(0).(time.Time), args.Error(1)
}

type mockBudgetReader struct {
	mock.Mock
}

func (m *mockBudgetReader) FindByID(ctx context.Context, id uuid.UUID) (*budget.Budget, error) {
	args := m.Called(ctx, id)
	b, _ := args.Get(0).(*budget.Budget)
	return b, args.Error(1)
}

func (m *mockBudgetReader) List(ctx context.Context, filter *budget.BudgetFilter) ([]*budget.Budget, error) {
	args := m.Called(ctx, filter)
	b, _ := args.Get(0).([]*budget.Budget)
	return b, args.Error(1)
}

type mockProcessor struct {
	mock.Mock
}

func (m *mockProcessor) Process(ctx context.Context, action actions.IAction) error {
	return m.Called(ctx, action).Error(0)
}

type mockObserver struct {
	mock.Mock
}

func (m *mockObserver) TransactionRecorded(ctx context.Context, date time.Time) {
	m.Called(ctx, date)
}

func (m *mockObserver) BudgetChanged(ctx context.Context, p analytics.Period) {
	m.Called(ctx, p)
}
