package actions

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"

	"github.com/carson-networks/finance-tracker/internal/storage/budget"
	"github.com/carson-networks/finance-tracker/internal/storage/category"
	"github.com/carson-networks/finance-tracker/internal/storage/transaction"
)

type mockCategoryWriter struct {
	mock.Mock
}

func (m *mockCategoryWriter) FindByID(ctx context.Context, id uuid.UUID) (*category.Category, error) {
	args := m.Called(ctx, id)
	c, _ := args.Get(0).(*category.Category)
	return c, args.Error(1)
}

func (m *mockCategoryWriter) List(ctx context.Context) ([]*category.Category, error) {
	args := m.Called(ctx)
	c, _ := args.Get(0).([]*category.Category)
	return c, args.Error(1)
}

func (m *mockCategoryWriter) Insert(ctx context.Context, create *category.CategoryCreate) (uuid.UUID, error) {
	args := m.Called(ctx, create)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

type mockTransactionWriter struct {
	mock.Mock
}

func (m *mockTransactionWriter) FindByID(ctx context.Context, id uuid.UUID) (*transaction.Transaction, error) {
	args := m.Called(ctx, id)
	t, _ := args.Get(0).(*transaction.Transaction)
	return t, args.Error(1)
}

func (m *mockTransactionWriter) List(ctx context.Context, filter *transaction.TransactionFilter) ([]*transaction.Transaction, error) {
	args := m.Called(ctx, filter)
	t, _ := args.Get(0).([]*transaction.Transaction)
	return t, args.Error(1)
}

func (m *mockTransactionWriter) LatestCreation(ctx context.Context) (time.Time, error) {
	args := m.Called(ctx)
	return args.Get(0).(time.Time), args.Error(1)
}

func (m *mockTransactionWriter) Insert(ctx context.Context, create *transaction.TransactionCreate) (uuid.UUID, error) {
	args := m.Called(ctx, create)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

func (m *mockTransactionWriter) Update(ctx context.Context, id uuid.UUID, update *transaction.TransactionUpdate) error {
	return m.Called(ctx, id, update).Error(0)
}

func (m *mockTransactionWriter) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

type mockBudgetWriter struct {
	mock.Mock
}

func (m *mockBudgetWriter) FindByID(ctx context.Context, id uuid.UUID) (*budget.Budget, error) {
	args := m.Called(ctx, id)
	b, _ := args.Get(0).(*budget.Budget)
	return b, args.Error(1)
}

func (m *mockBudgetWriter) List(ctx context.Context, filter *budget.BudgetFilter) ([]*budget.Budget, error) {
	args := m.Called(ctx, filter)
	b, _ := args.Get(0).([]*budget.Budget)
	return b, args.Error(1)
}

func (m *mockBudgetWriter) Insert(ctx context.Context, create *budget.BudgetCreate) (uuid.UUID, error) {
	args := m.Called(ctx, create)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

func (m *mockBudgetWriter) UpdateAmount(ctx context.Context, id uuid.UUID, amount decimal.Decimal) error {
	return m.Called(ctx, id, amount).Error(0)
}

func (m *mockBudgetWriter) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}
