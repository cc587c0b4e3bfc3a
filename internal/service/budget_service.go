package service

import (
	"context"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/finance-tracker/internal/analytics"
	"github.com/carson-networks/finance-tracker/internal/operator/actions"
	"github.com/carson-networks/finance-tracker/internal/storage"
	"github.com/carson-networks/finance-tracker/internal/storage/budget"
)

const (
	minBudgetYear = 2000
	maxBudgetYear = 2100
)

// BudgetObserver is told about every period whose budgets were created,
// changed or removed.
type BudgetObserver interface {
	BudgetChanged(ctx context.Context, p analytics.Period)
}

// BudgetService handles budget business logic.
type BudgetService struct {
	storage  *storage.Storage
	operator actionProcessor
	observer BudgetObserver
}

func NewBudgetService(store *storage.Storage, operator actionProcessor) *BudgetService {
	return &BudgetService{storage: store, operator: operator}
}

func (s *BudgetService) SetObserver(observer BudgetObserver) {
	s.observer = observer
}

// CreateBudget stores a budget for a category and period. A second budget
// for the same pair fails with sqlerr.ErrConflict.
func (s *BudgetService) CreateBudget(ctx context.Context, b Budget) (uuid.UUID, error) {
	if err := validatePeriod(b.Period); err != nil {
		return uuid.Nil, err
	}
	if err := validateBudgetAmount(b.Amount); err != nil {
		return uuid.Nil, err
	}

	action := &actions.CreateBudget{
		CategoryID: b.CategoryID,
		Month:      b.Period.Month,
		Year:       b.Period.Year,
		Amount:     b.Amount,
	}
	if err := s.operator.Process(ctx, action); err != nil {
		return uuid.Nil, err
	}

	s.notify(ctx, b.Period)
	return action.CreatedID, nil
}

func (s *BudgetService) UpdateBudget(ctx context.Context, id uuid.UUID, amount decimal.Decimal) error {
	if err := validateBudgetAmount(amount); err != nil {
		return err
	}

	action := &actions.UpdateBudget{ID: id, Amount: amount}
	if err := s.operator.Process(ctx, action); err != nil {
		return err
	}

	s.notify(ctx, analytics.Period{Month: action.Month, Year: action.Year})
	return nil
}

// DeleteBudget removes a budget. Spending in its category then counts
// against a zero budget, which can put the period over budget.
func (s *BudgetService) DeleteBudget(ctx context.Context, id uuid.UUID) error {
	action := &actions.DeleteBudget{ID: id}
	if err := s.operator.Process(ctx, action); err != nil {
		return err
	}

	s.notify(ctx, analytics.Period{Month: action.Month, Year: action.Year})
	return nil
}

func (s *BudgetService) notify(ctx context.Context, p analytics.Period) {
	if s.observer != nil {
		s.observer.BudgetChanged(ctx, p)
	}
}

func (s *BudgetService) GetBudget(ctx context.Context, id uuid.UUID) (*Budget, error) {
	row, err := s.storage.Budgets.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	b := toServiceBudget(row)
	return &b, nil
}

// ListBudgets returns the budgets of period, or every budget when period is nil.
func (s *BudgetService) ListBudgets(ctx context.Context, period *analytics.Period) ([]Budget, error) {
	var filter *budget.BudgetFilter
	if period != nil {
		if err := validatePeriod(*period); err != nil {
			return nil, err
		}
		filter = &budget.BudgetFilter{Month: &period.Month, Year: &period.Year}
	}

	rows, err := s.storage.Budgets.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	budgets := make([]Budget, len(rows))
	for i, row := range rows {
		budgets[i] = toServiceBudget(row)
	}
	return budgets, nil
}

func toServiceBudget(row *budget.Budget) Budget {
	return Budget{
		ID:         row.ID,
		CategoryID: row.CategoryID,
		Period:     analytics.Period{Month: row.Month, Year: row.Year},
		Amount:     row.Amount,
		CreatedAt:  row.CreatedAt,
	}
}

func validatePeriod(p analytics.Period) error {
	if !p.Valid() {
		return invalidf("month must be between 0 and 11, got %d", p.Month)
	}
	if p.Year < minBudgetYear || p.Year > maxBudgetYear {
		return invalidf("year must be between %d and %d, got %d", minBudgetYear, maxBudgetYear, p.Year)
	}
	return nil
}

func validateBudgetAmount(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return invalidf("budget amount must be positive")
	}
	return nil
}
