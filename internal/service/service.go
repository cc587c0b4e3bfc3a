package service

import (
	"context"
	"time"

	"github.com/carson-networks/finance-tracker/internal/operator/actions"
	"github.com/carson-networks/finance-tracker/internal/storage"
)

// actionProcessor runs a write action in its own database transaction.
type actionProcessor interface {
	Process(ctx context.Context, action actions.IAction) error
}

// Service holds all business logic services.
type Service struct {
	Category    *CategoryService
	Transaction *TransactionService
	Budget      *BudgetService
	Analytics   *AnalyticsService
}

// Options tune the analytics view of the data.
type Options struct {
	// Location is the time zone periods are evaluated in. Defaults to UTC.
	Location *time.Location
	// RecentLimit is the default length of the recent transactions list.
	RecentLimit int
}

// NewService creates a new Service. Reads go straight to store, writes are
// submitted to operator.
func NewService(store *storage.Storage, operator actionProcessor, opts Options) *Service {
	return &Service{
		Category:    NewCategoryService(store, operator),
		Transaction: NewTransactionService(store, operator),
		Budget:      NewBudgetService(store, operator),
		Analytics:   NewAnalyticsService(store, opts),
	}
}
