package service

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/carson-networks/finance-tracker/internal/analytics"
	"github.com/carson-networks/finance-tracker/internal/logging"
	"github.com/carson-networks/finance-tracker/internal/storage/budget"
	"github.com/carson-networks/finance-tracker/internal/storage/category"
	"github.com/carson-networks/finance-tracker/internal/storage/transaction"
)

// Snapshot is the engine's view of the store at one moment. The three
// collections are read concurrently, not in one database transaction.
type Snapshot struct {
	Transactions []analytics.Transaction
	Categories   []analytics.Category
	Budgets      []analytics.Budget
}

type snapshotQuery struct {
	transactions *transaction.TransactionFilter
	budgets      *budget.BudgetFilter
	skipBudgets  bool
}

func (s *AnalyticsService) loadSnapshot(ctx context.Context, q snapshotQuery) (*Snapshot, error) {
	var (
		txRows       []*transaction.Transaction
		categoryRows []*category.Category
		budgetRows   []*budget.Budget
	)

	// storageMs is the summed time of every read, not wall time.
	timed := func(read func() error) func() error {
		logData := logging.GetLogData(ctx)
		if logData == nil {
			return read
		}
		return func() error {
			defer logData.AddToExistingTiming("storageMs")()
			return read()
		}
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(timed(func() error {
		var err error
		txRows, err = s.storage.Transactions.List(gctx, q.transactions)
		if err != nil {
			return fmt.Errorf("list transactions: %w", err)
		}
		return nil
	}))
	g.Go(timed(func() error {
		var err error
		categoryRows, err = s.storage.Categories.List(gctx)
		if err != nil {
			return fmt.Errorf("list categories: %w", err)
		}
		return nil
	}))
	if !q.skipBudgets {
		g.Go(timed(func() error {
			var err error
			budgetRows, err = s.storage.Budgets.List(gctx, q.budgets)
			if err != nil {
				return fmt.Errorf("list budgets: %w", err)
			}
			return nil
		}))
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	snap := &Snapshot{
		Transactions: make([]analytics.Transaction, len(txRows)),
		Categories:   make([]analytics.Category, len(categoryRows)),
		Budgets:      make([]analytics.Budget, len(budgetRows)),
	}
	for i, row := range txRows {
		snap.Transactions[i] = toEngineTransaction(row, s.location)
	}
	for i, row := range categoryRows {
		snap.Categories[i] = analytics.Category{
			ID:   row.ID,
			Name: row.Name,
			Type: analytics.TransactionType(row.Type),
		}
	}
	for i, row := range budgetRows {
		snap.Budgets[i] = analytics.Budget{
			ID:         row.ID,
			CategoryID: row.CategoryID,
			Month:      row.Month,
			Year:       row.Year,
			Amount:     row.Amount,
		}
	}
	return snap, nil
}

// toEngineTransaction resolves the nullable category column and moves the
// date into loc so period boundaries follow the configured time zone.
func toEngineTransaction(row *transaction.Transaction, loc *time.Location) analytics.Transaction {
	return analytics.Transaction{
		ID:          row.ID,
		Amount:      row.Amount,
		Date:        row.TransactionDate.In(loc),
		Description: row.Description,
		Type:        analytics.TransactionType(row.Type),
		Category:    analytics.RefFromNullUUID(row.CategoryID),
	}
}

// periodBounds returns [start, end) of p in loc.
func periodBounds(p analytics.Period, loc *time.Location) (time.Time, time.Time) {
	start := time.Date(p.Year, time.Month(p.Month+1), 1, 0, 0, 0, 0, loc)
	return start, start.AddDate(0, 1, 0)
}
