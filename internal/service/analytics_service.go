package service

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/finance-tracker/internal/analytics"
	"github.com/carson-networks/finance-tracker/internal/storage"
	"github.com/carson-networks/finance-tracker/internal/storage/budget"
	"github.com/carson-networks/finance-tracker/internal/storage/transaction"
)

// AnalyticsService loads snapshots from storage and runs the analytics
// engine over them.
type AnalyticsService struct {
	storage     *storage.Storage
	location    *time.Location
	recentLimit int
	now         func() time.Time
}

func NewAnalyticsService(store *storage.Storage, opts Options) *AnalyticsService {
	loc := opts.Location
	if loc == nil {
		loc = time.UTC
	}
	recent := opts.RecentLimit
	if recent <= 0 {
		recent = analytics.DefaultRecentLimit
	}
	return &AnalyticsService{
		storage:     store,
		location:    loc,
		recentLimit: recent,
		now:         time.Now,
	}
}

// Summary holds all-time totals and the most recent transactions.
type Summary struct {
	Totals analytics.Totals
	Recent []analytics.Transaction
}

// CategoryBreakdown is expense spend per category with display names.
type CategoryBreakdown struct {
	Totals  analytics.CategoryTotals
	Names   map[uuid.UUID]string
	Entries []analytics.CategoryAmount
}

func (s *AnalyticsService) CurrentPeriod() analytics.Period {
	return analytics.PeriodOf(s.now().In(s.location))
}

// Summary computes totals over every transaction. A negative recentLimit
// selects the configured default.
func (s *AnalyticsService) Summary(ctx context.Context, recentLimit int) (*Summary, error) {
	if recentLimit < 0 {
		recentLimit = s.recentLimit
	}

	snap, err := s.loadSnapshot(ctx, snapshotQuery{skipBudgets: true})
	if err != nil {
		return nil, err
	}

	return &Summary{
		Totals: analytics.ComputeTotals(snap.Transactions),
		Recent: analytics.RecentTransactions(snap.Transactions, recentLimit),
	}, nil
}

func (s *AnalyticsService) CategoryBreakdown(ctx context.Context) (*CategoryBreakdown, error) {
	expense := transaction.TransactionTypeExpense
	snap, err := s.loadSnapshot(ctx, snapshotQuery{
		transactions: &transaction.TransactionFilter{Type: &expense},
		skipBudgets:  true,
	})
	if err != nil {
		return nil, err
	}

	totals := analytics.CategoryExpenseTotals(snap.Transactions, snap.Categories)
	names := make(map[uuid.UUID]string, len(snap.Categories))
	for _, c := range snap.Categories {
		names[c.ID] = c.Name
	}

	return &CategoryBreakdown{
		Totals:  totals,
		Names:   names,
		Entries: totals.Breakdown(snap.Categories),
	}, nil
}

func (s *AnalyticsService) CompareBudget(ctx context.Context, p analytics.Period) ([]analytics.ComparisonRow, error) {
	snap, err := s.loadPeriod(ctx, p)
	if err != nil {
		return nil, err
	}
	return analytics.CompareBudgetToActual(snap.Budgets, snap.Transactions, snap.Categories, p), nil
}

func (s *AnalyticsService) Insights(ctx context.Context, p analytics.Period) ([]analytics.Insight, error) {
	snap, err := s.loadPeriod(ctx, p)
	if err != nil {
		return nil, err
	}
	return analytics.GenerateInsights(snap.Budgets, snap.Transactions, snap.Categories, p), nil
}

func (s *AnalyticsService) MonthlyExpenses(ctx context.Context) ([]analytics.MonthTotal, error) {
	expense := transaction.TransactionTypeExpense
	snap, err := s.loadSnapshot(ctx, snapshotQuery{
		transactions: &transaction.TransactionFilter{Type: &expense},
		skipBudgets:  true,
	})
	if err != nil {
		return nil, err
	}
	return analytics.MonthlyExpenseTotals(snap.Transactions), nil
}

// loadPeriod narrows the snapshot to the budgets and transactions of p.
func (s *AnalyticsService) loadPeriod(ctx context.Context, p analytics.Period) (*Snapshot, error) {
	if !p.Valid() {
		return nil, invalidf("month must be between 0 and 11, got %d", p.Month)
	}

	from, to := periodBounds(p, s.location)
	return s.loadSnapshot(ctx, snapshotQuery{
		transactions: &transaction.TransactionFilter{From: &from, To: &to},
		budgets:      &budget.BudgetFilter{Month: &p.Month, Year: &p.Year},
	})
}
