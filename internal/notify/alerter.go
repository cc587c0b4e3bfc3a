package notify

import (
	"context"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/carson-networks/finance-tracker/internal/analytics"
)

type InsightSource interface {
	Insights(ctx context.Context, p analytics.Period) ([]analytics.Insight, error)
}

type Publisher interface {
	PublishBudgetAlert(ctx context.Context, alert *BudgetAlert) error
}

// Alerter re-evaluates a period's insights after a transaction lands in it
// and publishes a BudgetAlert when any category is over budget.
type Alerter struct {
	source    InsightSource
	publisher Publisher
	location  *time.Location
	log       *logrus.Logger
	now       func() time.Time

	wg sync.WaitGroup
}

func NewAlerter(source InsightSource, publisher Publisher, location *time.Location, log *logrus.Logger) *Alerter {
	if location == nil {
		location = time.UTC
	}
	return &Alerter{
		source:    source,
		publisher: publisher,
		location:  location,
		log:       log,
		now:       time.Now,
	}
}

// TransactionRecorded checks the transaction's period in the background.
// The check outlives the request that triggered it.
func (a *Alerter) TransactionRecorded(ctx context.Context, date time.Time) {
	a.schedule(ctx, analytics.PeriodOf(date.In(a.location)))
}

// BudgetChanged checks p in the background after one of its budgets was
// created, changed or removed.
func (a *Alerter) BudgetChanged(ctx context.Context, p analytics.Period) {
	a.schedule(ctx, p)
}

func (a *Alerter) schedule(ctx context.Context, p analytics.Period) {
	ctx = context.WithoutCancel(ctx)

	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		if err := a.Check(ctx, p); err != nil {
			a.log.WithError(err).WithField("period", p.String()).Warn("Budget alert check failed")
		}
	}()
}

// Check publishes an alert for p when the insights open with an
// over-budget summary. It returns nil without publishing otherwise.
func (a *Alerter) Check(ctx context.Context, p analytics.Period) error {
	insights, err := a.source.Insights(ctx, p)
	if err != nil {
		return err
	}
	if len(insights) == 0 || insights[0].Kind != analytics.InsightOverBudgetSummary {
		return nil
	}

	alert := &BudgetAlert{
		Month:           p.Month,
		Year:            p.Year,
		OverBudgetCount: insights[0].Count,
		Categories:      []OverBudgetRow{},
		Timestamp:       a.now(),
	}
	for _, in := range insights[1:] {
		if in.Kind != analytics.InsightCategoryStatus || in.Status != analytics.BudgetStatusOver {
			continue
		}
		row := OverBudgetRow{
			Name:     in.Row.CategoryName,
			Budgeted: in.Row.Budgeted,
			Actual:   in.Row.Actual,
			Variance: in.Row.Variance,
		}
		if id, ok := in.Row.Category.ID(); ok {
			s := id.String()
			row.CategoryID = &s
		}
		alert.Categories = append(alert.Categories, row)
	}

	return a.publisher.PublishBudgetAlert(ctx, alert)
}

// Wait blocks until every background check has finished.
func (a *Alerter) Wait() {
	a.wg.Wait()
}
