package analytics

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/finance-tracker/internal/analytics"
	"github.com/carson-networks/finance-tracker/internal/service"
)

type analyticsReader interface {
	Summary(ctx context.Context, recentLimit int) (*service.Summary, error)
	CategoryBreakdown(ctx context.Context) (*service.CategoryBreakdown, error)
	CompareBudget(ctx context.Context, p analytics.Period) ([]analytics.ComparisonRow, error)
	Insights(ctx context.Context, p analytics.Period) ([]analytics.Insight, error)
	MonthlyExpenses(ctx context.Context) ([]analytics.MonthTotal, error)
	CurrentPeriod() analytics.Period
}

// Handler serves the read-only /v1/analytics endpoints.
type Handler struct {
	AnalyticsService analyticsReader
	Renderer         *Renderer
}

func NewHandler(svc analyticsReader, renderer *Renderer) *Handler {
	return &Handler{AnalyticsService: svc, Renderer: renderer}
}

func (h *Handler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "analytics-summary",
		Method:      http.MethodGet,
		Path:        "/v1/analytics/summary",
		Summary:     "Totals and recent transactions",
		Tags:        []string{"Analytics"},
	}, h.summary)

	huma.Register(api, huma.Operation{
		OperationID: "analytics-categories",
		Method:      http.MethodGet,
		Path:        "/v1/analytics/categories",
		Summary:     "Expense totals per category",
		Tags:        []string{"Analytics"},
	}, h.categories)

	huma.Register(api, huma.Operation{
		OperationID: "analytics-budget-comparison",
		Method:      http.MethodGet,
		Path:        "/v1/analytics/budget-comparison",
		Summary:     "Budgeted versus actual spend for a month",
		Tags:        []string{"Analytics"},
	}, h.budgetComparison)

	huma.Register(api, huma.Operation{
		OperationID: "analytics-insights",
		Method:      http.MethodGet,
		Path:        "/v1/analytics/insights",
		Summary:     "Spending insights for a month",
		Tags:        []string{"Analytics"},
	}, h.insights)

	huma.Register(api, huma.Operation{
		OperationID: "analytics-monthly-expenses",
		Method:      http.MethodGet,
		Path:        "/v1/analytics/monthly-expenses",
		Summary:     "Expense totals per month, oldest first",
		Tags:        []string{"Analytics"},
	}, h.monthlyExpenses)
}

// PeriodInput selects a month. A missing month or year falls back to the
// current one in the server's time zone.
type PeriodInput struct {
	Month int `query:"month" default:"-1" minimum:"-1" maximum:"11" doc:"Zero based month, defaults to the current month"`
	Year  int `query:"year" default:"0" minimum:"0" doc:"Four digit year, defaults to the current year"`
}

func (h *Handler) resolvePeriod(input *PeriodInput) analytics.Period {
	p := h.AnalyticsService.CurrentPeriod()
	if input.Month >= 0 {
		p.Month = input.Month
	}
	if input.Year > 0 {
		p.Year = input.Year
	}
	return p
}

type Period struct {
	Month int    `json:"month" doc:"Zero based month"`
	Year  int    `json:"year"`
	Label string `json:"label" doc:"YYYY-MM"`
}

func toPeriod(p analytics.Period) Period {
	return Period{Month: p.Month, Year: p.Year, Label: p.String()}
}

func categoryID(ref analytics.CategoryRef) *string {
	id, ok := ref.ID()
	if !ok {
		return nil
	}
	s := id.String()
	return &s
}
