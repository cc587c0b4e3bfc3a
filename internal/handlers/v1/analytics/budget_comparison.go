package analytics

import (
	"context"

	"github.com/carson-networks/finance-tracker/internal/analytics"
	"github.com/carson-networks/finance-tracker/internal/handlers/httperr"
)

type ComparisonRow struct {
	CategoryID   *string `json:"categoryID"`
	CategoryName string  `json:"categoryName"`
	Budgeted     string  `json:"budgeted"`
	Actual       string  `json:"actual"`
	Variance     string  `json:"variance" doc:"Actual minus budgeted, positive when over budget"`
	Status       string  `json:"status" enum:"OVER,UNDER,EXACT"`
}

type BudgetComparisonOutput struct {
	Body struct {
		Period Period          `json:"period"`
		Rows   []ComparisonRow `json:"rows"`
	}
}

func toComparisonRow(row analytics.ComparisonRow) ComparisonRow {
	return ComparisonRow{
		CategoryID:   categoryID(row.Category),
		CategoryName: row.CategoryName,
		Budgeted:     row.Budgeted.StringFixed(2),
		Actual:       row.Actual.StringFixed(2),
		Variance:     row.Variance.StringFixed(2),
		Status:       string(analytics.ClassifyVariance(row.Budgeted, row.Actual)),
	}
}

func (h *Handler) budgetComparison(ctx context.Context, input *PeriodInput) (*BudgetComparisonOutput, error) {
	p := h.resolvePeriod(input)
	rows, err := h.AnalyticsService.CompareBudget(ctx, p)
	if err != nil {
		return nil, httperr.FromService(err, "failed to compare budgets")
	}

	out := &BudgetComparisonOutput{}
	out.Body.Period = toPeriod(p)
	out.Body.Rows = make([]ComparisonRow, len(rows))
	for i, row := range rows {
		out.Body.Rows[i] = toComparisonRow(row)
	}
	return out, nil
}
