package analytics

import (
	"context"

	"github.com/carson-networks/finance-tracker/internal/handlers/httperr"
)

type CategoryAmount struct {
	CategoryID *string `json:"categoryID" doc:"Null for the uncategorized bucket"`
	Name       string  `json:"name"`
	Amount     string  `json:"amount"`
}

type CategoriesBody struct {
	// Keyed by category id. Expense categories without spend are present
	// with a zero total.
	Totals        map[string]string `json:"totals"`
	Uncategorized string            `json:"uncategorized"`
	Breakdown     []CategoryAmount  `json:"breakdown" doc:"Non-zero buckets ordered by name"`
}

type CategoriesOutput struct {
	Body CategoriesBody
}

func (h *Handler) categories(ctx context.Context, _ *struct{}) (*CategoriesOutput, error) {
	breakdown, err := h.AnalyticsService.CategoryBreakdown(ctx)
	if err != nil {
		return nil, httperr.FromService(err, "failed to compute category totals")
	}

	body := CategoriesBody{
		Totals:        make(map[string]string, len(breakdown.Totals.ByCategory)),
		Uncategorized: breakdown.Totals.Uncategorized.StringFixed(2),
		Breakdown:     make([]CategoryAmount, len(breakdown.Entries)),
	}
	for id, amount := range breakdown.Totals.ByCategory {
		body.Totals[id.String()] = amount.StringFixed(2)
	}
	for i, entry := range breakdown.Entries {
		body.Breakdown[i] = CategoryAmount{
			CategoryID: categoryID(entry.Category),
			Name:       entry.Name,
			Amount:     entry.Amount.StringFixed(2),
		}
	}
	return &CategoriesOutput{Body: body}, nil
}
