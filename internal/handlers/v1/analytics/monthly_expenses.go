package analytics

import (
	"context"

	"github.com/carson-networks/finance-tracker/internal/handlers/httperr"
)

type MonthTotal struct {
	Period Period `json:"period"`
	Total  string `json:"total"`
}

type MonthlyExpensesOutput struct {
	Body struct {
		Months []MonthTotal `json:"months" doc:"Months with any expense, oldest first"`
	}
}

func (h *Handler) monthlyExpenses(ctx context.Context, _ *struct{}) (*MonthlyExpensesOutput, error) {
	months, err := h.AnalyticsService.MonthlyExpenses(ctx)
	if err != nil {
		return nil, httperr.FromService(err, "failed to compute monthly expenses")
	}

	out := &MonthlyExpensesOutput{}
	out.Body.Months = make([]MonthTotal, len(months))
	for i, m := range months {
		out.Body.Months[i] = MonthTotal{Period: toPeriod(m.Period), Total: m.Total.StringFixed(2)}
	}
	return out, nil
}
