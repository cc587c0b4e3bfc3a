package budget

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/finance-tracker/internal/analytics"
	"github.com/carson-networks/finance-tracker/internal/handlers/httperr"
	"github.com/carson-networks/finance-tracker/internal/service"
)

// ListBudgetsInput filters by period only when both month and year are set.
type ListBudgetsInput struct {
	Month int `query:"month" default:"-1" minimum:"-1" maximum:"11" doc:"Zero based month"`
	Year  int `query:"year" default:"0" doc:"Four digit year"`
}

type ListBudgetsOutput struct {
	Body struct {
		Budgets []Budget `json:"budgets"`
	}
}

type budgetLister interface {
	ListBudgets(ctx context.Context, period *analytics.Period) ([]service.Budget, error)
}

// ListBudgetsHandler handles GET /v1/budgets.
type ListBudgetsHandler struct {
	BudgetService budgetLister
}

func NewListBudgetsHandler(svc budgetLister) *ListBudgetsHandler {
	return &ListBudgetsHandler{BudgetService: svc}
}

func (h *ListBudgetsHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-budgets",
		Method:      http.MethodGet,
		Path:        "/v1/budgets",
		Summary:     "List budgets",
		Description: "Lists budgets, optionally for a single month.",
		Tags:        []string{"Budgets"},
	}, h.handle)
}

func (h *ListBudgetsHandler) handle(ctx context.Context, input *ListBudgetsInput) (*ListBudgetsOutput, error) {
	var period *analytics.Period
	hasMonth, hasYear := input.Month >= 0, input.Year != 0
	if hasMonth != hasYear {
		return nil, huma.Error400BadRequest("month and year must be given together")
	}
	if hasMonth {
		period = &analytics.Period{Month: input.Month, Year: input.Year}
	}

	budgets, err := h.BudgetService.ListBudgets(ctx, period)
	if err != nil {
		return nil, httperr.FromService(err, "failed to list budgets")
	}

	out := &ListBudgetsOutput{}
	out.Body.Budgets = make([]Budget, len(budgets))
	for i, b := range budgets {
		out.Body.Budgets[i] = toResponse(b)
	}
	return out, nil
}
