package budget

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/finance-tracker/internal/analytics"
	"github.com/carson-networks/finance-tracker/internal/handlers/httperr"
	"github.com/carson-networks/finance-tracker/internal/service"
)

type CreateBudgetBody struct {
	CategoryID string `json:"categoryID" format:"uuid" doc:"Category UUID"`
	Month      int    `json:"month" minimum:"0" maximum:"11" doc:"Zero based month, 0 is January"`
	Year       int    `json:"year" minimum:"2000" maximum:"2100" doc:"Four digit year"`
	Amount     string `json:"budgetAmount" doc:"Positive decimal spending limit"`
}

type CreateBudgetInput struct {
	Body CreateBudgetBody
}

type CreateBudgetResponse struct {
	ID string `json:"id" doc:"Created budget UUID"`
}

type CreateBudgetOutput struct {
	Status int
	Body   CreateBudgetResponse
}

type budgetCreator interface {
	CreateBudget(ctx context.Context, b service.Budget) (uuid.UUID, error)
}

// CreateBudgetHandler handles POST /v1/budget.
type CreateBudgetHandler struct {
	BudgetService budgetCreator
}

func NewCreateBudgetHandler(svc budgetCreator) *CreateBudgetHandler {
	return &CreateBudgetHandler{BudgetService: svc}
}

func (h *CreateBudgetHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "create-budget",
		Method:        http.MethodPost,
		Path:          "/v1/budget",
		Summary:       "Create budget",
		Description:   "Sets a spending limit for a category in one month. Each category has at most one budget per month.",
		Tags:          []string{"Budgets"},
		DefaultStatus: http.StatusCreated,
	}, h.handle)
}

func (h *CreateBudgetHandler) handle(ctx context.Context, input *CreateBudgetInput) (*CreateBudgetOutput, error) {
	categoryID, err := uuid.FromString(input.Body.CategoryID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid categoryID", err)
	}
	amount, err := decimal.NewFromString(input.Body.Amount)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid budgetAmount", err)
	}

	id, err := h.BudgetService.CreateBudget(ctx, service.Budget{
		CategoryID: categoryID,
		Period:     analytics.Period{Month: input.Body.Month, Year: input.Body.Year},
		Amount:     amount,
	})
	if err != nil {
		return nil, httperr.FromService(err, "failed to create budget")
	}

	return &CreateBudgetOutput{
		Status: http.StatusCreated,
		Body:   CreateBudgetResponse{ID: id.String()},
	}, nil
}
