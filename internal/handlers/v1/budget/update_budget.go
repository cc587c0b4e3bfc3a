package budget

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/finance-tracker/internal/handlers/httperr"
)

type UpdateBudgetInput struct {
	ID   string `path:"id" format:"uuid" doc:"Budget UUID"`
	Body struct {
		Amount string `json:"budgetAmount" doc:"New positive spending limit"`
	}
}

type DeleteBudgetInput struct {
	ID string `path:"id" format:"uuid" doc:"Budget UUID"`
}

type budgetModifier interface {
	UpdateBudget(ctx context.Context, id uuid.UUID, amount decimal.Decimal) error
	DeleteBudget(ctx context.Context, id uuid.UUID) error
}

// ModifyBudgetHandler handles PUT and DELETE /v1/budget/{id}.
type ModifyBudgetHandler struct {
	BudgetService budgetModifier
}

func NewModifyBudgetHandler(svc budgetModifier) *ModifyBudgetHandler {
	return &ModifyBudgetHandler{BudgetService: svc}
}

func (h *ModifyBudgetHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "update-budget",
		Method:        http.MethodPut,
		Path:          "/v1/budget/{id}",
		Summary:       "Update budget amount",
		Tags:          []string{"Budgets"},
		DefaultStatus: http.StatusNoContent,
	}, h.update)

	huma.Register(api, huma.Operation{
		OperationID:   "delete-budget",
		Method:        http.MethodDelete,
		Path:          "/v1/budget/{id}",
		Summary:       "Delete budget",
		Tags:          []string{"Budgets"},
		DefaultStatus: http.StatusNoContent,
	}, h.delete)
}

func (h *ModifyBudgetHandler) update(ctx context.Context, input *UpdateBudgetInput) (*struct{}, error) {
	id, err := uuid.FromString(input.ID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid id", err)
	}
	amount, err := decimal.NewFromString(input.Body.Amount)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid budgetAmount", err)
	}

	if err := h.BudgetService.UpdateBudget(ctx, id, amount); err != nil {
		return nil, httperr.FromService(err, "failed to update budget")
	}
	return nil, nil
}

func (h *ModifyBudgetHandler) delete(ctx context.Context, input *DeleteBudgetInput) (*struct{}, error) {
	id, err := uuid.FromString(input.ID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid id", err)
	}

	if err := h.BudgetService.DeleteBudget(ctx, id); err != nil {
		return nil, httperr.FromService(err, "failed to delete budget")
	}
	return nil, nil
}
