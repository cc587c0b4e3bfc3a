package transaction

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/finance-tracker/internal/handlers/httperr"
	"github.com/carson-networks/finance-tracker/internal/service"
)

type UpdateTransactionInput struct {
	ID   string `path:"id" format:"uuid" doc:"Transaction UUID"`
	Body TransactionBody
}

type DeleteTransactionInput struct {
	ID string `path:"id" format:"uuid" doc:"Transaction UUID"`
}

type transactionModifier interface {
	UpdateTransaction(ctx context.Context, tx service.Transaction) error
	DeleteTransaction(ctx context.Context, id uuid.UUID) error
}

// ModifyTransactionHandler handles PUT and DELETE /v1/transaction/{id}.
type ModifyTransactionHandler struct {
	TransactionService transactionModifier
}

func NewModifyTransactionHandler(svc transactionModifier) *ModifyTransactionHandler {
	return &ModifyTransactionHandler{TransactionService: svc}
}

func (h *ModifyTransactionHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "update-transaction",
		Method:        http.MethodPut,
		Path:          "/v1/transaction/{id}",
		Summary:       "Update transaction",
		Description:   "Replaces every field of an existing transaction.",
		Tags:          []string{"Transactions"},
		DefaultStatus: http.StatusNoContent,
	}, h.update)

	huma.Register(api, huma.Operation{
		OperationID:   "delete-transaction",
		Method:        http.MethodDelete,
		Path:          "/v1/transaction/{id}",
		Summary:       "Delete transaction",
		Tags:          []string{"Transactions"},
		DefaultStatus: http.StatusNoContent,
	}, h.delete)
}

func (h *ModifyTransactionHandler) update(ctx context.Context, input *UpdateTransactionInput) (*struct{}, error) {
	id, err := uuid.FromString(input.ID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid id", err)
	}
	tx, err := parseTransactionBody(&input.Body)
	if err != nil {
		return nil, err
	}
	tx.ID = id

	if err := h.TransactionService.UpdateTransaction(ctx, tx); err != nil {
		return nil, httperr.FromService(err, "failed to update transaction")
	}
	return nil, nil
}

func (h *ModifyTransactionHandler) delete(ctx context.Context, input *DeleteTransactionInput) (*struct{}, error) {
	id, err := uuid.FromString(input.ID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid id", err)
	}

	if err := h.TransactionService.DeleteTransaction(ctx, id); err != nil {
		return nil, httperr.FromService(err, "failed to delete transaction")
	}
	return nil, nil
}
