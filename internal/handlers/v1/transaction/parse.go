package transaction

import (
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/finance-tracker/internal/analytics"
	"github.com/carson-networks/finance-tracker/internal/service"
)

// parseTransactionBody converts the request body into a service transaction.
// Schema validation has already checked the uuid format and the enums.
func parseTransactionBody(body *TransactionBody) (service.Transaction, error) {
	var tx service.Transaction

	if body.CategoryID != "" {
		categoryID, err := uuid.FromString(body.CategoryID)
		if err != nil {
			return tx, huma.NewError(http.StatusBadRequest, "invalid categoryID", err)
		}
		tx.CategoryID = uuid.NullUUID{UUID: categoryID, Valid: true}
	}

	amount, err := decimal.NewFromString(body.Amount)
	if err != nil {
		return tx, huma.NewError(http.StatusBadRequest, "invalid amount", err)
	}
	tx.Amount = amount

	if body.TransactionDate != "" {
		tx.TransactionDate, err = time.Parse(time.RFC3339, body.TransactionDate)
		if err != nil {
			return tx, huma.NewError(http.StatusBadRequest, "invalid transactionDate", err)
		}
	}

	tx.Description = body.Description
	tx.Type = analytics.TransactionType(body.Type)
	return tx, nil
}
