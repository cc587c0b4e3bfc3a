package transaction

import (
	"time"

	"github.com/carson-networks/finance-tracker/internal/service"
)

// Transaction is the API response model for a transaction.
// It is used only for responses, not for request bodies.
type Transaction struct {
	ID              string  `json:"id" doc:"Transaction UUID"`
	CategoryID      *string `json:"categoryID" doc:"Category UUID, null when uncategorized"`
	Amount          string  `json:"amount" doc:"Decimal amount"`
	Description     string  `json:"description" doc:"What the money was for"`
	Type            string  `json:"type" doc:"income or expense"`
	TransactionDate string  `json:"transactionDate" doc:"RFC3339 transaction date"`
	CreatedAt       string  `json:"createdAt" doc:"RFC3339 creation time"`
}

// TransactionBody is the request body shared by create and update.
type TransactionBody struct {
	CategoryID      string `json:"categoryID,omitempty" format:"uuid" doc:"Category UUID, omit for uncategorized"`
	Amount          string `json:"amount" required:"true" doc:"Positive decimal amount"`
	Description     string `json:"description" required:"true" minLength:"1" maxLength:"200" doc:"What the money was for"`
	Type            string `json:"type" required:"true" enum:"income,expense" doc:"income or expense"`
	TransactionDate string `json:"transactionDate,omitempty" doc:"RFC3339 transaction date, defaults to now on create"`
}

func ToResponse(tx service.Transaction) Transaction {
	out := Transaction{
		ID:              tx.ID.String(),
		Amount:          tx.Amount.StringFixed(2),
		Description:     tx.Description,
		Type:            string(tx.Type),
		TransactionDate: tx.TransactionDate.Format(time.RFC3339),
		CreatedAt:       tx.CreatedAt.Format(time.RFC3339),
	}
	if tx.CategoryID.Valid {
		id := tx.CategoryID.UUID.String()
		out.CategoryID = &id
	}
	return out
}
