package budget

import (
	"time"

	"github.com/carson-networks/finance-tracker/internal/service"
)

// Budget is the API response model for a budget.
type Budget struct {
	ID         string `json:"id" doc:"Budget UUID"`
	CategoryID string `json:"categoryID" doc:"Category UUID"`
	Month      int    `json:"month" doc:"Zero based month, 0 is January"`
	Year       int    `json:"year" doc:"Four digit year"`
	Amount     string `json:"budgetAmount" doc:"Decimal spending limit"`
	CreatedAt  string `json:"createdAt" doc:"RFC3339 creation time"`
}

func toResponse(b service.Budget) Budget {
	return Budget{
		ID:         b.ID.String(),
		CategoryID: b.CategoryID.String(),
		Month:      b.Period.Month,
		Year:       b.Period.Year,
		Amount:     b.Amount.StringFixed(2),
		CreatedAt:  b.CreatedAt.Format(time.RFC3339),
	}
}
