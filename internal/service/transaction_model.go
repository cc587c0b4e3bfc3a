package service

import (
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/finance-tracker/internal/analytics"
)

// Transaction represents a transaction in the service layer.
type Transaction struct {
	ID              uuid.UUID
	CategoryID      uuid.NullUUID
	Amount          decimal.Decimal
	Description     string
	Type            analytics.TransactionType
	TransactionDate time.Time
	CreatedAt       time.Time
}

// TransactionCursor identifies a position in a paginated result set
// and carries the limit and maxCreationTime so subsequent pages are consistent.
type TransactionCursor struct {
	Position        int
	Limit           int
	MaxCreationTime time.Time
}
