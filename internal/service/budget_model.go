package service

import (
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/finance-tracker/internal/analytics"
)

// Budget represents a monthly category budget in the service layer.
type Budget struct {
	ID         uuid.UUID
	CategoryID uuid.UUID
	Period     analytics.Period
	Amount     decimal.Decimal
	CreatedAt  time.Time
}
