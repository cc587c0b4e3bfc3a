package service

import (
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/finance-tracker/internal/analytics"
)

// Category represents a category in the service layer.
type Category struct {
	ID        uuid.UUID
	Name      string
	Type      analytics.TransactionType
	CreatedAt time.Time
}
