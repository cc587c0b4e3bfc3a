package budget

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

const tableName = "budgets"

var columns = []any{"id", "category_id", "month", "year", "budget_amount", "created_at"}

// Budget is a spending limit for one category in one month. Month is zero
// based. The store holds at most one budget per (category, month, year).
type Budget struct {
	ID         uuid.UUID
	CategoryID uuid.UUID
	Month      int
	Year       int
	Amount     decimal.Decimal
	CreatedAt  time.Time
}

type BudgetCreate struct {
	CategoryID uuid.UUID
	Month      int
	Year       int
	Amount     decimal.Decimal
}

// BudgetFilter narrows a listing to a month, a year, or both.
type BudgetFilter struct {
	Month *int
	Year  *int
}

type IReader interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Budget, error)
	List(ctx context.Context, filter *BudgetFilter) ([]*Budget, error)
}

type IWriter interface {
	IReader
	Insert(ctx context.Context, create *BudgetCreate) (uuid.UUID, error)
	UpdateAmount(ctx context.Context, id uuid.UUID, amount decimal.Decimal) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type budgetRow struct {
	ID         uuid.UUID       `db:"id"`
	CategoryID uuid.UUID       `db:"category_id"`
	Month      int             `db:"month"`
	Year       int             `db:"year"`
	Amount     decimal.Decimal `db:"budget_amount"`
	CreatedAt  time.Time       `db:"created_at"`
}

func rowToBudget(row budgetRow) *Budget {
	return &Budget{
		ID:         row.ID,
		CategoryID: row.CategoryID,
		Month:      row.Month,
		Year:       row.Year,
		Amount:     row.Amount,
		CreatedAt:  row.CreatedAt,
	}
}
