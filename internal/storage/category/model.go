package category

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
)

const tableName = "categories"

var columns = []any{"id", "name", "type", "created_at"}

type CategoryType string

const (
	CategoryTypeIncome  CategoryType = "income"
	CategoryTypeExpense CategoryType = "expense"
)

// Category represents a category record.
type Category struct {
	ID        uuid.UUID
	Name      string
	Type      CategoryType
	CreatedAt time.Time
}

// CategoryCreate is the input for creating a new category.
type CategoryCreate struct {
	Name string
	Type CategoryType
}

// IReader defines the read operations on categories.
type IReader interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Category, error)
	List(ctx context.Context) ([]*Category, error)
}

// IWriter defines the operations available inside a write transaction.
type IWriter interface {
	IReader
	Insert(ctx context.Context, create *CategoryCreate) (uuid.UUID, error)
}

type categoryRow struct {
	ID        uuid.UUID `db:"id"`
	Name      string    `db:"name"`
	Type      string    `db:"type"`
	CreatedAt time.Time `db:"created_at"`
}

func rowToCategory(row categoryRow) *Category {
	return &Category{
		ID:        row.ID,
		Name:      row.Name,
		Type:      CategoryType(row.Type),
		CreatedAt: row.CreatedAt,
	}
}
