package transaction

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

const tableName = "transactions"

var columns = []any{"id", "category_id", "amount", "description", "type", "transaction_date", "created_at"}

type TransactionType string

const (
	TransactionTypeIncome  TransactionType = "income"
	TransactionTypeExpense TransactionType = "expense"
)

// Transaction represents a transaction record.
type Transaction struct {
	ID              uuid.UUID
	CategoryID      uuid.NullUUID
	Amount          decimal.Decimal
	Description     string
	Type            TransactionType
	TransactionDate time.Time
	CreatedAt       time.Time
}

// TransactionCreate is the input for creating a new transaction.
type TransactionCreate struct {
	CategoryID      uuid.NullUUID
	Amount          decimal.Decimal
	Description     string
	Type            TransactionType
	TransactionDate time.Time // defaults to now if zero
}

// TransactionUpdate replaces every mutable field of a transaction.
type TransactionUpdate struct {
	CategoryID      uuid.NullUUID
	Amount          decimal.Decimal
	Description     string
	Type            TransactionType
	TransactionDate time.Time
}

// TransactionFilter specifies filters for listing transactions.
// A nil filter returns every transaction.
type TransactionFilter struct {
	Type            *TransactionType
	From            *time.Time
	To              *time.Time
	Limit           int
	Offset          int
	MaxCreationTime *time.Time
}

// IReader defines the read operations on transactions.
type IReader interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Transaction, error)
	List(ctx context.Context, filter *TransactionFilter) ([]*Transaction, error)
	LatestCreation(ctx context.Context) (time.Time, error)
}

// IWriter defines the operations available inside a write transaction.
type IWriter interface {
	IReader
	Insert(ctx context.Context, create *TransactionCreate) (uuid.UUID, error)
	Update(ctx context.Context, id uuid.UUID, update *TransactionUpdate) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type transactionRow struct {
	ID              uuid.UUID       `db:"id"`
	CategoryID      uuid.NullUUID   `db:"category_id"`
	Amount          decimal.Decimal `db:"amount"`
	Description     string          `db:"description"`
	Type            string          `db:"type"`
	TransactionDate time.Time       `db:"transaction_date"`
	CreatedAt       time.Time       `db:"created_at"`
}

func rowToTransaction(row transactionRow) *Transaction {
	return &Transaction{
		ID:              row.ID,
		CategoryID:      row.CategoryID,
		Amount:          row.Amount,
		Description:     row.Description,
		Type:            TransactionType(row.Type),
		TransactionDate: row.TransactionDate,
		CreatedAt:       row.CreatedAt,
	}
}
