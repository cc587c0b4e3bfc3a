package actions

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/finance-tracker/internal/storage"
	"github.com/carson-networks/finance-tracker/internal/storage/transaction"
)

type CreateTransaction struct {
	CategoryID      uuid.NullUUID
	Amount          decimal.Decimal
	Description     string
	Type            transaction.TransactionType
	TransactionDate time.Time

	// CreatedID is set once Perform succeeds.
	CreatedID uuid.UUID
}

func (t *CreateTransaction) Perform(ctx context.Context, writer *storage.Writer) error {
	if t.CategoryID.Valid {
		if err := requireCategory(ctx, writer, t.CategoryID.UUID); err != nil {
			return err
		}
	}

	id, err := writer.Transaction.Insert(ctx, &transaction.TransactionCreate{
		CategoryID:      t.CategoryID,
		Amount:          t.Amount,
		Description:     t.Description,
		Type:            t.Type,
		TransactionDate: t.TransactionDate,
	})
	if err != nil {
		return err
	}

	t.CreatedID = id
	return nil
}
