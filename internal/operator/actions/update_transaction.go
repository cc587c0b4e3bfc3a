package actions

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/finance-tracker/internal/storage"
	"github.com/carson-networks/finance-tracker/internal/storage/transaction"
)

type UpdateTransaction struct {
	ID              uuid.UUID
	CategoryID      uuid.NullUUID
	Amount          decimal.Decimal
	Description     string
	Type            transaction.TransactionType
	TransactionDate time.Time
}

func (t *UpdateTransaction) Perform(ctx context.Context, writer *storage.Writer) error {
	if t.CategoryID.Valid {
		if err := requireCategory(ctx, writer, t.CategoryID.UUID); err != nil {
			return err
		}
	}

	return writer.Transaction.Update(ctx, t.ID, &transaction.TransactionUpdate{
		CategoryID:      t.CategoryID,
		Amount:          t.Amount,
		Description:     t.Description,
		Type:            t.Type,
		TransactionDate: t.TransactionDate,
	})
}
