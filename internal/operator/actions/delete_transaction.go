package actions

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/finance-tracker/internal/storage"
)

type DeleteTransaction struct {
	ID uuid.UUID
}

func (t *DeleteTransaction) Perform(ctx context.Context, writer *storage.Writer) error {
	return writer.Transaction.Delete(ctx, t.ID)
}
