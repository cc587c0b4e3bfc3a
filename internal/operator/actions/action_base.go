package actions

import (
	"context"
	"errors"
	"fmt"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/finance-tracker/internal/storage"
	"github.com/carson-networks/finance-tracker/internal/storage/sqlerr"
)

// IAction is a unit of work performed inside a single database transaction.
type IAction interface {
	Perform(ctx context.Context, writer *storage.Writer) error
}

// requireCategory fails with sqlerr.ErrInvalidReference when id does not
// name an existing category.
func requireCategory(ctx context.Context, writer *storage.Writer, id uuid.UUID) error {
	_, err := writer.Category.FindByID(ctx, id)
	if errors.Is(err, sqlerr.ErrNotFound) {
		return fmt.Errorf("%w: category %s", sqlerr.ErrInvalidReference, id)
	}
	return err
}
