package actions

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/finance-tracker/internal/storage"
	"github.com/carson-networks/finance-tracker/internal/storage/category"
)

type CreateCategory struct {
	Name string
	Type category.CategoryType

	// CreatedID is set once Perform succeeds.
	CreatedID uuid.UUID
}

func (c *CreateCategory) Perform(ctx context.Context, writer *storage.Writer) error {
	id, err := writer.Category.Insert(ctx, &category.CategoryCreate{
		Name: c.Name,
		Type: c.Type,
	})
	if err != nil {
		return err
	}

	c.CreatedID = id
	return nil
}
