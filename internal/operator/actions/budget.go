package actions

import (
	"context"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/finance-tracker/internal/storage"
	"github.com/carson-networks/finance-tracker/internal/storage/budget"
)

type CreateBudget struct {
	CategoryID uuid.UUID
	Month      int
	Year       int
	Amount     decimal.Decimal

	// CreatedID is set once Perform succeeds.
	CreatedID uuid.UUID
}

func (b *CreateBudget) Perform(ctx context.Context, writer *storage.Writer) error {
	if err := requireCategory(ctx, writer, b.CategoryID); err != nil {
		return err
	}

	id, err := writer.Budget.Insert(ctx, &budget.BudgetCreate{
		CategoryID: b.CategoryID,
		Month:      b.Month,
		Year:       b.Year,
		Amount:     b.Amount,
	})
	if err != nil {
		return err
	}

	b.CreatedID = id
	return nil
}

type UpdateBudget struct {
	ID     uuid.UUID
	Amount decimal.Decimal

	// Month and Year are the budget's period, set once Perform succeeds.
	Month int
	Year  int
}

func (b *UpdateBudget) Perform(ctx context.Context, writer *storage.Writer) error {
	existing, err := writer.Budget.FindByID(ctx, b.ID)
	if err != nil {
		return err
	}
	if err := writer.Budget.UpdateAmount(ctx, b.ID, b.Amount); err != nil {
		return err
	}

	b.Month, b.Year = existing.Month, existing.Year
	return nil
}

type DeleteBudget struct {
	ID uuid.UUID

	// Month and Year are the deleted budget's period, set once Perform succeeds.
	Month int
	Year  int
}

func (b *DeleteBudget) Perform(ctx context.Context, writer *storage.Writer) error {
	existing, err := writer.Budget.FindByID(ctx, b.ID)
	if err != nil {
		return err
	}
	if err := writer.Budget.Delete(ctx, b.ID); err != nil {
		return err
	}

	b.Month, b.Year = existing.Month, existing.Year
	return nil
}
