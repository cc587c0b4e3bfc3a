package budget

import (
	"context"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/dm"
	"github.com/stephenafamo/bob/dialect/psql/im"
	"github.com/stephenafamo/bob/dialect/psql/um"
	"github.com/stephenafamo/scan"

	"github.com/carson-networks/finance-tracker/internal/storage/sqlerr"
)

type Writer struct {
	tx bob.Tx
	Reader
}

func NewWriter(tx bob.Tx) *Writer {
	return &Writer{
		tx: tx,
		Reader: Reader{
			exec: tx,
		},
	}
}

// Insert creates a budget. A second budget for the same category and period
// yields sqlerr.ErrConflict, an unknown category sqlerr.ErrInvalidReference.
func (w *Writer) Insert(ctx context.Context, create *BudgetCreate) (uuid.UUID, error) {
	q := psql.Insert(
		im.Into(tableName, "category_id", "month", "year", "budget_amount"),
		im.Values(psql.Arg(create.CategoryID, create.Month, create.Year, create.Amount)),
		im.Returning("id"),
	)
	id, err := bob.One(ctx, w.tx, q, scan.SingleColumnMapper[uuid.UUID])
	if err != nil {
		return uuid.Nil, sqlerr.Translate(err)
	}
	return id, nil
}

func (w *Writer) UpdateAmount(ctx context.Context, id uuid.UUID, amount decimal.Decimal) error {
	q := psql.Update(
		um.Table(tableName),
		um.SetCol("budget_amount").ToArg(amount),
		um.Where(psql.Quote("id").EQ(psql.Arg(id))),
	)
	res, err := bob.Exec(ctx, w.tx, q)
	if err != nil {
		return sqlerr.Translate(err)
	}
	return sqlerr.RequireAffected(res)
}

func (w *Writer) Delete(ctx context.Context, id uuid.UUID) error {
	q := psql.Delete(
		dm.From(tableName),
		dm.Where(psql.Quote("id").EQ(psql.Arg(id))),
	)
	res, err := bob.Exec(ctx, w.tx, q)
	if err != nil {
		return sqlerr.Translate(err)
	}
	return sqlerr.RequireAffected(res)
}
