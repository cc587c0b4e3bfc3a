package transaction

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
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

func (w *Writer) Insert(ctx context.Context, create *TransactionCreate) (uuid.UUID, error) {
	transactionDate := create.TransactionDate
	if transactionDate.IsZero() {
		transactionDate = time.Now()
	}

	q := psql.Insert(
		im.Into(tableName, "category_id", "amount", "description", "type", "transaction_date"),
		im.Values(psql.Arg(
			create.CategoryID,
			create.Amount,
			create.Description,
			string(create.Type),
			transactionDate,
		)),
		im.Returning("id"),
	)
	id, err := bob.One(ctx, w.tx, q, scan.SingleColumnMapper[uuid.UUID])
	if err != nil {
		return uuid.Nil, sqlerr.Translate(err)
	}
	return id, nil
}

func (w *Writer) Update(ctx context.Context, id uuid.UUID, update *TransactionUpdate) error {
	q := psql.Update(
		um.Table(tableName),
		um.SetCol("category_id").ToArg(update.CategoryID),
		um.SetCol("amount").ToArg(update.Amount),
		um.SetCol("description").ToArg(update.Description),
		um.SetCol("type").ToArg(string(update.Type)),
		um.SetCol("transaction_date").ToArg(update.TransactionDate),
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
