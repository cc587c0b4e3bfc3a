package category

import (
	"context"

	"github.com/gofrs/uuid/v5"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/im"
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

// Insert creates a category and returns its generated id. A duplicate name
// yields sqlerr.ErrConflict.
func (w *Writer) Insert(ctx context.Context, create *CategoryCreate) (uuid.UUID, error) {
	q := psql.Insert(
		im.Into(tableName, "name", "type"),
		im.Values(psql.Arg(create.Name, string(create.Type))),
		im.Returning("id"),
	)
	id, err := bob.One(ctx, w.tx, q, scan.SingleColumnMapper[uuid.UUID])
	if err != nil {
		return uuid.Nil, sqlerr.Translate(err)
	}
	return id, nil
}
