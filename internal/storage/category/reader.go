package category

import (
	"context"

	"github.com/gofrs/uuid/v5"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/scan"

	"github.com/carson-networks/finance-tracker/internal/storage/sqlerr"
)

type Reader struct {
	exec bob.Executor
}

func NewReader(exec bob.Executor) *Reader {
	return &Reader{exec: exec}
}

// List returns every category ordered by name.
func (r *Reader) List(ctx context.Context) ([]*Category, error) {
	q := psql.Select(
		sm.Columns(columns...),
		sm.From(tableName),
		sm.OrderBy("name").Asc(),
		sm.OrderBy("id").Asc(),
	)
	rows, err := bob.All(ctx, r.exec, q, scan.StructMapper[categoryRow]())
	if err != nil {
		return nil, sqlerr.Translate(err)
	}

	result := make([]*Category, len(rows))
	for i, row := range rows {
		result[i] = rowToCategory(row)
	}
	return result, nil
}

func (r *Reader) FindByID(ctx context.Context, id uuid.UUID) (*Category, error) {
	q := psql.Select(
		sm.Columns(columns...),
		sm.From(tableName),
		sm.Where(psql.Quote("id").EQ(psql.Arg(id))),
	)
	row, err := bob.One(ctx, r.exec, q, scan.StructMapper[categoryRow]())
	if err != nil {
		return nil, sqlerr.Translate(err)
	}
	return rowToCategory(row), nil
}
