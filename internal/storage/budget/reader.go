package budget

import (
	"context"

	"github.com/gofrs/uuid/v5"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/dialect"
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

func (r *Reader) List(ctx context.Context, filter *BudgetFilter) ([]*Budget, error) {
	queryMods := []bob.Mod[*dialect.SelectQuery]{
		sm.Columns(columns...),
		sm.From(tableName),
	}
	if filter != nil && filter.Month != nil {
		queryMods = append(queryMods, sm.Where(psql.Quote("month").EQ(psql.Arg(*filter.Month))))
	}
	if filter != nil && filter.Year != nil {
		queryMods = append(queryMods, sm.Where(psql.Quote("year").EQ(psql.Arg(*filter.Year))))
	}
	queryMods = append(queryMods,
		sm.OrderBy("year").Desc(),
		sm.OrderBy("month").Desc(),
		sm.OrderBy("created_at").Asc(),
	)

	rows, err := bob.All(ctx, r.exec, psql.Select(queryMods...), scan.StructMapper[budgetRow]())
	if err != nil {
		return nil, sqlerr.Translate(err)
	}

	result := make([]*Budget, len(rows))
	for i, row := range rows {
		result[i] = rowToBudget(row)
	}
	return result, nil
}

func (r *Reader) FindByID(ctx context.Context, id uuid.UUID) (*Budget, error) {
	q := psql.Select(
		sm.Columns(columns...),
		sm.From(tableName),
		sm.Where(psql.Quote("id").EQ(psql.Arg(id))),
	)
	row, err := bob.One(ctx, r.exec, q, scan.StructMapper[budgetRow]())
	if err != nil {
		return nil, sqlerr.Translate(err)
	}
	return rowToBudget(row), nil
}
