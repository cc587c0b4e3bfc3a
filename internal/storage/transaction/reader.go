package transaction

import (
	"context"
	"database/sql"
	"time"

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

// List returns transactions newest first. Limit and Offset are applied only
// when Limit is positive.
func (r *Reader) List(ctx context.Context, filter *TransactionFilter) ([]*Transaction, error) {
	queryMods := []bob.Mod[*dialect.SelectQuery]{
		sm.Columns(columns...),
		sm.From(tableName),
	}
	if filter != nil {
		if filter.Type != nil {
			queryMods = append(queryMods, sm.Where(psql.Quote("type").EQ(psql.Arg(string(*filter.Type)))))
		}
		if filter.From != nil {
			queryMods = append(queryMods, sm.Where(psql.Quote("transaction_date").GTE(psql.Arg(*filter.From))))
		}
		if filter.To != nil {
			queryMods = append(queryMods, sm.Where(psql.Quote("transaction_date").LT(psql.Arg(*filter.To))))
		}
		if filter.MaxCreationTime != nil {
			queryMods = append(queryMods, sm.Where(psql.Quote("created_at").LTE(psql.Arg(*filter.MaxCreationTime))))
		}
	}
	queryMods = append(queryMods,
		sm.OrderBy("transaction_date").Desc(),
		sm.OrderBy("created_at").Desc(),
		sm.OrderBy("id").Desc(),
	)
	if filter != nil && filter.Limit > 0 {
		queryMods = append(queryMods, sm.Limit(filter.Limit), sm.Offset(filter.Offset))
	}

	rows, err := bob.All(ctx, r.exec, psql.Select(queryMods...), scan.StructMapper[transactionRow]())
	if err != nil {
		return nil, sqlerr.Translate(err)
	}

	result := make([]*Transaction, len(rows))
	for i, row := range rows {
		result[i] = rowToTransaction(row)
	}
	return result, nil
}

func (r *Reader) FindByID(ctx context.Context, id uuid.UUID) (*Transaction, error) {
	q := psql.Select(
		sm.Columns(columns...),
		sm.From(tableName),
		sm.Where(psql.Quote("id").EQ(psql.Arg(id))),
	)
	row, err := bob.One(ctx, r.exec, q, scan.StructMapper[transactionRow]())
	if err != nil {
		return nil, sqlerr.Translate(err)
	}
	return rowToTransaction(row), nil
}

// LatestCreation returns the newest created_at in the table, or the zero
// time when the table is empty. It is read from the database so it shares a
// clock with the created_at column default.
func (r *Reader) LatestCreation(ctx context.Context) (time.Time, error) {
	q := psql.Select(
		sm.Columns(psql.F("max", psql.Quote("created_at"))),
		sm.From(tableName),
	)
	latest, err := bob.One(ctx, r.exec, q, scan.SingleColumnMapper[sql.NullTime])
	if err != nil {
		return time.Time{}, sqlerr.Translate(err)
	}
	if !latest.Valid {
		return time.Time{}, nil
	}
	return latest.Time, nil
}
