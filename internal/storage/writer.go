package storage

import (
	"context"

	"github.com/stephenafamo/bob"

	"github.com/carson-networks/finance-tracker/internal/storage/budget"
	"github.com/carson-networks/finance-tracker/internal/storage/category"
	"github.com/carson-networks/finance-tracker/internal/storage/transaction"
)

// Writer groups the table writers that share one database transaction.
type Writer struct {
	tx          bob.Tx
	Category    category.IWriter
	Transaction transaction.IWriter
	Budget      budget.IWriter
}

func NewWriter(tx bob.Tx) Writer {
	return Writer{
		tx:          tx,
		Category:    category.NewWriter(tx),
		Transaction: transaction.NewWriter(tx),
		Budget:      budget.NewWriter(tx),
	}
}

func (w *Writer) Commit() error {
	return w.tx.Commit(context.Background())
}

func (w *Writer) Rollback() error {
	return w.tx.Rollback(context.Background())
}
