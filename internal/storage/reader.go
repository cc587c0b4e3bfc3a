package storage

import (
	"github.com/stephenafamo/bob"

	"github.com/carson-networks/finance-tracker/internal/storage/budget"
	"github.com/carson-networks/finance-tracker/internal/storage/category"
	"github.com/carson-networks/finance-tracker/internal/storage/transaction"
)

type Reader struct {
	Categories   *category.Reader
	Transactions *transaction.Reader
	Budgets      *budget.Reader
}

func NewReader(exec bob.Executor) *Reader {
	return &Reader{
		Categories:   category.NewReader(exec),
		Transactions: transaction.NewReader(exec),
		Budgets:      budget.NewReader(exec),
	}
}
