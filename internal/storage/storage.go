package storage

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"
	"github.com/stephenafamo/bob"

	"github.com/carson-networks/finance-tracker/internal/config"
	"github.com/carson-networks/finance-tracker/internal/storage/budget"
	"github.com/carson-networks/finance-tracker/internal/storage/category"
	"github.com/carson-networks/finance-tracker/internal/storage/transaction"
)

// Storage exposes read access to every table and opens write transactions.
// The readers are interfaces so services can be tested without a database.
type Storage struct {
	DB           *sql.DB
	bobDB        bob.DB
	Categories   category.IReader
	Transactions transaction.IReader
	Budgets      budget.IReader
}

func NewStorage(env *config.Config) (*Storage, error) {
	db, err := sql.Open("postgres", env.PostgresConnectionString())
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	return NewStorageFromDB(db), nil
}

func NewStorageFromDB(db *sql.DB) *Storage {
	bobDB := bob.NewDB(db)
	reader := NewReader(bobDB)

	return &Storage{
		DB:           db,
		bobDB:        bobDB,
		Categories:   reader.Categories,
		Transactions: reader.Transactions,
		Budgets:      reader.Budgets,
	}
}

// Write begins a database transaction. The caller must Commit or Rollback
// the returned Writer.
func (s *Storage) Write(ctx context.Context) (*Writer, error) {
	tx, err := s.bobDB.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin transaction: %w", err)
	}
	writer := NewWriter(tx)
	return &writer, nil
}

func (s *Storage) Ping(ctx context.Context) error {
	return s.DB.PingContext(ctx)
}

func (s *Storage) Close() error {
	return s.DB.Close()
}
