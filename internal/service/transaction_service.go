package service

import (
	"context"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/finance-tracker/internal/analytics"
	"github.com/carson-networks/finance-tracker/internal/operator/actions"
	"github.com/carson-networks/finance-tracker/internal/storage"
	"github.com/carson-networks/finance-tracker/internal/storage/transaction"
)

const (
	defaultLimit         = 20
	maxDescriptionLength = 200
)

// TransactionObserver is told about every transaction that was created or
// changed, with the transaction's date.
type TransactionObserver interface {
	TransactionRecorded(ctx context.Context, date time.Time)
}

// TransactionService handles transaction business logic.
type TransactionService struct {
	storage  *storage.Storage
	operator actionProcessor
	observer TransactionObserver
}

// NewTransactionService creates a new TransactionService.
func NewTransactionService(store *storage.Storage, operator actionProcessor) *TransactionService {
	return &TransactionService{storage: store, operator: operator}
}

func (s *TransactionService) SetObserver(observer TransactionObserver) {
	s.observer = observer
}

// CreateTransaction creates a new transaction and returns its ID.
func (s *TransactionService) CreateTransaction(ctx context.Context, tx Transaction) (uuid.UUID, error) {
	if err := validateTransaction(&tx); err != nil {
		return uuid.Nil, err
	}
	if tx.TransactionDate.IsZero() {
		tx.TransactionDate = time.Now()
	}

	action := &actions.CreateTransaction{
		CategoryID:      tx.CategoryID,
		Amount:          tx.Amount,
		Description:     tx.Description,
		Type:            transaction.TransactionType(tx.Type),
		TransactionDate: tx.TransactionDate,
	}
	if err := s.operator.Process(ctx, action); err != nil {
		return uuid.Nil, err
	}

	s.notify(ctx, tx.TransactionDate)
	return action.CreatedID, nil
}

// UpdateTransaction replaces the stored transaction identified by tx.ID.
func (s *TransactionService) UpdateTransaction(ctx context.Context, tx Transaction) error {
	if err := validateTransaction(&tx); err != nil {
		return err
	}
	if tx.TransactionDate.IsZero() {
		return invalidf("transaction date is required")
	}

	action := &actions.UpdateTransaction{
		ID:              tx.ID,
		CategoryID:      tx.CategoryID,
		Amount:          tx.Amount,
		Description:     tx.Description,
		Type:            transaction.TransactionType(tx.Type),
		TransactionDate: tx.TransactionDate,
	}
	if err := s.operator.Process(ctx, action); err != nil {
		return err
	}

	s.notify(ctx, tx.TransactionDate)
	return nil
}

func (s *TransactionService) DeleteTransaction(ctx context.Context, id uuid.UUID) error {
	return s.operator.Process(ctx, &actions.DeleteTransaction{ID: id})
}

// ListTransactions returns a page of transactions using cursor-based pagination.
// The first page pins every later page to the rows that existed when it was
// read, so inserts made while paging do not shift offsets.
func (s *TransactionService) ListTransactions(ctx context.Context, cursor *TransactionCursor) ([]Transaction, *TransactionCursor, error) {
	limit := defaultLimit
	offset := 0
	var maxCreationTime time.Time
	if cursor != nil {
		if cursor.Limit > 0 {
			limit = cursor.Limit
		}
		offset = cursor.Position
		maxCreationTime = cursor.MaxCreationTime
	}

	// Rows are ordered by transaction date, so the pin has to cover the
	// whole table rather than the rows on this page.
	if maxCreationTime.IsZero() {
		latest, err := s.storage.Transactions.LatestCreation(ctx)
		if err != nil {
			return nil, nil, err
		}
		if latest.IsZero() {
			return nil, nil, nil
		}
		maxCreationTime = latest
	}

	// One extra row tells us whether another page exists.
	filter := &transaction.TransactionFilter{
		Limit:           limit + 1,
		Offset:          offset,
		MaxCreationTime: &maxCreationTime,
	}

	rows, err := s.storage.Transactions.List(ctx, filter)
	if err != nil {
		return nil, nil, err
	}

	if len(rows) == 0 {
		return nil, nil, nil
	}

	var nextCursor *TransactionCursor
	if len(rows) > limit {
		rows = rows[:limit]
		nextCursor = &TransactionCursor{
			Position:        offset + limit,
			Limit:           limit,
			MaxCreationTime: maxCreationTime,
		}
	}

	convertedTransactions := make([]Transaction, len(rows))
	for i, row := range rows {
		convertedTransactions[i] = Transaction{
			ID:              row.ID,
			CategoryID:      row.CategoryID,
			Amount:          row.Amount,
			Description:     row.Description,
			Type:            analytics.TransactionType(row.Type),
			TransactionDate: row.TransactionDate,
			CreatedAt:       row.CreatedAt,
		}
	}

	return convertedTransactions, nextCursor, nil
}

func (s *TransactionService) notify(ctx context.Context, date time.Time) {
	if s.observer != nil {
		s.observer.TransactionRecorded(ctx, date)
	}
}

func validateTransaction(tx *Transaction) error {
	tx.Description = strings.TrimSpace(tx.Description)
	if !tx.Amount.IsPositive() {
		return invalidf("amount must be positive")
	}
	if tx.Description == "" || utf8.RuneCountInString(tx.Description) > maxDescriptionLength {
		return invalidf("description must be 1 to %d characters", maxDescriptionLength)
	}
	if !validTransactionType(tx.Type) {
		return invalidf("unknown transaction type %q", tx.Type)
	}
	return nil
}
