package service

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/finance-tracker/internal/analytics"
	"github.com/carson-networks/finance-tracker/internal/operator/actions"
	"github.com/carson-networks/finance-tracker/internal/storage"
	"github.com/carson-networks/finance-tracker/internal/storage/category"
)

const maxCategoryNameLength = 50

// CategoryService handles category business logic.
type CategoryService struct {
	storage  *storage.Storage
	operator actionProcessor
}

func NewCategoryService(store *storage.Storage, operator actionProcessor) *CategoryService {
	return &CategoryService{storage: store, operator: operator}
}

// CreateCategory creates a new category and returns its ID. Names are unique.
func (s *CategoryService) CreateCategory(ctx context.Context, c Category) (uuid.UUID, error) {
	name := strings.TrimSpace(c.Name)
	if name == "" || utf8.RuneCountInString(name) > maxCategoryNameLength {
		return uuid.Nil, invalidf("category name must be 1 to %d characters", maxCategoryNameLength)
	}
	if !validTransactionType(c.Type) {
		return uuid.Nil, invalidf("unknown category type %q", c.Type)
	}

	action := &actions.CreateCategory{
		Name: name,
		Type: category.CategoryType(c.Type),
	}
	if err := s.operator.Process(ctx, action); err != nil {
		return uuid.Nil, err
	}
	return action.CreatedID, nil
}

// ListCategories returns all categories ordered by name.
func (s *CategoryService) ListCategories(ctx context.Context) ([]Category, error) {
	rows, err := s.storage.Categories.List(ctx)
	if err != nil {
		return nil, err
	}

	categories := make([]Category, len(rows))
	for i, row := range rows {
		categories[i] = Category{
			ID:        row.ID,
			Name:      row.Name,
			Type:      analytics.TransactionType(row.Type),
			CreatedAt: row.CreatedAt,
		}
	}
	return categories, nil
}

func validTransactionType(t analytics.TransactionType) bool {
	return t == analytics.TransactionTypeIncome || t == analytics.TransactionTypeExpense
}
