// Package analytics derives totals, category breakdowns, budget comparisons
// and insight records from a snapshot of transactions, categories and budgets.
//
// Every function in this package is pure: it reads its arguments, never
// mutates them, performs no I/O and never returns an error.
package analytics

import (
	"fmt"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

// UncategorizedName is the display name used for spend that cannot be
// attributed to a known category.
const UncategorizedName = "Uncategorized"

type TransactionType string

const (
	TransactionTypeIncome  TransactionType = "income"
	TransactionTypeExpense TransactionType = "expense"
)

// CategoryRef is an optional reference to a Category. The zero value refers
// to no category.
type CategoryRef struct {
	id    uuid.UUID
	valid bool
}

func SomeCategory(id uuid.UUID) CategoryRef {
	return CategoryRef{id: id, valid: true}
}

func NoCategory() CategoryRef {
	return CategoryRef{}
}

// RefFromNullUUID converts a nullable database column into a CategoryRef.
func RefFromNullUUID(n uuid.NullUUID) CategoryRef {
	if !n.Valid {
		return NoCategory()
	}
	return SomeCategory(n.UUID)
}

func (r CategoryRef) ID() (uuid.UUID, bool) {
	return r.id, r.valid
}

func (r CategoryRef) IsNone() bool {
	return !r.valid
}

func (r CategoryRef) NullUUID() uuid.NullUUID {
	return uuid.NullUUID{UUID: r.id, Valid: r.valid}
}

// String returns the referenced id, or an empty string for NoCategory.
func (r CategoryRef) String() string {
	if !r.valid {
		return ""
	}
	return r.id.String()
}

type Transaction struct {
	ID          uuid.UUID
	Amount      decimal.Decimal
	Date        time.Time
	Description string
	Type        TransactionType
	Category    CategoryRef
}

func (t Transaction) IsExpense() bool {
	return t.Type == TransactionTypeExpense
}

type Category struct {
	ID   uuid.UUID
	Name string
	Type TransactionType
}

type Budget struct {
	ID         uuid.UUID
	CategoryID uuid.UUID
	Month      int
	Year       int
	Amount     decimal.Decimal
}

func (b Budget) Period() Period {
	return Period{Month: b.Month, Year: b.Year}
}

// Period is a calendar month. Month is zero based, 0 is January.
type Period struct {
	Month int
	Year  int
}

// PeriodOf returns the period containing t, evaluated in t's location.
func PeriodOf(t time.Time) Period {
	return Period{Month: int(t.Month()) - 1, Year: t.Year()}
}

func (p Period) Valid() bool {
	return p.Month >= 0 && p.Month <= 11
}

func (p Period) Contains(t time.Time) bool {
	return PeriodOf(t) == p
}

// Before reports whether p is chronologically earlier than o.
func (p Period) Before(o Period) bool {
	if p.Year != o.Year {
		return p.Year < o.Year
	}
	return p.Month < o.Month
}

func (p Period) String() string {
	return fmt.Sprintf("%04d-%02d", p.Year, p.Month+1)
}

func categoryIndex(categories []Category) map[uuid.UUID]Category {
	idx := make(map[uuid.UUID]Category, len(categories))
	for _, c := range categories {
		idx[c.ID] = c
	}
	return idx
}
