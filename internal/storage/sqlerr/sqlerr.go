// Package sqlerr maps database driver errors onto sentinel errors callers can
// match with errors.Is.
package sqlerr

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"
)

var (
	ErrNotFound         = errors.New("record not found")
	ErrConflict         = errors.New("record conflicts with an existing record")
	ErrInvalidReference = errors.New("referenced record does not exist")
)

const (
	uniqueViolation     pq.ErrorCode = "23505"
	foreignKeyViolation pq.ErrorCode = "23503"
)

// Translate wraps err with the matching sentinel. Unrecognised errors are
// returned unchanged.
func Translate(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%w: %w", ErrNotFound, err)
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Code {
		case uniqueViolation:
			return fmt.Errorf("%w: %s", ErrConflict, pqErr.Constraint)
		case foreignKeyViolation:
			return fmt.Errorf("%w: %s", ErrInvalidReference, pqErr.Constraint)
		}
	}
	return err
}

// RequireAffected returns ErrNotFound when res reports no affected rows.
func RequireAffected(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
