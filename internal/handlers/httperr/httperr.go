// Package httperr maps service and storage errors onto Huma status errors.
package httperr

import (
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/finance-tracker/internal/operator"
	"github.com/carson-networks/finance-tracker/internal/service"
	"github.com/carson-networks/finance-tracker/internal/storage/sqlerr"
)

// FromService wraps err in a Huma error whose status matches its cause. msg
// is used for failures the client cannot fix.
func FromService(err error, msg string) error {
	switch {
	case errors.Is(err, service.ErrInvalidInput):
		return huma.Error400BadRequest(err.Error(), err)
	case errors.Is(err, sqlerr.ErrNotFound):
		return huma.Error404NotFound("resource not found", err)
	case errors.Is(err, sqlerr.ErrConflict):
		return huma.Error409Conflict("resource already exists", err)
	case errors.Is(err, sqlerr.ErrInvalidReference):
		return huma.Error422UnprocessableEntity("referenced category does not exist", err)
	case errors.Is(err, operator.ErrStopped):
		return huma.Error503ServiceUnavailable("server is shutting down", err)
	default:
		return huma.NewError(http.StatusInternalServerError, msg, err)
	}
}
