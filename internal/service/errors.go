package service

import (
	"errors"
	"fmt"
)

// ErrInvalidInput marks a request the service refuses before touching storage.
var ErrInvalidInput = errors.New("invalid input")

func invalidf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, fmt.Sprintf(format, args...))
}
