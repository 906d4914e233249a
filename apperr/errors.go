// apperr/errors.go
package apperr

import (
	"errors"
	"fmt"
)

// Error kinds surfaced by the service layer. Controllers translate these
// into HTTP status codes; services only attach a human-readable detail.
var (
	ErrNotFound          = errors.New("not found")
	ErrDuplicateKey      = errors.New("duplicate key")
	ErrInsufficientStock = errors.New("insufficient stock")
)

// NotFound wraps ErrNotFound with a detail message.
func NotFound(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrNotFound, fmt.Sprintf(format, args...))
}

// DuplicateKey wraps ErrDuplicateKey with a detail message.
func DuplicateKey(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrDuplicateKey, fmt.Sprintf(format, args...))
}

// InsufficientStock wraps ErrInsufficientStock with a detail message.
func InsufficientStock(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInsufficientStock, fmt.Sprintf(format, args...))
}

func IsNotFound(err error) bool          { return errors.Is(err, ErrNotFound) }
func IsDuplicateKey(err error) bool      { return errors.Is(err, ErrDuplicateKey) }
func IsInsufficientStock(err error) bool { return errors.Is(err, ErrInsufficientStock) }
