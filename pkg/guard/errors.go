package guard

import (
	"errors"
	"fmt"
)

var (
	// ErrNil is returned when a required value is nil.
	ErrNil = errors.New("value is nil")

	// ErrNotNil is returned when a value that must be absent is present.
	ErrNotNil = errors.New("value is not nil")

	// ErrEmpty is returned when a value is nil, blank or has zero length.
	ErrEmpty = errors.New("value is empty")

	// ErrOutOfRange is returned when a numeric value is outside the allowed range.
	ErrOutOfRange = errors.New("value out of range")

	// ErrInvalidLength is returned when a string or collection has an invalid length.
	ErrInvalidLength = errors.New("invalid length")

	// ErrInvalidFormat is returned when a value does not have the expected format.
	ErrInvalidFormat = errors.New("invalid format")

	// ErrKeyNotFound is returned when a map does not contain a required key.
	ErrKeyNotFound = errors.New("key not found")

	// ErrUndefined is returned when an enum value is not one of its defined constants.
	ErrUndefined = errors.New("value is not defined")

	// ErrNotAllowed is returned when a value is not in the allowed set.
	ErrNotAllowed = errors.New("value is not allowed")

	// ErrNotEqual is returned when two values differ.
	ErrNotEqual = errors.New("values are not equal")

	// ErrPredicate is returned when a custom predicate does not hold.
	ErrPredicate = errors.New("predicate not satisfied")
)

// Error describes a guard clause that did not hold for a named parameter.
type Error struct {
	Field   string
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func newError(field string, sentinel error, format string, args ...any) error {
	return &Error{
		Field:   field,
		Message: fmt.Sprintf(format, args...),
		Err:     sentinel,
	}
}

// IsGuardError reports whether err contains a *Error.
func IsGuardError(err error) bool {
	var gerr *Error
	return errors.As(err, &gerr)
}
