package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrValidation marks malformed, empty or out-of-range input.
	ErrValidation = errors.New("invalid input")

	// ErrUniqueness marks a duplicate national ID, tax ID or compatible vehicle.
	ErrUniqueness = errors.New("already registered")

	// ErrStateConflict marks an operation that the current record state forbids.
	ErrStateConflict = errors.New("state conflict")

	// ErrNotFound marks a missing record or an empty collection.
	ErrNotFound = errors.New("not found")

	// ErrBlockedByPendingPayment is returned when a customer with an unresolved
	// payment tries to start a new sale.
	ErrBlockedByPendingPayment = fmt.Errorf("%w: customer has a pending payment", ErrStateConflict)
)

// ValidationError names the offending field and wraps ErrValidation.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

func invalid(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}

// Recoverable reports whether the error should be answered with a fresh prompt
// rather than aborting the current operation.
func Recoverable(err error) bool {
	return errors.Is(err, ErrValidation) || errors.Is(err, ErrUniqueness)
}
