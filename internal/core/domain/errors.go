package domain

import (
	"errors"
	"fmt"
)

// Error kinds. Every entity-specific error wraps exactly one kind so callers can
// branch with errors.Is on either the specific error or its kind.
var (
	ErrNotFound    = errors.New("not found")
	ErrValidation  = errors.New("validation failed")
	ErrConflict    = errors.New("conflict")
	ErrPersistence = errors.New("persistence failure")
	ErrUnavailable = errors.New("temporarily unavailable")

	ErrUnauthenticated    = errors.New("unauthenticated")
	ErrForbidden          = errors.New("access forbidden")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserBlocked        = errors.New("user is blocked")
)

var (
	ErrUserNotFound        = fmt.Errorf("user %w", ErrNotFound)
	ErrServiceNotFound     = fmt.Errorf("service %w", ErrNotFound)
	ErrCartNotFound        = fmt.Errorf("cart %w", ErrNotFound)
	ErrPaymentNotFound     = fmt.Errorf("payment %w", ErrNotFound)
	ErrEmployeeNotFound    = fmt.Errorf("employee %w", ErrNotFound)
	ErrAppointmentNotFound = fmt.Errorf("appointment %w", ErrNotFound)
	ErrItemNotFound        = fmt.Errorf("cart item %w", ErrNotFound)
	ErrReviewNotFound      = fmt.Errorf("review %w", ErrNotFound)
)

var (
	ErrInvalidQuantity     = fmt.Errorf("%w: quantity must be at least 1", ErrValidation)
	ErrInvalidDiscountCode = fmt.Errorf("%w: invalid discount code", ErrValidation)
	ErrInvalidObjectID     = fmt.Errorf("%w: invalid id format", ErrValidation)
	ErrMissingField        = fmt.Errorf("%w: missing required field", ErrValidation)
	ErrInvalidAmount       = fmt.Errorf("%w: amount must not be negative", ErrValidation)
	ErrInvalidRole         = fmt.Errorf("%w: invalid role", ErrValidation)
	ErrInvalidCategory     = fmt.Errorf("%w: invalid category", ErrValidation)
	ErrInvalidStatus       = fmt.Errorf("%w: invalid status", ErrValidation)
	ErrInvalidRating       = fmt.Errorf("%w: rating must be between 0 and 5", ErrValidation)
	ErrInvalidDiscount     = fmt.Errorf("%w: discount must be between 0 and 100", ErrValidation)
	ErrInvalidPrice        = fmt.Errorf("%w: price must not be negative", ErrValidation)
	ErrEmptyCart           = fmt.Errorf("%w: cart is empty", ErrValidation)
)

var (
	ErrDuplicateEmail    = fmt.Errorf("%w: email already registered", ErrConflict)
	ErrDuplicateUsername = fmt.Errorf("%w: username already taken", ErrConflict)
	ErrInvalidTransition = fmt.Errorf("%w: invalid status transition", ErrConflict)
)

// MissingField reports which required field was absent.
func MissingField(name string) error {
	return fmt.Errorf("%w: %s", ErrMissingField, name)
}
