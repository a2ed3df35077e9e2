package domain

import "errors"

// Error taxonomy for the lifecycle and pricing engine. Callers match with
// errors.Is; implementations wrap these with context via fmt.Errorf and %w.
var (
	// ErrNotFound means a referenced equipment, rental, item or customer
	// does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidTransition means a lifecycle event was attempted from an
	// incompatible state, or a transition guard failed. State is unchanged.
	ErrInvalidTransition = errors.New("invalid lifecycle transition")

	// ErrInsufficientAvailability means the requested quantity exceeds the
	// equipment's available stock. User-correctable.
	ErrInsufficientAvailability = errors.New("insufficient equipment availability")

	// ErrInvalidDurationType means the duration type selects no price tier.
	ErrInvalidDurationType = errors.New("invalid duration type")

	// ErrInvalidQuantity means a quantity below 1 was supplied.
	ErrInvalidQuantity = errors.New("quantity must be at least 1")

	// ErrInvalidDateRange means an end date precedes a start date.
	ErrInvalidDateRange = errors.New("end date must not be before start date")

	// ErrConflict means a transaction kept losing to concurrent writers
	// after bounded retries.
	ErrConflict = errors.New("concurrent update conflict")
)
