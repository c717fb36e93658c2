package types

import "errors"

// Domain errors surfaced by the order services. All of them are
// deterministic business-rule violations: none is retryable, and every one
// aborts the enclosing transaction.
var (
	// Stock invariant
	ErrNotEnoughStock = errors.New("not enough stock")

	// Invalid state transitions
	ErrOrderAlreadyCancelled = errors.New("order already cancelled")
	ErrDeliveryCompleted     = errors.New("delivery already completed")

	// Input validation
	ErrInvalidCount = errors.New("count must be positive")
	ErrInvalidPrice = errors.New("price must be positive")
	ErrInvalidStock = errors.New("stock quantity cannot be negative")
	ErrEmptyName    = errors.New("name cannot be empty")
)
