package domain

import "errors"

// Failure taxonomy surfaced by the pricing and lifecycle engine. Callers
// classify with errors.Is; the HTTP layer maps these to status codes.
var (
	// ErrInvalidWindow reports a malformed or non-positive time range.
	ErrInvalidWindow = errors.New("invalid time window")

	// ErrCarUnavailable reports an overlap conflict at rental creation time.
	ErrCarUnavailable = errors.New("car is not available for the requested window")

	// ErrInvalidRateType reports that no pricing strategy is registered for
	// the requested rate type. Never falls back to a default strategy.
	ErrInvalidRateType = errors.New("no pricing strategy for rate type")

	// ErrInvalidState reports a lifecycle operation attempted from a terminal
	// or wrong state.
	ErrInvalidState = errors.New("operation not allowed in current rental state")

	// ErrNotFound reports a missing car, category, customer or rental.
	ErrNotFound = errors.New("not found")

	// ErrConflict reports a catalog integrity violation: duplicate VIN or
	// plate, or deleting a record that is still referenced.
	ErrConflict = errors.New("conflict")

	// ErrInvalidInput reports a malformed catalog or customer payload.
	ErrInvalidInput = errors.New("invalid input")
)
