package domain

import "errors"

// Failure classes of the selection path. Callers tell them apart with
// errors.Is to pick a user-facing message.
var (
	// ErrInvalidInput marks a malformed, empty or out-of-range offer batch or margin floor.
	ErrInvalidInput = errors.New("invalid input")
	// ErrModelLoad marks an estimator artifact that is missing, corrupt or incompatible.
	ErrModelLoad = errors.New("model load error")
	// ErrInfeasible means no offer satisfies the margin floor.
	ErrInfeasible = errors.New("infeasible")
)

// ErrSelectionNotFound is returned by history lookups for an unknown id.
var ErrSelectionNotFound = errors.New("selection not found")
