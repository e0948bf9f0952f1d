package ivp

import "errors"

var (
	// ErrBadSpan indicates a time span whose end precedes its start.
	ErrBadSpan = errors.New("ivp: time span must not be decreasing")

	// ErrEmptyState indicates an initial state with no components.
	ErrEmptyState = errors.New("ivp: empty initial state")

	// ErrInvalidState indicates a NaN or Inf appeared during the solve.
	ErrInvalidState = errors.New("ivp: invalid state (NaN or Inf detected)")

	// ErrStepTooSmall indicates the adaptive step shrank below the
	// resolvable minimum without meeting the error tolerance.
	ErrStepTooSmall = errors.New("ivp: adaptive step below minimum")
)
