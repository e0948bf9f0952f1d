package quad

import "errors"

var (
	// ErrOutOfBounds indicates a requested integration span that is not
	// contained in the reference trajectory's time domain.
	ErrOutOfBounds = errors.New("quad: time span out of integration bounds")

	// ErrEmptyTrajectory indicates an integration request against a
	// trajectory with no samples.
	ErrEmptyTrajectory = errors.New("quad: empty trajectory")
)
