package ivp

import (
	"fmt"

	"github.com/san-kum/ivpsol/internal/quad"
	"github.com/san-kum/ivpsol/internal/traj"
)

// Func is a vector field evaluated at time t and state y with extra
// problem parameters. It serves both equations of motion (dy/dt) and
// quadrature integrands (dq/dt).
type Func func(t float64, y traj.State, params []float64) traj.State

// Default solver configuration.
const (
	DefaultAbsTol  = 1e-5
	DefaultRelTol  = 1e-3
	DefaultMaxStep = 0.1
)

// Options configures the adaptive solver. Zero or negative fields fall back
// to the defaults.
type Options struct {
	AbsTol  float64
	RelTol  float64
	MaxStep float64
}

func DefaultOptions() Options {
	return Options{
		AbsTol:  DefaultAbsTol,
		RelTol:  DefaultRelTol,
		MaxStep: DefaultMaxStep,
	}
}

func (o Options) normalized() Options {
	if o.AbsTol <= 0 {
		o.AbsTol = DefaultAbsTol
	}
	if o.RelTol <= 0 {
		o.RelTol = DefaultRelTol
	}
	if o.MaxStep <= 0 {
		o.MaxStep = DefaultMaxStep
	}
	return o
}

// Propagator integrates equations of motion over a time span and, when a
// quadrature integrand is supplied, reconstructs the quadrature history of
// the resulting trajectory.
type Propagator struct {
	opts Options
}

func New(opts Options) *Propagator {
	return &Propagator{opts: opts.normalized()}
}

// Propagate solves dy/dt = eom(t, y, params) over [tspan[0], tspan[1]]
// starting at y0, capturing the solver's accepted steps as a trajectory.
// When quadf is non-nil the trajectory comes back with Q reconstructed from
// the initial quadrature value q0 (nil means zero); otherwise Q is unset.
func (p *Propagator) Propagate(eom, quadf Func, tspan [2]float64, y0, q0 traj.State, params []float64) (*traj.Trajectory, error) {
	if len(y0) == 0 {
		return nil, ErrEmptyState
	}
	if !y0.IsValid() {
		return nil, fmt.Errorf("initial state: %w", ErrInvalidState)
	}
	if tspan[1] < tspan[0] {
		return nil, ErrBadSpan
	}

	f := func(t float64, y traj.State) traj.State { return eom(t, y, params) }

	ts, ys, err := solve(f, tspan[0], tspan[1], y0, p.opts)
	if err != nil {
		return nil, err
	}

	g := traj.New(ts, ys)
	if quadf == nil {
		return g, nil
	}

	integrand := func(t float64, y traj.State) traj.State { return quadf(t, y, params) }
	return quad.Reconstruct(integrand, g, q0)
}

// stepError attaches solve progress to a sentinel error.
func stepError(err error, step int, t float64) error {
	return fmt.Errorf("step %d (t=%.6g): %w", step, t, err)
}
