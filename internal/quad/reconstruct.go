package quad

import (
	"github.com/san-kum/ivpsol/internal/traj"
)

// Reconstruction of a long trajectory computes one independent integral per
// consecutive sample pair; above this many intervals the integrals are
// fanned out across workers and only the cumulative sum stays sequential.
const parallelIntervals = 256

// Reconstruct produces a trajectory identical to g in T, Y, and U, with Q[i]
// equal to the cumulative integral of f from T[0] to T[i], offset by the
// initial quadrature value. q0 selects that offset; when nil it falls back
// to g's own Q[0] if present, and to zero otherwise.
//
// The result is strictly cumulative: Q[i+1] = Q[i] + ∫_{T[i]}^{T[i+1]} f dt
// and Q[0] = q0.
func Reconstruct(f Integrand, g *traj.Trajectory, q0 traj.State) (*traj.Trajectory, error) {
	n := g.Len()
	if n == 0 {
		return nil, ErrEmptyTrajectory
	}

	if q0 == nil && len(g.Q) > 0 {
		q0 = g.Q[0]
	}

	// Zero-width integral at T[0]: always zero, fixes the quad dimension m.
	seed, err := Integrate(f, g.T[0], g.T[0], g, q0)
	if err != nil {
		return nil, err
	}

	inc, err := intervalIntegrals(f, g)
	if err != nil {
		return nil, err
	}

	q := make([]traj.State, n)
	q[0] = seed
	for i := 0; i < n-1; i++ {
		q[i+1] = q[i].Add(inc[i])
	}
	return g.WithQuads(q), nil
}

// intervalIntegrals computes the integral of f over every consecutive sample
// pair of g. The integrals are independent of one another, so large
// trajectories are processed in parallel chunks.
func intervalIntegrals(f Integrand, g *traj.Trajectory) ([]traj.State, error) {
	n := g.Len() - 1
	inc := make([]traj.State, n)
	errs := make([]error, n)

	work := func(start, end int) {
		for i := start; i < end; i++ {
			inc[i], errs[i] = Integrate(f, g.T[i], g.T[i+1], g, nil)
		}
	}

	if n >= parallelIntervals {
		ParallelFor(n, 64, work)
	} else {
		work(0, n)
	}

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return inc, nil
}
