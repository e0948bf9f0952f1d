package quad

import (
	"sort"

	"github.com/san-kum/ivpsol/internal/traj"
)

// Integrand is the rate of a path-dependent quantity: dq/dt at time t and
// state y. The returned vector fixes the quadrature dimension m.
type Integrand func(t float64, y traj.State) traj.State

// Integrate computes the definite integral of f over [ta, tb] against the
// state samples of g, returning a length-m vector. The evaluation grid is
// g's own sample times inside the span, with ta and tb represented exactly;
// states between samples come from g's linear interpolation. q0, when
// non-nil, is added to the result (the accumulated value at ta carried by a
// caller); nil means zero.
//
// Both endpoints must lie inside g's time domain, inclusive, with tb >= ta;
// otherwise ErrOutOfBounds is returned.
func Integrate(f Integrand, ta, tb float64, g *traj.Trajectory, q0 traj.State) (traj.State, error) {
	n := g.Len()
	if n == 0 {
		return nil, ErrEmptyTrajectory
	}
	if ta < g.T[0] || tb > g.T[n-1] || tb < ta {
		return nil, ErrOutOfBounds
	}

	grid := buildGrid(g.T, ta, tb)

	dq := make([]traj.State, len(grid))
	for k, tk := range grid {
		y, _, _ := g.At(tk)
		dq[k] = f(tk, y)
	}
	m := len(dq[0])

	qf := make(traj.State, m)
	col := make([]float64, len(grid))
	for d := 0; d < m; d++ {
		for k := range dq {
			col[k] = dq[k][d]
		}
		qf[d] = simpson(grid, col)
	}

	for d := range q0 {
		if d < m {
			qf[d] += q0[d]
		}
	}
	return qf, nil
}

// buildGrid assembles the evaluation grid for [ta, tb]: ta (unless it is
// itself a sample), the trajectory samples covered by the span, and tb
// (unless already the last grid point). The result is strictly increasing
// with the endpoints represented exactly.
func buildGrid(t []float64, ta, tb float64) []float64 {
	// First sample index whose time is >= the endpoint (ceiling tie-break).
	i0 := sort.SearchFloat64s(t, ta)
	i1 := sort.SearchFloat64s(t, tb)

	grid := make([]float64, 0, i1-i0+2)
	if i0 >= len(t) || t[i0] != ta {
		grid = append(grid, ta)
	}
	grid = append(grid, t[i0:i1]...)
	if len(grid) == 0 || grid[len(grid)-1] != tb {
		grid = append(grid, tb)
	}
	return grid
}
