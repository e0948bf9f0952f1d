// Package traj provides the Trajectory container: a time-ordered record of
// state, quadrature, and control samples approximating an integral curve,
// with linear interpolation for point queries between samples.
package traj

import (
	"math"
	"sort"
)

// State is a vector of real values (a point in state or quadrature space).
// A scalar quantity is a State of length 1.
type State []float64

func (s State) Clone() State {
	c := make(State, len(s))
	copy(c, s)
	return c
}

func (s State) IsValid() bool {
	for _, v := range s {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

func (s State) Norm() float64 {
	sum := 0.0
	for _, v := range s {
		sum += v * v
	}
	return math.Sqrt(sum)
}

func (s State) Add(other State) State {
	result := make(State, len(s))
	for i := range s {
		if i < len(other) {
			result[i] = s[i] + other[i]
		} else {
			result[i] = s[i]
		}
	}
	return result
}

// Trajectory is a sampled integral curve. T is strictly increasing; Y is
// aligned index-for-index with T. Q (quadratures) and U (controls) are
// optional and, when present, have the same length as T.
type Trajectory struct {
	T []float64
	Y []State
	Q []State
	U []State
}

// New wraps the given sample times and states. The caller guarantees that
// t is strictly increasing and len(t) == len(y).
func New(t []float64, y []State) *Trajectory {
	return &Trajectory{T: t, Y: y}
}

// Len returns the number of samples (0 for an uninitialized trajectory).
func (g *Trajectory) Len() int {
	if g == nil {
		return 0
	}
	return len(g.T)
}

// At queries the trajectory at an arbitrary time. The state is produced by
// per-dimension linear interpolation against the (T, Y) samples; quadrature
// and control components are not interpolated and come back nil. An empty
// trajectory yields (nil, nil, nil). Queries outside [T[0], T[n-1]]
// extrapolate the boundary segment linearly.
func (g *Trajectory) At(t float64) (y, q, u State) {
	n := g.Len()
	if n == 0 {
		return nil, nil, nil
	}
	if n == 1 {
		return g.Y[0].Clone(), nil, nil
	}

	// First sample index whose time is >= t, clamped to a valid segment.
	i := sort.SearchFloat64s(g.T, t)
	if i < 1 {
		i = 1
	}
	if i > n-1 {
		i = n - 1
	}

	t0, t1 := g.T[i-1], g.T[i]
	w := (t - t0) / (t1 - t0)

	y = make(State, len(g.Y[0]))
	for d := range y {
		y[d] = g.Y[i-1][d] + w*(g.Y[i][d]-g.Y[i-1][d])
	}
	return y, nil, nil
}

// Sample returns the raw sample at index i. Components that are not
// populated come back nil.
func (g *Trajectory) Sample(i int) (t float64, y, q, u State) {
	t = g.T[i]
	y = g.Y[i]
	if g.Q != nil {
		q = g.Q[i]
	}
	if g.U != nil {
		u = g.U[i]
	}
	return t, y, q, u
}

// WithQuads returns a trajectory sharing T, Y, and U with g but carrying the
// given quadrature history.
func (g *Trajectory) WithQuads(q []State) *Trajectory {
	return &Trajectory{T: g.T, Y: g.Y, Q: q, U: g.U}
}
