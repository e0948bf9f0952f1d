// Package systems provides named example problems for the propagator: small
// ODE systems, each with an optional quadrature integrand and sensible
// defaults, looked up by name from the CLI and tests.
package systems

import (
	"fmt"
	"sort"

	"github.com/san-kum/ivpsol/internal/traj"
)

// System is a named ODE problem with defaults for running it standalone.
type System interface {
	Name() string
	StateDim() int
	EOM(t float64, y traj.State, params []float64) traj.State
	DefaultState() traj.State
	DefaultSpan() [2]float64
}

// Quadratured is implemented by systems that carry a path-dependent
// quantity to accumulate along the trajectory.
type Quadratured interface {
	QuadDim() int
	Quad(t float64, y traj.State, params []float64) traj.State
}

var registry = map[string]func() System{
	"uniform":    func() System { return NewUniform() },
	"ramp":       func() System { return NewRamp() },
	"oscillator": func() System { return NewOscillator() },
	"decay":      func() System { return NewDecay() },
	"vanderpol":  func() System { return NewVanDerPol() },
}

// New looks a system up by name.
func New(name string) (System, error) {
	ctor, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("unknown system: %s", name)
	}
	return ctor(), nil
}

// Names lists the registered systems in sorted order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// paramOr reads params[i] when present, falling back to def.
func paramOr(params []float64, i int, def float64) float64 {
	if i < len(params) {
		return params[i]
	}
	return def
}
