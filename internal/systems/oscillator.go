package systems

import "github.com/san-kum/ivpsol/internal/traj"

// Oscillator is the harmonic oscillator with angular frequency ω.
// State: [x, v] where v = dx/dt
// Equations:
//
//	dx/dt = v
//	dv/dt = -ω²x
//
// The quadrature accumulates kinetic energy, ∫ ½v² dt.
type Oscillator struct {
	omega float64
}

func NewOscillator() *Oscillator {
	return &Oscillator{omega: 1.0}
}

func (s *Oscillator) Name() string  { return "oscillator" }
func (s *Oscillator) StateDim() int { return 2 }
func (s *Oscillator) QuadDim() int  { return 1 }

func (s *Oscillator) EOM(_ float64, y traj.State, params []float64) traj.State {
	w := paramOr(params, 0, s.omega)
	return traj.State{y[1], -w * w * y[0]}
}

func (s *Oscillator) Quad(_ float64, y traj.State, _ []float64) traj.State {
	return traj.State{0.5 * y[1] * y[1]}
}

func (s *Oscillator) DefaultState() traj.State { return traj.State{1, 0} }
func (s *Oscillator) DefaultSpan() [2]float64  { return [2]float64{0, 10} }
