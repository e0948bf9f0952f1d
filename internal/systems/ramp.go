package systems

import "github.com/san-kum/ivpsol/internal/traj"

// Ramp grows with a linear rate: dy/dt = 2t, so y(t) = y0 + t². The
// quadrature integrand equals the equation of motion, so state growth and
// its own rate-integral stay self-consistent.
type Ramp struct{}

func NewRamp() *Ramp { return &Ramp{} }

func (s *Ramp) Name() string  { return "ramp" }
func (s *Ramp) StateDim() int { return 1 }
func (s *Ramp) QuadDim() int  { return 1 }

func (s *Ramp) EOM(t float64, _ traj.State, _ []float64) traj.State {
	return traj.State{2 * t}
}

func (s *Ramp) Quad(t float64, _ traj.State, _ []float64) traj.State {
	return traj.State{2 * t}
}

func (s *Ramp) DefaultState() traj.State { return traj.State{0} }
func (s *Ramp) DefaultSpan() [2]float64  { return [2]float64{0, 5} }
