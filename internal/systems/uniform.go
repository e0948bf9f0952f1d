package systems

import "github.com/san-kum/ivpsol/internal/traj"

// Uniform is unit-rate motion: dy/dt = 1, so y(t) = y0 + t. Its quadrature
// is the elapsed time itself, which makes it the reference problem for
// checking the propagation/reconstruction pipeline end to end.
type Uniform struct{}

func NewUniform() *Uniform { return &Uniform{} }

func (s *Uniform) Name() string  { return "uniform" }
func (s *Uniform) StateDim() int { return 1 }
func (s *Uniform) QuadDim() int  { return 1 }

func (s *Uniform) EOM(_ float64, _ traj.State, _ []float64) traj.State {
	return traj.State{1}
}

func (s *Uniform) Quad(_ float64, _ traj.State, _ []float64) traj.State {
	return traj.State{1}
}

func (s *Uniform) DefaultState() traj.State { return traj.State{0} }
func (s *Uniform) DefaultSpan() [2]float64  { return [2]float64{0, 10} }
