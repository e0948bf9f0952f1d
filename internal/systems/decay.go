package systems

import "github.com/san-kum/ivpsol/internal/traj"

// Decay is first-order exponential decay: dy/dt = -ky. The quadrature is
// the accumulated exposure ∫ y dt, which tends to y0/k.
type Decay struct {
	k float64
}

func NewDecay() *Decay {
	return &Decay{k: 1.0}
}

func (s *Decay) Name() string  { return "decay" }
func (s *Decay) StateDim() int { return 1 }
func (s *Decay) QuadDim() int  { return 1 }

func (s *Decay) EOM(_ float64, y traj.State, params []float64) traj.State {
	k := paramOr(params, 0, s.k)
	return traj.State{-k * y[0]}
}

func (s *Decay) Quad(_ float64, y traj.State, _ []float64) traj.State {
	return traj.State{y[0]}
}

func (s *Decay) DefaultState() traj.State { return traj.State{1} }
func (s *Decay) DefaultSpan() [2]float64  { return [2]float64{0, 5} }
