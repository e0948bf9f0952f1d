package systems

import "github.com/san-kum/ivpsol/internal/traj"

// VanDerPol implements the Van der Pol oscillator.
// State: [x, y] where y = dx/dt
// Equations:
//
//	dx/dt = y
//	dy/dt = μ(1 - x²)y - x
//
// The quadrature accumulates ∫ x² dt along the limit cycle.
type VanDerPol struct {
	mu float64 // Nonlinearity parameter
}

func NewVanDerPol() *VanDerPol {
	return &VanDerPol{
		mu: 1.0, // Classic value for limit cycle
	}
}

func (s *VanDerPol) Name() string  { return "vanderpol" }
func (s *VanDerPol) StateDim() int { return 2 }
func (s *VanDerPol) QuadDim() int  { return 1 }

func (s *VanDerPol) EOM(_ float64, y traj.State, params []float64) traj.State {
	mu := paramOr(params, 0, s.mu)
	x, v := y[0], y[1]
	return traj.State{v, mu*(1-x*x)*v - x}
}

func (s *VanDerPol) Quad(_ float64, y traj.State, _ []float64) traj.State {
	return traj.State{y[0] * y[0]}
}

func (s *VanDerPol) DefaultState() traj.State { return traj.State{2, 0} }
func (s *VanDerPol) DefaultSpan() [2]float64  { return [2]float64{0, 20} }
