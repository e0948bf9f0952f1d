package ivp

import (
	"math"

	"github.com/san-kum/ivpsol/internal/traj"
)

// Dormand-Prince coefficients (RK45)
var (
	a2 = 1.0 / 5.0
	a3 = 3.0 / 10.0
	a4 = 4.0 / 5.0
	a5 = 8.0 / 9.0

	b21 = 1.0 / 5.0
	b31 = 3.0 / 40.0
	b32 = 9.0 / 40.0
	b41 = 44.0 / 45.0
	b42 = -56.0 / 15.0
	b43 = 32.0 / 9.0
	b51 = 19372.0 / 6561.0
	b52 = -25360.0 / 2187.0
	b53 = 64448.0 / 6561.0
	b54 = -212.0 / 729.0
	b61 = 9017.0 / 3168.0
	b62 = -355.0 / 33.0
	b63 = 46732.0 / 5247.0
	b64 = 49.0 / 176.0
	b65 = -5103.0 / 18656.0

	c1 = 35.0 / 384.0
	c3 = 500.0 / 1113.0
	c4 = 125.0 / 192.0
	c5 = -2187.0 / 6784.0
	c6 = 11.0 / 84.0

	dc1 = c1 - 5179.0/57600.0
	dc3 = c3 - 7571.0/16695.0
	dc4 = c4 - 393.0/640.0
	dc5 = c5 - -92097.0/339200.0
	dc6 = c6 - 187.0/2100.0
	dc7 = -1.0 / 40.0
)

const (
	safety   = 0.9
	minScale = 0.2
	maxScale = 10.0
)

// rhs is the right-hand side with parameters already bound.
type rhs func(t float64, y traj.State) traj.State

// rk45Step takes one trial Dormand-Prince step of size h from (t, y) and
// returns the fifth-order solution together with the scaled error norm
// (accept when <= 1) under the abstol/reltol pair.
func rk45Step(f rhs, t float64, y traj.State, h, abstol, reltol float64) (traj.State, float64) {
	n := len(y)

	k1 := f(t, y)

	y2 := make(traj.State, n)
	for i := 0; i < n; i++ {
		y2[i] = y[i] + h*b21*k1[i]
	}
	k2 := f(t+a2*h, y2)

	y3 := make(traj.State, n)
	for i := 0; i < n; i++ {
		y3[i] = y[i] + h*(b31*k1[i]+b32*k2[i])
	}
	k3 := f(t+a3*h, y3)

	y4 := make(traj.State, n)
	for i := 0; i < n; i++ {
		y4[i] = y[i] + h*(b41*k1[i]+b42*k2[i]+b43*k3[i])
	}
	k4 := f(t+a4*h, y4)

	y5 := make(traj.State, n)
	for i := 0; i < n; i++ {
		y5[i] = y[i] + h*(b51*k1[i]+b52*k2[i]+b53*k3[i]+b54*k4[i])
	}
	k5 := f(t+a5*h, y5)

	y6 := make(traj.State, n)
	for i := 0; i < n; i++ {
		y6[i] = y[i] + h*(b61*k1[i]+b62*k2[i]+b63*k3[i]+b64*k4[i]+b65*k5[i])
	}
	k6 := f(t+h, y6)

	yNew := make(traj.State, n)
	for i := 0; i < n; i++ {
		yNew[i] = y[i] + h*(c1*k1[i]+c3*k3[i]+c4*k4[i]+c5*k5[i]+c6*k6[i])
	}

	k7 := f(t+h, yNew)

	// RMS of the embedded error against the mixed tolerance scale.
	errSum := 0.0
	for i := 0; i < n; i++ {
		errEst := h * (dc1*k1[i] + dc3*k3[i] + dc4*k4[i] + dc5*k5[i] + dc6*k6[i] + dc7*k7[i])
		scale := abstol + reltol*math.Max(math.Abs(y[i]), math.Abs(yNew[i]))
		errSum += (errEst / scale) * (errEst / scale)
	}
	errNorm := math.Sqrt(errSum / float64(n))

	return yNew, errNorm
}

// solve integrates f from t0 to tf starting at y0, returning the accepted
// step times and states. The first sample is (t0, y0).
func solve(f rhs, t0, tf float64, y0 traj.State, opts Options) ([]float64, []traj.State, error) {
	ts := []float64{t0}
	ys := []traj.State{y0.Clone()}
	if tf == t0 {
		return ts, ys, nil
	}

	hMin := 1e-13 * math.Max(1, math.Abs(tf-t0))
	h := math.Min(opts.MaxStep, tf-t0)

	t := t0
	y := y0.Clone()

	for t < tf {
		last := false
		if h >= tf-t {
			h = tf - t
			last = true
		}

		yNew, errNorm := rk45Step(f, t, y, h, opts.AbsTol, opts.RelTol)
		if !yNew.IsValid() {
			return ts, ys, stepError(ErrInvalidState, len(ts)-1, t)
		}

		if errNorm > 1 {
			scale := math.Max(minScale, safety*math.Pow(errNorm, -0.25))
			h *= scale
			if h < hMin {
				return ts, ys, stepError(ErrStepTooSmall, len(ts)-1, t)
			}
			continue
		}

		if last {
			t = tf // avoid a stray roundoff-width step at the end
		} else {
			t += h
		}
		y = yNew
		ts = append(ts, t)
		ys = append(ys, y)

		if errNorm > 0 {
			scale := math.Min(maxScale, safety*math.Pow(errNorm, -0.2))
			h *= scale
		} else {
			h *= maxScale
		}
		if h > opts.MaxStep {
			h = opts.MaxStep
		}
	}

	return ts, ys, nil
}
