// Package ivp propagates initial value problems.
//
// A Propagator drives an adaptive Dormand-Prince (RK45) solver over a time
// span, records the accepted steps as a [traj.Trajectory], and, when a
// quadrature integrand is supplied, hands the result to quad.Reconstruct so
// the returned trajectory carries a full quadrature history.
//
// Each call is independent and purely functional: no shared state, no
// retries beyond the solver's own step-size control.
package ivp
