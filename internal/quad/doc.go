// Package quad computes path-dependent integral quantities along a
// trajectory.
//
// Integrate evaluates the definite integral of an integrand over a
// sub-interval of a trajectory's time domain, reusing the trajectory's own
// sample grid rather than resampling at a fixed step. Reconstruct walks a
// trajectory interval by interval and accumulates those integrals into a
// cumulative quadrature history, producing a new trajectory with Q filled in.
//
// Sample values are combined with composite Simpson's rule over consecutive
// interval pairs, with non-uniform-spacing weights. Simpson's rule needs an
// odd number of grid points; on even-point grids the leftover final interval
// is integrated with the trapezoidal rule.
package quad
