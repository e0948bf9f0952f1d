package quad

// simpson integrates sampled values f over the strictly increasing grid x
// using composite Simpson's rule with non-uniform-spacing weights. Grids
// with fewer than three points degrade to the trapezoidal rule (two points)
// or zero (one or no points); an even-point grid leaves one unpaired
// interval at the end, which is integrated with the trapezoidal rule.
func simpson(x, f []float64) float64 {
	n := len(x)
	if n < 2 {
		return 0
	}
	if n == 2 {
		return 0.5 * (x[1] - x[0]) * (f[0] + f[1])
	}

	total := 0.0
	i := 0
	for ; i+2 < n; i += 2 {
		h0 := x[i+1] - x[i]
		h1 := x[i+2] - x[i+1]
		hs := h0 + h1
		total += hs / 6.0 * ((2-h1/h0)*f[i] + hs*hs/(h0*h1)*f[i+1] + (2-h0/h1)*f[i+2])
	}
	if i+1 < n {
		total += 0.5 * (x[i+1] - x[i]) * (f[i] + f[i+1])
	}
	return total
}
