package quad

import (
	"errors"
	"math"
	"testing"

	"github.com/san-kum/ivpsol/internal/traj"
)

// rampTrajectory samples y(t) = t on n uniform points over [0, tf].
func rampTrajectory(tf float64, n int) *traj.Trajectory {
	t := make([]float64, n)
	y := make([]traj.State, n)
	for i := 0; i < n; i++ {
		t[i] = tf * float64(i) / float64(n-1)
		y[i] = traj.State{t[i]}
	}
	return traj.New(t, y)
}

func TestIntegrate_ConstantRate(t *testing.T) {
	g := rampTrajectory(10, 101)
	unit := func(tt float64, y traj.State) traj.State { return traj.State{1} }

	q, err := Integrate(unit, 0, 10, g, nil)
	if err != nil {
		t.Fatalf("Integrate returned error: %v", err)
	}
	if math.Abs(q[0]-10) > 1e-9 {
		t.Errorf("constant rate over [0,10]: got %v, want 10", q[0])
	}
}

func TestIntegrate_LinearRateExact(t *testing.T) {
	g := rampTrajectory(5, 51)
	rate := func(tt float64, y traj.State) traj.State { return traj.State{2 * tt} }

	q, err := Integrate(rate, 0, 5, g, nil)
	if err != nil {
		t.Fatalf("Integrate returned error: %v", err)
	}
	if math.Abs(q[0]-25) > 1e-9 {
		t.Errorf("linear rate over [0,5]: got %v, want 25", q[0])
	}
}

func TestIntegrate_QuadraticExactOnOddGrid(t *testing.T) {
	// 11 points over [0,10]: five Simpson pairs, no trapezoid tail.
	// Simpson's rule is exact for quadratics.
	g := rampTrajectory(10, 11)
	rate := func(tt float64, y traj.State) traj.State { return traj.State{3 * tt * tt} }

	q, err := Integrate(rate, 0, 10, g, nil)
	if err != nil {
		t.Fatalf("Integrate returned error: %v", err)
	}
	if math.Abs(q[0]-1000) > 1e-9 {
		t.Errorf("quadratic rate over [0,10]: got %v, want 1000", q[0])
	}
}

func TestIntegrate_OffGridEndpoints(t *testing.T) {
	g := rampTrajectory(10, 101)
	rate := func(tt float64, y traj.State) traj.State { return traj.State{2 * tt} }

	// Endpoints between samples still land exactly on the grid.
	q, err := Integrate(rate, 1.25, 7.75, g, nil)
	if err != nil {
		t.Fatalf("Integrate returned error: %v", err)
	}
	want := 7.75*7.75 - 1.25*1.25
	if math.Abs(q[0]-want) > 1e-9 {
		t.Errorf("off-grid endpoints: got %v, want %v", q[0], want)
	}
}

func TestIntegrate_ZeroWidth(t *testing.T) {
	g := rampTrajectory(10, 101)
	rate := func(tt float64, y traj.State) traj.State { return traj.State{math.Sin(tt), math.Cos(tt)} }

	q, err := Integrate(rate, 3.3, 3.3, g, nil)
	if err != nil {
		t.Fatalf("Integrate returned error: %v", err)
	}
	if len(q) != 2 {
		t.Fatalf("zero-width integral must fix the quad dimension: got %d", len(q))
	}
	if q[0] != 0 || q[1] != 0 {
		t.Errorf("zero-width integral must be zero: got %v", q)
	}
}

func TestIntegrate_Offset(t *testing.T) {
	g := rampTrajectory(10, 101)
	unit := func(tt float64, y traj.State) traj.State { return traj.State{1} }

	q, err := Integrate(unit, 0, 4, g, traj.State{5})
	if err != nil {
		t.Fatalf("Integrate returned error: %v", err)
	}
	if math.Abs(q[0]-9) > 1e-9 {
		t.Errorf("offset integral: got %v, want 9", q[0])
	}
}

func TestIntegrate_Additivity(t *testing.T) {
	g := rampTrajectory(10, 1001)
	rate := func(tt float64, y traj.State) traj.State { return traj.State{math.Sin(tt)} }

	whole, err := Integrate(rate, 1.5, 8.75, g, nil)
	if err != nil {
		t.Fatalf("Integrate returned error: %v", err)
	}
	left, err := Integrate(rate, 1.5, 4.25, g, nil)
	if err != nil {
		t.Fatalf("Integrate returned error: %v", err)
	}
	right, err := Integrate(rate, 4.25, 8.75, g, nil)
	if err != nil {
		t.Fatalf("Integrate returned error: %v", err)
	}

	if diff := math.Abs(whole[0] - left[0] - right[0]); diff > 1e-5 {
		t.Errorf("additivity violated by %e", diff)
	}
}

func TestIntegrate_OutOfBounds(t *testing.T) {
	g := rampTrajectory(10, 11)
	unit := func(tt float64, y traj.State) traj.State { return traj.State{1} }

	cases := []struct {
		name   string
		ta, tb float64
	}{
		{"start below domain", -1, 5},
		{"end above domain", 5, 11},
		{"fully outside", 20, 30},
		{"reversed span", 7, 3},
	}
	for _, c := range cases {
		if _, err := Integrate(unit, c.ta, c.tb, g, nil); !errors.Is(err, ErrOutOfBounds) {
			t.Errorf("%s: expected ErrOutOfBounds, got %v", c.name, err)
		}
	}
}

func TestIntegrate_EmptyTrajectory(t *testing.T) {
	unit := func(tt float64, y traj.State) traj.State { return traj.State{1} }

	if _, err := Integrate(unit, 0, 1, &traj.Trajectory{}, nil); !errors.Is(err, ErrEmptyTrajectory) {
		t.Errorf("expected ErrEmptyTrajectory, got %v", err)
	}
}

func TestIntegrate_VectorIntegrand(t *testing.T) {
	g := rampTrajectory(2, 21)
	rate := func(tt float64, y traj.State) traj.State { return traj.State{1, 2 * tt} }

	q, err := Integrate(rate, 0, 2, g, nil)
	if err != nil {
		t.Fatalf("Integrate returned error: %v", err)
	}
	if math.Abs(q[0]-2) > 1e-9 || math.Abs(q[1]-4) > 1e-9 {
		t.Errorf("vector integrand: got %v, want [2 4]", q)
	}
}

func TestBuildGrid_Endpoints(t *testing.T) {
	ts := []float64{0, 1, 2, 3, 4}

	grid := buildGrid(ts, 0.5, 3.5)
	want := []float64{0.5, 1, 2, 3, 3.5}
	if len(grid) != len(want) {
		t.Fatalf("grid length: got %v, want %v", grid, want)
	}
	for i := range want {
		if grid[i] != want[i] {
			t.Errorf("grid[%d]: got %v, want %v", i, grid[i], want[i])
		}
	}

	// Endpoints on samples must not be duplicated.
	grid = buildGrid(ts, 1, 3)
	want = []float64{1, 2, 3}
	if len(grid) != len(want) {
		t.Fatalf("on-sample grid length: got %v, want %v", grid, want)
	}
	for i := range want {
		if grid[i] != want[i] {
			t.Errorf("on-sample grid[%d]: got %v, want %v", i, grid[i], want[i])
		}
	}

	// Degenerate span collapses to a single point.
	if grid = buildGrid(ts, 2, 2); len(grid) != 1 || grid[0] != 2 {
		t.Errorf("degenerate grid: got %v", grid)
	}
}

func TestSimpson_Degrades(t *testing.T) {
	if v := simpson([]float64{1}, []float64{3}); v != 0 {
		t.Errorf("single point: got %v, want 0", v)
	}
	if v := simpson([]float64{0, 2}, []float64{1, 3}); math.Abs(v-4) > 1e-12 {
		t.Errorf("two-point trapezoid: got %v, want 4", v)
	}
}

func TestSimpson_NonUniformQuadratic(t *testing.T) {
	// One non-uniform pair: Simpson weights must stay exact for quadratics.
	x := []float64{0, 0.5, 2}
	f := []float64{0, 0.25, 4} // f = x^2
	if v := simpson(x, f); math.Abs(v-8.0/3.0) > 1e-12 {
		t.Errorf("non-uniform quadratic: got %v, want %v", v, 8.0/3.0)
	}
}
