package wavefront_test

import (
	"errors"
	"math"
	"testing"

	"github.com/paulmach/orb"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/eikonal/grid"
	"github.com/katalvlaran/eikonal/wavefront"
)

// uniformField returns a (ny,nx) field filled with v.
func uniformField(g *grid.Grid, v float64) *mat.Dense {
	f := mat.NewDense(g.NY(), g.NX(), nil)
	raw := f.RawMatrix().Data
	for k := range raw {
		raw[k] = v
	}

	return f
}

// mustGrid builds a grid or fails the test.
func mustGrid(t *testing.T, w, h, res float64) *grid.Grid {
	t.Helper()
	g, err := grid.New(w, h, res)
	if err != nil {
		t.Fatalf("grid.New error: %v", err)
	}

	return g
}

//----------------------------------------------------------------------------//
// Validation Tests
//----------------------------------------------------------------------------//

// TestSolve_Validation exercises every sentinel error in order.
func TestSolve_Validation(t *testing.T) {
	g := mustGrid(t, 2, 2, 1.0)
	vel := uniformField(g, 1)

	cases := []struct {
		name    string
		g       *grid.Grid
		vel     *mat.Dense
		source  orb.Point
		wantErr error
	}{
		{"NilGrid", nil, vel, orb.Point{0, 0}, wavefront.ErrNilGrid},
		{"NilField", g, nil, orb.Point{0, 0}, wavefront.ErrNilField},
		{"ShapeMismatch", g, mat.NewDense(2, 2, nil), orb.Point{0, 0}, wavefront.ErrFieldShape},
		{"SourceNegative", g, vel, orb.Point{-1, 0}, wavefront.ErrSourceOutOfDomain},
		{"SourceBeyond", g, vel, orb.Point{0, 9}, wavefront.ErrSourceOutOfDomain},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := wavefront.Solve(tc.g, tc.vel, tc.source)
			if !errors.Is(err, tc.wantErr) {
				t.Errorf("Solve error = %v; want %v", err, tc.wantErr)
			}
		})
	}
}

//----------------------------------------------------------------------------//
// Field Property Tests
//----------------------------------------------------------------------------//

// TestSolve_ZeroAtSource seeds exactly one zero cell.
func TestSolve_ZeroAtSource(t *testing.T) {
	g := mustGrid(t, 3, 3, 0.5)
	dist, err := wavefront.Solve(g, uniformField(g, 1), orb.Point{1.5, 1})
	if err != nil {
		t.Fatalf("Solve error: %v", err)
	}

	si, sj := g.ToIndex(orb.Point{1.5, 1})
	if got := dist.At(si, sj); got != 0 {
		t.Errorf("distance at source = %v; want 0", got)
	}

	zeros := 0
	for _, v := range dist.RawMatrix().Data {
		if v == 0 {
			zeros++
		}
	}
	if zeros != 1 {
		t.Errorf("zero cells = %d; want exactly 1", zeros)
	}
}

// TestSolve_UniformMetric checks exact distances on a unit-speed 3×3 grid
// seeded at a corner: axis steps cost r, diagonal steps cost r·√2.
func TestSolve_UniformMetric(t *testing.T) {
	g := mustGrid(t, 2, 2, 1.0)
	dist, err := wavefront.Solve(g, uniformField(g, 1), orb.Point{0, 0})
	if err != nil {
		t.Fatalf("Solve error: %v", err)
	}

	cases := []struct {
		i, j int
		want float64
	}{
		{0, 0, 0},
		{0, 1, 1},
		{1, 0, 1},
		{1, 1, math.Sqrt2},
		{0, 2, 2},
		{2, 2, 2 * math.Sqrt2},
		{1, 2, 1 + math.Sqrt2},
	}
	for _, tc := range cases {
		if got := dist.At(tc.i, tc.j); math.Abs(got-tc.want) > 1e-12 {
			t.Errorf("dist(%d,%d) = %v; want %v", tc.i, tc.j, got, tc.want)
		}
	}
}

// TestSolve_SlowRegionDetour verifies costs steer the front: with a slow
// column splitting the grid, far-side arrival times exceed the free-space
// metric.
func TestSolve_SlowRegionDetour(t *testing.T) {
	g := mustGrid(t, 4, 4, 1.0) // 5×5 cells
	vel := uniformField(g, 1)
	for i := 0; i < g.NY(); i++ {
		vel.Set(i, 2, 0.001) // slow wall down column 2
	}

	dist, err := wavefront.Solve(g, vel, orb.Point{0, 0})
	if err != nil {
		t.Fatalf("Solve error: %v", err)
	}

	// Crossing the wall costs at least one step at 1/0.001.
	if got := dist.At(0, 4); got < 1000 {
		t.Errorf("far side arrival = %v; want ≥ 1000 (must cross the slow wall)", got)
	}
	// Near side stays cheap.
	if got := dist.At(0, 1); got != 1 {
		t.Errorf("near side arrival = %v; want 1", got)
	}
	// The wall is expensive but never unreachable.
	for _, v := range dist.RawMatrix().Data {
		if math.IsInf(v, 1) {
			t.Fatal("full flood fill must reach every cell")
		}
	}
}

// TestSolve_EdgeConsistency asserts the Dijkstra optimality condition on
// a non-uniform field: adjacent reachable cells never differ by more than
// the larger of the two directed edge costs.
func TestSolve_EdgeConsistency(t *testing.T) {
	g := mustGrid(t, 3, 3, 0.5)
	vel := uniformField(g, 1)
	// A slow 2×2 block in the middle.
	for i := 2; i <= 3; i++ {
		for j := 2; j <= 3; j++ {
			vel.Set(i, j, 0.05)
		}
	}

	dist, err := wavefront.Solve(g, vel, orb.Point{0.5, 0.5})
	if err != nil {
		t.Fatalf("Solve error: %v", err)
	}

	res := g.Resolution()
	for i := 0; i < g.NY(); i++ {
		for j := 0; j < g.NX(); j++ {
			for _, d := range grid.Offsets8 {
				ni, nj := i+d[0], j+d[1]
				if !g.InBounds(ni, nj) {
					continue
				}
				step := res
				if d[0] != 0 && d[1] != 0 {
					step = res * math.Sqrt2
				}
				// Directed costs differ; the gap is bounded by the larger.
				bound := math.Max(step/vel.At(ni, nj), step/vel.At(i, j))
				if gap := math.Abs(dist.At(i, j) - dist.At(ni, nj)); gap > bound+1e-9 {
					t.Fatalf("cells (%d,%d)↔(%d,%d): gap %v exceeds edge cost %v",
						i, j, ni, nj, gap, bound)
				}
			}
		}
	}
}

// TestSolve_Deterministic requires bit-identical fields across calls.
func TestSolve_Deterministic(t *testing.T) {
	g := mustGrid(t, 3, 2, 0.25)
	vel := uniformField(g, 1)
	vel.Set(3, 5, 0.001)
	vel.Set(4, 6, 0.01)

	a, err := wavefront.Solve(g, vel, orb.Point{2.5, 1.5})
	if err != nil {
		t.Fatalf("Solve error: %v", err)
	}
	b, err := wavefront.Solve(g, vel, orb.Point{2.5, 1.5})
	if err != nil {
		t.Fatalf("Solve error: %v", err)
	}

	ar, br := a.RawMatrix().Data, b.RawMatrix().Data
	for k := range ar {
		if ar[k] != br[k] {
			t.Fatalf("cell %d differs across solves: %v vs %v", k, ar[k], br[k])
		}
	}
}

// TestSolve_MaxDistance leaves capped-out cells at +Inf.
func TestSolve_MaxDistance(t *testing.T) {
	g := mustGrid(t, 4, 4, 1.0)
	dist, err := wavefront.Solve(g, uniformField(g, 1), orb.Point{0, 0},
		wavefront.WithMaxDistance(1.5))
	if err != nil {
		t.Fatalf("Solve error: %v", err)
	}

	if got := dist.At(0, 1); got != 1 {
		t.Errorf("dist(0,1) = %v; want 1", got)
	}
	if got := dist.At(0, 3); !math.IsInf(got, 1) {
		t.Errorf("dist(0,3) = %v; want +Inf beyond the cap", got)
	}
}

// TestWithMaxDistance_Panics rejects negative caps.
func TestWithMaxDistance_Panics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("WithMaxDistance(-1) should panic")
		}
	}()
	wavefront.WithMaxDistance(-1)(&wavefront.Options{})
}
