package grid_test

import (
	"errors"
	"testing"

	"github.com/paulmach/orb"

	"github.com/katalvlaran/eikonal/grid"
)

//----------------------------------------------------------------------------//
// Construction Tests
//----------------------------------------------------------------------------//

// TestNew_Errors verifies that New rejects non-positive inputs.
func TestNew_Errors(t *testing.T) {
	cases := []struct {
		name      string
		w, h, res float64
		wantErr   error
	}{
		{"ZeroWidth", 0, 4, 0.2, grid.ErrBadDomain},
		{"NegativeHeight", 5, -1, 0.2, grid.ErrBadDomain},
		{"ZeroResolution", 5, 4, 0, grid.ErrBadResolution},
		{"NegativeResolution", 5, 4, -0.1, grid.ErrBadResolution},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := grid.New(tc.w, tc.h, tc.res)
			if !errors.Is(err, tc.wantErr) {
				t.Errorf("New(%g,%g,%g) error = %v; want %v", tc.w, tc.h, tc.res, err, tc.wantErr)
			}
		})
	}
}

// TestNew_CellCounts checks the floor(W/r)+1 derivation on several domains.
func TestNew_CellCounts(t *testing.T) {
	cases := []struct {
		name      string
		w, h, res float64
		nx, ny    int
	}{
		{"FiveByFour", 5, 4, 0.2, 26, 21},
		{"SixBySix", 6, 6, 0.1, 61, 61},
		{"UnitCells", 3, 3, 1.0, 4, 4},
		{"NonDivisible", 5, 4, 0.3, 17, 14},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g, err := grid.New(tc.w, tc.h, tc.res)
			if err != nil {
				t.Fatalf("New error: %v", err)
			}
			if g.NX() != tc.nx || g.NY() != tc.ny {
				t.Errorf("counts = (%d,%d); want (%d,%d)", g.NX(), g.NY(), tc.nx, tc.ny)
			}
			if g.Cells() != tc.nx*tc.ny {
				t.Errorf("Cells() = %d; want %d", g.Cells(), tc.nx*tc.ny)
			}
		})
	}
}

//----------------------------------------------------------------------------//
// Conversion Tests
//----------------------------------------------------------------------------//

// TestToIndex checks the floor snapping rule, including out-of-domain
// points which must pass through unclamped.
func TestToIndex(t *testing.T) {
	g, err := grid.New(5, 4, 0.2)
	if err != nil {
		t.Fatalf("New error: %v", err)
	}

	cases := []struct {
		name string
		p    orb.Point
		i, j int
	}{
		{"Origin", orb.Point{0, 0}, 0, 0},
		{"Interior", orb.Point{0.5, 0.5}, 2, 2},
		{"CellBoundary", orb.Point{0.4, 0.2}, 1, 2},
		{"NegativeOut", orb.Point{-0.3, 0.1}, 0, -2},
		{"BeyondDomain", orb.Point{5.5, 4.5}, 22, 27},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			i, j := g.ToIndex(tc.p)
			if i != tc.i || j != tc.j {
				t.Errorf("ToIndex(%v) = (%d,%d); want (%d,%d)", tc.p, i, j, tc.i, tc.j)
			}
		})
	}
}

// TestToCoord verifies the index→coordinate direction is exact.
func TestToCoord(t *testing.T) {
	g, err := grid.New(3, 3, 0.5)
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	if p := g.ToCoord(0, 0); p != (orb.Point{0, 0}) {
		t.Errorf("ToCoord(0,0) = %v; want [0 0]", p)
	}
	if p := g.ToCoord(3, 2); p != (orb.Point{1, 1.5}) {
		t.Errorf("ToCoord(3,2) = %v; want [1 1.5]", p)
	}
}

// TestRoundTrip confirms index→coordinate→index is the identity for every
// in-bounds cell.
func TestRoundTrip(t *testing.T) {
	g, err := grid.New(2, 1.5, 0.25)
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	for i := 0; i < g.NY(); i++ {
		for j := 0; j < g.NX(); j++ {
			ri, rj := g.ToIndex(g.ToCoord(i, j))
			if ri != i || rj != j {
				t.Fatalf("round trip (%d,%d) → (%d,%d)", i, j, ri, rj)
			}
		}
	}
}

// TestInBounds checks the index bounds predicate on all four edges.
func TestInBounds(t *testing.T) {
	g, err := grid.New(2, 2, 1.0) // 3×3 cells
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	valid := [][2]int{{0, 0}, {2, 2}, {1, 2}}
	for _, ij := range valid {
		if !g.InBounds(ij[0], ij[1]) {
			t.Errorf("InBounds(%d,%d) = false; want true", ij[0], ij[1])
		}
	}
	invalid := [][2]int{{-1, 0}, {0, -1}, {3, 0}, {0, 3}}
	for _, ij := range invalid {
		if g.InBounds(ij[0], ij[1]) {
			t.Errorf("InBounds(%d,%d) = true; want false", ij[0], ij[1])
		}
	}
}

// TestOffsets8 confirms the neighborhood is the 8 distinct non-zero
// offsets with Chebyshev distance 1.
func TestOffsets8(t *testing.T) {
	seen := make(map[[2]int]bool, 8)
	for _, d := range grid.Offsets8 {
		if d[0] == 0 && d[1] == 0 {
			t.Error("Offsets8 contains the zero offset")
		}
		if d[0] < -1 || d[0] > 1 || d[1] < -1 || d[1] > 1 {
			t.Errorf("offset %v outside the unit neighborhood", d)
		}
		seen[d] = true
	}
	if len(seen) != 8 {
		t.Errorf("Offsets8 has %d distinct offsets; want 8", len(seen))
	}
}
