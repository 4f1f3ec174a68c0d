package grid

import (
	"errors"
	"math"

	"github.com/paulmach/orb"
)

// Sentinel errors for grid construction.
var (
	// ErrBadDomain indicates a non-positive domain width or height.
	ErrBadDomain = errors.New("grid: domain width and height must be > 0")
	// ErrBadResolution indicates a non-positive cell edge length.
	ErrBadResolution = errors.New("grid: resolution must be > 0")
)

// Offsets8 lists the 8-connected neighbor offsets as (di,dj) pairs,
// row-major scan order. Shared by the wavefront solver and the path
// extractor so both traverse neighbors in the same deterministic order.
var Offsets8 = [8][2]int{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// Grid is an immutable fixed-resolution discretization of the rectangular
// domain [0,width]×[0,height]. Cell (i,j) anchors at continuous point
// (j·resolution, i·resolution).
type Grid struct {
	width, height float64
	resolution    float64
	nx, ny        int
}

// New constructs a Grid over a width×height domain sampled at the given
// resolution. Returns ErrBadDomain or ErrBadResolution on non-positive
// inputs. Complexity: O(1).
func New(width, height, resolution float64) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrBadDomain
	}
	if resolution <= 0 {
		return nil, ErrBadResolution
	}

	return &Grid{
		width:      width,
		height:     height,
		resolution: resolution,
		nx:         int(math.Floor(width/resolution)) + 1,
		ny:         int(math.Floor(height/resolution)) + 1,
	}, nil
}

// Width returns the continuous domain width.
func (g *Grid) Width() float64 { return g.width }

// Height returns the continuous domain height.
func (g *Grid) Height() float64 { return g.height }

// Resolution returns the cell edge length.
func (g *Grid) Resolution() float64 { return g.resolution }

// NX returns the number of columns (cells along X).
func (g *Grid) NX() int { return g.nx }

// NY returns the number of rows (cells along Y).
func (g *Grid) NY() int { return g.ny }

// Cells returns the total cell count nx·ny.
func (g *Grid) Cells() int { return g.nx * g.ny }

// ToIndex snaps a continuous point to its containing cell:
// i = floor(y/r), j = floor(x/r). The result is NOT bounds-checked and
// may be negative or ≥ NY/NX; callers must guard with InBounds.
func (g *Grid) ToIndex(p orb.Point) (i, j int) {
	return int(math.Floor(p.Y() / g.resolution)), int(math.Floor(p.X() / g.resolution))
}

// ToCoord maps cell (i,j) to its anchor point (j·r, i·r).
func (g *Grid) ToCoord(i, j int) orb.Point {
	return orb.Point{float64(j) * g.resolution, float64(i) * g.resolution}
}

// InBounds reports whether cell (i,j) lies within [0,NY)×[0,NX).
func (g *Grid) InBounds(i, j int) bool {
	return i >= 0 && i < g.ny && j >= 0 && j < g.nx
}
