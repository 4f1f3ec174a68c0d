package obstacle

import (
	"errors"
	"fmt"
	"math"

	"github.com/paulmach/orb"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/eikonal/grid"
)

// ErrInvalidShape indicates a shape with non-positive dimensions.
var ErrInvalidShape = errors.New("obstacle: shape dimensions must be > 0")

// Profile carries the rasterization parameters shared by all shapes.
//
//   - Floor is the near-zero traversal speed written inside a shape.
//     It is never exactly zero so edge costs stay finite.
//   - Transition is the width (length units) of the speed ramp around a
//     circle's rim; rectangles carve hard holes and ignore it.
type Profile struct {
	Floor      float64
	Transition float64
}

// Shape is the closed set of obstacle variants. A Shape validates its own
// dimensions, reports its bounding box, answers point containment, and
// rasterizes itself onto a velocity field of shape (ny,nx).
type Shape interface {
	// Validate returns ErrInvalidShape (wrapped with context) if the
	// shape has non-positive dimensions.
	Validate() error
	// Bounds returns the axis-aligned bounding box of the shape.
	Bounds() orb.Bound
	// Contains reports whether p lies inside the shape (boundary inclusive).
	Contains(p orb.Point) bool
	// Rasterize writes the shape's speed profile into vel, whose rows and
	// columns follow g. Cells already slower than the shape's effect keep
	// their lower value where the shape's rule is a minimum rule.
	Rasterize(g *grid.Grid, vel *mat.Dense, prof Profile)

	sealed()
}

// Rect is an axis-aligned box with lower-left corner (X,Y).
type Rect struct {
	X, Y          float64
	Width, Height float64
}

// Circle is a disk of the given Radius centered at (CX,CY).
type Circle struct {
	CX, CY float64
	Radius float64
}

func (Rect) sealed()   {}
func (Circle) sealed() {}

// Validate rejects non-positive width or height.
func (r Rect) Validate() error {
	if r.Width <= 0 || r.Height <= 0 {
		return fmt.Errorf("rect %gx%g at (%g,%g): %w", r.Width, r.Height, r.X, r.Y, ErrInvalidShape)
	}

	return nil
}

// Bounds returns the box [X,X+Width]×[Y,Y+Height].
func (r Rect) Bounds() orb.Bound {
	return orb.Bound{
		Min: orb.Point{r.X, r.Y},
		Max: orb.Point{r.X + r.Width, r.Y + r.Height},
	}
}

// Contains reports whether p lies inside the box, boundary inclusive.
func (r Rect) Contains(p orb.Point) bool {
	return p.X() >= r.X && p.X() <= r.X+r.Width &&
		p.Y() >= r.Y && p.Y() <= r.Y+r.Height
}

// Rasterize carves a hard hole: every cell whose index lies in the
// floored/clamped index-space bounding box of the rect is set to
// prof.Floor unconditionally (last rectangle wins in overlaps).
// Complexity: O(area of the box in cells).
func (r Rect) Rasterize(g *grid.Grid, vel *mat.Dense, prof Profile) {
	res := g.Resolution()
	jMin := max(0, int(r.X/res))
	jMax := min(g.NX(), int((r.X+r.Width)/res)+1)
	iMin := max(0, int(r.Y/res))
	iMax := min(g.NY(), int((r.Y+r.Height)/res)+1)

	for i := iMin; i < iMax; i++ {
		for j := jMin; j < jMax; j++ {
			vel.Set(i, j, prof.Floor)
		}
	}
}

// Validate rejects a non-positive radius.
func (c Circle) Validate() error {
	if c.Radius <= 0 {
		return fmt.Errorf("circle r=%g at (%g,%g): %w", c.Radius, c.CX, c.CY, ErrInvalidShape)
	}

	return nil
}

// Bounds returns the box circumscribing the disk.
func (c Circle) Bounds() orb.Bound {
	return orb.Bound{
		Min: orb.Point{c.CX - c.Radius, c.CY - c.Radius},
		Max: orb.Point{c.CX + c.Radius, c.CY + c.Radius},
	}
}

// Contains reports whether p lies inside the disk, boundary inclusive.
func (c Circle) Contains(p orb.Point) bool {
	return math.Hypot(p.X()-c.CX, p.Y()-c.CY) <= c.Radius
}

// Rasterize writes the disk's speed profile cell by cell:
//
//   - dist ≤ Radius: the cell is set to prof.Floor.
//   - Radius < dist ≤ Radius+Transition: the cell's speed is pulled toward
//     the floor by factor (dist-Radius)/Transition, taking the minimum
//     with whatever value the cell already holds, so overlapping circles
//     compound toward lower speed and never raise it back up.
//
// Complexity: O(nx·ny) — the full grid is scanned per circle.
func (c Circle) Rasterize(g *grid.Grid, vel *mat.Dense, prof Profile) {
	for i := 0; i < g.NY(); i++ {
		for j := 0; j < g.NX(); j++ {
			p := g.ToCoord(i, j)
			dist := math.Hypot(p.X()-c.CX, p.Y()-c.CY)
			switch {
			case dist <= c.Radius:
				vel.Set(i, j, prof.Floor)
			case dist <= c.Radius+prof.Transition:
				factor := (dist - c.Radius) / prof.Transition
				vel.Set(i, j, math.Max(prof.Floor, factor*vel.At(i, j)))
			}
		}
	}
}
