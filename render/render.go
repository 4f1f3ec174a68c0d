// Package render draws velocity fields, distance fields, obstacle
// outlines and extracted paths onto raster images.
//
// The renderer consumes the planner's three outputs and never feeds back
// into them; it exists so demos and debugging sessions can see what the
// solver saw. Images use a lower-left origin to match the planner's
// coordinate convention (row 0 is the bottom of the image).
package render

import (
	"image"
	"math"

	"github.com/fogleman/gg"
	"github.com/paulmach/orb"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/eikonal/grid"
	"github.com/katalvlaran/eikonal/obstacle"
)

// DefaultCellSize is the edge length, in pixels, of one grid cell.
const DefaultCellSize = 6

// Options configures a Renderer.
type Options struct {
	CellSize int
}

// Option is a functional option for configuring New.
type Option func(*Options)

// WithCellSize overrides the pixel edge length of one grid cell.
// Non-positive values are ignored.
func WithCellSize(px int) Option {
	return func(o *Options) {
		if px > 0 {
			o.CellSize = px
		}
	}
}

// Renderer rasterizes fields and paths for one grid geometry.
type Renderer struct {
	g    *grid.Grid
	cell int
}

// New returns a renderer for the given grid.
func New(g *grid.Grid, opts ...Option) *Renderer {
	cfg := Options{CellSize: DefaultCellSize}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Renderer{g: g, cell: cfg.CellSize}
}

// size returns the image dimensions in pixels.
func (r *Renderer) size() (w, h int) {
	return r.g.NX() * r.cell, r.g.NY() * r.cell
}

// toPixel maps a continuous coordinate to image pixels (lower-left origin).
func (r *Renderer) toPixel(p orb.Point) (x, y float64) {
	res := r.g.Resolution()
	_, h := r.size()

	return p.X() / res * float64(r.cell), float64(h) - p.Y()/res*float64(r.cell)
}

// Velocity renders the velocity field as a heatmap: dark for the obstacle
// floor, bright for free space.
func (r *Renderer) Velocity(f *mat.Dense) image.Image {
	lo, hi := finiteRange(f)

	return r.heatmap(f, lo, hi, viridis)
}

// Distance renders the distance field as a heatmap over its finite range;
// unreached (+Inf) cells are painted black.
func (r *Renderer) Distance(f *mat.Dense) image.Image {
	lo, hi := finiteRange(f)

	return r.heatmap(f, lo, hi, plasma)
}

// Scene composes the full picture: velocity backdrop, obstacle outlines,
// the extracted path, and start/goal markers.
func (r *Renderer) Scene(vel *mat.Dense, cat *obstacle.Catalog, path orb.LineString, start, goal orb.Point) image.Image {
	w, h := r.size()
	dc := gg.NewContext(w, h)
	dc.DrawImage(r.Velocity(vel), 0, 0)

	if cat != nil {
		r.drawObstacles(dc, cat)
	}
	if len(path) > 1 {
		r.drawPath(dc, path)
	}
	r.drawMarker(dc, start, 0.1, 0.8, 0.1)
	r.drawMarker(dc, goal, 0.9, 0.1, 0.1)

	return dc.Image()
}

// SavePNG writes img to path as a PNG file.
func SavePNG(path string, img image.Image) error {
	return gg.SavePNG(path, img)
}

// heatmap paints one filled square per cell, colored by the normalized
// field value; non-finite values map to black.
func (r *Renderer) heatmap(f *mat.Dense, lo, hi float64, pal func(float64) (float64, float64, float64)) image.Image {
	w, h := r.size()
	dc := gg.NewContext(w, h)
	span := hi - lo
	if span <= 0 {
		span = 1
	}
	for i := 0; i < r.g.NY(); i++ {
		for j := 0; j < r.g.NX(); j++ {
			v := f.At(i, j)
			if math.IsInf(v, 0) || math.IsNaN(v) {
				dc.SetRGB(0, 0, 0)
			} else {
				dc.SetRGB(pal((v - lo) / span))
			}
			// Row 0 is the bottom of the image.
			dc.DrawRectangle(float64(j*r.cell), float64((r.g.NY()-1-i)*r.cell), float64(r.cell), float64(r.cell))
			dc.Fill()
		}
	}

	return dc.Image()
}

// drawObstacles strokes each catalog shape's outline.
func (r *Renderer) drawObstacles(dc *gg.Context, cat *obstacle.Catalog) {
	dc.SetRGB(1, 0.2, 0.2)
	dc.SetLineWidth(2)
	res := r.g.Resolution()
	scale := float64(r.cell) / res
	for _, s := range cat.Shapes() {
		switch s := s.(type) {
		case obstacle.Rect:
			x, y := r.toPixel(orb.Point{s.X, s.Y + s.Height})
			dc.DrawRectangle(x, y, s.Width*scale, s.Height*scale)
		case obstacle.Circle:
			x, y := r.toPixel(orb.Point{s.CX, s.CY})
			dc.DrawCircle(x, y, s.Radius*scale)
		}
		dc.Stroke()
	}
}

// drawPath strokes the extracted path as a polyline.
func (r *Renderer) drawPath(dc *gg.Context, path orb.LineString) {
	dc.SetRGB(1, 1, 1)
	dc.SetLineWidth(2)
	for k, p := range path {
		x, y := r.toPixel(p)
		if k == 0 {
			dc.MoveTo(x, y)
		} else {
			dc.LineTo(x, y)
		}
	}
	dc.Stroke()
}

// drawMarker paints a filled dot at a continuous coordinate.
func (r *Renderer) drawMarker(dc *gg.Context, p orb.Point, cr, cg, cb float64) {
	x, y := r.toPixel(p)
	dc.SetRGB(cr, cg, cb)
	dc.DrawCircle(x, y, float64(r.cell))
	dc.Fill()
}

// finiteRange returns the min and max over the finite entries of f.
func finiteRange(f *mat.Dense) (lo, hi float64) {
	lo, hi = math.Inf(1), math.Inf(-1)
	raw := f.RawMatrix()
	for _, v := range raw.Data {
		if math.IsInf(v, 0) || math.IsNaN(v) {
			continue
		}
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	if lo > hi {
		lo, hi = 0, 1
	}

	return lo, hi
}

// viridis is a three-stop approximation of the viridis colormap.
func viridis(t float64) (float64, float64, float64) {
	return lerp3(t,
		[3]float64{0.267, 0.005, 0.329},
		[3]float64{0.128, 0.565, 0.551},
		[3]float64{0.993, 0.906, 0.144})
}

// plasma is a three-stop approximation of the plasma colormap.
func plasma(t float64) (float64, float64, float64) {
	return lerp3(t,
		[3]float64{0.050, 0.030, 0.528},
		[3]float64{0.798, 0.280, 0.470},
		[3]float64{0.940, 0.975, 0.131})
}

// lerp3 interpolates between three color stops at t=0, 0.5, 1.
func lerp3(t float64, a, b, c [3]float64) (float64, float64, float64) {
	t = math.Max(0, math.Min(1, t))
	if t < 0.5 {
		return lerp(a, b, t*2)
	}

	return lerp(b, c, (t-0.5)*2)
}

func lerp(a, b [3]float64, t float64) (float64, float64, float64) {
	return a[0] + (b[0]-a[0])*t, a[1] + (b[1]-a[1])*t, a[2] + (b[2]-a[2])*t
}
