package velocity

import (
	"errors"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/eikonal/grid"
	"github.com/katalvlaran/eikonal/obstacle"
)

// Defaults for the speed profile and the smoothing pass.
const (
	// DefaultFloor is the near-zero speed written inside obstacles.
	DefaultFloor = 0.001
	// DefaultTransition is the width of the speed ramp around circle rims,
	// in length units.
	DefaultTransition = 0.5
	// DefaultSmoothRadius is the smoothing distance, in length units,
	// converted to a kernel sigma in whole cells at build time.
	DefaultSmoothRadius = 0.3
)

// Sentinel errors for velocity-field construction.
var (
	// ErrNilGrid indicates a nil *grid.Grid was passed to Build.
	ErrNilGrid = errors.New("velocity: grid is nil")
	// ErrBadFloor indicates a floor outside (0, 1].
	ErrBadFloor = errors.New("velocity: floor must be in (0, 1]")
	// ErrBadTransition indicates a non-positive transition width.
	ErrBadTransition = errors.New("velocity: transition width must be > 0")
	// ErrBadSmoothRadius indicates a negative smoothing radius.
	ErrBadSmoothRadius = errors.New("velocity: smooth radius must be ≥ 0")
)

// Options configures the velocity-field builder.
//
//   - Floor:        speed written inside obstacles, in (0, 1].
//   - Transition:   circle rim ramp width, length units, > 0.
//   - SmoothRadius: smoothing distance, length units, ≥ 0 (0 disables).
type Options struct {
	Floor        float64
	Transition   float64
	SmoothRadius float64
}

// Option is a functional option for configuring Build.
type Option func(*Options)

// DefaultOptions returns the builder defaults: floor 0.001, transition
// 0.5, smooth radius 0.3.
func DefaultOptions() Options {
	return Options{
		Floor:        DefaultFloor,
		Transition:   DefaultTransition,
		SmoothRadius: DefaultSmoothRadius,
	}
}

// WithFloor overrides the obstacle-interior speed. Must lie in (0, 1];
// values outside panic with ErrBadFloor.
func WithFloor(f float64) Option {
	return func(o *Options) {
		if f <= 0 || f > 1 {
			panic(ErrBadFloor.Error())
		}
		o.Floor = f
	}
}

// WithTransition overrides the circle rim ramp width. Must be > 0;
// non-positive values panic with ErrBadTransition.
func WithTransition(w float64) Option {
	return func(o *Options) {
		if w <= 0 {
			panic(ErrBadTransition.Error())
		}
		o.Transition = w
	}
}

// WithSmoothRadius overrides the smoothing distance. Zero disables the
// smoothing pass; negative values panic with ErrBadSmoothRadius.
func WithSmoothRadius(r float64) Option {
	return func(o *Options) {
		if r < 0 {
			panic(ErrBadSmoothRadius.Error())
		}
		o.SmoothRadius = r
	}
}

// Build rasterizes the catalog onto a fresh (ny,nx) field and smooths it.
//
// Stage 1 (Init):      every cell is set to unit speed.
// Stage 2 (Rasterize): shapes apply their profiles in catalog order.
// Stage 3 (Smooth):    Gaussian blur, sigma = int(SmoothRadius/r) cells;
// skipped when the sigma rounds to zero.
//
// A nil catalog builds an obstacle-free field. The result is freshly
// allocated on every call; Build never mutates a previous field.
// Every cell of the result lies in [Floor, 1.0].
func Build(g *grid.Grid, cat *obstacle.Catalog, opts ...Option) (*mat.Dense, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	vel := mat.NewDense(g.NY(), g.NX(), nil)
	raw := vel.RawMatrix().Data
	for k := range raw {
		raw[k] = 1.0
	}

	if cat != nil {
		prof := obstacle.Profile{Floor: cfg.Floor, Transition: cfg.Transition}
		for _, s := range cat.Shapes() {
			s.Rasterize(g, vel, prof)
		}
	}

	if sigma := int(cfg.SmoothRadius / g.Resolution()); sigma > 0 {
		smooth(vel, float64(sigma))
	}

	return vel, nil
}
