// Package wavefront defines options and sentinel errors for the
// arrival-time (distance field) solver.
//
// The solver computes, for every reachable cell of a grid, the minimal
// travel time from a source cell under a spatially varying traversal
// speed. It is a label-correcting Dijkstra over the 8-connected grid
// graph: a discrete approximation of the Eikonal equation, not an upwind
// finite-difference scheme.
//
// Complexity:
//
//   - Time:  O(N log N) for N = nx·ny cells (each relaxation may push
//     one heap entry; stale entries are discarded lazily).
//   - Space: O(N) for the distance field plus the transient heap.
//
// Options:
//
//   - WithMaxDistance(d): cells whose arrival time would exceed d are not
//     explored. Default is +Inf (full flood fill).
//
// Errors (sentinel):
//
//   - ErrNilGrid            if the grid is nil.
//   - ErrNilField           if the velocity field is nil.
//   - ErrFieldShape         if the velocity field's shape is not (ny,nx).
//   - ErrSourceOutOfDomain  if the source maps outside the grid.
//   - ErrBadMaxDistance     if a negative MaxDistance is configured.
package wavefront

import (
	"errors"
	"math"
)

// Sentinel errors returned by Solve.
var (
	// ErrNilGrid indicates a nil *grid.Grid was passed to Solve.
	ErrNilGrid = errors.New("wavefront: grid is nil")

	// ErrNilField indicates a nil velocity field was passed to Solve.
	ErrNilField = errors.New("wavefront: velocity field is nil")

	// ErrFieldShape indicates the velocity field's dimensions do not
	// match the grid's (ny,nx).
	ErrFieldShape = errors.New("wavefront: velocity field shape does not match grid")

	// ErrSourceOutOfDomain indicates the source coordinate maps to a cell
	// outside the grid. The caller receives this instead of a silently
	// all-infinite field.
	ErrSourceOutOfDomain = errors.New("wavefront: source coordinate outside grid domain")

	// ErrBadMaxDistance indicates a negative MaxDistance was configured.
	ErrBadMaxDistance = errors.New("wavefront: MaxDistance must be non-negative")
)

// Options configures a single Solve call.
//
// MaxDistance caps exploration: cells whose arrival time would exceed it
// keep +Inf. Default math.Inf(1) means a full flood fill.
type Options struct {
	MaxDistance float64
}

// Option is a functional option for configuring Solve.
type Option func(*Options)

// DefaultOptions returns the solver defaults (no distance cap).
func DefaultOptions() Options {
	return Options{MaxDistance: math.Inf(1)}
}

// WithMaxDistance caps the explored arrival time. Negative values panic
// with ErrBadMaxDistance.
func WithMaxDistance(d float64) Option {
	return func(o *Options) {
		if d < 0 {
			panic(ErrBadMaxDistance.Error())
		}
		o.MaxDistance = d
	}
}
