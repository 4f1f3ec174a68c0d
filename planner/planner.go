package planner

import (
	"errors"
	"fmt"

	"github.com/paulmach/orb"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/eikonal/grid"
	"github.com/katalvlaran/eikonal/obstacle"
	"github.com/katalvlaran/eikonal/velocity"
	"github.com/katalvlaran/eikonal/wavefront"
)

// Sentinel errors returned by the planner.
var (
	// ErrStartOutOfDomain indicates the start coordinate maps outside the grid.
	ErrStartOutOfDomain = errors.New("planner: start coordinate outside grid domain")

	// ErrGoalOutOfDomain indicates the goal coordinate maps outside the grid.
	ErrGoalOutOfDomain = errors.New("planner: goal coordinate outside grid domain")

	// ErrNotSolved indicates ExtractPath was called before a successful Solve.
	ErrNotSolved = errors.New("planner: no distance field; call Solve first")

	// ErrGoalMismatch indicates the extraction goal resolves to a different
	// cell than the goal of the stored solve.
	ErrGoalMismatch = errors.New("planner: goal does not match the solved distance field")
)

// Options configures a Planner.
type Options struct {
	velocityOpts []velocity.Option
}

// Option is a functional option for configuring New.
type Option func(*Options)

// WithVelocity forwards builder options (floor, transition width, smooth
// radius) to the velocity-field construction performed by every Solve.
func WithVelocity(opts ...velocity.Option) Option {
	return func(o *Options) {
		o.velocityOpts = append(o.velocityOpts, opts...)
	}
}

// Planner owns one grid, one obstacle catalog, and the fields of its most
// recent solve. All state is exclusively owned; a Planner must not be
// shared across goroutines.
type Planner struct {
	grid    *grid.Grid
	catalog *obstacle.Catalog
	velOpts []velocity.Option

	vel    *mat.Dense
	dist   *mat.Dense
	goalI  int
	goalJ  int
	solved bool
}

// New constructs a planner over a width×height domain discretized at the
// given resolution. Returns grid.ErrBadDomain or grid.ErrBadResolution on
// non-positive inputs.
func New(width, height, resolution float64, opts ...Option) (*Planner, error) {
	var cfg Options
	for _, opt := range opts {
		opt(&cfg)
	}

	g, err := grid.New(width, height, resolution)
	if err != nil {
		return nil, err
	}

	return &Planner{
		grid:    g,
		catalog: obstacle.NewCatalog(),
		velOpts: cfg.velocityOpts,
	}, nil
}

// Grid returns the planner's grid.
func (p *Planner) Grid() *grid.Grid { return p.grid }

// Catalog returns the planner's obstacle catalog.
func (p *Planner) Catalog() *obstacle.Catalog { return p.catalog }

// VelocityField returns the velocity field of the most recent Solve, or
// nil before the first solve.
func (p *Planner) VelocityField() *mat.Dense { return p.vel }

// DistanceField returns the distance field of the most recent Solve, or
// nil before the first solve.
func (p *Planner) DistanceField() *mat.Dense { return p.dist }

// AddObstacle validates and appends a shape. Shapes are immutable once
// added and cannot be removed; they take effect at the next Solve.
func (p *Planner) AddObstacle(s obstacle.Shape) error {
	return p.catalog.Add(s)
}

// Solve rebuilds the velocity field from the catalog, runs the wavefront
// solver seeded at goal, stores both fields, and returns the distance
// field. The field is goal-centric: its value at any cell is the minimal
// travel time from that cell to the goal, so a single solve supports path
// extraction from any start.
//
// Both coordinates are bounds-checked up front; ErrStartOutOfDomain or
// ErrGoalOutOfDomain is returned instead of a silently all-infinite field.
// Previous fields are discarded even if this solve fails.
func (p *Planner) Solve(start, goal orb.Point) (*mat.Dense, error) {
	p.vel, p.dist, p.solved = nil, nil, false

	if i, j := p.grid.ToIndex(start); !p.grid.InBounds(i, j) {
		return nil, ErrStartOutOfDomain
	}
	gi, gj := p.grid.ToIndex(goal)
	if !p.grid.InBounds(gi, gj) {
		return nil, ErrGoalOutOfDomain
	}

	vel, err := velocity.Build(p.grid, p.catalog, p.velOpts...)
	if err != nil {
		return nil, fmt.Errorf("planner: building velocity field: %w", err)
	}

	dist, err := wavefront.Solve(p.grid, vel, goal)
	if err != nil {
		return nil, fmt.Errorf("planner: solving distance field: %w", err)
	}

	p.vel, p.dist = vel, dist
	p.goalI, p.goalJ = gi, gj
	p.solved = true

	return dist, nil
}
