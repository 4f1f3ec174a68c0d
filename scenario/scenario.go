// Package scenario loads planning scenarios (domain, obstacles, start and
// goal) from YAML documents and turns them into configured planners.
//
// A scenario file looks like:
//
//	name: corridor
//	world: {width: 10, height: 8, resolution: 0.1}
//	obstacles:
//	  - rect: {x: 3, y: 2, width: 2, height: 1.5}
//	  - circle: {cx: 2, cy: 6, radius: 0.8}
//	start: [0.5, 0.5]
//	goal: [9.5, 7.5]
//	velocity: {floor: 0.001, transition: 0.5, smooth_radius: 0.3}
//
// The velocity block is optional; omitted fields keep builder defaults.
// Unknown fields are rejected so typos surface at load time.
package scenario

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/paulmach/orb"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/eikonal/obstacle"
	"github.com/katalvlaran/eikonal/planner"
	"github.com/katalvlaran/eikonal/velocity"
)

// Sentinel errors for scenario loading.
var (
	// ErrShapeSpec indicates an obstacle entry with zero or more than one
	// shape variant set.
	ErrShapeSpec = errors.New("scenario: obstacle must set exactly one of rect, circle")
	// ErrBadVelocitySpec indicates velocity overrides outside their valid
	// ranges (floor in (0,1], transition > 0, smooth_radius ≥ 0).
	ErrBadVelocitySpec = errors.New("scenario: invalid velocity overrides")
)

// Coord is a continuous (x,y) coordinate, written as a YAML sequence.
type Coord [2]float64

// Point converts the coordinate to an orb.Point.
func (c Coord) Point() orb.Point { return orb.Point{c[0], c[1]} }

// WorldSpec describes the rectangular domain and its discretization.
type WorldSpec struct {
	Width      float64 `yaml:"width"`
	Height     float64 `yaml:"height"`
	Resolution float64 `yaml:"resolution"`
}

// RectSpec mirrors obstacle.Rect.
type RectSpec struct {
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// CircleSpec mirrors obstacle.Circle.
type CircleSpec struct {
	CX     float64 `yaml:"cx"`
	CY     float64 `yaml:"cy"`
	Radius float64 `yaml:"radius"`
}

// ObstacleSpec is a tagged union: exactly one variant must be set.
type ObstacleSpec struct {
	Rect   *RectSpec   `yaml:"rect,omitempty"`
	Circle *CircleSpec `yaml:"circle,omitempty"`
}

// Shape converts the spec into its obstacle.Shape variant, or returns
// ErrShapeSpec when not exactly one variant is set.
func (o ObstacleSpec) Shape() (obstacle.Shape, error) {
	switch {
	case o.Rect != nil && o.Circle == nil:
		return obstacle.Rect{X: o.Rect.X, Y: o.Rect.Y, Width: o.Rect.Width, Height: o.Rect.Height}, nil
	case o.Circle != nil && o.Rect == nil:
		return obstacle.Circle{CX: o.Circle.CX, CY: o.Circle.CY, Radius: o.Circle.Radius}, nil
	default:
		return nil, ErrShapeSpec
	}
}

// VelocitySpec optionally overrides the velocity builder defaults.
// Nil pointer fields keep the builder's defaults.
type VelocitySpec struct {
	Floor        *float64 `yaml:"floor,omitempty"`
	Transition   *float64 `yaml:"transition,omitempty"`
	SmoothRadius *float64 `yaml:"smooth_radius,omitempty"`
}

// Scenario is a fully described planning problem.
type Scenario struct {
	Name      string         `yaml:"name"`
	World     WorldSpec      `yaml:"world"`
	Obstacles []ObstacleSpec `yaml:"obstacles"`
	Start     Coord          `yaml:"start"`
	Goal      Coord          `yaml:"goal"`
	Velocity  *VelocitySpec  `yaml:"velocity,omitempty"`
}

// Load decodes a scenario from r. Unknown fields are an error.
func Load(r io.Reader) (*Scenario, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var s Scenario
	if err := dec.Decode(&s); err != nil {
		return nil, fmt.Errorf("scenario: decoding: %w", err)
	}

	return &s, nil
}

// LoadFile decodes a scenario from the YAML file at path.
func LoadFile(path string) (*Scenario, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("scenario: opening %s: %w", path, err)
	}
	defer f.Close()

	return Load(f)
}

// StartPoint returns the start coordinate.
func (s *Scenario) StartPoint() orb.Point { return s.Start.Point() }

// GoalPoint returns the goal coordinate.
func (s *Scenario) GoalPoint() orb.Point { return s.Goal.Point() }

// velocityOptions translates the optional overrides into builder options,
// validating ranges first (the builder options panic on bad values; a
// scenario file should fail with an error instead).
func (s *Scenario) velocityOptions() ([]velocity.Option, error) {
	if s.Velocity == nil {
		return nil, nil
	}
	var opts []velocity.Option
	if f := s.Velocity.Floor; f != nil {
		if *f <= 0 || *f > 1 {
			return nil, fmt.Errorf("%w: floor %g", ErrBadVelocitySpec, *f)
		}
		opts = append(opts, velocity.WithFloor(*f))
	}
	if w := s.Velocity.Transition; w != nil {
		if *w <= 0 {
			return nil, fmt.Errorf("%w: transition %g", ErrBadVelocitySpec, *w)
		}
		opts = append(opts, velocity.WithTransition(*w))
	}
	if r := s.Velocity.SmoothRadius; r != nil {
		if *r < 0 {
			return nil, fmt.Errorf("%w: smooth_radius %g", ErrBadVelocitySpec, *r)
		}
		opts = append(opts, velocity.WithSmoothRadius(*r))
	}

	return opts, nil
}

// Planner constructs a planner for the scenario's world and populates its
// catalog with the scenario's obstacles. Domain errors surface from
// grid construction, shape errors from catalog validation.
func (s *Scenario) Planner() (*planner.Planner, error) {
	velOpts, err := s.velocityOptions()
	if err != nil {
		return nil, err
	}

	p, err := planner.New(s.World.Width, s.World.Height, s.World.Resolution,
		planner.WithVelocity(velOpts...))
	if err != nil {
		return nil, err
	}

	for k, spec := range s.Obstacles {
		shape, err := spec.Shape()
		if err != nil {
			return nil, fmt.Errorf("scenario: obstacle %d: %w", k, err)
		}
		if err := p.AddObstacle(shape); err != nil {
			return nil, fmt.Errorf("scenario: obstacle %d: %w", k, err)
		}
	}

	return p, nil
}
