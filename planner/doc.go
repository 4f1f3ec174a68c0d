// Package planner exposes the end-to-end path-planning aggregate: one
// planner owns a grid, an obstacle catalog, and the velocity and distance
// fields of its most recent solve.
//
// What:
//
//   - New(width, height, resolution) constructs a planner over a
//     rectangular domain.
//   - AddObstacle appends a validated shape to the catalog.
//   - Solve(start, goal) rebuilds the velocity field from scratch, runs
//     the wavefront solver seeded at GOAL (the field measures
//     time-to-goal, so any start can descend it), stores
//     both fields and returns the distance field.
//   - ExtractPath(start, goal) greedily descends the stored field from
//     the start cell and returns an ordered coordinate sequence ending at
//     the literal goal coordinate.
//
// Semantics:
//
//   - Fields are invalidated and rebuilt wholesale at the start of every
//     Solve; nothing is updated incrementally.
//   - Fully synchronous and single-threaded; a planner instance is not
//     safe for concurrent use.
//   - A path always has ≥ 2 points: the snapped start, then (possibly
//     after intermediate cells) the verbatim goal. Start and goal in the
//     same or adjacent cells is not an error, just a 2-point path.
//   - Extraction can stall at a local minimum of the field (plateau or
//     unreachable region); that degrades to the degenerate path rather
//     than failing.
//
// Errors (sentinel):
//
//   - ErrStartOutOfDomain, ErrGoalOutOfDomain: a coordinate maps outside
//     the grid. Reported explicitly instead of silently producing an
//     all-infinite field or an empty path.
//   - ErrNotSolved:    ExtractPath before any successful Solve.
//   - ErrGoalMismatch: ExtractPath goal resolves to a different cell than
//     the solved goal.
package planner
