// Package velocity builds the traversal-speed field consumed by the
// wavefront solver.
//
// What:
//
//   - Build rasterizes a catalog of obstacle shapes onto a dense (ny,nx)
//     field initialized to unit speed, then smooths the result with a
//     normalized Gaussian kernel.
//   - Free space stays 1.0; obstacle interiors sit at a small positive
//     floor (default 0.001) so edge costs diverge but remain finite.
//   - Circle rims ramp linearly over a transition band (default 0.5
//     length units); rectangles carve hard holes which the smoothing pass
//     then rounds off.
//
// Why:
//
//   - Hard discontinuities in the speed field create non-physical
//     shortcuts and dead-ends for the solver and the greedy extractor;
//     the smoothing pass removes them.
//
// Semantics:
//
//   - Shapes are applied in catalog order; the per-shape rules decide how
//     overlaps combine (rectangles overwrite, circles take minima).
//   - The smoothing sigma is the smooth radius converted to whole cells;
//     when it rounds to zero the pass is skipped entirely.
//   - Build is idempotent: the same grid and catalog always produce an
//     identical field, and every cell lies in [floor, 1.0].
//
// Complexity: O(S·nx·ny + nx·ny·k) for S shapes and kernel width k.
package velocity
