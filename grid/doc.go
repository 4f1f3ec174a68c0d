// Package grid discretizes a rectangular continuous domain into a
// fixed-resolution cell lattice and converts between continuous
// coordinates and cell indices.
//
// What:
//
//   - Grid wraps a W×H domain sampled every `resolution` length units.
//   - Cell counts derive as nx = floor(W/r)+1 columns, ny = floor(H/r)+1 rows.
//   - ToIndex snaps a continuous point to its containing cell (i,j);
//     ToCoord maps (i,j) back to the cell's anchor point (j·r, i·r).
//   - Offsets8 enumerates the 8-connected neighborhood shared by the
//     wavefront solver and the path extractor.
//
// Why:
//
//   - Every other stage (rasterization, wavefront propagation, path
//     descent) works purely in index space; Grid is the single source of
//     truth for the index↔coordinate mapping.
//
// Semantics:
//
//   - The mapping is deterministic and lossy (snap-to-grid): it is a
//     bijection only in the index→coordinate direction.
//   - ToIndex performs NO bounds check; results may lie outside
//     [0,ny)×[0,nx). Callers must guard with InBounds.
//
// Errors:
//
//   - ErrBadDomain: width or height is not strictly positive.
//   - ErrBadResolution: resolution is not strictly positive.
//
// Complexity: all operations are O(1).
package grid
