// Package obstacle defines the closed set of obstacle shapes and the
// ordered, spatially indexed catalog that owns them.
//
// What:
//
//   - Shape is a sealed variant: Rect (axis-aligned box) or Circle (disk).
//   - Each shape knows how to rasterize itself onto a velocity field:
//     adding a new shape means adding one variant with one Rasterize
//     method, not growing a type switch.
//   - Catalog keeps shapes in insertion order (rasterization order is
//     semantic: later rectangles overwrite, circles compound by minimum)
//     and mirrors them into an R-tree for region and point queries.
//
// Why:
//
//   - The velocity builder consumes shapes in order; renderers and tests
//     consume the spatial queries (which obstacles cover a point, which
//     intersect a viewport).
//
// Errors:
//
//   - ErrInvalidShape: a shape with non-positive width, height or radius
//     was rejected at Add.
//
// Complexity:
//
//   - Add: O(log n) tree insert; Shapes: O(n) copy;
//     Intersecting/Covering: O(log n + k) for k hits.
package obstacle
