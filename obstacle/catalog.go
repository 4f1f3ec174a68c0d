package obstacle

import (
	"sort"

	"github.com/dhconnelly/rtreego"
	"github.com/paulmach/orb"
)

// entry wraps a shape for R-tree storage, remembering its insertion rank
// so query results can be returned in catalog order.
type entry struct {
	shape Shape
	rect  rtreego.Rect
	rank  int
}

// Bounds implements rtreego.Spatial.
func (e *entry) Bounds() rtreego.Rect { return e.rect }

// Catalog is the ordered collection of obstacle shapes owned by one
// planner. Shapes are immutable once added and cannot be removed; the
// insertion order is preserved because rasterization order is semantic.
// A 2D R-tree mirrors the shapes for region and point queries.
type Catalog struct {
	shapes []Shape
	tree   *rtreego.Rtree
}

// NewCatalog returns an empty catalog.
func NewCatalog() *Catalog {
	return &Catalog{
		tree: rtreego.NewTree(2, 25, 50),
	}
}

// Add validates the shape and appends it to the catalog. Shapes with
// non-positive dimensions are rejected with ErrInvalidShape; nothing is
// appended on error. Complexity: O(log n).
func (c *Catalog) Add(s Shape) error {
	if err := s.Validate(); err != nil {
		return err
	}
	rect, err := toTreeRect(s.Bounds())
	if err != nil {
		return err
	}
	c.tree.Insert(&entry{shape: s, rect: rect, rank: len(c.shapes)})
	c.shapes = append(c.shapes, s)

	return nil
}

// Len returns the number of shapes in the catalog.
func (c *Catalog) Len() int { return len(c.shapes) }

// Shapes returns the shapes in insertion order. The slice is a copy; the
// shapes themselves are immutable values.
func (c *Catalog) Shapes() []Shape {
	out := make([]Shape, len(c.shapes))
	copy(out, c.shapes)

	return out
}

// Intersecting returns, in insertion order, every shape whose bounding
// box intersects b. Complexity: O(log n + k·log k) for k hits.
func (c *Catalog) Intersecting(b orb.Bound) []Shape {
	rect, err := toTreeRect(b)
	if err != nil {
		return nil
	}
	hits := c.tree.SearchIntersect(rect)
	es := make([]*entry, 0, len(hits))
	for _, h := range hits {
		es = append(es, h.(*entry))
	}
	sort.Slice(es, func(i, j int) bool { return es[i].rank < es[j].rank })

	out := make([]Shape, 0, len(es))
	for _, e := range es {
		out = append(out, e.shape)
	}

	return out
}

// Covering returns, in insertion order, every shape that contains p
// (boundary inclusive). The R-tree prunes to bounding-box candidates;
// exact containment is checked per shape.
func (c *Catalog) Covering(p orb.Point) []Shape {
	probe := rtreego.Point{p.X(), p.Y()}.ToRect(pointProbe)
	hits := c.tree.SearchIntersect(probe)
	es := make([]*entry, 0, len(hits))
	for _, h := range hits {
		if e := h.(*entry); e.shape.Contains(p) {
			es = append(es, e)
		}
	}
	sort.Slice(es, func(i, j int) bool { return es[i].rank < es[j].rank })

	out := make([]Shape, 0, len(es))
	for _, e := range es {
		out = append(out, e.shape)
	}

	return out
}

// pointProbe is the half-width of the degenerate query box used for
// point lookups; rtreego rejects zero-extent rectangles.
const pointProbe = 1e-9

// toTreeRect converts an orb.Bound into an rtreego.Rect.
func toTreeRect(b orb.Bound) (rtreego.Rect, error) {
	return rtreego.NewRect(
		rtreego.Point{b.Min.X(), b.Min.Y()},
		[]float64{b.Max.X() - b.Min.X(), b.Max.Y() - b.Min.Y()},
	)
}
