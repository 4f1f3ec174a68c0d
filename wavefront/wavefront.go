package wavefront

import (
	"container/heap"
	"math"

	"github.com/paulmach/orb"
	"gonum.org/v1/gonum/blas/blas64"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/eikonal/grid"
)

// Solve computes the arrival-time field for every cell of g, seeded at
// source, under the given velocity field (shape (ny,nx), values in
// (0,1]). The source is conventionally the navigation goal: the field
// then measures time-to-goal, so one solve supports path extraction from
// any start by descending toward decreasing values.
//
// Algorithm: label-correcting Dijkstra over the 8-connected grid graph
// with lazy decrease-key (duplicate pushes; stale entries are discarded
// when popped). Edge cost into a neighbor is resolution/velocity[neighbor]
// for axis moves and resolution·√2/velocity[neighbor] for diagonal moves;
// costs diverge as the velocity approaches its floor, so obstacle cores
// are crossable only at extreme cost, never literally blocked.
//
// The returned field is freshly allocated; unreached cells hold +Inf.
// Distances are a pure function of grid, velocity field and source, so
// repeated calls are bit-identical.
//
// Returns ErrNilGrid, ErrNilField, ErrFieldShape, or ErrSourceOutOfDomain
// on invalid input.
func Solve(g *grid.Grid, vel *mat.Dense, source orb.Point, opts ...Option) (*mat.Dense, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	if g == nil {
		return nil, ErrNilGrid
	}
	if vel == nil {
		return nil, ErrNilField
	}
	if r, c := vel.Dims(); r != g.NY() || c != g.NX() {
		return nil, ErrFieldShape
	}

	si, sj := g.ToIndex(source)
	if !g.InBounds(si, sj) {
		return nil, ErrSourceOutOfDomain
	}

	dist := mat.NewDense(g.NY(), g.NX(), nil)
	dd := dist.RawMatrix()
	for k := range dd.Data {
		dd.Data[k] = math.Inf(1)
	}

	r := &runner{
		g:       g,
		options: cfg,
		vel:     vel.RawMatrix(),
		dist:    dd,
		pq:      make(cellPQ, 0, g.Cells()/4),
	}
	r.run(si, sj)

	return dist, nil
}

// runner holds the mutable state of a single Solve call. The priority
// queue is transient and carries no cross-call state.
type runner struct {
	g       *grid.Grid
	options Options
	vel     blas64.General
	dist    blas64.General
	pq      cellPQ
}

// run seeds the source cell at 0 and floods the grid until the heap
// empties (or the distance cap is reached).
func (r *runner) run(si, sj int) {
	nx, ny := r.g.NX(), r.g.NY()
	res := r.g.Resolution()

	r.dist.Data[si*r.dist.Stride+sj] = 0
	heap.Init(&r.pq)
	heap.Push(&r.pq, cellEntry{i: si, j: sj, dist: 0})

	for r.pq.Len() > 0 {
		cur := heap.Pop(&r.pq).(cellEntry)

		// Lazy deletion: a popped entry whose key exceeds the recorded
		// distance is a stale duplicate.
		if cur.dist > r.dist.Data[cur.i*r.dist.Stride+cur.j] {
			continue
		}
		if cur.dist > r.options.MaxDistance {
			break
		}

		for _, d := range grid.Offsets8 {
			ni, nj := cur.i+d[0], cur.j+d[1]
			if ni < 0 || ni >= ny || nj < 0 || nj >= nx {
				continue
			}
			step := res
			if d[0] != 0 && d[1] != 0 {
				step = res * math.Sqrt2
			}
			cand := cur.dist + step/r.vel.Data[ni*r.vel.Stride+nj]
			if cand > r.options.MaxDistance {
				continue
			}
			if cand < r.dist.Data[ni*r.dist.Stride+nj] {
				r.dist.Data[ni*r.dist.Stride+nj] = cand
				heap.Push(&r.pq, cellEntry{i: ni, j: nj, dist: cand})
			}
		}
	}
}

// cellEntry pairs a cell with its tentative arrival time for heap ordering.
type cellEntry struct {
	i, j int
	dist float64
}

// cellPQ is a min-heap of cellEntry ordered by dist ascending. Stale
// duplicates from the lazy decrease-key pattern are expected and
// discarded on pop.
type cellPQ []cellEntry

// Len returns the number of items in the heap.
func (pq cellPQ) Len() int { return len(pq) }

// Less orders by tentative distance: smaller dist → higher priority.
func (pq cellPQ) Less(i, j int) bool { return pq[i].dist < pq[j].dist }

// Swap swaps two elements in the heap.
func (pq cellPQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push appends a new entry; called by heap.Push.
func (pq *cellPQ) Push(x interface{}) { *pq = append(*pq, x.(cellEntry)) }

// Pop removes and returns the last element; called by heap.Pop.
func (pq *cellPQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
