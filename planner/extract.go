package planner

import (
	"github.com/paulmach/orb"

	"github.com/katalvlaran/eikonal/grid"
)

// ExtractPath reconstructs an ordered coordinate sequence from start to
// goal by greedy descent of the stored distance field. It requires a
// prior successful Solve whose goal resolves to the same cell as the one
// given here.
//
// The descent loop, bounded by nx·ny iterations as a cycle guard:
//
//  1. Append the current cell's snapped coordinate.
//  2. Stop once the current cell is within one cell of the goal cell in
//     both axes (Chebyshev distance ≤ 1 in index space).
//  3. Otherwise step to the neighbor with the strictly smallest field
//     value; stop early if no neighbor improves on the current cell
//     (local minimum, plateau, or unreachable region).
//
// The literal goal coordinate is appended verbatim as the final point, so
// the result always has ≥ 2 points. The path is a discrete greedy descent
// on a piecewise field; it is not guaranteed globally optimal in
// continuous space.
//
// Returns ErrNotSolved, ErrGoalOutOfDomain, ErrGoalMismatch, or
// ErrStartOutOfDomain on invalid input.
func (p *Planner) ExtractPath(start, goal orb.Point) (orb.LineString, error) {
	if !p.solved {
		return nil, ErrNotSolved
	}
	gi, gj := p.grid.ToIndex(goal)
	if !p.grid.InBounds(gi, gj) {
		return nil, ErrGoalOutOfDomain
	}
	if gi != p.goalI || gj != p.goalJ {
		return nil, ErrGoalMismatch
	}
	ci, cj := p.grid.ToIndex(start)
	if !p.grid.InBounds(ci, cj) {
		return nil, ErrStartOutOfDomain
	}

	dd := p.dist.RawMatrix()
	path := make(orb.LineString, 0, 16)

	for steps := 0; steps < p.grid.Cells(); steps++ {
		path = append(path, p.grid.ToCoord(ci, cj))

		if abs(ci-gi) <= 1 && abs(cj-gj) <= 1 {
			break
		}

		// Descend: the neighbor with the strictly smallest field value.
		best := dd.Data[ci*dd.Stride+cj]
		ni, nj := ci, cj
		for _, d := range grid.Offsets8 {
			ii, jj := ci+d[0], cj+d[1]
			if !p.grid.InBounds(ii, jj) {
				continue
			}
			if v := dd.Data[ii*dd.Stride+jj]; v < best {
				best, ni, nj = v, ii, jj
			}
		}
		if ni == ci && nj == cj {
			// Local minimum or plateau; no further progress possible.
			break
		}
		ci, cj = ni, nj
	}

	return append(path, goal), nil
}

func abs(v int) int {
	if v < 0 {
		return -v
	}

	return v
}
