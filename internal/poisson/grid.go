package poisson

import (
	"math"
)

// empty marks a grid cell with no registered point.
const empty = -1

// grid is the acceptance structure behind the sampler; a dense 2D index
// answering "is any accepted point within dist of this candidate?" in
// constant time.
//
// Cells are dist/sqrt(2) square. At that size no two points that honour
// the minimum distance can share a cell, so one index slot per cell is
// enough -- and any point close enough to violate the minimum distance
// must sit within 2 cells of the candidate's cell, so checking the 5x5
// window around it is sufficient.
type grid struct {
	cellsize float64
	cols     int
	rows     int
	w        float64
	h        float64
	cells    []int
}

// newGrid returns an all-empty grid covering [0,w) x [0,h).
func newGrid(w, h, dist float64) *grid {
	cellsize := dist / math.Sqrt2
	cols := int(math.Ceil(w / cellsize))
	rows := int(math.Ceil(h / cellsize))

	cells := make([]int, cols*rows)
	for i := range cells {
		cells[i] = empty
	}

	return &grid{
		cellsize: cellsize,
		cols:     cols,
		rows:     rows,
		w:        w,
		h:        h,
		cells:    cells,
	}
}

// capacity is the total cell count; also an upper bound on how many
// points a run can ever accept.
func (g *grid) capacity() int {
	return g.cols * g.rows
}

// cellOf returns the cell coordinates holding p.
// nb. p is expected in-bounds; we clamp anyway against float rounding
// right on the far edges.
func (g *grid) cellOf(p Point) (int, int) {
	cx := int(p.X / g.cellsize)
	cy := int(p.Y / g.cellsize)
	if cx >= g.cols {
		cx = g.cols - 1
	}
	if cy >= g.rows {
		cy = g.rows - 1
	}
	return cx, cy
}

// register stores index (into the accepted points) at p's cell.
// The target cell is always empty here: two accepted points can never
// share a cell (see cellsize above), so cells are write-once.
func (g *grid) register(p Point, index int) {
	cx, cy := g.cellOf(p)
	g.cells[cy*g.cols+cx] = index
}

// emptyNeighbourhood returns true if no accepted point lies within dist
// of sample. Samples outside [0,w) x [0,h) are never acceptable.
func (g *grid) emptyNeighbourhood(sample Point, points []Point, dist float64) bool {
	if sample.X < 0 || sample.X >= g.w || sample.Y < 0 || sample.Y >= g.h {
		return false
	}

	cx, cy := g.cellOf(sample)

	// 2 cells in every direction, clamped to the grid
	x0 := maxint(cx-2, 0)
	y0 := maxint(cy-2, 0)
	x1 := minint(cx+2, g.cols-1)
	y1 := minint(cy+2, g.rows-1)

	d2 := dist * dist
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			i := g.cells[y*g.cols+x]
			if i == empty {
				continue
			}
			if points[i].Dist2(sample) < d2 {
				return false
			}
		}
	}

	return true
}

// maxint returns the highest of two ints
func maxint(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// minint returns the lowest of two ints
func minint(a, b int) int {
	if a < b {
		return a
	}
	return b
}
