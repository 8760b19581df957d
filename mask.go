package bluenoise

import (
	"github.com/boljen/go-bitmap"
)

// Mask is a raster Region; the covered area is divided into cols x rows
// cells & each cell is a single allowed / forbidden bit. Useful when the
// region comes from map data (water, cliffs ..) rather than clean geometry.
//
// A freshly made Mask forbids everything.
type Mask struct {
	bm   bitmap.Bitmap
	cols int
	rows int
	area Box
}

// NewMask returns a Mask covering `area` at the given cell resolution.
func NewMask(area Box, cols, rows int) *Mask {
	if cols < 1 {
		cols = 1
	}
	if rows < 1 {
		rows = 1
	}
	return &Mask{
		bm:   bitmap.New(cols * rows),
		cols: cols,
		rows: rows,
		area: area,
	}
}

// Set marks the cell (col, row) as allowed (or not).
// Out of range cells are ignored.
func (m *Mask) Set(col, row int, allowed bool) {
	if col < 0 || col >= m.cols || row < 0 || row >= m.rows {
		return
	}
	m.bm.Set(row*m.cols+col, allowed)
}

// SetAll marks every cell as allowed (or not).
func (m *Mask) SetAll(allowed bool) {
	for i := 0; i < m.cols*m.rows; i++ {
		m.bm.Set(i, allowed)
	}
}

// Get returns the bit for cell (col, row). Out of range cells are forbidden.
func (m *Mask) Get(col, row int) bool {
	if col < 0 || col >= m.cols || row < 0 || row >= m.rows {
		return false
	}
	return m.bm.Get(row*m.cols + col)
}

// Contains maps (x, y) to its cell & returns that cell's bit.
func (m *Mask) Contains(x, y float64) bool {
	if !m.area.Contains(x, y) {
		return false
	}
	col := int((x - m.area.Min.X) / m.area.Width() * float64(m.cols))
	row := int((y - m.area.Min.Y) / m.area.Height() * float64(m.rows))
	return m.Get(col, row)
}

// Bounds returns the area the mask covers.
func (m *Mask) Bounds() Box {
	return m.area
}
