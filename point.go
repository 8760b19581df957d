package bluenoise

import (
	"math"
)

// Point is a 2D coordinate. Points are plain values; nothing in the
// library hands out shared references to them.
type Point struct {
	X float64
	Y float64
}

// Pt is shorthand for building a Point.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Add returns p + q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns p - q.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Dist returns the euclidean distance between two points.
func (p Point) Dist(q Point) float64 {
	return math.Sqrt(p.Dist2(q))
}

// Dist2 returns the squared distance between two points.
// Cheaper than Dist when comparing against a known threshold.
func (p Point) Dist2(q Point) float64 {
	dx := p.X - q.X
	dy := p.Y - q.Y
	return dx*dx + dy*dy
}

// Box is an axis aligned rectangle. Min is inclusive, Max exclusive,
// mirroring how we treat the sampling area [0,w) x [0,h).
type Box struct {
	Min Point
	Max Point
}

// Bx is shorthand for building a Box from corner coordinates.
func Bx(x0, y0, x1, y1 float64) Box {
	if x1 < x0 {
		x0, x1 = x1, x0
	}
	if y1 < y0 {
		y0, y1 = y1, y0
	}
	return Box{Min: Pt(x0, y0), Max: Pt(x1, y1)}
}

// Width of the box.
func (b Box) Width() float64 {
	return b.Max.X - b.Min.X
}

// Height of the box.
func (b Box) Height() float64 {
	return b.Max.Y - b.Min.Y
}

// Centre of the box.
func (b Box) Centre() Point {
	return Pt(b.Min.X+b.Width()/2, b.Min.Y+b.Height()/2)
}

// Contains returns if (x, y) falls within the box.
func (b Box) Contains(x, y float64) bool {
	return x >= b.Min.X && x < b.Max.X && y >= b.Min.Y && y < b.Max.Y
}

// Bounds returns the box itself, satisfying Region.
func (b Box) Bounds() Box {
	return b
}
