package bluenoise

import (
	"github.com/unixpickle/model3d/model2d"
)

// Region tells the sampler roughly where points are allowed to land.
// We only have two questions;
// - is this (real valued) coordinate inside the region?
// - what rectangle encloses the whole region?
// A Box is itself a Region; more exotic shapes can be supplied via a
// Mask (see mask.go) or any model2d.Solid (see SolidRegion).
type Region interface {
	// true if a point may be placed at (x, y)
	Contains(x, y float64) bool

	// enclosing rectangle; the sampler runs over this & rejects
	// candidates the region disowns
	Bounds() Box
}

// solidRegion wraps a model2d.Solid as a Region.
type solidRegion struct {
	solid model2d.Solid
}

// SolidRegion adapts an arbitrary model2d.Solid (circles, polygon meshes,
// boolean combinations ..) so points can be scattered inside it.
func SolidRegion(s model2d.Solid) Region {
	return &solidRegion{solid: s}
}

// Contains asks the underlying solid.
func (r *solidRegion) Contains(x, y float64) bool {
	return r.solid.Contains(model2d.Coord{X: x, Y: y})
}

// Bounds returns the solid's bounding rectangle.
func (r *solidRegion) Bounds() Box {
	min := r.solid.Min()
	max := r.solid.Max()
	return Bx(min.X, min.Y, max.X, max.Y)
}
