package bluenoise

import (
	"bytes"
	"image"
	"image/png"
	"os"
)

// RandomPoint returns a single uniformly random point within the box.
// Plain independent sampling; no spacing guarantees.
func RandomPoint(b Box, rng Source) Point {
	return Pt(
		b.Min.X+rng.Float64()*b.Width(),
		b.Min.Y+rng.Float64()*b.Height(),
	)
}

// RandomPoints returns n uniformly random points within the box.
func RandomPoints(b Box, n int, rng Source) []Point {
	points := make([]Point, n)
	for i := range points {
		points[i] = RandomPoint(b, rng)
	}
	return points
}

// savePNG to disk
func savePNG(fpath string, in image.Image) error {
	buff := new(bytes.Buffer)
	err := png.Encode(buff, in)
	if err != nil {
		return err
	}
	return os.WriteFile(fpath, buff.Bytes(), 0644)
}

// maxint returns the highest of two ints
func maxint(a, b int) int {
	if a > b {
		return a
	}
	return b
}
