package bluenoise

import (
	"image"
	"image/color"
	"math"

	"github.com/fogleman/gg"
	"golang.org/x/image/colornames"
)

// Style defines how a scatter should be drawn.
type Style struct {
	// Background colour of the whole image
	Background color.Color

	// Point colour for the dot drawn at each point
	Point color.Color

	// Disc, if set, draws a ring of radius MinDist/2 around each point;
	// handy for eyeballing that no two discs overlap
	Disc color.Color

	// Radius of each dot in pixels
	Radius float64

	// Scale in pixels per coordinate unit (1 if unset)
	Scale float64
}

// DefaultStyle returns a reasonable default Style.
func DefaultStyle() *Style {
	return &Style{
		Background: colornames.Whitesmoke,
		Point:      colornames.Steelblue,
		Radius:     2,
		Scale:      1,
	}
}

// Image renders the scatter with the given style (DefaultStyle if nil).
func (s *Scatter) Image(style *Style) image.Image {
	if style == nil {
		style = DefaultStyle()
	}

	scale := style.Scale
	if scale <= 0 {
		scale = 1
	}

	w := maxint(int(math.Ceil(s.Area.Width()*scale)), 1)
	h := maxint(int(math.Ceil(s.Area.Height()*scale)), 1)

	ctx := gg.NewContextForRGBA(image.NewRGBA(image.Rect(0, 0, w, h)))
	ctx.SetColor(style.Background)
	ctx.Clear()

	for _, p := range s.Points {
		x := (p.X - s.Area.Min.X) * scale
		y := (p.Y - s.Area.Min.Y) * scale

		if style.Disc != nil {
			ctx.SetColor(style.Disc)
			ctx.SetLineWidth(1)
			ctx.DrawCircle(x, y, s.MinDist/2*scale)
			ctx.Stroke()
		}

		ctx.SetColor(style.Point)
		ctx.DrawCircle(x, y, style.Radius)
		ctx.Fill()
	}

	return ctx.Image()
}

// SavePNG renders the scatter & writes it to the given path.
func (s *Scatter) SavePNG(fpath string, style *Style) error {
	return savePNG(fpath, s.Image(style))
}
