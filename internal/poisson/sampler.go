// Package poisson implements Bridson's poisson disk sampling; randomly
// but evenly spread points over a rectangle with no two closer than a
// given minimum distance.
package poisson

import (
	"math"

	"github.com/unixpickle/essentials"
)

// Point is a 2D coordinate local to this package; callers translate
// to / from their own point types.
type Point struct {
	X float64
	Y float64
}

// Dist2 returns the squared distance between two points.
func (p Point) Dist2(q Point) float64 {
	dx := p.X - q.X
	dy := p.Y - q.Y
	return dx*dx + dy*dy
}

// Source yields uniform random values. Satisfied by *rand.Rand.
type Source interface {
	Float64() float64
	Intn(n int) int
}

// Stats counts what happened during a run.
type Stats struct {
	// Accepted points (== the number of points returned)
	Accepted int

	// Rejected candidate points (too close to a neighbour, out of
	// bounds, or disallowed by the Accept hook)
	Rejected int

	// Exhausted frontier points -- those retired after failing to
	// spawn a valid neighbour within the retry budget. Every accepted
	// point is eventually exhausted, so this matches Accepted when
	// the run completes.
	Exhausted int
}

// Sampler holds the parameters of one sampling run over
// [0,Width) x [0,Height). All fields are required except Accept & Seed.
//
// A Sampler is single use & single threaded; concurrent runs want one
// Sampler (and ideally one Source) each.
type Sampler struct {
	Width    float64
	Height   float64
	Dist     float64
	Attempts int
	Rand     Source

	// Accept optionally constrains candidates further; rejected
	// candidates count against Attempts like any other.
	Accept func(x, y float64) bool

	// Seed is the starting point; centre of the area if nil.
	Seed *Point
}

// Run produces the scatter. Points come back in discovery order, seed
// first. The run always terminates: the frontier only ever shrinks, and
// while accepted points join it, the grid bounds how many of those there
// can be.
func (s *Sampler) Run() ([]Point, Stats) {
	g := newGrid(s.Width, s.Height, s.Dist)

	stats := Stats{}
	points := make([]Point, 0, g.capacity()/4+1)
	active := make([]int, 0, 128)

	place := func(p Point) {
		g.register(p, len(points))
		active = append(active, len(points))
		points = append(points, p)
		stats.Accepted++
	}

	seed := Point{X: s.Width / 2, Y: s.Height / 2}
	if s.Seed != nil {
		seed = *s.Seed
	}
	place(seed)

	for len(active) > 0 {
		i := s.Rand.Intn(len(active))
		centre := points[active[i]]

		placed := false
		for k := 0; k < s.Attempts; k++ {
			// candidate in the annulus [dist, 2*dist) around centre
			angle := s.Rand.Float64() * 2 * math.Pi
			radius := s.Dist * (1 + s.Rand.Float64())
			candidate := Point{
				X: centre.X + radius*math.Sin(angle),
				Y: centre.Y + radius*math.Cos(angle),
			}

			if !g.emptyNeighbourhood(candidate, points, s.Dist) {
				stats.Rejected++
				continue
			}
			if s.Accept != nil && !s.Accept(candidate.X, candidate.Y) {
				stats.Rejected++
				continue
			}

			place(candidate)
			placed = true
			break
		}

		if !placed {
			// retired; it stays in the output, it just spawns no
			// further neighbours
			essentials.UnorderedDelete(&active, i)
			stats.Exhausted++
		}
	}

	return points, stats
}
