package bluenoise

import (
	"encoding/json"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/voidshard/bluenoise/internal/poisson"
)

var (
	// ErrInvalidArea implies the configured (or region derived) sampling
	// area has no room in it.
	ErrInvalidArea = fmt.Errorf("scatter area must have positive width & height")

	// ErrInvalidMinDist implies a zero / negative minimum distance.
	ErrInvalidMinDist = fmt.Errorf("minimum distance must be positive")

	// ErrInvalidAttempts implies a negative retry budget (zero means
	// "use the default").
	ErrInvalidAttempts = fmt.Errorf("attempts must not be negative")

	// ErrEmptyRegion implies we couldn't land a starting point inside
	// the given Region (it's empty, or as good as).
	ErrEmptyRegion = fmt.Errorf("failed to place a seed point inside the region")
)

// seedTries bounds how long we hunt for a starting point inside a Region
// whose centre is disallowed.
const seedTries = 1000

// Stats holds generic counters about a scatter run.
type Stats struct {
	// Accepted points (== number of points placed)
	Accepted int

	// Rejected candidates; too close to a neighbour, outside the area
	// or disallowed by the Region
	Rejected int

	// Exhausted frontier points; those retired after failing to spawn
	// a neighbour within the retry budget
	Exhausted int
}

// Scatter holds the points of one poisson disk sampling run; randomly
// placed, roughly even, with no two closer than the configured MinDist.
type Scatter struct {
	// Points in discovery order, seed point first
	Points []Point

	// Seed used for the rng (when the caller didn't bring their own)
	Seed int64

	// Area the points fall within
	Area Box

	// MinDist between any pair of points
	MinDist float64

	// Stats about the run
	Stats *Stats `json:",omitempty"`

	cfg *Config
	rng Source
}

// New runs a scatter with the given configuration.
func New(cfg *Config) (*Scatter, error) {
	s := &Scatter{cfg: cfg}
	return s, s.build()
}

// Sample scatters points over [0,width) x [0,height) keeping every pair
// at least minDist apart, with the default retry budget. A nil rng means
// "seed one off the clock for me".
func Sample(width, height, minDist float64, rng Source) ([]Point, error) {
	s, err := New(&Config{Width: width, Height: height, MinDist: minDist, Rand: rng})
	if err != nil {
		return nil, err
	}
	return s.Points, nil
}

// SampleBox is Sample over a caller supplied rectangle; the same scatter
// translated into the box's frame.
func SampleBox(b Box, minDist float64, rng Source) ([]Point, error) {
	s, err := New(&Config{Region: b, MinDist: minDist, Rand: rng})
	if err != nil {
		return nil, err
	}
	return s.Points, nil
}

// SampleRegion is Sample constrained to an arbitrary Region; we scatter
// over the region's bounds & keep only what the region allows.
func SampleRegion(r Region, minDist float64, rng Source) ([]Point, error) {
	s, err := New(&Config{Region: r, MinDist: minDist, Rand: rng})
	if err != nil {
		return nil, err
	}
	return s.Points, nil
}

// JSON returns the scatter as json.
func (s *Scatter) JSON() ([]byte, error) {
	return json.Marshal(s)
}

// SaveJSON writes a json file to the given path.
func (s *Scatter) SaveJSON(fpath string) error {
	data, err := s.JSON()
	if err != nil {
		return err
	}
	return os.WriteFile(fpath, data, 0644)
}

// build validates config & runs the sampling. The core works in
// [0,w) x [0,h); we translate in & out of the caller's frame here.
func (s *Scatter) build() error {
	area := Bx(0, 0, s.cfg.Width, s.cfg.Height)
	if s.cfg.Region != nil {
		area = s.cfg.Region.Bounds()
	} else if s.cfg.Width <= 0 || s.cfg.Height <= 0 {
		// checked before Bx, which quietly normalises flipped corners
		return ErrInvalidArea
	}

	if area.Width() <= 0 || area.Height() <= 0 {
		return ErrInvalidArea
	}
	if s.cfg.MinDist <= 0 {
		return ErrInvalidMinDist
	}
	if s.cfg.Attempts < 0 {
		return ErrInvalidAttempts
	}

	s.Area = area
	s.MinDist = s.cfg.MinDist

	if s.cfg.Rand != nil {
		s.rng = s.cfg.Rand
		s.Seed = s.cfg.Seed
	} else {
		if s.cfg.Seed == 0 {
			s.cfg.Seed = time.Now().UnixNano()
		}
		s.Seed = s.cfg.Seed
		s.rng = rand.New(rand.NewSource(s.cfg.Seed))
	}

	smp := &poisson.Sampler{
		Width:    area.Width(),
		Height:   area.Height(),
		Dist:     s.cfg.MinDist,
		Attempts: s.cfg.attempts(),
		Rand:     s.rng,
	}

	off := area.Min

	if region := s.cfg.Region; region != nil {
		// a plain Box region *is* the sampling area; the core's own
		// bounds rejection covers it & no per-candidate check is needed
		if _, ok := region.(Box); !ok {
			smp.Accept = func(x, y float64) bool {
				return region.Contains(x+off.X, y+off.Y)
			}

			seed, err := s.findSeed(region, area)
			if err != nil {
				return err
			}
			smp.Seed = &poisson.Point{X: seed.X - off.X, Y: seed.Y - off.Y}
		}
	}

	raw, stats := smp.Run()

	s.Points = make([]Point, len(raw))
	for i, p := range raw {
		s.Points[i] = Pt(p.X+off.X, p.Y+off.Y)
	}
	s.Stats = &Stats{
		Accepted:  stats.Accepted,
		Rejected:  stats.Rejected,
		Exhausted: stats.Exhausted,
	}

	return nil
}

// findSeed picks a starting point inside the region; the centre of its
// bounds when allowed, otherwise random candidates until one lands.
func (s *Scatter) findSeed(region Region, area Box) (Point, error) {
	centre := area.Centre()
	if region.Contains(centre.X, centre.Y) {
		return centre, nil
	}

	for i := 0; i < seedTries; i++ {
		p := RandomPoint(area, s.rng)
		if region.Contains(p.X, p.Y) {
			return p, nil
		}
	}

	return Point{}, ErrEmptyRegion
}
