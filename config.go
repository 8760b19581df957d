package bluenoise

// DefaultAttempts is the retry budget used when Config.Attempts is unset.
// Higher values pack points more densely around existing ones before a
// frontier point is given up on, at higher cost per point.
const DefaultAttempts = 20

// Source is the random number source the sampler draws from.
// A *rand.Rand satisfies this directly. Every operation takes its source
// explicitly (or builds one from Seed) -- there is no hidden process wide
// generator in this library.
type Source interface {
	// Float64 returns a uniform float in [0, 1)
	Float64() float64

	// Intn returns a uniform int in [0, n)
	Intn(n int) int
}

// Config holds configuration for a single scatter.
// MinDist plus either Width / Height or a Region are required; everything
// else has a workable default.
type Config struct {
	// Width, Height bound the sampling rectangle [0,w) x [0,h).
	// May be omitted when Region is given (we use the region's bounds).
	Width  float64
	Height float64

	// MinDist is the minimum separation between any two placed points.
	// Required, must be > 0.
	MinDist float64

	// Attempts is the number of candidate points tried around each
	// frontier point before it is retired. DefaultAttempts if unset.
	Attempts int

	// Seed for rng (random number chosen if not set).
	// Ignored when Rand is supplied.
	Seed int64

	// Rand overrides Seed with a caller supplied random source.
	// Sharing one source across concurrent scatters safely is the
	// caller's business, not ours.
	Rand Source

	// Region optionally constrains where points may land. Candidates
	// outside the region are rejected (they still count against
	// Attempts). Width / Height are ignored when a Region is given.
	Region Region
}

// attempts returns the configured retry budget, or the default.
func (c *Config) attempts() int {
	if c.Attempts <= 0 {
		return DefaultAttempts
	}
	return c.Attempts
}
