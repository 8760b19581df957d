package poisson

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func runSampler(t *testing.T, w, h, dist float64, seed int64) ([]Point, Stats) {
	t.Helper()
	s := &Sampler{
		Width:    w,
		Height:   h,
		Dist:     dist,
		Attempts: 20,
		Rand:     rand.New(rand.NewSource(seed)),
	}
	points, stats := s.Run()
	require.NotEmpty(t, points)
	return points, stats
}

func TestRunSeedsAtCentre(t *testing.T) {
	points, _ := runSampler(t, 100, 60, 10, 1)
	require.Equal(t, Point{X: 50, Y: 30}, points[0])
}

func TestRunMinimumDistance(t *testing.T) {
	points, _ := runSampler(t, 100, 100, 10, 7)

	for i := 0; i < len(points); i++ {
		for j := i + 1; j < len(points); j++ {
			d := math.Sqrt(points[i].Dist2(points[j]))
			require.GreaterOrEqual(t, d, 10.0, "points %d & %d too close", i, j)
		}
	}
}

func TestRunBoundaryContainment(t *testing.T) {
	points, _ := runSampler(t, 80, 120, 7, 3)

	for _, p := range points {
		require.True(t, p.X >= 0 && p.X < 80, "x out of bounds: %v", p)
		require.True(t, p.Y >= 0 && p.Y < 120, "y out of bounds: %v", p)
	}
}

func TestRunDeterminism(t *testing.T) {
	a, _ := runSampler(t, 100, 100, 8, 42)
	b, _ := runSampler(t, 100, 100, 8, 42)
	require.Equal(t, a, b)
}

func TestRunCapacityBound(t *testing.T) {
	points, _ := runSampler(t, 100, 100, 12, 5)

	cellsize := 12 / math.Sqrt2
	capacity := int(math.Ceil(100/cellsize)) * int(math.Ceil(100/cellsize))
	require.LessOrEqual(t, len(points), capacity)
}

func TestRunStats(t *testing.T) {
	points, stats := runSampler(t, 100, 100, 10, 11)

	require.Equal(t, len(points), stats.Accepted)
	// every accepted point joins the frontier once & is retired once
	require.Equal(t, stats.Accepted, stats.Exhausted)
}

func TestRunDegenerateLargeDistance(t *testing.T) {
	// annulus candidates start at dist 90 from the centre of a 100x100
	// area; nothing can land in bounds, so only the seed survives
	points, _ := runSampler(t, 100, 100, 90, 13)
	require.Len(t, points, 1)
}

func TestRunTermination(t *testing.T) {
	// a spread of sizes including very sparse & very dense packings;
	// the test itself is the timeout, Run must simply come back
	for _, tc := range []struct {
		w, h, dist float64
	}{
		{10, 10, 9.9},
		{10, 10, 0.5},
		{500, 20, 3},
		{1, 1000, 5},
	} {
		points, _ := runSampler(t, tc.w, tc.h, tc.dist, 17)
		require.NotEmpty(t, points)
	}
}

func TestRunAcceptHook(t *testing.T) {
	s := &Sampler{
		Width:    100,
		Height:   100,
		Dist:     6,
		Attempts: 20,
		Rand:     rand.New(rand.NewSource(9)),
		Accept:   func(x, y float64) bool { return x < 50 },
		Seed:     &Point{X: 25, Y: 50},
	}

	points, stats := s.Run()
	require.NotEmpty(t, points)
	require.Greater(t, stats.Rejected, 0)

	for _, p := range points {
		require.Less(t, p.X, 50.0)
	}
}
