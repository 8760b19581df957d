package poisson

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGridCreation(t *testing.T) {
	g := newGrid(100, 100, 20)

	// cellsize 20/sqrt(2) ~= 14.14 -> ceil(100/14.14) cells each way
	require.Equal(t, 8, g.cols)
	require.Equal(t, 8, g.rows)
	require.Equal(t, 64, g.capacity())

	for _, c := range g.cells {
		require.Equal(t, empty, c)
	}
}

func TestGridRegister(t *testing.T) {
	g := newGrid(100, 100, 10)
	points := []Point{{X: 50, Y: 50}, {X: 10, Y: 80}}

	g.register(points[0], 0)
	g.register(points[1], 1)

	occupied := 0
	for _, c := range g.cells {
		if c != empty {
			occupied++
		}
	}
	require.Equal(t, 2, occupied)
}

func TestGridEmptyNeighbourhood(t *testing.T) {
	g := newGrid(100, 100, 10)
	points := []Point{{X: 50, Y: 50}}
	g.register(points[0], 0)

	// far too close
	require.False(t, g.emptyNeighbourhood(Point{X: 52, Y: 52}, points, 10))

	// just inside the minimum distance
	require.False(t, g.emptyNeighbourhood(Point{X: 50, Y: 59.9}, points, 10))

	// just beyond it
	require.True(t, g.emptyNeighbourhood(Point{X: 50, Y: 61}, points, 10))

	// nowhere near
	require.True(t, g.emptyNeighbourhood(Point{X: 10, Y: 10}, points, 10))
}

func TestGridBoundaryRejection(t *testing.T) {
	g := newGrid(100, 100, 10)
	points := []Point{}

	require.False(t, g.emptyNeighbourhood(Point{X: -0.1, Y: 50}, points, 10))
	require.False(t, g.emptyNeighbourhood(Point{X: 100, Y: 50}, points, 10))
	require.False(t, g.emptyNeighbourhood(Point{X: 50, Y: -5}, points, 10))
	require.False(t, g.emptyNeighbourhood(Point{X: 50, Y: 100}, points, 10))

	// on the inclusive edges is fine
	require.True(t, g.emptyNeighbourhood(Point{X: 0, Y: 0}, points, 10))
	require.True(t, g.emptyNeighbourhood(Point{X: 99.99, Y: 99.99}, points, 10))
}

func TestGridWindowClampAtCorners(t *testing.T) {
	g := newGrid(100, 100, 10)
	points := []Point{{X: 1, Y: 1}}
	g.register(points[0], 0)

	// querying right on the corner must not walk off the grid
	require.False(t, g.emptyNeighbourhood(Point{X: 0, Y: 0}, points, 10))
	require.True(t, g.emptyNeighbourhood(Point{X: 99, Y: 99}, points, 10))
}
