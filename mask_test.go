package bluenoise

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMaskDefaultsForbidden(t *testing.T) {
	m := NewMask(Bx(0, 0, 100, 100), 10, 10)

	require.False(t, m.Contains(50, 50))
	require.False(t, m.Get(5, 5))
}

func TestMaskSetGet(t *testing.T) {
	m := NewMask(Bx(0, 0, 100, 100), 10, 10)

	m.Set(0, 0, true)
	m.Set(9, 9, true)

	require.True(t, m.Get(0, 0))
	require.True(t, m.Get(9, 9))
	require.False(t, m.Get(0, 1))

	// out of range cells are quietly ignored / forbidden
	m.Set(-1, 0, true)
	m.Set(10, 10, true)
	require.False(t, m.Get(-1, 0))
	require.False(t, m.Get(10, 10))
}

func TestMaskContainsMapsCells(t *testing.T) {
	m := NewMask(Bx(0, 0, 100, 100), 10, 10)
	m.Set(0, 0, true)

	// cell (0,0) covers [0,10) x [0,10)
	require.True(t, m.Contains(5, 5))
	require.True(t, m.Contains(0, 0))
	require.False(t, m.Contains(15, 5))
	require.False(t, m.Contains(5, 15))

	// outside the mask area entirely
	require.False(t, m.Contains(-5, 5))
	require.False(t, m.Contains(100, 100))
}

func TestMaskOffsetArea(t *testing.T) {
	m := NewMask(Bx(50, 50, 150, 150), 4, 4)
	m.SetAll(true)

	require.True(t, m.Contains(50, 50))
	require.True(t, m.Contains(149.9, 149.9))
	require.False(t, m.Contains(49.9, 50))
	require.Equal(t, Bx(50, 50, 150, 150), m.Bounds())
}

func TestSampleRegionMask(t *testing.T) {
	// allow only the left half
	m := NewMask(Bx(0, 0, 100, 100), 10, 10)
	for row := 0; row < 10; row++ {
		for col := 0; col < 5; col++ {
			m.Set(col, row, true)
		}
	}

	points, err := SampleRegion(m, 6, rand.New(rand.NewSource(4)))
	require.NoError(t, err)
	require.NotEmpty(t, points)

	for _, p := range points {
		require.Less(t, p.X, 50.0, "point in forbidden half: %v", p)
	}
}
