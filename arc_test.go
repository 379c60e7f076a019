package svgpath

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestArcCoincidentEndpoints(t *testing.T) {
	params := []struct {
		rx, ry, rotation float64
		largeArc, sweep  bool
	}{
		{2, 2.5, 0, false, false},
		{0, 0, 0, false, true},
		{5, 3, 45, true, false},
		{1, 1, 90, true, true},
	}
	for _, c := range params {
		curves := ArcToCubics(7, -2, c.rx, c.ry, c.rotation, c.largeArc, c.sweep, 7, -2)
		require.Empty(t, curves)
	}
}

func TestArcZeroRadius(t *testing.T) {
	curves := ArcToCubics(0, 0, 0, 2.5, 0, false, false, 10, 10)
	require.Equal(t, []CubeTo{{X1: 0, Y1: 0, X2: 10, Y2: 10, X: 10, Y: 10}}, curves)

	curves = ArcToCubics(0, 0, 2.5, 0, 0, true, true, 10, 10)
	require.Equal(t, []CubeTo{{X1: 0, Y1: 0, X2: 10, Y2: 10, X: 10, Y: 10}}, curves)
}

// A quarter of the unit circle is a single segment whose control points
// sit at the classic kappa distance.
func TestArcQuarterCircle(t *testing.T) {
	curves := ArcToCubics(1, 0, 1, 1, 0, false, true, 0, 1)
	require.Len(t, curves, 1)

	c := curves[0]
	require.InDelta(t, 1, c.X1, 1e-9)
	require.InDelta(t, kappa, c.Y1, 1e-9)
	require.InDelta(t, kappa, c.X2, 1e-9)
	require.InDelta(t, 1, c.Y2, 1e-9)
	require.InDelta(t, 0, c.X, 1e-9)
	require.InDelta(t, 1, c.Y, 1e-9)
}

func TestArcSegmentCounts(t *testing.T) {
	// Semicircle: two quarter-turn segments.
	curves := ArcToCubics(0, 0, 5, 5, 0, false, true, 10, 0)
	require.Len(t, curves, 2)

	// Large-arc sweep of the same chord on a bigger circle spans more
	// than pi, three segments.
	curves = ArcToCubics(0, 0, 6, 6, 0, true, true, 10, 0)
	require.Len(t, curves, 3)
}

func TestArcEndsOnEndpoint(t *testing.T) {
	cases := []struct {
		x0, y0, rx, ry, rotation float64
		largeArc, sweep          bool
		x1, y1                   float64
	}{
		{5.1, 0.21, 2, 2.5, 0, false, true, 23.54, 74},
		{0, 0, 10, 5, 30, true, false, 3, 4},
		{-4, 2, 3, 3, 0, false, false, 1, 1},
	}
	for _, c := range cases {
		curves := ArcToCubics(c.x0, c.y0, c.rx, c.ry, c.rotation, c.largeArc, c.sweep, c.x1, c.y1)
		require.NotEmpty(t, curves)
		last := curves[len(curves)-1]
		require.InDelta(t, c.x1, last.X, 1e-9)
		require.InDelta(t, c.y1, last.Y, 1e-9)
	}
}

// Undersized radii are scaled up until the ellipse spans the endpoints,
// which leaves the arc a half turn regardless of the large-arc flag.
func TestArcRadiusCorrection(t *testing.T) {
	curves := ArcToCubics(5.1, 0.21, 2, 2.5, 0, false, true, 23.54, 74)
	require.Len(t, curves, 2)

	joint := curves[0]
	require.False(t, math.IsNaN(joint.X) || math.IsNaN(joint.Y))
	require.NotEqual(t, Point{5.1, 0.21}, Point{joint.X, joint.Y})
	require.NotEqual(t, Point{23.54, 74}, Point{joint.X, joint.Y})
}
