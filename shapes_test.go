package svgpath

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// A 24-grid icon outline built from rounded corners and a manual
// chamfer, centered in its grid.
func TestRoundedOutlineCentered(t *testing.T) {
	p := New(24, 0).
		MoveTo(0, 0).
		RoundedCorner(TopLeft, 0, 0, 3, 3).
		LineTo(9, 0).
		LineTo(12, 3).
		RoundedCorner(TopRight, 24, 3, 3, 3).
		RoundedCorner(BottomRight, 24, 19, 3, 3).
		RoundedCorner(BottomLeft, 0, 19, 3, 3).
		ClosePath().
		CenterIn(0, 0, 24, 24)

	require.Equal(t, Bounds{MinX: 0, MinY: 2.5, MaxX: 24, MaxY: 21.5}, p.Bounds())
}

func TestRectCommands(t *testing.T) {
	p := New(24, 24).Rect(1, 2, 10, 5)
	require.Equal(t, []Command{
		MoveTo{1, 2},
		LineTo{11, 2},
		LineTo{11, 7},
		LineTo{1, 7},
		Close{},
	}, p.Commands)
}

func TestStyledRectSharpMatchesRect(t *testing.T) {
	styled := New(24, 24).StyledRect(1, 2, 10, 5, RectStyle{})
	plain := New(24, 24).Rect(1, 2, 10, 5)
	require.Equal(t, plain.Commands, styled.Commands)
}

func TestStyledRectRounded(t *testing.T) {
	all := RectCorner{Style: Rounded}
	p := New(24, 24).StyledRect(0, 0, 10, 10, RectStyle{
		Radius:      2,
		TopLeft:     all,
		TopRight:    all,
		BottomRight: all,
		BottomLeft:  all,
	})

	// M + four (line, quadratic) corner pairs + Z.
	require.Len(t, p.Commands, 10)
	require.Equal(t, MoveTo{2, 0}, p.Commands[0])
	require.Equal(t, LineTo{8, 0}, p.Commands[1])
	require.Equal(t, QuadTo{10, 0, 10, 2}, p.Commands[2])
	// Corner points appear as control points, so the envelope is the
	// full rectangle.
	require.Equal(t, Bounds{0, 0, 10, 10}, p.Bounds())
}

func TestStyledRectRadiusClamped(t *testing.T) {
	all := RectCorner{Style: Rounded}
	p := New(24, 24).StyledRect(0, 0, 10, 4, RectStyle{
		Radius:      5,
		TopLeft:     all,
		TopRight:    all,
		BottomRight: all,
		BottomLeft:  all,
	})

	// Radius 5 fits the width but clamps to half the height.
	require.Equal(t, MoveTo{5, 0}, p.Commands[0])
	require.Equal(t, LineTo{5, 0}, p.Commands[1])
	require.Equal(t, QuadTo{10, 0, 10, 2}, p.Commands[2])
}

func TestStyledRectPerCornerOverride(t *testing.T) {
	p := New(24, 24).StyledRect(0, 0, 10, 10, RectStyle{
		Radius:   2,
		TopRight: RectCorner{Style: Chamfered, Radius: 4},
	})

	// Sharp top-left start, chamfered top-right with its own radius.
	require.Equal(t, MoveTo{0, 0}, p.Commands[0])
	require.Equal(t, LineTo{6, 0}, p.Commands[1])
	require.Equal(t, LineTo{10, 4}, p.Commands[2])
}

func TestEllipseBounds(t *testing.T) {
	p := New(24, 24).Ellipse(5, 5, 3, 2)
	require.Equal(t, Bounds{2, 3, 8, 7}, p.Bounds())
	// Move plus four cubics plus close.
	require.Len(t, p.Commands, 6)
}

func TestCircleIsUniformEllipse(t *testing.T) {
	c := New(24, 24).Circle(4, 4, 2)
	e := New(24, 24).Ellipse(4, 4, 2, 2)
	require.Equal(t, e.Commands, c.Commands)
	require.Equal(t, Bounds{2, 2, 6, 6}, c.Bounds())
}

func TestChamferedCornerTwoLines(t *testing.T) {
	p := New(24, 24).MoveTo(0, 5).ChamferedCorner(TopLeft, 0, 0, 3, 3)
	require.Equal(t, []Command{MoveTo{0, 5}, LineTo{0, 3}, LineTo{3, 0}}, p.Commands)
}
