package svgpath

import "math"

// BoundsOf computes the envelope of a command sequence in a single pass
// over every coordinate field, control points included. The second return
// is false for a sequence carrying no coordinates (empty, or Close-only),
// in which case the bounds are the degenerate zero box.
func BoundsOf(cmds []Command) (Bounds, bool) {
	b := Bounds{
		MinX: math.Inf(1), MinY: math.Inf(1),
		MaxX: math.Inf(-1), MaxY: math.Inf(-1),
	}
	seen := false
	for _, c := range cmds {
		switch c := c.(type) {
		case MoveTo:
			b.addPoint(c.X, c.Y)
			seen = true
		case LineTo:
			b.addPoint(c.X, c.Y)
			seen = true
		case HLineTo:
			b.addX(c.X)
			seen = true
		case VLineTo:
			b.addY(c.Y)
			seen = true
		case QuadTo:
			b.addPoint(c.X1, c.Y1)
			b.addPoint(c.X, c.Y)
			seen = true
		case CubeTo:
			b.addPoint(c.X1, c.Y1)
			b.addPoint(c.X2, c.Y2)
			b.addPoint(c.X, c.Y)
			seen = true
		case SmoothQuadTo:
			b.addPoint(c.X, c.Y)
			seen = true
		case SmoothCubeTo:
			b.addPoint(c.X2, c.Y2)
			b.addPoint(c.X, c.Y)
			seen = true
		case Close:
		}
	}
	if !seen {
		return Bounds{}, false
	}
	// An HLineTo-only or VLineTo-only sequence never touches the other
	// axis; collapse the untouched axis to zero rather than leaking the
	// infinity sentinels.
	if b.MinX > b.MaxX {
		b.MinX, b.MaxX = 0, 0
	}
	if b.MinY > b.MaxY {
		b.MinY, b.MaxY = 0, 0
	}
	return b, true
}

// Bounds returns the envelope of the path's commands, or the degenerate
// zero box when the path holds no coordinates.
func (p *Path) Bounds() Bounds {
	b, _ := BoundsOf(p.Commands)
	return b
}

func (b *Bounds) addPoint(x, y float64) {
	b.addX(x)
	b.addY(y)
}

func (b *Bounds) addX(x float64) {
	if x < b.MinX {
		b.MinX = x
	}
	if x > b.MaxX {
		b.MaxX = x
	}
}

func (b *Bounds) addY(y float64) {
	if y < b.MinY {
		b.MinY = y
	}
	if y > b.MaxY {
		b.MaxY = y
	}
}
