package svgpath

import (
	"strconv"
	"strings"
)

// Path owns an ordered sequence of drawing commands together with the
// width and height of the design space it was authored in (an icon grid,
// a viewBox and so on). The dimensions are metadata: they provide the
// default targets for Center, Fit and the flips, but they never constrain
// what coordinates the commands may hold.
//
// A Path is mutated only by appending commands or by remapping the whole
// sequence through a transform; it is not safe for concurrent use without
// external synchronisation.
type Path struct {
	Commands []Command
	Width    float64
	Height   float64
}

// New creates a Path with the given design-space dimensions and optional
// initial commands. A zero height defaults to the width.
func New(width, height float64, cmds ...Command) *Path {
	if height == 0 {
		height = width
	}
	p := &Path{Width: width, Height: height}
	if len(cmds) > 0 {
		p.Commands = append(p.Commands, cmds...)
	}
	return p
}

// Clone returns a deep copy of the path. Commands are immutable values,
// so copying the slice is a full copy.
func (p *Path) Clone() *Path {
	c := &Path{
		Commands: make([]Command, len(p.Commands)),
		Width:    p.Width,
		Height:   p.Height,
	}
	copy(c.Commands, p.Commands)
	return c
}

// IsEmpty reports whether the path has no commands.
func (p *Path) IsEmpty() bool {
	return len(p.Commands) == 0
}

// Append adds already-built commands to the path.
func (p *Path) Append(cmds ...Command) *Path {
	p.Commands = append(p.Commands, cmds...)
	return p
}

// MoveTo starts a new subpath at x,y.
func (p *Path) MoveTo(x, y float64) *Path {
	return p.Append(MoveTo{x, y})
}

// LineTo draws a line to x,y.
func (p *Path) LineTo(x, y float64) *Path {
	return p.Append(LineTo{x, y})
}

// HLineTo draws a horizontal line to the given x.
func (p *Path) HLineTo(x float64) *Path {
	return p.Append(HLineTo{x})
}

// VLineTo draws a vertical line to the given y.
func (p *Path) VLineTo(y float64) *Path {
	return p.Append(VLineTo{y})
}

// QuadTo draws a quadratic Bezier curve through control point x1,y1 to x,y.
func (p *Path) QuadTo(x1, y1, x, y float64) *Path {
	return p.Append(QuadTo{x1, y1, x, y})
}

// CubeTo draws a cubic Bezier curve through control points x1,y1 and
// x2,y2 to x,y.
func (p *Path) CubeTo(x1, y1, x2, y2, x, y float64) *Path {
	return p.Append(CubeTo{x1, y1, x2, y2, x, y})
}

// SmoothQuadTo draws a quadratic Bezier curve to x,y with an implied
// control point.
func (p *Path) SmoothQuadTo(x, y float64) *Path {
	return p.Append(SmoothQuadTo{x, y})
}

// SmoothCubeTo draws a cubic Bezier curve to x,y with an implied first
// control point and explicit second control point x2,y2.
func (p *Path) SmoothCubeTo(x2, y2, x, y float64) *Path {
	return p.Append(SmoothCubeTo{x2, y2, x, y})
}

// ClosePath closes the current subpath.
func (p *Path) ClosePath() *Path {
	return p.Append(Close{})
}

// ArcTo draws an elliptical arc from the current point to x,y and appends
// it as the equivalent cubic Bezier segments. Arcs are never stored as
// commands of their own.
func (p *Path) ArcTo(rx, ry, xRotation float64, largeArc, sweep bool, x, y float64) *Path {
	pos := p.Pos()
	for _, c := range ArcToCubics(pos.X, pos.Y, rx, ry, xRotation, largeArc, sweep, x, y) {
		p.Commands = append(p.Commands, c)
	}
	return p
}

// Pos returns the current pen position, derived by replaying the command
// sequence. MoveTo sets both the position and the subpath start, Close
// returns to the subpath start, HLineTo and VLineTo update a single axis.
// An empty path is at the origin.
func (p *Path) Pos() Point {
	pos, _ := replay(p.Commands)
	return pos
}

// replay walks the sequence and returns the current point and the start
// of the active subpath.
func replay(cmds []Command) (pos, start Point) {
	for _, c := range cmds {
		switch c := c.(type) {
		case MoveTo:
			pos = Point{c.X, c.Y}
			start = pos
		case LineTo:
			pos = Point{c.X, c.Y}
		case HLineTo:
			pos.X = c.X
		case VLineTo:
			pos.Y = c.Y
		case QuadTo:
			pos = Point{c.X, c.Y}
		case CubeTo:
			pos = Point{c.X, c.Y}
		case SmoothQuadTo:
			pos = Point{c.X, c.Y}
		case SmoothCubeTo:
			pos = Point{c.X, c.Y}
		case Close:
			pos = start
		}
	}
	return pos, start
}

// Serialize renders a command sequence in SVG path data form, one token
// per command, space joined. The output contains no arc tokens because
// arcs are lowered before they are stored, and it parses back to an equal
// sequence.
func Serialize(cmds []Command) string {
	chunks := make([]string, len(cmds))
	for i, c := range cmds {
		switch c := c.(type) {
		case MoveTo:
			chunks[i] = "M " + fnum(c.X) + " " + fnum(c.Y)
		case LineTo:
			chunks[i] = "L " + fnum(c.X) + " " + fnum(c.Y)
		case HLineTo:
			chunks[i] = "H " + fnum(c.X)
		case VLineTo:
			chunks[i] = "V " + fnum(c.Y)
		case QuadTo:
			chunks[i] = "Q " + fnum(c.X1) + " " + fnum(c.Y1) + " " + fnum(c.X) + " " + fnum(c.Y)
		case CubeTo:
			chunks[i] = "C " + fnum(c.X1) + " " + fnum(c.Y1) + " " + fnum(c.X2) + " " + fnum(c.Y2) + " " + fnum(c.X) + " " + fnum(c.Y)
		case SmoothQuadTo:
			chunks[i] = "T " + fnum(c.X) + " " + fnum(c.Y)
		case SmoothCubeTo:
			chunks[i] = "S " + fnum(c.X2) + " " + fnum(c.Y2) + " " + fnum(c.X) + " " + fnum(c.Y)
		case Close:
			chunks[i] = "Z"
		}
	}
	return strings.Join(chunks, " ")
}

// String returns the path data of the command sequence.
func (p *Path) String() string {
	return Serialize(p.Commands)
}

// fnum formats a coordinate with the shortest representation that parses
// back to the same value.
func fnum(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
