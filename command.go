package svgpath

// Command is one drawing instruction of a path. It is a closed set: the
// nine types below are the only implementations, so a type switch over
// them is exhaustive. Elliptical arcs are not a Command; they are lowered
// to CubeTo segments before being stored.
type Command interface {
	command()
}

// MoveTo starts a new subpath at the given point.
type MoveTo struct {
	X, Y float64
}

// LineTo draws a straight line to the given point.
type LineTo struct {
	X, Y float64
}

// HLineTo draws a horizontal line to the given x coordinate. It carries
// no y coordinate; the current point's y is unchanged.
type HLineTo struct {
	X float64
}

// VLineTo draws a vertical line to the given y coordinate.
type VLineTo struct {
	Y float64
}

// QuadTo draws a quadratic Bezier curve with one control point.
type QuadTo struct {
	X1, Y1 float64
	X, Y   float64
}

// CubeTo draws a cubic Bezier curve with two control points.
type CubeTo struct {
	X1, Y1 float64
	X2, Y2 float64
	X, Y   float64
}

// SmoothQuadTo draws a quadratic Bezier curve whose control point is the
// reflection of the previous curve's control point. The reflection is
// resolved when the command is consumed, not stored here.
type SmoothQuadTo struct {
	X, Y float64
}

// SmoothCubeTo draws a cubic Bezier curve whose first control point is
// implied by reflection of the previous curve's second control point.
type SmoothCubeTo struct {
	X2, Y2 float64
	X, Y   float64
}

// Close closes the current subpath with a line back to its start.
type Close struct{}

func (MoveTo) command()       {}
func (LineTo) command()       {}
func (HLineTo) command()      {}
func (VLineTo) command()      {}
func (QuadTo) command()       {}
func (CubeTo) command()       {}
func (SmoothQuadTo) command() {}
func (SmoothCubeTo) command() {}
func (Close) command()        {}

// Point is an x,y coordinate pair.
type Point struct {
	X, Y float64
}

// Bounds is the axis-aligned envelope of a command sequence. It covers
// every coordinate stored on every command, curve control points
// included, so it is a control-polygon bound rather than a tight curve
// bound.
type Bounds struct {
	MinX, MinY float64
	MaxX, MaxY float64
}

// Width returns the horizontal extent of the bounds.
func (b Bounds) Width() float64 {
	return b.MaxX - b.MinX
}

// Height returns the vertical extent of the bounds.
func (b Bounds) Height() float64 {
	return b.MaxY - b.MinY
}

// Center returns the midpoint of the bounds.
func (b Bounds) Center() Point {
	return Point{(b.MinX + b.MaxX) / 2, (b.MinY + b.MaxY) / 2}
}
