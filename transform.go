package svgpath

import (
	"math"

	mt "github.com/rustyoz/Mtransform"
)

// MapCoords rewrites every command by applying f to each of its
// coordinate fields. Control points go through the same f as endpoints,
// which keeps curvature correct under flips and rotations. HLineTo and
// VLineTo carry a single axis: the missing axis is fed to f as a zero
// placeholder and the mapped value for it is discarded.
//
// MapCoords is the single transform primitive; every derived operation is
// a choice of f.
func (p *Path) MapCoords(f func(x, y float64) (float64, float64)) *Path {
	for i, c := range p.Commands {
		p.Commands[i] = mapCommand(c, f)
	}
	return p
}

func mapCommand(c Command, f func(x, y float64) (float64, float64)) Command {
	switch c := c.(type) {
	case MoveTo:
		x, y := f(c.X, c.Y)
		return MoveTo{x, y}
	case LineTo:
		x, y := f(c.X, c.Y)
		return LineTo{x, y}
	case HLineTo:
		x, _ := f(c.X, 0)
		return HLineTo{x}
	case VLineTo:
		_, y := f(0, c.Y)
		return VLineTo{y}
	case QuadTo:
		x1, y1 := f(c.X1, c.Y1)
		x, y := f(c.X, c.Y)
		return QuadTo{x1, y1, x, y}
	case CubeTo:
		x1, y1 := f(c.X1, c.Y1)
		x2, y2 := f(c.X2, c.Y2)
		x, y := f(c.X, c.Y)
		return CubeTo{x1, y1, x2, y2, x, y}
	case SmoothQuadTo:
		x, y := f(c.X, c.Y)
		return SmoothQuadTo{x, y}
	case SmoothCubeTo:
		x2, y2 := f(c.X2, c.Y2)
		x, y := f(c.X, c.Y)
		return SmoothCubeTo{x2, y2, x, y}
	case Close:
		return c
	}
	return c
}

// Transform applies an affine transform matrix to every command.
func (p *Path) Transform(t mt.Transform) *Path {
	return p.MapCoords(t.Apply)
}

// Translate moves the path by dx,dy.
func (p *Path) Translate(dx, dy float64) *Path {
	return p.Transform(translation(dx, dy))
}

// Scale scales the path uniformly about the center of its own envelope.
func (p *Path) Scale(s float64) *Path {
	return p.ScaleXY(s, s)
}

// ScaleXY scales the path about the center of its own envelope, computed
// fresh for this call.
func (p *Path) ScaleXY(sx, sy float64) *Path {
	c := p.Bounds().Center()
	return p.ScaleAbout(sx, sy, c.X, c.Y)
}

// ScaleAbout scales the path about the pivot cx,cy.
func (p *Path) ScaleAbout(sx, sy, cx, cy float64) *Path {
	return p.Transform(about(scaling(sx, sy), cx, cy))
}

// Rotate rotates the path by angle radians about the origin. Unlike
// Scale, the default pivot is the coordinate-system origin, not the
// envelope center.
func (p *Path) Rotate(angle float64) *Path {
	return p.RotateAbout(angle, 0, 0)
}

// RotateDegrees rotates the path by angle degrees about the origin.
func (p *Path) RotateDegrees(angle float64) *Path {
	return p.Rotate(angle * math.Pi / 180)
}

// RotateAbout rotates the path by angle radians about the pivot cx,cy.
func (p *Path) RotateAbout(angle, cx, cy float64) *Path {
	return p.Transform(about(rotation(angle), cx, cy))
}

// FlipX mirrors the path horizontally within its declared width.
func (p *Path) FlipX() *Path {
	return p.FlipXAt(p.Width)
}

// FlipXAt mirrors the path horizontally within the given width, mapping
// x to width-x.
func (p *Path) FlipXAt(width float64) *Path {
	t := scaling(-1, 1)
	t[0][2] = width
	return p.Transform(t)
}

// FlipY mirrors the path vertically within its declared height.
func (p *Path) FlipY() *Path {
	return p.FlipYAt(p.Height)
}

// FlipYAt mirrors the path vertically within the given height.
func (p *Path) FlipYAt(height float64) *Path {
	t := scaling(1, -1)
	t[1][2] = height
	return p.Transform(t)
}

// Center translates the path so its envelope midpoint coincides with the
// midpoint of the declared design-space box.
func (p *Path) Center() *Path {
	return p.CenterIn(0, 0, p.Width, p.Height)
}

// CenterIn translates the path so its envelope midpoint coincides with
// the midpoint of the given box. The box is not validated; a reversed box
// simply yields the midpoint its corners define.
func (p *Path) CenterIn(minX, minY, maxX, maxY float64) *Path {
	c := p.Bounds().Center()
	return p.Translate((minX+maxX)/2-c.X, (minY+maxY)/2-c.Y)
}

// Fit scales the path so its envelope matches the target dimensions,
// about the envelope's own center so the shape resizes without
// repositioning. With preserveAspect both axes use the smaller ratio,
// contain semantics. A zero-width or zero-height envelope is a no-op.
func (p *Path) Fit(width, height float64, preserveAspect bool) *Path {
	b := p.Bounds()
	bw, bh := b.Width(), b.Height()
	if bw == 0 || bh == 0 {
		return p
	}
	sx := width / bw
	sy := height / bh
	if preserveAspect {
		s := math.Min(sx, sy)
		sx, sy = s, s
	}
	c := b.Center()
	return p.ScaleAbout(sx, sy, c.X, c.Y)
}

// translation builds the affine matrix mapping x,y to x+dx,y+dy.
func translation(dx, dy float64) mt.Transform {
	t := mt.Identity()
	t[0][2] = dx
	t[1][2] = dy
	return t
}

// scaling builds the affine matrix scaling about the origin.
func scaling(sx, sy float64) mt.Transform {
	t := mt.Identity()
	t[0][0] = sx
	t[1][1] = sy
	return t
}

// rotation builds the affine matrix rotating by angle radians about the
// origin.
func rotation(angle float64) mt.Transform {
	sin, cos := math.Sincos(angle)
	t := mt.Identity()
	t[0][0], t[0][1] = cos, -sin
	t[1][0], t[1][1] = sin, cos
	return t
}

// about conjugates a transform with translations so it pivots on cx,cy.
func about(t mt.Transform, cx, cy float64) mt.Transform {
	t = mt.MultiplyTransforms(translation(cx, cy), t)
	return mt.MultiplyTransforms(t, translation(-cx, -cy))
}
