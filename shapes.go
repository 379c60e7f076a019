package svgpath

// kappa is the control-point distance approximating a quarter circle
// with one cubic Bezier curve.
const kappa = 0.5522847498307936

// CornerPosition names a rectangle corner.
type CornerPosition int

const (
	TopLeft CornerPosition = iota
	TopRight
	BottomRight
	BottomLeft
)

// CornerStyle selects how a rectangle corner is drawn.
type CornerStyle int

const (
	// Sharp draws a plain right angle.
	Sharp CornerStyle = iota
	// Rounded rounds the corner with a quadratic curve through the
	// corner point.
	Rounded
	// Chamfered cuts the corner with a straight line.
	Chamfered
)

// RectCorner styles one corner of a StyledRect. A zero Radius falls back
// to the rectangle's global radius.
type RectCorner struct {
	Style  CornerStyle
	Radius float64
}

// RectStyle describes per-corner styling for StyledRect. Radius is the
// fallback for corners that do not declare their own.
type RectStyle struct {
	Radius      float64
	TopLeft     RectCorner
	TopRight    RectCorner
	BottomRight RectCorner
	BottomLeft  RectCorner
}

// Rect appends an axis-aligned rectangle with sharp corners, drawn
// clockwise from x,y.
func (p *Path) Rect(x, y, w, h float64) *Path {
	return p.MoveTo(x, y).
		LineTo(x+w, y).
		LineTo(x+w, y+h).
		LineTo(x, y+h).
		ClosePath()
}

// RoundedCorner draws up to the corner point x,y and rounds it with a
// quadratic curve. The approach and exit sides follow a clockwise
// winding: a top-left corner is approached from below and exited to the
// right, a top-right corner approached from the left and exited
// downward, and so on.
func (p *Path) RoundedCorner(at CornerPosition, x, y, rx, ry float64) *Path {
	switch at {
	case TopLeft:
		return p.LineTo(x, y+ry).QuadTo(x, y, x+rx, y)
	case TopRight:
		return p.LineTo(x-rx, y).QuadTo(x, y, x, y+ry)
	case BottomRight:
		return p.LineTo(x, y-ry).QuadTo(x, y, x-rx, y)
	case BottomLeft:
		return p.LineTo(x+rx, y).QuadTo(x, y, x, y-ry)
	}
	return p
}

// ChamferedCorner draws up to the corner at x,y and cuts it with a
// straight line between the same approach and exit points RoundedCorner
// uses.
func (p *Path) ChamferedCorner(at CornerPosition, x, y, rx, ry float64) *Path {
	switch at {
	case TopLeft:
		return p.LineTo(x, y+ry).LineTo(x+rx, y)
	case TopRight:
		return p.LineTo(x-rx, y).LineTo(x, y+ry)
	case BottomRight:
		return p.LineTo(x, y-ry).LineTo(x-rx, y)
	case BottomLeft:
		return p.LineTo(x+rx, y).LineTo(x, y-ry)
	}
	return p
}

// StyledRect appends a rectangle with independently styled corners,
// drawn clockwise starting on the top edge. Corner radii fall back to
// the style's global radius and are clamped to half the corresponding
// side length.
func (p *Path) StyledRect(x, y, w, h float64, style RectStyle) *Path {
	tl := resolveCorner(style.TopLeft, style.Radius, w, h)
	tr := resolveCorner(style.TopRight, style.Radius, w, h)
	br := resolveCorner(style.BottomRight, style.Radius, w, h)
	bl := resolveCorner(style.BottomLeft, style.Radius, w, h)

	if tl.Style == Sharp {
		p.MoveTo(x, y)
	} else {
		p.MoveTo(x+tl.rx, y)
	}
	p.corner(tr, TopRight, x+w, y)
	p.corner(br, BottomRight, x+w, y+h)
	p.corner(bl, BottomLeft, x, y+h)
	if tl.Style != Sharp {
		p.corner(tl, TopLeft, x, y)
	}
	// ClosePath draws the remaining run of the left edge back to the
	// start point.
	return p.ClosePath()
}

type resolvedCorner struct {
	Style  CornerStyle
	rx, ry float64
}

func resolveCorner(c RectCorner, fallback, w, h float64) resolvedCorner {
	r := c.Radius
	if r == 0 {
		r = fallback
	}
	if r <= 0 {
		return resolvedCorner{Style: Sharp}
	}
	rx, ry := r, r
	if rx > w/2 {
		rx = w / 2
	}
	if ry > h/2 {
		ry = h / 2
	}
	return resolvedCorner{Style: c.Style, rx: rx, ry: ry}
}

func (p *Path) corner(c resolvedCorner, at CornerPosition, x, y float64) {
	switch c.Style {
	case Rounded:
		p.RoundedCorner(at, x, y, c.rx, c.ry)
	case Chamfered:
		p.ChamferedCorner(at, x, y, c.rx, c.ry)
	default:
		p.LineTo(x, y)
	}
}

// Ellipse appends an ellipse centered on cx,cy approximated with four
// cubic curves, drawn clockwise from the rightmost point.
func (p *Path) Ellipse(cx, cy, rx, ry float64) *Path {
	return p.MoveTo(cx+rx, cy).
		CubeTo(cx+rx, cy+ry*kappa, cx+rx*kappa, cy+ry, cx, cy+ry).
		CubeTo(cx-rx*kappa, cy+ry, cx-rx, cy+ry*kappa, cx-rx, cy).
		CubeTo(cx-rx, cy-ry*kappa, cx-rx*kappa, cy-ry, cx, cy-ry).
		CubeTo(cx+rx*kappa, cy-ry, cx+rx, cy-ry*kappa, cx+rx, cy).
		ClosePath()
}

// Circle appends a circle of radius r centered on cx,cy.
func (p *Path) Circle(cx, cy, r float64) *Path {
	return p.Ellipse(cx, cy, r, r)
}
