package svgpath

import "math"

// Group aggregates independent Paths under shared design-space
// dimensions. It never owns command data: reads combine the members'
// envelopes and writes forward one shared transform to every member, so
// the members' relative positions are preserved by construction.
type Group struct {
	Paths  []*Path
	Width  float64
	Height float64
}

// NewGroup creates a Group with the given design-space dimensions and
// members. A zero height defaults to the width.
func NewGroup(width, height float64, paths ...*Path) *Group {
	if height == 0 {
		height = width
	}
	g := &Group{Width: width, Height: height}
	if len(paths) > 0 {
		g.Paths = append(g.Paths, paths...)
	}
	return g
}

// Add appends members to the group.
func (g *Group) Add(paths ...*Path) *Group {
	g.Paths = append(g.Paths, paths...)
	return g
}

// Bounds returns the combined envelope of every member, skipping members
// that hold no coordinates. A group with no coordinates at all yields
// the degenerate zero box.
func (g *Group) Bounds() Bounds {
	var combined Bounds
	seen := false
	for _, p := range g.Paths {
		b, ok := BoundsOf(p.Commands)
		if !ok {
			continue
		}
		if !seen {
			combined = b
			seen = true
			continue
		}
		combined.MinX = math.Min(combined.MinX, b.MinX)
		combined.MinY = math.Min(combined.MinY, b.MinY)
		combined.MaxX = math.Max(combined.MaxX, b.MaxX)
		combined.MaxY = math.Max(combined.MaxY, b.MaxY)
	}
	return combined
}

// Translate moves every member by dx,dy.
func (g *Group) Translate(dx, dy float64) *Group {
	for _, p := range g.Paths {
		p.Translate(dx, dy)
	}
	return g
}

// Scale scales every member uniformly about the center of the group's
// combined envelope. Using the shared pivot keeps members from drifting
// apart.
func (g *Group) Scale(s float64) *Group {
	return g.ScaleXY(s, s)
}

// ScaleXY scales every member about the center of the group's combined
// envelope.
func (g *Group) ScaleXY(sx, sy float64) *Group {
	c := g.Bounds().Center()
	return g.ScaleAbout(sx, sy, c.X, c.Y)
}

// ScaleAbout scales every member about the shared pivot cx,cy.
func (g *Group) ScaleAbout(sx, sy, cx, cy float64) *Group {
	for _, p := range g.Paths {
		p.ScaleAbout(sx, sy, cx, cy)
	}
	return g
}

// Rotate rotates every member by angle radians about the origin.
func (g *Group) Rotate(angle float64) *Group {
	return g.RotateAbout(angle, 0, 0)
}

// RotateDegrees rotates every member by angle degrees about the origin.
func (g *Group) RotateDegrees(angle float64) *Group {
	return g.Rotate(angle * math.Pi / 180)
}

// RotateAbout rotates every member by angle radians about the shared
// pivot cx,cy.
func (g *Group) RotateAbout(angle, cx, cy float64) *Group {
	for _, p := range g.Paths {
		p.RotateAbout(angle, cx, cy)
	}
	return g
}

// FlipX mirrors every member horizontally within the group's declared
// width.
func (g *Group) FlipX() *Group {
	for _, p := range g.Paths {
		p.FlipXAt(g.Width)
	}
	return g
}

// FlipY mirrors every member vertically within the group's declared
// height.
func (g *Group) FlipY() *Group {
	for _, p := range g.Paths {
		p.FlipYAt(g.Height)
	}
	return g
}

// Center translates every member by the shared offset that places the
// combined envelope's midpoint at the center of the group's declared
// box.
func (g *Group) Center() *Group {
	return g.CenterIn(0, 0, g.Width, g.Height)
}

// CenterIn translates every member by the shared offset that places the
// combined envelope's midpoint at the midpoint of the given box.
func (g *Group) CenterIn(minX, minY, maxX, maxY float64) *Group {
	c := g.Bounds().Center()
	return g.Translate((minX+maxX)/2-c.X, (minY+maxY)/2-c.Y)
}

// Fit scales every member about the combined envelope's center so the
// combined envelope matches the target dimensions, with contain
// semantics when preserveAspect is set. A degenerate combined envelope
// is a no-op.
func (g *Group) Fit(width, height float64, preserveAspect bool) *Group {
	b := g.Bounds()
	bw, bh := b.Width(), b.Height()
	if bw == 0 || bh == 0 {
		return g
	}
	sx := width / bw
	sy := height / bh
	if preserveAspect {
		s := math.Min(sx, sy)
		sx, sy = s, s
	}
	c := b.Center()
	return g.ScaleAbout(sx, sy, c.X, c.Y)
}
