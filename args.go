package svgpath

import (
	"fmt"
	"strconv"

	gl "github.com/rustyoz/genericlexer"
)

// The *String builder variants accept a whitespace or comma separated
// scalar list, for callers holding coordinates in textual form. They
// parse the fixed-arity list and delegate to the corresponding builder
// operation, failing without mutating the path when the arity or a
// number is bad.

// MoveToString parses "x y" and appends a MoveTo.
func (p *Path) MoveToString(args string) error {
	v, err := parseArgList("MoveTo", args, 2)
	if err != nil {
		return err
	}
	p.MoveTo(v[0], v[1])
	return nil
}

// LineToString parses "x y" and appends a LineTo.
func (p *Path) LineToString(args string) error {
	v, err := parseArgList("LineTo", args, 2)
	if err != nil {
		return err
	}
	p.LineTo(v[0], v[1])
	return nil
}

// HLineToString parses "x" and appends an HLineTo.
func (p *Path) HLineToString(args string) error {
	v, err := parseArgList("HLineTo", args, 1)
	if err != nil {
		return err
	}
	p.HLineTo(v[0])
	return nil
}

// VLineToString parses "y" and appends a VLineTo.
func (p *Path) VLineToString(args string) error {
	v, err := parseArgList("VLineTo", args, 1)
	if err != nil {
		return err
	}
	p.VLineTo(v[0])
	return nil
}

// QuadToString parses "x1 y1 x y" and appends a QuadTo.
func (p *Path) QuadToString(args string) error {
	v, err := parseArgList("QuadTo", args, 4)
	if err != nil {
		return err
	}
	p.QuadTo(v[0], v[1], v[2], v[3])
	return nil
}

// CubeToString parses "x1 y1 x2 y2 x y" and appends a CubeTo.
func (p *Path) CubeToString(args string) error {
	v, err := parseArgList("CubeTo", args, 6)
	if err != nil {
		return err
	}
	p.CubeTo(v[0], v[1], v[2], v[3], v[4], v[5])
	return nil
}

// SmoothQuadToString parses "x y" and appends a SmoothQuadTo.
func (p *Path) SmoothQuadToString(args string) error {
	v, err := parseArgList("SmoothQuadTo", args, 2)
	if err != nil {
		return err
	}
	p.SmoothQuadTo(v[0], v[1])
	return nil
}

// SmoothCubeToString parses "x2 y2 x y" and appends a SmoothCubeTo.
func (p *Path) SmoothCubeToString(args string) error {
	v, err := parseArgList("SmoothCubeTo", args, 4)
	if err != nil {
		return err
	}
	p.SmoothCubeTo(v[0], v[1], v[2], v[3])
	return nil
}

// ArcToString parses "rx ry rotation largeArc sweep x y" and appends the
// arc as cubic segments. The two flags must be exactly 0 or 1.
func (p *Path) ArcToString(args string) error {
	v, err := parseArgList("ArcTo", args, 7)
	if err != nil {
		return err
	}
	largeArc, err := argFlag("largeArc", v[3])
	if err != nil {
		return err
	}
	sweep, err := argFlag("sweep", v[4])
	if err != nil {
		return err
	}
	p.ArcTo(v[0], v[1], v[2], largeArc, sweep, v[5], v[6])
	return nil
}

// parseArgList lexes a scalar list and enforces its arity.
func parseArgList(name, args string, want int) ([]float64, error) {
	l, _ := gl.Lex(name, args)
	var vals []float64
	for {
		i := l.NextItem()
		switch i.Type {
		case gl.ItemEOS:
			if len(vals) != want {
				return nil, fmt.Errorf("%s: expected %d numbers in %q, found %d", name, want, args, len(vals))
			}
			return vals, nil
		case gl.ItemError:
			return nil, fmt.Errorf("%s: error lexing %q: %s", name, args, i.Value)
		case gl.ItemNumber:
			v, err := strconv.ParseFloat(i.Value, 64)
			if err != nil {
				return nil, fmt.Errorf("%s: invalid number %q in %q: %s", name, i.Value, args, err)
			}
			vals = append(vals, v)
		case gl.ItemLetter:
			return nil, fmt.Errorf("%s: unexpected letter %q in %q", name, i.Value, args)
		default:
			// separator items
		}
	}
}

func argFlag(name string, v float64) (bool, error) {
	switch v {
	case 0:
		return false, nil
	case 1:
		return true, nil
	}
	return false, fmt.Errorf("%s flag must be 0 or 1, got %v", name, v)
}
