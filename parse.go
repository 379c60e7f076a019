package svgpath

import (
	"fmt"

	"github.com/tdewolff/parse/v2/strconv"
)

// Parse interprets SVG path data into a command sequence. The grammar is
// the absolute-command subset, M L H V Q C T S A Z, with optional comma
// or whitespace separators, numbers packed as tightly as the number
// production allows, and a command letter implicitly repeated for each
// following coordinate group. Arc commands are lowered through
// ArcToCubics immediately, so the returned sequence holds only the nine
// stored command kinds.
//
// Parse is atomic: on error nothing is returned, never a partially built
// sequence.
func Parse(data string) ([]Command, error) {
	p := &parser{data: []byte(data)}
	for {
		p.skipSeparators()
		if p.pos >= len(p.data) {
			return p.cmds, nil
		}
		letter := p.data[p.pos]
		start := p.pos
		p.pos++
		if err := p.parseCommand(letter); err != nil {
			return nil, fmt.Errorf("error parsing %c command %q: %s", letter, p.data[start:], err)
		}
	}
}

// ParsePath parses path data into a Path with the given design-space
// dimensions. A zero height defaults to the width.
func ParsePath(data string, width, height float64) (*Path, error) {
	cmds, err := Parse(data)
	if err != nil {
		return nil, err
	}
	return New(width, height, cmds...), nil
}

type parser struct {
	data []byte
	pos  int
	cmds []Command

	// pen position and subpath start, tracked for arc lowering
	cur   Point
	start Point
}

func (p *parser) parseCommand(letter byte) error {
	switch letter {
	case 'M':
		return p.parseMoveTo()
	case 'L':
		return p.parseLineTo()
	case 'H':
		return p.parseHLineTo()
	case 'V':
		return p.parseVLineTo()
	case 'Q':
		return p.parseQuadTo()
	case 'C':
		return p.parseCubeTo()
	case 'T':
		return p.parseSmoothQuadTo()
	case 'S':
		return p.parseSmoothCubeTo()
	case 'A':
		return p.parseArcTo()
	case 'Z':
		p.append(Close{})
		return nil
	}
	return fmt.Errorf("unknown command letter")
}

func (p *parser) parseMoveTo() error {
	for first := true; first || p.numberAhead(); first = false {
		x, y, err := p.pair()
		if err != nil {
			return err
		}
		p.append(MoveTo{x, y})
	}
	return nil
}

func (p *parser) parseLineTo() error {
	for first := true; first || p.numberAhead(); first = false {
		x, y, err := p.pair()
		if err != nil {
			return err
		}
		p.append(LineTo{x, y})
	}
	return nil
}

func (p *parser) parseHLineTo() error {
	for first := true; first || p.numberAhead(); first = false {
		x, err := p.number()
		if err != nil {
			return err
		}
		p.append(HLineTo{x})
	}
	return nil
}

func (p *parser) parseVLineTo() error {
	for first := true; first || p.numberAhead(); first = false {
		y, err := p.number()
		if err != nil {
			return err
		}
		p.append(VLineTo{y})
	}
	return nil
}

func (p *parser) parseQuadTo() error {
	for first := true; first || p.numberAhead(); first = false {
		x1, y1, err := p.pair()
		if err != nil {
			return err
		}
		x, y, err := p.pair()
		if err != nil {
			return err
		}
		p.append(QuadTo{x1, y1, x, y})
	}
	return nil
}

func (p *parser) parseCubeTo() error {
	for first := true; first || p.numberAhead(); first = false {
		x1, y1, err := p.pair()
		if err != nil {
			return err
		}
		x2, y2, err := p.pair()
		if err != nil {
			return err
		}
		x, y, err := p.pair()
		if err != nil {
			return err
		}
		p.append(CubeTo{x1, y1, x2, y2, x, y})
	}
	return nil
}

func (p *parser) parseSmoothQuadTo() error {
	for first := true; first || p.numberAhead(); first = false {
		x, y, err := p.pair()
		if err != nil {
			return err
		}
		p.append(SmoothQuadTo{x, y})
	}
	return nil
}

func (p *parser) parseSmoothCubeTo() error {
	for first := true; first || p.numberAhead(); first = false {
		x2, y2, err := p.pair()
		if err != nil {
			return err
		}
		x, y, err := p.pair()
		if err != nil {
			return err
		}
		p.append(SmoothCubeTo{x2, y2, x, y})
	}
	return nil
}

func (p *parser) parseArcTo() error {
	for first := true; first || p.numberAhead(); first = false {
		rx, ry, err := p.pair()
		if err != nil {
			return err
		}
		rotation, err := p.number()
		if err != nil {
			return err
		}
		largeArc, err := p.flag()
		if err != nil {
			return err
		}
		sweep, err := p.flag()
		if err != nil {
			return err
		}
		x, y, err := p.pair()
		if err != nil {
			return err
		}
		for _, c := range ArcToCubics(p.cur.X, p.cur.Y, rx, ry, rotation, largeArc, sweep, x, y) {
			p.append(c)
		}
	}
	return nil
}

// append stores a command and advances the tracked pen position by the
// same replay rules Path.Pos uses.
func (p *parser) append(c Command) {
	p.cmds = append(p.cmds, c)
	switch c := c.(type) {
	case MoveTo:
		p.cur = Point{c.X, c.Y}
		p.start = p.cur
	case LineTo:
		p.cur = Point{c.X, c.Y}
	case HLineTo:
		p.cur.X = c.X
	case VLineTo:
		p.cur.Y = c.Y
	case QuadTo:
		p.cur = Point{c.X, c.Y}
	case CubeTo:
		p.cur = Point{c.X, c.Y}
	case SmoothQuadTo:
		p.cur = Point{c.X, c.Y}
	case SmoothCubeTo:
		p.cur = Point{c.X, c.Y}
	case Close:
		p.cur = p.start
	}
}

func (p *parser) skipSeparators() {
	for p.pos < len(p.data) {
		switch p.data[p.pos] {
		case ' ', ',', '\t', '\n', '\r':
			p.pos++
		default:
			return
		}
	}
}

// numberAhead reports whether the next token continues the current
// command's coordinate groups rather than starting a new command.
func (p *parser) numberAhead() bool {
	p.skipSeparators()
	if p.pos >= len(p.data) {
		return false
	}
	c := p.data[p.pos]
	return '0' <= c && c <= '9' || c == '-' || c == '+' || c == '.'
}

// number consumes the longest valid number prefix. Any character that
// cannot extend the current number, a second decimal point or an
// explicit sign included, starts the next token.
func (p *parser) number() (float64, error) {
	p.skipSeparators()
	if p.pos < len(p.data) && p.data[p.pos] == '+' {
		p.pos++
	}
	f, n := strconv.ParseFloat(p.data[p.pos:])
	if n == 0 {
		return 0, fmt.Errorf("expected number at %q", p.data[p.pos:])
	}
	p.pos += n
	return f, nil
}

func (p *parser) pair() (float64, float64, error) {
	x, err := p.number()
	if err != nil {
		return 0, 0, err
	}
	y, err := p.number()
	if err != nil {
		return 0, 0, err
	}
	return x, y, nil
}

// flag consumes exactly one digit, 0 or 1. Arc flags are single digits
// regardless of what follows, so "0123.54" reads as the flags 0 and 1
// followed by the number 23.54.
func (p *parser) flag() (bool, error) {
	p.skipSeparators()
	if p.pos >= len(p.data) {
		return false, fmt.Errorf("expected arc flag at end of data")
	}
	switch p.data[p.pos] {
	case '0':
		p.pos++
		return false, nil
	case '1':
		p.pos++
		return true, nil
	}
	return false, fmt.Errorf("invalid arc flag %q", p.data[p.pos:p.pos+1])
}
