package svgpath

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type parseTest struct {
	Description string
	Data        string
	Want        []Command
}

var parseTests = []parseTest{
	{
		"separated absolute commands",
		"M 0 0 L 100 0 L 100 100 Z",
		[]Command{MoveTo{0, 0}, LineTo{100, 0}, LineTo{100, 100}, Close{}},
	},
	{
		"implicit command repetition",
		"M0 0L10 0 10 10 0 10Z",
		[]Command{MoveTo{0, 0}, LineTo{10, 0}, LineTo{10, 10}, LineTo{0, 10}, Close{}},
	},
	{
		"minified decimal runs",
		"M1.5.5.5 1",
		[]Command{MoveTo{1.5, 0.5}, MoveTo{0.5, 1}},
	},
	{
		"sign starts a new number",
		"M5-3L-1-2",
		[]Command{MoveTo{5, -3}, LineTo{-1, -2}},
	},
	{
		"exponents",
		"M1e2 2E-1",
		[]Command{MoveTo{100, 0.2}},
	},
	{
		"single-axis lines",
		"M1 2H10V20",
		[]Command{MoveTo{1, 2}, HLineTo{10}, VLineTo{20}},
	},
	{
		"horizontal repetition",
		"M0 0H5 7 9",
		[]Command{MoveTo{0, 0}, HLineTo{5}, HLineTo{7}, HLineTo{9}},
	},
	{
		"quadratic and smooth quadratic",
		"M0 0Q1 2 3 4T5 6",
		[]Command{MoveTo{0, 0}, QuadTo{1, 2, 3, 4}, SmoothQuadTo{5, 6}},
	},
	{
		"cubic and smooth cubic",
		"M0 0C1 2 3 4 5 6S7 8 9 10",
		[]Command{MoveTo{0, 0}, CubeTo{1, 2, 3, 4, 5, 6}, SmoothCubeTo{7, 8, 9, 10}},
	},
	{
		"commas as separators",
		"M1,2 L3,4",
		[]Command{MoveTo{1, 2}, LineTo{3, 4}},
	},
	{
		"zero-radius arc lowers to a straight cubic",
		"M0 0A0 5 0 0 0 10 10",
		[]Command{MoveTo{0, 0}, CubeTo{0, 0, 10, 10, 10, 10}},
	},
	{
		"coincident arc endpoints vanish",
		"M3 4A5 5 0 1 1 3 4Z",
		[]Command{MoveTo{3, 4}, Close{}},
	},
}

func TestParse(t *testing.T) {
	for _, test := range parseTests {
		cmds, err := Parse(test.Data)
		require.NoError(t, err, test.Description)
		require.Equal(t, test.Want, cmds, test.Description)
	}
}

var parseErrorTests = []struct {
	Description string
	Data        string
}{
	{"missing coordinate", "M 5"},
	{"unknown command letter", "X 1 2"},
	{"relative commands rejected", "m 1 2"},
	{"arc flag out of range", "A 1 1 0 2 0 5 5"},
	{"non-numeric token", "M a b"},
	{"wrong quadratic arity", "M0 0Q 1 2 3"},
	{"truncated arc", "M0 0A2 2 0 0 1"},
}

func TestParseErrors(t *testing.T) {
	for _, test := range parseErrorTests {
		cmds, err := Parse(test.Data)
		require.Error(t, err, test.Description)
		require.Nil(t, cmds, test.Description)
	}
}

// The two arc flags are one digit each, so the flags and the following
// number may be packed into a single digit run.
func TestParsePackedArcFlags(t *testing.T) {
	cmds, err := Parse("M5.1 0.21A2 2.5 0 0123.54 74")
	require.NoError(t, err)
	require.Len(t, cmds, 3)

	require.Equal(t, MoveTo{5.1, 0.21}, cmds[0])
	_, ok := cmds[1].(CubeTo)
	require.True(t, ok)
	last, ok := cmds[2].(CubeTo)
	require.True(t, ok)
	require.InDelta(t, 23.54, last.X, 1e-9)
	require.InDelta(t, 74.0, last.Y, 1e-9)
}

func TestParseRoundTrip(t *testing.T) {
	cmds := []Command{
		MoveTo{0.5, -3},
		LineTo{10, 0.25},
		HLineTo{12.5},
		VLineTo{-7},
		QuadTo{1, 2, 3, 4},
		CubeTo{1.5, 2.5, 3.5, 4.5, 5.5, 6.5},
		SmoothQuadTo{8, 9},
		SmoothCubeTo{10, 11, 12, 13},
		Close{},
	}
	parsed, err := Parse(Serialize(cmds))
	require.NoError(t, err)
	require.Equal(t, cmds, parsed)
}

func TestParsePath(t *testing.T) {
	p, err := ParsePath("M0 0H24", 24, 0)
	require.NoError(t, err)
	require.Equal(t, 24.0, p.Width)
	require.Equal(t, 24.0, p.Height)
	require.Equal(t, []Command{MoveTo{0, 0}, HLineTo{24}}, p.Commands)

	_, err = ParsePath("M0", 24, 24)
	require.Error(t, err)
}
