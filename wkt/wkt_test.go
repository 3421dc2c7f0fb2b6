package wkt_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wktgraph/geom"
	"github.com/katalvlaran/wktgraph/wkt"
)

func TestRoundTrip(t *testing.T) {
	cases := []string{
		"POINT(1 2)",
		"POINT Z (1 2 3)",
		"POINT(-1.5 0.25)",
		"LINESTRING(0 0, 1 0, 1 1)",
		"LINESTRING Z (0 0 0, 1 1 1)",
		"POLYGON((0 0, 0 10, 10 10, 10 0, 0 0))",
		"POLYGON((0 0, 0 10, 10 10, 10 0, 0 0), (4 4, 4 6, 6 6, 6 4, 4 4))",
		"MULTIPOINT((1 1), (2 2))",
		"MULTILINESTRING((0 0, 1 1), (2 2, 3 3))",
		"MULTIPOLYGON(((0 0, 0 1, 1 1, 1 0, 0 0)))",
		"GEOMETRYCOLLECTION(POINT(1 1), LINESTRING(0 0, 1 1))",
		"GEOMETRYCOLLECTION(GEOMETRYCOLLECTION(POINT(5 5)))",
	}
	for _, tc := range cases {
		g, err := wkt.Unmarshal(tc)
		require.NoError(t, err, tc)
		assert.Equal(t, tc, wkt.Marshal(g), tc)
	}
}

func TestUnmarshal_CaseAndSpaceInsensitive(t *testing.T) {
	g, err := wkt.Unmarshal("  point ( 1   2 )  ")
	require.NoError(t, err)
	assert.Equal(t, "POINT(1 2)", wkt.Marshal(g))
}

func TestUnmarshal_ScientificNotation(t *testing.T) {
	g, err := wkt.Unmarshal("POINT(1e3 -2.5e-2)")
	require.NoError(t, err)
	seq, _ := g.Seq()
	assert.Equal(t, 1000.0, seq[0].X)
	assert.Equal(t, -0.025, seq[0].Y)
}

func TestMarshal_TrimmedNumerics(t *testing.T) {
	g := geom.NewPoint(geom.XY(1.50, 2.0))
	assert.Equal(t, "POINT(1.5 2)", wkt.Marshal(g))
}

func TestUnmarshal_MultiPointBareCoordinates(t *testing.T) {
	g, err := wkt.Unmarshal("MULTIPOINT(1 1, 2 2)")
	require.NoError(t, err)
	children, _ := g.Children()
	assert.Len(t, children, 2)
}

func TestUnmarshal_Errors(t *testing.T) {
	cases := map[string]string{
		"trailing comma":     "LINESTRING(0 0, 1 1,)",
		"unknown tag":        "CIRCLE(0 0, 5)",
		"unbalanced paren":   "POINT(1 2",
		"garbage":            "hello world",
		"empty":              "",
		"missing ordinate":   "POINT(1)",
		"ring not closed":    "POLYGON((0 0, 0 1, 1 1, 1 0))",
		"short linestring":   "LINESTRING(1 1)",
		"trailing input":     "POINT(1 2) POINT(3 4)",
		"2D tag 3D ordinate": "POINT(1 2 3)",
	}
	for name, in := range cases {
		_, err := wkt.Unmarshal(in)
		assert.Error(t, err, name)
	}
}

func TestUnmarshal_ZFlagsCoordinates(t *testing.T) {
	g, err := wkt.Unmarshal("LINESTRING Z (0 0 5, 1 1 6)")
	require.NoError(t, err)
	seq, _ := g.Seq()
	for _, c := range seq {
		assert.True(t, c.HasZ)
	}
	assert.Equal(t, 5.0, seq[0].Z)
}

func TestParseErrorType(t *testing.T) {
	_, err := wkt.Unmarshal("NOPE(1 2)")
	var pe *wkt.ParseError
	assert.ErrorAs(t, err, &pe)
}
