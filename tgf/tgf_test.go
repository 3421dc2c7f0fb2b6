package tgf_test

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wktgraph/geom"
	"github.com/katalvlaran/wktgraph/graph"
	"github.com/katalvlaran/wktgraph/tgf"
)

// logBuf collects Warnf output for assertions.
type logBuf struct {
	lines []string
}

func (l *logBuf) Warnf(format string, args ...any) {
	l.lines = append(l.lines, fmt.Sprintf(format, args...))
}

func triangle(t *testing.T) *graph.Graph {
	t.Helper()
	g := graph.New()
	g.AddNode(geom.XY(0, 0))
	g.AddNode(geom.XY(1, 0))
	g.AddNode(geom.XY(0.5, 1))
	require.NoError(t, g.AddEdge(0, 1))
	require.NoError(t, g.AddEdge(1, 2))
	require.NoError(t, g.AddEdge(2, 0))
	return g
}

func TestWrite_Layout(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, tgf.Write(&buf, triangle(t)))

	want := "0\tPOINT(0 0)\n" +
		"1\tPOINT(1 0)\n" +
		"2\tPOINT(0.5 1)\n" +
		"#\n" +
		"0\t1\n" +
		"0\t2\n" +
		"1\t2\n"
	assert.Equal(t, want, buf.String())
}

func TestWrite_3DNode(t *testing.T) {
	g := graph.New()
	g.AddNode(geom.XYZ(1, 2, 3))

	var buf bytes.Buffer
	require.NoError(t, tgf.Write(&buf, g))
	assert.Equal(t, "0\tPOINT Z (1 2 3)\n#\n", buf.String())
}

func TestRoundTrip(t *testing.T) {
	g := triangle(t)
	var buf bytes.Buffer
	require.NoError(t, tgf.Write(&buf, g))

	back, err := tgf.Read(&buf)
	require.NoError(t, err)

	assert.Equal(t, g.NodeCount(), back.NodeCount())
	assert.Equal(t, g.EdgesPairs(), back.EdgesPairs())
	for _, n := range g.Nodes() {
		bn, ok := back.Node(n.Index)
		require.True(t, ok)
		assert.True(t, n.Point.Equal(bn.Point))
	}
}

func TestRead_OutOfOrderNodeSkipped(t *testing.T) {
	in := "0\tPOINT(0 0)\n" +
		"2\tPOINT(2 2)\n" + // skips ahead; dropped
		"1\tPOINT(1 1)\n" +
		"#\n" +
		"0\t1\n"
	log := &logBuf{}
	g, err := tgf.Read(strings.NewReader(in), tgf.WithLogger(log))
	require.NoError(t, err)

	assert.Equal(t, 2, g.NodeCount())
	assert.Equal(t, 1, g.EdgeCount())
	require.Len(t, log.lines, 1)
	assert.Contains(t, log.lines[0], "out of order")
}

func TestRead_DuplicateNodeIndexSkipped(t *testing.T) {
	in := "0\tPOINT(0 0)\n" +
		"0\tPOINT(5 5)\n" +
		"1\tPOINT(1 1)\n" +
		"#\n"
	g, err := tgf.Read(strings.NewReader(in))
	require.NoError(t, err)

	require.Equal(t, 2, g.NodeCount())
	n, _ := g.Node(1)
	assert.True(t, n.Point.Equal(geom.XY(1, 1)))
}

func TestRead_NonPointLabelSkipped(t *testing.T) {
	in := "0\tLINESTRING(0 0, 1 1)\n" +
		"0\tPOINT(0 0)\n" + // becomes the accepted index 0
		"#\n"
	log := &logBuf{}
	g, err := tgf.Read(strings.NewReader(in), tgf.WithLogger(log))
	require.NoError(t, err)

	assert.Equal(t, 1, g.NodeCount())
	require.NotEmpty(t, log.lines)
	assert.Contains(t, log.lines[0], "not a point")
}

func TestRead_EdgeHygiene(t *testing.T) {
	in := "0\tPOINT(0 0)\n" +
		"1\tPOINT(1 0)\n" +
		"#\n" +
		"0\t1\tsome ignored label\n" +
		"1\t0\n" + // duplicate of 0-1
		"0\t0\n" + // self-loop
		"0\t9\n" + // unknown index
		"not an edge\n"
	log := &logBuf{}
	g, err := tgf.Read(strings.NewReader(in), tgf.WithLogger(log))
	require.NoError(t, err)

	assert.Equal(t, 1, g.EdgeCount())
	assert.Len(t, log.lines, 3, "self-loop, unknown index, and garbage each warn")
}

func TestRead_BlankLinesIgnored(t *testing.T) {
	in := "\n0\tPOINT(0 0)\n\n1\tPOINT(1 0)\n\n#\n\n0\t1\n\n"
	log := &logBuf{}
	g, err := tgf.Read(strings.NewReader(in), tgf.WithLogger(log))
	require.NoError(t, err)

	assert.Equal(t, 2, g.NodeCount())
	assert.Equal(t, 1, g.EdgeCount())
	assert.Empty(t, log.lines)
}

func TestRead_3DRoundTrip(t *testing.T) {
	g := graph.New()
	g.AddNode(geom.XYZ(1, 2, 3))
	g.AddNode(geom.XY(4, 5))
	require.NoError(t, g.AddEdge(0, 1))

	var buf bytes.Buffer
	require.NoError(t, tgf.Write(&buf, g))
	back, err := tgf.Read(&buf)
	require.NoError(t, err)

	n0, _ := back.Node(0)
	require.True(t, n0.Point.HasZ)
	assert.Equal(t, 3.0, n0.Point.Z)
	n1, _ := back.Node(1)
	assert.False(t, n1.Point.HasZ)
}
