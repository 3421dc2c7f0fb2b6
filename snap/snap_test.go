package snap_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/katalvlaran/wktgraph/geom"
	"github.com/katalvlaran/wktgraph/graph"
	"github.com/katalvlaran/wktgraph/snap"
	"github.com/katalvlaran/wktgraph/wkt"
)

func TestGrid_RoundsToMultiples(t *testing.T) {
	s := snap.New(snap.WithTolerance(0.5))

	assert.True(t, s.Coordinate(geom.XY(0.74, 1.2)).Equal(geom.XY(0.5, 1)))
	assert.True(t, s.Coordinate(geom.XY(0.76, 1.3)).Equal(geom.XY(1, 1.5)))
}

func TestGrid_TiesRoundAwayFromZero(t *testing.T) {
	s := snap.New(snap.WithTolerance(1))

	assert.Equal(t, 1.0, s.Coordinate(geom.XY(0.5, 0)).X)
	assert.Equal(t, -1.0, s.Coordinate(geom.XY(-0.5, 0)).X)
	assert.Equal(t, 2.0, s.Coordinate(geom.XY(1.5, 0)).X)
	assert.Equal(t, -2.0, s.Coordinate(geom.XY(-1.5, 0)).X)
}

func TestGrid_ZPreserved(t *testing.T) {
	s := snap.New(snap.WithTolerance(1))

	got := s.Coordinate(geom.XYZ(0.4, 0.6, 7.3))
	assert.True(t, got.HasZ)
	assert.Equal(t, 7.3, got.Z)
	assert.Equal(t, 0.0, got.X)
	assert.Equal(t, 1.0, got.Y)
}

func TestZeroToleranceIsIdentity(t *testing.T) {
	s := snap.New()
	c := geom.XY(0.123, 4.567)
	assert.True(t, s.Coordinate(c).Equal(c))
}

// TestClosest_FirstSeenWins pins the documented order sensitivity: the
// earliest coordinate in a neighborhood becomes the representative, so
// feeding the same points in the opposite order yields a different one.
func TestClosest_FirstSeenWins(t *testing.T) {
	fwd := snap.New(snap.WithTolerance(0.1), snap.WithStrategy(snap.StrategyClosest))
	a, b := geom.XY(0, 0), geom.XY(0.05, 0)

	assert.True(t, fwd.Coordinate(a).Equal(a))
	assert.True(t, fwd.Coordinate(b).Equal(a), "later point adopts the first representative")

	rev := snap.New(snap.WithTolerance(0.1), snap.WithStrategy(snap.StrategyClosest))
	assert.True(t, rev.Coordinate(b).Equal(b))
	assert.True(t, rev.Coordinate(a).Equal(b), "opposite order picks the opposite representative")
}

func TestClosest_SpansGeometriesThroughOneSnapper(t *testing.T) {
	s := snap.New(snap.WithTolerance(0.01), snap.WithStrategy(snap.StrategyClosest))

	first, err := wkt.Unmarshal("LINESTRING(0 1, 0 2)")
	require.NoError(t, err)
	second, err := wkt.Unmarshal("LINESTRING(0 2.001, 0 3)")
	require.NoError(t, err)

	_ = s.Geometry(first)
	got := s.Geometry(second)

	seq, _ := got.Seq()
	assert.True(t, seq[0].Equal(geom.XY(0, 2)), "gap endpoint adopts the first stream's vertex")
}

func TestGeometry_PolygonStructurePreserved(t *testing.T) {
	g, err := wkt.Unmarshal("POLYGON((0.1 0.1, 0.1 0.9, 0.9 0.9, 0.9 0.1, 0.1 0.1), (0.4 0.4, 0.4 0.6, 0.6 0.6, 0.6 0.4, 0.4 0.4))")
	require.NoError(t, err)

	s := snap.New(snap.WithTolerance(0.5))
	out := s.Geometry(g)

	require.Equal(t, geom.KindPolygon, out.Kind())
	shell, _ := out.Shell()
	holes, _ := out.Holes()
	assert.Len(t, shell, 5)
	require.Len(t, holes, 1)
	assert.Len(t, holes[0], 5)
}

func TestGraph_MergesSnappedNodes(t *testing.T) {
	g := graph.New()
	a := g.AddNode(geom.XY(0, 0))
	b := g.AddNode(geom.XY(0.001, 0))
	c := g.AddNode(geom.XY(5, 5))
	require.NoError(t, g.AddEdge(a, c))
	require.NoError(t, g.AddEdge(b, c))

	s := snap.New(snap.WithTolerance(0.01), snap.WithStrategy(snap.StrategyClosest))
	out := s.Graph(g)

	assert.Equal(t, 2, out.NodeCount(), "a and b merge")
	assert.Equal(t, 1, out.EdgeCount(), "parallel edges collapse")
	assert.Equal(t, 3, g.NodeCount(), "input graph untouched")
}

func TestGraph_DropsSelfLoops(t *testing.T) {
	g := graph.New()
	a := g.AddNode(geom.XY(0, 0))
	b := g.AddNode(geom.XY(0.001, 0))
	require.NoError(t, g.AddEdge(a, b))

	s := snap.New(snap.WithTolerance(0.01), snap.WithStrategy(snap.StrategyClosest))
	out := s.Graph(g)

	assert.Equal(t, 1, out.NodeCount())
	assert.Equal(t, 0, out.EdgeCount())
}

// TestSnap_GridIdempotent checks Snap(Snap(x)) == Snap(x) for the grid
// strategy over random coordinates.
func TestSnap_GridIdempotent(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		eps := rapid.SampledFrom([]float64{0.1, 0.5, 1, 2}).Draw(t, "eps")
		c := geom.XY(
			rapid.Float64Range(-100, 100).Draw(t, "x"),
			rapid.Float64Range(-100, 100).Draw(t, "y"),
		)
		s := snap.New(snap.WithTolerance(eps))
		once := s.Coordinate(c)
		twice := s.Coordinate(once)
		require.True(t, once.Equal(twice))
	})
}

// TestSnap_ClosestIdempotent: re-snapping a closest-point output through a
// fresh Snapper with the same tolerance reproduces it, since every output
// coordinate is a representative at pairwise distance > eps... except when
// chained neighborhoods overlap, which the generator avoids by spacing.
func TestSnap_ClosestIdempotent(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		n := rapid.IntRange(1, 20).Draw(t, "n")
		seq := make(geom.Sequence, n)
		for i := range seq {
			seq[i] = geom.XY(
				float64(rapid.IntRange(-5, 5).Draw(t, "x")),
				float64(rapid.IntRange(-5, 5).Draw(t, "y")),
			)
		}
		const eps = 0.25
		once := snap.New(snap.WithTolerance(eps), snap.WithStrategy(snap.StrategyClosest)).Sequence(seq)
		twice := snap.New(snap.WithTolerance(eps), snap.WithStrategy(snap.StrategyClosest)).Sequence(once)
		require.True(t, once.Equal(twice))
	})
}

func TestProfile_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sketch.yaml")

	in := snap.Profile{Name: "sketch", Tolerance: 0.001, Strategy: "closest"}
	require.NoError(t, snap.SaveProfile(path, in))

	out, err := snap.LoadProfile(path)
	require.NoError(t, err)
	assert.Equal(t, in, out)

	opts, err := out.Options()
	require.NoError(t, err)
	assert.Len(t, opts, 2)
}

func TestProfile_UnknownStrategy(t *testing.T) {
	_, err := snap.Profile{Name: "x", Tolerance: 1, Strategy: "magnetic"}.Options()
	assert.Error(t, err)
}
