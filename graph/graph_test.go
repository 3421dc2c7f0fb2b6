package graph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/katalvlaran/wktgraph/geom"
	"github.com/katalvlaran/wktgraph/graph"
)

func TestAddNode_Dedup(t *testing.T) {
	g := graph.New()

	a := g.AddNode(geom.XY(1, 2))
	b := g.AddNode(geom.XY(1, 2))
	c := g.AddNode(geom.XY(3, 4))

	assert.Equal(t, a, b, "re-adding an equal coordinate must return the same index")
	assert.NotEqual(t, a, c)
	assert.Equal(t, 2, g.NodeCount())
}

func TestAddEdge_Symmetric(t *testing.T) {
	g := graph.New()
	a := g.AddNode(geom.XY(0, 0))
	b := g.AddNode(geom.XY(1, 0))

	require.NoError(t, g.AddEdge(a, b))

	assert.True(t, g.HasEdge(a, b))
	assert.True(t, g.HasEdge(b, a))
	assert.Contains(t, g.Neighbors(a), b)
	assert.Contains(t, g.Neighbors(b), a)
}

func TestAddEdge_Idempotent(t *testing.T) {
	g := graph.New()
	a := g.AddNode(geom.XY(0, 0))
	b := g.AddNode(geom.XY(1, 0))

	require.NoError(t, g.AddEdge(a, b))
	require.NoError(t, g.AddEdge(a, b))
	require.NoError(t, g.AddEdge(b, a))

	assert.Equal(t, 1, g.EdgeCount())
}

func TestAddEdge_SelfLoopRejected(t *testing.T) {
	g := graph.New()
	a := g.AddNode(geom.XY(0, 0))

	err := g.AddEdge(a, a)
	assert.ErrorIs(t, err, graph.ErrSelfLoop)
}

func TestAddEdge_UnknownNodeRejected(t *testing.T) {
	g := graph.New()
	a := g.AddNode(geom.XY(0, 0))

	err := g.AddEdge(a, 99)
	assert.ErrorIs(t, err, graph.ErrNodeNotFound)
}

func TestEdgesPairs_Canonical(t *testing.T) {
	g := graph.New()
	a := g.AddNode(geom.XY(0, 0))
	b := g.AddNode(geom.XY(1, 0))
	c := g.AddNode(geom.XY(1, 1))

	require.NoError(t, g.AddEdge(b, a))
	require.NoError(t, g.AddEdge(c, a))
	require.NoError(t, g.AddEdge(b, c))

	pairs := g.EdgesPairs()
	require.Len(t, pairs, 3)
	for _, p := range pairs {
		assert.Less(t, p[0], p[1])
	}
}

func TestMerge_CoalescesAdjacencyAndDropsSelfLoop(t *testing.T) {
	g := graph.New()
	a := g.AddNode(geom.XY(0, 0))
	b := g.AddNode(geom.XY(1, 0))
	c := g.AddNode(geom.XY(2, 0))

	require.NoError(t, g.AddEdge(a, b))
	require.NoError(t, g.AddEdge(b, c))
	require.NoError(t, g.AddEdge(a, c))

	// Merge c into a: a-c becomes a self-loop candidate and must vanish,
	// while b-c becomes b-a (already present, stays a single edge).
	require.NoError(t, g.Merge(a, c))

	assert.False(t, g.HasEdge(a, a))
	assert.True(t, g.HasEdge(a, b))
	assert.Equal(t, 1, g.EdgeCount())
}

func TestStats_CountsIsolatedNodes(t *testing.T) {
	g := graph.New()
	a := g.AddNode(geom.XY(0, 0))
	b := g.AddNode(geom.XY(1, 0))
	g.AddNode(geom.XY(5, 5)) // isolated

	require.NoError(t, g.AddEdge(a, b))

	st := g.Stats()
	assert.Equal(t, 3, st.NodeCount)
	assert.Equal(t, 1, st.EdgeCount)
	assert.Equal(t, 1, st.IsolatedNodes)
}

// TestEdgesAsLineStrings_RoundTripsPoints checks that every rendered edge
// carries the exact endpoint coordinates of the nodes it connects, for
// arbitrarily generated node/edge sets.
func TestEdgesAsLineStrings_RoundTripsPoints(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		g := graph.New()
		n := rapid.IntRange(2, 12).Draw(t, "n")
		var idx []int
		for i := 0; i < n; i++ {
			x := rapid.Float64Range(-1000, 1000).Draw(t, "x")
			y := rapid.Float64Range(-1000, 1000).Draw(t, "y")
			idx = append(idx, g.AddNode(geom.XY(x, y)))
		}
		edges := rapid.IntRange(0, n*(n-1)/2).Draw(t, "edgeCount")
		for e := 0; e < edges; e++ {
			i := rapid.IntRange(0, n-1).Draw(t, "i")
			j := rapid.IntRange(0, n-1).Draw(t, "j")
			if i == j {
				continue
			}
			_ = g.AddEdge(idx[i], idx[j])
		}

		lines := g.EdgesAsLineStrings()
		pairs := g.EdgesPairs()
		require.Equal(t, len(pairs), len(lines))

		nodes := g.Nodes()
		for k, p := range pairs {
			seq, ok := lines[k].Seq()
			require.True(t, ok)
			require.Len(t, seq, 2)
			assert.True(t, seq[0].Equal(nodes[p[0]].Point))
			assert.True(t, seq[1].Equal(nodes[p[1]].Point))
		}
	})
}
