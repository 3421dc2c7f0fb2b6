package graph

import (
	"sort"

	"github.com/katalvlaran/wktgraph/geom"
)

// AddEdge registers an undirected edge between nodes i and j. It is a no-op
// if the edge already exists. Returns ErrNodeNotFound if either index is out
// of range, or ErrSelfLoop if i == j.
func (g *Graph) AddEdge(i, j int) error {
	if i == j {
		return ErrSelfLoop
	}
	if !g.HasNode(i) || !g.HasNode(j) {
		return ErrNodeNotFound
	}

	g.muEdges.Lock()
	defer g.muEdges.Unlock()

	if g.adjacency[i] == nil {
		g.adjacency[i] = make(map[int]struct{})
	}
	if g.adjacency[j] == nil {
		g.adjacency[j] = make(map[int]struct{})
	}
	g.adjacency[i][j] = struct{}{}
	g.adjacency[j][i] = struct{}{}
	return nil
}

// HasNode reports whether idx addresses a registered node.
func (g *Graph) HasNode(idx int) bool {
	g.muNodes.RLock()
	defer g.muNodes.RUnlock()
	return idx >= 0 && idx < len(g.nodes)
}

// HasEdge reports whether i and j are adjacent.
func (g *Graph) HasEdge(i, j int) bool {
	g.muEdges.RLock()
	defer g.muEdges.RUnlock()
	_, ok := g.adjacency[i][j]
	return ok
}

// Neighbors returns the sorted node indices adjacent to i.
func (g *Graph) Neighbors(i int) []int {
	g.muEdges.RLock()
	defer g.muEdges.RUnlock()
	out := make([]int, 0, len(g.adjacency[i]))
	for n := range g.adjacency[i] {
		out = append(out, n)
	}
	sort.Ints(out)
	return out
}

// EdgesPairs returns every undirected edge exactly once, as [2]int{i, j}
// with i < j, sorted lexicographically. Deterministic across calls.
func (g *Graph) EdgesPairs() [][2]int {
	g.muEdges.RLock()
	defer g.muEdges.RUnlock()

	var out [][2]int
	for i, neighbors := range g.adjacency {
		for j := range neighbors {
			if i < j {
				out = append(out, [2]int{i, j})
			}
		}
	}
	sort.Slice(out, func(a, b int) bool {
		if out[a][0] != out[b][0] {
			return out[a][0] < out[b][0]
		}
		return out[a][1] < out[b][1]
	})
	return out
}

// EdgeCount returns the number of distinct undirected edges.
func (g *Graph) EdgeCount() int {
	return len(g.EdgesPairs())
}

// EdgesAsLineStrings renders every edge as a two-point LineString geometry,
// in the same order as EdgesPairs.
func (g *Graph) EdgesAsLineStrings() []geom.Geometry {
	pairs := g.EdgesPairs()
	nodes := g.Nodes()

	out := make([]geom.Geometry, 0, len(pairs))
	for _, p := range pairs {
		seq := geom.Sequence{nodes[p[0]].Point, nodes[p[1]].Point}
		ls, err := geom.NewLineString(seq)
		if err != nil {
			// Two distinct registered nodes always yield a valid 2-point
			// LineString; this would indicate a broken invariant upstream.
			continue
		}
		out = append(out, ls)
	}
	return out
}

// Merge coalesces node j into node i: every edge incident to j is
// re-pointed to i, j is left with no adjacency, and any edge that would
// become a self-loop (i was already adjacent to j) is simply dropped. For
// callers unifying coincident nodes in place; a full coordinate rewrite
// (package snap) rebuilds the graph instead so indices stay compact.
//
// Merge does not remove j from the node table; the caller is responsible
// for treating j as dead (e.g. by not including it in further output).
func (g *Graph) Merge(i, j int) error {
	if i == j {
		return ErrSelfLoop
	}
	if !g.HasNode(i) || !g.HasNode(j) {
		return ErrNodeNotFound
	}

	g.muEdges.Lock()
	defer g.muEdges.Unlock()

	for n := range g.adjacency[j] {
		delete(g.adjacency[n], j)
		if n == i {
			continue
		}
		if g.adjacency[i] == nil {
			g.adjacency[i] = make(map[int]struct{})
		}
		g.adjacency[i][n] = struct{}{}
		g.adjacency[n][i] = struct{}{}
	}
	delete(g.adjacency, j)
	delete(g.adjacency[i], i) // guard against a stray self-loop surviving the splice
	return nil
}
