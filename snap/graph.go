package snap

import "github.com/katalvlaran/wktgraph/graph"

// Graph rebuilds g with every node's point snapped, visiting nodes in
// index order. Nodes whose points coincide after the rewrite merge into
// one node carrying the union of their adjacencies; edges that become
// self-loops are dropped. The input graph is left untouched.
func (s *Snapper) Graph(g *graph.Graph) *graph.Graph {
	out := graph.New()

	remap := make(map[int]int, g.NodeCount())
	for _, n := range g.Nodes() {
		remap[n.Index] = out.AddNode(s.Coordinate(n.Point))
	}

	for _, e := range g.EdgesPairs() {
		src, dst := remap[e[0]], remap[e[1]]
		if src == dst {
			continue
		}
		// Both endpoints exist by construction; AddEdge only dedups here.
		_ = out.AddEdge(src, dst)
	}
	return out
}
