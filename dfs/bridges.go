package dfs

import "github.com/katalvlaran/wktgraph/graph"

// Bridges returns every bridge of g as a [2]int{i, j} pair with i < j, in
// ascending lexicographic order. A bridge is an edge whose removal
// disconnects its component — equivalently, an edge that lies on no cycle.
// In the polygonizer's terms these are exactly the dangles: edges that can
// never bound a closed face.
//
// The classification is derived from DetectCycles: the cycles it records
// are the fundamental cycles of the depth-first forest, and a tree edge
// lies on some cycle exactly when a back edge's fundamental cycle covers
// it. The bridges are therefore the complement of the cycle-covered edge
// set.
//
// Complexity: O(V + E + C·L) time (C cycles of average length L),
// O(V + E) extra memory.
func Bridges(g *graph.Graph) ([][2]int, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	_, cycles, err := DetectCycles(g)
	if err != nil {
		return nil, err
	}

	covered := make(map[[2]int]struct{})
	for _, c := range cycles {
		for i := 0; i+1 < len(c); i++ {
			a, b := c[i], c[i+1]
			if b < a {
				a, b = b, a
			}
			covered[[2]int{a, b}] = struct{}{}
		}
	}

	var out [][2]int
	for _, e := range g.EdgesPairs() {
		if _, ok := covered[e]; !ok {
			out = append(out, e)
		}
	}
	return out, nil
}
