package graph

import "github.com/katalvlaran/wktgraph/geom"

// AddNode registers c as a node, returning its index. If a node with an
// equal Key already exists, its existing index is returned and no new node
// is created (first-seen-wins, matching the noder's snapping semantics).
// Complexity: O(1) amortized.
func (g *Graph) AddNode(c geom.Coordinate) int {
	g.muNodes.Lock()
	defer g.muNodes.Unlock()

	key := c.Key()
	if idx, ok := g.byKey[key]; ok {
		return idx
	}
	idx := len(g.nodes)
	g.nodes = append(g.nodes, Node{Index: idx, Point: c})
	g.byKey[key] = idx
	return idx
}

// NodeCount returns the number of distinct nodes registered so far.
func (g *Graph) NodeCount() int {
	g.muNodes.RLock()
	defer g.muNodes.RUnlock()
	return len(g.nodes)
}

// Node returns the Node at idx. ok is false if idx is out of range.
func (g *Graph) Node(idx int) (Node, bool) {
	g.muNodes.RLock()
	defer g.muNodes.RUnlock()
	if idx < 0 || idx >= len(g.nodes) {
		return Node{}, false
	}
	return g.nodes[idx], true
}

// Nodes returns an ordered, independent copy of the node table.
func (g *Graph) Nodes() []Node {
	g.muNodes.RLock()
	defer g.muNodes.RUnlock()
	out := make([]Node, len(g.nodes))
	copy(out, g.nodes)
	return out
}

// IndexOf looks up the node index for c, if one was registered. This never
// applies a tolerance: c must be exactly equal (by Key) to a registered
// node's point.
func (g *Graph) IndexOf(c geom.Coordinate) (int, bool) {
	g.muNodes.RLock()
	defer g.muNodes.RUnlock()
	idx, ok := g.byKey[c.Key()]
	return idx, ok
}
