package polygonize

import (
	"math"
	"sort"

	"github.com/katalvlaran/wktgraph/graph"
)

// halfEdge is one direction of an undirected edge. twin and next index into
// the owning mesh's halfEdges slice.
type halfEdge struct {
	from, to int
	twin     int
	next     int
	visited  bool
}

// mesh is the half-edge structure built from a graph's non-bridge edges.
type mesh struct {
	halfEdges []halfEdge
}

// buildMesh creates two half-edges per edge in pairs, links twins, orders
// outgoing half-edges at every node by azimuth, and wires the
// twin-then-clockwise-next face pointers.
func buildMesh(g *graph.Graph, pairs [][2]int) *mesh {
	m := &mesh{halfEdges: make([]halfEdge, 0, 2*len(pairs))}
	outgoing := make(map[int][]int)

	for _, p := range pairs {
		fwd := len(m.halfEdges)
		m.halfEdges = append(m.halfEdges,
			halfEdge{from: p[0], to: p[1], twin: fwd + 1},
			halfEdge{from: p[1], to: p[0], twin: fwd},
		)
		outgoing[p[0]] = append(outgoing[p[0]], fwd)
		outgoing[p[1]] = append(outgoing[p[1]], fwd+1)
	}

	nodes := g.Nodes()
	azimuth := func(he int) float64 {
		h := m.halfEdges[he]
		a, b := nodes[h.from].Point, nodes[h.to].Point
		return math.Atan2(b.Y-a.Y, b.X-a.X)
	}

	for _, ring := range outgoing {
		sort.Slice(ring, func(i, j int) bool {
			return azimuth(ring[i]) < azimuth(ring[j])
		})
		// position of each outgoing half-edge within the CCW ring, so
		// clockwise-next is the cyclic predecessor.
		pos := make(map[int]int, len(ring))
		for i, he := range ring {
			pos[he] = i
		}
		for _, he := range ring {
			twin := m.halfEdges[he].twin
			p := pos[he]
			m.halfEdges[twin].next = ring[(p-1+len(ring))%len(ring)]
		}
	}
	return m
}

// traceFaces walks every half-edge exactly once, accumulating closed node
// rings. Each undirected edge participates in exactly two traversals, one
// per direction.
func (m *mesh) traceFaces() [][]int {
	var rings [][]int
	for start := range m.halfEdges {
		if m.halfEdges[start].visited {
			continue
		}
		var ring []int
		cur := start
		for {
			m.halfEdges[cur].visited = true
			ring = append(ring, m.halfEdges[cur].from)
			cur = m.halfEdges[cur].next
			if cur == start {
				break
			}
		}
		ring = append(ring, ring[0])
		rings = append(rings, ring)
	}
	return rings
}
