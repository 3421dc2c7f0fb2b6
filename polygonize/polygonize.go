package polygonize

import (
	"fmt"

	"github.com/katalvlaran/wktgraph/dfs"
	"github.com/katalvlaran/wktgraph/geom"
	"github.com/katalvlaran/wktgraph/graph"
)

// Result is the polygonizer's output: the recovered polygon faces and the
// edges that bound no face, each as a two-point LineString.
type Result struct {
	Polygons []geom.Geometry
	Dangles  []geom.Geometry
}

// Polygonize inverts g's edge set into polygons and dangles. Isolated
// nodes carry no edges and do not appear in the output. An empty graph
// yields an empty Result.
//
// When a traced ring revisits a node the input was not fully noded; the
// face is emitted (or dropped under WithoutDefective), a warning goes to
// the configured Logger, and the returned error wraps ErrDefect while the
// Result stays populated.
func Polygonize(g *graph.Graph, opts ...Option) (Result, error) {
	cfg := resolveConfig(opts)

	bridges, err := dfs.Bridges(g)
	if err != nil {
		return Result{}, fmt.Errorf("polygonize: %w", err)
	}
	bridgeSet := make(map[[2]int]struct{}, len(bridges))
	for _, b := range bridges {
		bridgeSet[b] = struct{}{}
	}

	nodes := g.Nodes()
	var res Result
	for _, b := range bridges {
		seq := geom.Sequence{nodes[b[0]].Point, nodes[b[1]].Point}
		ls, lerr := geom.NewLineString(seq)
		if lerr != nil {
			return Result{}, fmt.Errorf("polygonize: dangle %d-%d: %w", b[0], b[1], lerr)
		}
		res.Dangles = append(res.Dangles, ls)
	}

	var cyclic [][2]int
	for _, p := range g.EdgesPairs() {
		if _, isBridge := bridgeSet[p]; !isBridge {
			cyclic = append(cyclic, p)
		}
	}
	if len(cyclic) == 0 {
		return res, nil
	}

	rings := buildMesh(g, cyclic).traceFaces()

	defective := false
	if want, err := expectedFaceCount(g, cyclic); err != nil {
		return res, fmt.Errorf("polygonize: %w", err)
	} else if len(rings) != want {
		defective = true
		cfg.log.Warnf("traced %d face rings where Euler's formula expects %d; input not fully noded", len(rings), want)
	}

	faces := make([]face, 0, len(rings))
	for _, ring := range rings {
		f := newFace(ring, nodes)
		if !f.simple {
			defective = true
			cfg.log.Warnf("face ring %v revisits a node; input not fully noded", ring)
			if cfg.dropDefective {
				continue
			}
		}
		faces = append(faces, f)
	}

	res.Polygons = assemble(faces)
	if defective {
		return res, ErrDefect
	}
	return res, nil
}

// expectedFaceCount corroborates face tracing against Euler's formula: a
// planar subdivision with V vertices, E edges, and C connected components
// has E - V + C + 1 faces including the unbounded one, and tracing emits
// the unbounded face once per component, so the ring count must come to
// E - V + 2C. The component count comes from a forest DFS over the cyclic
// subgraph.
func expectedFaceCount(g *graph.Graph, cyclic [][2]int) (int, error) {
	sub := graph.New()
	nodes := g.Nodes()
	remap := make(map[int]int)
	for _, e := range cyclic {
		for _, idx := range e {
			if _, ok := remap[idx]; !ok {
				remap[idx] = sub.AddNode(nodes[idx].Point)
			}
		}
	}
	for _, e := range cyclic {
		if err := sub.AddEdge(remap[e[0]], remap[e[1]]); err != nil {
			return 0, err
		}
	}

	walk, err := dfs.DFS(sub, 0, dfs.WithFullTraversal())
	if err != nil {
		return 0, err
	}
	components := 0
	for idx := range walk.Visited {
		if _, hasParent := walk.Parent[idx]; !hasParent {
			components++
		}
	}
	return len(cyclic) - sub.NodeCount() + 2*components, nil
}
