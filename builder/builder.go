package builder

import (
	"fmt"

	"github.com/katalvlaran/wktgraph/flatten"
	"github.com/katalvlaran/wktgraph/geom"
	"github.com/katalvlaran/wktgraph/graph"
	"github.com/katalvlaran/wktgraph/segment"
)

// Build constructs a Geometry Graph from g. The input is flattened; each
// primitive contributes its coordinates as nodes and its consecutive
// coordinate pairs as undirected edges. Node indices are assigned in
// first-seen order across the whole traversal and are stable for the
// graph's lifetime.
//
// Consecutive equal coordinates in a sequence (including the Point
// sentinel's duplicate) register their node but add no edge, so degenerate
// segments surface as isolated or already-connected nodes rather than
// self-loops.
func Build(g geom.Geometry, opts ...Option) (*graph.Graph, error) {
	cfg := resolveConfig(opts)
	gr := cfg.target
	if gr == nil {
		gr = graph.New()
	}

	for _, prim := range flatten.All(g) {
		if err := addPrimitive(gr, prim); err != nil {
			return nil, err
		}
	}
	return gr, nil
}

// BuildSegments constructs a Geometry Graph from noded segment strings,
// the direct output shape of noder.Node. Equivalent to Build over each
// segment string's coordinate sequence, in slice order.
func BuildSegments(segs []segment.String, opts ...Option) (*graph.Graph, error) {
	cfg := resolveConfig(opts)
	gr := cfg.target
	if gr == nil {
		gr = graph.New()
	}

	for _, s := range segs {
		if err := addSequence(gr, s.Coordinates()); err != nil {
			return nil, err
		}
	}
	return gr, nil
}

func addPrimitive(gr *graph.Graph, prim geom.Geometry) error {
	switch prim.Kind() {
	case geom.KindPoint, geom.KindLineString, geom.KindLinearRing:
		seq, _ := prim.Seq()
		return addSequence(gr, seq)
	case geom.KindPolygon:
		shell, _ := prim.Shell()
		holes, _ := prim.Holes()
		if err := addSequence(gr, shell); err != nil {
			return err
		}
		for _, h := range holes {
			if err := addSequence(gr, h); err != nil {
				return err
			}
		}
		return nil
	default:
		// flatten.All never yields a collection kind.
		return fmt.Errorf("builder: unexpected kind %s: %w", prim.Kind(), ErrUnsupportedKind)
	}
}

func addSequence(gr *graph.Graph, seq geom.Sequence) error {
	if len(seq) == 0 {
		return nil
	}
	if len(seq) == 1 {
		gr.AddNode(seq[0])
		return nil
	}
	prev := gr.AddNode(seq[0])
	for i := 1; i < len(seq); i++ {
		cur := gr.AddNode(seq[i])
		if cur == prev {
			continue
		}
		if err := gr.AddEdge(prev, cur); err != nil {
			return fmt.Errorf("builder: edge %d-%d: %w", prev, cur, err)
		}
		prev = cur
	}
	return nil
}
