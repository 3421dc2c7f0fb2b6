package segment

import (
	"github.com/katalvlaran/wktgraph/flatten"
	"github.com/katalvlaran/wktgraph/geom"
)

// String is a coordinate sequence interpreted as consecutive directed
// segments: (cs[0],cs[1]), (cs[1],cs[2]), ... A two-coordinate String with
// both coordinates equal represents a degenerate, zero-length segment
// produced from a Point.
type String geom.Sequence

// NumSegments returns the number of directed segments this String encodes.
// A String of length 2 (including the Point sentinel form) has exactly 1.
func (s String) NumSegments() int {
	if len(s) < 2 {
		return 0
	}
	return len(s) - 1
}

// Coordinates returns the underlying coordinate sequence.
func (s String) Coordinates() geom.Sequence { return geom.Sequence(s) }

// Extract converts g into its constituent SegmentStrings.
// Output count equals (points) + (linestrings) + (rings of all polygons)
// across the flattened input.
func Extract(g geom.Geometry) []String {
	var out []String
	for _, prim := range flatten.All(g) {
		out = append(out, extractPrimitive(prim)...)
	}
	return out
}

func extractPrimitive(g geom.Geometry) []String {
	switch g.Kind() {
	case geom.KindPoint:
		seq, _ := g.Seq()
		p := seq[0]
		return []String{{p, p}}
	case geom.KindLineString, geom.KindLinearRing:
		seq, _ := g.Seq()
		return []String{String(seq)}
	case geom.KindPolygon:
		shell, _ := g.Shell()
		holes, _ := g.Holes()
		out := make([]String, 0, 1+len(holes))
		out = append(out, String(shell))
		for _, h := range holes {
			out = append(out, String(h))
		}
		return out
	default:
		// Multi*/Collection geometries never reach here: flatten.All already
		// descends into them before extractPrimitive is called.
		return nil
	}
}
