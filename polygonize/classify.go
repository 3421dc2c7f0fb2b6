package polygonize

import (
	"math"
	"sort"

	"github.com/katalvlaran/wktgraph/geom"
	"github.com/katalvlaran/wktgraph/graph"
)

// face is one traced ring plus its derived classification inputs.
type face struct {
	seq    geom.Sequence // closed: first == last
	area   float64
	simple bool
}

func newFace(ring []int, nodes []graph.Node) face {
	seq := make(geom.Sequence, len(ring))
	seen := make(map[int]struct{}, len(ring))
	simple := true
	for i, idx := range ring {
		seq[i] = nodes[idx].Point
		if i < len(ring)-1 {
			if _, dup := seen[idx]; dup {
				simple = false
			}
			seen[idx] = struct{}{}
		}
	}
	return face{seq: seq, area: geom.SignedArea(seq), simple: simple}
}

// assemble classifies faces into polygons per the shell/hole rules in the
// package doc and returns them in trace order of their shells.
func assemble(faces []face) []geom.Geometry {
	var ccw, cw []face
	for _, f := range faces {
		if f.area > 0 {
			ccw = append(ccw, f)
		} else {
			cw = append(cw, f)
		}
	}

	// Shells: CCW rings not contained in another CCW ring.
	var shells []face
	for i, f := range ccw {
		contained := false
		for j, other := range ccw {
			if i != j && ringInRing(f.seq, other.seq) {
				contained = true
				break
			}
		}
		if !contained {
			shells = append(shells, f)
		}
	}

	// Holes: CW rings contained in a shell; the smallest containing shell
	// wins. CW rings inside no shell are the unbounded faces.
	holesOf := make([][]geom.Sequence, len(shells))
	for _, h := range cw {
		best := -1
		bestArea := math.Inf(1)
		for si, s := range shells {
			if ringInRing(h.seq, s.seq) && s.area < bestArea {
				best = si
				bestArea = s.area
			}
		}
		if best >= 0 {
			holesOf[best] = append(holesOf[best], h.seq)
		}
	}

	out := make([]geom.Geometry, 0, len(shells))
	for si, s := range shells {
		holes := holesOf[si]
		sort.Slice(holes, func(a, b int) bool {
			return holes[a][0].Less(holes[b][0])
		})
		poly, err := geom.NewPolygon(s.seq, holes, geom.DisableValidation())
		if err != nil {
			continue
		}
		out = append(out, poly)
	}
	return out
}

// ringInRing reports whether inner lies inside outer. The representative
// point is the first inner vertex not on outer's boundary, falling back to
// an edge midpoint when every vertex is shared.
func ringInRing(inner, outer geom.Sequence) bool {
	for _, c := range inner[:len(inner)-1] {
		if !onRingBoundary(c, outer) {
			return pointInRing(c, outer)
		}
	}
	for i := 0; i+1 < len(inner); i++ {
		mid := geom.XY((inner[i].X+inner[i+1].X)/2, (inner[i].Y+inner[i+1].Y)/2)
		if !onRingBoundary(mid, outer) {
			return pointInRing(mid, outer)
		}
	}
	return false
}

// pointInRing is the even-odd crossing test in the (x, y) plane.
func pointInRing(p geom.Coordinate, ring geom.Sequence) bool {
	inside := false
	for i := 0; i+1 < len(ring); i++ {
		a, b := ring[i], ring[i+1]
		if (a.Y > p.Y) != (b.Y > p.Y) {
			xCross := a.X + (p.Y-a.Y)/(b.Y-a.Y)*(b.X-a.X)
			if p.X < xCross {
				inside = !inside
			}
		}
	}
	return inside
}

// onRingBoundary reports whether p lies on one of ring's segments.
func onRingBoundary(p geom.Coordinate, ring geom.Sequence) bool {
	for i := 0; i+1 < len(ring); i++ {
		if onSegment(p, ring[i], ring[i+1]) {
			return true
		}
	}
	return false
}

func onSegment(p, a, b geom.Coordinate) bool {
	cross := (b.X-a.X)*(p.Y-a.Y) - (b.Y-a.Y)*(p.X-a.X)
	if math.Abs(cross) > 1e-12 {
		return false
	}
	dot := (p.X-a.X)*(b.X-a.X) + (p.Y-a.Y)*(b.Y-a.Y)
	if dot < 0 {
		return false
	}
	lenSq := (b.X-a.X)*(b.X-a.X) + (b.Y-a.Y)*(b.Y-a.Y)
	return dot <= lenSq
}
