package noder

import (
	"sort"
	"strconv"

	"github.com/katalvlaran/wktgraph/geom"
	"github.com/katalvlaran/wktgraph/segment"
)

type unitSegment struct {
	stringIdx, segIdx int
	a, b              geom.Coordinate
}

type cutPoint struct {
	t     float64
	point geom.Coordinate
}

// Node rewrites segs so that no two output segments cross except at a
// shared endpoint, per the policy selected by opts (WithTolerance(0), the
// default, selects the exact policy; WithTolerance(eps > 0) selects
// snapping). Empty input returns empty output. See package doc for the
// convergence loop and its known limitations.
func Node(segs []segment.String, opts ...Option) ([]segment.String, error) {
	cfg := resolveConfig(opts)
	if len(segs) == 0 {
		return nil, nil
	}

	working := make([]geom.Sequence, len(segs))
	for i, s := range segs {
		working[i] = s.Coordinates().Clone()
	}

	var reps *representativeMap
	if cfg.policy() == PolicySnap {
		reps = newRepresentativeMap(cfg.tolerance)
		for i, seq := range working {
			snapped := make(geom.Sequence, len(seq))
			for j, c := range seq {
				snapped[j] = reps.unify(c)
			}
			working[i] = snapped
		}
	}

	for iter := 0; iter < cfg.maxIterations; iter++ {
		units := collectUnitSegments(working)
		cuts := make(map[int]map[int][]cutPoint)
		changed := false

		for i := 0; i < len(units); i++ {
			for j := i + 1; j < len(units); j++ {
				ui, uj := units[i], units[j]
				if ui.stringIdx == uj.stringIdx && ui.segIdx == uj.segIdx {
					continue
				}
				pt, t, u, ok := segIntersect(ui.a, ui.b, uj.a, uj.b)
				if !ok {
					continue
				}
				if reps != nil {
					pt = reps.unify(pt)
				}
				addCut(cuts, ui.stringIdx, ui.segIdx, t, pt)
				addCut(cuts, uj.stringIdx, uj.segIdx, u, pt)
				changed = true
			}
		}

		if !changed {
			break
		}

		for stringIdx, segMap := range cuts {
			working[stringIdx] = rebuildSequence(working[stringIdx], segMap)
		}

		if iter == cfg.maxIterations-1 {
			if cfg.policy() == PolicyExact {
				return nil, ErrConvergence
			}
			break
		}
	}

	var out []segment.String
	for _, seq := range working {
		out = append(out, explodeToUnitSegments(seq)...)
	}
	return dedupeOrientationInsensitive(out), nil
}

// explodeToUnitSegments turns a (possibly multi-vertex) noded chain into its
// minimal two-point segments, one per consecutive coordinate pair — this is
// the noder's final output granularity, matching how the graph builder
// walks a primitive's coordinate sequence edge by edge. A degenerate
// two-point Point sentinel (both coordinates equal) is kept as a single
// segment rather than being further split.
func explodeToUnitSegments(seq geom.Sequence) []segment.String {
	seq = dedupeConsecutive(seq)
	if len(seq) == 2 && seq[0].Equal(seq[1]) {
		return []segment.String{segment.String(seq)}
	}
	out := make([]segment.String, 0, len(seq)-1)
	for k := 0; k < len(seq)-1; k++ {
		out = append(out, segment.String{seq[k], seq[k+1]})
	}
	return out
}

func collectUnitSegments(working []geom.Sequence) []unitSegment {
	var units []unitSegment
	for si, seq := range working {
		for k := 0; k < len(seq)-1; k++ {
			a, b := seq[k], seq[k+1]
			if a.Equal(b) {
				continue // degenerate Point sentinel; never subdivided
			}
			units = append(units, unitSegment{stringIdx: si, segIdx: k, a: a, b: b})
		}
	}
	return units
}

func addCut(cuts map[int]map[int][]cutPoint, stringIdx, segIdx int, t float64, pt geom.Coordinate) {
	if cuts[stringIdx] == nil {
		cuts[stringIdx] = make(map[int][]cutPoint)
	}
	cuts[stringIdx][segIdx] = append(cuts[stringIdx][segIdx], cutPoint{t: t, point: pt})
}

func rebuildSequence(orig geom.Sequence, segMap map[int][]cutPoint) geom.Sequence {
	out := make(geom.Sequence, 0, len(orig))
	for k := 0; k < len(orig)-1; k++ {
		out = append(out, orig[k])
		pts, ok := segMap[k]
		if !ok {
			continue
		}
		sort.Slice(pts, func(a, b int) bool { return pts[a].t < pts[b].t })
		for _, cp := range pts {
			if len(out) > 0 && out[len(out)-1].Equal(cp.point) {
				continue
			}
			out = append(out, cp.point)
		}
	}
	out = append(out, orig[len(orig)-1])
	return out
}

// dedupeConsecutive removes adjacent duplicate coordinates, preserving a
// two-point degenerate (Point-sentinel) sequence as-is.
func dedupeConsecutive(seq geom.Sequence) geom.Sequence {
	if len(seq) <= 2 {
		return seq
	}
	out := make(geom.Sequence, 0, len(seq))
	for _, c := range seq {
		if len(out) > 0 && out[len(out)-1].Equal(c) {
			continue
		}
		out = append(out, c)
	}
	if len(out) < 2 {
		return seq[:2]
	}
	return out
}

// dedupeOrientationInsensitive drops later segments whose coordinate array
// equals an earlier one's, up to reversal: segments with reversed
// coordinate order are considered equal.
func dedupeOrientationInsensitive(segs []segment.String) []segment.String {
	seen := make(map[string]struct{}, len(segs))
	out := make([]segment.String, 0, len(segs))
	for _, s := range segs {
		key := canonicalKey(s.Coordinates())
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, s)
	}
	return out
}

func canonicalKey(seq geom.Sequence) string {
	if len(seq) == 0 {
		return ""
	}
	dir := seq
	if seq[len(seq)-1].Less(seq[0]) {
		dir = seq.Reversed()
	}
	var b []byte
	for _, c := range dir {
		b = append(b, []byte(formatCoord(c))...)
		b = append(b, ';')
	}
	return string(b)
}

func formatCoord(c geom.Coordinate) string {
	return floatKey(c.X) + "," + floatKey(c.Y) + "," + floatKey(c.ZOrZero())
}

func floatKey(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}
