package snap

import (
	"math"

	"github.com/katalvlaran/wktgraph/geom"
)

// Snapper applies one snapping strategy at one tolerance. The zero value
// is not usable; construct with New. For the closest-point strategy the
// representative table persists across calls, so one Snapper shared over a
// whole stream gives the stream a single coordinate identity.
type Snapper struct {
	cfg  config
	reps *repTable
}

// New returns a Snapper for the given options.
func New(opts ...Option) *Snapper {
	cfg := resolveConfig(opts)
	s := &Snapper{cfg: cfg}
	if cfg.strategy == StrategyClosest && cfg.tolerance > 0 {
		s.reps = newRepTable(cfg.tolerance)
	}
	return s
}

// Coordinate snaps a single coordinate.
func (s *Snapper) Coordinate(c geom.Coordinate) geom.Coordinate {
	if s.cfg.tolerance == 0 {
		return c
	}
	switch s.cfg.strategy {
	case StrategyClosest:
		return s.reps.unify(c)
	default:
		return s.grid(c)
	}
}

// Sequence snaps every coordinate of seq into a new sequence, in order.
func (s *Snapper) Sequence(seq geom.Sequence) geom.Sequence {
	out := make(geom.Sequence, len(seq))
	for i, c := range seq {
		out[i] = s.Coordinate(c)
	}
	return out
}

// Geometry rebuilds g with every coordinate sequence snapped, visiting
// vertices in declared order. The coordinate count is never changed, so
// the result keeps g's shape even when vertices coincide after the
// rewrite; re-noding and rebuilding the graph is the caller's next step.
func (s *Snapper) Geometry(g geom.Geometry) geom.Geometry {
	switch g.Kind() {
	case geom.KindPoint:
		seq, _ := g.Seq()
		return geom.NewPoint(s.Coordinate(seq[0]))
	case geom.KindLineString:
		seq, _ := g.Seq()
		ls, _ := geom.NewLineString(s.Sequence(seq), geom.DisableValidation())
		return ls
	case geom.KindLinearRing:
		seq, _ := g.Seq()
		lr, _ := geom.NewLinearRing(s.Sequence(seq), geom.DisableValidation())
		return lr
	case geom.KindPolygon:
		shell, _ := g.Shell()
		holes, _ := g.Holes()
		outHoles := make([]geom.Sequence, len(holes))
		for i, h := range holes {
			outHoles[i] = s.Sequence(h)
		}
		poly, _ := geom.NewPolygon(s.Sequence(shell), outHoles, geom.DisableValidation())
		return poly
	default:
		children, _ := g.Children()
		out := make([]geom.Geometry, len(children))
		for i, c := range children {
			out[i] = s.Geometry(c)
		}
		switch g.Kind() {
		case geom.KindMultiPoint:
			return geom.NewMultiPoint(out)
		case geom.KindMultiLineString:
			return geom.NewMultiLineString(out)
		case geom.KindMultiPolygon:
			return geom.NewMultiPolygon(out)
		default:
			return geom.NewGeometryCollection(out)
		}
	}
}

// grid rounds (x, y) to the nearest tolerance multiple, halves away from
// zero. Z rides along unchanged.
func (s *Snapper) grid(c geom.Coordinate) geom.Coordinate {
	eps := s.cfg.tolerance
	c.X = math.Round(c.X/eps) * eps
	c.Y = math.Round(c.Y/eps) * eps
	return c
}

// repTable implements first-seen-wins closest-point lookup over a grid of
// tolerance-sized cells, so a query scans only the 3x3 block around its
// own cell.
type repTable struct {
	eps     float64
	reps    []geom.Coordinate
	buckets map[cellKey][]int
}

type cellKey struct {
	cx, cy int64
}

func newRepTable(eps float64) *repTable {
	return &repTable{
		eps:     eps,
		buckets: make(map[cellKey][]int),
	}
}

func (t *repTable) cellOf(c geom.Coordinate) cellKey {
	return cellKey{cx: floorDiv(c.X, t.eps), cy: floorDiv(c.Y, t.eps)}
}

// unify returns c's representative: the earliest registered coordinate
// within eps if any qualifies, else c itself, newly registered.
func (t *repTable) unify(c geom.Coordinate) geom.Coordinate {
	home := t.cellOf(c)
	best := -1
	for dx := int64(-1); dx <= 1; dx++ {
		for dy := int64(-1); dy <= 1; dy++ {
			key := cellKey{cx: home.cx + dx, cy: home.cy + dy}
			for _, idx := range t.buckets[key] {
				if t.reps[idx].Distance2D(c) <= t.eps {
					if best == -1 || idx < best {
						best = idx
					}
				}
			}
		}
	}
	if best != -1 {
		return t.reps[best]
	}

	idx := len(t.reps)
	t.reps = append(t.reps, c)
	t.buckets[home] = append(t.buckets[home], idx)
	return c
}

func floorDiv(x, step float64) int64 {
	q := x / step
	f := int64(q)
	if q < 0 && float64(f) != q {
		f--
	}
	return f
}
