package noder

import "github.com/katalvlaran/wktgraph/geom"

// representativeMap implements first-seen-wins closest-point snapping: the
// first coordinate registered within a neighborhood of radius eps becomes
// the representative every later query in that neighborhood collapses to.
//
// Candidates are indexed into a regular grid of eps-sized cells so a query
// only has to scan the 3x3 block of cells around its own cell rather than
// every prior representative.
type representativeMap struct {
	eps     float64
	reps    []geom.Coordinate
	buckets map[cellKey][]int
}

type cellKey struct {
	cx, cy int64
}

func newRepresentativeMap(eps float64) *representativeMap {
	return &representativeMap{
		eps:     eps,
		buckets: make(map[cellKey][]int),
	}
}

func (m *representativeMap) cellOf(c geom.Coordinate) cellKey {
	return cellKey{
		cx: floorDiv(c.X, m.eps),
		cy: floorDiv(c.Y, m.eps),
	}
}

// unify returns c's representative: an existing one within eps if one was
// already registered (earliest registration wins when several qualify), or
// c itself, newly registered, otherwise.
func (m *representativeMap) unify(c geom.Coordinate) geom.Coordinate {
	home := m.cellOf(c)
	best := -1
	for dx := int64(-1); dx <= 1; dx++ {
		for dy := int64(-1); dy <= 1; dy++ {
			key := cellKey{cx: home.cx + dx, cy: home.cy + dy}
			for _, idx := range m.buckets[key] {
				if m.reps[idx].Distance2D(c) <= m.eps {
					if best == -1 || idx < best {
						best = idx
					}
				}
			}
		}
	}
	if best != -1 {
		return m.reps[best]
	}

	idx := len(m.reps)
	m.reps = append(m.reps, c)
	m.buckets[home] = append(m.buckets[home], idx)
	return c
}

// floorDiv returns floor(x / step) as an integer cell coordinate.
func floorDiv(x, step float64) int64 {
	q := x / step
	f := int64(q)
	if q < 0 && float64(f) != q {
		f--
	}
	return f
}
