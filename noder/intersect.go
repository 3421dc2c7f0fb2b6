package noder

import "github.com/katalvlaran/wktgraph/geom"

// numericEpsilon guards the strict-interior test against landing exactly on
// an existing endpoint due to floating point noise; it is unrelated to the
// caller-supplied snapping tolerance.
const numericEpsilon = 1e-9

// segIntersect computes the intersection of segment (a0,a1) with segment
// (b0,b1), reporting it only when it falls strictly in the interior of both
// segments (excluding their endpoints). Parallel or collinear segments
// report ok=false; see package doc for the rationale.
func segIntersect(a0, a1, b0, b1 geom.Coordinate) (pt geom.Coordinate, t, u float64, ok bool) {
	rx, ry := a1.X-a0.X, a1.Y-a0.Y
	sx, sy := b1.X-b0.X, b1.Y-b0.Y

	rxs := rx*sy - ry*sx
	if rxs == 0 {
		return geom.Coordinate{}, 0, 0, false
	}

	qpx, qpy := b0.X-a0.X, b0.Y-a0.Y
	t = (qpx*sy - qpy*sx) / rxs
	u = (qpx*ry - qpy*rx) / rxs

	if t <= numericEpsilon || t >= 1-numericEpsilon {
		return geom.Coordinate{}, 0, 0, false
	}
	if u <= numericEpsilon || u >= 1-numericEpsilon {
		return geom.Coordinate{}, 0, 0, false
	}

	pt = geom.XY(a0.X+t*rx, a0.Y+t*ry)
	return pt, t, u, true
}
