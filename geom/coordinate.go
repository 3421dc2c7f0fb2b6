package geom

import (
	"math"
	"strconv"
)

// Coordinate is a triple (X, Y, Z) of double-precision reals. Z may be
// unset, in which case HasZ is false and Z compares as 0 for ordering and
// equality purposes, but the unset-ness is preserved for output: a
// Coordinate built without Z round-trips through WKT as 2D.
type Coordinate struct {
	X, Y, Z float64
	HasZ    bool
}

// XY constructs a 2D Coordinate.
func XY(x, y float64) Coordinate {
	return Coordinate{X: x, Y: y}
}

// XYZ constructs a 3D Coordinate.
func XYZ(x, y, z float64) Coordinate {
	return Coordinate{X: x, Y: y, Z: z, HasZ: true}
}

// ZOrZero substitutes 0 for an unset Z, per the total order this module
// requires for node identity: (x, y, z' = 0 if unset).
func (c Coordinate) ZOrZero() float64 {
	if c.HasZ {
		return c.Z
	}
	return 0
}

// Equal reports exact bit equality on (X, Y, z'), the tiebreak reserved for
// coordinate identity (used by the graph builder, which the noder/snap
// stages must have already unified within the desired epsilon).
func (c Coordinate) Equal(other Coordinate) bool {
	return c.X == other.X && c.Y == other.Y && c.ZOrZero() == other.ZOrZero()
}

// Less defines the total order on (X, Y, z') that the graph builder and the
// segment/coordinate dedup logic rely on for deterministic iteration.
func (c Coordinate) Less(other Coordinate) bool {
	if c.X != other.X {
		return c.X < other.X
	}
	if c.Y != other.Y {
		return c.Y < other.Y
	}
	return c.ZOrZero() < other.ZOrZero()
}

// Key returns a normalized, comparable representation of c suitable for use
// as a Go map key: (X, Y, z'). Two coordinates with the same Key are Equal.
func (c Coordinate) Key() CoordKey {
	return CoordKey{X: c.X, Y: c.Y, Z: c.ZOrZero()}
}

// CoordKey is the normalized (X, Y, z') triple used for exact coordinate
// identity lookups (graph node dedup, segment endpoint indexing).
type CoordKey struct {
	X, Y, Z float64
}

// String renders the key in a stable, comparable form for diagnostics and
// for use as a map/set key in tests.
func (k CoordKey) String() string {
	return strconv.FormatFloat(k.X, 'g', -1, 64) + "," +
		strconv.FormatFloat(k.Y, 'g', -1, 64) + "," +
		strconv.FormatFloat(k.Z, 'g', -1, 64)
}

// Distance2D returns the Euclidean distance between c and other in the (X, Y)
// plane. Noding, snapping, and polygonization all operate on the planar
// projection, so proximity tests use the 2D distance even for
// 3D-tagged coordinates.
func (c Coordinate) Distance2D(other Coordinate) float64 {
	dx := c.X - other.X
	dy := c.Y - other.Y
	return math.Hypot(dx, dy)
}

// WithZ returns a copy of c carrying the given Z value, marked HasZ.
func (c Coordinate) WithZ(z float64) Coordinate {
	c.Z = z
	c.HasZ = true
	return c
}
