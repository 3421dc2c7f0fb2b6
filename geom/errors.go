package geom

import "errors"

// Sentinel errors for geometry construction. Classified as InvalidGeometry:
// callers skip the offending record and warn rather than treating these as
// fatal.
var (
	// ErrEmptySequence indicates an empty coordinate sequence. The
	// LineString/LinearRing constructors report zero coordinates as
	// ErrLineStringTooShort / ErrRingTooShort instead.
	ErrEmptySequence = errors.New("geom: empty coordinate sequence")

	// ErrLineStringTooShort indicates a LineString has fewer than 2 coordinates.
	ErrLineStringTooShort = errors.New("geom: linestring needs at least 2 coordinates")

	// ErrRingTooShort indicates a LinearRing has fewer than 4 coordinates.
	ErrRingTooShort = errors.New("geom: linear ring needs at least 4 coordinates")

	// ErrRingNotClosed indicates a LinearRing's first and last coordinates differ.
	ErrRingNotClosed = errors.New("geom: linear ring is not closed")

	// ErrPolygonNoShell indicates a Polygon was constructed without a shell ring.
	ErrPolygonNoShell = errors.New("geom: polygon has no shell ring")

	// ErrWrongKind indicates an accessor was called against a Geometry of an
	// incompatible Kind (e.g. calling Seq() on a Polygon).
	ErrWrongKind = errors.New("geom: wrong geometry kind for this accessor")
)
