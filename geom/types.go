package geom

import "fmt"

// Kind tags a Geometry's variant.
type Kind int

const (
	KindPoint Kind = iota
	KindLineString
	KindLinearRing
	KindPolygon
	KindMultiPoint
	KindMultiLineString
	KindMultiPolygon
	KindGeometryCollection
)

// String renders the Kind using its WKT tag name, for diagnostics.
func (k Kind) String() string {
	switch k {
	case KindPoint:
		return "POINT"
	case KindLineString:
		return "LINESTRING"
	case KindLinearRing:
		return "LINEARRING"
	case KindPolygon:
		return "POLYGON"
	case KindMultiPoint:
		return "MULTIPOINT"
	case KindMultiLineString:
		return "MULTILINESTRING"
	case KindMultiPolygon:
		return "MULTIPOLYGON"
	case KindGeometryCollection:
		return "GEOMETRYCOLLECTION"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// IsCollection reports whether a Geometry of this Kind is flattened by
// descending into children (Multi* and GeometryCollection), as opposed to
// being a primitive the Flattener yields as-is.
func (k Kind) IsCollection() bool {
	switch k {
	case KindMultiPoint, KindMultiLineString, KindMultiPolygon, KindGeometryCollection:
		return true
	default:
		return false
	}
}

// Geometry is a tagged-variant 2D/3D geometry value. The zero Geometry
// carries the Point kind tag but no coordinates; always obtain a Geometry
// via a constructor.
type Geometry struct {
	kind     Kind
	seq      Sequence   // Point, LineString, LinearRing
	shell    Sequence   // Polygon
	holes    []Sequence // Polygon
	children []Geometry // MultiPoint, MultiLineString, MultiPolygon, GeometryCollection
}

// Kind returns the geometry's variant tag.
func (g Geometry) Kind() Kind { return g.kind }

// Seq returns the coordinate sequence for Point, LineString, or LinearRing
// geometries. ok is false for any other Kind.
func (g Geometry) Seq() (Sequence, bool) {
	switch g.kind {
	case KindPoint, KindLineString, KindLinearRing:
		return g.seq, true
	default:
		return nil, false
	}
}

// Shell returns the Polygon's exterior ring. ok is false for non-Polygon kinds.
func (g Geometry) Shell() (Sequence, bool) {
	if g.kind != KindPolygon {
		return nil, false
	}
	return g.shell, true
}

// Holes returns the Polygon's interior rings. ok is false for non-Polygon kinds.
func (g Geometry) Holes() ([]Sequence, bool) {
	if g.kind != KindPolygon {
		return nil, false
	}
	return g.holes, true
}

// Children returns the member geometries of a Multi*/GeometryCollection,
// in declared order. ok is false for non-collection kinds.
func (g Geometry) Children() ([]Geometry, bool) {
	if !g.kind.IsCollection() {
		return nil, false
	}
	return g.children, true
}

// IsEmpty reports whether the geometry carries no coordinates at all
// (an empty collection, or a zero-length sequence).
func (g Geometry) IsEmpty() bool {
	switch g.kind {
	case KindPoint, KindLineString, KindLinearRing:
		return len(g.seq) == 0
	case KindPolygon:
		return len(g.shell) == 0
	default:
		return len(g.children) == 0
	}
}
