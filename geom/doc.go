// Package geom defines the tagged-variant 2D/3D geometry values this module
// operates on: Coordinate, Sequence, and Geometry.
//
// Geometry is a single struct carrying a Kind tag (Point, LineString,
// LinearRing, Polygon, MultiPoint, MultiLineString, MultiPolygon,
// GeometryCollection) rather than an interface hierarchy — callers switch on
// Kind() and read the payload accessors (Seq, Shell, Holes, Children) that
// apply to that Kind. This mirrors the "polymorphic geometry dispatch via a
// capability interface/tagged variant, not virtual inheritance" guidance: one
// concrete type, a handful of accessor methods, and dispatch by tag.
//
// Geometries are immutable once constructed. Constructors validate ring
// closure and minimum coordinate counts by default; whether a Polygon's
// holes lie inside its shell is not checked. Pass DisableValidation() to
// skip those checks when the
// caller already knows the input is well-formed (e.g. code re-assembling
// rings that were already validated upstream, the way simplefeatures'
// DisableAllValidations lets internal re-noding skip redundant checks).
package geom
