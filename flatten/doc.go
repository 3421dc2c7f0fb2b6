// Package flatten implements the Flattener: a depth-first, left-to-right
// walk over a geometry tree that yields its primitive members (Point,
// LineString, LinearRing, Polygon), descending through any nesting of
// MultiPoint/MultiLineString/MultiPolygon/GeometryCollection.
//
// Following a "recursive iterators over nested collections" design note,
// this is implemented as an explicit stack of (items, next-index) frames
// rather than recursive function calls: Next advances by popping exhausted
// frames and pushing a new frame the first time it descends into a
// collection. A standalone primitive yields exactly itself, once; Polygon is
// itself a primitive and is never split into its rings here (that is
// the Segment Extractor's job, in package segment).
package flatten
