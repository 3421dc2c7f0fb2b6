// Package segment implements the Segment Extractor: it turns any geometry
// into a flat list of SegmentStrings for the noder.
//
// A Point becomes a degenerate two-coordinate SegmentString [p, p] — the
// duplicate is a sentinel the noder carries through as a point. The noder
// unifies it with nearby representatives under the snapping policy but does
// not test it for intersection, so a point lying on another segment does not
// split that segment.
// LineString and LinearRing become a single SegmentString each. A Polygon
// contributes one SegmentString for its shell plus one per hole. Multi/
// Collection inputs are expanded via package flatten first, and their
// results concatenated in traversal order.
package segment
