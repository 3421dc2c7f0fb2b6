// Package noder finds pairwise segment intersections in a set of
// SegmentStrings and rewrites them so no two output segments cross except at
// a shared endpoint. Two policies are selectable through Option: an exact
// iterated noder (tolerance 0) that never perturbs a coordinate, and a
// snapping noder (tolerance > 0) that collapses endpoints and intersection
// points within the tolerance to a single representative, first-seen-wins.
//
// Following the "recursive iterators over nested collections" pattern used
// elsewhere in this module for avoiding recursion, the convergence loop here
// is bounded and iterative: each round recomputes pairwise intersections
// over the current segment set and inserts any newly discovered interior
// point, stopping when a round introduces nothing new or the iteration cap
// is hit. The exact policy treats hitting the cap as a fatal convergence
// failure; the snapping policy treats it as a best-effort stopping point,
// since representative collapsing is expected to make convergence far more
// likely in practice.
//
// Collinear-overlapping segments are a known gap: segIntersect reports no
// intersection for parallel inputs, so two segments that overlap along a
// shared line are left unsplit. Feeding such input through the noder leaves
// the affected region under-noded; downstream polygonization already
// documents this as a recoverable defect rather than the noder's job to fix.
package noder
