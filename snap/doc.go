// Package snap rewrites coordinates onto a coarser identity: either a
// regular grid, or the closest previously seen coordinate within a
// tolerance.
//
// A Snapper operates on coordinate sequences, not geometry identity. The
// closest-point strategy is order-sensitive by construction: the first
// coordinate seen in a neighborhood becomes the representative every later
// one collapses to, across every call made through the same Snapper. Two
// streams differing only in iteration order can therefore snap
// differently; the tests pin this behavior so any change to it is
// deliberate.
//
// Snapping a Geometry Graph rebuilds it: nodes that snap together become
// one node with merged adjacency, and edges that become self-loops are
// dropped.
package snap
