// Package builder turns noded geometry into a graph.Graph.
//
// Build flattens its input, registers a node for every distinct coordinate
// (first-seen order assigns indices), and adds an undirected edge for every
// consecutive coordinate pair in each primitive's sequence. A Point, or its
// two-coordinate degenerate segment form, becomes an isolated node.
//
// Coordinate identity here is exact: the builder applies no tolerance.
// Inputs that need fuzzy unification must pass through noder.Node with the
// desired epsilon first. This separation is deliberate and load-bearing —
// the builder can assume every coincidence in its input is intentional.
package builder
