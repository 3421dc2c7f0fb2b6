// Package graph implements the Geometry Graph: an ordered set
// of Nodes (index, Point) plus an adjacency structure recording undirected,
// simple (no self-loop, no parallel-edge) Edges between them.
//
// Graph uses two separate sync.RWMutex locks (muNodes for the node table,
// muEdges for edges+adjacency) so reads stay cheap and a caller juggling
// several independent graphs can share one safely across goroutines, even
// though the pipeline that builds and consumes a Graph is itself
// single-threaded and synchronous. Node indices are assigned in first-seen
// order during construction (via AddNode) and are stable for the Graph's
// lifetime.
//
// Node identity uses exact (X, Y, z') equality (geom.Coordinate.Key()) — the
// graph never applies a tolerance itself; package noder or package snap must
// have already unified near-coincident coordinates before they reach
// AddNode. This separation is deliberate: the graph is exact.
package graph
