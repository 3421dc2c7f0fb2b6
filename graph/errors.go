package graph

import "errors"

// Sentinel errors for Graph operations.
var (
	// ErrNodeNotFound indicates an operation referenced a node index outside [0, NodeCount).
	ErrNodeNotFound = errors.New("graph: node not found")

	// ErrSelfLoop indicates an AddEdge/Merge call would create src == dst,
	// which the Geometry Graph invariant forbids.
	ErrSelfLoop = errors.New("graph: self-loops are not allowed")
)
