package dfs

import (
	"context"
	"errors"
)

// Node visitation states for cycle detection.
const (
	white = iota // not visited yet
	gray         // in the recursion stack
	black        // fully explored
)

var (
	// ErrGraphNil is returned when a nil *graph.Graph is passed to DFS,
	// DetectCycles, or Bridges.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrStartNodeNotFound indicates the start index does not address a
	// node of the graph.
	ErrStartNodeNotFound = errors.New("dfs: start node not found")
)

// Option configures optional behavior of DFS traversal.
// Use with DFS(g, start, opts...).
type Option func(*Options)

// Options holds configurable parameters for DFS traversal: hooks, limits,
// filtering, full-graph mode, and diagnostics. Complexity remains O(V+E)
// when filters and hooks are O(1).
type Options struct {
	// Ctx allows cancellation or timeouts; defaults to context.Background().
	// Cancelling the context aborts DFS early.
	Ctx context.Context

	// OnVisit, if non-nil, is invoked when a node is discovered (pre-order).
	// Returning an error aborts traversal with that error.
	OnVisit func(idx int) error

	// OnExit, if non-nil, is invoked after a node's descendants have been
	// fully explored (post-order), before appending to Result.Order.
	// Returning an error aborts traversal and leaves Order empty.
	OnExit func(idx int) error

	// MaxDepth, if non-negative, limits recursion to the given depth.
	// A depth of 0 visits only the start node. Default is -1 (no limit).
	MaxDepth int

	// FilterNeighbor, if non-nil, is called for each neighbor before the
	// walker recurses into it. Return false to skip that neighbor.
	FilterNeighbor func(idx int) bool

	// FullTraversal, if true, restarts DFS from every unvisited node,
	// covering disconnected components (forest traversal). Default false.
	FullTraversal bool

	// SkippedNeighbors counts neighbors skipped by FilterNeighbor.
	SkippedNeighbors int
}

// DefaultOptions returns Options with a background context, no hooks, no
// depth limit, no filtering, and single-source traversal.
func DefaultOptions() Options {
	return Options{
		Ctx:      context.Background(),
		MaxDepth: -1,
	}
}

// WithContext sets the Context for traversal. A nil context has no effect.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit installs fn as a pre-order hook, called on node discovery.
func WithOnVisit(fn func(idx int) error) Option {
	return func(o *Options) {
		o.OnVisit = fn
	}
}

// WithOnExit installs fn as a post-order hook, called after a node's
// descendants have been fully explored.
func WithOnExit(fn func(idx int) error) Option {
	return func(o *Options) {
		o.OnExit = fn
	}
}

// WithMaxDepth limits traversal depth. A limit of 0 visits only the start.
func WithMaxDepth(limit int) Option {
	return func(o *Options) {
		o.MaxDepth = limit
	}
}

// WithFilterNeighbor filters neighbors. If fn(idx) == false, that neighbor
// is skipped and counted in SkippedNeighbors.
func WithFilterNeighbor(fn func(idx int) bool) Option {
	return func(o *Options) {
		o.FilterNeighbor = fn
	}
}

// WithFullTraversal enables forest traversal: DFS restarts from each
// unvisited node, covering disconnected components.
func WithFullTraversal() Option {
	return func(o *Options) {
		o.FullTraversal = true
	}
}

// Result captures the outcome of a depth-first traversal.
type Result struct {
	// Order records nodes in the sequence they finished (post-order).
	Order []int

	// Depth maps each visited node to its distance (#edges) from its root.
	Depth map[int]int

	// Parent maps each node to the node from which it was first discovered.
	// Roots do not appear in this map.
	Parent map[int]int

	// Visited flags which nodes were reached during the traversal.
	Visited map[int]bool

	// SkippedNeighbors reports how many neighbors were skipped by
	// FilterNeighbor, aggregated across all trees.
	SkippedNeighbors int
}
