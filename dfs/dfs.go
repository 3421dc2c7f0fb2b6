package dfs

import (
	"fmt"

	"github.com/katalvlaran/wktgraph/graph"
)

// walker encapsulates state during one DFS invocation.
type walker struct {
	graph *graph.Graph
	opts  Options
	res   *Result
}

// DFS performs depth-first search on g. With WithFullTraversal it covers
// all disconnected components; otherwise it starts only from start.
// Returns the Result, or an error if aborted by context or a hook.
func DFS(g *graph.Graph, start int, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	dopts := DefaultOptions()
	for _, fn := range opts {
		fn(&dopts)
	}

	if !dopts.FullTraversal && !g.HasNode(start) {
		return nil, ErrStartNodeNotFound
	}

	n := g.NodeCount()
	res := &Result{
		Order:   make([]int, 0, n),
		Depth:   make(map[int]int, n),
		Parent:  make(map[int]int, n),
		Visited: make(map[int]bool, n),
	}

	w := &walker{graph: g, opts: dopts, res: res}

	if dopts.FullTraversal {
		for v := 0; v < n; v++ {
			if !res.Visited[v] {
				if err := w.traverse(v, 0); err != nil {
					return res, err
				}
			}
		}
	} else {
		if err := w.traverse(start, 0); err != nil {
			return res, err
		}
	}

	res.SkippedNeighbors = w.opts.SkippedNeighbors
	return res, nil
}

// traverse visits node idx at the given depth, recursing into neighbors.
// Honors context cancellation, the depth limit, hooks, and filtering.
func (w *walker) traverse(idx, depth int) error {
	select {
	case <-w.opts.Ctx.Done():
		return w.opts.Ctx.Err()
	default:
	}

	if w.opts.MaxDepth >= 0 && depth > w.opts.MaxDepth {
		return nil
	}

	w.res.Visited[idx] = true
	w.res.Depth[idx] = depth

	if w.opts.OnVisit != nil {
		if err := w.opts.OnVisit(idx); err != nil {
			w.res.Order = nil
			return fmt.Errorf("dfs: OnVisit hook for %d: %w", idx, err)
		}
	}

	for _, nb := range w.graph.Neighbors(idx) {
		if w.opts.FilterNeighbor != nil && !w.opts.FilterNeighbor(nb) {
			w.opts.SkippedNeighbors++
			continue
		}
		if !w.res.Visited[nb] {
			w.res.Parent[nb] = idx
			if err := w.traverse(nb, depth+1); err != nil {
				return err
			}
		}
	}

	if w.opts.OnExit != nil {
		if err := w.opts.OnExit(idx); err != nil {
			w.res.Order = nil
			return fmt.Errorf("dfs: OnExit hook for %d: %w", idx, err)
		}
	}

	w.res.Order = append(w.res.Order, idx)
	return nil
}
