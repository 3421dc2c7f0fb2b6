// Package dfs implements depth-first search (single-source and forest) on
// graph.Graph, plus the two classifications the polygonizer needs: cycle
// detection and bridge (tree-edge) detection.
//
// Key features:
//   - DFS(g, start, opts...): traverse from a root, or the whole forest via WithFullTraversal
//   - Hooks: OnVisit (pre-order) & OnExit (post-order) with error aborts
//   - Limits: MaxDepth, FilterNeighbor, SkippedNeighbors diagnostic count
//   - Cancellation via context.Context
//   - DetectCycles(g): enumerate back-edge cycles in canonical minimal rotation
//   - Bridges(g): the complement of DetectCycles' edge coverage — edges that
//     lie on no cycle and therefore can never bound a polygon face
//
// Complexity:
//
//   - Time:   O(V + E) for traversal, plus hook/filter overhead; cycle and
//     bridge classification add O(C·L) for C cycles of average length L.
//   - Memory: O(V) for the recursion stack and metadata maps.
package dfs
