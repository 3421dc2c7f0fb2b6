package dfs

import (
	"sort"

	"github.com/katalvlaran/wktgraph/graph"
)

// DetectCycles inspects g for cycles reachable by back edges during a
// depth-first forest traversal, deduplicated by canonical minimal rotation
// so rotations and reversals of the same cycle count once. The graph is
// undirected and simple, so the trivial backtrack to the DFS parent is not
// a cycle and two-node round trips never occur.
//
// Returns (true, cycles, nil) if any cycles are found; (false, nil, nil)
// otherwise. Cycles are emitted closed ([v0, ..., v0]) and sorted by
// signature for deterministic output.
func DetectCycles(g *graph.Graph) (bool, [][]int, error) {
	if g == nil {
		return false, nil, ErrGraphNil
	}

	n := g.NodeCount()
	state := make([]int, n)
	path := make([]int, 0, n)
	seen := make(map[string]struct{})
	var cycles [][]int

	for v := 0; v < n; v++ {
		if state[v] == white {
			cycleVisit(g, v, -1, state, &path, seen, &cycles)
		}
	}

	sort.Slice(cycles, func(i, j int) bool {
		return joinSig(cycles[i]) < joinSig(cycles[j])
	})

	if len(cycles) == 0 {
		return false, nil, nil
	}
	return true, cycles, nil
}

// cycleVisit runs the three-color DFS from idx, with parent tracked to skip
// the trivial backtrack. A Gray neighbor other than the parent closes a
// cycle along the current path stack.
func cycleVisit(
	g *graph.Graph,
	idx, parent int,
	state []int,
	path *[]int,
	seen map[string]struct{},
	cycles *[][]int,
) {
	state[idx] = gray
	*path = append(*path, idx)

	for _, nbr := range g.Neighbors(idx) {
		if nbr == parent {
			continue
		}
		switch state[nbr] {
		case white:
			cycleVisit(g, nbr, idx, state, path, seen, cycles)
		case gray:
			recordCycle(nbr, *path, seen, cycles)
		}
	}

	*path = (*path)[:len(*path)-1]
	state[idx] = black
}

// recordCycle extracts the cycle that closes at start, canonicalizes it,
// and appends it to cycles if its signature is new.
func recordCycle(start int, path []int, seen map[string]struct{}, cycles *[][]int) {
	idx := indexOf(path, start)
	if idx < 0 || len(path)-idx < 3 {
		return
	}
	seq := append([]int(nil), path[idx:]...)
	seq = append(seq, start)

	sig, canon := canonical(seq)
	if _, exists := seen[sig]; !exists {
		seen[sig] = struct{}{}
		*cycles = append(*cycles, canon)
	}
}

// canonical computes the lexicographically minimal rotation of cycle,
// considering both directions of travel, and returns its signature plus the
// closed canonical form [v0, v1, ..., v0].
func canonical(cycle []int) (string, []int) {
	n := len(cycle) - 1
	base := cycle[:n]

	rotF := minimalRotation(base)
	rotB := minimalRotation(reverse(base))

	picker := rotF
	if compare(rotB, rotF) < 0 {
		picker = rotB
	}

	closed := append(append([]int(nil), picker...), picker[0])
	return joinSig(closed), closed
}
