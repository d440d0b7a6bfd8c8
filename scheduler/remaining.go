package scheduler

import "github.com/openql-go/openql/depgraph"

const undefinedRemaining = -1

// computeRemaining returns, for every node, the number of cycles from
// the start of its execution to the end of the schedule in the
// *opposite* direction of the pass being driven: forward passes (ASAP)
// measure remaining until SINK, backward passes (ALAP) measure
// remaining until SOURCE. Higher remaining means more critical,
// regardless of direction (§4.3 "Compute remaining[n] for every node
// in the opposite direction").
//
// This is a literal port of the original's set_remaining_gate: a
// memoized recursion over the dependency graph, walking forward edges
// when computing an ALAP-style remaining value and backward edges when
// computing an ASAP-style one.
func computeRemaining(g *depgraph.Graph, dir Direction) []int {
	remaining := make([]int, g.NodeCount())
	for i := range remaining {
		remaining[i] = undefinedRemaining
	}

	var visit func(id depgraph.NodeID) int
	visit = func(id depgraph.NodeID) int {
		if remaining[id] != undefinedRemaining {
			return remaining[id]
		}
		curr := 0
		if dir == Forward {
			for _, e := range g.Successors(id) {
				r := visit(e.To)
				if v := r + e.Weight; v > curr {
					curr = v
				}
			}
		} else {
			for _, e := range g.PredecessorEdges(id) {
				r := visit(e.From)
				if v := r + e.Weight; v > curr {
					curr = v
				}
			}
		}
		remaining[id] = curr
		return curr
	}

	for id := 0; id < g.NodeCount(); id++ {
		visit(depgraph.NodeID(id))
	}
	return remaining
}
