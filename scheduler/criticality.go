package scheduler

import (
	"sort"

	"github.com/openql-go/openql/depgraph"
)

// dependingNodes returns the distinct nodes that must schedule after n:
// successors when going forward, predecessors when going backward
// (§4.3 "the sorted tail of each node's direct dependents").
func dependingNodes(g *depgraph.Graph, n depgraph.NodeID, dir Direction) []depgraph.NodeID {
	seen := make(map[depgraph.NodeID]bool)
	var out []depgraph.NodeID
	add := func(id depgraph.NodeID) {
		if !seen[id] {
			seen[id] = true
			out = append(out, id)
		}
	}
	if dir == Forward {
		for _, e := range g.Successors(n) {
			add(e.To)
		}
	} else {
		for _, id := range g.Predecessors(n) {
			add(id)
		}
	}
	return out
}

// criticalityLessThan is the deep-criticality order the available
// list is kept sorted by (§4.3 "deep criticality"): primary key is
// remaining[n] (descending desirability, i.e. higher remaining sorts
// first), with a recursive tie-break over each node's set of direct
// dependents when enableCriticality is set. With it disabled
// (scheduler_heuristic=random), ties keep stable source order instead.
//
// This is a literal port of the original's criticality_lessthan.
func criticalityLessThan(g *depgraph.Graph, remaining []int, n1, n2 depgraph.NodeID, dir Direction, enableCriticality bool) bool {
	if n1 == n2 {
		return false
	}
	if remaining[n1] < remaining[n2] {
		return true
	}
	if !enableCriticality {
		return false
	}
	if remaining[n1] > remaining[n2] {
		return false
	}
	// remaining[n1] == remaining[n2]

	ln1 := dependingNodes(g, n1, dir)
	ln2 := dependingNodes(g, n2, dir)
	if len(ln2) == 0 {
		return false
	}
	if len(ln1) == 0 {
		return true
	}

	sort.Slice(ln1, func(i, j int) bool { return remaining[ln1[i]] < remaining[ln1[j]] })
	sort.Slice(ln2, func(i, j int) bool { return remaining[ln2[i]] < remaining[ln2[j]] })

	critDep1 := remaining[ln1[len(ln1)-1]]
	critDep2 := remaining[ln2[len(ln2)-1]]
	if critDep1 < critDep2 {
		return true
	}
	if critDep1 > critDep2 {
		return false
	}

	ln1 = filterGE(ln1, remaining, critDep1)
	ln2 = filterGE(ln2, remaining, critDep2)

	if len(ln1) < len(ln2) {
		return true
	}
	if len(ln1) > len(ln2) {
		return false
	}

	sort.Slice(ln1, func(i, j int) bool { return criticalityLessThan(g, remaining, ln1[i], ln1[j], dir, enableCriticality) })
	sort.Slice(ln2, func(i, j int) bool { return criticalityLessThan(g, remaining, ln2[i], ln2[j], dir, enableCriticality) })
	return criticalityLessThan(g, remaining, ln1[len(ln1)-1], ln2[len(ln2)-1], dir, enableCriticality)
}

func filterGE(ids []depgraph.NodeID, remaining []int, floor int) []depgraph.NodeID {
	out := ids[:0:0]
	for _, id := range ids {
		if remaining[id] >= floor {
			out = append(out, id)
		}
	}
	return out
}
