// Package scheduler assigns a cycle to every gate in a kernel, given
// its dependency graph, following §4.3. It offers the resource-free
// cycle assignment used to seed heuristics, the resource-constrained
// list scheduler, and the uniform/ALAP-uniform bundler-targeting pass.
package scheduler

import (
	"math"

	"github.com/openql-go/openql/depgraph"
	"github.com/openql-go/openql/ir/kernel"
	"github.com/openql-go/openql/resource"
)

// Direction re-exports resource.Direction: the scheduler and the
// resource model share one notion of scheduling direction (§4.2/§4.3).
type Direction = resource.Direction

const (
	Forward  = resource.Forward
	Backward = resource.Backward
)

// alapSinkCycle seeds backward cycle assignment before it is shifted
// so SOURCE sits at 0 (§3 FEATURES RECOVERED point 2): large enough
// that no real circuit underflows it, but representable without
// overflow when added to small weights.
const alapSinkCycle = math.MaxInt32 / 2

// Heuristic selects how the available list breaks remaining-value
// ties (§6 "scheduler_heuristic").
type Heuristic int

const (
	PathLength Heuristic = iota // deep-criticality tie-break (criticality_lessthan)
	Random                      // stable source order, no tie-break
)

// Options configures the list scheduler's available-list ordering.
// Heuristic selects between the deep-criticality tie-break
// (PathLength) and stable source order (Random), matching the
// `scheduler_heuristic` pass option (§6).
type Options struct {
	Heuristic Heuristic
}

// assignPlain computes every node's cycle from its dependency edges
// alone, memoized recursively exactly like the original's
// set_cycle_gate (§4.3 "Cycle assignment without resources"). Nodes are
// visited in ID order, so a forward pass finds every predecessor already
// resolved, while a backward pass recurses from SOURCE through its
// successors.
func assignPlain(g *depgraph.Graph, dir Direction) []int {
	const undefined = -1
	cycle := make([]int, g.NodeCount())
	for i := range cycle {
		cycle[i] = undefined
	}

	var visit func(id depgraph.NodeID) int
	visit = func(id depgraph.NodeID) int {
		if cycle[id] != undefined {
			return cycle[id]
		}
		curr := 0
		if dir == Backward {
			curr = alapSinkCycle
		}
		if dir == Forward {
			for _, e := range g.PredecessorEdges(id) {
				c := visit(e.From)
				if v := c + e.Weight; v > curr {
					curr = v
				}
			}
		} else {
			for _, e := range g.Successors(id) {
				c := visit(e.To)
				if v := c - e.Weight; v < curr {
					curr = v
				}
			}
		}
		cycle[id] = curr
		return curr
	}

	for id := 0; id < g.NodeCount(); id++ {
		visit(depgraph.NodeID(id))
	}

	if dir == Backward {
		shift := cycle[g.Source()]
		for i := range cycle {
			cycle[i] -= shift
		}
	}
	return cycle
}

// AssignASAP sets every gate's cycle to the earliest point its
// dependencies allow (forward cycle assignment, no resources), sorts
// the kernel's gates by cycle, and marks the schedule valid.
func AssignASAP(k *kernel.Kernel, g *depgraph.Graph) {
	applyPlain(k, g, Forward)
}

// AssignALAP sets every gate's cycle to the latest point that doesn't
// delay anything downstream (backward cycle assignment, no
// resources), sorts the kernel's gates by cycle, and marks the
// schedule valid.
func AssignALAP(k *kernel.Kernel, g *depgraph.Graph) {
	applyPlain(k, g, Backward)
}

func applyPlain(k *kernel.Kernel, g *depgraph.Graph, dir Direction) {
	cycles := assignPlain(g, dir)
	gates := k.Gates()
	for i, gt := range gates {
		gt.Cycle = cycles[depgraph.NodeID(i+1)]
	}
	stableSortByCycle(gates)
	k.SetGates(gates)
	k.MarkScheduled()
}
