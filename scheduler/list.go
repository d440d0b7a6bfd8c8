package scheduler

import (
	"github.com/openql-go/openql/depgraph"
	"github.com/openql-go/openql/ir/kernel"
	"github.com/openql-go/openql/ir/platform"
	"github.com/openql-go/openql/resource"
)

// run holds the mutable state of one list-scheduling pass (§4.3 "Cycle
// assignment with resources"): which nodes are scheduled, the
// available list (kept ordered by deep criticality, most critical
// first), and the resource state committed alongside it.
type run struct {
	g                 *depgraph.Graph
	p                 *platform.Platform
	dir               Direction
	remaining         []int
	enableCriticality bool
	scheduled         []bool
	avlist            []depgraph.NodeID
	rs                *resource.State
}

// Schedule runs the resource-constrained list scheduler over g in the
// given direction, committing a cycle to every gate and reserving
// resources in rm's freshly built State. It mutates the shared
// *gate.Gate objects k and g both reference, then sorts and marks k.
func Schedule(k *kernel.Kernel, g *depgraph.Graph, p *platform.Platform, rm *resource.Manager, dir Direction, opts Options) {
	r := &run{
		g:                 g,
		p:                 p,
		dir:               dir,
		remaining:         computeRemaining(g, dir),
		enableCriticality: opts.Heuristic == PathLength,
		scheduled:         make([]bool, g.NodeCount()),
		rs:                rm.Build(dir),
	}
	r.run()

	gates := k.Gates()
	stableSortByCycle(gates)
	k.SetGates(gates)
	k.MarkScheduled()
}

func (r *run) run() {
	var currCycle int
	var start depgraph.NodeID
	if r.dir == Forward {
		currCycle = 0
		start = r.g.Source()
	} else {
		currCycle = alapSinkCycle
		start = r.g.Sink()
	}
	r.g.Gate(start).Cycle = currCycle
	r.avlist = []depgraph.NodeID{start}

	for len(r.avlist) > 0 {
		selected, ok := r.selectAvailable(currCycle)
		if !ok {
			if r.dir == Forward {
				currCycle++
			} else {
				currCycle--
			}
			continue
		}

		gt := r.g.Gate(selected)
		gt.Cycle = currCycle
		if gt.ConsumesResources() {
			r.rs.Reserve(currCycle, gt, r.p)
		}
		r.takeAvailable(selected)
	}

	if r.dir == Backward {
		shift := r.g.Gate(r.g.Source()).Cycle
		for id := 0; id < r.g.NodeCount(); id++ {
			gt := r.g.Gate(depgraph.NodeID(id))
			gt.Cycle -= shift
		}
	}
}

// immediatelySchedulable reports whether n's dependencies have
// completed as of currCycle and, for resource-consuming gates, whether
// the resource state permits it to start (§4.3 step 1).
func (r *run) immediatelySchedulable(n depgraph.NodeID, currCycle int) bool {
	gt := r.g.Gate(n)
	completed := gt.Cycle <= currCycle
	if r.dir == Backward {
		completed = currCycle <= gt.Cycle
	}
	if !completed {
		return false
	}
	if !gt.ConsumesResources() {
		return true
	}
	return r.rs.Available(currCycle, gt, r.p)
}

// selectAvailable scans the (deep-criticality-ordered) available list
// for the first schedulable node, preferring zero-duration gates so
// they never block a cycle advance (§4.3 step 1, §3 FEATURES RECOVERED
// point 3: the zero-duration-first scan is a second, earlier pass over
// the same list, not a priority field on the node).
func (r *run) selectAvailable(currCycle int) (depgraph.NodeID, bool) {
	for _, n := range r.avlist {
		if r.g.Gate(n).Duration == 0 && r.immediatelySchedulable(n, currCycle) {
			return n, true
		}
	}
	for _, n := range r.avlist {
		if r.immediatelySchedulable(n, currCycle) {
			return n, true
		}
	}
	return 0, false
}

// makeAvailable inserts n into the available list at the position its
// deep criticality dictates, and commits its tentative cycle from its
// already-scheduled dependencies (§4.3 "make its newly eligible
// successors... available").
func (r *run) makeAvailable(n depgraph.NodeID) {
	for _, existing := range r.avlist {
		if existing == n {
			return
		}
	}
	r.g.Gate(n).Cycle = r.commitCycleFromDeps(n)

	insertAt := len(r.avlist)
	for i, existing := range r.avlist {
		if criticalityLessThan(r.g, r.remaining, existing, n, r.dir, r.enableCriticality) {
			insertAt = i
			break
		}
	}
	r.avlist = append(r.avlist, 0)
	copy(r.avlist[insertAt+1:], r.avlist[insertAt:])
	r.avlist[insertAt] = n
}

func (r *run) commitCycleFromDeps(n depgraph.NodeID) int {
	if r.dir == Forward {
		curr := 0
		for _, e := range r.g.PredecessorEdges(n) {
			if v := r.g.Gate(e.From).Cycle + e.Weight; v > curr {
				curr = v
			}
		}
		return curr
	}
	curr := alapSinkCycle
	for _, e := range r.g.Successors(n) {
		if v := r.g.Gate(e.To).Cycle - e.Weight; v < curr {
			curr = v
		}
	}
	return curr
}

// takeAvailable removes n from the available list, marks it scheduled
// and makes any of its now-fully-resolved dependents available (§4.3
// step 2).
func (r *run) takeAvailable(n depgraph.NodeID) {
	r.scheduled[n] = true
	for i, id := range r.avlist {
		if id == n {
			r.avlist = append(r.avlist[:i], r.avlist[i+1:]...)
			break
		}
	}

	candidates := dependingNodes(r.g, n, r.dir)
	for _, c := range candidates {
		if r.allDepsScheduled(c) {
			r.makeAvailable(c)
		}
	}
}

func (r *run) allDepsScheduled(n depgraph.NodeID) bool {
	if r.dir == Forward {
		for _, id := range r.g.Predecessors(n) {
			if !r.scheduled[id] {
				return false
			}
		}
		return true
	}
	for _, e := range r.g.Successors(n) {
		if !r.scheduled[e.To] {
			return false
		}
	}
	return true
}
