package depgraph

import "github.com/openql-go/openql/ir/gate"

// View is the narrow read-only interface the mapper (and any other
// graph consumer outside this package) is given, so it cannot reach
// into Graph's construction-time state (§4.1 Design Notes: "expose a
// narrow read-only view of the dependency graph"). It mirrors the
// DAGReader/DAGBuilder split the teacher's qc/dag package drew between
// mutation and consumption: Graph itself satisfies View, but callers
// that only need to read should accept View, not *Graph.
type View interface {
	Source() NodeID
	Sink() NodeID
	NodeCount() int
	Gate(id NodeID) *gate.Gate
	Successors(id NodeID) []Edge
	Predecessors(id NodeID) []NodeID
	TopoOrder() []NodeID
}

var _ View = (*Graph)(nil)
