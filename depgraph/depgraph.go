package depgraph

import (
	"github.com/openql-go/openql/ir/gate"
	"github.com/openql-go/openql/ir/kernel"
)

// NodeID indexes into Graph.nodes. 0 is always SOURCE; the last index
// is always SINK.
type NodeID int

// Edge is one dependency arc, annotated with the operand and rule
// that produced it, in the teacher's cause/op_type/dep_type style
// (qc/dag Node's parent/child adjacency, enriched with the tags the
// scheduler and mapper need for tracing).
type Edge struct {
	To      NodeID
	Dep     DepType
	Operand OperandType
	Index   int // operand index (qubit/creg/breg number) that caused the edge
	Weight  int // cycles the source gate occupies; ALAP/ASAP both use this
}

// InEdge is one incoming dependency arc, the mirror of Edge for
// predecessor-side traversal (the scheduler's backward passes need the
// source node and the arc weight without rescanning every node's
// outgoing edges).
type InEdge struct {
	From    NodeID
	Dep     DepType
	Operand OperandType
	Index   int
	Weight  int
}

type node struct {
	id   NodeID
	gate *gate.Gate // never nil: SOURCE/SINK hold their own sentinel gates (NewSource/NewSink)
	out  []Edge
	in   []InEdge
}

// Graph is the frozen dependency graph over one kernel's gate arena.
// Gate pointers are shared with the kernel (arena-of-gates ownership,
// per the Design Notes); Graph never copies gate state, only indexes
// it.
type Graph struct {
	kernel    *kernel.Kernel
	cycleTime int
	nodes     []*node
}

// Option configures Build, in the teacher's qc/builder.Option style.
type Option func(*classifier)

// CommuteMultiQubit toggles whether same-class two-qubit gates
// (cnot/cz/cphase) on the same operand are allowed to reorder.
func CommuteMultiQubit(v bool) Option {
	return func(c *classifier) { c.commuteMultiQubit = v }
}

// CommuteSingleQubit toggles whether same-class single-qubit
// rotations on the same operand are allowed to reorder.
func CommuteSingleQubit(v bool) Option {
	return func(c *classifier) { c.commuteSingleQubit = v }
}

// Build constructs the dependency graph for k, replaying the
// Default/Xrotate/Zrotate and Write/Read state machines operand by
// operand (§4.1). It panics if the resulting graph is not acyclic:
// correct construction can never produce a cycle, so one reaching
// here is an internal bug (§7), not a user error.
func Build(k *kernel.Kernel, opts ...Option) *Graph {
	c := classifier{commuteMultiQubit: false, commuteSingleQubit: false}
	for _, opt := range opts {
		opt(&c)
	}

	gates := k.Gates()
	g := &Graph{kernel: k, cycleTime: k.CycleTime}

	// SOURCE is given a nominal one-cycle latency so every edge leaving
	// it carries weight 1: with SOURCE itself at cycle 0, that is what
	// guarantees every real gate's earliest possible cycle is >= 1
	// (§3's kernel invariant), rather than 0 as a zero-duration sentinel
	// would produce.
	srcGate := gate.NewSource()
	srcGate.Duration = k.CycleTime
	src := &node{id: 0, gate: srcGate}
	g.nodes = append(g.nodes, src)

	st := newState(k.QubitCount, k.CregCount, k.BregCount, 0)

	for i, gt := range gates {
		id := NodeID(i + 1)
		g.nodes = append(g.nodes, &node{id: id, gate: gt})
		for _, oe := range c.classify(gt, k.QubitCount, k.CregCount, k.BregCount) {
			g.newEvent(st, id, oe.operand, oe.event, oe.commutes)
		}
	}

	sinkID := NodeID(len(g.nodes))
	g.nodes = append(g.nodes, &node{id: sinkID, gate: gate.NewSink()})
	for q := 0; q < k.QubitCount; q++ {
		g.newEvent(st, sinkID, q, Default, false)
	}
	for cr := 0; cr < k.CregCount; cr++ {
		g.newEvent(st, sinkID, cr, Cwrite, false)
	}
	for br := 0; br < k.BregCount; br++ {
		g.newEvent(st, sinkID, br, Bwrite, false)
	}

	g.verifyAcyclic()
	return g
}

// CycleTime returns the platform cycle duration (ns) the graph's edge
// weights were computed against.
func (g *Graph) CycleTime() int { return g.cycleTime }

// Source returns the SOURCE sentinel's node ID.
func (g *Graph) Source() NodeID { return 0 }

// Sink returns the SINK sentinel's node ID.
func (g *Graph) Sink() NodeID { return NodeID(len(g.nodes) - 1) }

// NodeCount returns the total number of nodes, including SOURCE/SINK.
func (g *Graph) NodeCount() int { return len(g.nodes) }

// Gate returns the gate a node wraps (SOURCE/SINK included, as their
// own sentinel gates).
func (g *Graph) Gate(id NodeID) *gate.Gate { return g.nodes[id].gate }

// Successors returns the outgoing edges of id, in construction order.
func (g *Graph) Successors(id NodeID) []Edge {
	out := make([]Edge, len(g.nodes[id].out))
	copy(out, g.nodes[id].out)
	return out
}

// Predecessors returns the node IDs with an edge into id.
func (g *Graph) Predecessors(id NodeID) []NodeID {
	out := make([]NodeID, len(g.nodes[id].in))
	for i, e := range g.nodes[id].in {
		out[i] = e.From
	}
	return out
}

// PredecessorEdges returns the incoming edges of id, weight included,
// so backward traversals don't need to rescan every other node's
// outgoing edges to find them.
func (g *Graph) PredecessorEdges(id NodeID) []InEdge {
	out := make([]InEdge, len(g.nodes[id].in))
	copy(out, g.nodes[id].in)
	return out
}

func (g *Graph) addDep(from, to NodeID, dt DepType, ot OperandType, operand int) {
	weight := gate.Cycles(g.nodes[from].gate.Duration, g.cycleTime)
	g.nodes[from].out = append(g.nodes[from].out, Edge{To: to, Dep: dt, Operand: ot, Index: operand, Weight: weight})
	g.nodes[to].in = append(g.nodes[to].in, InEdge{From: from, Dep: dt, Operand: ot, Index: operand, Weight: weight})
}
