package resource

import (
	"github.com/openql-go/openql/ir/gate"
	"github.com/openql-go/openql/ir/platform"
)

// Qubit is the per-qubit busy-until/busy-from occupation resource,
// grounded on original_source's cc_resource_qubit (§4.2 "Qubit
// resource"). Forward: a qubit is busy until cycle[q]; a gate needs
// start >= cycle[q] on every operand. Backward is the dual: busy from
// cycle[q], so the gate must finish (start+duration) by cycle[q].
type Qubit struct {
	dir   Direction
	cycle []int
}

// NewQubit builds a fresh Qubit resource for qubitCount qubits, seeded
// per dir (0 for Forward, MaxCycle for Backward).
func NewQubit(qubitCount int, dir Direction) *Qubit {
	val := 0
	if dir == Backward {
		val = MaxCycle
	}
	cycle := make([]int, qubitCount)
	for i := range cycle {
		cycle[i] = val
	}
	return &Qubit{dir: dir, cycle: cycle}
}

func (q *Qubit) Name() string { return "qubits" }

func (q *Qubit) Available(startCycle int, g *gate.Gate, p *platform.Platform) bool {
	for _, operand := range g.Qubits {
		if q.dir == Forward {
			if startCycle < q.cycle[operand] {
				return false
			}
		} else {
			duration := p.Cycles(g.Duration)
			if startCycle+duration > q.cycle[operand] {
				return false
			}
		}
	}
	return true
}

func (q *Qubit) Reserve(startCycle int, g *gate.Gate, p *platform.Platform) {
	val := startCycle
	if q.dir == Forward {
		val = startCycle + p.Cycles(g.Duration)
	}
	for _, operand := range g.Qubits {
		q.cycle[operand] = val
	}
}

func (q *Qubit) Clone() Resource {
	cp := make([]int, len(q.cycle))
	copy(cp, q.cycle)
	return &Qubit{dir: q.dir, cycle: cp}
}
