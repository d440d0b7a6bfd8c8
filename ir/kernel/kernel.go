// Package kernel implements the straight-line gate sequence §3 describes:
// a kernel owns its gates exclusively (the arena-of-gates pattern from the
// Design Notes, replacing the teacher's reference-counted dag.Node
// ownership) and the dependency graph built over it holds only indices
// back into this arena.
package kernel

import (
	"fmt"

	"github.com/openql-go/openql/ir/gate"
)

// Kernel owns a qubit/creg/breg-bounded linear gate sequence (§3).
type Kernel struct {
	Name        string
	QubitCount  int
	CregCount   int
	BregCount   int
	CycleTime   int // nanoseconds per platform cycle
	gates       []*gate.Gate
	CyclesValid bool
}

// New creates an empty kernel. cycleTimeNS must be positive.
func New(name string, qubitCount, cregCount, bregCount, cycleTimeNS int) (*Kernel, error) {
	if qubitCount <= 0 {
		return nil, fmt.Errorf("kernel: qubit count must be positive, got %d", qubitCount)
	}
	if cregCount < 0 || bregCount < 0 {
		return nil, fmt.Errorf("kernel: creg/breg counts must be non-negative")
	}
	if cycleTimeNS <= 0 {
		return nil, fmt.Errorf("kernel: cycle time must be positive, got %d", cycleTimeNS)
	}
	return &Kernel{
		Name:       name,
		QubitCount: qubitCount,
		CregCount:  cregCount,
		BregCount:  bregCount,
		CycleTime:  cycleTimeNS,
	}, nil
}

// AddGate appends g to the kernel's gate sequence, after validating that
// every operand index it references is in range (§3 invariant). Appending
// invalidates any previously computed schedule.
func (k *Kernel) AddGate(g *gate.Gate) error {
	if err := k.checkOperands(g); err != nil {
		return err
	}
	k.gates = append(k.gates, g)
	k.CyclesValid = false
	return nil
}

func (k *Kernel) checkOperands(g *gate.Gate) error {
	for _, q := range g.Qubits {
		if q < 0 || q >= k.QubitCount {
			return fmt.Errorf("kernel: gate %q references qubit %d out of range [0,%d)", g.Name, q, k.QubitCount)
		}
	}
	for _, c := range g.Cregs {
		if c < 0 || c >= k.CregCount {
			return fmt.Errorf("kernel: gate %q references creg %d out of range [0,%d)", g.Name, c, k.CregCount)
		}
	}
	for _, b := range g.Bregs {
		if b < 0 || b >= k.BregCount {
			return fmt.Errorf("kernel: gate %q references breg %d out of range [0,%d)", g.Name, b, k.BregCount)
		}
	}
	for _, b := range g.CondBregs {
		if b < 0 || b >= k.BregCount {
			return fmt.Errorf("kernel: gate %q references condition breg %d out of range [0,%d)", g.Name, b, k.BregCount)
		}
	}
	return nil
}

// Gates returns the kernel's gate sequence. The slice is a copy of the
// internal arena's index list, but the *gate.Gate pointers are shared, so
// the scheduler can mutate Cycle fields in place.
func (k *Kernel) Gates() []*gate.Gate {
	out := make([]*gate.Gate, len(k.gates))
	copy(out, k.gates)
	return out
}

// Len returns the number of gates in the kernel.
func (k *Kernel) Len() int { return len(k.gates) }

// SetGates replaces the kernel's gate sequence outright, e.g. after the
// scheduler stable-sorts it by cycle. It does not touch CyclesValid;
// callers that establish the invariant call MarkScheduled afterwards.
func (k *Kernel) SetGates(gates []*gate.Gate) {
	k.gates = append([]*gate.Gate(nil), gates...)
}

// MarkScheduled asserts the §3 invariant (non-decreasing cycle order,
// every cycle >= 1) and sets CyclesValid. It panics if the invariant does
// not hold: an out-of-order or undefined cycle after scheduling is an
// internal bug, never a user error (§7).
func (k *Kernel) MarkScheduled() {
	last := 0
	for _, g := range k.gates {
		if g.Cycle < 1 {
			panic(fmt.Sprintf("kernel: gate %q has undefined cycle after scheduling", g.Name))
		}
		if g.Cycle < last {
			panic(fmt.Sprintf("kernel: gate %q out of cycle order (%d after %d)", g.Name, g.Cycle, last))
		}
		last = g.Cycle
	}
	k.CyclesValid = true
}

// InvalidateSchedule clears CyclesValid, e.g. when a platform-transforming
// pass rewrites the kernel (§4.6 "Compilation").
func (k *Kernel) InvalidateSchedule() {
	k.CyclesValid = false
}
