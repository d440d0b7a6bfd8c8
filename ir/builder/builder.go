// Package builder implements a fluent declarative DSL for assembling a
// kernel.Kernel gate by gate, generalizing the teacher's qc/builder
// (which built a qc/dag.DAG from chained gate calls) onto this
// module's Gate/Kernel types. Every gate is stamped with the kernel's
// cycle time as its duration, the way a hardware-described kernel
// would size each operation from the platform it targets.
package builder

import (
	"fmt"

	"github.com/openql-go/openql/ir/gate"
	"github.com/openql-go/openql/ir/kernel"
)

// Builder chains gate calls onto one kernel, deferring every error
// until Build, the same bail-out-then-report pattern as the teacher's
// qc/builder.b.
type Builder interface {
	H(q int) Builder
	X(q int) Builder
	Y(q int) Builder
	Z(q int) Builder
	S(q int) Builder

	CNOT(ctrl, tgt int) Builder
	CZ(ctrl, tgt int) Builder
	Swap(q1, q2 int) Builder

	Measure(q int) Builder
	Wait(durationNS int) Builder

	// Build validates and returns the assembled kernel. The builder is
	// single-use: calling Build a second time returns an error.
	Build() (*kernel.Kernel, error)
}

// New returns a Builder over a fresh kernel named name, sized per
// qubitCount/cregCount/bregCount, with every added gate's duration
// defaulting to cycleTimeNS.
func New(name string, qubitCount, cregCount, bregCount, cycleTimeNS int) Builder {
	k, err := kernel.New(name, qubitCount, cregCount, bregCount, cycleTimeNS)
	if err != nil {
		return &b{err: err}
	}
	return &b{kernel: k, cycleTimeNS: cycleTimeNS}
}

type b struct {
	kernel      *kernel.Kernel
	cycleTimeNS int
	err         error
	built       bool
}

func (bb *b) bail(err error) Builder {
	if bb.err == nil {
		bb.err = err
	}
	return bb
}

func (bb *b) checkState() bool { return bb.built || bb.err != nil }

func (bb *b) add(name string, qubits []int) Builder {
	if bb.checkState() {
		return bb
	}
	if err := bb.kernel.AddGate(gate.New(name, qubits, nil, nil, bb.cycleTimeNS)); err != nil {
		return bb.bail(err)
	}
	return bb
}

func (bb *b) H(q int) Builder    { return bb.add("h", []int{q}) }
func (bb *b) X(q int) Builder    { return bb.add("x", []int{q}) }
func (bb *b) Y(q int) Builder    { return bb.add("y", []int{q}) }
func (bb *b) Z(q int) Builder    { return bb.add("z", []int{q}) }
func (bb *b) S(q int) Builder    { return bb.add("s", []int{q}) }

func (bb *b) CNOT(ctrl, tgt int) Builder  { return bb.add("cnot", []int{ctrl, tgt}) }
func (bb *b) CZ(ctrl, tgt int) Builder    { return bb.add("cz", []int{ctrl, tgt}) }
func (bb *b) Swap(q1, q2 int) Builder     { return bb.add("swap", []int{q1, q2}) }

func (bb *b) Measure(q int) Builder { return bb.add("measure", []int{q}) }

func (bb *b) Wait(durationNS int) Builder {
	if bb.checkState() {
		return bb
	}
	if err := bb.kernel.AddGate(gate.NewWait(durationNS)); err != nil {
		return bb.bail(err)
	}
	return bb
}

func (bb *b) Build() (*kernel.Kernel, error) {
	if bb.built {
		return nil, fmt.Errorf("builder: Build already called for kernel %q", bb.kernelName())
	}
	if bb.err != nil {
		return nil, bb.err
	}
	bb.built = true
	return bb.kernel, nil
}

func (bb *b) kernelName() string {
	if bb.kernel == nil {
		return ""
	}
	return bb.kernel.Name
}
