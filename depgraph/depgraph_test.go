package depgraph

import (
	"testing"

	"github.com/openql-go/openql/ir/gate"
	"github.com/openql-go/openql/ir/kernel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestKernel(t *testing.T, qubits, cregs, bregs int) *kernel.Kernel {
	t.Helper()
	k, err := kernel.New("main", qubits, cregs, bregs, 20)
	require.NoError(t, err)
	return k
}

func TestBuildLinearChainOnSameQubit(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	k := newTestKernel(t, 1, 0, 0)
	require.NoError(k.AddGate(gate.New("h", []int{0}, nil, nil, 20)))
	require.NoError(k.AddGate(gate.New("h", []int{0}, nil, nil, 20)))

	g := Build(k)
	require.Equal(4, g.NodeCount()) // source, h, h, sink

	src, sink := g.Source(), g.Sink()
	assert.Equal(gate.Source, g.Gate(src).Typ)
	assert.Equal(gate.Sink, g.Gate(sink).Typ)

	// h -> h: both are Default events on qubit 0, chained DAD.
	firstH := NodeID(1)
	secondH := NodeID(2)
	succ := g.Successors(firstH)
	require.Len(succ, 1)
	assert.Equal(secondH, succ[0].To)
	assert.Equal(DAD, succ[0].Dep)

	// second h -> sink
	succ = g.Successors(secondH)
	require.Len(succ, 1)
	assert.Equal(sink, succ[0].To)
}

func TestCommutingZRotationsDoNotChainWhenCommuteEnabled(t *testing.T) {
	require := require.New(t)
	assert := assert.New(t)

	k := newTestKernel(t, 1, 0, 0)
	require.NoError(k.AddGate(gate.New("rz", []int{0}, nil, nil, 20)))
	require.NoError(k.AddGate(gate.New("rz", []int{0}, nil, nil, 20)))

	g := Build(k, CommuteSingleQubit(true))
	firstRZ := NodeID(1)

	// Both depend on SOURCE's default (ZAD), but not on each other (no ZAZ).
	for _, e := range g.Successors(firstRZ) {
		assert.NotEqual(ZAZ, e.Dep)
	}
}

func TestNonCommutingZRotationsChainInOrder(t *testing.T) {
	require := require.New(t)
	assert := assert.New(t)

	k := newTestKernel(t, 1, 0, 0)
	require.NoError(k.AddGate(gate.New("rz", []int{0}, nil, nil, 20)))
	require.NoError(k.AddGate(gate.New("rz", []int{0}, nil, nil, 20)))

	g := Build(k, CommuteSingleQubit(false))
	firstRZ := NodeID(1)

	found := false
	for _, e := range g.Successors(firstRZ) {
		if e.Dep == ZAZ {
			found = true
		}
	}
	assert.True(found)
}

func TestCnotControlIsZRotateTargetIsXRotate(t *testing.T) {
	require := require.New(t)
	assert := assert.New(t)

	k := newTestKernel(t, 2, 0, 0)
	require.NoError(k.AddGate(gate.New("rz", []int{0}, nil, nil, 20)))
	require.NoError(k.AddGate(gate.New("rx", []int{1}, nil, nil, 20)))
	require.NoError(k.AddGate(gate.New("cnot", []int{0, 1}, nil, nil, 40)))

	g := Build(k, CommuteSingleQubit(true), CommuteMultiQubit(true))
	cnot := NodeID(3)

	preds := g.Predecessors(cnot)
	assert.Len(preds, 2)
}

func TestClassicalWriteAfterWrite(t *testing.T) {
	require := require.New(t)
	assert := assert.New(t)

	k := newTestKernel(t, 1, 1, 0)
	require.NoError(k.AddGate(gate.NewClassical("add", []int{0})))
	require.NoError(k.AddGate(gate.New("measure", []int{0}, []int{0}, nil, 300)))

	g := Build(k)
	add := NodeID(1)
	measure := NodeID(2)

	succ := g.Successors(add)
	var foundWAW bool
	for _, e := range succ {
		if e.To == measure && e.Dep == WAW {
			foundWAW = true
		}
	}
	assert.True(foundWAW)
}

func TestNoReadAfterReadEdgeForClassicalRegisters(t *testing.T) {
	require := require.New(t)
	assert := assert.New(t)

	k := newTestKernel(t, 1, 0, 1)
	require.NoError(k.AddGate(gate.New("x", []int{0}, nil, nil, 20).WithCondition(gate.Unary, 0)))
	require.NoError(k.AddGate(gate.New("x", []int{0}, nil, nil, 20).WithCondition(gate.Unary, 0)))

	// Single-qubit commutation is on so the two x gates on qubit 0 add no
	// XAX edge; the only shared operand left is the condition breg.
	g := Build(k, CommuteSingleQubit(true))
	first := NodeID(1)

	// Neither gate should depend on the other through the condition breg:
	// reads of the same breg always commute (no RAR edge).
	for _, p := range g.Predecessors(NodeID(2)) {
		assert.NotEqual(first, p)
	}
}

func TestTopoOrderStartsAtSourceEndsAtSink(t *testing.T) {
	require := require.New(t)
	assert := assert.New(t)

	k := newTestKernel(t, 2, 0, 0)
	require.NoError(k.AddGate(gate.New("h", []int{0}, nil, nil, 20)))
	require.NoError(k.AddGate(gate.New("cnot", []int{0, 1}, nil, nil, 40)))

	g := Build(k)
	order := g.TopoOrder()
	require.Equal(g.NodeCount(), len(order))
	assert.Equal(g.Source(), order[0])
	assert.Equal(g.Sink(), order[len(order)-1])
}

func TestDisplayTouchesEveryOperand(t *testing.T) {
	require := require.New(t)
	assert := assert.New(t)

	k := newTestKernel(t, 2, 1, 1)
	require.NoError(k.AddGate(gate.New("display", nil, nil, nil, 0)))

	g := Build(k)
	display := NodeID(1)
	assert.Len(g.Predecessors(display), 4) // source defaults on 2 qubits + 1 creg + 1 breg
}

func TestGraphSatisfiesView(t *testing.T) {
	k := newTestKernel(t, 1, 0, 0)
	require.NoError(t, k.AddGate(gate.New("h", []int{0}, nil, nil, 20)))
	g := Build(k)
	var v View = g
	assert.NotNil(t, v)
}
