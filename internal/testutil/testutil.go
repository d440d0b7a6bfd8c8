// Package testutil centralizes fixture builders and constants shared
// across this module's test files, generalizing the teacher's
// qc/testutil (circuit-builder fixtures, test timeouts/tolerances) to
// the compiler-core's kernel/platform/program types (§1.4).
package testutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/openql-go/openql/ir/gate"
	"github.com/openql-go/openql/ir/kernel"
	"github.com/openql-go/openql/ir/platform"
	"github.com/openql-go/openql/ir/program"
)

// Test timeouts, carried forward from the teacher's qc/testutil
// constants for tests that exercise anything context-bound (the
// compileserver's httptest round trips).
const (
	DefaultTestTimeout = 10 * time.Second
	LongTestTimeout    = 30 * time.Second
)

// Default platform/kernel dimensions, generalizing the teacher's
// DefaultQubits/SmallQubits/LargeQubits trio to this package's
// qubit/creg/breg-bounded types.
const (
	DefaultQubits   = 3
	SmallQubits     = 2
	LargeQubits     = 7
	DefaultCycleNS  = 20
)

// NewPlatform returns a platform with qubitCount qubits, no classical
// registers, and a DefaultCycleNS cycle time.
func NewPlatform(t *testing.T, qubitCount int) *platform.Platform {
	t.Helper()
	p, err := platform.New(qubitCount, 0, 0, DefaultCycleNS)
	require.NoError(t, err, "failed to build test platform")
	return p
}

// NewKernel returns an empty kernel over qubitCount qubits, no
// classical registers, and a DefaultCycleNS cycle time.
func NewKernel(t *testing.T, name string, qubitCount int) *kernel.Kernel {
	t.Helper()
	k, err := kernel.New(name, qubitCount, 0, 0, DefaultCycleNS)
	require.NoError(t, err, "failed to build test kernel %q", name)
	return k
}

// NewBellStateKernel returns a 2-qubit kernel generalizing the
// teacher's NewBellStateCircuit (H(0); CNOT(0,1); measure both) to
// this module's Gate/Kernel types, with each gate's duration set to
// one cycle so every test scheduling this kernel gets a predictable,
// small depth.
func NewBellStateKernel(t *testing.T) *kernel.Kernel {
	t.Helper()
	k := NewKernel(t, "bell", 2)
	require.NoError(t, k.AddGate(gate.New("h", []int{0}, nil, nil, DefaultCycleNS)))
	require.NoError(t, k.AddGate(gate.New("cnot", []int{0, 1}, nil, nil, DefaultCycleNS)))
	require.NoError(t, k.AddGate(gate.New("measure", []int{0}, nil, nil, DefaultCycleNS)))
	require.NoError(t, k.AddGate(gate.New("measure", []int{1}, nil, nil, DefaultCycleNS)))
	return k
}

// NewGHZKernel returns an n-qubit GHZ-preparation kernel (H on qubit
// 0, then a CNOT chain fanning out from it), generalizing the
// teacher's NewGroverCircuit fixture to an open-ended qubit count
// rather than a fixed 2-qubit oracle.
func NewGHZKernel(t *testing.T, qubitCount int) *kernel.Kernel {
	t.Helper()
	require.Greater(t, qubitCount, 1, "GHZ kernel needs at least 2 qubits")
	k := NewKernel(t, "ghz", qubitCount)
	require.NoError(t, k.AddGate(gate.New("h", []int{0}, nil, nil, DefaultCycleNS)))
	for q := 1; q < qubitCount; q++ {
		require.NoError(t, k.AddGate(gate.New("cnot", []int{0, q}, nil, nil, DefaultCycleNS)))
	}
	for q := 0; q < qubitCount; q++ {
		require.NoError(t, k.AddGate(gate.New("measure", []int{q}, nil, nil, DefaultCycleNS)))
	}
	return k
}

// NewProgram wraps kernels into a program.Program over a fresh
// qubitCount-qubit platform; every kernel passed in must match it.
func NewProgram(t *testing.T, name string, qubitCount int, kernels ...*kernel.Kernel) *program.Program {
	t.Helper()
	pr := program.New(name, NewPlatform(t, qubitCount))
	for _, k := range kernels {
		require.NoError(t, pr.AddKernel(k))
	}
	return pr
}
