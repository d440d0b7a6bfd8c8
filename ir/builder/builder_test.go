package builder

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildAssemblesBellStateKernel(t *testing.T) {
	k, err := New("bell", 2, 2, 0, 20).
		H(0).
		CNOT(0, 1).
		Measure(0).
		Measure(1).
		Build()
	require.NoError(t, err)

	gates := k.Gates()
	require.Len(t, gates, 4)
	assert.Equal(t, "h", gates[0].Name)
	assert.Equal(t, "cnot", gates[1].Name)
	assert.Equal(t, []int{0, 1}, gates[1].Qubits)
}

func TestBuildSurfacesFirstErrorAndIgnoresLaterCalls(t *testing.T) {
	_, err := New("bad", 2, 0, 0, 20).
		H(5). // out of range
		CNOT(0, 1).
		Build()
	assert.Error(t, err)
}

func TestBuildTwiceReturnsError(t *testing.T) {
	bld := New("k", 1, 0, 0, 20).H(0)
	_, err := bld.Build()
	require.NoError(t, err)

	_, err = bld.Build()
	assert.Error(t, err)
}

func TestWaitAddsWaitGate(t *testing.T) {
	k, err := New("k", 1, 0, 0, 20).
		H(0).
		Wait(40).
		Build()
	require.NoError(t, err)
	assert.Len(t, k.Gates(), 2)
}
