package platform

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRejectsNonPositiveQubitCount(t *testing.T) {
	_, err := New(0, 0, 0, 20)
	assert.Error(t, err)
}

func TestNewRejectsNonPositiveCycleTime(t *testing.T) {
	_, err := New(2, 0, 0, 0)
	assert.Error(t, err)
}

func TestNewRejectsNegativeRegisterCounts(t *testing.T) {
	_, err := New(2, -1, 0, 20)
	assert.Error(t, err)
}

func TestWithResourcesAppendsAndReturnsSamePlatform(t *testing.T) {
	p, err := New(2, 0, 0, 20)
	require.NoError(t, err)

	returned := p.WithResources(ResourceDescriptor{Name: "qubits", Kind: "qubit"})
	assert.Same(t, p, returned)
	assert.Len(t, p.Resources, 1)
}

func TestCyclesRoundsUp(t *testing.T) {
	p, err := New(2, 0, 0, 20)
	require.NoError(t, err)

	assert.Equal(t, 0, p.Cycles(0))
	assert.Equal(t, 1, p.Cycles(1))
	assert.Equal(t, 1, p.Cycles(20))
	assert.Equal(t, 2, p.Cycles(21))
}
