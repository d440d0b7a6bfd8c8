package scheduler

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openql-go/openql/ir/gate"
	"github.com/openql-go/openql/ir/platform"
	"github.com/openql-go/openql/pass"
	"github.com/openql-go/openql/resource"
)

func TestNewPassRejectsUniformWithResourceConstraints(t *testing.T) {
	opts := pass.NewOptions(Specs...)
	require.NoError(t, opts.Set("scheduler_target", "uniform"))
	require.NoError(t, opts.Set("resource_constraints", "true"))

	_, err := NewPass(opts)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUniformWithResourceConstraints))
}

func TestNewPassAcceptsUniformWithoutResourceConstraints(t *testing.T) {
	opts := pass.NewOptions(Specs...)
	require.NoError(t, opts.Set("scheduler_target", "uniform"))

	p, err := NewPass(opts)
	require.NoError(t, err)
	assert.NotNil(t, p)
}

func TestRunDefaultsToASAP(t *testing.T) {
	opts := pass.NewOptions(Specs...)
	p, err := NewPass(opts)
	require.NoError(t, err)

	k := newTestKernel(t, 1)
	require.NoError(t, k.AddGate(gate.New("x", []int{0}, nil, nil, 20)))
	require.NoError(t, k.AddGate(gate.New("y", []int{0}, nil, nil, 20)))

	plat := testPlatform(t, 1)
	ctx := &pass.Context{Platform: plat}

	n, err := p.Run(nil, k, ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, n)
	assert.True(t, k.CyclesValid)

	gates := k.Gates()
	assert.Less(t, gates[0].Cycle, gates[1].Cycle)
}

func TestRunWithResourceConstraintsUsesContextResourceManager(t *testing.T) {
	opts := pass.NewOptions(Specs...)
	require.NoError(t, opts.Set("resource_constraints", "true"))
	p, err := NewPass(opts)
	require.NoError(t, err)

	k := newTestKernel(t, 1)
	require.NoError(t, k.AddGate(gate.New("x", []int{0}, nil, nil, 20)))
	require.NoError(t, k.AddGate(gate.New("y", []int{0}, nil, nil, 20)))

	plat := testPlatform(t, 1)
	ctx := &pass.Context{
		Platform: plat,
		ResourceManager: func(p *platform.Platform) *resource.Manager {
			rm := resource.NewManager()
			rm.Add("qubits", func(dir resource.Direction) resource.Resource {
				return resource.NewQubit(p.QubitCount, dir)
			})
			return rm
		},
	}

	n, err := p.Run(nil, k, ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, n)
	assert.True(t, k.CyclesValid)
}

func TestRunWithResourceConstraintsRequiresResourceManagerFactory(t *testing.T) {
	opts := pass.NewOptions(Specs...)
	require.NoError(t, opts.Set("resource_constraints", "true"))
	p, err := NewPass(opts)
	require.NoError(t, err)

	k := newTestKernel(t, 1)
	require.NoError(t, k.AddGate(gate.New("x", []int{0}, nil, nil, 20)))

	ctx := &pass.Context{Platform: testPlatform(t, 1)}
	_, err = p.Run(nil, k, ctx)
	assert.Error(t, err)
}
