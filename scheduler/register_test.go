package scheduler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openql-go/openql/internal/testutil"
	"github.com/openql-go/openql/passmgr"
)

func TestRegisterMakesSchedulerTypeAppendable(t *testing.T) {
	p := testutil.NewPlatform(t, 2)
	m := passmgr.NewManager(p)
	Register(m)

	sched, err := m.Root().AppendSubPass(TypeName, "sched", nil)
	require.NoError(t, err)
	assert.NotNil(t, sched)
}

func TestRegisterRejectsUniformWithResourceConstraintsAtConstructTime(t *testing.T) {
	p := testutil.NewPlatform(t, 2)
	m := passmgr.NewManager(p)
	Register(m)

	_, err := m.Root().AppendSubPass(TypeName, "sched", map[string]string{
		"scheduler_target":     "uniform",
		"resource_constraints": "true",
	})
	require.NoError(t, err)

	err = m.Root().Construct()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUniformWithResourceConstraints)
}

func TestRegisteredSchedulerPassRunsDuringCompile(t *testing.T) {
	p := testutil.NewPlatform(t, 2)
	m := passmgr.NewManager(p)
	Register(m)

	_, err := m.Root().AppendSubPass(TypeName, "sched", nil)
	require.NoError(t, err)

	k := testutil.NewBellStateKernel(t)
	prog := testutil.NewProgram(t, "prog", 2, k)

	failed, err := m.Compile(prog)
	require.NoError(t, err)
	assert.Equal(t, 0, failed)

	gates := k.Gates()
	require.NotEmpty(t, gates)
	assert.GreaterOrEqual(t, gates[len(gates)-1].Cycle, 1)
}
