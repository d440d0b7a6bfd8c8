package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDescribePassPrintsSchedulerOptionTable(t *testing.T) {
	cmd := newDescribePassCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"scheduler"})
	require.NoError(t, cmd.Execute())

	for _, name := range []string{
		"resource_constraints",
		"scheduler_target",
		"scheduler_heuristic",
		"commute_multi_qubit",
		"commute_single_qubit",
	} {
		assert.Contains(t, out.String(), name)
	}
	assert.Contains(t, out.String(), "allowed=asap|alap|uniform")
}

func TestDescribePassRejectsUnknownType(t *testing.T) {
	cmd := newDescribePassCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{"nonexistent"})
	assert.Error(t, cmd.Execute())
}
