package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeRequest(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "request.json")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

const bellRequest = `{
	"qubit_count": 2,
	"cycle_time_ns": 20,
	"kernels": [{
		"name": "bell",
		"gates": [
			{"name": "h", "qubits": [0], "duration_ns": 20},
			{"name": "cnot", "qubits": [0, 1], "duration_ns": 20},
			{"name": "measure", "qubits": [0], "duration_ns": 20},
			{"name": "measure", "qubits": [1], "duration_ns": 20}
		]
	}]
}`

func TestCompileCommandPrintsDepth(t *testing.T) {
	path := writeRequest(t, bellRequest)

	cmd := newCompileCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{path})
	require.NoError(t, cmd.Execute())

	assert.Contains(t, out.String(), "bell: depth=")
}

func TestCompileCommandDumpScheduleIncludesBundleText(t *testing.T) {
	path := writeRequest(t, bellRequest)

	cmd := newCompileCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"--dump-schedule", path})
	require.NoError(t, cmd.Execute())

	assert.Contains(t, out.String(), "bell: depth=")
	assert.Greater(t, len(out.String()), len("bell: depth=0\n"))
}

func TestCompileCommandRejectsUniformWithResourceConstraints(t *testing.T) {
	path := writeRequest(t, `{
		"qubit_count": 2,
		"cycle_time_ns": 20,
		"scheduler_target": "uniform",
		"resource_constraints": true,
		"kernels": [{"name": "k", "gates": []}]
	}`)

	cmd := newCompileCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{path})
	err := cmd.Execute()
	assert.Error(t, err)
}

func TestCompileCommandRejectsMissingFile(t *testing.T) {
	cmd := newCompileCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{filepath.Join(t.TempDir(), "missing.json")})
	assert.Error(t, cmd.Execute())
}
