package passmgr

import (
	"fmt"

	"github.com/openql-go/openql/ir/platform"
)

// PipelineFunc maps a platform's eqasm_compiler_name to the default
// pass pipeline for that target. The mapping itself lives outside this
// core, in caller-supplied platform configuration (§4.6 "Defaults");
// passmgr only provides the hook that applies whatever the caller
// resolves.
type PipelineFunc func(eqasmCompilerName string) ([]ChildSpec, error)

// NewFromPlatform builds a Manager for p and populates its root group
// from the pipeline pipeline resolves for p.EqasmCompilerName (§4.6
// "From a platform, the manager can synthesize a default pipeline keyed
// by the platform's eqasm_compiler_name").
func NewFromPlatform(p *platform.Platform, registerTypes func(*Manager), pipeline PipelineFunc) (*Manager, error) {
	m := NewManager(p)
	if registerTypes != nil {
		registerTypes(m)
	}

	specs, err := pipeline(p.EqasmCompilerName)
	if err != nil {
		return nil, fmt.Errorf("passmgr: resolving default pipeline for %q: %w", p.EqasmCompilerName, err)
	}
	for _, cs := range specs {
		if _, err := m.Root().AppendSubPass(cs.TypeName, cs.Name, cs.Options); err != nil {
			return nil, err
		}
	}
	return m, nil
}
