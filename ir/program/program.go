// Package program defines the compilation unit a pass manager runs
// over: an ordered set of kernels compiled against one platform. It
// generalizes the teacher's qc/circuit.Circuit (a single-DAG view over
// one kernel) to the multi-kernel granularity §4.5/§4.6 assume when
// they distinguish ProgramTransform from KernelTransform.
package program

import (
	"fmt"

	"github.com/openql-go/openql/ir/kernel"
	"github.com/openql-go/openql/ir/platform"
)

// Program is the minimal concrete type satisfying pass.Program: an
// ordered list of kernels plus the platform they were built against.
// passmgr and its callers (cmd/openqlc, internal/compileserver) own
// this type; pass itself only depends on the Kernels() interface so
// passes never import program.
type Program struct {
	Name     string
	Platform *platform.Platform
	kernels  []*kernel.Kernel
}

// New returns an empty program over p.
func New(name string, p *platform.Platform) *Program {
	return &Program{Name: name, Platform: p}
}

// AddKernel appends k, validating it was built against the same
// qubit/creg/breg bounds as the program's platform.
func (pr *Program) AddKernel(k *kernel.Kernel) error {
	if pr.Platform != nil {
		if k.QubitCount != pr.Platform.QubitCount {
			return fmt.Errorf("program: kernel %q has %d qubits, platform has %d", k.Name, k.QubitCount, pr.Platform.QubitCount)
		}
		if k.CregCount != pr.Platform.CregCount || k.BregCount != pr.Platform.BregCount {
			return fmt.Errorf("program: kernel %q creg/breg counts do not match platform", k.Name)
		}
	}
	pr.kernels = append(pr.kernels, k)
	return nil
}

// Kernels returns the program's kernels in compilation order, the
// surface pass.Program requires.
func (pr *Program) Kernels() []*kernel.Kernel {
	return append([]*kernel.Kernel(nil), pr.kernels...)
}

// KernelByName returns the first kernel named name, or nil.
func (pr *Program) KernelByName(name string) *kernel.Kernel {
	for _, k := range pr.kernels {
		if k.Name == name {
			return k
		}
	}
	return nil
}
