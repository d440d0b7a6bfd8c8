package scheduler

import (
	"fmt"

	"github.com/openql-go/openql/depgraph"
	"github.com/openql-go/openql/ir/kernel"
	"github.com/openql-go/openql/pass"
)

// ErrUniformWithResourceConstraints is the §6/§7 user/configuration
// error: "scheduler_target=uniform is combined with
// resource_constraints=true" must be rejected before scheduling runs,
// never silently ignored.
var ErrUniformWithResourceConstraints = fmt.Errorf("scheduler: scheduler_target=uniform requires resource_constraints=false")

// Specs declares this pass's option surface, taken from §6's table
// (the universal "skip" option is added separately by the pass manager
// for every registered pass type). write_dot_graphs is not declared.
var Specs = []pass.Spec{
	{Name: "resource_constraints", Description: "enable resource-aware scheduling", Kind: pass.Bool, Default: "false"},
	{Name: "scheduler_target", Description: "asap / alap / uniform", Kind: pass.Enum, Default: "asap", Allowed: []string{"asap", "alap", "uniform"}},
	{Name: "scheduler_heuristic", Description: "path_length / random", Kind: pass.Enum, Default: "path_length", Allowed: []string{"path_length", "random"}},
	{Name: "commute_multi_qubit", Description: "allow CZ/CNOT commutation in the dependency graph", Kind: pass.Bool, Default: "false"},
	{Name: "commute_single_qubit", Description: "allow X/Z rotation commutation", Kind: pass.Bool, Default: "false"},
}

// Pass wraps this package's scheduling algorithms as a pass.KernelTransform
// (§4.5), driven entirely by the option values frozen at construction.
type Pass struct {
	resourceConstraints bool
	target              string
	heuristic           string
	commuteMultiQubit   bool
	commuteSingleQubit  bool
}

// NewPass validates opts per §6/§7 and returns a Pass ready to run.
// The uniform+resource_constraints combination is rejected here,
// before any kernel is touched, so a bad configuration never partially
// schedules a program.
func NewPass(opts *pass.Options) (*Pass, error) {
	resourceConstraints, err := opts.Bool("resource_constraints")
	if err != nil {
		return nil, err
	}
	target, err := opts.String("scheduler_target")
	if err != nil {
		return nil, err
	}
	heuristic, err := opts.String("scheduler_heuristic")
	if err != nil {
		return nil, err
	}
	commuteMultiQubit, err := opts.Bool("commute_multi_qubit")
	if err != nil {
		return nil, err
	}
	commuteSingleQubit, err := opts.Bool("commute_single_qubit")
	if err != nil {
		return nil, err
	}

	if target == "uniform" && resourceConstraints {
		return nil, ErrUniformWithResourceConstraints
	}

	return &Pass{
		resourceConstraints: resourceConstraints,
		target:              target,
		heuristic:           heuristic,
		commuteMultiQubit:   commuteMultiQubit,
		commuteSingleQubit:  commuteSingleQubit,
	}, nil
}

// Run implements pass.KernelTransform: it builds k's dependency graph
// under the configured commutation options, then schedules it with the
// configured target/resource-constraint combination. It always returns
// 0 on success; scheduling failures surface as panics per §7's internal
// invariant taxonomy (a correctly built graph cannot fail to schedule).
func (p *Pass) Run(prog pass.Program, k *kernel.Kernel, ctx *pass.Context) (int, error) {
	g := depgraph.Build(k, depgraph.CommuteMultiQubit(p.commuteMultiQubit), depgraph.CommuteSingleQubit(p.commuteSingleQubit))

	if p.resourceConstraints {
		if ctx.ResourceManager == nil {
			return 0, fmt.Errorf("scheduler: resource_constraints=true requires a resource manager factory in the pass context")
		}
		rm := ctx.ResourceManager(ctx.Platform)
		dir := Forward
		if p.target == "alap" {
			dir = Backward
		}
		h := PathLength
		if p.heuristic == "random" {
			h = Random
		}
		Schedule(k, g, ctx.Platform, rm, dir, Options{Heuristic: h})
		return 0, nil
	}

	switch p.target {
	case "alap":
		AssignALAP(k, g)
	case "uniform":
		AssignUniform(k, g)
	default:
		AssignASAP(k, g)
	}
	return 0, nil
}
