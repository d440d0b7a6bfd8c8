package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/openql-go/openql/bundler"
	"github.com/openql-go/openql/internal/compileserver"
	"github.com/openql-go/openql/ir/gate"
	"github.com/openql-go/openql/ir/kernel"
	"github.com/openql-go/openql/ir/platform"
	"github.com/openql-go/openql/pass"
	"github.com/openql-go/openql/resource"
	"github.com/openql-go/openql/scheduler"
)

func newCompileCmd() *cobra.Command {
	var dumpSchedule bool
	cmd := &cobra.Command{
		Use:   "compile <request.json>",
		Short: "Schedule every kernel in a compile request and print its depth",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCompile(cmd, args[0], dumpSchedule)
		},
	}
	cmd.Flags().BoolVar(&dumpSchedule, "dump-schedule", false,
		"also print each kernel's per-cycle bundle text, the way bundler.Text renders a schedule")
	return cmd
}

// runCompile decodes path as a compileserver.CompileRequest (the same
// JSON shape POST /compile accepts) and runs it through the scheduler
// pass directly, without starting an HTTP server — the CLI and the
// HTTP front-end are two collaborators over the same core, not one
// wrapping the other.
func runCompile(cmd *cobra.Command, path string, dumpSchedule bool) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("openqlc: reading %s: %w", path, err)
	}

	var req compileserver.CompileRequest
	if err := json.Unmarshal(data, &req); err != nil {
		return fmt.Errorf("openqlc: parsing %s: %w", path, err)
	}

	schedPass, err := buildSchedulerPass(req)
	if err != nil {
		return err
	}

	plat, err := platform.New(req.QubitCount, req.CregCount, req.BregCount, req.CycleTimeNS)
	if err != nil {
		return err
	}

	ctx := &pass.Context{Platform: plat}
	if req.ResourceConstraints {
		ctx.ResourceManager = func(p *platform.Platform) *resource.Manager {
			rm := resource.NewManager()
			rm.Add("qubits", func(dir resource.Direction) resource.Resource {
				return resource.NewQubit(p.QubitCount, dir)
			})
			return rm
		}
	}

	out := cmd.OutOrStdout()
	for _, kr := range req.Kernels {
		k, err := kernel.New(kr.Name, req.QubitCount, req.CregCount, req.BregCount, req.CycleTimeNS)
		if err != nil {
			return err
		}
		for _, gr := range kr.Gates {
			if err := k.AddGate(gate.New(gr.Name, gr.Qubits, gr.Cregs, gr.Bregs, gr.DurationNS)); err != nil {
				return fmt.Errorf("openqlc: kernel %q: %w", kr.Name, err)
			}
		}

		if _, err := schedPass.Run(nil, k, ctx); err != nil {
			return fmt.Errorf("openqlc: scheduling %q: %w", kr.Name, err)
		}

		bundles := bundler.Build(k)
		fmt.Fprintf(out, "%s: depth=%d\n", k.Name, bundler.Depth(bundles))
		if dumpSchedule {
			fmt.Fprintln(out, bundler.Text(bundles, "wait"))
		}
	}
	return nil
}

// buildSchedulerPass mirrors compileserver.buildSchedulerPass: both
// turn a CompileRequest's scheduler fields into a frozen pass.Options
// set and construct a scheduler.Pass from it. Kept as two small copies
// rather than one shared exported helper — the CLI and the HTTP
// handler are expected to diverge here once one of them grows
// surface the other doesn't need (e.g. the CLI picking up a
// --pipeline-file flag for passmgr-driven pipelines).
func buildSchedulerPass(req compileserver.CompileRequest) (*scheduler.Pass, error) {
	opts := pass.NewOptions(scheduler.Specs...)
	if req.SchedulerTarget != "" {
		if err := opts.Set("scheduler_target", req.SchedulerTarget); err != nil {
			return nil, err
		}
	}
	if req.SchedulerHeuristic != "" {
		if err := opts.Set("scheduler_heuristic", req.SchedulerHeuristic); err != nil {
			return nil, err
		}
	}
	if err := opts.Set("resource_constraints", boolString(req.ResourceConstraints)); err != nil {
		return nil, err
	}
	if err := opts.Set("commute_multi_qubit", boolString(req.CommuteMultiQubit)); err != nil {
		return nil, err
	}
	if err := opts.Set("commute_single_qubit", boolString(req.CommuteSingleQubit)); err != nil {
		return nil, err
	}
	return scheduler.NewPass(opts)
}

func boolString(b bool) string {
	if b {
		return "true"
	}
	return "false"
}
