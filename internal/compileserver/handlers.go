package compileserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/openql-go/openql/bundler"
	"github.com/openql-go/openql/ir/gate"
	"github.com/openql-go/openql/ir/kernel"
	"github.com/openql-go/openql/ir/platform"
	"github.com/openql-go/openql/pass"
	"github.com/openql-go/openql/resource"
	"github.com/openql-go/openql/scheduler"
)

// GateRequest is one operation inside a KernelRequest, the JSON
// analogue of the teacher's CircuitRequest.Circuit.Gates entry.
type GateRequest struct {
	Name       string `json:"name"`
	Qubits     []int  `json:"qubits"`
	Cregs      []int  `json:"cregs"`
	Bregs      []int  `json:"bregs"`
	DurationNS int    `json:"duration_ns"`
}

// KernelRequest describes one kernel to compile.
type KernelRequest struct {
	Name  string        `json:"name"`
	Gates []GateRequest `json:"gates"`
}

// CompileRequest is the POST /compile body: a platform descriptor, one
// or more kernels, and the §6 scheduler pass options, generalizing the
// teacher's CircuitRequest to the compiler-core domain.
type CompileRequest struct {
	QubitCount          int             `json:"qubit_count"`
	CregCount           int             `json:"creg_count"`
	BregCount           int             `json:"breg_count"`
	CycleTimeNS         int             `json:"cycle_time_ns"`
	Kernels             []KernelRequest `json:"kernels"`
	SchedulerTarget     string          `json:"scheduler_target"`
	SchedulerHeuristic  string          `json:"scheduler_heuristic"`
	ResourceConstraints bool            `json:"resource_constraints"`
	CommuteMultiQubit   bool            `json:"commute_multi_qubit"`
	CommuteSingleQubit  bool            `json:"commute_single_qubit"`
}

// KernelResult is one compiled kernel's output: its bundled text
// rendering and depth, the two output artifacts §6 names that this
// front-end can return inline rather than as files on disk.
type KernelResult struct {
	Name  string `json:"name"`
	Depth int    `json:"depth"`
	Text  string `json:"text"`
}

// CompileResponse is the POST /compile success body.
type CompileResponse struct {
	Kernels []KernelResult `json:"kernels"`
}

func (s *compileServer) handleHealth(c *gin.Context) {
	loggerFromContext(c).Debug().Msg("serving health endpoint")
	c.String(http.StatusOK, "OK")
}

func (s *compileServer) handleCompile(c *gin.Context) {
	l := loggerFromContext(c)

	var req CompileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		l.Warn().Err(err).Msg("binding compile request failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}

	schedPass, err := buildSchedulerPass(req)
	if err != nil {
		l.Warn().Err(err).Msg("invalid scheduler configuration")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	plat, err := platform.New(req.QubitCount, req.CregCount, req.BregCount, req.CycleTimeNS)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
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

	results := make([]KernelResult, 0, len(req.Kernels))
	for _, kr := range req.Kernels {
		k, err := buildKernel(kr, req.QubitCount, req.CregCount, req.BregCount, req.CycleTimeNS)
		if err != nil {
			l.Warn().Err(err).Str("kernel", kr.Name).Msg("building kernel failed")
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		if _, err := schedPass.Run(nil, k, ctx); err != nil {
			l.Error().Err(err).Str("kernel", kr.Name).Msg("scheduling failed")
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		bundles := bundler.Build(k)
		results = append(results, KernelResult{
			Name:  k.Name,
			Depth: bundler.Depth(bundles),
			Text:  bundler.Text(bundles, "wait"),
		})
	}

	c.JSON(http.StatusOK, CompileResponse{Kernels: results})
}

func buildSchedulerPass(req CompileRequest) (*scheduler.Pass, error) {
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

func buildKernel(kr KernelRequest, qubitCount, cregCount, bregCount, cycleTimeNS int) (*kernel.Kernel, error) {
	k, err := kernel.New(kr.Name, qubitCount, cregCount, bregCount, cycleTimeNS)
	if err != nil {
		return nil, err
	}
	for _, gr := range kr.Gates {
		if err := k.AddGate(gate.New(gr.Name, gr.Qubits, gr.Cregs, gr.Bregs, gr.DurationNS)); err != nil {
			return nil, err
		}
	}
	return k, nil
}
