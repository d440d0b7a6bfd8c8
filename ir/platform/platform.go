// Package platform describes the read-only hardware target consumed by the
// scheduler. The scheduler never mutates a Platform (§3).
package platform

import "fmt"

// ResourceDescriptor names one resource the platform exposes and the
// parameters needed to build it (§4.2). Kind selects the concrete
// resource.State entry the resource manager constructs; Params carries
// kind-specific configuration (e.g. the qubit->instrument map for a
// shared instrument).
type ResourceDescriptor struct {
	Name   string
	Kind   string // "qubit" or "shared_instrument"
	Params map[string]any
}

// Platform is the compile-time hardware descriptor (§6 Platform contract).
type Platform struct {
	QubitCount int
	CregCount  int
	BregCount  int
	CycleTime  int // nanoseconds per cycle, positive

	// EqasmCompilerName, when non-empty, selects a default pass pipeline
	// (§4.6 "Defaults"); resolving the name to a pipeline is outside this
	// core and left to the caller-supplied factory in passmgr.
	EqasmCompilerName string

	Resources []ResourceDescriptor
}

// New validates and returns a Platform descriptor.
func New(qubitCount, cregCount, bregCount, cycleTimeNS int) (*Platform, error) {
	if qubitCount <= 0 {
		return nil, fmt.Errorf("platform: qubit count must be positive, got %d", qubitCount)
	}
	if cregCount < 0 || bregCount < 0 {
		return nil, fmt.Errorf("platform: creg/breg counts must be non-negative")
	}
	if cycleTimeNS <= 0 {
		return nil, fmt.Errorf("platform: cycle time must be positive, got %d", cycleTimeNS)
	}
	return &Platform{
		QubitCount: qubitCount,
		CregCount:  cregCount,
		BregCount:  bregCount,
		CycleTime:  cycleTimeNS,
	}, nil
}

// WithResources attaches resource descriptors and returns the same platform.
func (p *Platform) WithResources(rs ...ResourceDescriptor) *Platform {
	p.Resources = append(p.Resources, rs...)
	return p
}

// Cycles converts a duration in nanoseconds to a cycle count under this
// platform's cycle time (ceil).
func (p *Platform) Cycles(durationNS int) int {
	if durationNS <= 0 {
		return 0
	}
	return (durationNS + p.CycleTime - 1) / p.CycleTime
}
