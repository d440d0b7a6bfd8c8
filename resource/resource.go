// Package resource implements the scheduler's resource model (§4.2):
// qubit occupation and shared-instrument (e.g. readout unit) occupation,
// queried and reserved cycle by cycle as the list scheduler runs.
package resource

import (
	"github.com/openql-go/openql/ir/gate"
	"github.com/openql-go/openql/ir/platform"
)

// Direction is the scheduling direction a resource.State was built
// for; it determines both the initial occupation values and which
// side of a reservation interval "available" checks.
type Direction int

const (
	Forward Direction = iota
	Backward
)

// MaxCycle seeds Backward-direction resources: "no reservation yet"
// reads as "busy from the far future", symmetric with Forward's zero.
const MaxCycle = 1 << 30

// Resource is one constraint the list scheduler checks before
// committing a gate to a cycle (§4.2).
type Resource interface {
	// Name identifies the resource, e.g. for error messages.
	Name() string
	// Available reports whether g may start at startCycle without
	// violating this resource.
	Available(startCycle int, g *gate.Gate, p *platform.Platform) bool
	// Reserve commits g's occupation of this resource starting at
	// startCycle. Callers must call Available first; Reserve does not
	// recheck.
	Reserve(startCycle int, g *gate.Gate, p *platform.Platform)
	// Clone returns an independent copy of the resource's current
	// occupation state.
	Clone() Resource
}
