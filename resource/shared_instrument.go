package resource

import (
	"github.com/openql-go/openql/ir/gate"
	"github.com/openql-go/openql/ir/platform"
)

// UsesFunc decides whether g engages a shared instrument at all (e.g.
// "is this a readout gate"). Gates that don't use the instrument never
// block or reserve it.
type UsesFunc func(g *gate.Gate) bool

// SharedInstrument models hardware shared by several qubits (e.g. a
// readout unit) where co-issued gates starting in the same cycle may
// share the instrument, but a later gate must wait for the current
// co-issued group to finish (§4.2 "Shared-instrument resource"),
// grounded on original_source's cc_resource_meas.
type SharedInstrument struct {
	name       string
	dir        Direction
	qubitToIns map[int]int
	uses       UsesFunc
	fromCycle  []int
	toCycle    []int
}

// NewSharedInstrument builds a fresh instance with instrumentCount
// independent instruments, mapping each qubit to its instrument index.
func NewSharedInstrument(name string, dir Direction, instrumentCount int, qubitToIns map[int]int, uses UsesFunc) *SharedInstrument {
	val := 0
	if dir == Backward {
		val = MaxCycle
	}
	from := make([]int, instrumentCount)
	to := make([]int, instrumentCount)
	for i := range from {
		from[i] = val
		to[i] = val
	}
	m := make(map[int]int, len(qubitToIns))
	for k, v := range qubitToIns {
		m[k] = v
	}
	return &SharedInstrument{name: name, dir: dir, qubitToIns: m, uses: uses, fromCycle: from, toCycle: to}
}

func (s *SharedInstrument) Name() string { return s.name }

func (s *SharedInstrument) Available(startCycle int, g *gate.Gate, p *platform.Platform) bool {
	if !s.uses(g) {
		return true
	}
	for _, operand := range g.Qubits {
		ins := s.qubitToIns[operand]
		if s.dir == Forward {
			if startCycle != s.fromCycle[ins] && startCycle < s.toCycle[ins] {
				return false
			}
		} else {
			if startCycle != s.fromCycle[ins] {
				duration := p.Cycles(g.Duration)
				if startCycle+duration > s.fromCycle[ins] {
					return false
				}
			}
		}
	}
	return true
}

func (s *SharedInstrument) Reserve(startCycle int, g *gate.Gate, p *platform.Platform) {
	if !s.uses(g) {
		return
	}
	duration := p.Cycles(g.Duration)
	for _, operand := range g.Qubits {
		ins := s.qubitToIns[operand]
		s.fromCycle[ins] = startCycle
		s.toCycle[ins] = startCycle + duration
	}
}

func (s *SharedInstrument) Clone() Resource {
	from := make([]int, len(s.fromCycle))
	to := make([]int, len(s.toCycle))
	copy(from, s.fromCycle)
	copy(to, s.toCycle)
	qm := make(map[int]int, len(s.qubitToIns))
	for k, v := range s.qubitToIns {
		qm[k] = v
	}
	return &SharedInstrument{name: s.name, dir: s.dir, qubitToIns: qm, uses: s.uses, fromCycle: from, toCycle: to}
}
