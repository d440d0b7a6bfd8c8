package resource

import (
	"github.com/openql-go/openql/ir/gate"
	"github.com/openql-go/openql/ir/platform"
)

// Factory builds one direction-specific Resource instance, e.g.
// func(dir Direction) Resource { return NewQubit(qubitCount, dir) }.
type Factory func(dir Direction) Resource

// Manager holds one Factory per resource name, read from a platform
// configuration (§4.2 "resources are composed into a resource manager
// keyed by resource name"). It is stateless; State is built fresh per
// scheduling run.
type Manager struct {
	factories map[string]Factory
}

// NewManager returns an empty manager. Register factories with Add.
func NewManager() *Manager {
	return &Manager{factories: make(map[string]Factory)}
}

// Add registers a resource factory under name.
func (m *Manager) Add(name string, f Factory) {
	m.factories[name] = f
}

// Build constructs a fresh State for the given direction, calling each
// registered factory for a new resource instance.
func (m *Manager) Build(dir Direction) *State {
	resources := make(map[string]Resource, len(m.factories))
	for name, f := range m.factories {
		resources[name] = f(dir)
	}
	return &State{resources: resources}
}

// State bundles one live resource per name for a single scheduling
// run; it is owned exclusively by that run and discarded with it (§5).
type State struct {
	resources map[string]Resource
}

// Available reports whether every registered resource permits g to
// start at startCycle. Gates that never consume resources (§4.3:
// sentinels, dummies, classical, wait) are always available.
func (s *State) Available(startCycle int, g *gate.Gate, p *platform.Platform) bool {
	if !g.ConsumesResources() {
		return true
	}
	for _, r := range s.resources {
		if !r.Available(startCycle, g, p) {
			return false
		}
	}
	return true
}

// Reserve commits g's occupation across every registered resource.
// Gates that never consume resources are a no-op.
func (s *State) Reserve(startCycle int, g *gate.Gate, p *platform.Platform) {
	if !g.ConsumesResources() {
		return
	}
	for _, r := range s.resources {
		r.Reserve(startCycle, g, p)
	}
}

// Clone returns an independent copy of the state.
func (s *State) Clone() *State {
	cp := make(map[string]Resource, len(s.resources))
	for name, r := range s.resources {
		cp[name] = r.Clone()
	}
	return &State{resources: cp}
}
