// Package options completes the teacher's dangling internal/config
// import (internal/app's ServerOptions.C was never backed by a real
// package) as the process-wide options registry named in §5 and the
// Design Notes: "a global mutable options store... kept for backward
// compatibility at the API boundary". The scheduler and pass manager
// core never read it directly; per Design Notes, options are threaded
// explicitly through pass.Context. It exists solely so public entry
// points (cmd/openqlc, passmgr.NewFromPlatform) can seed per-pass
// options from one process-wide source, the way the teacher's
// (dangling) config.Config was meant to seed ServerOptions.
package options

import (
	"fmt"
	"sync"

	"github.com/spf13/viper"
)

// Registry is a flat string-valued key/value store, set once at
// startup and read-only thereafter except for test seeding (§1.2).
type Registry struct {
	mu     sync.RWMutex
	values map[string]string
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{values: make(map[string]string)}
}

// Load populates the registry from a YAML/JSON config file via viper,
// following the teacher's use of github.com/spf13/viper (declared in
// go.mod but never wired to a config package). An empty path is not
// an error: the registry simply starts empty, all lookups reporting
// !ok until Set is called. A non-empty path naming a file that cannot
// be read is an error.
func Load(path string) (*Registry, error) {
	r := NewRegistry()
	if path == "" {
		return r, nil
	}

	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("options: reading %s: %w", path, err)
	}

	var flat map[string]any
	if err := v.Unmarshal(&flat); err != nil {
		return nil, fmt.Errorf("options: unmarshaling %s: %w", path, err)
	}
	for k, val := range flat {
		r.values[k] = fmt.Sprintf("%v", val)
	}
	return r, nil
}

// Set stores value under name, used only at startup / by tests (§1.2
// "Registry.Set(name, value string) error — used only at startup / by
// tests").
func (r *Registry) Set(name, value string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.values[name] = value
	return nil
}

// StringOpt returns name's raw value and whether it was present.
func (r *Registry) StringOpt(name string) (string, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	v, ok := r.values[name]
	return v, ok
}

// IntOpt returns name's value parsed as an int.
func (r *Registry) IntOpt(name string) (int, bool) {
	v, ok := r.StringOpt(name)
	if !ok {
		return 0, false
	}
	var n int
	if _, err := fmt.Sscanf(v, "%d", &n); err != nil {
		return 0, false
	}
	return n, true
}

// BoolOpt returns name's value parsed as a bool ("true"/"false").
func (r *Registry) BoolOpt(name string) (bool, bool) {
	v, ok := r.StringOpt(name)
	if !ok {
		return false, false
	}
	return v == "true", true
}

var (
	globalOnce sync.Once
	global     *Registry
)

// Global returns the package-level, set-once-at-startup registry
// (§1.2). Its first call without a prior SetGlobal initializes it
// empty; SetGlobal installs a loaded registry in its place.
func Global() *Registry {
	globalOnce.Do(func() {
		if global == nil {
			global = NewRegistry()
		}
	})
	return global
}

// SetGlobal installs r as the process-wide registry. It must be called
// before any other goroutine calls Global, matching §5's "set-once at
// startup" lifecycle.
func SetGlobal(r *Registry) {
	global = r
}
