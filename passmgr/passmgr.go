// Package passmgr implements the hierarchical pass manager of §4.6: a
// tree of passes (each either a leaf wrapping one transformation, or a
// group of sub-passes with an optional condition), addressed by
// dotted, wildcard-capable paths, constructed and compiled in one
// depth-first pass over a program.
package passmgr

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/openql-go/openql/internal/logger"
	"github.com/openql-go/openql/ir/platform"
	"github.com/openql-go/openql/pass"
	"github.com/openql-go/openql/resource"
)

// ChildSpec describes one sub-pass to instantiate: its registered
// type, its instance name within the parent group, and the option
// values to apply before construction (§4.6 "append_sub_pass(type?,
// name?, opts)").
type ChildSpec struct {
	TypeName string
	Name     string
	Options  map[string]string
}

// ConstructResult is what a pass type's Factory returns when asked to
// construct an instance. Exactly one of Leaf or a non-empty Children
// is meaningful: a Leaf value makes this pass a leaf; a non-nil
// Children makes it "elect to become a group at runtime based on its
// options" (§4.6).
type ConstructResult struct {
	// Leaf is one of pass.ProgramTransform, pass.KernelTransform, or
	// pass.Analysis. Nil means this pass expands into Children instead.
	Leaf any

	// Children, when non-nil, are appended as this pass's sub-passes
	// and it becomes a group rather than a leaf.
	Children []ChildSpec

	// Condition, if non-nil, gates whether this pass (and, if it is a
	// group, its whole subtree) runs during compile (§4.6 "a container
	// of child passes with optional condition").
	Condition func() bool

	// IsPlatformTransformer marks passes that rewrite top-level
	// platform state, forcing cached platform-derived state to be
	// rebuilt after they run (§4.6 "Compilation").
	IsPlatformTransformer bool
}

// Factory builds one pass instance from its frozen-on-return option
// set (§4.5 "Options freeze when the pass is constructed").
type Factory func(opts *pass.Options) (ConstructResult, error)

// TypeDef is one registered pass type: its declared options and the
// factory that constructs an instance from them.
type TypeDef struct {
	Specs   []pass.Spec
	Factory Factory
}

// Pass is one node of the manager's tree: either a leaf (wraps a
// constructed transformation) or a group (a container of children,
// optionally conditional). The root of a Manager's tree is itself a
// Pass with an empty type name, constructed implicitly.
type Pass struct {
	mgr      *Manager
	parent   *Pass
	name     string
	typeName string
	opts     *pass.Options

	constructed bool
	condition   func() bool

	programLeaf           pass.ProgramTransform
	kernelLeaf            pass.KernelTransform
	analysisLeaf          pass.Analysis
	isPlatformTransformer bool

	children []*Pass
}

// Name returns this pass's own instance name (not fully qualified).
func (p *Pass) Name() string { return p.name }

// FullName returns the dot-separated path from the root to this pass,
// excluding the anonymous root container itself.
func (p *Pass) FullName() string {
	var segs []string
	for n := p; n != nil && n.parent != nil; n = n.parent {
		segs = append([]string{n.name}, segs...)
	}
	out := ""
	for i, s := range segs {
		if i > 0 {
			out += "."
		}
		out += s
	}
	return out
}

// Options returns this pass's option set, or nil for the anonymous
// root container.
func (p *Pass) Options() *pass.Options { return p.opts }

// Children returns a copy of this pass's current sub-pass list.
func (p *Pass) Children() []*Pass {
	return append([]*Pass(nil), p.children...)
}

func (p *Pass) isLeaf() bool {
	return p.programLeaf != nil || p.kernelLeaf != nil || p.analysisLeaf != nil
}

// Manager owns the pass tree's root group plus everything a pass
// Factory/Context needs to build instances: the registered pass
// types, the platform in scope, and a resource-manager factory (§4.5
// Context, §4.6 Structure).
type Manager struct {
	registry        map[string]TypeDef
	root            *Pass
	platform        *platform.Platform
	outputPrefix    string
	resourceManager func(p *platform.Platform) *resource.Manager
	log             *logger.Logger

	invalidations int // count of platform-cache-invalidation events, for tests/observability
}

// NewManager returns an empty manager rooted at an anonymous group.
func NewManager(p *platform.Platform) *Manager {
	m := &Manager{registry: make(map[string]TypeDef), platform: p}
	m.root = &Pass{mgr: m}
	return m
}

// SetLogger attaches the logger every pass entry/exit, skip decision,
// and platform-cache rebuild event is written through (§1.1). A nil
// logger (the default) disables this logging.
func (m *Manager) SetLogger(l *logger.Logger) { m.log = l }

// SetOutputPrefix sets the prefix every leaf's Context.OutputPrefix
// carries.
func (m *Manager) SetOutputPrefix(prefix string) { m.outputPrefix = prefix }

// SetResourceManagerFactory sets the factory every leaf's
// Context.ResourceManager carries.
func (m *Manager) SetResourceManagerFactory(f func(p *platform.Platform) *resource.Manager) {
	m.resourceManager = f
}

// RegisterType declares a pass type under name, available to
// AppendSubPass/PrefixSubPass/... and to pipeline synthesis.
func (m *Manager) RegisterType(name string, specs []pass.Spec, factory Factory) {
	m.registry[name] = TypeDef{Specs: specs, Factory: factory}
}

// Root returns the manager's root group.
func (m *Manager) Root() *Pass { return m.root }

// Invalidations returns how many times a platform-transforming pass
// has triggered a platform-cache rebuild so far (§4.6 "Compilation").
func (m *Manager) Invalidations() int { return m.invalidations }

func (m *Manager) newChild(parent *Pass, spec ChildSpec) (*Pass, error) {
	def, ok := m.registry[spec.TypeName]
	if !ok {
		return nil, fmt.Errorf("passmgr: unknown pass type %q", spec.TypeName)
	}
	opts := pass.NewOptions(withSkipOption(def.Specs)...)
	for k, v := range spec.Options {
		if err := opts.Set(k, v); err != nil {
			return nil, fmt.Errorf("passmgr: %s: %w", spec.Name, err)
		}
	}
	name := spec.Name
	if name == "" {
		name = spec.TypeName
	}
	return &Pass{mgr: m, parent: parent, name: name, typeName: spec.TypeName, opts: opts}, nil
}

// skipSpec is the universal per-pass flag every constructed pass gets
// in addition to its declared options (§4.6 "Per pass, if its skip
// option is set, emit a log line and proceed [to the next pass]").
var skipSpec = pass.Spec{Name: "skip", Description: "skip this pass during compile", Kind: pass.Bool, Default: "false"}

func withSkipOption(specs []pass.Spec) []pass.Spec {
	out := make([]pass.Spec, 0, len(specs)+1)
	out = append(out, skipSpec)
	out = append(out, specs...)
	return out
}

// Construct instantiates p (if not already constructed), freezing its
// options and possibly expanding it into a group, then recurses into
// its children. Idempotent: already-constructed nodes are left alone,
// so Construct can be called again after structural mutations add new
// sub-passes without re-running existing ones (§4.6 "After construct()
// the option set is frozen; sub-passes may still be added/reordered").
func (p *Pass) Construct() error {
	if p.constructed {
		return nil
	}
	p.constructed = true

	if p.typeName != "" {
		def, ok := p.mgr.registry[p.typeName]
		if !ok {
			return fmt.Errorf("passmgr: unknown pass type %q", p.typeName)
		}
		if p.opts == nil {
			p.opts = pass.NewOptions(withSkipOption(def.Specs)...)
		}
		result, err := def.Factory(p.opts)
		if err != nil {
			return fmt.Errorf("passmgr: constructing %q: %w", p.FullName(), err)
		}
		p.opts.Freeze()
		p.condition = result.Condition
		p.isPlatformTransformer = result.IsPlatformTransformer

		switch leaf := result.Leaf.(type) {
		case pass.ProgramTransform:
			p.programLeaf = leaf
		case pass.KernelTransform:
			p.kernelLeaf = leaf
		case pass.Analysis:
			p.analysisLeaf = leaf
		}

		for _, cs := range result.Children {
			child, err := p.mgr.newChild(p, cs)
			if err != nil {
				return err
			}
			p.children = append(p.children, child)
		}
	}

	for _, c := range p.children {
		if err := c.Construct(); err != nil {
			return err
		}
	}
	return nil
}

// Compile runs construct() on the root, then depth-first invokes each
// pass in order, accumulating the non-zero return of every
// transformation (§4.6 "Compilation"). A non-zero result from any
// single pass is treated as a fatal failure and aborts compilation.
// Every compilation is stamped with a fresh UUID that threads through
// every log line emitted while it runs, generalizing the teacher's
// qservice per-request ID.
func (m *Manager) Compile(prog pass.Program) (int, error) {
	if err := m.root.Construct(); err != nil {
		return 0, err
	}
	runID := uuid.Must(uuid.NewRandom()).String()
	return m.runSubtree(m.root, prog, runID)
}

func (m *Manager) runSubtree(p *Pass, prog pass.Program, runID string) (int, error) {
	if p.condition != nil && !p.condition() {
		return 0, nil
	}

	total := 0
	if p.opts != nil {
		skip, _ := p.opts.Bool("skip")
		if skip {
			if m.log != nil {
				m.log.SpawnForPass(p.FullName()).SpawnForRun(runID).Debug().Msg("skipped")
			}
			return 0, nil
		}
	}

	if p.isLeaf() {
		if m.log != nil {
			m.log.SpawnForPass(p.FullName()).SpawnForRun(runID).Debug().Msg("running")
		}
		ctx := &pass.Context{
			OutputPrefix:    m.outputPrefix,
			Name:            p.FullName(),
			Platform:        m.platform,
			ResourceManager: m.resourceManager,
			RunID:           runID,
		}
		n, err := p.runLeaf(prog, ctx)
		if err != nil {
			return 0, fmt.Errorf("passmgr: pass %q failed: %w", p.FullName(), err)
		}
		if n != 0 {
			return 0, fmt.Errorf("passmgr: pass %q returned non-zero result %d", p.FullName(), n)
		}
		total += n
		if p.isPlatformTransformer {
			m.invalidations++
			if m.log != nil {
				m.log.SpawnForPass(p.FullName()).SpawnForRun(runID).Debug().Msg("platform transformed, rebuilding cached state")
			}
		}
		if m.log != nil {
			m.log.SpawnForPass(p.FullName()).SpawnForRun(runID).Debug().Msg("done")
		}
	}

	for _, c := range p.children {
		n, err := m.runSubtree(c, prog, runID)
		if err != nil {
			return 0, err
		}
		total += n
	}
	return total, nil
}

func (p *Pass) runLeaf(prog pass.Program, ctx *pass.Context) (int, error) {
	switch {
	case p.programLeaf != nil:
		return p.programLeaf.Run(prog, ctx)
	case p.kernelLeaf != nil:
		total := 0
		for _, k := range prog.Kernels() {
			n, err := p.kernelLeaf.Run(prog, k, ctx)
			if err != nil {
				return total, err
			}
			total += n
		}
		return total, nil
	case p.analysisLeaf != nil:
		if err := p.analysisLeaf.Analyze(prog, ctx); err != nil {
			return 0, err
		}
		return 0, nil
	}
	return 0, nil
}
