// Package pass defines the three pass abstractions the pass manager
// drives, and the typed option record every pass declares its
// configuration surface through (§4.5).
package pass

import (
	"fmt"

	"github.com/openql-go/openql/ir/kernel"
	"github.com/openql-go/openql/ir/platform"
	"github.com/openql-go/openql/resource"
)

// Context carries what a running pass needs besides the program/kernel
// it operates on: where to write side files, its own fully-qualified
// name for logging, and a factory for building a resource manager from
// the platform in scope (§4.5).
type Context struct {
	OutputPrefix    string
	Name            string
	Platform        *platform.Platform
	ResourceManager func(p *platform.Platform) *resource.Manager

	// RunID identifies the Manager.Compile invocation this pass is
	// running under, threading through every log line the way the
	// teacher's qservice request ID threads through an HTTP request.
	RunID string
}

// Program is the minimal surface a ProgramTransform/Analysis needs: the
// ordered kernels that make up a compilation unit. ir/program provides
// the concrete program type; pass only depends on this interface so
// passes never import passmgr.
type Program interface {
	Kernels() []*kernel.Kernel
}

// ProgramTransform runs once per compilation, over the whole program
// (§4.5). Run returns a non-zero count to signal a fatal failure (§4.6
// "Compilation": "any non-zero from a transformation is treated as a
// fatal pass failure").
type ProgramTransform interface {
	Run(p Program, ctx *Context) (int, error)
}

// KernelTransform runs once per kernel in the program (§4.5).
type KernelTransform interface {
	Run(p Program, k *kernel.Kernel, ctx *Context) (int, error)
}

// Analysis is the read-only variant of either transform kind: it may
// inspect the program/kernel and log findings, but must not mutate
// gate state (§4.5 "a read-only variant of either").
type Analysis interface {
	Analyze(p Program, ctx *Context) error
}

// IsPlatformTransformer is implemented by passes that rewrite top-level
// platform state (e.g. resource descriptors), so the pass manager knows
// to invalidate any cached platform-derived state after they run (§4.6
// "Compilation").
type IsPlatformTransformer interface {
	IsPlatformTransformer() bool
}

// ErrOptionFrozen is returned by Options.Set once the owning pass has
// been constructed: "options freeze when the pass is constructed"
// (§4.5, §4.6).
var ErrOptionFrozen = fmt.Errorf("pass: options are frozen after construct")

// ErrUnknownOption is returned by Options.Set and the String/Bool/Int
// accessors for a name no Spec declared.
var ErrUnknownOption = fmt.Errorf("pass: unknown option")

// ErrBadValue is returned by Options.Set when a value doesn't fit its
// option's Kind (out-of-bounds or non-numeric int, value not in an
// enum's Allowed list, unparsable bool).
var ErrBadValue = fmt.Errorf("pass: invalid option value")
