package scheduler

import (
	"github.com/openql-go/openql/pass"
	"github.com/openql-go/openql/passmgr"
)

// TypeName is this package's registered pass-type name, used both by
// Register and by any pipeline/config that names a scheduler instance
// via append_sub_pass (§4.6).
const TypeName = "scheduler"

// Register installs this package's pass type into m under TypeName,
// adapting NewPass's (*Pass, error) return into the
// passmgr.ConstructResult a Factory must produce. Callers pass this (or
// a closure composing it with other packages' Register funcs) as the
// registerTypes argument to passmgr.NewFromPlatform.
func Register(m *passmgr.Manager) {
	m.RegisterType(TypeName, Specs, func(opts *pass.Options) (passmgr.ConstructResult, error) {
		p, err := NewPass(opts)
		if err != nil {
			return passmgr.ConstructResult{}, err
		}
		return passmgr.ConstructResult{Leaf: p}, nil
	})
}
