package scheduler

import (
	"sort"

	"github.com/openql-go/openql/ir/gate"
)

// stableSortByCycle orders gates by cycle, preserving relative order
// of equal-cycle gates (§5 "Ordering guarantees": within a bundle, the
// relative order of gates is the original insertion order).
func stableSortByCycle(gates []*gate.Gate) {
	sort.SliceStable(gates, func(i, j int) bool {
		return gates[i].Cycle < gates[j].Cycle
	})
}
