// Package bundler groups a scheduled kernel's gates into cycle-aligned
// bundles and renders them as text, mirroring the scheduler's one true
// output format (§4.4).
package bundler

import (
	"fmt"

	"github.com/openql-go/openql/ir/gate"
	"github.com/openql-go/openql/ir/kernel"
)

// FirstCycle is the first valid cycle number a scheduled gate can
// carry; cycle 0 is reserved for the SOURCE sentinel, which never
// appears in a kernel's own gate list (§4.4, §3).
const FirstCycle = 1

// Bundle is the set of gates that start in the same cycle.
type Bundle struct {
	StartCycle       int
	DurationInCycles int
	Gates            []*gate.Gate
}

// Build groups k's scheduled gates into bundles ordered by start
// cycle, skipping WAIT and DUMMY gates (§4.4: "filler gates that exist
// only to anchor a dependency never appear in the bundled output").
// k.CyclesValid must be true; Build panics otherwise, since bundling
// an unscheduled kernel is an internal invariant violation (§7), not a
// user error.
func Build(k *kernel.Kernel) []Bundle {
	if !k.CyclesValid {
		panic("bundler: kernel has no valid schedule")
	}

	var bundles []Bundle
	var curr Bundle
	currCycle := 0
	curr.StartCycle = currCycle

	for _, gt := range k.Gates() {
		if gt.Typ == gate.Wait || gt.Typ == gate.Dummy {
			continue
		}
		if gt.Cycle < currCycle {
			panic("bundler: gates not ordered by cycle")
		}
		if gt.Cycle > currCycle {
			if len(curr.Gates) > 0 {
				bundles = append(bundles, curr)
			}
			currCycle = gt.Cycle
			curr = Bundle{StartCycle: currCycle}
		}
		curr.Gates = append(curr.Gates, gt)
		if c := gate.Cycles(gt.Duration, k.CycleTime); c > curr.DurationInCycles {
			curr.DurationInCycles = c
		}
	}
	if len(curr.Gates) > 0 {
		bundles = append(bundles, curr)
	}
	return bundles
}

// Circuit flattens bundles back into a cycle-ordered gate list, the
// inverse of Build (§4.4 "circuiter"). Bundles must already be ordered
// by increasing start cycle.
func Circuit(bundles []Bundle) []*gate.Gate {
	var gates []*gate.Gate
	cycle := -1
	for _, b := range bundles {
		if b.StartCycle <= cycle {
			panic("bundler: bundles not ordered by increasing start cycle")
		}
		cycle = b.StartCycle
		for _, gt := range b.Gates {
			gt.Cycle = cycle
			gates = append(gates, gt)
		}
	}
	return gates
}

// skipKeyword names the filler instruction emitted between bundles
// that don't follow on consecutive cycles. "wait" matches the
// teacher's default; a platform requesting issue_skip_319-style output
// would pass "skip" instead (§4.4 Open Question: resolved in favor of
// a caller-supplied keyword rather than a global option).
func Text(bundles []Bundle, skipKeyword string) string {
	if skipKeyword == "" {
		skipKeyword = "wait"
	}

	var out string
	currCycle := FirstCycle
	for _, b := range bundles {
		delta := b.StartCycle - currCycle
		if delta > 1 {
			out += fmt.Sprintf("    %s %d\n", skipKeyword, delta-1)
		}

		out += "    "
		multi := len(b.Gates) > 1
		if multi {
			out += "{ "
		}
		for i, gt := range b.Gates {
			if i > 0 {
				out += " | "
			}
			out += gt.QASM()
		}
		if multi {
			out += " }"
		}
		out += "\n"
		currCycle += delta
	}

	if len(bundles) > 0 {
		last := bundles[len(bundles)-1]
		if last.DurationInCycles > 1 {
			out += fmt.Sprintf("    %s %d\n", skipKeyword, last.DurationInCycles-1)
		}
	}
	return out
}

// Depth returns the bundled circuit's span in cycles: from the first
// bundle's start cycle to the cycle the last bundle's longest gate
// finishes, or 0 for an empty circuit.
func Depth(bundles []Bundle) int {
	if len(bundles) == 0 {
		return 0
	}
	last := bundles[len(bundles)-1]
	return last.StartCycle + last.DurationInCycles - bundles[0].StartCycle
}
