// Package equivcheck is a test-only helper for scheduler property tests
// (§8 invariant 1: reordering gates within a commuting class must not
// change measurement statistics). It simulates a gate sequence with
// github.com/itsubaki/q, the way the teacher's qc/simulator/itsu
// backend does, and is never imported by the core scheduler/pass
// manager packages themselves — the Non-goal "does not verify semantic
// equivalence of quantum circuits" keeps this check out of the shipped
// core and in test code only.
package equivcheck

import (
	"fmt"
	"sort"

	"github.com/itsubaki/q"

	"github.com/openql-go/openql/ir/gate"
)

// Histogram runs gates shots times on a fresh qubitCount-qubit
// simulator each time and tallies the resulting classical bit string,
// mirroring the teacher's itsu.runOnce dispatch (H/X/Y/Z/S/CNOT/CZ/SWAP)
// plus its per-shot fresh-state pattern from ItsuOneShotRunner.RunOnce.
// Gates without qubit operands (SOURCE/SINK/WAIT/DUMMY/CLASSICAL) are
// skipped, matching the bundler's own filtering.
func Histogram(gates []*gate.Gate, qubitCount, shots int) (map[string]int, error) {
	measured := measuredQubits(gates, qubitCount)

	hist := make(map[string]int, shots)
	for s := 0; s < shots; s++ {
		bits, err := runOnce(gates, qubitCount, measured)
		if err != nil {
			return nil, err
		}
		hist[bits]++
	}
	return hist, nil
}

// measuredQubits returns the qubits explicitly measured by a "measure"
// gate in order, or every qubit in ascending order if none are,
// generalizing the teacher's buildCircuitFromRequest auto-measure
// fallback.
func measuredQubits(gates []*gate.Gate, qubitCount int) []int {
	var measured []int
	for _, g := range gates {
		if g.Name == "measure" {
			measured = append(measured, g.Qubits[0])
		}
	}
	if len(measured) > 0 {
		return measured
	}
	all := make([]int, qubitCount)
	for i := range all {
		all[i] = i
	}
	return all
}

func runOnce(gates []*gate.Gate, qubitCount int, measured []int) (string, error) {
	sim := q.New()
	qs := sim.ZeroWith(qubitCount)
	bits := make(map[int]byte, len(measured))

	for _, g := range gates {
		if !g.ConsumesResources() && g.Name != "measure" {
			continue
		}
		switch g.Name {
		case "h":
			sim.H(qs[g.Qubits[0]])
		case "x":
			sim.X(qs[g.Qubits[0]])
		case "y":
			sim.Y(qs[g.Qubits[0]])
		case "z":
			sim.Z(qs[g.Qubits[0]])
		case "s":
			sim.S(qs[g.Qubits[0]])
		case "cnot", "cx":
			sim.CNOT(qs[g.Qubits[0]], qs[g.Qubits[1]])
		case "cz":
			sim.CZ(qs[g.Qubits[0]], qs[g.Qubits[1]])
		case "swap":
			sim.Swap(qs[g.Qubits[0]], qs[g.Qubits[1]])
		case "measure":
			m := sim.Measure(qs[g.Qubits[0]])
			if m.IsOne() {
				bits[g.Qubits[0]] = '1'
			} else {
				bits[g.Qubits[0]] = '0'
			}
		default:
			return "", fmt.Errorf("equivcheck: unsupported gate %q", g.Name)
		}
	}

	for _, q := range measured {
		if _, ok := bits[q]; !ok {
			m := sim.Measure(qs[q])
			if m.IsOne() {
				bits[q] = '1'
			} else {
				bits[q] = '0'
			}
		}
	}

	out := make([]byte, len(measured))
	for i, q := range measured {
		out[i] = bits[q]
	}
	return string(out), nil
}

// SortedKeys returns hist's keys in sorted order, for deterministic
// diffing/printing in test failure messages.
func SortedKeys(hist map[string]int) []string {
	keys := make([]string, 0, len(hist))
	for k := range hist {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
