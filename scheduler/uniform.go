package scheduler

import (
	"github.com/openql-go/openql/depgraph"
	"github.com/openql-go/openql/ir/gate"
	"github.com/openql-go/openql/ir/kernel"
)

// AssignUniform computes an ASAP schedule and then, scanning cycles
// from the end of the circuit backward, moves gates forward (to a
// later cycle) from earlier bundles into the current one while the
// current one holds fewer gates than the average non-empty bundle, without
// ever exceeding the circuit's depth or a gate's own dependencies
// (§4.3 "Uniform scheduling"). Resource constraints are not honoured
// in this mode; combining scheduler_target=uniform with
// resource_constraints=true is a configuration error and must be
// rejected before this is called (§6).
//
// This is a literal port of the original's schedule_alap_uniform,
// itself based on the balanced-scheduling algorithm of Zaretsky,
// Mittal, Dick & Banerjee ("Balanced Scheduling and Operation
// Chaining in High-Level Synthesis for FPGA Designs", fig. 3), adapted
// to use remaining[] as the node's criticality measure in place of the
// article's O(n^2) dependency-set size. The result resembles an ALAP
// schedule with excess bundle lengths rolled forward into the gaps
// left by smaller ones.
func AssignUniform(k *kernel.Kernel, g *depgraph.Graph) {
	cycle := assignPlain(g, Forward)
	cycleCount := cycle[g.Sink()] - 1

	gates := k.Gates()
	for i, gt := range gates {
		gt.Cycle = cycle[depgraph.NodeID(i+1)]
	}
	g.Gate(g.Sink()).Cycle = cycle[g.Sink()]

	remaining := computeRemaining(g, Forward)

	gatesPerCycle := make(map[int][]*gate.Gate, cycleCount)
	for _, gt := range gates {
		gatesPerCycle[gt.Cycle] = append(gatesPerCycle[gt.Cycle], gt)
	}

	gateCount := len(gates)
	nonEmptyBundleCount := 0
	for c := 1; c <= cycleCount; c++ {
		if len(gatesPerCycle[c]) > 0 {
			nonEmptyBundleCount++
		}
	}

	nodeOf := make(map[*gate.Gate]depgraph.NodeID, len(gates))
	for i, gt := range gates {
		nodeOf[gt] = depgraph.NodeID(i + 1)
	}

	for currCycle := cycleCount; currCycle >= 1; currCycle-- {
		if nonEmptyBundleCount == 0 {
			break
		}
		avgPerNonEmpty := float64(gateCount) / float64(nonEmptyBundleCount)

		for predCycle := currCycle - 1; float64(len(gatesPerCycle[currCycle])) < avgPerNonEmpty && predCycle >= 1; {
			minRemaining := -1
			bestIdx := -1

			for i, predgp := range gatesPerCycle[predCycle] {
				predNode := nodeOf[predgp]
				completion := currCycle + gate.Cycles(predgp.Duration, g.CycleTime())
				forward := true
				if completion > cycleCount+1 {
					forward = false
				} else {
					for _, e := range g.Successors(predNode) {
						if completion > g.Gate(e.To).Cycle {
							forward = false
							break
						}
					}
				}
				if forward && (bestIdx == -1 || remaining[predNode] < minRemaining) {
					minRemaining = remaining[predNode]
					bestIdx = i
				}
			}

			if bestIdx == -1 {
				predCycle--
				continue
			}

			best := gatesPerCycle[predCycle][bestIdx]
			gatesPerCycle[predCycle] = append(gatesPerCycle[predCycle][:bestIdx], gatesPerCycle[predCycle][bestIdx+1:]...)
			if len(gatesPerCycle[predCycle]) == 0 {
				nonEmptyBundleCount--
			}
			if len(gatesPerCycle[currCycle]) == 0 {
				nonEmptyBundleCount++
			}
			best.Cycle = currCycle
			gatesPerCycle[currCycle] = append(gatesPerCycle[currCycle], best)

			if nonEmptyBundleCount == 0 {
				break
			}
			avgPerNonEmpty = float64(gateCount) / float64(nonEmptyBundleCount)
		}

		gateCount -= len(gatesPerCycle[currCycle])
		if len(gatesPerCycle[currCycle]) > 0 {
			nonEmptyBundleCount--
		}
	}

	stableSortByCycle(gates)
	k.SetGates(gates)
	k.MarkScheduled()
}
