package depgraph

import "github.com/openql-go/openql/ir/gate"

// operandEvent pairs one operand index with the event it triggers and
// whether that event is allowed to commute with others of the same
// kind on the same operand.
type operandEvent struct {
	typ      OperandType
	operand  int
	event    EventType
	commutes bool
}

var zRotationNames = map[string]bool{
	"rz": true, "z": true, "pauli_z": true, "rz180": true, "z90": true,
	"rz90": true, "zm90": true, "mrz90": true, "s": true, "sdag": true,
	"t": true, "tdag": true,
}

var xRotationNames = map[string]bool{
	"rx": true, "x": true, "pauli_x": true, "rx180": true, "x90": true,
	"rx90": true, "xm90": true, "mrx90": true, "x45": true,
}

// classifier carries the two commutation toggles a platform selects
// (§4.1 "Commutation"): commuteMultiQubit governs two-qubit gates
// (cnot/cz/cphase), commuteSingleQubit governs single-qubit rotations.
type classifier struct {
	commuteMultiQubit  bool
	commuteSingleQubit bool
}

// classify returns the operand events g triggers, replaying the
// teacher-absent gate-name switch the original scheduler used (§4.1
// "Gate classification"). qubitCount/cregCount/bregCount size the
// "display" catch-all, which touches every operand in the kernel.
//
// Condition bregs are read unconditionally ahead of the gate's own
// signature, regardless of gate kind, because every gate's execution
// condition is itself a classical read (§3).
func (c classifier) classify(g *gate.Gate, qubitCount, cregCount, bregCount int) []operandEvent {
	var out []operandEvent
	for _, b := range g.CondBregs {
		out = append(out, operandEvent{Breg, b, Bread, true})
	}

	switch {
	case g.Name == "measure":
		for _, q := range g.Qubits {
			out = append(out, operandEvent{Qubit, q, Default, false})
		}
		for _, cr := range g.Cregs {
			out = append(out, operandEvent{Creg, cr, Cwrite, false})
		}
		for _, br := range g.Bregs {
			out = append(out, operandEvent{Breg, br, Bwrite, false})
		}
	case g.Name == "display":
		for q := 0; q < qubitCount; q++ {
			out = append(out, operandEvent{Qubit, q, Default, false})
		}
		for cr := 0; cr < cregCount; cr++ {
			out = append(out, operandEvent{Creg, cr, Cwrite, false})
		}
		for br := 0; br < bregCount; br++ {
			out = append(out, operandEvent{Breg, br, Bwrite, false})
		}
	case g.Typ == gate.Classical:
		for _, cr := range g.Cregs {
			out = append(out, operandEvent{Creg, cr, Cwrite, false})
		}
	case g.Name == "cnot":
		out = append(out, operandEvent{Qubit, g.Qubits[0], Zrotate, c.commuteMultiQubit})
		out = append(out, operandEvent{Qubit, g.Qubits[1], Xrotate, c.commuteMultiQubit})
	case g.Name == "cz" || g.Name == "cphase":
		out = append(out, operandEvent{Qubit, g.Qubits[0], Zrotate, c.commuteMultiQubit})
		out = append(out, operandEvent{Qubit, g.Qubits[1], Zrotate, c.commuteMultiQubit})
	case zRotationNames[g.Name]:
		out = append(out, operandEvent{Qubit, g.Qubits[0], Zrotate, c.commuteSingleQubit})
	case xRotationNames[g.Name]:
		out = append(out, operandEvent{Qubit, g.Qubits[0], Xrotate, c.commuteSingleQubit})
	default:
		for _, q := range g.Qubits {
			out = append(out, operandEvent{Qubit, q, Default, false})
		}
		for _, cr := range g.Cregs {
			out = append(out, operandEvent{Creg, cr, Cwrite, false})
		}
		for _, br := range g.Bregs {
			out = append(out, operandEvent{Breg, br, Bwrite, false})
		}
	}
	return out
}
