package depgraph

import "fmt"

// ErrCycle is the internal-invariant error (§7) raised by Build if the
// state machine construction somehow produced a cycle. Reaching this
// is a bug in classify/new_event, never a consequence of user input.
type ErrCycle struct {
	Node NodeID
}

func (e *ErrCycle) Error() string {
	return fmt.Sprintf("depgraph: cycle detected at node %d; dependency construction is broken", e.Node)
}
