package fsm

import "fmt"

// Transition describes the outcome of handling an event. It is produced by a
// handler (or synthesized when no handler exists) and applied immediately by
// Dispatch; it is never stored.
type Transition interface {
	// Execute applies the transition to the machine.
	Execute(m *Machine)
}

// To returns a transition targeting the machine's owned instance of state
// type S. Executing it runs the current state's exit hook, switches the
// current-state reference, then runs the new state's enter hook. Targeting
// the current state's own type is legal and still runs both hooks.
func To[S any, PS StatePtr[S]]() Transition {
	return transitionTo[S, PS]{}
}

// None returns the null transition: executing it changes nothing.
func None() Transition {
	return NullTransition{}
}

// NullTransition leaves the machine in its current state. Dispatch
// synthesizes it whenever the current state has no handler for the
// dispatched event.
type NullTransition struct{}

// Execute does nothing beyond notifying an attached tracer.
func (NullTransition) Execute(m *Machine) {
	if m.tracer != nil {
		m.tracer.Ignored(m.id, m.states[m.current].Name())
	}
}

type transitionTo[S any, PS StatePtr[S]] struct{}

func (transitionTo[S, PS]) Execute(m *Machine) {
	Goto[S, PS](m)
}

// Goto forces a transition to the declared state type S, running exit and
// enter hooks exactly as an event-driven transition would. It panics if S
// was not declared on this machine; the constraint already rejects types
// outside the state contract at compile time.
func Goto[S any, PS StatePtr[S]](m *Machine) {
	for i := range m.states {
		if _, ok := m.states[i].(PS); ok {
			m.switchTo(i)
			return
		}
	}
	var missing PS
	panic(fmt.Sprintf("fsm: state type %T is not declared on this machine", missing))
}
