package fsm

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Machine owns one instance of every declared state type and tracks which
// one is current. The state set is closed: it is fixed by New and no state
// can be added or removed afterwards.
//
// A Machine is not safe for concurrent use; see the package documentation.
type Machine struct {
	id      string
	states  []State
	current int // index into states, always valid
	tracer  Tracer
}

// New constructs a machine owning the given states. The first state is the
// initial state. States must be registered as pointers, one per distinct
// state type; To and Goto resolve targets against those pointer types.
//
// No enter hook fires for the initial state.
func New(states ...State) (*Machine, error) {
	if len(states) == 0 {
		return nil, errors.New("no states provided")
	}

	seen := make(map[string]bool, len(states))
	for i, s := range states {
		if s == nil {
			return nil, fmt.Errorf("nil state at position %d", i)
		}
		name := s.Name()
		if seen[name] {
			return nil, fmt.Errorf("duplicate state %q", name)
		}
		seen[name] = true
	}

	return &Machine{
		id:     uuid.NewString(),
		states: states,
	}, nil
}

// MustNew is New, panicking on a construction error.
func MustNew(states ...State) *Machine {
	m, err := New(states...)
	if err != nil {
		panic(fmt.Sprintf("fsm: %v", err))
	}
	return m
}

// WithID overrides the machine's generated instance ID. The ID only appears
// in trace records. Returns the machine for chaining.
func (m *Machine) WithID(id string) *Machine {
	m.id = id
	return m
}

// WithTracer attaches a diagnostic tracer. Tracing has no behavioral
// effect. Returns the machine for chaining.
func (m *Machine) WithTracer(t Tracer) *Machine {
	m.tracer = t
	return m
}

// ID returns the machine's instance ID.
func (m *Machine) ID() string { return m.id }

// Current returns the currently active state instance.
func (m *Machine) Current() State { return m.states[m.current] }

// CurrentStateName returns the Name of the currently active state.
func (m *Machine) CurrentStateName() string { return m.states[m.current].Name() }

// Dispatch routes the event to the current state's handler, if it declares
// one, and applies the resulting transition. An event with no handler on the
// current state is silently ignored. Dispatch runs to completion, including
// exit and enter hooks, before returning; it never fails.
func (m *Machine) Dispatch(event Event) {
	current := m.states[m.current]

	t, handled := event.Resolve(current)
	if m.tracer != nil {
		m.tracer.Dispatched(m.id, current.Name(), eventLabel(event), handled)
	}
	if !handled || t == nil {
		t = NullTransition{}
	}
	t.Execute(m)
}

// switchTo reassigns the current-state reference, sequencing exit on the old
// state before enter on the new one. from and to may be the same instance.
func (m *Machine) switchTo(i int) {
	from := m.states[m.current]
	to := m.states[i]

	from.OnExit()
	m.current = i
	to.OnEnter()

	if m.tracer != nil {
		m.tracer.Transitioned(m.id, from.Name(), to.Name())
	}
}

// eventLabel derives a display label from the event's type. Only called on
// the tracing path.
func eventLabel(event Event) string {
	label := fmt.Sprintf("%T", event)
	if i := strings.LastIndexByte(label, '.'); i >= 0 {
		label = label[i+1:]
	}
	return label
}
