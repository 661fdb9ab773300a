// Package fsm provides a type-safe finite-state-machine engine for
// user-defined state and event types.
//
// The package revolves around two sealed contracts, State and Event, that
// let you model domain specific states and events as ordinary Go types while
// the engine handles:
//  1. Handler resolution per (state type, event type) pair
//  2. Transition execution with exit/enter lifecycle hooks
//  3. Silent no-op dispatch for events the current state does not handle
//  4. Optional transition tracing for diagnostics
//
// Every state type embeds BaseState and every event type embeds BaseEvent.
// Embedding supplies the contract markers plus default behavior (a no-op
// OnEnter/OnExit and a placeholder Name), so a type participates in a machine
// the moment it compiles. Passing a type that does not embed the base to New
// or Dispatch is a compile error, never a runtime one.
//
// # Declaring events and states
//
// An event is a marker type plus a Resolve method that probes the current
// state for a handler of exactly this event type:
//
//	type OpenEvent struct{ fsm.BaseEvent }
//
//	func (e OpenEvent) Resolve(s fsm.State) (fsm.Transition, bool) {
//		if h, ok := s.(interface {
//			OnOpen(OpenEvent) fsm.Transition
//		}); ok {
//			return h.OnOpen(e), true
//		}
//		return nil, false
//	}
//
// The probe interface gives each (state, event) pair its own statically typed
// handler method. States opt in by declaring the method; states without it
// ignore the event. The cmd/fsmgen tool generates this boilerplate from a
// declarative chart document.
//
// A state names itself and declares handlers for the events it cares about:
//
//	type ClosedState struct{ fsm.BaseState }
//
//	func (ClosedState) Name() string { return "Closed" }
//
//	func (ClosedState) OnOpen(OpenEvent) fsm.Transition {
//		return fsm.To[OpenState]()
//	}
//
// # Running a machine
//
//	door := fsm.MustNew(&ClosedState{}, &OpenState{})
//	door.Dispatch(OpenEvent{})
//	fmt.Println(door.CurrentStateName()) // "Open"
//
// The machine owns one long-lived instance per declared state type. States
// are always registered as pointers; the first one is the initial state. No
// hooks fire on construction.
//
// Dispatch never fails: an event with no handler on the current state is a
// valid no-op, not an error. The only failure class is a construction-time
// contract violation, which New reports and MustNew panics on.
//
// # Concurrency
//
// A Machine performs no internal locking. Dispatch runs to completion on the
// caller's goroutine, and concurrent Dispatch calls against one machine are
// undefined. Callers that share a machine across goroutines must serialize
// access themselves.
package fsm
