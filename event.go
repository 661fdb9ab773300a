package fsm

// Event is the contract every dispatchable event type satisfies.
//
// Concrete event types embed BaseEvent for the contract marker and define
// Resolve, which probes a state for a handler of exactly this event type.
// Resolve reports false when the state declares no handler; Dispatch then
// treats the event as a silent no-op.
type Event interface {
	// Resolve returns the transition produced by the state's handler for
	// this event, or (nil, false) when the state has no such handler.
	Resolve(current State) (Transition, bool)

	isEvent()
}

// BaseEvent is embedded in every concrete event type. It supplies the Event
// contract marker; types that do not embed it cannot be dispatched.
type BaseEvent struct{}

func (BaseEvent) isEvent() {}
