package fsm

// State is the contract every declared state type satisfies.
//
// Concrete state types embed BaseState, which supplies the contract marker,
// no-op enter/exit hooks, and a placeholder Name. Defining the method on the
// concrete type overrides the embedded default.
type State interface {
	// Name returns a human-readable display name, stable for the lifetime
	// of the machine.
	Name() string

	// OnEnter runs after this state becomes the machine's current state.
	OnEnter()

	// OnExit runs before this state ceases to be the machine's current
	// state.
	OnExit()

	isState()
}

// StatePtr constrains a type parameter to a pointer to a declared state
// type. It is the constraint behind To and Goto: naming a type that does not
// satisfy the state contract there is a compile error.
type StatePtr[S any] interface {
	*S
	State
}

// BaseState is embedded in every concrete state type.
type BaseState struct{}

// Name returns a placeholder; concrete states override it.
func (BaseState) Name() string { return "<unnamed state>" }

// OnEnter is a no-op by default.
func (BaseState) OnEnter() {}

// OnExit is a no-op by default.
func (BaseState) OnExit() {}

func (BaseState) isState() {}
