package fsm

// StateID is a unique identifier for a node
type StateID int

const StateNone StateID = 0

// EventType triggers transitions; EventTick (0) marks guard-only transitions evaluated by Update
type EventType int

const EventTick EventType = 0

// Machine is a flat finite state machine runtime
// T is the context type passed to actions and guards
type Machine[T any] struct {
	nodes map[StateID]*Node[T]

	active      StateID
	timeInState float64 // ms

	// OnTransition observes every completed transition, after OnEnter
	OnTransition func(from, to StateID, ev EventType)
}

// Node represents a state
type Node[T any] struct {
	ID   StateID
	Name string

	OnEnter []ActionFunc[T]
	OnExit  []ActionFunc[T]

	// Transitions in evaluation order
	Transitions []Transition[T]
}

// Transition defines a link between states
type Transition[T any] struct {
	TargetID StateID
	Event    EventType    // EventTick = evaluated every Update
	Guard    GuardFunc[T] // nil = always true
}

// GuardFunc returns true if the transition should occur
type GuardFunc[T any] func(ctx T) bool

// ActionFunc executes a side effect
type ActionFunc[T any] func(ctx T)
