package fsm

import "fmt"

// NewMachine creates an empty machine
func NewMachine[T any]() *Machine[T] {
	return &Machine[T]{
		nodes: make(map[StateID]*Node[T]),
	}
}

// AddState adds a node and returns it for action registration
func (m *Machine[T]) AddState(id StateID, name string) *Node[T] {
	node := &Node[T]{
		ID:   id,
		Name: name,
	}
	m.nodes[id] = node
	return node
}

// AddTransition adds a transition to a specific node
func (m *Machine[T]) AddTransition(sourceID StateID, t Transition[T]) error {
	node, ok := m.nodes[sourceID]
	if !ok {
		return fmt.Errorf("transition from unknown state %d", sourceID)
	}
	if _, ok := m.nodes[t.TargetID]; !ok {
		return fmt.Errorf("transition from %s to unknown state %d", node.Name, t.TargetID)
	}
	node.Transitions = append(node.Transitions, t)
	return nil
}

// Init enters the initial state, running its OnEnter actions
func (m *Machine[T]) Init(ctx T, initial StateID) error {
	node, ok := m.nodes[initial]
	if !ok {
		return fmt.Errorf("initial state %d not found", initial)
	}
	m.active = initial
	m.timeInState = 0
	for _, fn := range node.OnEnter {
		fn(ctx)
	}
	return nil
}

// Current returns the active state
func (m *Machine[T]) Current() StateID {
	return m.active
}

// CurrentName returns the active state's name, empty before Init
func (m *Machine[T]) CurrentName() string {
	if node, ok := m.nodes[m.active]; ok {
		return node.Name
	}
	return ""
}

// Name returns the name registered for id
func (m *Machine[T]) Name(id StateID) string {
	if node, ok := m.nodes[id]; ok {
		return node.Name
	}
	return fmt.Sprintf("state(%d)", id)
}

// TimeInState returns ms spent in the active state
func (m *Machine[T]) TimeInState() float64 {
	return m.timeInState
}

// Update advances state time and takes the first passing tick transition
func (m *Machine[T]) Update(ctx T, dt float64) bool {
	node, ok := m.nodes[m.active]
	if !ok {
		return false
	}
	m.timeInState += dt
	for _, t := range node.Transitions {
		if t.Event == EventTick && (t.Guard == nil || t.Guard(ctx)) {
			m.transition(ctx, t.TargetID, EventTick)
			return true
		}
	}
	return false
}

// HandleEvent takes the first matching transition whose guard passes
// Returns false if the event is not accepted in the active state
func (m *Machine[T]) HandleEvent(ctx T, ev EventType) bool {
	if ev == EventTick {
		return false
	}
	node, ok := m.nodes[m.active]
	if !ok {
		return false
	}
	for _, t := range node.Transitions {
		if t.Event == ev && (t.Guard == nil || t.Guard(ctx)) {
			m.transition(ctx, t.TargetID, ev)
			return true
		}
	}
	return false
}

// Can reports whether ev would be accepted in the active state
func (m *Machine[T]) Can(ctx T, ev EventType) bool {
	node, ok := m.nodes[m.active]
	if !ok {
		return false
	}
	for _, t := range node.Transitions {
		if t.Event == ev && (t.Guard == nil || t.Guard(ctx)) {
			return true
		}
	}
	return false
}

func (m *Machine[T]) transition(ctx T, target StateID, ev EventType) {
	from := m.active
	if node, ok := m.nodes[from]; ok {
		for _, fn := range node.OnExit {
			fn(ctx)
		}
	}

	m.active = target
	m.timeInState = 0

	if node, ok := m.nodes[target]; ok {
		for _, fn := range node.OnEnter {
			fn(ctx)
		}
	}
	if m.OnTransition != nil {
		m.OnTransition(from, target, ev)
	}
}
