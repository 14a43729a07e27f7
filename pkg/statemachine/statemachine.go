// Package statemachine implements Rob Pike's "state functions" pattern:
// a state is a function that does its work and returns the function for
// the next state (or nil to terminate). It is deliberately generic and
// carries no game-specific knowledge; see pkg/board for the concrete
// state functions built on top of it (player Up/Down/Stunned).
package statemachine

import "sync"

// StateEvent identifies a transition notification passed to the optional
// callback given to Dispatch.
type StateEvent int

const (
	StateEntered StateEvent = iota
	StateExited
	TransitionRequested
)

// StateFn is a state of entity T: given the entity and an optional
// callback, it performs the state's work and returns the next StateFn.
type StateFn[T any] func(*T, func(stateName string, event StateEvent)) StateFn[T]

// StateMachine is a minimal, thread-safe holder of the current StateFn for
// an entity. State functions are the states themselves; each returns the
// next state function.
type StateMachine[T any] struct {
	entity  *T
	stateFn StateFn[T]
	mutex   sync.RWMutex
}

// NewStateMachine creates a state machine for entity with the given
// initial state function.
func NewStateMachine[T any](entity *T, initialStateFn StateFn[T]) *StateMachine[T] {
	return &StateMachine[T]{
		entity:  entity,
		stateFn: initialStateFn,
	}
}

// Dispatch invokes the current state function once and adopts whatever
// state function it returns. callback may be nil.
func (sm *StateMachine[T]) Dispatch(callback func(stateName string, event StateEvent)) {
	sm.mutex.Lock()
	current := sm.stateFn
	sm.mutex.Unlock()

	if current == nil {
		return
	}

	next := current(sm.entity, callback)

	sm.mutex.Lock()
	sm.stateFn = next
	sm.mutex.Unlock()
}

// GetCurrentState returns the current state function.
func (sm *StateMachine[T]) GetCurrentState() StateFn[T] {
	sm.mutex.RLock()
	defer sm.mutex.RUnlock()
	return sm.stateFn
}

// SetState forces the current state function without running it.
func (sm *StateMachine[T]) SetState(stateFn StateFn[T]) {
	sm.mutex.Lock()
	sm.stateFn = stateFn
	sm.mutex.Unlock()
}
