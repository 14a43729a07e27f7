package engine

import "fmt"

// ErrIllegalAction is returned by GameState.Step when the submitted
// action is not present in the most recently published AvailableActions.
// User-visible and recoverable: state is left unchanged (spec.md §7).
type ErrIllegalAction struct {
	Action Action
}

func (e *ErrIllegalAction) Error() string {
	return fmt.Sprintf("engine: IllegalAction %+v is not currently available", e.Action)
}

// ErrMissingAction names the MissingAction error kind (a frame needing an
// action while none was supplied). Step never returns it, since every
// Step call carries an Action.
type ErrMissingAction struct{}

func (e *ErrMissingAction) Error() string { return "engine: MissingAction: top frame needs an action" }

// ErrGameOver is returned by Step once the game has already concluded.
type ErrGameOver struct{}

func (e *ErrGameOver) Error() string { return "engine: game is already over" }

// panicEmptyProcStack is raised by the driver loop if it ever finds the
// stack empty before the game is marked over -- an implementation bug,
// never a condition a caller can provoke (spec.md §7).
func panicEmptyProcStack() {
	panic("engine: EmptyProcStack")
}
