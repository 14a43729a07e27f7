// Package engine implements the Blood Bowl procedure stack: the frames
// that drive a game from kickoff to final whistle, the GameState they
// operate on, and the AvailableActions/Action vocabulary bots interact
// with (spec.md §2, §4.3, §4.5, §6).
package engine

import "botbowl/pkg/dice"

// InputKind tags what a ProcInput actually carries.
type InputKind uint8

const (
	InputNothing InputKind = iota
	InputAction
	InputRoll
)

// ProcInput is delivered to a Proc's Step method: either nothing (resuming
// after a sub-procedure returned), an externally-submitted Action, or the
// resolution of a roll this frame itself requested.
type ProcInput struct {
	Kind   InputKind
	Action Action
	Roll   dice.RollResult
}

func NothingInput() ProcInput               { return ProcInput{Kind: InputNothing} }
func ActionInput(a Action) ProcInput        { return ProcInput{Kind: InputAction, Action: a} }
func RollInput(r dice.RollResult) ProcInput { return ProcInput{Kind: InputRoll, Roll: r} }

// StateKind tags which variant of ProcState a Step call returned.
type StateKind uint8

const (
	StateNotDone StateKind = iota
	StateDone
	StateNotDoneNewProcs
	StateDoneNewProcs
	StateNeedRoll
	StateNeedAction
)

// ProcState is the result of stepping one procedure frame (spec.md §4.3).
// New frames (NotDoneNewProcs/DoneNewProcs) execute in reverse list order:
// the last element is pushed last and therefore runs first.
type ProcState struct {
	Kind  StateKind
	Procs []Proc
	Roll  dice.RequestedRoll
	AA    AvailableActions
}

func Done() ProcState { return ProcState{Kind: StateDone} }
func NotDone() ProcState { return ProcState{Kind: StateNotDone} }

func NotDoneNew(p Proc) ProcState { return ProcState{Kind: StateNotDoneNewProcs, Procs: []Proc{p}} }
func NotDoneNewProcs(ps ...Proc) ProcState {
	return ProcState{Kind: StateNotDoneNewProcs, Procs: ps}
}

func DoneNew(p Proc) ProcState { return ProcState{Kind: StateDoneNewProcs, Procs: []Proc{p}} }
func DoneNewProcs(ps ...Proc) ProcState {
	return ProcState{Kind: StateDoneNewProcs, Procs: ps}
}

func NeedRoll(r dice.RequestedRoll) ProcState {
	return ProcState{Kind: StateNeedRoll, Roll: r}
}

func NeedAction(aa AvailableActions) ProcState {
	return ProcState{Kind: StateNeedAction, AA: aa}
}

// Proc is one frame of the procedure stack. Step is called with Nothing
// the first time after being pushed (unless it immediately requested a
// roll) and subsequently whenever the engine has something to hand it:
// the roll it asked for, or the external action it requested via
// NeedAction.
type Proc interface {
	Step(gs *GameState, in ProcInput) ProcState
}

// ProcFunc adapts a plain function to the Proc interface, the same
// light-weight-wrapper idiom the teacher's pkg/statemachine uses for
// StateFn -- most procedures here need no fields of their own beyond a
// handful of captured values, so a closure is the natural shape.
type ProcFunc func(gs *GameState, in ProcInput) ProcState

func (f ProcFunc) Step(gs *GameState, in ProcInput) ProcState { return f(gs, in) }
