package engine

import (
	"botbowl/pkg/board"
	"botbowl/pkg/pathfinder"
)

// moveActionProc drives a Move/Blitz/Foul/Handoff/Pass player action: the
// bot picks one destination from the pathfinder's reachable squares, and
// the procedure replays that single path's recorded events/moves against
// the live board one at a time, spawning a sub-procedure per event and
// resuming the walk once it returns (spec.md §4.4, §4.5's MoveAction).
type moveActionProc struct {
	phase int

	paths map[board.Position]*pathfinder.Node
	steps []pathfinder.Step
	idx   int
}

const (
	moveActionPhaseMenu = iota
	moveActionPhaseReplay
	moveActionPhasePassWait
)

func (m *moveActionProc) Step(gs *GameState, in ProcInput) ProcState {
	switch m.phase {
	case moveActionPhaseMenu:
		if in.Kind == InputAction {
			return m.handleSelection(gs, in.Action)
		}
		return m.publishMenu(gs)

	case moveActionPhaseReplay:
		info := &gs.Board.Info
		if info.Turnover || info.HandleTDByTeam != nil {
			return m.finish(gs)
		}
		return m.replay(gs)

	case moveActionPhasePassWait:
		return m.finish(gs)
	}
	panic("engine: moveActionProc: invalid phase")
}

func (m *moveActionProc) publishMenu(gs *GameState) ProcState {
	m.paths = pathfinder.PlayerPaths(gs.Board)

	info := &gs.Board.Info
	activeID := *info.ActivePlayer
	aa := NewAvailableActions()
	aa.Team = BoundTeam(gs.Board.Get(activeID).Team)
	aa.Simple[ActEndPlayerTurn] = true
	for pos, node := range m.paths {
		aa.Paths[pos] = node
	}
	if info.PlayerActionType == board.ActionPass && gs.Board.Ball.IsCarriedBy(activeID) {
		aa.Positions[ActPass] = passTargets(gs, gs.Board.Get(activeID))
	}
	return NeedAction(aa)
}

func (m *moveActionProc) handleSelection(gs *GameState, a Action) ProcState {
	if a.Kind == ActEndPlayerTurn {
		return m.finish(gs)
	}
	if a.Kind == ActPass {
		m.phase = moveActionPhasePassWait
		return NotDoneNew(&passProc{passerID: *gs.Board.Info.ActivePlayer, target: a.Position})
	}
	node, ok := m.paths[a.Position]
	if !ok {
		panic("engine: moveActionProc: selected position not in published paths")
	}
	m.steps = node.Steps()
	m.idx = 0
	m.phase = moveActionPhaseReplay
	return m.replay(gs)
}

// replay executes m.steps from m.idx, moving the active player across
// plain squares directly and spawning one sub-procedure per dice/state
// event, returning control once a sub-procedure is pushed so it can run
// and moveActionProc is resumed afterward with Nothing.
func (m *moveActionProc) replay(gs *GameState) ProcState {
	info := &gs.Board.Info
	activeID := *info.ActivePlayer

	for m.idx < len(m.steps) {
		s := m.steps[m.idx]
		m.idx++

		if !s.IsEvent {
			gs.Board.MovePlayer(activeID, s.Position)
			continue
		}

		switch s.Event.Kind {
		case pathfinder.EventStandUp:
			return NotDoneNew(&standUpProc{playerID: activeID})

		case pathfinder.EventGFI:
			return NotDoneNew(newGFIProc(activeID, s.Event.D6Target))

		case pathfinder.EventDodge:
			return NotDoneNew(newDodgeProc(activeID, s.Event.D6Target))

		case pathfinder.EventPickup:
			return NotDoneNew(newPickupProc(activeID, s.Event.D6Target))

		case pathfinder.EventBlock:
			_, attackerPicks := board.BlockDiceCount(gs.Board, gs.Board.Get(activeID), gs.Board.Get(s.Event.PlayerID))
			return NotDoneNew(&blockProc{
				attackerID:    activeID,
				defenderID:    s.Event.PlayerID,
				diceCount:     s.Event.BlockDice,
				attackerPicks: attackerPicks,
			})

		case pathfinder.EventFoul:
			return NotDoneNew(&foulProc{
				foulerID: activeID,
				victimID: s.Event.PlayerID,
				target:   s.Event.ArmorTarget,
			})

		case pathfinder.EventHandoff:
			return NotDoneNew(&handoffProc{
				fromID:   activeID,
				toID:     s.Event.PlayerID,
				target:   s.Event.D6Target,
			})

		case pathfinder.EventTouchdown:
			team := gs.Board.Get(activeID).Team
			info.HandleTDByTeam = &team
			return m.finish(gs)
		}
	}
	return m.finish(gs)
}

func (m *moveActionProc) finish(gs *GameState) ProcState {
	info := &gs.Board.Info
	if info.ActivePlayer != nil {
		gs.Board.Get(*info.ActivePlayer).Used = true
		info.ActivePlayer = nil
	}
	return Done()
}
