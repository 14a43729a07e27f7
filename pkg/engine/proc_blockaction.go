package engine

import "botbowl/pkg/board"

// blockActionProc drives a standing Block action chosen directly from the
// turn menu (as opposed to a Blitz's block reached via MoveAction's path
// replay): publish the adjacent standing opponents as targets, then
// resolve the chosen one through Block (spec.md §4.5).
type blockActionProc struct {
	attackerID board.PlayerID
	phase      int
	targets    map[board.Position]board.PlayerID
}

const (
	blockActionPhaseMenu = iota
	blockActionPhaseResolve
)

func (b *blockActionProc) Step(gs *GameState, in ProcInput) ProcState {
	switch b.phase {
	case blockActionPhaseMenu:
		if in.Kind == InputAction {
			return b.handleSelection(gs, in.Action)
		}
		return b.publishMenu(gs)

	case blockActionPhaseResolve:
		return b.finish(gs)
	}
	panic("engine: blockActionProc: invalid phase")
}

func (b *blockActionProc) publishMenu(gs *GameState) ProcState {
	attacker := gs.Board.Get(b.attackerID)
	b.targets = map[board.Position]board.PlayerID{}

	aa := NewAvailableActions()
	aa.Team = BoundTeam(attacker.Team)
	aa.Simple[ActEndPlayerTurn] = true
	for _, opp := range gs.Board.AdjacentPlayers(attacker.Position) {
		if opp.Team == attacker.Team || !opp.IsUp() {
			continue
		}
		b.targets[opp.Position] = opp.ID
		aa.Positions[ActBlock] = append(aa.Positions[ActBlock], opp.Position)
	}
	return NeedAction(aa)
}

func (b *blockActionProc) handleSelection(gs *GameState, a Action) ProcState {
	if a.Kind == ActEndPlayerTurn {
		return b.finish(gs)
	}
	defenderID, ok := b.targets[a.Position]
	if !ok {
		panic("engine: blockActionProc: selected position not among published targets")
	}
	attacker := gs.Board.Get(b.attackerID)
	defender := gs.Board.Get(defenderID)
	count, attackerPicks := board.BlockDiceCount(gs.Board, attacker, defender)
	b.phase = blockActionPhaseResolve
	return NotDoneNew(&blockProc{
		attackerID:    b.attackerID,
		defenderID:    defenderID,
		diceCount:     count,
		attackerPicks: attackerPicks,
	})
}

func (b *blockActionProc) finish(gs *GameState) ProcState {
	info := &gs.Board.Info
	if info.ActivePlayer != nil {
		gs.Board.Get(*info.ActivePlayer).Used = true
		info.ActivePlayer = nil
	}
	return Done()
}
