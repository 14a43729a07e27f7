package engine

import "botbowl/pkg/board"

// turnStunnedProc converts a team's Stunned players to Down at the start
// of their own turn (spec.md §4.5: "a Stunned player automatically turns
// face-up (Down) at the start of their team's next turn"). It runs
// before turnProc in the stack (kickoffSequence-style ordering) so the
// team's action menu already reflects the flip.
type turnStunnedProc struct {
	team board.TeamType
}

func (t *turnStunnedProc) Step(gs *GameState, in ProcInput) ProcState {
	for _, p := range gs.Board.Players {
		if p == nil || p.Team != t.team || !p.IsStunned() {
			continue
		}
		p.SetStatus(board.Down)
	}
	return Done()
}

// turnProc drives one team's turn: publish the action menu, dispatch the
// chosen player action, and end the turn on ActEndTurn, a completed
// turnover, or a pending touchdown (spec.md §4.5's Turn).
type turnProc struct {
	team  board.TeamType
	stage int
}

const (
	turnStageMenu = iota
	turnStageAction
)

func (t *turnProc) Step(gs *GameState, in ProcInput) ProcState {
	info := &gs.Board.Info

	switch t.stage {
	case turnStageMenu:
		if info.HandleTDByTeam != nil {
			team := *info.HandleTDByTeam
			info.HandleTDByTeam = nil
			info.Turnover = false
			return DoneNew(&touchdownProc{team: team})
		}
		if info.Turnover {
			info.Turnover = false
			return Done()
		}
		return t.publishMenu(gs)

	case turnStageAction:
		a := in.Action
		if a.Kind == ActEndTurn {
			return Done()
		}
		info.ActivePlayer = &a.PlayerID
		switch a.Kind {
		case ActStartMove:
			info.PlayerActionType = board.ActionMove
		case ActStartBlitz:
			info.PlayerActionType = board.ActionBlitz
			info.BlitzAvailable = false
		case ActStartFoul:
			info.PlayerActionType = board.ActionFoul
			info.FoulAvailable = false
		case ActStartHandoff:
			info.PlayerActionType = board.ActionHandoff
			info.HandoffAvailable = false
		case ActStartPass:
			info.PlayerActionType = board.ActionPass
			info.PassAvailable = false
		case ActStartBlock:
			info.PlayerActionType = board.ActionBlock
		}
		gs.Board.Team(t.team).ResetForNewAction()
		t.stage = turnStageMenu

		if a.Kind == ActStartBlock {
			return NotDoneNew(&blockActionProc{attackerID: a.PlayerID})
		}
		return NotDoneNew(&moveActionProc{})
	}
	panic("engine: turnProc: invalid stage")
}

func (t *turnProc) publishMenu(gs *GameState) ProcState {
	info := &gs.Board.Info
	aa := NewAvailableActions()
	aa.Team = BoundTeam(t.team)

	for _, p := range gs.Board.Players {
		if p == nil || p.Team != t.team || p.Used || !p.IsUp() {
			continue
		}
		aa.PlayerChoices[ActStartMove] = append(aa.PlayerChoices[ActStartMove], p.ID)
		if info.BlitzAvailable {
			aa.PlayerChoices[ActStartBlitz] = append(aa.PlayerChoices[ActStartBlitz], p.ID)
		}
		if info.FoulAvailable {
			aa.PlayerChoices[ActStartFoul] = append(aa.PlayerChoices[ActStartFoul], p.ID)
		}
		if info.HandoffAvailable && gs.Board.Ball.IsCarriedBy(p.ID) {
			aa.PlayerChoices[ActStartHandoff] = append(aa.PlayerChoices[ActStartHandoff], p.ID)
		}
		if info.PassAvailable && gs.Board.Ball.IsCarriedBy(p.ID) {
			aa.PlayerChoices[ActStartPass] = append(aa.PlayerChoices[ActStartPass], p.ID)
		}
		if hasStandingOpponentAdjacent(gs.Board, p) {
			aa.PlayerChoices[ActStartBlock] = append(aa.PlayerChoices[ActStartBlock], p.ID)
		}
	}
	aa.Simple[ActEndTurn] = true

	t.stage = turnStageAction
	return NeedAction(aa)
}

func hasStandingOpponentAdjacent(b *board.Board, p *board.FieldedPlayer) bool {
	for _, n := range b.AdjacentPlayers(p.Position) {
		if n.Team != p.Team && n.IsUp() {
			return true
		}
	}
	return false
}
