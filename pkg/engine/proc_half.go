package engine

import "botbowl/pkg/board"

// halfProc drives one half of the match: the opening kickoff sequence,
// the alternating per-team turn loop, and the post-touchdown kickoff
// sequence it discovers via Info.KickoffByTeam (spec.md §4.5's Half).
type halfProc struct {
	entered     bool
	turnPending bool
}

func NewHalf() Proc { return &halfProc{} }

func (h *halfProc) Step(gs *GameState, in ProcInput) ProcState {
	info := &gs.Board.Info

	if !h.entered {
		h.entered = true
		return NotDoneNewProcs(kickoffSequence(gs)...)
	}

	if h.turnPending {
		h.turnPending = false
		info.TeamToAct = info.TeamToAct.Other()
	}

	if info.GameOver {
		return Done()
	}

	if info.KickoffByTeam != nil {
		team := *info.KickoffByTeam
		info.KickoffByTeam = nil
		info.KickingThisDrive = team
		return NotDoneNewProcs(kickoffSequence(gs)...)
	}

	if info.HomeTurn >= 8 && info.AwayTurn >= 8 {
		if info.Half == 1 {
			info.Half = 2
			info.HomeTurn = 0
			info.AwayTurn = 0
			info.TeamToAct = info.KickingFirstHalf.Other()
			info.KickingThisDrive = info.KickingFirstHalf.Other()
			return DoneNew(NewHalf())
		}
		info.GameOver = true
		return Done()
	}

	team := info.TeamToAct
	if team == board.Home {
		info.HomeTurn++
	} else {
		info.AwayTurn++
	}
	info.ResetTurnLatches()
	clearUsedForTurn(gs.Board, team)
	h.turnPending = true
	return NotDoneNewProcs(&turnProc{team: team}, &turnStunnedProc{team: team})
}

// clearUsedForTurn resets the Used flag and spent-skill tracking for a
// team's players at the start of their turn. Stunned players are left
// alone (TurnStunned, pushed alongside, decides their fate first).
func clearUsedForTurn(b *board.Board, team board.TeamType) {
	for _, p := range b.Players {
		if p == nil || p.Team != team || p.IsStunned() {
			continue
		}
		p.Used = false
		p.MovesUsed = 0
		p.ResetUsedSkills()
	}
}

// kickoffSequence returns the frames for one drive's kickoff, ordered so
// that Setup(kicker) runs first, then Setup(receiver), then Kickoff,
// then KOWakeUp (spec.md §4.5: "pushes kickoff procedures ... in the
// correct reverse order" -- since the last element of a pushed slice
// runs first, the slice here lists them back to front).
func kickoffSequence(gs *GameState) []Proc {
	kicker := gs.Board.Info.KickingThisDrive
	receiver := kicker.Other()
	return []Proc{
		&koWakeUpProc{},
		&kickoffProc{},
		newSetupProc(receiver),
		newSetupProc(kicker),
	}
}
