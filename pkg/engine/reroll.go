package engine

import (
	"botbowl/pkg/board"
	"botbowl/pkg/dice"
)

// simpleRoll drives the generic reroll contract spec.md §4.5 names for
// Catch, Pickup, Dodge and GFI: roll a single D6 against target; on
// failure, first spend the named skill if the player has it and hasn't
// used it this action, then fall back to offering the owning team's
// reroll; call onDone once a final pass/fail is settled.
type simpleRoll struct {
	playerID board.PlayerID
	skill    board.Skill
	target   dice.D6Target
	onDone   func(gs *GameState, success bool) ProcState

	stage int
}

const (
	rollStageFirst = iota
	rollStageAfterFirst
	rollStageRerollMenu
	rollStageAfterReroll
)

func newSimpleRoll(playerID board.PlayerID, skill board.Skill, target dice.D6Target, onDone func(*GameState, bool) ProcState) *simpleRoll {
	return &simpleRoll{playerID: playerID, skill: skill, target: target, onDone: onDone}
}

func (s *simpleRoll) Step(gs *GameState, in ProcInput) ProcState {
	switch s.stage {
	case rollStageFirst:
		s.stage = rollStageAfterFirst
		return NeedRoll(dice.RequestedRoll{Kind: dice.KindD6PassFail, PassTarget: s.target})

	case rollStageAfterFirst:
		if in.Roll.Success {
			return s.onDone(gs, true)
		}
		p := gs.Board.Get(s.playerID)
		if p.Skills.Has(s.skill) && !p.HasUsedSkill(s.skill) {
			p.UseSkill(s.skill)
			s.stage = rollStageAfterReroll
			return NeedRoll(dice.RequestedRoll{Kind: dice.KindD6PassFail, PassTarget: s.target})
		}
		team := gs.Board.Team(p.Team)
		if team.Rerolls > 0 && !team.RerollUsedThisAction {
			s.stage = rollStageRerollMenu
			t := p.Team
			return NeedAction(AvailableActions{
				Team:   BoundTeam(t),
				Simple: map[ActionKind]bool{ActUseReroll: true, ActDontUseReroll: true},
			})
		}
		return s.onDone(gs, false)

	case rollStageRerollMenu:
		if in.Action.Kind == ActUseReroll {
			p := gs.Board.Get(s.playerID)
			gs.Board.Team(p.Team).SpendReroll()
			s.stage = rollStageAfterReroll
			return NeedRoll(dice.RequestedRoll{Kind: dice.KindD6PassFail, PassTarget: s.target})
		}
		return s.onDone(gs, false)

	case rollStageAfterReroll:
		return s.onDone(gs, in.Roll.Success)
	}
	panic("engine: simpleRoll: invalid stage")
}
