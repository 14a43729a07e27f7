package engine

import (
	"botbowl/pkg/board"
	"botbowl/pkg/dice"
)

// blockProc rolls and resolves a block (spec.md §4.2, §4.5). The reroll
// offer always belongs to the attacker's team, even on a 2-dice block
// where attackerPicks is false and the defender is the one choosing among
// the rolled faces -- the two decisions are independent.
type blockProc struct {
	attackerID    board.PlayerID
	defenderID    board.PlayerID
	diceCount     int
	attackerPicks bool

	dice  []dice.BlockDice
	phase int
}

const (
	blockPhaseNeedRoll = iota
	blockPhaseMenu
)

func (b *blockProc) Step(gs *GameState, in ProcInput) ProcState {
	switch b.phase {
	case blockPhaseNeedRoll:
		return b.roll(gs)
	case blockPhaseMenu:
		return b.handleMenu(gs, in)
	}
	panic("engine: blockProc: invalid phase")
}

func (b *blockProc) roll(gs *GameState) ProcState {
	b.phase = blockPhaseMenu
	return NeedRoll(dice.RequestedRoll{Kind: dice.KindBlockDice, NumBlockDice: b.diceCount})
}

func (b *blockProc) handleMenu(gs *GameState, in ProcInput) ProcState {
	if in.Kind == InputRoll {
		b.dice = in.Roll.BlockDice
		return b.publishMenu(gs)
	}

	a := in.Action
	attacker := gs.Board.Get(b.attackerID)
	if a.Kind == ActUseReroll {
		gs.Board.Team(attacker.Team).SpendReroll()
		b.phase = blockPhaseNeedRoll
		return b.roll(gs)
	}
	if a.Kind == ActDontUseReroll {
		return b.publishFaceMenu(gs)
	}
	return b.resolve(gs, faceForAction(a.Kind))
}

// publishMenu offers the attacker's team a reroll (if one is still
// available this action). When the attacker picks the face, the reroll
// sits alongside the face-selection menu; when the defender picks, the
// attacker first gets a reroll-only menu and DontUseReroll then hands the
// face choice to the defender.
func (b *blockProc) publishMenu(gs *GameState) ProcState {
	attacker := gs.Board.Get(b.attackerID)
	team := gs.Board.Team(attacker.Team)

	aa := b.faceMenu(gs)
	if team.Rerolls > 0 && !team.RerollUsedThisAction {
		if !b.attackerPicks {
			aa = NewAvailableActions()
			aa.Team = BoundTeam(attacker.Team)
		}
		aa.Simple[ActUseReroll] = true
		aa.Simple[ActDontUseReroll] = true
	}
	return NeedAction(aa)
}

func (b *blockProc) publishFaceMenu(gs *GameState) ProcState {
	return NeedAction(b.faceMenu(gs))
}

func (b *blockProc) faceMenu(gs *GameState) AvailableActions {
	attacker := gs.Board.Get(b.attackerID)
	defender := gs.Board.Get(b.defenderID)

	picker := attacker.Team
	if !b.attackerPicks {
		picker = defender.Team
	}

	aa := NewAvailableActions()
	aa.Team = BoundTeam(picker)
	seen := map[dice.BlockDice]bool{}
	for _, face := range b.dice {
		if seen[face] {
			continue
		}
		seen[face] = true
		aa.Simple[actionForFace(face)] = true
	}
	return aa
}

func faceForAction(k ActionKind) dice.BlockDice {
	switch k {
	case ActSelectSkull:
		return dice.Skull
	case ActSelectBothDown:
		return dice.BothDown
	case ActSelectPush:
		return dice.Push
	case ActSelectPowPush:
		return dice.PowPush
	case ActSelectPow:
		return dice.Pow
	}
	panic("engine: blockProc: action is not a block-face selection")
}

func actionForFace(f dice.BlockDice) ActionKind {
	switch f {
	case dice.Skull:
		return ActSelectSkull
	case dice.BothDown:
		return ActSelectBothDown
	case dice.Push:
		return ActSelectPush
	case dice.PowPush:
		return ActSelectPowPush
	case dice.Pow:
		return ActSelectPow
	}
	panic("engine: blockProc: unknown block-dice face")
}

// resolve maps the chosen face to its effect (spec.md §4.2): Skull knocks
// the attacker down; BothDown knocks both down unless the attacker has an
// unused Block skill; Push only pushes; PowPush pushes and knocks the
// defender down unless the defender has an unused Dodge skill; Pow knocks
// the defender down with no push.
func (b *blockProc) resolve(gs *GameState, face dice.BlockDice) ProcState {
	attacker := gs.Board.Get(b.attackerID)
	defender := gs.Board.Get(b.defenderID)

	var procs []Proc // appended in run-first-last order; reversed before returning

	switch face {
	case dice.Skull:
		procs = append(procs, &knockDownProc{playerID: b.attackerID})

	case dice.BothDown:
		attackerDown := true
		if attacker.Skills.Has(board.SkillBlock) && !attacker.HasUsedSkill(board.SkillBlock) {
			attacker.UseSkill(board.SkillBlock)
			attackerDown = false
		}
		if attackerDown {
			procs = append(procs, &knockDownProc{playerID: b.attackerID})
		}
		procs = append(procs, &knockDownProc{playerID: b.defenderID})

	case dice.Push:
		procs = append(procs, &pushProc{attackerID: b.attackerID, firstVictimID: b.defenderID})

	case dice.PowPush:
		defenderDown := true
		if defender.Skills.Has(board.SkillDodge) && !defender.HasUsedSkill(board.SkillDodge) {
			defender.UseSkill(board.SkillDodge)
			defenderDown = false
		}
		procs = append(procs, &pushProc{attackerID: b.attackerID, firstVictimID: b.defenderID, thenKnockDown: defenderDown})

	case dice.Pow:
		procs = append(procs, &knockDownProc{playerID: b.defenderID})
	}

	reverse(procs)
	return DoneNewProcs(procs...)
}

func reverse(ps []Proc) {
	for i, j := 0, len(ps)-1; i < j; i, j = i+1, j-1 {
		ps[i], ps[j] = ps[j], ps[i]
	}
}
