package engine

import (
	"botbowl/pkg/board"
	"botbowl/pkg/dice"
)

// knockDownProc flips playerID to Down, marks them used for the rest of
// the turn, and spawns Armor. If the player was carrying the ball, the
// ball is set loose in the air over their square first and Bounce is
// spawned ahead of Armor (spec.md §4.5's KnockDown).
type knockDownProc struct {
	playerID board.PlayerID
}

func (k *knockDownProc) Step(gs *GameState, in ProcInput) ProcState {
	p := gs.Board.Get(k.playerID)
	p.SetStatus(board.Down)
	p.Used = true

	if gs.Board.Ball.IsCarriedBy(k.playerID) {
		gs.Board.Ball = board.NewInAirBall(p.Position)
		// bounce runs first, armor second: last element runs first.
		return DoneNewProcs(&armorProc{playerID: k.playerID}, &bounceProc{})
	}
	return DoneNew(&armorProc{playerID: k.playerID})
}

// armorProc rolls 2D6 against playerID's armor value. A broken roll
// spawns Injury; doubles eject the player only when the knockdown came
// from a foul -- fouls roll FoulArmor via foulProc instead, so a plain
// armorProc never ejects.
type armorProc struct {
	playerID board.PlayerID
}

func (a *armorProc) Step(gs *GameState, in ProcInput) ProcState {
	if in.Kind != InputRoll {
		target := board.ArmorTarget(gs.Board.Get(a.playerID))
		return NeedRoll(dice.RequestedRoll{Kind: dice.KindSum2D6PassFail, PassTarget: target})
	}
	if !in.Roll.Success {
		return Done()
	}
	return DoneNew(&injuryProc{playerID: a.playerID})
}

// injuryProc rolls 2D6 on the injury table for playerID. An on-pitch
// victim stays Up-adjacent as Stunned on the lowest band, or is unfielded
// to KnockedOut/Injured on the higher bands. A crowd-pushed victim has
// already been unfielded (to a placeholder Reserves slot, by pushProc, to
// free their square before this roll happens) -- here that placeholder
// is simply corrected to the roll's actual outcome band (spec.md §4.5,
// §8's crowd-chain-push scenario).
type injuryProc struct {
	playerID board.PlayerID
	crowd    bool
}

func (i *injuryProc) Step(gs *GameState, in ProcInput) ProcState {
	if in.Kind != InputRoll {
		return NeedRoll(dice.RequestedRoll{Kind: dice.KindSum2D6})
	}
	outcome := dice.InjuryOutcomeFor(in.Roll.Sum2D6)

	if i.crowd {
		place := board.Reserves
		switch outcome {
		case dice.InjuryCasualty:
			place = board.Injured
		case dice.InjuryKO:
			place = board.KnockedOut
		}
		gs.Board.SetDugoutPlace(i.playerID, place)
		return Done()
	}

	switch outcome {
	case dice.InjuryCasualty:
		return i.unfield(gs, board.Injured)
	case dice.InjuryKO:
		return i.unfield(gs, board.KnockedOut)
	default:
		gs.Board.Get(i.playerID).SetStatus(board.Stunned)
		return Done()
	}
}

// unfield moves playerID to the dugout. By the time Injury runs, a
// ball-carrying victim has already had the ball set loose by KnockDown,
// so UnfieldPlayer's own carriedBall report is never true here -- it is
// still the right call to make since it also clears Info.ActivePlayer.
func (i *injuryProc) unfield(gs *GameState, place board.DugoutPlace) ProcState {
	gs.Board.UnfieldPlayer(i.playerID, place)
	return Done()
}

// ejectionProc removes a fouler caught rolling doubles on their armor
// roll, regardless of whether the armor broke (spec.md §4.2).
type ejectionProc struct {
	playerID board.PlayerID
}

func (e *ejectionProc) Step(gs *GameState, in ProcInput) ProcState {
	gs.Board.UnfieldPlayer(e.playerID, board.Ejected)
	return Done()
}
