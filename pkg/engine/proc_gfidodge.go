package engine

import (
	"botbowl/pkg/board"
	"botbowl/pkg/dice"
)

// newGFIProc rolls a Going-For-It check for playerID. Failure ends the
// move: a turnover is set and the player goes down where they stand
// (spec.md §4.5).
func newGFIProc(playerID board.PlayerID, target dice.D6Target) Proc {
	return newSimpleRoll(playerID, board.SkillSureFeet, target, func(gs *GameState, success bool) ProcState {
		if success {
			return Done()
		}
		gs.Board.Info.Turnover = true
		return DoneNew(&knockDownProc{playerID: playerID})
	})
}

// newDodgeProc rolls a Dodge check for playerID leaving a marked square.
// Failure ends the move with a turnover and a knockdown.
func newDodgeProc(playerID board.PlayerID, target dice.D6Target) Proc {
	return newSimpleRoll(playerID, board.SkillDodge, target, func(gs *GameState, success bool) ProcState {
		if success {
			return Done()
		}
		gs.Board.Info.Turnover = true
		return DoneNew(&knockDownProc{playerID: playerID})
	})
}

// newPickupProc rolls a Pick-up check for playerID standing on the ball's
// square. Success carries the ball; failure turns the ball over and
// bounces it from the player's square (spec.md §4.5).
func newPickupProc(playerID board.PlayerID, target dice.D6Target) Proc {
	return newSimpleRoll(playerID, board.SkillSureHands, target, func(gs *GameState, success bool) ProcState {
		p := gs.Board.Get(playerID)
		if success {
			gs.Board.Ball = board.NewCarriedBall(playerID)
			return Done()
		}
		gs.Board.Info.Turnover = true
		gs.Board.Ball = board.NewOnGroundBall(p.Position)
		return DoneNew(&bounceProc{fromKick: false})
	})
}

// newCatchProc rolls a Catch check for playerID against a ball arriving at
// their square (a pass, handoff, kickoff, or bounce). Failure drops the
// ball, which bounces again from the same square. A successful catch
// standing in the catcher's own endzone queues a touchdown (spec.md §4.5).
func newCatchProc(playerID board.PlayerID, target dice.D6Target, fromKick bool) Proc {
	return newSimpleRoll(playerID, board.SkillCatch, target, func(gs *GameState, success bool) ProcState {
		p := gs.Board.Get(playerID)
		if success {
			gs.Board.Ball = board.NewCarriedBall(playerID)
			if p.Position.X == endzoneXFor(p.Team) {
				team := p.Team
				gs.Board.Info.HandleTDByTeam = &team
			}
			return Done()
		}
		gs.Board.Ball = board.NewOnGroundBall(p.Position)
		return DoneNew(&bounceProc{fromKick: fromKick})
	})
}

// standUpProc flips a Down player back to Up, consuming 3 squares of
// movement (already reflected in the pathfinder node that spawned this
// procedure -- spec.md §4.4's applyStandUp).
type standUpProc struct {
	playerID board.PlayerID
}

func (s *standUpProc) Step(gs *GameState, in ProcInput) ProcState {
	gs.Board.Get(s.playerID).SetStatus(board.Up)
	return Done()
}

// handoffProc hands the ball from fromID to toID, who must catch it
// (spec.md §4.5). The passer does not roll; only the receiver does.
type handoffProc struct {
	fromID board.PlayerID
	toID   board.PlayerID
	target dice.D6Target
}

func (h *handoffProc) Step(gs *GameState, in ProcInput) ProcState {
	gs.Board.Ball = board.NewInAirBall(gs.Board.Get(h.toID).Position)
	return DoneNew(newCatchProc(h.toID, h.target, false))
}

// foulProc resolves a foul: the fouler's player is never at risk, only the
// victim's armor (spec.md §4.2, §4.5). A broken armor roll continues into
// Injury; doubles on the roll eject the fouler regardless of outcome.
type foulProc struct {
	foulerID board.PlayerID
	victimID board.PlayerID
	target   dice.Sum2D6Target
}

func (f *foulProc) Step(gs *GameState, in ProcInput) ProcState {
	if in.Kind != InputRoll {
		return NeedRoll(dice.RequestedRoll{Kind: dice.KindFoulArmor, ArmorTarget: f.target})
	}
	res := in.Roll
	var next []Proc
	if res.FoulArmorEjected {
		next = append(next, &ejectionProc{playerID: f.foulerID})
	}
	if res.FoulArmorBroken {
		next = append(next, &injuryProc{playerID: f.victimID})
	}
	if len(next) == 0 {
		return Done()
	}
	// last element runs first: injury (if any) before ejection.
	return DoneNewProcs(next...)
}
