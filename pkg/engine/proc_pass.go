package engine

import (
	"botbowl/pkg/board"
	"botbowl/pkg/dice"
)

// maxPassRange bounds how far a thrower may target a pass. The original
// game bands this into Quick/Short/Long/Long Bomb ranges, each with its own
// accuracy modifier; spec.md calls passing "partially modeled" and this
// port only carries the single Chebyshev-distance cap, documented in
// DESIGN.md, rather than the full range-band table.
const maxPassRange = board.Coord(13)

// passTargets lists the squares passer may throw to: in bounds, within
// range, and not the passer's own square.
func passTargets(gs *GameState, passer *board.FieldedPlayer) []board.Position {
	var out []board.Position
	for _, pos := range board.AllPositions() {
		if pos.IsOut() || pos == passer.Position {
			continue
		}
		if pos.DistanceTo(passer.Position) > maxPassRange {
			continue
		}
		out = append(out, pos)
	}
	return out
}

// passProc resolves a thrown pass (spec.md §4.5): a natural 1 is always a
// fumble (turnover, ball dropped at the passer's feet); any other failure
// is an inaccurate throw that scatters 3 squares from the target; success
// lands the ball on the target square. Deflection by an intervening
// defender is part of the original rules but out of scope here (spec.md's
// passing Non-goal) -- see DESIGN.md.
type passProc struct {
	passerID board.PlayerID
	target   board.Position
}

func (p *passProc) Step(gs *GameState, in ProcInput) ProcState {
	if in.Kind != InputRoll {
		passer := gs.Board.Get(p.passerID)
		tz := gs.Board.TackleZones(passer.Position, passer.Team)
		return NeedRoll(dice.RequestedRoll{Kind: dice.KindD6PassFail, PassTarget: board.PassTarget(passer, tz)})
	}

	passer := gs.Board.Get(p.passerID)
	passer.Used = true

	if in.Roll.D6 == 1 {
		gs.Board.Info.Turnover = true
		gs.Board.Ball = board.NewOnGroundBall(passer.Position)
		return DoneNew(&bounceProc{})
	}

	if !in.Roll.Success {
		gs.Board.Ball = board.NewInAirBall(p.target)
		return DoneNew(&scatterProc{remaining: 3, passerTeam: passer.Team})
	}

	gs.Board.Ball = board.NewInAirBall(p.target)
	return DoneNew(&landPassProc{passerTeam: passer.Team})
}

// scatterProc resolves an inaccurate pass: the ball drifts one random D8
// square, 3 times in a row, from the target square it failed to reach.
type scatterProc struct {
	remaining  int
	passerTeam board.TeamType
}

func (s *scatterProc) Step(gs *GameState, in ProcInput) ProcState {
	if in.Kind == InputRoll {
		dir := board.DirectionFromD8(uint8(in.Roll.D8))
		to := gs.Board.Ball.Position.Add(dir)
		gs.Board.Ball = board.NewInAirBall(to)
		s.remaining--
	}
	if s.remaining > 0 {
		return NeedRoll(dice.RequestedRoll{Kind: dice.KindD8})
	}
	return DoneNew(&landPassProc{passerTeam: s.passerTeam})
}

// landPassProc resolves the ball at its final landing square: a standing
// occupant attempts a catch, an empty square leaves the ball on the
// ground, and either way TurnoverIfPossessionLost checks who ends up with
// it (spec.md §4.5's Pass/TurnoverIfPossessionLost).
type landPassProc struct {
	passerTeam board.TeamType
}

func (l *landPassProc) Step(gs *GameState, in ProcInput) ProcState {
	pos := gs.Board.Ball.Position
	if pos.IsOut() {
		gs.Board.Ball = board.NewOnGroundBall(pos)
		return DoneNewProcs(&turnoverIfPossessionLostProc{passerTeam: l.passerTeam}, &throwInProc{from: pos, dir: board.DirUp()})
	}
	if occ, ok := gs.Board.At(pos); ok && occ.IsUp() {
		target := board.CatchTarget(occ, gs.Board.TackleZones(pos, occ.Team))
		return DoneNewProcs(&turnoverIfPossessionLostProc{passerTeam: l.passerTeam}, newCatchProc(occ.ID, target, false))
	}
	gs.Board.Ball = board.NewOnGroundBall(pos)
	return DoneNew(&turnoverIfPossessionLostProc{passerTeam: l.passerTeam})
}

// turnoverIfPossessionLostProc sets a turnover unless the ball is carried
// by a player on the passing team (spec.md §4.5).
type turnoverIfPossessionLostProc struct {
	passerTeam board.TeamType
}

func (t *turnoverIfPossessionLostProc) Step(gs *GameState, in ProcInput) ProcState {
	if gs.Board.Ball.Kind == board.Carried {
		if gs.Board.Get(gs.Board.Ball.Carrier).Team == t.passerTeam {
			return Done()
		}
	}
	gs.Board.Info.Turnover = true
	return Done()
}
