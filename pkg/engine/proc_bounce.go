package engine

import (
	"botbowl/pkg/board"
	"botbowl/pkg/dice"
)

// bounceProc scatters a loose ball one square in a random D8 direction
// (spec.md §4.5). A kickoff-sourced bounce (fromKick) additionally checks
// for a touchback: landing out of bounds or on the kicking team's own
// half hands the ball straight to the receiving team instead of scattering
// onto the pitch.
type bounceProc struct {
	fromKick bool
}

func (b *bounceProc) Step(gs *GameState, in ProcInput) ProcState {
	if in.Kind != InputRoll {
		return NeedRoll(dice.RequestedRoll{Kind: dice.KindD8})
	}

	from := gs.Board.Ball.Position
	dir := board.DirectionFromD8(uint8(in.Roll.D8))
	to := from.Add(dir)

	if b.fromKick && (to.IsOut() || to.IsOnTeamSide(gs.Board.Info.KickingThisDrive)) {
		receiver := gs.Board.Info.KickingThisDrive.Other()
		gs.Board.Ball = board.NewOffPitchBall()
		return DoneNew(&touchbackProc{team: receiver})
	}

	if to.IsOut() {
		gs.Board.Ball = board.NewOnGroundBall(from)
		return DoneNew(&throwInProc{from: from, dir: dir})
	}

	if occ, ok := gs.Board.At(to); ok && occ.IsUp() {
		target := board.CatchTarget(occ, gs.Board.TackleZones(to, occ.Team))
		gs.Board.Ball = board.NewInAirBall(to)
		return DoneNew(newCatchProc(occ.ID, target, b.fromKick))
	}

	gs.Board.Ball = board.NewOnGroundBall(to)
	return Done()
}

// throwInProc resolves a ball that scattered out of bounds: direction is
// restricted to the 3 inward-pointing candidates around the reverse of
// the direction that carried it out, distance is 2D6 squares; a result
// that still lands out of bounds is walked back toward the pitch one
// square at a time (spec.md §4.5).
type throwInProc struct {
	from board.Position
	dir  board.Direction
}

func (t *throwInProc) Step(gs *GameState, in ProcInput) ProcState {
	if in.Kind != InputRoll {
		return NeedRoll(dice.RequestedRoll{Kind: dice.KindThrowIn})
	}

	cands := throwInCandidates(t.dir)
	face := cands[in.Roll.ThrowInDirection-1]
	direction := board.DirectionFromD8(face)

	to := t.from
	for i := 0; i < int(in.Roll.ThrowInDistance); i++ {
		to = to.Add(direction)
	}
	back := reverseDir(direction)
	for to.IsOut() {
		to = to.Add(back)
	}

	if occ, ok := gs.Board.At(to); ok && occ.IsUp() {
		target := board.CatchTarget(occ, gs.Board.TackleZones(to, occ.Team))
		gs.Board.Ball = board.NewInAirBall(to)
		return DoneNew(newCatchProc(occ.ID, target, false))
	}
	gs.Board.Ball = board.NewOnGroundBall(to)
	return Done()
}

// resolveBallLanding is the shared "where does the ball end up" check used
// by a kickoff's LandKickoff step and a pass's final resolution: touchback
// if fromKick and the square is out or on the kicking team's own half,
// scatter-to-throw-in if out of bounds with no fixed exit direction
// (reached only by a non-kickoff caller, since fromKick always intercepts
// an out-of-bounds square via the touchback branch first), a catch attempt
// if a standing player occupies the square, else the ball simply rests on
// the ground.
func resolveBallLanding(gs *GameState, to board.Position, fromKick bool) ProcState {
	if fromKick && (to.IsOut() || to.IsOnTeamSide(gs.Board.Info.KickingThisDrive)) {
		receiver := gs.Board.Info.KickingThisDrive.Other()
		gs.Board.Ball = board.NewOffPitchBall()
		return DoneNew(&touchbackProc{team: receiver})
	}
	if to.IsOut() {
		gs.Board.Ball = board.NewOnGroundBall(to)
		return DoneNew(&throwInProc{from: to, dir: board.DirUp()})
	}
	if occ, ok := gs.Board.At(to); ok && occ.IsUp() {
		target := board.CatchTarget(occ, gs.Board.TackleZones(to, occ.Team))
		gs.Board.Ball = board.NewInAirBall(to)
		return DoneNew(newCatchProc(occ.ID, target, fromKick))
	}
	gs.Board.Ball = board.NewOnGroundBall(to)
	return Done()
}

func reverseDir(d board.Direction) board.Direction {
	return board.Direction{DX: -d.DX, DY: -d.DY}
}

// throwInCandidates returns the 3 D8 faces a throw-in direction roll may
// land on: the reverse of the direction that carried the ball out, and
// its two rotational neighbors (the clockwise table in proc_push.go) --
// all three point back onto the pitch since dir itself pointed off of it.
func throwInCandidates(dir board.Direction) [3]uint8 {
	rev := reverseDir(dir)
	i := clockwiseIndex(rev)
	left := board.D8FromDirection(clockwise[(i+7)%8])
	right := board.D8FromDirection(clockwise[(i+1)%8])
	return [3]uint8{left, board.D8FromDirection(rev), right}
}
