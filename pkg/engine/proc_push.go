package engine

import "botbowl/pkg/board"

// clockwise orders the 8 directions rotationally (starting at Up), unlike
// board.AllDirections which orders them for D8-face indexing. A push's 3
// candidate squares are the defender's own direction from the attacker
// plus its immediate clockwise neighbors.
var clockwise = [8]board.Direction{
	board.DirUp(), board.DirUpRight(), board.DirRight(), board.DirDownRight(),
	board.DirDown(), board.DirDownLeft(), board.DirLeft(), board.DirUpLeft(),
}

func clockwiseIndex(d board.Direction) int {
	for i, c := range clockwise {
		if c == d {
			return i
		}
	}
	panic("engine: push: not a unit direction")
}

func pushCandidates(dir board.Direction) [3]board.Direction {
	i := clockwiseIndex(dir)
	return [3]board.Direction{dir, clockwise[(i+7)%8], clockwise[(i+1)%8]}
}

type pushDecision struct {
	playerID board.PlayerID
	to       board.Position
	oob      bool
}

// pushProc resolves a Push block result: the defender (and, in a chain
// push, every player bumped along the way) is moved one square along a
// direction fixed once from the attacker to the original defender
// (spec.md §4.5 -- the original direction, not recomputed per link). All
// decided moves are executed only once the chain terminates, in reverse
// decision order, so each vacated destination is free before the next
// move lands there.
type pushProc struct {
	attackerID    board.PlayerID
	firstVictimID board.PlayerID
	thenKnockDown bool

	started bool
	dir     board.Direction
	current board.PlayerID
	decided []pushDecision
}

const pushPhaseMenu = 1

func (p *pushProc) Step(gs *GameState, in ProcInput) ProcState {
	if !p.started {
		p.started = true
		attacker := gs.Board.Get(p.attackerID)
		victim := gs.Board.Get(p.firstVictimID)
		p.dir = victim.Position.Sub(attacker.Position)
		p.current = p.firstVictimID
		return p.decideNext(gs)
	}
	return p.handleChoice(gs, in.Action.Position)
}

func (p *pushProc) decideNext(gs *GameState) ProcState {
	victim := gs.Board.Get(p.current)
	cands := pushCandidates(p.dir)

	var empty, oob, occupied []board.Position
	for _, d := range cands {
		to := victim.Position.Add(d)
		switch {
		case to.IsOut():
			oob = append(oob, to)
		case gs.Board.IsEmpty(to):
			empty = append(empty, to)
		default:
			occupied = append(occupied, to)
		}
	}

	switch {
	case len(empty) > 0:
		return p.publishMenu(gs, empty)
	case len(oob) > 0:
		return p.apply(gs, oob[0], true)
	default:
		return p.publishMenu(gs, occupied)
	}
}

func (p *pushProc) publishMenu(gs *GameState, options []board.Position) ProcState {
	aa := NewAvailableActions()
	aa.Team = BoundTeam(gs.Board.Get(p.attackerID).Team)
	aa.Positions[ActPush] = options
	return NeedAction(aa)
}

func (p *pushProc) handleChoice(gs *GameState, chosen board.Position) ProcState {
	return p.apply(gs, chosen, chosen.IsOut())
}

func (p *pushProc) apply(gs *GameState, to board.Position, oob bool) ProcState {
	p.decided = append(p.decided, pushDecision{playerID: p.current, to: to, oob: oob})
	if oob {
		return p.finish(gs)
	}
	if occupant, ok := gs.Board.At(to); ok {
		p.current = occupant.ID
		return p.decideNext(gs)
	}
	return p.finish(gs)
}

// finish executes every decided move in reverse order (innermost link
// first) and spawns the knockdown/injury/follow-up frames the resolved
// push implies, in the order spec.md §4.5 describes: moves land, then
// FollowUp is offered, then crowd injury and the optional knockdown are
// resolved -- expressed here as a slice where the last element runs first.
func (p *pushProc) finish(gs *GameState) ProcState {
	var oobVictim *board.PlayerID
	vacated := gs.Board.Get(p.firstVictimID).Position

	for i := len(p.decided) - 1; i >= 0; i-- {
		d := p.decided[i]
		if d.oob {
			id := d.playerID
			oobVictim = &id
			gs.Board.UnfieldPlayer(d.playerID, board.Reserves)
			continue
		}
		gs.Board.MovePlayer(d.playerID, d.to)
	}

	var procs []Proc
	procs = append(procs, &followUpProc{attackerID: p.attackerID, vacated: vacated})
	if oobVictim != nil {
		procs = append(procs, &injuryProc{playerID: *oobVictim, crowd: true})
	}
	if p.thenKnockDown && (oobVictim == nil || *oobVictim != p.firstVictimID) {
		procs = append(procs, &knockDownProc{playerID: p.firstVictimID})
	}
	reverse(procs)
	return DoneNewProcs(procs...)
}

// followUpProc offers the attacker the choice to step into the square
// their victim just vacated, or stay put (spec.md §4.5). Stepping into
// the endzone while carrying the ball scores a touchdown.
type followUpProc struct {
	attackerID board.PlayerID
	vacated    board.Position

	offered bool
}

func (f *followUpProc) Step(gs *GameState, in ProcInput) ProcState {
	if !f.offered {
		if !gs.Board.IsEmpty(f.vacated) {
			return Done()
		}
		f.offered = true
		aa := NewAvailableActions()
		attacker := gs.Board.Get(f.attackerID)
		aa.Team = BoundTeam(attacker.Team)
		aa.Positions[ActFollowUp] = []board.Position{attacker.Position, f.vacated}
		return NeedAction(aa)
	}

	if in.Action.Position == f.vacated {
		gs.Board.MovePlayer(f.attackerID, f.vacated)
		attacker := gs.Board.Get(f.attackerID)
		if gs.Board.Ball.IsCarriedBy(f.attackerID) && attacker.Position.X == endzoneXFor(attacker.Team) {
			team := attacker.Team
			gs.Board.Info.HandleTDByTeam = &team
		}
	}
	return Done()
}

func endzoneXFor(team board.TeamType) board.Coord {
	if team == board.Home {
		return board.HomeEndzoneX
	}
	return board.AwayEndzoneX
}
