package engine

import (
	"botbowl/pkg/board"
	"botbowl/pkg/dice"
)

// coinTossProc is the very first decision of a match: Home calls Heads or
// Tails against a coin flip; the winner of the flip chooses to kick or
// receive (spec.md §4.5).
type coinTossProc struct {
	phase int
	call  dice.Coin
}

const (
	coinTossPhaseCall = iota
	coinTossPhaseFlip
)

func (c *coinTossProc) Step(gs *GameState, in ProcInput) ProcState {
	switch c.phase {
	case coinTossPhaseCall:
		if in.Kind == InputAction {
			if in.Action.Kind == ActHeads {
				c.call = dice.Heads
			} else {
				c.call = dice.Tails
			}
			c.phase = coinTossPhaseFlip
			return NeedRoll(dice.RequestedRoll{Kind: dice.KindCoin})
		}
		aa := NewAvailableActions()
		aa.Team = BoundTeam(board.Home)
		aa.Simple[ActHeads] = true
		aa.Simple[ActTails] = true
		return NeedAction(aa)

	case coinTossPhaseFlip:
		winner := board.Home
		if in.Roll.Coin != c.call {
			winner = board.Away
		}
		return DoneNew(&chooseKickReceiveProc{winner: winner})
	}
	panic("engine: coinTossProc: invalid phase")
}

// chooseKickReceiveProc lets winner pick Kick or Receive, setting the
// match's opening kicking team (spec.md §4.5).
type chooseKickReceiveProc struct {
	winner board.TeamType
}

func (c *chooseKickReceiveProc) Step(gs *GameState, in ProcInput) ProcState {
	if in.Kind != InputAction {
		aa := NewAvailableActions()
		aa.Team = BoundTeam(c.winner)
		aa.Simple[ActKick] = true
		aa.Simple[ActReceive] = true
		return NeedAction(aa)
	}
	kicker := c.winner
	if in.Action.Kind == ActReceive {
		kicker = c.winner.Other()
	}
	gs.Board.Info.KickingFirstHalf = kicker
	gs.Board.Info.KickingThisDrive = kicker
	gs.Board.Info.TeamToAct = kicker.Other()
	return Done()
}

// setupProc lets team arrange its 11 players before a drive (spec.md
// §4.5). SetupLine applies a single legal default formation regardless of
// the requested role -- the original game's many named formation templates
// are out of scope (see DESIGN.md) -- and EndSetup is only honored once
// board.IsSetupLegal confirms the arrangement.
type setupProc struct {
	team board.TeamType
}

func newSetupProc(team board.TeamType) Proc { return &setupProc{team: team} }

func (s *setupProc) Step(gs *GameState, in ProcInput) ProcState {
	if in.Kind == InputAction {
		switch in.Action.Kind {
		case ActSetupLine:
			applyDefaultFormation(gs.Board, s.team)
		case ActEndSetup:
			if gs.Board.IsSetupLegal(s.team) {
				return Done()
			}
		}
	}
	aa := NewAvailableActions()
	aa.Team = BoundTeam(s.team)
	aa.Simple[ActSetupLine] = true
	aa.Simple[ActEndSetup] = true
	return NeedAction(aa)
}

// applyDefaultFormation arranges team's fielded players into a single
// legal configuration: 3 on the line of scrimmage, the rest fanned out
// through the team's own half (spec.md §4.2's setup-legality rule).
func applyDefaultFormation(b *board.Board, team board.TeamType) {
	losX := board.Coord(board.LineOfScrimmageHomeX)
	step := board.Coord(1)
	if team == board.Away {
		losX = board.LineOfScrimmageAwayX
		step = -1
	}

	var players []*board.FieldedPlayer
	for _, p := range b.Players {
		if p != nil && p.Team == team {
			players = append(players, p)
		}
	}

	losYs := []board.Coord{7, 8, 9}
	for i := 0; i < len(players) && i < 3; i++ {
		players[i].Position = board.NewPosition(losX, losYs[i])
	}

	backX := losX + step*2
	y := board.Coord(6)
	for i := 3; i < len(players); i++ {
		players[i].Position = board.NewPosition(backX, y)
		y++
		if y > 10 {
			y = 6
			backX += step * 2
		}
	}

	b.RebuildOccupancy()
}

// kickoffCenter is the reference square a kickoff's scatter is measured
// from: the middle of the pitch.
func kickoffCenter() board.Position {
	return board.NewPosition(board.Width/2, board.Height/2)
}

// kickoffProc rolls the kick's scatter (direction + distance from the
// pitch's center) and the 2D6 kickoff event table (spec.md §4.5). The
// kicking team first confirms they are aiming for the middle of the
// pitch -- the only aiming choice this port models (see DESIGN.md).
type kickoffProc struct {
	phase int
}

const (
	kickoffPhaseAim = iota
	kickoffPhaseScatter
	kickoffPhaseTable
)

func (k *kickoffProc) Step(gs *GameState, in ProcInput) ProcState {
	switch k.phase {
	case kickoffPhaseAim:
		if in.Kind != InputAction {
			aa := NewAvailableActions()
			aa.Team = BoundTeam(gs.Board.Info.KickingThisDrive)
			aa.Simple[ActKickoffAimMiddle] = true
			return NeedAction(aa)
		}
		k.phase = kickoffPhaseScatter
		return NeedRoll(dice.RequestedRoll{Kind: dice.KindKick})

	case kickoffPhaseScatter:
		dir := board.DirectionFromD8(uint8(in.Roll.KickD8))
		to := kickoffCenter()
		for i := 0; i < int(in.Roll.KickD6); i++ {
			to = to.Add(dir)
		}
		gs.Board.Ball = board.NewInAirBall(to)
		k.phase = kickoffPhaseTable
		return NeedRoll(dice.RequestedRoll{Kind: dice.KindSum2D6})

	case kickoffPhaseTable:
		var table []Proc
		switch in.Roll.Sum2D6 {
		case 2:
			gs.Board.HomeTeam.Bribes++
			gs.Board.AwayTeam.Bribes++
		case 8:
			table = append(table, &changingWeatherProc{})
		}
		// every other table entry (timeout, cheering fans, brilliant
		// coaching, quick snap, high kick, blitz, riot, throw a rock,
		// perfect defense) affects turn-clock bookkeeping or per-player
		// bonuses this port does not model (spec.md §9's open question);
		// the roll is still consumed, but resolves to a no-op.
		table = append(table, &landKickoffProc{})
		reverse(table)
		return DoneNewProcs(table...)
	}
	panic("engine: kickoffProc: invalid phase")
}

// landKickoffProc resolves the kicked ball at the square the scatter
// computed: a standing player attempts a catch, an empty square leaves the
// ball on the ground, and landing out of bounds or on the kicking team's
// own half is a touchback (spec.md §4.5's LandKickoff).
type landKickoffProc struct{}

func (l *landKickoffProc) Step(gs *GameState, in ProcInput) ProcState {
	return resolveBallLanding(gs, gs.Board.Ball.Position, true)
}

// touchbackProc hands the ball, as a loose ball on the ground, to a player
// on the receiving team once a kick has gone out of play or into the
// kicking team's own half (spec.md §4.5). Choosing which of team's players
// picks it up live is left to that team's next move action; the ball
// simply rests at their own 50-yard line to start the drive moving.
type touchbackProc struct {
	team board.TeamType
}

func (t *touchbackProc) Step(gs *GameState, in ProcInput) ProcState {
	gs.Board.Ball = board.NewOnGroundBall(kickoffCenter())
	return Done()
}

// koWakeUpProc rolls a D6 for every dugout player a team has sitting
// KnockedOut; 4+ wakes them back up to Reserves (spec.md §4.5). It folds
// every KO'd player from both teams into one procedure, stepping through
// them one roll at a time.
type koWakeUpProc struct {
	pending []board.PlayerID
	started bool
}

func (k *koWakeUpProc) Step(gs *GameState, in ProcInput) ProcState {
	if !k.started {
		k.started = true
		for _, d := range gs.Board.Dugout {
			if d != nil && d.Place == board.KnockedOut {
				k.pending = append(k.pending, d.ID)
			}
		}
	} else {
		id := k.pending[0]
		k.pending = k.pending[1:]
		if in.Roll.D6 >= 4 {
			gs.Board.SetDugoutPlace(id, board.Reserves)
		}
	}
	if len(k.pending) == 0 {
		return Done()
	}
	return NeedRoll(dice.RequestedRoll{Kind: dice.KindD6})
}

// changingWeatherProc rolls 2D6 on the weather table; a Nice result also
// gusts the loose ball one D8 square (spec.md §4.5).
type changingWeatherProc struct {
	rolled bool
}

func (c *changingWeatherProc) Step(gs *GameState, in ProcInput) ProcState {
	if !c.rolled {
		c.rolled = true
		return NeedRoll(dice.RequestedRoll{Kind: dice.KindSum2D6})
	}
	switch in.Roll.Sum2D6 {
	case 2:
		gs.Board.Info.Weather = board.Sweltering
	case 3, 4, 5, 6:
		gs.Board.Info.Weather = board.Sunny
	case 9, 10, 11:
		gs.Board.Info.Weather = board.Rain
	case 12:
		gs.Board.Info.Weather = board.Blizzard
	default:
		gs.Board.Info.Weather = board.Nice
	}
	if gs.Board.Info.Weather == board.Nice && gs.Board.Ball.Kind != board.Carried {
		return DoneNew(&bounceProc{})
	}
	return Done()
}

// touchdownProc credits team with a score, clears the ball, and schedules
// the kicking-off drive restart (spec.md §4.5's Touchdown).
type touchdownProc struct {
	team board.TeamType
}

func (t *touchdownProc) Step(gs *GameState, in ProcInput) ProcState {
	gs.Board.Team(t.team).Score++
	gs.Board.Ball = board.NewOffPitchBall()
	concedingTeam := t.team.Other()
	gs.Board.Info.KickoffByTeam = &concedingTeam
	return Done()
}
