// Package statebuilder assembles canonical starting GameStates for tests
// and bots, the same role the teacher's poker.NewGame/GameConfig plays in
// pkg/poker: a single entry point that hides roster construction and lets
// a caller ask for a recognizable point in the match timeline rather than
// replaying the whole opening sequence by hand (spec.md §6).
package statebuilder

import (
	"github.com/decred/slog"

	"botbowl/pkg/board"
	"botbowl/pkg/dice"
	"botbowl/pkg/engine"
)

// Config configures a built GameState: the RNG seed and logger to hand to
// engine.NewGameState, mirroring the teacher's GameConfig.Seed/Log.
type Config struct {
	Seed int64
	Log  slog.Logger
}

// standardRoster is one archetype/stat/skill line per fielded player,
// repeated to fill an 11-player roster: 2 Blitzers (Block), 2 Catchers
// (Catch, Dodge), 1 Thrower (Sure Hands, a sharper pass target), 6
// Linemen -- a minimal, unexceptional starting lineup, not any specific
// original_source team roster (spec.md's Non-goals exclude the wider
// team/roster catalogue).
func standardRoster() []struct {
	archetype board.PlayerArchetype
	stats     board.Stats
	skills    board.SkillSet
} {
	lineman := board.Stats{MA: 6, ST: 3, AG: 3, AV: 8, PassTarget: 6}
	blitzer := board.Stats{MA: 7, ST: 3, AG: 3, AV: 8, PassTarget: 6}
	catcher := board.Stats{MA: 8, ST: 2, AG: 3, AV: 7, PassTarget: 6}
	thrower := board.Stats{MA: 6, ST: 3, AG: 3, AV: 8, PassTarget: 2}

	return []struct {
		archetype board.PlayerArchetype
		stats     board.Stats
		skills    board.SkillSet
	}{
		{board.Blitzer, blitzer, board.NewSkillSet(board.SkillBlock)},
		{board.Blitzer, blitzer, board.NewSkillSet(board.SkillBlock)},
		{board.Catcher, catcher, board.NewSkillSet(board.SkillCatch, board.SkillDodge)},
		{board.Catcher, catcher, board.NewSkillSet(board.SkillCatch, board.SkillDodge)},
		{board.Thrower, thrower, board.NewSkillSet(board.SkillSureHands)},
		{board.Lineman, lineman, nil},
		{board.Lineman, lineman, nil},
		{board.Lineman, lineman, nil},
		{board.Lineman, lineman, nil},
		{board.Lineman, lineman, nil},
		{board.Lineman, lineman, nil},
	}
}

// fieldRoster fields 11 players for team at distinct, in-bounds staging
// squares near their own sideline -- not a legal setup arrangement, only
// a unique starting square per player for Setup's SetupLine to then
// rearrange (board.Board.IsSetupLegal is never expected to hold here).
func fieldRoster(b *board.Board, team board.TeamType) {
	x := board.Coord(2)
	if team == board.Away {
		x = board.AwayEndzoneX - 1
	}
	for i, line := range standardRoster() {
		pos := board.NewPosition(x, board.Coord(1+i))
		p := board.NewFieldedPlayer(0, team, line.archetype, line.stats, line.skills, pos)
		if err := b.FieldPlayer(p); err != nil {
			panic("statebuilder: " + err.Error())
		}
	}
}

func newBoard() *board.Board {
	b := board.NewBoard()
	fieldRoster(b, board.Home)
	fieldRoster(b, board.Away)
	b.HomeTeam.Rerolls = 3
	b.AwayTeam.Rerolls = 3
	return b
}

func mustStep(gs *engine.GameState, a engine.Action) {
	if err := gs.Step(a); err != nil {
		panic("statebuilder: " + err.Error())
	}
}

// Empty returns a GameState with both rosters fielded but the match not
// yet started -- equivalent to AtCoinToss, the earliest point a bot can
// interact with the engine.
func Empty(cfg Config) *engine.GameState {
	return engine.NewGameState(newBoard(), cfg.Seed, cfg.Log, engine.NewMatch())
}

// AtCoinToss is an alias for Empty, named for the menu it leaves
// published: Home's Heads/Tails call.
func AtCoinToss(cfg Config) *engine.GameState {
	return Empty(cfg)
}

// AtSetup drives past a fixed coin toss (Home calls Heads, the coin lands
// Heads, Home elects to Receive) to the kicking team's first Setup menu.
func AtSetup(cfg Config) *engine.GameState {
	gs := AtCoinToss(cfg)
	gs.FixCoin(dice.Heads)
	mustStep(gs, engine.SimpleAction(engine.ActHeads))
	mustStep(gs, engine.SimpleAction(engine.ActReceive))
	return gs
}

// AtKickoff completes both teams' Setup (the default formation, accepted
// as-is) to reach the Kickoff procedure's aim confirmation.
func AtKickoff(cfg Config) *engine.GameState {
	gs := AtSetup(cfg)
	completeSetup(gs)
	completeSetup(gs)
	return gs
}

func completeSetup(gs *engine.GameState) {
	mustStep(gs, engine.SimpleAction(engine.ActSetupLine))
	mustStep(gs, engine.SimpleAction(engine.ActEndSetup))
}

// AtTurn drives past a fixed, deterministic kickoff (aimed at the middle,
// scattered hard into the kicking team's own half for a guaranteed
// touchback, an innocuous kickoff-table roll) to the nth team turn,
// ending every intervening turn via ActEndTurn without any player acting.
// n must be >= 1.
func AtTurn(cfg Config, n int) *engine.GameState {
	gs := AtKickoff(cfg)

	gs.FixD8(directionTowardAwaySideline())
	gs.FixD6(6)
	gs.FixSum2D6(3, 4)
	mustStep(gs, engine.SimpleAction(engine.ActKickoffAimMiddle))

	for i := 1; i < n; i++ {
		mustStep(gs, engine.SimpleAction(engine.ActEndTurn))
	}
	return gs
}

// directionTowardAwaySideline is the D8 face (board.DirLeft) that, from
// the pitch's center, carries a kickoff scatter onto the away team's own
// half regardless of which team is kicking -- used only to force a
// deterministic touchback in AtTurn's fixture kickoff.
func directionTowardAwaySideline() dice.D8 {
	return dice.D8(board.D8FromDirection(board.DirLeft()))
}
