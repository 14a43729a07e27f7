// Package runner drives a GameState to completion by alternating bot
// queries with procedure stepping, the same query/step/record loop the
// teacher's e2e tests and cmd/bot/main.go run around poker.Game, adapted
// here to two local Bots (one per team) rather than a network of PM-driven clients
// (spec.md §2's Game runner, SPEC_FULL.md §6).
package runner

import (
	"fmt"

	"github.com/decred/slog"

	"botbowl/pkg/board"
	"botbowl/pkg/engine"
)

// Bot chooses one Action given the currently published AvailableActions.
// Random choosers, scripted choosers and learning agents all implement
// this; the runner has no opinion on how the choice is made (spec.md §1's
// "Bots/agents ... out of scope" -- only the interface lives here).
type Bot interface {
	Act(aa engine.AvailableActions) engine.Action
}

// Config configures a Run (the two bots are Run's own parameters): where
// to log, an optional Recorder to append a snapshot after every Step, and
// a MaxSteps bound -- mirroring
// the teacher's GameConfig (seed/log) plus whatever the call site wants
// recorded, rather than baking disk I/O into the loop itself.
type Config struct {
	Log      slog.Logger
	Recorder *Recorder

	// MaxSteps bounds the loop as a last resort against a misbehaving
	// Bot that never drives the game to completion. Zero means no bound.
	MaxSteps int
}

// Run drives gs to game over, asking home and away for the next action
// whenever AvailableActions.Team names them, or either bot (home is
// asked) when the menu is unbound. It returns once GameOver is true, or
// once cfg.MaxSteps actions have been submitted.
func Run(gs *engine.GameState, home, away Bot, cfg Config) error {
	log := cfg.Log
	if log == nil {
		log = slog.Disabled
	}

	steps := 0
	for !gs.GameOver() {
		if cfg.MaxSteps > 0 && steps >= cfg.MaxSteps {
			return fmt.Errorf("runner: exceeded MaxSteps (%d) without reaching game over", cfg.MaxSteps)
		}

		aa := gs.AvailableActions()
		bot := home
		if aa.Team.Bound && aa.Team.Team == board.Away {
			bot = away
		}

		action := bot.Act(aa)
		log.Debugf("runner: step %d: submitting action %+v", steps, action)
		if err := gs.Step(action); err != nil {
			return fmt.Errorf("runner: step %d: %w", steps, err)
		}
		steps++

		if cfg.Recorder != nil {
			if err := cfg.Recorder.Record(gs); err != nil {
				return fmt.Errorf("runner: step %d: recording snapshot: %w", steps, err)
			}
		}
	}
	return nil
}
