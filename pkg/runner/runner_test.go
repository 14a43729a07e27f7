package runner_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"botbowl/pkg/engine"
	"botbowl/pkg/runner"
	"botbowl/pkg/statebuilder"
)

func TestRunStopsAtMaxSteps(t *testing.T) {
	gs := statebuilder.AtTurn(statebuilder.Config{Seed: 1}, 1)
	require.False(t, gs.GameOver())

	err := runner.Run(gs, endTurnBot{}, endTurnBot{}, runner.Config{MaxSteps: 1})
	require.Error(t, err)
	require.False(t, gs.GameOver())
}

func TestRunAsksTheBoundTeam(t *testing.T) {
	gs := statebuilder.AtTurn(statebuilder.Config{Seed: 1}, 1)
	aa := gs.AvailableActions()
	require.True(t, aa.Team.Bound)

	var sawTeam bool
	probe := probeBot{fn: func(aa engine.AvailableActions) engine.Action {
		sawTeam = true
		return engine.SimpleAction(engine.ActEndTurn)
	}}
	other := probeBot{fn: func(aa engine.AvailableActions) engine.Action {
		t.Fatal("the non-active team's bot should not have been asked")
		return engine.Action{}
	}}

	home, away := probe, other
	if aa.Team.Team.String() == "Away" {
		home, away = other, probe
	}

	_ = runner.Run(gs, home, away, runner.Config{MaxSteps: 1})
	require.True(t, sawTeam)
}

type probeBot struct {
	fn func(engine.AvailableActions) engine.Action
}

func (p probeBot) Act(aa engine.AvailableActions) engine.Action { return p.fn(aa) }
