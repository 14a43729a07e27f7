package runner_test

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"botbowl/pkg/engine"
	"botbowl/pkg/runner"
	"botbowl/pkg/statebuilder"
)

// endTurnBot always ends its turn, never acting -- enough to drive the
// coin-toss/setup/kickoff sequence in statebuilder fixtures without
// needing a real strategy.
type endTurnBot struct{}

func (endTurnBot) Act(aa engine.AvailableActions) engine.Action {
	if aa.Simple[engine.ActEndTurn] {
		return engine.SimpleAction(engine.ActEndTurn)
	}
	if aa.Simple[engine.ActEndPlayerTurn] {
		return engine.SimpleAction(engine.ActEndPlayerTurn)
	}
	panic("endTurnBot: no EndTurn-shaped action in menu")
}

func TestRecorderWritesOneSnapshotPerStep(t *testing.T) {
	gs := statebuilder.AtTurn(statebuilder.Config{Seed: 1}, 1)

	var buf bytes.Buffer
	rec := runner.NewRecorder(&buf)
	require.NoError(t, rec.Record(gs))
	require.NoError(t, gs.Step(engine.SimpleAction(engine.ActEndTurn)))
	require.NoError(t, rec.Record(gs))

	dec := json.NewDecoder(&buf)
	var count int
	for dec.More() {
		var raw json.RawMessage
		require.NoError(t, dec.Decode(&raw))
		count++
	}
	require.Equal(t, 2, count)
}

// TestRecorderToFile shows the disk-persistence path SPEC_FULL.md
// describes: pkg/runner only ever writes through io.Writer, and an
// *os.File satisfies that with no special-casing.
func TestRecorderToFile(t *testing.T) {
	gs := statebuilder.AtTurn(statebuilder.Config{Seed: 1}, 1)

	path := filepath.Join(t.TempDir(), "recording.jsonl")
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()

	rec := runner.NewRecorder(f)
	require.NoError(t, rec.Record(gs))

	info, err := os.Stat(path)
	require.NoError(t, err)
	require.Greater(t, info.Size(), int64(0))
}
