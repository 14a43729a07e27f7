package runner

import (
	"encoding/json"
	"fmt"
	"io"

	"botbowl/pkg/engine"
)

// Recorder appends one JSON snapshot per Step to an io.Writer -- never a
// file directly, so pkg/runner itself carries no filesystem dependency;
// a caller wanting a recording on disk simply hands Recorder an *os.File
// (spec.md §6's "runner may persist the recording to disk as JSON").
type Recorder struct {
	enc *json.Encoder
}

// NewRecorder returns a Recorder that writes newline-delimited JSON
// snapshots to w.
func NewRecorder(w io.Writer) *Recorder {
	return &Recorder{enc: json.NewEncoder(w)}
}

// Record appends gs's current snapshot (board + fixed-roll queue, per
// GameState.Serialize) to the recording.
func (r *Recorder) Record(gs *engine.GameState) error {
	raw, err := gs.Serialize()
	if err != nil {
		return fmt.Errorf("runner: serializing snapshot: %w", err)
	}
	return r.enc.Encode(json.RawMessage(raw))
}
