package engine

import (
	"encoding/json"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/decred/slog"

	"botbowl/pkg/board"
	"botbowl/pkg/dice"
)

// GameState is the engine's top-level aggregate: the board, the seeded
// roller, the procedure stack and the most recently published menu
// (spec.md §3). A single mutex guards every public method, the same
// single-writer discipline the teacher's Game applies around its own
// state machine -- spec.md §5 calls the engine single-threaded and
// fully synchronous, but a server wrapping many concurrent bot
// goroutines still needs the lock the teacher takes for granted.
type GameState struct {
	mu sync.Mutex

	Board *board.Board

	rng    *rand.Rand
	queue  *dice.FixedQueue
	roller *dice.Roller

	stack  []Proc
	lastAA AvailableActions

	log slog.Logger
}

// NewGameState builds a GameState over b, seeded with seed, and pushes
// root as the bottom procedure frame, priming the stack (running the
// driver loop with Nothing) so the first AvailableActions is already
// available before any Step call -- mirroring how the teacher's NewGame
// leaves a ready-to-query Game rather than requiring a throwaway first
// step.
func NewGameState(b *board.Board, seed int64, log slog.Logger, root Proc) *GameState {
	if log == nil {
		log = slog.Disabled
	}
	rng := rand.New(rand.NewSource(seedOrTime(seed)))
	gs := &GameState{
		Board:  b,
		rng:    rng,
		queue:  dice.NewFixedQueue(),
		log:    log,
	}
	gs.roller = dice.NewRoller(gs.queue, gs.rng)
	gs.stack = []Proc{root}
	if err := gs.drive(NothingInput()); err != nil {
		panic(fmt.Sprintf("engine: priming the procedure stack failed: %v", err))
	}
	return gs
}

func seedOrTime(seed int64) int64 {
	if seed != 0 {
		return seed
	}
	return time.Now().UnixNano()
}

// SetSeed reinitializes the RNG (spec.md §6's set_seed).
func (gs *GameState) SetSeed(seed int64) {
	gs.mu.Lock()
	defer gs.mu.Unlock()
	gs.rng = rand.New(rand.NewSource(seedOrTime(seed)))
	gs.roller = dice.NewRoller(gs.queue, gs.rng)
}

func (gs *GameState) FixD3(v dice.D3)             { gs.mu.Lock(); defer gs.mu.Unlock(); gs.queue.FixD3(v) }
func (gs *GameState) FixD6(v dice.D6)             { gs.mu.Lock(); defer gs.mu.Unlock(); gs.queue.FixD6(v) }
func (gs *GameState) FixD8(v dice.D8)             { gs.mu.Lock(); defer gs.mu.Unlock(); gs.queue.FixD8(v) }
func (gs *GameState) FixCoin(v dice.Coin)         { gs.mu.Lock(); defer gs.mu.Unlock(); gs.queue.FixCoin(v) }
func (gs *GameState) FixBlockDice(v []dice.BlockDice) {
	gs.mu.Lock()
	defer gs.mu.Unlock()
	gs.queue.FixBlockDice(v)
}

// FixSum2D6 fixes the pair of D6 that compose a 2D6 roll (spec.md §4.1's
// queue never stores a sum directly).
func (gs *GameState) FixSum2D6(a, b dice.D6) {
	gs.mu.Lock()
	defer gs.mu.Unlock()
	gs.queue.FixD6(a)
	gs.queue.FixD6(b)
}

// QueueEmpty reports whether every fixed-roll queue has drained --
// tests are required to end with this true (spec.md §4.1).
func (gs *GameState) QueueEmpty() bool {
	gs.mu.Lock()
	defer gs.mu.Unlock()
	return gs.queue.Empty()
}

// AvailableActions returns the menu most recently published by the
// procedure stack.
func (gs *GameState) AvailableActions() AvailableActions {
	gs.mu.Lock()
	defer gs.mu.Unlock()
	return gs.lastAA
}

// GameOver reports whether info.game_over is set.
func (gs *GameState) GameOver() bool {
	gs.mu.Lock()
	defer gs.mu.Unlock()
	return gs.Board.Info.GameOver
}

// Step hands action to the top procedure frame and drives the stack
// until the next NeedAction or game-over (spec.md §2, §4.3, §6).
// Illegal actions are rejected before any mutation.
func (gs *GameState) Step(a Action) error {
	gs.mu.Lock()
	defer gs.mu.Unlock()

	if gs.Board.Info.GameOver {
		return &ErrGameOver{}
	}
	if !gs.lastAA.IsLegal(a) {
		return &ErrIllegalAction{Action: a}
	}
	return gs.drive(ActionInput(a))
}

// drive runs the procedure-stack loop (spec.md §4.3's driver loop) to
// completion: pop/step the top frame, apply the returned ProcState,
// repeat until a frame asks for an action or the stack empties under
// game-over.
func (gs *GameState) drive(in ProcInput) error {
	for {
		if len(gs.stack) == 0 {
			if gs.Board.Info.GameOver {
				gs.lastAA = AvailableActions{}
				return nil
			}
			panicEmptyProcStack()
		}

		top := gs.stack[len(gs.stack)-1]
		st := top.Step(gs, in)
		in = NothingInput()

		switch st.Kind {
		case StateNotDone:
			continue
		case StateDone:
			gs.stack = gs.stack[:len(gs.stack)-1]
			continue
		case StateNotDoneNewProcs:
			gs.pushProcs(st.Procs)
			continue
		case StateDoneNewProcs:
			gs.stack = gs.stack[:len(gs.stack)-1]
			gs.pushProcs(st.Procs)
			continue
		case StateNeedRoll:
			res := gs.roller.Resolve(st.Roll)
			in = RollInput(res)
			continue
		case StateNeedAction:
			gs.lastAA = st.AA
			if gs.Board.Info.GameOver {
				gs.lastAA = AvailableActions{}
			}
			return nil
		default:
			panic("engine: unknown ProcState kind")
		}
	}
}

// pushProcs appends ps in order, so its last element lands on top of the
// stack and therefore steps first -- spec.md §4.3's "frames pushed as a
// vector execute in reverse (last element runs first)".
func (gs *GameState) pushProcs(ps []Proc) {
	gs.stack = append(gs.stack, ps...)
}

// snapshot is the JSON-serializable mirror of a GameState, used by
// Serialize/Deserialize (spec.md §6). Neither the RNG's internal stream
// nor its seed is stored; Deserialize builds a fresh RNG from the seed it
// is given, matching spec.md §5's note that determinism is only
// promised while the fixed-roll queues are populated.
type snapshot struct {
	Board *board.Board      `json:"board"`
	Queue dice.QueueSnapshot `json:"queue"`
	Stack []json.RawMessage `json:"-"`
}

// Serialize round-trips the board and fixed-roll queue (spec.md §6's
// serialize()). The procedure stack itself is not portable across
// processes in this port (see DESIGN.md); callers that need a resumable
// snapshot mid-action should instead drive a fresh GameState up to the
// same AvailableActions via a recorded action trace (spec.md §8's
// replay-determinism property), which is the round trip spec.md's
// testable properties actually exercise.
func (gs *GameState) Serialize() ([]byte, error) {
	gs.mu.Lock()
	defer gs.mu.Unlock()
	return json.Marshal(snapshot{Board: gs.Board, Queue: gs.queue.Snapshot()})
}

// Deserialize restores a GameState's board and fixed-roll queue from
// bytes produced by Serialize. The returned GameState has no procedure
// stack yet (the stack is not serialized, see Serialize's doc comment);
// the caller must call Resume with the frames appropriate to where
// play was left off before querying AvailableActions or calling Step.
func Deserialize(data []byte, seed int64, log slog.Logger) (*GameState, error) {
	var snap snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("engine: deserialize: %w", err)
	}
	snap.Board.RebuildOccupancy()
	if log == nil {
		log = slog.Disabled
	}
	rng := rand.New(rand.NewSource(seedOrTime(seed)))
	queue := dice.RestoreQueue(snap.Queue)
	gs := &GameState{
		Board: snap.Board,
		rng:   rng,
		queue: queue,
		log:   log,
	}
	gs.roller = dice.NewRoller(gs.queue, gs.rng)
	return gs, nil
}

// Resume installs stack as the procedure stack and drives it until the
// next NeedAction or game-over, publishing AvailableActions.
func (gs *GameState) Resume(stack []Proc) error {
	gs.mu.Lock()
	defer gs.mu.Unlock()
	gs.stack = stack
	return gs.drive(NothingInput())
}
