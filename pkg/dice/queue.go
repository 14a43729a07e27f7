package dice

import "math/rand"

// FixedQueue holds one FIFO per raw die kind (D3/D6/D8/Coin/BlockDice).
// A 2D6 roll is never queued directly: it is always composed of two D6
// draws (see Roller.Sum2D6Pair), exactly the way spec.md §8's seed
// scenarios fix it ("fix D6=1, D6=1" for an armor roll). That keeps a
// single D6 queue authoritative and lets "doubles" (armor/injury
// ejection) be detected from the actual pair rather than guessed from a
// sum. A separate queue per raw kind -- rather than one heterogeneous
// queue -- avoids ordering coupling between independent rolls requested
// within a single Step, per spec.md §9.
type FixedQueue struct {
	d3        []D3
	d6        []D6
	d8        []D8
	coin      []Coin
	blockDice [][]BlockDice
}

// NewFixedQueue returns an empty FixedQueue.
func NewFixedQueue() *FixedQueue {
	return &FixedQueue{}
}

func (q *FixedQueue) FixD3(v D3) { q.d3 = append(q.d3, v) }
func (q *FixedQueue) FixD6(v D6) { q.d6 = append(q.d6, v) }
func (q *FixedQueue) FixD8(v D8) { q.d8 = append(q.d8, v) }
func (q *FixedQueue) FixCoin(v Coin) { q.coin = append(q.coin, v) }
func (q *FixedQueue) FixBlockDice(v []BlockDice) {
	cp := make([]BlockDice, len(v))
	copy(cp, v)
	q.blockDice = append(q.blockDice, cp)
}

func popD3(s *[]D3) (D3, bool) {
	if len(*s) == 0 {
		return 0, false
	}
	v := (*s)[0]
	*s = (*s)[1:]
	return v, true
}
func popD6(s *[]D6) (D6, bool) {
	if len(*s) == 0 {
		return 0, false
	}
	v := (*s)[0]
	*s = (*s)[1:]
	return v, true
}
func popD8(s *[]D8) (D8, bool) {
	if len(*s) == 0 {
		return 0, false
	}
	v := (*s)[0]
	*s = (*s)[1:]
	return v, true
}
func popCoin(s *[]Coin) (Coin, bool) {
	if len(*s) == 0 {
		return 0, false
	}
	v := (*s)[0]
	*s = (*s)[1:]
	return v, true
}
func popBlockDice(s *[][]BlockDice) ([]BlockDice, bool) {
	if len(*s) == 0 {
		return nil, false
	}
	v := (*s)[0]
	*s = (*s)[1:]
	return v, true
}

// Empty reports whether every per-kind FIFO is drained. Tests are
// required to end with Empty() true (spec.md §4.1).
func (q *FixedQueue) Empty() bool {
	return len(q.d3) == 0 && len(q.d6) == 0 && len(q.d8) == 0 &&
		len(q.coin) == 0 && len(q.blockDice) == 0
}

// QueueSnapshot is the exported, JSON-serializable mirror of a
// FixedQueue's remaining entries, used by GameState.Serialize.
type QueueSnapshot struct {
	D3        []D3         `json:"d3"`
	D6        []D6         `json:"d6"`
	D8        []D8         `json:"d8"`
	Coin      []Coin       `json:"coin"`
	BlockDice [][]BlockDice `json:"blockDice"`
}

// Snapshot captures the queue's remaining entries.
func (q *FixedQueue) Snapshot() QueueSnapshot {
	return QueueSnapshot{D3: q.d3, D6: q.d6, D8: q.d8, Coin: q.coin, BlockDice: q.blockDice}
}

// RestoreQueue rebuilds a FixedQueue from a snapshot taken via Snapshot.
func RestoreQueue(s QueueSnapshot) *FixedQueue {
	return &FixedQueue{d3: s.D3, d6: s.D6, d8: s.D8, coin: s.Coin, blockDice: s.BlockDice}
}

// Roller draws raw die values, preferring the fixed queue and falling
// back to the seeded RNG.
type Roller struct {
	Queue *FixedQueue
	RNG   *rand.Rand
}

// NewRoller builds a Roller over queue and rng. Neither may be nil.
func NewRoller(queue *FixedQueue, rng *rand.Rand) *Roller {
	return &Roller{Queue: queue, RNG: rng}
}

func (r *Roller) D3() D3 {
	if v, ok := popD3(&r.Queue.d3); ok {
		return v
	}
	return RollD3(r.RNG)
}

func (r *Roller) D6() D6 {
	if v, ok := popD6(&r.Queue.d6); ok {
		return v
	}
	return RollD6(r.RNG)
}

func (r *Roller) D8() D8 {
	if v, ok := popD8(&r.Queue.d8); ok {
		return v
	}
	return RollD8(r.RNG)
}

// Sum2D6Pair draws two independent D6 (each fixed-queue-first) and
// returns both dice plus their sum, so callers that care about doubles
// (armor/injury ejection) can see the individual values.
func (r *Roller) Sum2D6Pair() (D6, D6, Sum2D6) {
	a := r.D6()
	b := r.D6()
	return a, b, Sum2D6(a) + Sum2D6(b)
}

func (r *Roller) Sum2D6() Sum2D6 {
	_, _, sum := r.Sum2D6Pair()
	return sum
}

func (r *Roller) Coin() Coin {
	if v, ok := popCoin(&r.Queue.coin); ok {
		return v
	}
	return RollCoin(r.RNG)
}

// BlockDice draws `count` block dice, as a single fixed entry if one was
// queued (its length must match count, an internal/test-setup error
// otherwise), or as `count` independent RNG samples.
func (r *Roller) BlockDice(count int) []BlockDice {
	if v, ok := popBlockDice(&r.Queue.blockDice); ok {
		if len(v) != count {
			panic("dice: fixed block dice count does not match requested count")
		}
		return v
	}
	out := make([]BlockDice, count)
	for i := range out {
		out[i] = RollBlockDice(r.RNG)
	}
	return out
}

// Resolve drains/samples whatever RequestedRoll req asks for and returns
// the corresponding semantic RollResult.
func (r *Roller) Resolve(req RequestedRoll) RollResult {
	switch req.Kind {
	case KindBlockDice:
		return RollResult{Kind: req.Kind, BlockDice: r.BlockDice(req.NumBlockDice)}
	case KindCoin:
		return RollResult{Kind: req.Kind, Coin: r.Coin()}
	case KindD6:
		return RollResult{Kind: req.Kind, D6: r.D6()}
	case KindD6PassFail:
		roll := r.D6()
		return RollResult{Kind: req.Kind, D6: roll, Success: req.PassTarget.IsSuccess(uint8(roll))}
	case KindD6ThreeOutcomes:
		roll := r.D6()
		return RollResult{Kind: req.Kind, D6: roll, ThreeOutcome: threeOutcome(req, uint8(roll))}
	case KindD8:
		return RollResult{Kind: req.Kind, D8: r.D8()}
	case KindFoulArmor:
		a, b, sum := r.Sum2D6Pair()
		broken := req.ArmorTarget.IsSuccess(uint8(sum))
		return RollResult{
			Kind:             req.Kind,
			Sum2D6:           sum,
			FoulArmorBroken:  broken,
			FoulArmorEjected: a == b,
		}
	case KindFoulInjury:
		a, b, sum := r.Sum2D6Pair()
		return RollResult{
			Kind:          req.Kind,
			Sum2D6:        sum,
			InjuryOutcome: injuryOutcome(sum),
			InjuryEjected: a == b,
		}
	case KindKick:
		return RollResult{Kind: req.Kind, KickD6: r.D6(), KickD8: r.D8()}
	case KindSum2D6:
		return RollResult{Kind: req.Kind, Sum2D6: r.Sum2D6()}
	case KindSum2D6PassFail:
		roll := r.Sum2D6()
		return RollResult{Kind: req.Kind, Sum2D6: roll, Success: req.PassTarget.IsSuccess(uint8(roll))}
	case KindSum2D6ThreeOutcomes:
		roll := r.Sum2D6()
		return RollResult{Kind: req.Kind, Sum2D6: roll, ThreeOutcome: threeOutcome(req, uint8(roll))}
	case KindThrowIn:
		return RollResult{Kind: req.Kind, ThrowInDirection: r.D3(), ThrowInDistance: r.Sum2D6()}
	default:
		panic("dice: unknown RequestedRoll kind")
	}
}

func threeOutcome(req RequestedRoll, roll uint8) ThreeOutcome {
	if req.HighTarget.IsSuccess(roll) {
		return OutcomePass
	}
	if req.LowTarget.IsSuccess(roll) {
		return OutcomeMiddle
	}
	return OutcomeFail
}

// InjuryOutcomeFor exposes injuryOutcome for callers resolving a plain
// (non-foul) 2D6 injury roll, where doubles carry no ejection meaning.
func InjuryOutcomeFor(v Sum2D6) InjuryOutcome { return injuryOutcome(v) }

// injuryOutcome maps a 2D6 injury roll to its outcome band: 10-12
// casualty, 8-9 KO, else stunned.
func injuryOutcome(v Sum2D6) InjuryOutcome {
	switch {
	case v >= 10:
		return InjuryCasualty
	case v >= 8:
		return InjuryKO
	default:
		return InjuryStunned
	}
}
