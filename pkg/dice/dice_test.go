package dice

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestD6TargetSuccessProb(t *testing.T) {
	require.InDelta(t, 4.0/6.0, NewD6Target(3).SuccessProb(), 1e-9)
	require.InDelta(t, 1.0/6.0, NewD6Target(6).SuccessProb(), 1e-9)
}

func TestD6TargetModifierClamps(t *testing.T) {
	t5 := NewD6Target(5)
	t5 = t5.AddModifier(-5).(D6Target)
	require.Equal(t, NewD6Target(6), t5)

	t2 := NewD6Target(2).AddModifier(5).(D6Target)
	require.Equal(t, NewD6Target(2), t2)
}

func TestSum2D6TargetSuccessProb(t *testing.T) {
	require.InDelta(t, 1.0, NewSum2D6Target(2).SuccessProb(), 1e-9)
	require.InDelta(t, 1.0/36.0, NewSum2D6Target(12).SuccessProb(), 1e-9)
}

func TestFixedQueueDrainsBeforeRNG(t *testing.T) {
	q := NewFixedQueue()
	q.FixD6(4)
	q.FixD8(7)

	roller := NewRoller(q, rand.New(rand.NewSource(1)))
	require.Equal(t, D6(4), roller.D6())
	require.Equal(t, D8(7), roller.D8())
	require.True(t, q.Empty())

	// now falls back to RNG, should not panic and stays in range.
	v := roller.D6()
	require.GreaterOrEqual(t, uint8(v), uint8(1))
	require.LessOrEqual(t, uint8(v), uint8(6))
}

func TestSum2D6PairDoublesDetection(t *testing.T) {
	q := NewFixedQueue()
	q.FixD6(3)
	q.FixD6(3)
	roller := NewRoller(q, rand.New(rand.NewSource(1)))

	res := roller.Resolve(RequestedRoll{Kind: KindFoulArmor, ArmorTarget: NewSum2D6Target(8)})
	require.Equal(t, Sum2D6(6), res.Sum2D6)
	require.True(t, res.FoulArmorEjected)
	require.False(t, res.FoulArmorBroken)
}

func TestInjuryOutcomeBands(t *testing.T) {
	require.Equal(t, InjuryStunned, injuryOutcome(7))
	require.Equal(t, InjuryKO, injuryOutcome(8))
	require.Equal(t, InjuryKO, injuryOutcome(9))
	require.Equal(t, InjuryCasualty, injuryOutcome(10))
}

func TestBlockDiceFixedCountMismatchPanics(t *testing.T) {
	q := NewFixedQueue()
	q.FixBlockDice([]BlockDice{Push, Push})
	roller := NewRoller(q, rand.New(rand.NewSource(1)))

	require.Panics(t, func() {
		roller.BlockDice(3)
	})
}
