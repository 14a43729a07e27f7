// Package dice implements Blood Bowl's typed die kinds, roll targets with
// modifier arithmetic and success-probability lookup, and the per-kind
// fixed-roll queue that lets tests and replays pin specific outcomes.
//
// Random sampling is done with a caller-supplied *rand.Rand, seeded the
// same way the teacher repo seeds its card deck: rand.New(rand.NewSource(seed)).
package dice

import (
	"fmt"
	"math/rand"
)

// D3 is a three-sided die result, 1..=3.
type D3 uint8

// D6 is a six-sided die result, 1..=6.
type D6 uint8

// D8 is an eight-sided die result, 1..=8, also usable as a compass index
// (see board.Direction).
type D8 uint8

// Sum2D6 is the sum of two D6, 2..=12.
type Sum2D6 uint8

// Coin is the result of a coin toss.
type Coin uint8

const (
	Heads Coin = iota
	Tails
)

// BlockDice is one face of the Blood Bowl block die.
type BlockDice uint8

const (
	Skull BlockDice = iota
	BothDown
	Push
	PowPush
	Pow
)

func (b BlockDice) String() string {
	switch b {
	case Skull:
		return "Skull"
	case BothDown:
		return "BothDown"
	case Push:
		return "Push"
	case PowPush:
		return "PowPush"
	case Pow:
		return "Pow"
	default:
		return "InvalidBlockDice"
	}
}

// RollD3 samples a uniform D3 from rng.
func RollD3(rng *rand.Rand) D3 { return D3(1 + rng.Intn(3)) }

// RollD6 samples a uniform D6 from rng.
func RollD6(rng *rand.Rand) D6 { return D6(1 + rng.Intn(6)) }

// RollD8 samples a uniform D8 from rng.
func RollD8(rng *rand.Rand) D8 { return D8(1 + rng.Intn(8)) }

// RollSum2D6 samples two independent D6 and returns their sum.
func RollSum2D6(rng *rand.Rand) Sum2D6 { return Sum2D6(RollD6(rng)) + Sum2D6(RollD6(rng)) }

// RollCoin samples a uniform coin toss.
func RollCoin(rng *rand.Rand) Coin {
	if rng.Intn(2) == 0 {
		return Heads
	}
	return Tails
}

// RollBlockDice samples a single block die face, following the standard
// Blood Bowl block-die distribution (1 face each skull/both-down/pow,
// 2 faces push).
func RollBlockDice(rng *rand.Rand) BlockDice {
	switch 1 + rng.Intn(6) {
	case 1:
		return Skull
	case 2:
		return BothDown
	case 3, 4:
		return Push
	case 5:
		return PowPush
	case 6:
		return Pow
	default:
		panic("unreachable block dice roll")
	}
}

func validateD6(v uint8) {
	if v < 1 || v > 6 {
		panic(fmt.Sprintf("dice: invalid D6 value %d", v))
	}
}

func validateSum2D6(v uint8) {
	if v < 2 || v > 12 {
		panic(fmt.Sprintf("dice: invalid Sum2D6 value %d", v))
	}
}
