package dice

// RollKind tags what a RequestedRoll / RollResult pair is about. Procedures
// never construct raw dice values themselves; they describe what they need
// via a RequestedRoll and the engine driver resolves it (fixed queue first,
// RNG fallback) into a matching RollResult.
type RollKind uint8

const (
	KindBlockDice RollKind = iota
	KindCoin
	KindD6
	KindD6PassFail
	KindD6ThreeOutcomes
	KindD8
	KindFoulArmor
	KindFoulInjury
	KindKick
	KindSum2D6
	KindSum2D6PassFail
	KindSum2D6ThreeOutcomes
	KindThrowIn
)

// RequestedRoll describes what the next roll must be.
type RequestedRoll struct {
	Kind RollKind

	// BlockDice
	NumBlockDice int

	// D6PassFail / Sum2D6PassFail
	PassTarget RollTarget

	// D6ThreeOutcomes / Sum2D6ThreeOutcomes: roll >= High is the best
	// outcome, roll >= Low (but < High) is the middle outcome, else fail.
	LowTarget  RollTarget
	HighTarget RollTarget

	// FoulArmor / FoulInjury
	ArmorTarget  Sum2D6Target
	InjuryTarget Sum2D6Target
}

// ThreeOutcome is the result of a D6ThreeOutcomes / Sum2D6ThreeOutcomes
// roll: Fail, MiddleOutcome, or Pass (best).
type ThreeOutcome uint8

const (
	OutcomeFail ThreeOutcome = iota
	OutcomeMiddle
	OutcomePass
)

// InjuryOutcome is the outcome of an injury roll.
type InjuryOutcome uint8

const (
	InjuryStunned InjuryOutcome = iota
	InjuryKO
	InjuryCasualty
)

// RollResult is the resolution of a RequestedRoll. Only the fields
// relevant to Kind are populated; callers switch on Kind.
type RollResult struct {
	Kind RollKind

	BlockDice []BlockDice // len == requested NumBlockDice

	Coin Coin

	D6     D6
	D8     D8
	Sum2D6 Sum2D6

	// Success is populated for D6PassFail / Sum2D6PassFail.
	Success bool

	ThreeOutcome ThreeOutcome

	FoulArmorBroken  bool
	FoulArmorEjected bool
	InjuryOutcome    InjuryOutcome
	InjuryEjected    bool

	ThrowInDirection D3
	ThrowInDistance  Sum2D6

	KickD6 D6
	KickD8 D8
}
