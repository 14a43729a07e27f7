package dice

// RollTarget couples a pass/fail threshold with modifier arithmetic and an
// exact success-probability accessor, used by the pathfinder to multiply
// cumulative path probabilities.
type RollTarget interface {
	IsSuccess(roll uint8) bool
	AddModifier(modifier int8) RollTarget
	SuccessProb() float64
}

// D6Target is a pass/fail threshold against a single D6, clamped to 2..=6.
type D6Target uint8

var d6Probs = [7]float64{
	0, 0,
	5.0 / 6.0,
	4.0 / 6.0,
	3.0 / 6.0,
	2.0 / 6.0,
	1.0 / 6.0,
}

// NewD6Target builds a D6Target, clamping the threshold into 2..=6.
func NewD6Target(threshold int8) D6Target {
	return D6Target(clamp(threshold, 2, 6))
}

func (t D6Target) IsSuccess(roll uint8) bool {
	validateD6(roll)
	return uint8(t) <= roll
}

// AddModifier shifts the threshold by -modifier (a positive modifier makes
// the roll easier, i.e. lowers the target), clamped to the legal 2..=6
// range, and returns the updated target.
func (t D6Target) AddModifier(modifier int8) RollTarget {
	return NewD6Target(int8(t) - modifier)
}

func (t D6Target) SuccessProb() float64 {
	return d6Probs[t]
}

// Sum2D6Target is a pass/fail threshold against the sum of two D6, clamped
// to 2..=12.
type Sum2D6Target uint8

var sum2D6Probs = [13]float64{
	0, 0,
	1.0,
	35.0 / 36.0,
	33.0 / 36.0,
	30.0 / 36.0,
	26.0 / 36.0,
	21.0 / 36.0,
	15.0 / 36.0,
	10.0 / 36.0,
	6.0 / 36.0,
	3.0 / 36.0,
	1.0 / 36.0,
}

// NewSum2D6Target builds a Sum2D6Target, clamping into 2..=12.
func NewSum2D6Target(threshold int8) Sum2D6Target {
	return Sum2D6Target(clamp(threshold, 2, 12))
}

func (t Sum2D6Target) IsSuccess(roll uint8) bool {
	validateSum2D6(roll)
	return uint8(t) <= roll
}

func (t Sum2D6Target) AddModifier(modifier int8) RollTarget {
	return NewSum2D6Target(int8(t) - modifier)
}

func (t Sum2D6Target) SuccessProb() float64 {
	return sum2D6Probs[t]
}

func clamp(v, lo, hi int8) int8 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
