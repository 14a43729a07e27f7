package board

// BallKind tags the variant of BallState, the same tagged-struct shape
// the teacher uses for Card (Suit+Value pair standing in for a Rust sum
// type) rather than a Go interface -- keeps the ball trivially comparable
// and JSON-serializable.
type BallKind uint8

const (
	OffPitch BallKind = iota
	OnGround
	Carried
	InAir
)

// BallState is the location/possession of the ball. Invariant (spec.md
// §3): if Carried, the named player exists and is Up; if OnGround, the
// square is empty or holds a Down/Stunned player.
type BallState struct {
	Kind     BallKind
	Position Position // valid for OnGround, InAir
	Carrier  PlayerID // valid for Carried
}

func NewOffPitchBall() BallState { return BallState{Kind: OffPitch} }
func NewOnGroundBall(pos Position) BallState {
	return BallState{Kind: OnGround, Position: pos}
}
func NewCarriedBall(id PlayerID) BallState {
	return BallState{Kind: Carried, Carrier: id}
}
func NewInAirBall(pos Position) BallState {
	return BallState{Kind: InAir, Position: pos}
}

func (b BallState) IsCarriedBy(id PlayerID) bool {
	return b.Kind == Carried && b.Carrier == id
}

func (b BallState) IsOnGroundAt(pos Position) bool {
	return b.Kind == OnGround && b.Position == pos
}
