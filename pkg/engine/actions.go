package engine

import (
	"botbowl/pkg/board"
	"botbowl/pkg/pathfinder"
)

// ActionKind enumerates the full action vocabulary a bot can submit
// (spec.md §6): positional actions carry a Position and/or PlayerID,
// simple actions carry neither.
type ActionKind uint8

const (
	// Positional
	ActStartMove ActionKind = iota
	ActStartBlitz
	ActStartPass
	ActStartFoul
	ActStartHandoff
	ActStartBlock
	ActMove
	ActBlock
	ActPush
	ActFollowUp
	ActHandoff
	ActFoul
	ActSelectPosition
	ActPass

	// Simple
	ActHeads
	ActTails
	ActKick
	ActReceive
	ActSetupLine
	ActEndSetup
	ActKickoffAimMiddle
	ActSelectBothDown
	ActSelectPow
	ActSelectPush
	ActSelectPowPush
	ActSelectSkull
	ActUseReroll
	ActDontUseReroll
	ActEndPlayerTurn
	ActEndTurn
)

func (k ActionKind) isPositional() bool {
	return k <= ActPass
}

// Action is one discrete move a bot submits to GameState.Step.
type Action struct {
	Kind     ActionKind
	PlayerID board.PlayerID
	Position board.Position
	Role     board.PlayerArchetype // SetupLine only
}

func SimpleAction(kind ActionKind) Action { return Action{Kind: kind} }

func PlayerAction(kind ActionKind, id board.PlayerID) Action {
	return Action{Kind: kind, PlayerID: id}
}

func PositionAction(kind ActionKind, pos board.Position) Action {
	return Action{Kind: kind, Position: pos}
}

// AvailableActions is the menu published whenever the procedure stack
// needs external input (spec.md §3, §6). Exactly one of the maps/sets is
// normally populated per call, but nothing forbids more -- legality is a
// pure lookup, never positional vs simple exclusivity.
type AvailableActions struct {
	Team AvailableTeam

	// Simple holds buttons with no attached position/player.
	Simple map[ActionKind]bool

	// PlayerChoices holds positional actions keyed by kind, each legal for
	// a specific player id: StartMove/StartBlitz/StartFoul/StartHandoff/
	// StartPass/StartBlock.
	PlayerChoices map[ActionKind][]board.PlayerID

	// Positions holds positional actions keyed by kind, each legal at a
	// specific square: Push/FollowUp/Foul/Handoff/SelectPosition/Pass.
	Positions map[ActionKind][]board.Position

	// Paths holds the Move/Block endpoints produced by the pathfinder,
	// keyed by destination square, carrying the probability/events a
	// selection will replay.
	Paths map[board.Position]*pathfinder.Node
}

// AvailableTeam optionally binds a menu to one team; the zero value (Both)
// means either team's actions may be legal (e.g. UseReroll during a block
// a defender chooses to reroll).
type AvailableTeam struct {
	Bound bool
	Team  board.TeamType
}

func BoundTeam(t board.TeamType) AvailableTeam { return AvailableTeam{Bound: true, Team: t} }

func NewAvailableActions() AvailableActions {
	return AvailableActions{
		Simple:        map[ActionKind]bool{},
		PlayerChoices: map[ActionKind][]board.PlayerID{},
		Positions:     map[ActionKind][]board.Position{},
		Paths:         map[board.Position]*pathfinder.Node{},
	}
}

func (aa AvailableActions) IsEmpty() bool {
	return len(aa.Simple) == 0 && len(aa.PlayerChoices) == 0 &&
		len(aa.Positions) == 0 && len(aa.Paths) == 0
}

// IsLegal is the lookup spec.md §7 requires IllegalAction to check
// before any stack mutation happens.
func (aa AvailableActions) IsLegal(a Action) bool {
	if aa.Simple[a.Kind] {
		return true
	}
	for _, id := range aa.PlayerChoices[a.Kind] {
		if id == a.PlayerID {
			return true
		}
	}
	for _, pos := range aa.Positions[a.Kind] {
		if pos == a.Position {
			return true
		}
	}
	if a.Kind == ActMove || a.Kind == ActBlock || a.Kind == ActHandoff || a.Kind == ActFoul {
		if _, ok := aa.Paths[a.Position]; ok {
			return true
		}
	}
	return false
}
