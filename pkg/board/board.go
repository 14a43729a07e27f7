package board

import "fmt"

// MaxFieldedPlayers is the fixed roster capacity per spec.md §3
// ("fixed-capacity 22-slot player array").
const MaxFieldedPlayers = 22

// MaxDugoutPlayers is the fixed dugout capacity per spec.md §3
// ("32-slot dugout array").
const MaxDugoutPlayers = 32

// Board is the Blood Bowl board model: the occupancy grid, the fielded
// and dugout rosters, the ball, both team states and the shared game
// info (spec.md §3, §4.2). It owns no procedure-stack or dice-queue
// state; pkg/engine.GameState embeds a Board and adds those.
type Board struct {
	Players [MaxFieldedPlayers]*FieldedPlayer
	Dugout  [MaxDugoutPlayers]*DugoutPlayer

	occupancy [Width][Height]*PlayerID

	Ball BallState

	HomeTeam TeamState
	AwayTeam TeamState

	Info GameInfo
}

// NewBoard returns an empty board: no players fielded or in the dugout,
// ball off pitch, default GameInfo.
func NewBoard() *Board {
	return &Board{
		Ball: NewOffPitchBall(),
		Info: NewGameInfo(),
	}
}

// RebuildOccupancy repopulates the occupancy grid from Players' recorded
// positions. The grid is unexported (and so skipped by encoding/json),
// so a deserializer must call this once after populating Players.
func (b *Board) RebuildOccupancy() {
	b.occupancy = [Width][Height]*PlayerID{}
	for i, p := range b.Players {
		if p == nil {
			continue
		}
		b.occupancy[p.Position.X][p.Position.Y] = &b.Players[i].ID
	}
}

// Team returns the TeamState for team.
func (b *Board) Team(team TeamType) *TeamState {
	if team == Home {
		return &b.HomeTeam
	}
	return &b.AwayTeam
}

// Get returns the fielded player with id, panicking with
// InvalidPlayerID-shaped message if it does not exist -- an internal
// error per spec.md §7 (lookups on a non-existent id indicate an
// implementation bug, never a user-facing condition).
func (b *Board) Get(id PlayerID) *FieldedPlayer {
	if int(id) < 0 || int(id) >= MaxFieldedPlayers || b.Players[id] == nil {
		panic(fmt.Sprintf("board: InvalidPlayerID %d", id))
	}
	return b.Players[id]
}

// TryGet is the non-panicking counterpart of Get.
func (b *Board) TryGet(id PlayerID) (*FieldedPlayer, bool) {
	if int(id) < 0 || int(id) >= MaxFieldedPlayers || b.Players[id] == nil {
		return nil, false
	}
	return b.Players[id], true
}

// At returns the player occupying pos, if any.
func (b *Board) At(pos Position) (*FieldedPlayer, bool) {
	if pos.X < 0 || pos.X >= Width || pos.Y < 0 || pos.Y >= Height {
		return nil, false
	}
	id := b.occupancy[pos.X][pos.Y]
	if id == nil {
		return nil, false
	}
	return b.Get(*id), true
}

// IsEmpty reports whether pos holds no player.
func (b *Board) IsEmpty(pos Position) bool {
	_, ok := b.At(pos)
	return !ok
}

// FieldPlayer places a new player at pos, returning an error if the
// square is occupied or the roster is full.
func (b *Board) FieldPlayer(p *FieldedPlayer) error {
	if !b.IsEmpty(p.Position) {
		return fmt.Errorf("board: cannot field player at occupied square %v", p.Position)
	}
	slot := -1
	for i, existing := range b.Players {
		if existing == nil {
			slot = i
			break
		}
	}
	if slot == -1 {
		return fmt.Errorf("board: roster is full (%d players)", MaxFieldedPlayers)
	}
	p.ID = PlayerID(slot)
	b.Players[slot] = p
	b.occupancy[p.Position.X][p.Position.Y] = &b.Players[slot].ID
	return nil
}

// UnfieldPlayer removes the player at id from the pitch into the
// dugout at place. If the removed player was carrying the ball, the
// caller is responsible for resolving the resulting bounce (this
// function reports that the carrier was removed via carriedBall so the
// caller -- the KnockDown/Ejection procedures -- can spawn Bounce); it
// also clears Info.ActivePlayer if it named this player.
func (b *Board) UnfieldPlayer(id PlayerID, place DugoutPlace) (carriedBall bool) {
	p := b.Get(id)
	carriedBall = b.Ball.IsCarriedBy(id)

	b.occupancy[p.Position.X][p.Position.Y] = nil
	b.Players[id] = nil

	dugoutSlot := -1
	for i, existing := range b.Dugout {
		if existing == nil {
			dugoutSlot = i
			break
		}
	}
	if dugoutSlot == -1 {
		panic("board: dugout is full")
	}
	b.Dugout[dugoutSlot] = &DugoutPlayer{
		ID:        id,
		Team:      p.Team,
		Archetype: p.Archetype,
		Stats:     p.Stats,
		Skills:    p.Skills,
		Place:     place,
	}

	if b.Info.ActivePlayer != nil && *b.Info.ActivePlayer == id {
		b.Info.ActivePlayer = nil
	}
	return carriedBall
}

// SetDugoutPlace updates the dugout entry for id, already unfielded, to
// place. Used when an injury roll determines a crowd-pushed player's
// final resting place after pushProc has already unfielded them (to a
// placeholder Reserves slot) to free their square ahead of the roll.
func (b *Board) SetDugoutPlace(id PlayerID, place DugoutPlace) {
	for _, d := range b.Dugout {
		if d != nil && d.ID == id {
			d.Place = place
			return
		}
	}
	panic(fmt.Sprintf("board: SetDugoutPlace: player %d is not in the dugout", id))
}

// MovePlayer relocates the player at id to pos. It panics
// (IllegalMovePosition, an internal error per spec.md §7) if pos is
// occupied or out of bounds -- callers (procedures, pathfinder replay)
// must only ever move into squares they have already validated are free.
func (b *Board) MovePlayer(id PlayerID, pos Position) {
	if pos.X < 0 || pos.X >= Width || pos.Y < 0 || pos.Y >= Height {
		panic(fmt.Sprintf("board: IllegalMovePosition %v is out of bounds", pos))
	}
	if !b.IsEmpty(pos) {
		panic(fmt.Sprintf("board: IllegalMovePosition %v is occupied", pos))
	}
	p := b.Get(id)
	b.occupancy[p.Position.X][p.Position.Y] = nil
	p.Position = pos
	b.occupancy[pos.X][pos.Y] = &b.Players[id].ID
}

// AdjacentPlayers returns the fielded players standing next to pos.
func (b *Board) AdjacentPlayers(pos Position) []*FieldedPlayer {
	var out []*FieldedPlayer
	for _, n := range pos.Neighbors() {
		if n.IsOut() {
			continue
		}
		if p, ok := b.At(n); ok {
			out = append(out, p)
		}
	}
	return out
}

// TackleZones counts the standing opposing players adjacent to pos (the
// square's tackle-zone count, used by dodge/pickup/pass modifiers).
func (b *Board) TackleZones(pos Position, team TeamType) int {
	n := 0
	for _, p := range b.AdjacentPlayers(pos) {
		if p.Team != team && p.IsUp() {
			n++
		}
	}
	return n
}

// IsSetupLegal checks a team's current pitch arrangement against the
// line-of-scrimmage rule (spec.md §4.2): at most 2 players per wing, at
// least 3 on the line of scrimmage, and at most 11 fielded for that team.
func (b *Board) IsSetupLegal(team TeamType) bool {
	losX := Coord(LineOfScrimmageHomeX)
	if team == Away {
		losX = LineOfScrimmageAwayX
	}

	total, onLOS, north, south := 0, 0, 0, 0
	for _, p := range b.Players {
		if p == nil || p.Team != team {
			continue
		}
		total++
		if p.Position.X == losX && p.Position.Y >= LineOfScrimmageYMin && p.Position.Y <= LineOfScrimmageYMax {
			onLOS++
		}
		if p.Position.Y >= NorthWingYMin && p.Position.Y <= NorthWingYMax {
			north++
		}
		if p.Position.Y >= SouthWingYMin && p.Position.Y <= SouthWingYMax {
			south++
		}
	}

	if total > 11 {
		return false
	}
	if onLOS < 3 {
		return false
	}
	if north > 2 || south > 2 {
		return false
	}
	return true
}
