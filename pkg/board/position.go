package board

// Coord is a single pitch-grid coordinate component.
type Coord = int8

// Position is an integer (x, y) square on the 28x17 grid (spec.md §3).
type Position struct {
	X, Y Coord
}

// NewPosition builds a Position.
func NewPosition(x, y Coord) Position { return Position{X: x, Y: y} }

// Direction is one of the eight unit vectors, including diagonals.
type Direction struct {
	DX, DY Coord
}

// AllDirections lists the 8 directions in a fixed order; this order is
// the one D8 die faces index into (see pkg/dice and the engine's kickoffProc),
// mirroring the order used by the original source's Direction table.
var AllDirections = [8]Direction{
	{DX: 1, DY: 1},
	{DX: 0, DY: 1},
	{DX: -1, DY: 1},
	{DX: 1, DY: 0},
	{DX: -1, DY: 0},
	{DX: 1, DY: -1},
	{DX: 0, DY: -1},
	{DX: -1, DY: -1},
}

func DirUp() Direction        { return Direction{0, -1} }
func DirUpLeft() Direction    { return Direction{-1, -1} }
func DirUpRight() Direction   { return Direction{1, -1} }
func DirLeft() Direction      { return Direction{-1, 0} }
func DirRight() Direction     { return Direction{1, 0} }
func DirDown() Direction      { return Direction{0, 1} }
func DirDownLeft() Direction  { return Direction{-1, 1} }
func DirDownRight() Direction { return Direction{1, 1} }

// Distance is the Chebyshev length of the direction vector.
func (d Direction) Distance() Coord {
	return maxCoord(absCoord(d.DX), absCoord(d.DY))
}

// DirectionFromD8 maps a D8 face (1..=8) to its direction, in AllDirections
// order.
func DirectionFromD8(face uint8) Direction {
	if face < 1 || face > 8 {
		panic("board: D8 face out of range")
	}
	return AllDirections[face-1]
}

// D8FromDirection is the inverse of DirectionFromD8.
func D8FromDirection(d Direction) uint8 {
	for i, cand := range AllDirections {
		if cand == d {
			return uint8(i + 1)
		}
	}
	panic("board: not a unit direction")
}

// Add returns the position reached by moving one step in d.
func (p Position) Add(d Direction) Position {
	return Position{X: p.X + d.DX, Y: p.Y + d.DY}
}

// Sub returns the direction from other to p (not necessarily a unit
// vector; callers needing a D8 index should only call this on adjacent
// squares).
func (p Position) Sub(other Position) Direction {
	return Direction{DX: p.X - other.X, DY: p.Y - other.Y}
}

// DistanceTo is the Chebyshev distance between two squares.
func (p Position) DistanceTo(other Position) Coord {
	return p.Sub(other).Distance()
}

// IsOut reports whether p falls on the unplayable border of the grid.
func (p Position) IsOut() bool {
	return p.X <= 0 || p.X >= Width-1 || p.Y <= 0 || p.Y >= Height-1
}

// IsOnTeamSide reports whether p lies on team's own half of the pitch.
func (p Position) IsOnTeamSide(team TeamType) bool {
	if team == Home {
		return p.X >= Width/2
	}
	return p.X < Width/2
}

// IsAdjacent reports whether other is one of p's 8 neighbors.
func (p Position) IsAdjacent(other Position) bool {
	d := p.Sub(other)
	if d.DX == 0 && d.DY == 0 {
		return false
	}
	return absCoord(d.DX) <= 1 && absCoord(d.DY) <= 1
}

// Neighbors returns the (up to 8) in-bounds-or-not squares adjacent to p,
// in AllDirections order; callers filter out-of-bounds squares themselves
// via IsOut where that matters.
func (p Position) Neighbors() []Position {
	out := make([]Position, 0, 8)
	for _, d := range AllDirections {
		out = append(out, p.Add(d))
	}
	return out
}

// AllPositions iterates every square on the full grid, including the
// out-of-bounds border, row-major.
func AllPositions() []Position {
	out := make([]Position, 0, Width*Height)
	for x := Coord(0); x < Width; x++ {
		for y := Coord(0); y < Height; y++ {
			out = append(out, Position{X: x, Y: y})
		}
	}
	return out
}

func absCoord(c Coord) Coord {
	if c < 0 {
		return -c
	}
	return c
}

func maxCoord(a, b Coord) Coord {
	if a > b {
		return a
	}
	return b
}
