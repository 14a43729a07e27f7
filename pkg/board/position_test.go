package board

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDirectionConstructorsMatchAllDirections(t *testing.T) {
	require.Equal(t, Direction{0, -1}, DirUp())
	require.Equal(t, Direction{0, 1}, DirDown())
	require.Equal(t, Direction{-1, 0}, DirLeft())
	require.Equal(t, Direction{1, 0}, DirRight())
}

func TestPositionAddAndSub(t *testing.T) {
	p := NewPosition(10, 10)
	moved := p.Add(DirUpRight())
	require.Equal(t, NewPosition(11, 9), moved)

	d := moved.Sub(p)
	require.Equal(t, DirUpRight(), d)
}

func TestDistanceToIsChebyshev(t *testing.T) {
	a := NewPosition(5, 5)
	b := NewPosition(8, 6)
	require.Equal(t, Coord(3), a.DistanceTo(b))
}

func TestIsOnTeamSide(t *testing.T) {
	require.True(t, NewPosition(20, 8).IsOnTeamSide(Home))
	require.False(t, NewPosition(20, 8).IsOnTeamSide(Away))
	require.True(t, NewPosition(5, 8).IsOnTeamSide(Away))
}

func TestNeighborsReturnsEightInAllDirectionsOrder(t *testing.T) {
	p := NewPosition(10, 10)
	neighbors := p.Neighbors()
	require.Len(t, neighbors, 8)
	for i, d := range AllDirections {
		require.Equal(t, p.Add(d), neighbors[i])
	}
}
