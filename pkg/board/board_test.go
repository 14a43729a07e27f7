package board

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func newTestPlayer(team TeamType, ma, st, ag, av int8, pos Position) *FieldedPlayer {
	return NewFieldedPlayer(0, team, Lineman, Stats{MA: ma, ST: st, AG: ag, AV: av, PassTarget: 4}, nil, pos)
}

func TestFieldAndMovePlayer(t *testing.T) {
	b := NewBoard()
	p := newTestPlayer(Home, 6, 3, 3, 8, NewPosition(5, 5))
	require.NoError(t, b.FieldPlayer(p))

	other := b.Get(p.ID)
	require.Same(t, p, other)

	b.MovePlayer(p.ID, NewPosition(6, 5))
	require.Equal(t, NewPosition(6, 5), p.Position)
	require.True(t, b.IsEmpty(NewPosition(5, 5)))
}

func TestFieldPlayerOccupiedSquareFails(t *testing.T) {
	b := NewBoard()
	p1 := newTestPlayer(Home, 6, 3, 3, 8, NewPosition(5, 5))
	p2 := newTestPlayer(Away, 6, 3, 3, 8, NewPosition(5, 5))
	require.NoError(t, b.FieldPlayer(p1))
	require.Error(t, b.FieldPlayer(p2))
}

func TestMovePlayerPanicsOnOccupiedDestination(t *testing.T) {
	b := NewBoard()
	p1 := newTestPlayer(Home, 6, 3, 3, 8, NewPosition(5, 5))
	p2 := newTestPlayer(Away, 6, 3, 3, 8, NewPosition(6, 5))
	require.NoError(t, b.FieldPlayer(p1))
	require.NoError(t, b.FieldPlayer(p2))

	require.Panics(t, func() {
		b.MovePlayer(p1.ID, NewPosition(6, 5))
	})
}

func TestUnfieldPlayerClearsActivePlayerAndReportsCarrier(t *testing.T) {
	b := NewBoard()
	p := newTestPlayer(Home, 6, 3, 3, 8, NewPosition(5, 5))
	require.NoError(t, b.FieldPlayer(p))
	b.Ball = NewCarriedBall(p.ID)
	b.Info.ActivePlayer = &p.ID

	carried := b.UnfieldPlayer(p.ID, Injured)
	require.True(t, carried)
	require.Nil(t, b.Info.ActivePlayer)
	require.Equal(t, Injured, b.Dugout[0].Place)
}

func TestBlockDiceCountEqualStrength(t *testing.T) {
	b := NewBoard()
	attacker := newTestPlayer(Home, 6, 3, 3, 8, NewPosition(5, 5))
	defender := newTestPlayer(Away, 6, 3, 3, 8, NewPosition(6, 5))
	require.NoError(t, b.FieldPlayer(attacker))
	require.NoError(t, b.FieldPlayer(defender))

	count, attackerPicks := BlockDiceCount(b, attacker, defender)
	require.Equal(t, 1, count)
	require.True(t, attackerPicks)
}

func TestBlockDiceCountWithAssist(t *testing.T) {
	b := NewBoard()
	attacker := newTestPlayer(Home, 6, 3, 3, 8, NewPosition(5, 5))
	defender := newTestPlayer(Away, 6, 3, 3, 8, NewPosition(6, 5))
	assist := newTestPlayer(Home, 6, 3, 3, 8, NewPosition(6, 4))
	require.NoError(t, b.FieldPlayer(attacker))
	require.NoError(t, b.FieldPlayer(defender))
	require.NoError(t, b.FieldPlayer(assist))

	count, attackerPicks := BlockDiceCount(b, attacker, defender)
	require.Equal(t, 2, count)
	require.True(t, attackerPicks)
}

func TestIsSetupLegalRequiresThreeOnLine(t *testing.T) {
	b := NewBoard()
	for i := 0; i < 2; i++ {
		p := newTestPlayer(Home, 6, 3, 3, 8, NewPosition(LineOfScrimmageHomeX, Coord(5+i)))
		require.NoError(t, b.FieldPlayer(p))
	}
	require.False(t, b.IsSetupLegal(Home))

	p := newTestPlayer(Home, 6, 3, 3, 8, NewPosition(LineOfScrimmageHomeX, 7))
	require.NoError(t, b.FieldPlayer(p))
	require.True(t, b.IsSetupLegal(Home))
}

func TestPositionOutOfBoundsAndAdjacency(t *testing.T) {
	require.True(t, NewPosition(0, 5).IsOut())
	require.True(t, NewPosition(27, 5).IsOut())
	require.False(t, NewPosition(1, 5).IsOut())

	require.True(t, NewPosition(5, 5).IsAdjacent(NewPosition(6, 6)))
	require.False(t, NewPosition(5, 5).IsAdjacent(NewPosition(5, 5)))
	require.False(t, NewPosition(5, 5).IsAdjacent(NewPosition(7, 5)))
}

func TestDirectionFromD8RoundTrips(t *testing.T) {
	for face := uint8(1); face <= 8; face++ {
		d := DirectionFromD8(face)
		require.Equal(t, face, D8FromDirection(d))
	}
}
