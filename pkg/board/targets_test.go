package board

import (
	"testing"

	"github.com/stretchr/testify/require"

	"botbowl/pkg/dice"
)

func TestDodgeTargetReducedByTackleZones(t *testing.T) {
	p := newTestPlayer(Home, 6, 3, 3, 8, NewPosition(5, 5))
	base := DodgeTarget(p, 0)
	require.Equal(t, dice.NewD6Target(4), base)

	harder := DodgeTarget(p, 2)
	require.Equal(t, dice.NewD6Target(6), harder)
}

func TestPickupTargetHarderInRain(t *testing.T) {
	p := newTestPlayer(Home, 6, 3, 3, 8, NewPosition(5, 5))
	dry := PickupTarget(p, 0, Nice)
	wet := PickupTarget(p, 0, Rain)
	require.Equal(t, dice.NewD6Target(4), dry)
	require.Equal(t, dice.NewD6Target(5), wet)
}

func TestGFITargetHarderInBlizzard(t *testing.T) {
	require.Equal(t, dice.NewD6Target(2), GFITarget(Nice))
	require.Equal(t, dice.NewD6Target(3), GFITarget(Blizzard))
}

func TestAssistCountExcludesPrincipalAndCoveredAssisters(t *testing.T) {
	b := NewBoard()
	attacker := newTestPlayer(Home, 6, 3, 3, 8, NewPosition(5, 5))
	defender := newTestPlayer(Away, 6, 3, 3, 8, NewPosition(6, 5))
	helper := newTestPlayer(Home, 6, 3, 3, 8, NewPosition(6, 4))
	coveringOpponent := newTestPlayer(Away, 6, 3, 3, 8, NewPosition(7, 4))
	require.NoError(t, b.FieldPlayer(attacker))
	require.NoError(t, b.FieldPlayer(defender))
	require.NoError(t, b.FieldPlayer(helper))
	require.NoError(t, b.FieldPlayer(coveringOpponent))

	// helper is adjacent to an opposing tackle zone (coveringOpponent), so
	// it should not count as an assist.
	require.Equal(t, 0, assistCount(b, attacker, defender.ID, defender.Position))
}

func TestBlockDiceCountFavorsStrongerSide(t *testing.T) {
	b := NewBoard()
	attacker := newTestPlayer(Home, 6, 5, 3, 9, NewPosition(5, 5))
	defender := newTestPlayer(Away, 6, 2, 3, 7, NewPosition(6, 5))
	require.NoError(t, b.FieldPlayer(attacker))
	require.NoError(t, b.FieldPlayer(defender))

	count, attackerPicks := BlockDiceCount(b, attacker, defender)
	require.Equal(t, 3, count)
	require.True(t, attackerPicks)
}

func TestBlockDiceCountFavorsDefenderWhenStronger(t *testing.T) {
	b := NewBoard()
	attacker := newTestPlayer(Home, 6, 2, 3, 7, NewPosition(5, 5))
	defender := newTestPlayer(Away, 6, 5, 3, 9, NewPosition(6, 5))
	require.NoError(t, b.FieldPlayer(attacker))
	require.NoError(t, b.FieldPlayer(defender))

	count, attackerPicks := BlockDiceCount(b, attacker, defender)
	require.Equal(t, 3, count)
	require.False(t, attackerPicks)
}
