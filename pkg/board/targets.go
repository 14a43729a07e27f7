package board

import "botbowl/pkg/dice"

// DodgeTarget is AG+1, reduced by the number of tackle zones at the
// destination square (spec.md §4.4).
func DodgeTarget(p *FieldedPlayer, tzAtDestination int) dice.D6Target {
	base := dice.NewD6Target(p.Stats.AG + 1)
	return base.AddModifier(int8(-tzAtDestination)).(dice.D6Target)
}

// CatchTarget is AG-derived, reduced by the number of tackle zones at the
// catching square (spec.md §4.2).
func CatchTarget(p *FieldedPlayer, tzAtSquare int) dice.D6Target {
	base := dice.NewD6Target(p.Stats.AG + 1)
	return base.AddModifier(int8(-tzAtSquare)).(dice.D6Target)
}

// PickupTarget is AG-derived, reduced by tackle zones at the square and
// by one in the Rain (spec.md §4.2).
func PickupTarget(p *FieldedPlayer, tzAtSquare int, weather Weather) dice.D6Target {
	base := dice.NewD6Target(p.Stats.AG + 1)
	modifier := int8(-tzAtSquare)
	if weather == Rain {
		modifier--
	}
	return base.AddModifier(modifier).(dice.D6Target)
}

// GFITarget is 2+, one point harder in a Blizzard (spec.md §4.4).
func GFITarget(weather Weather) dice.D6Target {
	base := dice.NewD6Target(2)
	if weather == Blizzard {
		return base.AddModifier(-1).(dice.D6Target)
	}
	return base
}

// PassTarget is the passer's base accuracy target, hardened by one per
// tackle zone on the passer's own square (spec.md §4.2; range-band
// modifiers are out of scope -- see DESIGN.md).
func PassTarget(p *FieldedPlayer, tzAtSquare int) dice.D6Target {
	return dice.NewD6Target(p.Stats.PassTarget).AddModifier(int8(-tzAtSquare)).(dice.D6Target)
}

// ArmorTarget is the 2D6 threshold an armor roll must meet or exceed to
// break armor: AV+1 (spec.md §4.2).
func ArmorTarget(p *FieldedPlayer) dice.Sum2D6Target {
	return dice.NewSum2D6Target(p.Stats.AV + 1)
}

// assistCount counts friendly-to-principal standing players adjacent to
// opponentPos that themselves carry no opposing tackle zone, excluding
// principal itself (spec.md §4.2: "friendly standing assists adjacent to
// the opposite player that themselves have no opposing tackle-zone,
// excluding the principal on that side"). opponentPos is taken as an
// explicit parameter (rather than read off opponent.Position) so the
// pathfinder can evaluate a block at a square the attacker has not
// actually moved to yet.
func assistCount(b *Board, principal *FieldedPlayer, opponentID PlayerID, opponentPos Position) int {
	count := 0
	for _, assister := range b.AdjacentPlayers(opponentPos) {
		if assister.ID == principal.ID || assister.Team != principal.Team || !assister.IsUp() {
			continue
		}
		oppTZ := 0
		for _, tz := range b.AdjacentPlayers(assister.Position) {
			if tz.Team == assister.Team || tz.ID == opponentID || !tz.IsUp() {
				continue
			}
			oppTZ++
		}
		if oppTZ == 0 {
			count++
		}
	}
	return count
}

// FoulArmorTarget is the armor target for a foul against victim, committed
// by fouler standing at foulerPos: AV+1, eased by one per standing
// uncovered friendly assist adjacent to victim (excluding fouler), and
// hardened by one per standing opposing tackle zone on foulerPos's square
// (excluding fouler's own), mirroring original_source's expand_foul_to.
func FoulArmorTarget(b *Board, fouler *FieldedPlayer, foulerPos Position, victim *FieldedPlayer) dice.Sum2D6Target {
	target := ArmorTarget(victim)

	assists := 0
	for _, adj := range b.AdjacentPlayers(victim.Position) {
		if adj.ID == fouler.ID || adj.Team != fouler.Team || !adj.IsUp() {
			continue
		}
		if b.TackleZones(adj.Position, adj.Team) == 0 {
			assists++
		}
	}

	marked := 0
	for _, adj := range b.AdjacentPlayers(foulerPos) {
		if adj.Team == fouler.Team || !adj.IsUp() {
			continue
		}
		marked++
	}

	return target.AddModifier(int8(assists) - int8(marked)).(dice.Sum2D6Target)
}

// BlockDiceCount implements the block-dice count algorithm of spec.md
// §4.2: compares effective strengths (ST plus assists) and returns how
// many block dice are rolled and which side chooses among them.
func BlockDiceCount(b *Board, attacker, defender *FieldedPlayer) (count int, attackerPicks bool) {
	return BlockDiceCountAt(b, attacker, attacker.Position, defender)
}

// BlockDiceCountAt is BlockDiceCount with the attacker's position taken
// explicitly, so a hypothetical block (the attacker has not actually
// moved to attackerPos yet) can be evaluated, as the pathfinder's block
// search must.
func BlockDiceCountAt(b *Board, attacker *FieldedPlayer, attackerPos Position, defender *FieldedPlayer) (count int, attackerPicks bool) {
	effAttacker := int(attacker.Stats.ST) + assistCount(b, attacker, defender.ID, defender.Position)
	effDefender := int(defender.Stats.ST) + assistCount(b, defender, attacker.ID, attackerPos)

	switch {
	case effAttacker > 2*effDefender:
		return 3, true
	case effAttacker > effDefender:
		return 2, true
	case effAttacker == effDefender:
		return 1, true
	case 2*effAttacker < effDefender:
		return 3, false
	default:
		return 2, false
	}
}
