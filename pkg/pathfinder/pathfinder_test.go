package pathfinder

import (
	"testing"

	"botbowl/pkg/board"

	. "github.com/smartystreets/goconvey/convey"
)

func fieldPlayer(t *testing.T, b *board.Board, team board.TeamType, ma, ag int8, pos board.Position) *board.FieldedPlayer {
	t.Helper()
	p := board.NewFieldedPlayer(0, team, board.Lineman, board.Stats{MA: ma, ST: 3, AG: ag, AV: 8, PassTarget: 4}, nil, pos)
	if err := b.FieldPlayer(p); err != nil {
		t.Fatalf("field player: %v", err)
	}
	return p
}

func TestPlayerPathsOnEmptyBoard(t *testing.T) {
	Convey("Given a lone player with MA 4 on an empty pitch", t, func() {
		b := board.NewBoard()
		mover := fieldPlayer(t, b, board.Home, 4, 3, board.NewPosition(10, 10))
		b.Info.ActivePlayer = &mover.ID
		b.Info.PlayerActionType = board.ActionMove

		Convey("When computing reachable paths", func() {
			paths := PlayerPaths(b)

			Convey("A square 4 steps away is reached with certainty", func() {
				dest := board.NewPosition(14, 10)
				node, ok := paths[dest]
				So(ok, ShouldBeTrue)
				So(node.Prob, ShouldEqual, 1.0)
			})

			Convey("A square 6 steps away needs two GFIs and carries risk", func() {
				dest := board.NewPosition(16, 10)
				node, ok := paths[dest]
				So(ok, ShouldBeTrue)
				So(node.Prob, ShouldBeLessThan, 1.0)
			})

			Convey("The starting square itself is not listed as a destination", func() {
				_, ok := paths[board.NewPosition(10, 10)]
				So(ok, ShouldBeFalse)
			})
		})
	})
}

func TestPlayerPathsThroughTackleZoneRequiresDodge(t *testing.T) {
	Convey("Given a player standing next to an opposing tackle zone", t, func() {
		b := board.NewBoard()
		mover := fieldPlayer(t, b, board.Home, 6, 3, board.NewPosition(10, 10))
		fieldPlayer(t, b, board.Away, 6, 3, board.NewPosition(11, 10))
		b.Info.ActivePlayer = &mover.ID
		b.Info.PlayerActionType = board.ActionMove

		Convey("When moving away from the marking opponent", func() {
			paths := PlayerPaths(b)
			dest := board.NewPosition(10, 11)
			node, ok := paths[dest]

			Convey("The path requires a dodge roll and so is sub-100%", func() {
				So(ok, ShouldBeTrue)
				So(node.Prob, ShouldBeLessThan, 1.0)
				steps := node.Steps()
				found := false
				for _, s := range steps {
					if s.IsEvent && s.Event.Kind == EventDodge {
						found = true
					}
				}
				So(found, ShouldBeTrue)
			})
		})
	})
}

func TestPlayerPathsPickupOnGroundBall(t *testing.T) {
	Convey("Given a player adjacent to a loose ball", t, func() {
		b := board.NewBoard()
		mover := fieldPlayer(t, b, board.Home, 6, 3, board.NewPosition(10, 10))
		b.Ball = board.NewOnGroundBall(board.NewPosition(11, 10))
		b.Info.ActivePlayer = &mover.ID
		b.Info.PlayerActionType = board.ActionMove

		Convey("When searching paths", func() {
			paths := PlayerPaths(b)
			node, ok := paths[board.NewPosition(11, 10)]

			Convey("The path to the ball's square ends the search there and requires a pickup", func() {
				So(ok, ShouldBeTrue)
				steps := node.Steps()
				last := steps[len(steps)-1]
				So(last.IsEvent, ShouldBeTrue)
				So(last.Event.Kind, ShouldEqual, EventPickup)
			})

			Convey("No path extends beyond the ball's square", func() {
				for _, n := range paths {
					if n.Parent != nil {
						So(n.Parent.Position, ShouldNotEqual, board.NewPosition(11, 10))
					}
				}
			})
		})
	})
}
