// Package pathfinder implements the risk-stratified path search used to
// turn a player's remaining movement into the set of reachable squares and
// the dice rolls each path would require (spec.md §4.4), grounded on
// original_source/botbowl-engine/src/core/pathing.rs.
package pathfinder

import (
	"botbowl/pkg/board"
	"botbowl/pkg/dice"
)

// EventKind tags what kind of roll (if any) a Node's transition requires.
type EventKind uint8

const (
	EventDodge EventKind = iota
	EventGFI
	EventPickup
	EventBlock
	EventHandoff
	EventTouchdown
	EventFoul
	EventStandUp
)

// Event is one dice-requiring (or dice-free, for StandUp/Touchdown) step
// recorded on a Node.
type Event struct {
	Kind       EventKind
	PlayerID   board.PlayerID // victim for Block/Foul, target player for Handoff
	D6Target   dice.D6Target
	ArmorTarget dice.Sum2D6Target
	BlockDice  int
}

// EndsPlayerAction reports whether reaching this event terminates the
// player's action outright (no further squares may be chosen).
func (e Event) EndsPlayerAction() bool {
	switch e.Kind {
	case EventHandoff, EventFoul, EventTouchdown:
		return true
	default:
		return false
	}
}

// noBlockDice marks a Node that carries no block-dice count yet.
const noBlockDice = -1

// Node is one step of a candidate path: an immutable, parent-linked record
// of a square reached, its cumulative success probability and the dice
// events (if any) incurred getting there. Nodes are built via newNode and
// the apply* helpers while still private to the search, then shared
// read-only once installed into the PathFinder's grids -- callers must not
// mutate a Node reachable from more than one place.
type Node struct {
	Parent    *Node
	Position  board.Position
	MovesLeft int8
	GFIsLeft  int8
	BlockDice int // noBlockDice if not a block node
	Prob      float64
	Events    []Event
}

func newNode(parent *Node, pos board.Position, movesLeft, gfisLeft int8) *Node {
	prob := 1.0
	if parent != nil {
		prob = parent.Prob
	}
	return &Node{
		Parent:    parent,
		Position:  pos,
		MovesLeft: movesLeft,
		GFIsLeft:  gfisLeft,
		BlockDice: noBlockDice,
		Prob:      prob,
	}
}

// newDirectBlockNode is the root of a blitz search that starts already
// adjacent to its victim: no movement is spent, only the block itself.
func newDirectBlockNode(count int, pos board.Position) *Node {
	return &Node{Position: pos, BlockDice: count, Prob: 1.0}
}

func (n *Node) remainingMovement() int8 { return n.MovesLeft + n.GFIsLeft }

func (n *Node) lastEvent() (Event, bool) {
	if len(n.Events) == 0 {
		return Event{}, false
	}
	return n.Events[len(n.Events)-1], true
}

// moveToPosition reports whether this node's transition actually occupies
// Position (a block/handoff/foul/stand-up node stays at its parent's
// square and just records the event).
func (n *Node) moveToPosition() bool {
	if n.Parent == nil {
		return false
	}
	if ev, ok := n.lastEvent(); ok {
		switch ev.Kind {
		case EventBlock, EventHandoff, EventFoul, EventStandUp:
			return false
		default:
			return true
		}
	}
	return true
}

// ActionType reports what kind of action completing this node represents,
// for the caller to tag the resulting AvailableActions entry.
func (n *Node) ActionType() board.PlayerActionType {
	if n.BlockDice != noBlockDice {
		return board.ActionBlock
	}
	if ev, ok := n.lastEvent(); ok {
		switch ev.Kind {
		case EventBlock:
			return board.ActionBlock
		case EventHandoff:
			return board.ActionHandoff
		case EventFoul:
			return board.ActionFoul
		}
	}
	return board.ActionMove
}

func (n *Node) applyGFI(target dice.D6Target) {
	n.Prob *= target.SuccessProb()
	n.Events = append(n.Events, Event{Kind: EventGFI, D6Target: target})
}

func (n *Node) applyDodge(target dice.D6Target) {
	n.Prob *= target.SuccessProb()
	n.Events = append(n.Events, Event{Kind: EventDodge, D6Target: target})
}

func (n *Node) applyPickup(target dice.D6Target) {
	n.Prob *= target.SuccessProb()
	n.Events = append(n.Events, Event{Kind: EventPickup, D6Target: target})
}

func (n *Node) applyHandoff(id board.PlayerID, target dice.D6Target) {
	n.Prob *= target.SuccessProb()
	n.Events = append(n.Events, Event{Kind: EventHandoff, PlayerID: id, D6Target: target})
}

func (n *Node) applyBlock(victim board.PlayerID, count int) {
	n.BlockDice = count
	n.Events = append(n.Events, Event{Kind: EventBlock, PlayerID: victim, BlockDice: count})
}

func (n *Node) applyFoul(victim board.PlayerID, target dice.Sum2D6Target) {
	n.Events = append(n.Events, Event{Kind: EventFoul, PlayerID: victim, ArmorTarget: target})
}

func (n *Node) applyTouchdown() {
	n.Events = append(n.Events, Event{Kind: EventTouchdown})
}

func (n *Node) applyStandUp() {
	n.Events = append(n.Events, Event{Kind: EventStandUp})
	n.MovesLeft -= 3
}

// isDominantOver reports whether n strictly beats other on every axis at
// the same square: more likely, more movement left, and a strictly higher
// block-dice count. A dominant locked node makes a later, lower-probability
// candidate redundant.
func (n *Node) isDominantOver(other *Node) bool {
	return n.Prob > other.Prob &&
		n.remainingMovement() > other.remainingMovement() &&
		n.BlockDice > other.BlockDice
}

// isBetterThan breaks ties between two nodes reaching the same square:
// higher probability wins; then more block dice; then a lower foul target
// (easier armor roll); then more remaining movement.
func (n *Node) isBetterThan(other *Node) bool {
	if n.Prob != other.Prob {
		return n.Prob > other.Prob
	}
	if n.BlockDice != other.BlockDice {
		return n.BlockDice > other.BlockDice
	}
	nFoul, nHasFoul := n.lastEvent()
	oFoul, oHasFoul := other.lastEvent()
	if nHasFoul && oHasFoul && nFoul.Kind == EventFoul && oFoul.Kind == EventFoul && nFoul.ArmorTarget != oFoul.ArmorTarget {
		return nFoul.ArmorTarget < oFoul.ArmorTarget
	}
	return n.remainingMovement() > other.remainingMovement()
}

// Step is one entry of a reconstructed path: either a square the player
// moves to, or a dice event incurred without changing square.
type Step struct {
	IsEvent  bool
	Position board.Position
	Event    Event
}

// Steps walks the parent chain from the root to n, producing the
// chronological sequence of squares and events a caller (the engine's
// MoveAction procedure) replays against the live board.
func (n *Node) Steps() []Step {
	var chain []*Node
	for cur := n; cur != nil; cur = cur.Parent {
		chain = append(chain, cur)
	}
	var steps []Step
	for i := len(chain) - 1; i >= 0; i-- {
		node := chain[i]
		if node.moveToPosition() {
			steps = append(steps, Step{Position: node.Position})
		}
		for _, ev := range node.Events {
			steps = append(steps, Step{IsEvent: true, Event: ev})
		}
	}
	return steps
}
