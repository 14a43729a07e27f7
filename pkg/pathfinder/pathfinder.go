package pathfinder

import (
	"botbowl/pkg/board"
	"botbowl/pkg/dice"
)

// ballRelevance classifies how the ball interacts with a path search,
// mirroring original_source's PathingBallState.
type ballRelevance uint8

const (
	ballNotRelevant ballRelevance = iota
	ballIsCarrier                 // the searching player carries the ball; watch for the endzone
	ballOnGround                  // the ball lies on a specific square; watch for pickup
)

type ballContext struct {
	kind     ballRelevance
	endzoneX board.Coord
	pos      board.Position
}

// searchContext gathers everything the search needs from the board once,
// up front, so expansion never re-derives it per square.
type searchContext struct {
	b            *board.Board
	playerID     board.PlayerID
	team         board.TeamType
	actionType   board.PlayerActionType
	ball         ballContext
	startPos     board.Position
	dodgeTarget  dice.D6Target
	gfiTarget    dice.D6Target
	pickupTarget dice.D6Target
}

func endzoneX(team board.TeamType) board.Coord {
	if team == board.Home {
		return board.HomeEndzoneX
	}
	return board.AwayEndzoneX
}

func newSearchContext(b *board.Board) *searchContext {
	id := *b.Info.ActivePlayer
	p := b.Get(id)

	dodgeTarget := board.DodgeTarget(p, 0)
	gfiTarget := board.GFITarget(b.Info.Weather)
	pickupTarget := board.PickupTarget(p, 0, b.Info.Weather)

	var ball ballContext
	switch {
	case b.Ball.Kind == board.Carried && b.Ball.Carrier == id:
		ball = ballContext{kind: ballIsCarrier, endzoneX: endzoneX(p.Team)}
	case b.Ball.Kind == board.OnGround:
		ball = ballContext{kind: ballOnGround, pos: b.Ball.Position}
	default:
		ball = ballContext{kind: ballNotRelevant}
	}

	actionType := b.Info.PlayerActionType
	if actionType == board.ActionHandoff && ball.kind != ballIsCarrier {
		actionType = board.ActionMove
	}

	return &searchContext{
		b:            b,
		playerID:     id,
		team:         p.Team,
		actionType:   actionType,
		ball:         ball,
		startPos:     p.Position,
		dodgeTarget:  dodgeTarget,
		gfiTarget:    gfiTarget,
		pickupTarget: pickupTarget,
	}
}

func (sc *searchContext) tacklesZonesAt(pos board.Position) int {
	return sc.b.TackleZones(pos, sc.team)
}

// canContinueExpanding reports whether node still has distance to spend
// and has not already reached the square that would end the search (the
// endzone while carrying, or the ball while chasing it).
func (sc *searchContext) canContinueExpanding(n *Node) bool {
	if n.remainingMovement() == 0 && sc.actionType != board.ActionFoul && sc.actionType != board.ActionHandoff {
		return false
	}
	switch sc.ball.kind {
	case ballIsCarrier:
		if n.Position.X == sc.ball.endzoneX {
			return false
		}
	case ballOnGround:
		if n.Position == sc.ball.pos {
			return false
		}
	}
	return true
}

// expansionKind tells the caller what to do with the Node expandTo
// returns: install it as the batch's current best at its square, and
// either keep expanding from it, leave it as a dead end, or defer it to a
// later (lower-probability) batch.
type expansionKind uint8

const (
	expansionReject expansionKind = iota
	expansionRisky
	expansionContinue
	expansionTerminal
)

func (sc *searchContext) expandTo(to board.Position, parent *Node, bestInBatch, locked *Node) (*Node, expansionKind) {
	occupant, occupied := sc.b.At(to)

	var next *Node
	switch {
	case occupied && sc.actionType == board.ActionHandoff && occupant.Team == sc.team:
		next = sc.expandHandoffTo(to, occupant.ID, parent, bestInBatch)
	case occupied && sc.actionType == board.ActionBlitz && occupant.Team != sc.team && parent.remainingMovement() > 0 && occupant.IsUp():
		next = sc.expandBlockTo(to, occupant.ID, parent, bestInBatch)
	case occupied && sc.actionType == board.ActionFoul && occupant.Team != sc.team && !occupant.IsUp():
		next = sc.expandFoulTo(to, occupant.ID, parent, bestInBatch)
	case !occupied && parent.remainingMovement() > 0:
		next = sc.expandMoveTo(to, parent, bestInBatch)
	default:
		return nil, expansionReject
	}

	if next == nil {
		return nil, expansionReject
	}

	// A square already locked from an earlier, higher-probability batch
	// that strictly dominates this candidate makes it pointless to pursue.
	if locked != nil && locked.isDominantOver(next) {
		return nil, expansionReject
	}

	if next.Prob < parent.Prob {
		return next, expansionRisky
	}

	if sc.canContinueExpanding(next) {
		return next, expansionContinue
	}
	return next, expansionTerminal
}

func (sc *searchContext) expandFoulTo(to board.Position, victimID board.PlayerID, parent, bestInBatch *Node) *Node {
	next := newNode(parent, to, 0, 0)
	victim := sc.b.Get(victimID)
	fouler := sc.b.Get(sc.playerID)
	target := board.FoulArmorTarget(sc.b, fouler, parent.Position, victim)
	next.applyFoul(victimID, target)

	if bestInBatch != nil && !next.isBetterThan(bestInBatch) {
		return nil
	}
	return next
}

func (sc *searchContext) expandBlockTo(to board.Position, victimID board.PlayerID, parent, bestInBatch *Node) *Node {
	next := newNode(parent, to, 0, 0)
	if parent.MovesLeft == 0 {
		next.applyGFI(sc.gfiTarget)
	}
	attacker := sc.b.Get(sc.playerID)
	victim := sc.b.Get(victimID)
	count, _ := board.BlockDiceCountAt(sc.b, attacker, parent.Position, victim)
	next.applyBlock(victimID, count)

	if bestInBatch != nil && !next.isBetterThan(bestInBatch) {
		return nil
	}
	return next
}

func (sc *searchContext) expandHandoffTo(to board.Position, targetID board.PlayerID, parent, bestInBatch *Node) *Node {
	next := newNode(parent, to, 0, 0)
	target := sc.b.Get(targetID)
	catchTarget := board.CatchTarget(target, sc.tacklesZonesAt(to))
	next.applyHandoff(targetID, catchTarget)

	if bestInBatch != nil && bestInBatch.isBetterThan(next) {
		return nil
	}
	return next
}

func (sc *searchContext) expandMoveTo(to board.Position, parent, bestInBatch *Node) *Node {
	gfi := parent.MovesLeft == 0

	if bestInBatch != nil && parent.remainingMovement()-1 <= bestInBatch.remainingMovement() {
		return nil
	}

	var movesLeft, gfisLeft int8
	switch {
	case gfi && parent.GFIsLeft > 0:
		movesLeft, gfisLeft = 0, parent.GFIsLeft-1
	case gfi:
		movesLeft, gfisLeft = 0, 0
	default:
		movesLeft, gfisLeft = parent.MovesLeft-1, parent.GFIsLeft
	}

	next := newNode(parent, to, movesLeft, gfisLeft)

	if gfi {
		next.applyGFI(sc.gfiTarget)
	}
	if sc.tacklesZonesAt(parent.Position) > 0 {
		next.applyDodge(sc.dodgeTarget.AddModifier(int8(-sc.tacklesZonesAt(to))).(dice.D6Target))
	}

	switch {
	case sc.ball.kind == ballOnGround && sc.ball.pos == to:
		next.applyPickup(sc.pickupTarget.AddModifier(int8(-sc.tacklesZonesAt(to))).(dice.D6Target))
	case sc.ball.kind == ballIsCarrier && to.X == sc.ball.endzoneX:
		next.applyTouchdown()
	}

	return next
}

// riskySet buckets not-yet-processed nodes by probability so the search
// can always expand the currently-most-likely batch first (spec.md §4.4's
// "risk-stratified" requirement): a node reached at higher probability
// through a longer/riskier alternate route must still be considered before
// any lower-probability batch, and dominance pruning against already-locked
// nodes then discards the rest.
type riskySet struct {
	byProb map[float64][]*Node
}

func newRiskySet() *riskySet { return &riskySet{byProb: make(map[float64][]*Node)} }

func (r *riskySet) insert(n *Node) {
	r.byProb[n.Prob] = append(r.byProb[n.Prob], n)
}

func (r *riskySet) nextBatch() []*Node {
	if len(r.byProb) == 0 {
		return nil
	}
	best := 0.0
	first := true
	for prob := range r.byProb {
		if first || prob > best {
			best = prob
			first = false
		}
	}
	batch := r.byProb[best]
	delete(r.byProb, best)
	return batch
}

// PathFinder runs the search over one player's reachable squares.
type PathFinder struct {
	sc      *searchContext
	nodes   [board.Width][board.Height]*Node
	locked  [board.Width][board.Height]*Node
	openSet []*Node
	risky   *riskySet
}

// PlayerPaths computes, for the active player named by b.Info.ActivePlayer,
// the best path found to every reachable square (spec.md §4.4). The
// returned map is keyed by destination square; callers needing the move
// sequence call Node.Steps() on the value.
func PlayerPaths(b *board.Board) map[board.Position]*Node {
	id := *b.Info.ActivePlayer
	p := b.Get(id)
	sc := newSearchContext(b)

	root := newNode(nil, sc.startPos, p.Stats.MA-p.MovesUsed, 2)
	if !p.IsUp() {
		root.MovesLeft = p.Stats.MA
		root.applyStandUp()
	}

	if !sc.canContinueExpanding(root) {
		return nil
	}

	pf := &PathFinder{sc: sc, risky: newRiskySet()}
	pf.openSet = append(pf.openSet, root)

	for {
		for len(pf.openSet) > 0 {
			n := pf.openSet[len(pf.openSet)-1]
			pf.openSet = pf.openSet[:len(pf.openSet)-1]
			pf.expandNode(n)
		}

		for x := board.Coord(0); x < board.Width; x++ {
			for y := board.Coord(0); y < board.Height; y++ {
				candidate := pf.nodes[x][y]
				if candidate == nil {
					continue
				}
				locked := pf.locked[x][y]
				if locked == nil || candidate.isBetterThan(locked) {
					pf.locked[x][y] = candidate
				}
				pf.nodes[x][y] = nil
			}
		}

		batch := pf.risky.nextBatch()
		if batch == nil {
			break
		}
		pf.prepareNodes(batch)
	}

	out := make(map[board.Position]*Node)
	for x := board.Coord(0); x < board.Width; x++ {
		for y := board.Coord(0); y < board.Height; y++ {
			if n := pf.locked[x][y]; n != nil {
				out[board.NewPosition(x, y)] = n
			}
		}
	}
	return out
}

func (pf *PathFinder) prepareNodes(batch []*Node) {
	for _, n := range batch {
		if locked := pf.locked[n.Position.X][n.Position.Y]; locked != nil && locked.isDominantOver(n) {
			continue
		}
		best := pf.nodes[n.Position.X][n.Position.Y]
		if best != nil && !n.isBetterThan(best) {
			continue
		}
		pf.nodes[n.Position.X][n.Position.Y] = n

		if pf.sc.canContinueExpanding(n) {
			pf.openSet = append(pf.openSet, n)
		}
	}
}

func (pf *PathFinder) expandNode(n *Node) {
	var parentPos board.Position
	var parentInTZ, hasParent bool
	if n.Parent != nil && n.Parent.Position != n.Position {
		hasParent = true
		parentPos = n.Parent.Position
		parentInTZ = pf.sc.tacklesZonesAt(parentPos) > 0
	}

	for _, d := range board.AllDirections {
		to := n.Position.Add(d)
		if to.IsOut() {
			continue
		}
		if hasParent {
			sameDistance := parentPos.DistanceTo(to) == 2
			inOpponentTZ := parentInTZ && pf.sc.tacklesZonesAt(to) > 0
			if !sameDistance && !inOpponentTZ {
				continue
			}
		}

		next, kind := pf.sc.expandTo(to, n, pf.nodes[to.X][to.Y], pf.locked[to.X][to.Y])
		switch kind {
		case expansionRisky:
			pf.risky.insert(next)
		case expansionContinue:
			pf.nodes[to.X][to.Y] = next
			pf.openSet = append(pf.openSet, next)
		case expansionTerminal:
			pf.nodes[to.X][to.Y] = next
		}
	}
}
