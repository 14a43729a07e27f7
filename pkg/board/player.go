package board

import (
	"fmt"

	"botbowl/pkg/statemachine"
)

// PlayerArchetype is a player's on-roster role.
type PlayerArchetype uint8

const (
	Lineman PlayerArchetype = iota
	Blitzer
	Catcher
	Thrower
)

// Skill is a named rules-affecting ability a player may have learned.
// Only the skills referenced by spec.md are modeled; Non-goals exclude
// the wider skill/star-player catalogue.
type Skill uint8

const (
	SkillBlock Skill = iota
	SkillDodge
	SkillSureHands
	SkillSureFeet
	SkillCatch
)

// SkillSet is a small membership set of skills.
type SkillSet map[Skill]bool

func NewSkillSet(skills ...Skill) SkillSet {
	s := make(SkillSet, len(skills))
	for _, sk := range skills {
		s[sk] = true
	}
	return s
}

func (s SkillSet) Has(skill Skill) bool { return s[skill] }
func (s SkillSet) Add(skill Skill)      { s[skill] = true }
func (s SkillSet) Remove(skill Skill)   { delete(s, skill) }
func (s SkillSet) Clone() SkillSet {
	out := make(SkillSet, len(s))
	for k, v := range s {
		out[k] = v
	}
	return out
}

// Stats are a fielded player's core attributes.
type Stats struct {
	MA         int8 // movement allowance
	ST         int8 // strength
	AG         int8 // agility
	AV         int8 // armor value, target for the armor roll
	PassTarget int8 // base D6 target for the passer's accuracy roll
}

// PlayerStatus is a fielded player's on-pitch condition.
type PlayerStatus uint8

const (
	Up PlayerStatus = iota
	Down
	Stunned
)

func (s PlayerStatus) String() string {
	switch s {
	case Up:
		return "Up"
	case Down:
		return "Down"
	case Stunned:
		return "Stunned"
	default:
		return "InvalidStatus"
	}
}

// PlayerID identifies a FieldedPlayer within a GameState's fixed-capacity
// 22-slot roster (spec.md §3).
type PlayerID int

// PlayerStateFn is a player-status state function, following the Rob
// Pike pattern pkg/statemachine implements; it observes
// FieldedPlayer.Status (set via SetStatus) and has no independent
// authority over it -- status changes are driven by the KnockDown,
// StandUp and TurnStunned procedures, not discovered here.
type PlayerStateFn = statemachine.StateFn[FieldedPlayer]

func playerStateUp(p *FieldedPlayer, cb func(string, statemachine.StateEvent)) PlayerStateFn {
	if cb != nil {
		cb("UP", statemachine.StateEntered)
	}
	switch p.Status {
	case Down:
		return playerStateDown
	case Stunned:
		return playerStateStunned
	default:
		return playerStateUp
	}
}

func playerStateDown(p *FieldedPlayer, cb func(string, statemachine.StateEvent)) PlayerStateFn {
	if cb != nil {
		cb("DOWN", statemachine.StateEntered)
	}
	switch p.Status {
	case Up:
		return playerStateUp
	case Stunned:
		return playerStateStunned
	default:
		return playerStateDown
	}
}

func playerStateStunned(p *FieldedPlayer, cb func(string, statemachine.StateEvent)) PlayerStateFn {
	if cb != nil {
		cb("STUNNED", statemachine.StateEntered)
	}
	switch p.Status {
	case Up:
		return playerStateUp
	case Down:
		return playerStateDown
	default:
		return playerStateStunned
	}
}

// FieldedPlayer is a player currently on the pitch.
type FieldedPlayer struct {
	ID         PlayerID
	Team       TeamType
	Archetype  PlayerArchetype
	Stats      Stats
	Skills     SkillSet
	UsedSkills SkillSet

	Position Position
	Status   PlayerStatus

	MovesUsed int8
	Used      bool

	stateMachine *statemachine.StateMachine[FieldedPlayer]
}

// NewFieldedPlayer constructs a player standing Up at pos with no moves
// used and no skills exhausted yet.
func NewFieldedPlayer(id PlayerID, team TeamType, archetype PlayerArchetype, stats Stats, skills SkillSet, pos Position) *FieldedPlayer {
	if skills == nil {
		skills = NewSkillSet()
	}
	p := &FieldedPlayer{
		ID:         id,
		Team:       team,
		Archetype:  archetype,
		Stats:      stats,
		Skills:     skills,
		UsedSkills: NewSkillSet(),
		Position:   pos,
		Status:     Up,
	}
	p.stateMachine = statemachine.NewStateMachine(p, playerStateUp)
	return p
}

// SetStatus transitions the player to status and dispatches the status
// state machine so observers attached via Dispatch (none by default) see
// the transition.
func (p *FieldedPlayer) SetStatus(status PlayerStatus) {
	p.Status = status
	p.ensureStateMachine()
	p.stateMachine.Dispatch(nil)
}

func (p *FieldedPlayer) ensureStateMachine() {
	if p.stateMachine == nil {
		p.stateMachine = statemachine.NewStateMachine(p, playerStateUp)
	}
}

// IsUp, IsDown and IsStunned are convenience predicates used throughout
// the procedures and pathfinder.
func (p *FieldedPlayer) IsUp() bool      { return p.Status == Up }
func (p *FieldedPlayer) IsDown() bool    { return p.Status == Down }
func (p *FieldedPlayer) IsStunned() bool { return p.Status == Stunned }

// HasUsedSkill reports whether skill has already been spent this action.
func (p *FieldedPlayer) HasUsedSkill(skill Skill) bool { return p.UsedSkills.Has(skill) }

// UseSkill marks skill as spent for the remainder of the action.
func (p *FieldedPlayer) UseSkill(skill Skill) { p.UsedSkills.Add(skill) }

// ResetUsedSkills clears spent-skill tracking; called at the start of
// each new action/turn.
func (p *FieldedPlayer) ResetUsedSkills() { p.UsedSkills = NewSkillSet() }

func (p *FieldedPlayer) String() string {
	return fmt.Sprintf("Player#%d(%s@%s)", p.ID, p.Team, p.Status)
}

// DugoutPlace is where in the dugout an unfielded player currently sits.
type DugoutPlace uint8

const (
	Reserves DugoutPlace = iota
	Heated
	KnockedOut
	Injured
	Ejected
)

// DugoutPlayer is a player not currently on the pitch.
type DugoutPlayer struct {
	ID        PlayerID
	Team      TeamType
	Archetype PlayerArchetype
	Stats     Stats
	Skills    SkillSet
	Place     DugoutPlace
}
