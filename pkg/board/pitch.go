// Package board implements the Blood Bowl data model: the pitch grid,
// positions and directions, fielded/dugout players, team state and ball
// state (spec.md §3, §4.2).
package board

// Pitch dimensions and named zones (spec.md §3).
const (
	Width  = 28
	Height = 17

	HomeEndzoneX = 1
	AwayEndzoneX = 26

	LineOfScrimmageHomeX = 14
	LineOfScrimmageAwayX = 13

	LineOfScrimmageYMin = 5
	LineOfScrimmageYMax = 11

	NorthWingYMin = 1
	NorthWingYMax = 4

	SouthWingYMin = 12
	SouthWingYMax = 15
)

// TeamType identifies which of the two teams a player or datum belongs to.
type TeamType uint8

const (
	Home TeamType = iota
	Away
)

func (t TeamType) Other() TeamType {
	if t == Home {
		return Away
	}
	return Home
}

func (t TeamType) String() string {
	if t == Home {
		return "Home"
	}
	return "Away"
}

// Weather affects pickup/GFI targets for the remainder of a drive.
type Weather uint8

const (
	Nice Weather = iota
	Sunny
	Rain
	Blizzard
	Sweltering
)
