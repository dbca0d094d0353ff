// Package game runs the simulation: player actions, arrow flight, monster
// encounters, smell and the end of the game.
package game

// Outcome is the state of play, derived from the player and location.
type Outcome int

const (
	// Playing means the player is alive and has not reached the end cave.
	Playing Outcome = iota
	// Won means the player reached the end cave alive.
	Won
	// Lost means the player was eaten.
	Lost
)

// String returns a human-readable outcome name.
func (o Outcome) String() string {
	switch o {
	case Playing:
		return "playing"
	case Won:
		return "won"
	case Lost:
		return "lost"
	default:
		return "unknown"
	}
}

// Smell is the odour of nearby live monsters at the player's cell.
type Smell int

const (
	NoSmell Smell = iota
	WeakSmell
	StrongSmell
)

// String returns the smell intensity.
func (s Smell) String() string {
	switch s {
	case NoSmell:
		return "none"
	case WeakSmell:
		return "weak"
	case StrongSmell:
		return "strong"
	default:
		return "unknown"
	}
}
