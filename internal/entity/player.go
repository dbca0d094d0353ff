// Package entity provides the player and the monsters lurking in the
// dungeon.
package entity

import (
	"errors"

	"github.com/samdwyer/otyugh/internal/world"
)

// StartingArrows is the quiver size a new player begins with.
const StartingArrows = 3

// Player is the adventurer exploring the dungeon.
type Player struct {
	location *world.Cell
	treasure map[world.Treasure]int
	arrows   int
	alive    bool
}

// NewPlayer places a living player with a full quiver at start.
func NewPlayer(start *world.Cell) (*Player, error) {
	if start == nil {
		return nil, errors.New("player needs a starting cell")
	}
	return &Player{
		location: start,
		treasure: make(map[world.Treasure]int),
		arrows:   StartingArrows,
		alive:    true,
	}, nil
}

// Location returns the cell the player occupies.
func (p *Player) Location() *world.Cell {
	return p.location
}

// Treasure returns a copy of the collected treasure counts.
func (p *Player) Treasure() map[world.Treasure]int {
	out := make(map[world.Treasure]int, len(p.treasure))
	for k, v := range p.treasure {
		out[k] = v
	}
	return out
}

// TreasureCount returns the total number of treasure units held.
func (p *Player) TreasureCount() int {
	total := 0
	for _, n := range p.treasure {
		total += n
	}
	return total
}

// Arrows returns the number of arrows in the quiver.
func (p *Player) Arrows() int {
	return p.arrows
}

// IsAlive reports whether the player is still alive.
func (p *Player) IsAlive() bool {
	return p.alive
}

// MoveTo relocates the player. Adjacency is the caller's concern.
func (p *Player) MoveTo(c *world.Cell) {
	p.location = c
}

// CollectTreasure adds one unit of t.
func (p *Player) CollectTreasure(t world.Treasure) {
	p.treasure[t]++
}

// AddArrow puts one arrow in the quiver.
func (p *Player) AddArrow() {
	p.arrows++
}

// SpendArrow removes one arrow, returning false if the quiver was empty.
func (p *Player) SpendArrow() bool {
	if p.arrows == 0 {
		return false
	}
	p.arrows--
	return true
}

// Die marks the player as dead.
func (p *Player) Die() {
	p.alive = false
}
