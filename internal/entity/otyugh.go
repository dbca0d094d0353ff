package entity

import (
	"github.com/samdwyer/otyugh/internal/rng"
	"github.com/samdwyer/otyugh/internal/world"
)

// hitsToKill is the number of arrow hits that kill an Otyugh.
const hitsToKill = 2

// Monster is the read-only view of a monster handed to callers outside
// the engine.
type Monster interface {
	Dwelling() *world.Cell
	Hits() int
	IsAlive() bool
	EatChance() int
}

// Otyugh is a stationary monster living in a cave. An unharmed Otyugh
// always eats a player entering its cave, an injured one eats half the
// time, and a dead one never does.
type Otyugh struct {
	dwelling *world.Cell
	hits     int
}

var _ Monster = (*Otyugh)(nil)

// NewOtyugh creates an unharmed Otyugh dwelling in c.
func NewOtyugh(c *world.Cell) *Otyugh {
	return &Otyugh{dwelling: c}
}

// Dwelling returns the cave the Otyugh lives in.
func (o *Otyugh) Dwelling() *world.Cell {
	return o.dwelling
}

// Hits returns how many arrows have struck the Otyugh.
func (o *Otyugh) Hits() int {
	return o.hits
}

// IsAlive reports whether the Otyugh has taken fewer than two hits.
func (o *Otyugh) IsAlive() bool {
	return o.hits < hitsToKill
}

// TakeHit records an arrow strike. Hits on a dead Otyugh are ignored.
func (o *Otyugh) TakeHit() {
	if o.IsAlive() {
		o.hits++
	}
}

// EatChance returns the percentage chance of eating an entering player.
func (o *Otyugh) EatChance() int {
	switch o.hits {
	case 0:
		return 100
	case 1:
		return 50
	default:
		return 0
	}
}

// Eats decides whether the Otyugh eats a player entering its cave. Only
// the injured case draws from src.
func (o *Otyugh) Eats(src rng.Source) bool {
	switch o.hits {
	case 0:
		return true
	case 1:
		return src.Intn(2) == 0
	default:
		return false
	}
}
