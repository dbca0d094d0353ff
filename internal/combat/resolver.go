// Package combat resolves arrow strikes against Otyughs and the encounters
// that follow when the player walks into a lair.
package combat

import (
	"fmt"

	"github.com/samdwyer/otyugh/internal/rng"
)

// Monster is anything that can be shot and can eat the player.
type Monster interface {
	IsAlive() bool
	Hits() int
	TakeHit()
	Eats(src rng.Source) bool
}

// Result is the outcome of a strike or an encounter.
type Result struct {
	Hit     bool // an arrow struck a live monster
	Killed  bool // that strike was fatal
	Eaten   bool // the player was eaten
	Message string
}

// Resolver decides strikes and encounters, drawing chance from one source
// so whole games replay from a seed.
type Resolver struct {
	src rng.Source
}

// NewResolver creates a resolver drawing from src.
func NewResolver(src rng.Source) *Resolver {
	return &Resolver{src: src}
}

// Strike applies an arrow landing in m's cave. Dead monsters absorb
// nothing and the arrow counts as a miss.
func (r *Resolver) Strike(m Monster) Result {
	if m == nil || !m.IsAlive() {
		return Result{Message: "the arrow lands in an empty cave"}
	}
	m.TakeHit()
	if !m.IsAlive() {
		return Result{Hit: true, Killed: true, Message: "the Otyugh is slain"}
	}
	return Result{Hit: true, Message: fmt.Sprintf("the Otyugh is wounded (%d hits)", m.Hits())}
}

// Encounter resolves the player entering m's cave.
func (r *Resolver) Encounter(m Monster) Result {
	if m == nil || !m.IsAlive() {
		return Result{Message: "a dead Otyugh lies here"}
	}
	if m.Eats(r.src) {
		return Result{Eaten: true, Message: "the Otyugh eats the player"}
	}
	return Result{Message: "the wounded Otyugh lets the player pass"}
}
