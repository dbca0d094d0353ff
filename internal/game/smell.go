package game

// Smell returns the odour of live Otyughs at the player's cell, measured
// by passage distance.
func (e *Engine) Smell() Smell {
	near := 0
	for c, dist := range e.dungeon.Distances(e.player.Location(), e.rules.SmellRadius) {
		m, ok := e.monsters[c.Index()]
		if !ok || !m.IsAlive() {
			continue
		}
		if dist <= e.rules.StrongSmellRadius {
			return StrongSmell
		}
		near++
	}

	switch {
	case near >= e.rules.StrongSmellCount:
		return StrongSmell
	case near > 0:
		return WeakSmell
	default:
		return NoSmell
	}
}
