package game

import "github.com/samdwyer/otyugh/internal/world"

// flight follows an arrow leaving from in direction heading and returns the
// cave it lands in, or nil if it drops short. Tunnels bend the arrow
// through their other exit and do not count toward distance; each cave
// entered counts one.
func (e *Engine) flight(from *world.Cell, heading world.Direction, distance int) *world.Cell {
	cur := from
	remaining := distance
	// A run of tunnels longer than the grid can only be a loop.
	tunnelRun, maxRun := 0, len(e.dungeon.Cells())

	for {
		next, ok := e.dungeon.Neighbor(cur, heading)
		if !ok {
			return nil
		}
		cur = next

		if cur.IsTunnel() {
			tunnelRun++
			if tunnelRun > maxRun {
				return nil
			}
			heading = otherExit(cur, heading.Opposite())
			continue
		}
		tunnelRun = 0

		remaining--
		if remaining == 0 {
			return cur
		}
		switch {
		case cur.HasExit(heading):
		case cur.Degree() == 1 && e.rules.DeadEndsReflect:
			heading = heading.Opposite()
		default:
			return nil
		}
	}
}

// otherExit returns the tunnel exit that is not entry.
func otherExit(tunnel *world.Cell, entry world.Direction) world.Direction {
	for _, d := range tunnel.Directions() {
		if d != entry {
			return d
		}
	}
	return entry
}
