package game

import (
	"strings"

	"github.com/samdwyer/otyugh/internal/world"
)

// Render draws a bird's-eye view of the dungeon, three characters square
// per cell with the passages drawn around a centre marker:
//
//	@ player   S start   E end   M live Otyugh (reveal only)
//	O/o visited/unvisited cave   #/+ visited/unvisited tunnel
func (e *Engine) Render(reveal bool) string {
	var b strings.Builder
	d := e.dungeon

	for row := 0; row < d.Rows(); row++ {
		var top, mid, bottom strings.Builder
		for col := 0; col < d.Cols(); col++ {
			c, _ := d.Cell(world.Point{Row: row, Col: col})

			top.WriteString(passage(c, world.North, " | ", "   "))
			mid.WriteString(passage(c, world.West, "-", " "))
			mid.WriteRune(e.marker(c, reveal))
			mid.WriteString(passage(c, world.East, "-", " "))
			bottom.WriteString(passage(c, world.South, " | ", "   "))
		}
		for _, line := range []*strings.Builder{&top, &mid, &bottom} {
			b.WriteString(strings.TrimRight(line.String(), " "))
			b.WriteByte('\n')
		}
	}
	return b.String()
}

func passage(c *world.Cell, d world.Direction, open, closed string) string {
	if c.HasExit(d) {
		return open
	}
	return closed
}

func (e *Engine) marker(c *world.Cell, reveal bool) rune {
	switch {
	case c == e.player.Location():
		return '@'
	case c == e.dungeon.Start():
		return 'S'
	case c == e.dungeon.End():
		return 'E'
	}
	if m, ok := e.monsters[c.Index()]; reveal && ok && m.IsAlive() {
		return 'M'
	}
	switch {
	case c.IsCave() && c.Visited():
		return 'O'
	case c.IsCave():
		return 'o'
	case c.Visited():
		return '#'
	default:
		return '+'
	}
}
