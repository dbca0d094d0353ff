package world

import (
	"fmt"
	"sort"
)

// Link opens a passage leaving From in direction Dir.
type Link struct {
	From Point
	Dir  Direction
}

// Blueprint describes a fixed dungeon layout.
type Blueprint struct {
	Rows, Cols int
	Wrapping   bool
	Links      []Link
	Start, End Point
	// Lairs lists extra monster caves; End is always a lair.
	Lairs []Point
	Items map[Point][]Item
}

// Assemble builds a dungeon from an explicit layout. The layout must be
// connected, Start and End must be distinct caves, lairs must be caves
// other than Start, and treasure may only lie in caves.
func Assemble(bp Blueprint) (*Dungeon, error) {
	if bp.Rows <= 0 || bp.Cols <= 0 {
		return nil, fmt.Errorf("%w: dimensions must be positive, got %dx%d", ErrConfiguration, bp.Rows, bp.Cols)
	}
	m := newMaze(bp.Rows, bp.Cols, bp.Wrapping)

	for _, l := range bp.Links {
		if err := m.linkFrom(l); err != nil {
			return nil, err
		}
	}
	if !m.Connected() {
		return nil, fmt.Errorf("%w: layout is not connected", ErrConfiguration)
	}

	d := newDungeon(m)
	start, err := d.caveAt(bp.Start, "start")
	if err != nil {
		return nil, err
	}
	end, err := d.caveAt(bp.End, "end")
	if err != nil {
		return nil, err
	}
	if start == end {
		return nil, fmt.Errorf("%w: start and end are both %v", ErrConfiguration, bp.Start)
	}
	d.start, d.end = start.index, end.index
	d.addLair(d.end)

	for _, p := range bp.Lairs {
		c, err := d.caveAt(p, "lair")
		if err != nil {
			return nil, err
		}
		if c == start {
			return nil, fmt.Errorf("%w: monster placed in start cave %v", ErrConfiguration, p)
		}
		if !c.lair {
			d.addLair(c.index)
		}
	}
	sort.Ints(d.lairs)

	for p, items := range bp.Items {
		c, err := m.Cell(p)
		if err != nil {
			return nil, fmt.Errorf("%w: item position: %v", ErrConfiguration, err)
		}
		for _, it := range items {
			if it.Kind == ItemTreasure && !c.IsCave() {
				return nil, fmt.Errorf("%w: treasure in tunnel %v", ErrConfiguration, p)
			}
			c.items = append(c.items, it)
		}
	}
	return d, nil
}

func (d *Dungeon) caveAt(p Point, role string) (*Cell, error) {
	c, err := d.Cell(p)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrConfiguration, role, err)
	}
	if !c.IsCave() {
		return nil, fmt.Errorf("%w: %s %v is a tunnel", ErrConfiguration, role, p)
	}
	return c, nil
}

// linkFrom opens l, wrapping around the border when the maze wraps.
func (m *Maze) linkFrom(l Link) error {
	from, err := m.Cell(l.From)
	if err != nil {
		return fmt.Errorf("%w: link: %v", ErrConfiguration, err)
	}
	if !l.Dir.Valid() {
		return fmt.Errorf("%w: link from %v has invalid direction %d", ErrConfiguration, l.From, l.Dir)
	}

	dr, dc := l.Dir.Delta()
	to := Point{Row: l.From.Row + dr, Col: l.From.Col + dc}
	if m.wrapping {
		to.Row = (to.Row + m.rows) % m.rows
		to.Col = (to.Col + m.cols) % m.cols
	}
	target, err := m.Cell(to)
	if err != nil {
		return fmt.Errorf("%w: link %v %v leaves the grid", ErrConfiguration, l.From, l.Dir)
	}
	if target == from {
		return fmt.Errorf("%w: link %v %v loops back to itself", ErrConfiguration, l.From, l.Dir)
	}
	for _, d := range Directions {
		if from.links[d] == target.index {
			return fmt.Errorf("%w: %v and %v are already linked", ErrConfiguration, l.From, to)
		}
	}
	if from.HasExit(l.Dir) || target.HasExit(l.Dir.Opposite()) {
		return fmt.Errorf("%w: link %v %v reuses an open direction", ErrConfiguration, l.From, l.Dir)
	}

	m.link(from.index, target.index, l.Dir)
	return nil
}
