package world

import "fmt"

// Point is a grid coordinate.
type Point struct {
	Row, Col int
}

// String returns the point as "(row,col)".
func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

const noLink = -1

// Cell is one grid location. Its passages are stored as indices into the
// owning maze's cell arena; mutation happens only through Dungeon methods.
type Cell struct {
	Point
	index   int
	links   [len(Directions)]int
	items   []Item
	lair    bool
	visited bool
}

func newCell(row, col, index int) *Cell {
	c := &Cell{Point: Point{Row: row, Col: col}, index: index}
	for i := range c.links {
		c.links[i] = noLink
	}
	return c
}

// Index returns the row-major index of the cell.
func (c *Cell) Index() int {
	return c.index
}

// HasExit reports whether a passage leaves the cell in direction d.
func (c *Cell) HasExit(d Direction) bool {
	return d.Valid() && c.links[d] != noLink
}

// Directions returns the open directions in canonical order.
func (c *Cell) Directions() []Direction {
	dirs := make([]Direction, 0, len(Directions))
	for _, d := range Directions {
		if c.links[d] != noLink {
			dirs = append(dirs, d)
		}
	}
	return dirs
}

// Degree returns the number of open directions.
func (c *Cell) Degree() int {
	n := 0
	for _, l := range c.links {
		if l != noLink {
			n++
		}
	}
	return n
}

// IsTunnel reports whether the cell has exactly two passages.
func (c *Cell) IsTunnel() bool {
	return c.Degree() == 2
}

// IsCave reports whether the cell is not a tunnel.
func (c *Cell) IsCave() bool {
	return !c.IsTunnel()
}

// Items returns a copy of the content lying in the cell.
func (c *Cell) Items() []Item {
	items := make([]Item, len(c.items))
	copy(items, c.items)
	return items
}

// Count returns how many units of item lie in the cell.
func (c *Cell) Count(item Item) int {
	n := 0
	for _, it := range c.items {
		if it == item {
			n++
		}
	}
	return n
}

// HasLair reports whether a monster dwells in the cell.
func (c *Cell) HasLair() bool {
	return c.lair
}

// Visited reports whether the player has entered the cell.
func (c *Cell) Visited() bool {
	return c.visited
}

func (c *Cell) removeItem(item Item) bool {
	for i, it := range c.items {
		if it == item {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return true
		}
	}
	return false
}
