package world

import "github.com/zyedidia/generic/mapset"

// Distances returns the passage distance from start to every cell no more
// than limit steps away. A negative limit searches the whole maze.
func (m *Maze) Distances(start *Cell, limit int) map[*Cell]int {
	dist := map[*Cell]int{start: 0}
	visited := mapset.New[int]()
	visited.Put(start.index)

	queue := []*Cell{start}
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		if limit >= 0 && dist[current] >= limit {
			continue
		}
		for _, d := range Directions {
			next, ok := m.Neighbor(current, d)
			if !ok || visited.Has(next.index) {
				continue
			}
			visited.Put(next.index)
			dist[next] = dist[current] + 1
			queue = append(queue, next)
		}
	}
	return dist
}

// Distance returns the passage distance between a and b, or -1 if b cannot
// be reached from a.
func (m *Maze) Distance(a, b *Cell) int {
	if d, ok := m.Distances(a, -1)[b]; ok {
		return d
	}
	return -1
}

// Connected reports whether every cell can be reached from every other.
func (m *Maze) Connected() bool {
	if len(m.cells) == 0 {
		return false
	}
	return len(m.Distances(m.cells[0], -1)) == len(m.cells)
}
