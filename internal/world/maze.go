package world

import (
	"fmt"

	"github.com/zyedidia/generic/mapset"

	"github.com/samdwyer/otyugh/internal/rng"
)

// Maze is an undirected, consistently labelled cell graph over a grid.
type Maze struct {
	rows, cols int
	wrapping   bool
	cells      []*Cell
	edges      int
}

func newMaze(rows, cols int, wrapping bool) *Maze {
	m := &Maze{
		rows:     rows,
		cols:     cols,
		wrapping: wrapping,
		cells:    make([]*Cell, rows*cols),
	}
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			i := r*cols + c
			m.cells[i] = newCell(r, c, i)
		}
	}
	return m
}

// edge is a potential passage; dir leads from a to b.
type edge struct {
	a, b int
	dir  Direction
}

// BuildMaze joins a rows×cols grid into a random spanning tree and then
// adds interconnectivity extra passages drawn from the redundant edges.
// A grid with P potential edges and N cells offers max(0, P-N) of them.
func BuildMaze(rows, cols int, wrapping bool, interconnectivity int, src rng.Source) (*Maze, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("%w: dimensions must be positive, got %dx%d", ErrConfiguration, rows, cols)
	}
	if interconnectivity < 0 {
		return nil, fmt.Errorf("%w: negative interconnectivity %d", ErrConfiguration, interconnectivity)
	}

	tree, redundant := spanningTree(rows, cols, wrapping, src)
	if interconnectivity > len(redundant) {
		return nil, fmt.Errorf("%w: dungeon size %dx%d too small for interconnectivity = %d (%d spare passages)",
			ErrConfiguration, rows, cols, interconnectivity, len(redundant))
	}

	m := newMaze(rows, cols, wrapping)
	for _, e := range tree {
		m.link(e.a, e.b, e.dir)
	}
	for i := 0; i < interconnectivity; i++ {
		e := drawEdge(&redundant, src)
		m.link(e.a, e.b, e.dir)
	}
	return m, nil
}

// spanningTree draws potential edges without replacement until a single
// edge remains. Drawn edges that join two components form the tree; drawn
// edges whose endpoints were already joined are redundant. The last edge is
// never drawn: it is committed only if the tree still needs it.
func spanningTree(rows, cols int, wrapping bool, src rng.Source) (tree, redundant []edge) {
	pool := potentialEdges(rows, cols, wrapping)
	sets := newComponents(rows * cols)

	tree = make([]edge, 0, rows*cols-1)
	for len(pool) > 1 {
		e := drawEdge(&pool, src)
		if sets.union(e.a, e.b) {
			tree = append(tree, e)
		} else {
			redundant = append(redundant, e)
		}
	}
	if len(pool) == 1 && sets.union(pool[0].a, pool[0].b) {
		tree = append(tree, pool[0])
	}
	return tree, redundant
}

// potentialEdges enumerates each unordered grid adjacency once. Plain
// adjacencies are listed before wrap adjacencies so that on 2-wide grids
// the plain direction label wins.
func potentialEdges(rows, cols int, wrapping bool) []edge {
	seen := mapset.New[[2]int]()
	var edges []edge
	add := func(a, b int, d Direction) {
		if a == b {
			return
		}
		key := [2]int{min(a, b), max(a, b)}
		if seen.Has(key) {
			return
		}
		seen.Put(key)
		edges = append(edges, edge{a: a, b: b, dir: d})
	}

	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			i := r*cols + c
			if c+1 < cols {
				add(i, i+1, East)
			}
			if r+1 < rows {
				add(i, i+cols, South)
			}
		}
	}
	if wrapping {
		for r := 0; r < rows; r++ {
			add(r*cols+cols-1, r*cols, East)
		}
		for c := 0; c < cols; c++ {
			add((rows-1)*cols+c, c, South)
		}
	}
	return edges
}

// drawEdge removes and returns a uniformly chosen edge from pool.
func drawEdge(pool *[]edge, src rng.Source) edge {
	p := *pool
	i := src.Intn(len(p))
	e := p[i]
	p[i] = p[len(p)-1]
	*pool = p[:len(p)-1]
	return e
}

func (m *Maze) link(a, b int, d Direction) {
	m.cells[a].links[d] = b
	m.cells[b].links[d.Opposite()] = a
	m.edges++
}

// Rows returns the number of grid rows.
func (m *Maze) Rows() int { return m.rows }

// Cols returns the number of grid columns.
func (m *Maze) Cols() int { return m.cols }

// Wrapping reports whether border cells may connect to the opposite border.
func (m *Maze) Wrapping() bool { return m.wrapping }

// EdgeCount returns the number of passages in the maze.
func (m *Maze) EdgeCount() int { return m.edges }

// Cell returns the cell at p.
func (m *Maze) Cell(p Point) (*Cell, error) {
	if p.Row < 0 || p.Row >= m.rows || p.Col < 0 || p.Col >= m.cols {
		return nil, fmt.Errorf("%w: %v outside %dx%d grid", ErrInvalidArgument, p, m.rows, m.cols)
	}
	return m.cells[p.Row*m.cols+p.Col], nil
}

// Cells returns every cell in row-major order.
func (m *Maze) Cells() []*Cell {
	cells := make([]*Cell, len(m.cells))
	copy(cells, m.cells)
	return cells
}

// Neighbor returns the cell reached by leaving c in direction d.
func (m *Maze) Neighbor(c *Cell, d Direction) (*Cell, bool) {
	if !c.HasExit(d) {
		return nil, false
	}
	return m.cells[c.links[d]], true
}

// components is a union-find over cell indices.
type components struct {
	parent []int
	count  int
}

func newComponents(n int) *components {
	parent := make([]int, n)
	for i := range parent {
		parent[i] = i
	}
	return &components{parent: parent, count: n}
}

func (s *components) find(i int) int {
	for s.parent[i] != i {
		s.parent[i] = s.parent[s.parent[i]]
		i = s.parent[i]
	}
	return i
}

// union merges the components of a and b and reports whether they differed.
func (s *components) union(a, b int) bool {
	ra, rb := s.find(a), s.find(b)
	if ra == rb {
		return false
	}
	s.parent[rb] = ra
	s.count--
	return true
}
