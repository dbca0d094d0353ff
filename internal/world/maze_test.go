package world

import (
	"errors"
	"testing"

	"github.com/samdwyer/otyugh/internal/rng"
)

func mod(a, n int) int {
	return ((a % n) + n) % n
}

func checkMazeInvariants(t *testing.T, m *Maze, wantEdges int) {
	t.Helper()

	if got := m.EdgeCount(); got != wantEdges {
		t.Errorf("EdgeCount() = %d, want %d", got, wantEdges)
	}
	if !m.Connected() {
		t.Fatalf("%dx%d maze is not connected", m.Rows(), m.Cols())
	}

	degrees := 0
	for _, c := range m.Cells() {
		if c.Degree() == 0 && len(m.cells) > 1 {
			t.Errorf("cell %v has no passages", c.Point)
		}
		if c.IsTunnel() && c.Degree() != 2 {
			t.Errorf("tunnel %v has degree %d", c.Point, c.Degree())
		}
		if c.IsCave() && c.Degree() == 2 {
			t.Errorf("cave %v has degree 2", c.Point)
		}
		for _, d := range c.Directions() {
			degrees++
			n, ok := m.Neighbor(c, d)
			if !ok {
				t.Fatalf("Neighbor(%v, %v) missing for open direction", c.Point, d)
			}
			back, ok := m.Neighbor(n, d.Opposite())
			if !ok || back != c {
				t.Errorf("passage %v -%v-> %v is not reciprocated", c.Point, d, n.Point)
			}

			dr, dc := d.Delta()
			want := Point{Row: c.Row + dr, Col: c.Col + dc}
			if m.Wrapping() {
				want = Point{Row: mod(want.Row, m.Rows()), Col: mod(want.Col, m.Cols())}
			}
			if n.Point != want {
				t.Errorf("%v going %v reaches %v, want %v", c.Point, d, n.Point, want)
			}
		}
	}
	if degrees != 2*wantEdges {
		t.Errorf("sum of degrees = %d, want %d", degrees, 2*wantEdges)
	}
}

func TestBuildMaze_Invariants(t *testing.T) {
	tests := []struct {
		rows, cols int
		wrapping   bool
		ic         int
	}{
		{1, 1, false, 0},
		{1, 6, false, 0},
		{2, 2, false, 0},
		{2, 2, true, 0},
		{3, 7, true, 0},
		{4, 6, false, 3},
		{5, 5, true, 6},
		{2, 3, true, 1},
		{10, 10, false, 20},
		{1, 5, true, 0},
	}

	for _, tt := range tests {
		for seed := int64(1); seed <= 5; seed++ {
			m, err := BuildMaze(tt.rows, tt.cols, tt.wrapping, tt.ic, rng.New(seed))
			if err != nil {
				t.Fatalf("BuildMaze(%d, %d, %v, %d) seed %d: %v", tt.rows, tt.cols, tt.wrapping, tt.ic, seed, err)
			}
			checkMazeInvariants(t, m, tt.rows*tt.cols-1+tt.ic)
		}
	}
}

func TestBuildMaze_TwoByTwo(t *testing.T) {
	for seed := int64(1); seed <= 10; seed++ {
		m, err := BuildMaze(2, 2, false, 0, rng.New(seed))
		if err != nil {
			t.Fatalf("seed %d: %v", seed, err)
		}
		checkMazeInvariants(t, m, 3)

		_, err = BuildMaze(2, 2, false, 1, rng.New(seed))
		if !errors.Is(err, ErrConfiguration) {
			t.Errorf("seed %d: BuildMaze(2, 2, false, 1) error = %v, want ErrConfiguration", seed, err)
		}
	}
}

// TestBuildMaze_SparePassages checks that every non-tree edge but the one
// left undrawn is available, whatever the draw order.
func TestBuildMaze_SparePassages(t *testing.T) {
	tests := []struct {
		rows, cols int
		wrapping   bool
		spare      int // potential edges minus cells
	}{
		{1, 5, false, 0},
		{1, 4, true, 0},
		{2, 2, false, 0},
		{3, 3, false, 3},
		{3, 3, true, 9},
		{4, 4, false, 8},
		{6, 6, false, 24},
		{4, 5, true, 20},
		{6, 8, false, 34},
	}

	for _, tt := range tests {
		for seed := int64(1); seed <= 20; seed++ {
			m, err := BuildMaze(tt.rows, tt.cols, tt.wrapping, tt.spare, rng.New(seed))
			if err != nil {
				t.Fatalf("BuildMaze(%d, %d, %v, %d) seed %d: %v", tt.rows, tt.cols, tt.wrapping, tt.spare, seed, err)
			}
			checkMazeInvariants(t, m, tt.rows*tt.cols-1+tt.spare)

			_, err = BuildMaze(tt.rows, tt.cols, tt.wrapping, tt.spare+1, rng.New(seed))
			if !errors.Is(err, ErrConfiguration) {
				t.Errorf("BuildMaze(%d, %d, %v, %d) seed %d error = %v, want ErrConfiguration",
					tt.rows, tt.cols, tt.wrapping, tt.spare+1, seed, err)
			}
		}
	}
}

func TestBuildMaze_ModestInterconnectivity(t *testing.T) {
	for seed := int64(1); seed <= 200; seed++ {
		if _, err := BuildMaze(4, 4, false, 4, rng.New(seed)); err != nil {
			t.Fatalf("BuildMaze(4, 4, false, 4) seed %d: %v", seed, err)
		}
		if _, err := BuildMaze(3, 3, false, 2, rng.New(seed)); err != nil {
			t.Fatalf("BuildMaze(3, 3, false, 2) seed %d: %v", seed, err)
		}
	}
}

func TestBuildMaze_InvalidArguments(t *testing.T) {
	tests := []struct {
		rows, cols, ic int
	}{
		{0, 5, 0},
		{5, 0, 0},
		{-1, 3, 0},
		{3, 3, -1},
	}
	for _, tt := range tests {
		_, err := BuildMaze(tt.rows, tt.cols, false, tt.ic, rng.New(1))
		if !errors.Is(err, ErrConfiguration) {
			t.Errorf("BuildMaze(%d, %d, false, %d) error = %v, want ErrConfiguration", tt.rows, tt.cols, tt.ic, err)
		}
	}
}

func TestBuildMaze_Reproducible(t *testing.T) {
	const ic = 4
	m1, err := BuildMaze(7, 9, true, ic, rng.New(2024))
	if err != nil {
		t.Fatal(err)
	}
	m2, err := BuildMaze(7, 9, true, ic, rng.New(2024))
	if err != nil {
		t.Fatal(err)
	}

	for i, c := range m1.cells {
		if c.links != m2.cells[i].links {
			t.Errorf("cell %v links differ: %v != %v", c.Point, c.links, m2.cells[i].links)
		}
	}
}

func TestPotentialEdges(t *testing.T) {
	tests := []struct {
		rows, cols int
		wrapping   bool
		want       int
	}{
		{1, 1, false, 0},
		{1, 1, true, 0},
		{2, 2, false, 4},
		{2, 2, true, 4},
		{3, 3, false, 12},
		{3, 3, true, 18},
		{1, 4, true, 4},
		{4, 5, false, 31},
		{4, 5, true, 40},
	}
	for _, tt := range tests {
		if got := len(potentialEdges(tt.rows, tt.cols, tt.wrapping)); got != tt.want {
			t.Errorf("potentialEdges(%d, %d, %v) = %d edges, want %d", tt.rows, tt.cols, tt.wrapping, got, tt.want)
		}
	}
}

func TestDistances(t *testing.T) {
	// A straight corridor of five cells.
	m, err := BuildMaze(1, 5, false, 0, rng.New(1))
	if err != nil {
		t.Fatal(err)
	}
	first := m.cells[0]

	all := m.Distances(first, -1)
	for i, c := range m.cells {
		if all[c] != i {
			t.Errorf("distance to %v = %d, want %d", c.Point, all[c], i)
		}
	}

	near := m.Distances(first, 2)
	if len(near) != 3 {
		t.Errorf("Distances(limit 2) reached %d cells, want 3", len(near))
	}
	if got := m.Distance(first, m.cells[4]); got != 4 {
		t.Errorf("Distance() = %d, want 4", got)
	}
}

func TestMazeCell_OutOfBounds(t *testing.T) {
	m, err := BuildMaze(3, 3, false, 0, rng.New(1))
	if err != nil {
		t.Fatal(err)
	}
	for _, p := range []Point{{-1, 0}, {0, -1}, {3, 0}, {0, 3}} {
		if _, err := m.Cell(p); !errors.Is(err, ErrInvalidArgument) {
			t.Errorf("Cell(%v) error = %v, want ErrInvalidArgument", p, err)
		}
	}
	c, err := m.Cell(Point{Row: 2, Col: 1})
	if err != nil {
		t.Fatal(err)
	}
	if c.Index() != 7 {
		t.Errorf("Cell(2,1).Index() = %d, want 7", c.Index())
	}
}
