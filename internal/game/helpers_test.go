package game

import (
	"context"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"

	"github.com/samdwyer/otyugh/internal/rng"
	"github.com/samdwyer/otyugh/internal/world"
)

// scripted returns queued values from Intn, modulo n, and counts draws.
type scripted struct {
	values []int
	calls  int
}

func (s *scripted) Intn(n int) int {
	v := s.values[s.calls%len(s.values)]
	s.calls++
	return v % n
}

var _ rng.Source = (*scripted)(nil)

var ctx = context.Background()

// pinwheel: a four-way cave at (1,1), tunnels on the edge midpoints and
// dead-end caves in the corners. Start (0,0), end (2,2).
//
//	 S--+  o
//	    |  |
//	 +--o--+
//	 |  |
//	 o  +--E
func pinwheel(lairs ...world.Point) world.Blueprint {
	return world.Blueprint{
		Rows: 3,
		Cols: 3,
		Links: []world.Link{
			{From: world.Point{Row: 1, Col: 1}, Dir: world.North},
			{From: world.Point{Row: 1, Col: 1}, Dir: world.South},
			{From: world.Point{Row: 1, Col: 1}, Dir: world.East},
			{From: world.Point{Row: 1, Col: 1}, Dir: world.West},
			{From: world.Point{Row: 0, Col: 0}, Dir: world.East},
			{From: world.Point{Row: 0, Col: 2}, Dir: world.South},
			{From: world.Point{Row: 2, Col: 2}, Dir: world.West},
			{From: world.Point{Row: 2, Col: 0}, Dir: world.North},
		},
		Start: world.Point{Row: 0, Col: 0},
		End:   world.Point{Row: 2, Col: 2},
		Lairs: lairs,
	}
}

// comb: caves at (0,1) and along the bottom row, joined by tunnels.
// Start (2,0), end (2,2).
//
//	 +--o--+
//	 |  |  |
//	 +  +  +
//	 |  |  |
//	 S  o  E
func comb(lairs ...world.Point) world.Blueprint {
	var links []world.Link
	for _, l := range []struct {
		row, col int
		dir      world.Direction
	}{
		{0, 0, world.East}, {0, 1, world.East},
		{0, 0, world.South}, {1, 0, world.South},
		{0, 1, world.South}, {1, 1, world.South},
		{0, 2, world.South}, {1, 2, world.South},
	} {
		links = append(links, world.Link{From: world.Point{Row: l.row, Col: l.col}, Dir: l.dir})
	}
	return world.Blueprint{
		Rows:  3,
		Cols:  3,
		Links: links,
		Start: world.Point{Row: 2, Col: 0},
		End:   world.Point{Row: 2, Col: 2},
		Lairs: lairs,
	}
}

func newTestEngine(t *testing.T, bp world.Blueprint, src rng.Source, rules Rules) (*Engine, *test.Hook) {
	t.Helper()
	d, err := world.Assemble(bp)
	if err != nil {
		t.Fatalf("Assemble() error: %v", err)
	}
	if src == nil {
		src = rng.New(1)
	}
	e, err := NewFromDungeon(d, src, rules)
	if err != nil {
		t.Fatalf("NewFromDungeon() error: %v", err)
	}
	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)
	e.SetLogger(logger)
	return e, hook
}

func mustMove(t *testing.T, e *Engine, dirs ...world.Direction) {
	t.Helper()
	for _, d := range dirs {
		if err := e.Move(ctx, d); err != nil {
			t.Fatalf("Move(%v) from %v error: %v", d, e.Location().Point, err)
		}
	}
}

func pt(row, col int) world.Point {
	return world.Point{Row: row, Col: col}
}
