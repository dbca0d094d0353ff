package ui

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/otyugh/internal/game"
	"github.com/samdwyer/otyugh/internal/gamedata"
	"github.com/samdwyer/otyugh/internal/world"
)

// fakeGame records actions and serves a fixed view.
type fakeGame struct {
	here   *world.Cell
	moves  []world.Direction
	picks  []world.Item
	shots  []int
	aims   []world.Direction
	arrows int
	hit    bool
}

func (f *fakeGame) Location() *world.Cell { return f.here }
func (f *fakeGame) PlayerAlive() bool { return true }
func (f *fakeGame) Treasure() map[world.Treasure]int { return map[world.Treasure]int{world.Ruby: 2} }
func (f *fakeGame) Arrows() int { return f.arrows }
func (f *fakeGame) Smell() game.Smell { return game.WeakSmell }
func (f *fakeGame) Outcome() game.Outcome { return game.Playing }
func (f *fakeGame) Render(bool) string { return "" }
func (f *fakeGame) PickItem(_ context.Context, it world.Item) error {
	f.picks = append(f.picks, it)
	return nil
}

func (f *fakeGame) Move(_ context.Context, d world.Direction) error {
	if !f.here.HasExit(d) {
		return game.ErrInvalidMove
	}
	f.moves = append(f.moves, d)
	return nil
}

func (f *fakeGame) Shoot(_ context.Context, d world.Direction, distance int) (bool, error) {
	if f.arrows == 0 {
		return false, game.ErrArrowsDepleted
	}
	f.arrows--
	f.aims = append(f.aims, d)
	f.shots = append(f.shots, distance)
	return f.hit, nil
}

func newFakeGame(t *testing.T) *fakeGame {
	t.Helper()
	bp := world.Blueprint{
		Rows:  1,
		Cols:  2,
		Links: []world.Link{{From: world.Point{Row: 0, Col: 0}, Dir: world.East}},
		Start: world.Point{Row: 0, Col: 0},
		End:   world.Point{Row: 0, Col: 1},
		Items: map[world.Point][]world.Item{{Row: 0, Col: 0}: {world.ArrowItem()}},
	}
	d, err := world.Assemble(bp)
	if err != nil {
		t.Fatalf("Assemble() error: %v", err)
	}
	return &fakeGame{here: d.Start(), arrows: 1}
}

func key(k tcell.Key) *tcell.EventKey {
	return tcell.NewEventKey(k, 0, tcell.ModNone)
}

func char(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

func TestSessionMove(t *testing.T) {
	f := newFakeGame(t)
	s := NewSession(f)
	ctx := context.Background()

	s.HandleKey(ctx, key(tcell.KeyUp))
	if len(f.moves) != 0 || !strings.Contains(s.Message(), "no passage north") {
		t.Errorf("blocked move: moves=%v message=%q", f.moves, s.Message())
	}
	s.HandleKey(ctx, key(tcell.KeyRight))
	if len(f.moves) != 1 || f.moves[0] != world.East {
		t.Errorf("moves = %v, want [east]", f.moves)
	}
}

func TestSessionShoot(t *testing.T) {
	f := newFakeGame(t)
	f.hit = true
	s := NewSession(f)
	ctx := context.Background()

	for _, ev := range []*tcell.EventKey{char('s'), key(tcell.KeyRight), char('3')} {
		s.HandleKey(ctx, ev)
	}
	if len(f.shots) != 1 || f.shots[0] != 3 || f.aims[0] != world.East {
		t.Fatalf("shots = %v aims = %v, want one east shot of 3", f.shots, f.aims)
	}
	if !strings.Contains(s.Message(), "howl") {
		t.Errorf("message after hit = %q", s.Message())
	}

	for _, ev := range []*tcell.EventKey{char('s'), key(tcell.KeyRight), char('1')} {
		s.HandleKey(ctx, ev)
	}
	if s.Message() != "You are out of arrows." {
		t.Errorf("message with empty quiver = %q", s.Message())
	}

	// Escape while aiming cancels instead of quitting.
	s.HandleKey(ctx, char('s'))
	s.HandleKey(ctx, key(tcell.KeyEscape))
	if !s.Running() || len(f.shots) != 1 {
		t.Errorf("cancelled shot: running=%v shots=%v", s.Running(), f.shots)
	}
	// The next arrow key moves again.
	s.HandleKey(ctx, key(tcell.KeyRight))
	if len(f.moves) != 1 {
		t.Errorf("moves after cancel = %v", f.moves)
	}
}

func TestSessionPickAndQuit(t *testing.T) {
	f := newFakeGame(t)
	s := NewSession(f)
	ctx := context.Background()

	s.HandleKey(ctx, char('p'))
	if len(f.picks) != 1 || !f.picks[0].IsArrow() {
		t.Errorf("picks = %v, want [arrow]", f.picks)
	}
	s.HandleKey(ctx, char('q'))
	if s.Running() {
		t.Error("session still running after q")
	}
}

func TestStatusLines(t *testing.T) {
	f := newFakeGame(t)
	lines := StatusLines(f, func(t world.Treasure) string { return strings.ToUpper(string(t)) })

	want := []string{
		"You are in a cave at (0,0)",
		"Exits: east",
		"Smell: weak",
		"Arrows: 1",
		"Treasure: 2 RUBY",
	}
	if len(lines) != len(want) {
		t.Fatalf("StatusLines() = %q, want %q", lines, want)
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, lines[i], want[i])
		}
	}
}

func TestSessionRunStopsOnCancel(t *testing.T) {
	screen, err := newScreen(tcell.NewSimulationScreen(""))
	if err != nil {
		t.Fatalf("newScreen() error: %v", err)
	}
	defer screen.Close()

	s := NewSession(newFakeGame(t))
	ctx, cancel := context.WithCancel(context.Background())
	returned := make(chan struct{})
	go func() {
		s.Run(ctx, screen, NewRenderer(screen, nil))
		close(returned)
	}()

	time.Sleep(20 * time.Millisecond)
	cancel()
	select {
	case <-returned:
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after the context was cancelled")
	}
	if !s.Running() {
		t.Error("cancellation should not count as the player quitting")
	}
}

func TestLegendEntries(t *testing.T) {
	registry, err := gamedata.LoadTreasureRegistry()
	if err != nil {
		t.Fatalf("LoadTreasureRegistry() error: %v", err)
	}

	entries := LegendEntries(registry)
	if len(entries) != 3 {
		t.Fatalf("LegendEntries() returned %d entries, want 3", len(entries))
	}
	want := map[string]rune{"Diamond": '*', "Ruby": 'r', "Sapphire": 's'}
	for _, e := range entries {
		if g, ok := want[e.Name]; !ok || g != e.Glyph {
			t.Errorf("entry %q glyph %q not expected", e.Name, e.Glyph)
		}
	}
	if LegendEntries(nil) != nil {
		t.Error("LegendEntries(nil) should be empty")
	}
}
