package ui

import (
	"context"
	"errors"
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/otyugh/internal/game"
	"github.com/samdwyer/otyugh/internal/world"
)

// Game is the engine surface a session drives: the read-only view plus
// the three actions.
type Game interface {
	View
	Move(ctx context.Context, d world.Direction) error
	PickItem(ctx context.Context, item world.Item) error
	Shoot(ctx context.Context, d world.Direction, distance int) (bool, error)
}

type inputMode int

const (
	modeExplore inputMode = iota
	modeAimDirection
	modeAimDistance
)

// Session turns key presses into game actions.
type Session struct {
	game    Game
	mode    inputMode
	aim     world.Direction
	reveal  bool
	message string
	running bool
}

// NewSession starts an input session for g.
func NewSession(g Game) *Session {
	return &Session{game: g, running: true, message: "Find the end cave. Beware the Otyugh."}
}

// Message returns the feedback line for the last key.
func (s *Session) Message() string {
	return s.message
}

// Running reports whether the player has not quit.
func (s *Session) Running() bool {
	return s.running
}

// Run renders and polls the screen until the player quits or ctx is
// cancelled.
func (s *Session) Run(ctx context.Context, screen *Screen, r *Renderer) {
	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			screen.Interrupt()
		case <-done:
		}
	}()

	for s.running && ctx.Err() == nil {
		r.Render(s.game, s.reveal, s.message)

		switch ev := screen.PollEvent().(type) {
		case *tcell.EventKey:
			s.HandleKey(ctx, ev)
		case *tcell.EventResize:
			screen.Sync()
		case nil:
			return
		}
	}
}

// HandleKey applies one key press.
func (s *Session) HandleKey(ctx context.Context, ev *tcell.EventKey) {
	if ev.Key() == tcell.KeyCtrlC {
		s.running = false
		return
	}

	switch s.mode {
	case modeAimDirection:
		if d, ok := keyDirection(ev); ok {
			s.aim = d
			s.mode = modeAimDistance
			s.message = fmt.Sprintf("Shoot %s how many caves? (1-9)", d)
			return
		}
		s.cancelAim(ev)
		return
	case modeAimDistance:
		if ev.Key() == tcell.KeyRune && ev.Rune() >= '1' && ev.Rune() <= '9' {
			s.mode = modeExplore
			s.shoot(ctx, int(ev.Rune()-'0'))
			return
		}
		s.cancelAim(ev)
		return
	}

	if d, ok := keyDirection(ev); ok {
		s.move(ctx, d)
		return
	}
	switch ev.Key() {
	case tcell.KeyEscape:
		s.running = false
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q', 'Q':
			s.running = false
		case 'p', 'P':
			s.pick(ctx)
		case 's', 'S':
			s.mode = modeAimDirection
			s.message = "Shoot which way?"
		case 'r', 'R':
			s.reveal = !s.reveal
		}
	}
}

func (s *Session) cancelAim(ev *tcell.EventKey) {
	if ev.Key() == tcell.KeyEscape {
		s.mode = modeExplore
		s.message = "Shot cancelled."
	}
}

func (s *Session) move(ctx context.Context, d world.Direction) {
	switch err := s.game.Move(ctx, d); {
	case errors.Is(err, game.ErrInvalidMove):
		s.message = fmt.Sprintf("There is no passage %s.", d)
	case err != nil:
		s.message = err.Error()
	default:
		s.message = fmt.Sprintf("You walk %s.", d)
	}
}

func (s *Session) pick(ctx context.Context) {
	items := s.game.Location().Items()
	if len(items) == 0 {
		s.message = "There is nothing here."
		return
	}
	if err := s.game.PickItem(ctx, items[0]); err != nil {
		s.message = err.Error()
		return
	}
	s.message = fmt.Sprintf("You pick up the %s.", items[0])
}

func (s *Session) shoot(ctx context.Context, distance int) {
	hit, err := s.game.Shoot(ctx, s.aim, distance)
	switch {
	case errors.Is(err, game.ErrArrowsDepleted):
		s.message = "You are out of arrows."
	case errors.Is(err, game.ErrInvalidArgument):
		s.message = fmt.Sprintf("You cannot shoot %s from here.", s.aim)
	case err != nil:
		s.message = err.Error()
	case hit:
		s.message = "You hear a great howl in the distance."
	default:
		s.message = "Your arrow clatters away into the dark."
	}
}

func keyDirection(ev *tcell.EventKey) (world.Direction, bool) {
	switch ev.Key() {
	case tcell.KeyUp:
		return world.North, true
	case tcell.KeyDown:
		return world.South, true
	case tcell.KeyLeft:
		return world.West, true
	case tcell.KeyRight:
		return world.East, true
	}
	return 0, false
}
