package game

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/samdwyer/otyugh/internal/combat"
	"github.com/samdwyer/otyugh/internal/entity"
	"github.com/samdwyer/otyugh/internal/rng"
	"github.com/samdwyer/otyugh/internal/telemetry"
	"github.com/samdwyer/otyugh/internal/world"
)

// Engine holds the entire game state. It is the sole mutator of the
// dungeon and is not safe for concurrent use.
type Engine struct {
	dungeon  *world.Dungeon
	player   *entity.Player
	monsters map[int]*entity.Otyugh // keyed by cell index
	combat   *combat.Resolver
	seed     int64
	seeded   bool
	rules    Rules
	log      logrus.FieldLogger
	tracer   trace.Tracer
}

// New generates a dungeon from cfg and places the player at its start.
// When src is nil the engine seeds its own source from cfg.Seed, or from
// the clock if the seed is 0. The same source drives generation and
// encounters.
func New(ctx context.Context, cfg Config, src rng.Source) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if src == nil {
		if cfg.Seed != 0 {
			src = rng.New(cfg.Seed)
		} else {
			src = rng.NewUnseeded()
		}
	}

	d, err := world.Generate(ctx, cfg.worldConfig(), src)
	if err != nil {
		return nil, err
	}
	return NewFromDungeon(d, src, cfg.Rules)
}

// NewFromDungeon starts a game in an existing dungeon with one Otyugh in
// every lair.
func NewFromDungeon(d *world.Dungeon, src rng.Source, rules Rules) (*Engine, error) {
	if d == nil {
		return nil, fmt.Errorf("%w: nil dungeon", ErrConfiguration)
	}
	if src == nil {
		return nil, fmt.Errorf("%w: nil random source", ErrConfiguration)
	}
	if err := rules.Validate(); err != nil {
		return nil, err
	}

	player, err := entity.NewPlayer(d.Start())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfiguration, err)
	}
	d.Visit(d.Start())

	monsters := make(map[int]*entity.Otyugh)
	for _, c := range d.Lairs() {
		monsters[c.Index()] = entity.NewOtyugh(c)
	}

	e := &Engine{
		dungeon:  d,
		player:   player,
		monsters: monsters,
		combat:   combat.NewResolver(src),
		rules:    rules,
		log:      logrus.StandardLogger(),
		tracer:   telemetry.Tracer("game"),
	}
	if r, ok := src.(interface{ Seed() int64 }); ok {
		e.seed, e.seeded = r.Seed(), true
	}
	return e, nil
}

// Seed returns the seed that replays this game through Config.Seed. It
// reports false when the source does not expose one.
func (e *Engine) Seed() (int64, bool) {
	return e.seed, e.seeded
}

// SetLogger replaces the logger used for action events.
func (e *Engine) SetLogger(l logrus.FieldLogger) {
	e.log = l
}

// Move walks the player one cell in direction d. Entering the cave of a
// live Otyugh triggers an encounter that may end the game.
func (e *Engine) Move(ctx context.Context, d world.Direction) error {
	_, span := e.tracer.Start(ctx, "game.move",
		trace.WithAttributes(attribute.String("direction", d.String())))
	defer span.End()

	if e.IsGameOver() {
		return fail(span, ErrGameOver)
	}
	from := e.player.Location()
	to, ok := e.dungeon.Neighbor(from, d)
	if !ok {
		return fail(span, fmt.Errorf("%w: no passage %s from %v", ErrInvalidMove, d, from.Point))
	}

	e.player.MoveTo(to)
	e.dungeon.Visit(to)
	fields := logrus.Fields{"from": from.Point, "to": to.Point, "direction": d}

	if m, ok := e.monsters[to.Index()]; ok {
		res := e.combat.Encounter(m)
		if res.Eaten {
			e.player.Die()
		}
		span.SetAttributes(
			attribute.Int("monster.hits", m.Hits()),
			attribute.Bool("player.eaten", res.Eaten),
		)
		e.log.WithFields(fields).WithField("hits", m.Hits()).Debug(res.Message)
	} else {
		e.log.WithFields(fields).Debug("player moved")
	}

	span.SetAttributes(attribute.String("game.outcome", e.Outcome().String()))
	e.logEnd()
	return nil
}

// PickItem takes one unit of item from the player's cell.
func (e *Engine) PickItem(ctx context.Context, item world.Item) error {
	_, span := e.tracer.Start(ctx, "game.pick",
		trace.WithAttributes(attribute.String("item", item.String())))
	defer span.End()

	if e.IsGameOver() {
		return fail(span, ErrGameOver)
	}
	here := e.player.Location()
	if !e.dungeon.TakeItem(here, item) {
		return fail(span, fmt.Errorf("%w: no %s at %v", ErrItemNotPresent, item, here.Point))
	}

	if item.IsArrow() {
		e.player.AddArrow()
	} else {
		e.player.CollectTreasure(item.Treasure)
	}
	e.log.WithFields(logrus.Fields{"item": item, "cell": here.Point}).Debug("item picked")
	return nil
}

// Shoot fires an arrow leaving the player's cell in direction d, to land
// distance caves away. It reports whether a live Otyugh was hit. An arrow
// is spent on every accepted shot, hit or miss.
func (e *Engine) Shoot(ctx context.Context, d world.Direction, distance int) (bool, error) {
	_, span := e.tracer.Start(ctx, "game.shoot", trace.WithAttributes(
		attribute.String("direction", d.String()),
		attribute.Int("distance", distance),
	))
	defer span.End()

	if e.IsGameOver() {
		return false, fail(span, ErrGameOver)
	}
	if e.player.Arrows() == 0 {
		return false, fail(span, ErrArrowsDepleted)
	}
	if distance < 1 {
		return false, fail(span, fmt.Errorf("%w: distance must be positive, got %d", ErrInvalidArgument, distance))
	}
	from := e.player.Location()
	if !from.HasExit(d) {
		return false, fail(span, fmt.Errorf("%w: no passage %s from %v", ErrInvalidArgument, d, from.Point))
	}

	e.player.SpendArrow()
	fields := logrus.Fields{"direction": d, "distance": distance, "arrows": e.player.Arrows()}
	landed := e.flight(from, d, distance)
	if landed == nil {
		e.log.WithFields(fields).Debug("arrow dropped short")
		span.SetAttributes(attribute.Bool("arrow.hit", false))
		return false, nil
	}

	var res combat.Result
	if m, ok := e.monsters[landed.Index()]; ok {
		res = e.combat.Strike(m)
	} else {
		res = e.combat.Strike(nil)
	}
	fields["landed"] = landed.Point
	e.log.WithFields(fields).WithField("hit", res.Hit).Debug(res.Message)
	span.SetAttributes(
		attribute.Bool("arrow.hit", res.Hit),
		attribute.Bool("monster.killed", res.Killed),
	)
	return res.Hit, nil
}

// fail records err on span and returns it.
func fail(span trace.Span, err error) error {
	span.RecordError(err)
	if !errors.Is(err, ErrGameOver) {
		span.SetStatus(codes.Error, err.Error())
	}
	return err
}

func (e *Engine) logEnd() {
	switch e.Outcome() {
	case Won:
		e.log.WithFields(logrus.Fields{
			"treasure": e.player.TreasureCount(),
			"arrows":   e.player.Arrows(),
		}).Info("player reached the end cave")
	case Lost:
		e.log.WithField("cell", e.player.Location().Point).Info("player was eaten")
	}
}

// Location returns the player's cell.
func (e *Engine) Location() *world.Cell {
	return e.player.Location()
}

// PlayerAlive reports whether the player is alive.
func (e *Engine) PlayerAlive() bool {
	return e.player.IsAlive()
}

// Treasure returns a copy of the player's collected treasure.
func (e *Engine) Treasure() map[world.Treasure]int {
	return e.player.Treasure()
}

// Arrows returns the arrows the player holds.
func (e *Engine) Arrows() int {
	return e.player.Arrows()
}

// Map returns the read-only dungeon view.
func (e *Engine) Map() world.Map {
	return e.dungeon
}

// Start returns the start cave.
func (e *Engine) Start() *world.Cell {
	return e.dungeon.Start()
}

// End returns the end cave.
func (e *Engine) End() *world.Cell {
	return e.dungeon.End()
}

// IsGameOver reports whether the player is dead, or alive in the end cave.
func (e *Engine) IsGameOver() bool {
	return e.Outcome() != Playing
}

// Outcome derives the state of play.
func (e *Engine) Outcome() Outcome {
	switch {
	case !e.player.IsAlive():
		return Lost
	case e.player.Location() == e.dungeon.End():
		return Won
	default:
		return Playing
	}
}

// Monster returns the Otyugh dwelling at p, dead or alive.
func (e *Engine) Monster(p world.Point) (entity.Monster, bool) {
	c, err := e.dungeon.Cell(p)
	if err != nil {
		return nil, false
	}
	m, ok := e.monsters[c.Index()]
	if !ok {
		return nil, false
	}
	return m, true
}

// Monsters returns every Otyugh in row-major order of their dwellings.
func (e *Engine) Monsters() []entity.Monster {
	lairs := e.dungeon.Lairs()
	out := make([]entity.Monster, 0, len(lairs))
	for _, c := range lairs {
		out = append(out, e.monsters[c.Index()])
	}
	return out
}
