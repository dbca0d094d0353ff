package world

import (
	"context"
	"fmt"
	"sort"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/otyugh/internal/gamedata"
	"github.com/samdwyer/otyugh/internal/rng"
	"github.com/samdwyer/otyugh/internal/telemetry"
)

const (
	// DefaultMinStartEndDistance is the minimum passage distance between
	// the start and end caves.
	DefaultMinStartEndDistance = 5

	maxUnitsPerCell = 3
)

// Config holds the dungeon build parameters.
type Config struct {
	Rows, Cols        int
	Wrapping          bool
	Interconnectivity int
	TreasurePercent   int // chance each cave holds treasure
	ArrowPercent      int // chance each cell holds arrows
	Monsters          int // total otyughs including the one guarding the end
	// MinStartEndDistance defaults to DefaultMinStartEndDistance when zero.
	MinStartEndDistance int
	// Treasures supplies treasure kinds; nil loads the embedded defaults.
	Treasures *gamedata.TreasureRegistry
}

func (c Config) validate() error {
	switch {
	case c.Rows <= 0 || c.Cols <= 0:
		return fmt.Errorf("%w: dimensions must be positive, got %dx%d", ErrConfiguration, c.Rows, c.Cols)
	case c.TreasurePercent < 0 || c.TreasurePercent > 100:
		return fmt.Errorf("%w: treasure percent %d outside [0,100]", ErrConfiguration, c.TreasurePercent)
	case c.ArrowPercent < 0 || c.ArrowPercent > 100:
		return fmt.Errorf("%w: arrow percent %d outside [0,100]", ErrConfiguration, c.ArrowPercent)
	case c.Monsters < 1:
		return fmt.Errorf("%w: at least one monster must guard the end, got %d", ErrConfiguration, c.Monsters)
	case c.MinStartEndDistance < 0:
		return fmt.Errorf("%w: negative start/end distance %d", ErrConfiguration, c.MinStartEndDistance)
	}
	return nil
}

// Map is the read-only view of a dungeon handed to collaborators.
type Map interface {
	Rows() int
	Cols() int
	Wrapping() bool
	Cell(p Point) (*Cell, error)
	Cells() []*Cell
	Neighbor(c *Cell, d Direction) (*Cell, bool)
	Distance(a, b *Cell) int
	Start() *Cell
	End() *Cell
	CaveCount() int
	TunnelCount() int
}

// Dungeon is a maze with distinguished start and end caves, monster lairs
// and content. Its structure is fixed after construction; only content and
// visited marks change.
type Dungeon struct {
	*Maze
	start, end int
	lairs      []int
	caves      int
	tunnels    int
}

var _ Map = (*Dungeon)(nil)

func newDungeon(m *Maze) *Dungeon {
	d := &Dungeon{Maze: m}
	for _, c := range m.cells {
		if c.IsCave() {
			d.caves++
		} else {
			d.tunnels++
		}
	}
	return d
}

// Generate builds a maze and places the start, end, monsters, treasure and
// arrows. All randomness is drawn from src.
func Generate(ctx context.Context, cfg Config, src rng.Source) (*Dungeon, error) {
	tracer := telemetry.Tracer("world")
	_, span := tracer.Start(ctx, "dungeon.generate")
	defer span.End()

	startTime := time.Now()

	d, err := generate(cfg, src)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	span.SetAttributes(
		attribute.Int("dungeon.rows", cfg.Rows),
		attribute.Int("dungeon.cols", cfg.Cols),
		attribute.Bool("dungeon.wrapping", cfg.Wrapping),
		attribute.Int("dungeon.edges", d.EdgeCount()),
		attribute.Int("dungeon.caves", d.caves),
		attribute.Int("dungeon.tunnels", d.tunnels),
		attribute.Int("dungeon.monsters", len(d.lairs)),
		attribute.Int64("dungeon.generation_ms", time.Since(startTime).Milliseconds()),
	)
	return d, nil
}

func generate(cfg Config, src rng.Source) (*Dungeon, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	treasures := cfg.Treasures
	if treasures == nil {
		var err error
		if treasures, err = gamedata.LoadTreasureRegistry(); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrConfiguration, err)
		}
	}
	minDist := cfg.MinStartEndDistance
	if minDist == 0 {
		minDist = DefaultMinStartEndDistance
	}

	maze, err := BuildMaze(cfg.Rows, cfg.Cols, cfg.Wrapping, cfg.Interconnectivity, src)
	if err != nil {
		return nil, err
	}
	d := newDungeon(maze)

	// The start cave never holds a monster.
	if cfg.Monsters > d.caves-1 {
		return nil, fmt.Errorf("%w: %d monsters requested but only %d caves besides the start",
			ErrConfiguration, cfg.Monsters, max(d.caves-1, 0))
	}
	if err := d.placeEnds(minDist, src); err != nil {
		return nil, err
	}
	d.placeMonsters(cfg.Monsters, src)
	d.placeTreasure(cfg.TreasurePercent, treasures, src)
	d.placeArrows(cfg.ArrowPercent, src)
	return d, nil
}

// caveIndices returns the indices of all caves in row-major order.
func (d *Dungeon) caveIndices() []int {
	caves := make([]int, 0, d.caves)
	for _, c := range d.cells {
		if c.IsCave() {
			caves = append(caves, c.index)
		}
	}
	return caves
}

// placeEnds picks a random start cave that has at least one cave minDist
// or more passages away, then a random end among those far caves.
func (d *Dungeon) placeEnds(minDist int, src rng.Source) error {
	caves := d.caveIndices()
	order := append([]int(nil), caves...)
	shuffle(order, src)

	for _, s := range order {
		dist := d.Distances(d.cells[s], -1)
		var far []int
		for _, e := range caves {
			if e != s && dist[d.cells[e]] >= minDist {
				far = append(far, e)
			}
		}
		if len(far) > 0 {
			d.start = s
			d.end = far[src.Intn(len(far))]
			return nil
		}
	}
	return fmt.Errorf("%w: no two caves are at least %d passages apart", ErrConfiguration, minDist)
}

// placeMonsters always guards the end cave, then spreads the remaining
// monsters over caves other than the start and end.
func (d *Dungeon) placeMonsters(count int, src rng.Source) {
	d.addLair(d.end)

	var candidates []int
	for _, i := range d.caveIndices() {
		if i != d.start && i != d.end {
			candidates = append(candidates, i)
		}
	}
	for n := 1; n < count; n++ {
		j := src.Intn(len(candidates))
		d.addLair(candidates[j])
		candidates = append(candidates[:j], candidates[j+1:]...)
	}
	sort.Ints(d.lairs)
}

func (d *Dungeon) addLair(i int) {
	d.cells[i].lair = true
	d.lairs = append(d.lairs, i)
}

func (d *Dungeon) placeTreasure(percent int, treasures *gamedata.TreasureRegistry, src rng.Source) {
	for _, c := range d.cells {
		if !c.IsCave() || src.Intn(100) >= percent {
			continue
		}
		units := 1 + src.Intn(maxUnitsPerCell)
		for u := 0; u < units; u++ {
			kind := treasures.SpawnRandom(src)
			c.items = append(c.items, TreasureItem(Treasure(kind.ID)))
		}
	}
}

func (d *Dungeon) placeArrows(percent int, src rng.Source) {
	for _, c := range d.cells {
		if src.Intn(100) >= percent {
			continue
		}
		units := 1 + src.Intn(maxUnitsPerCell)
		for u := 0; u < units; u++ {
			c.items = append(c.items, ArrowItem())
		}
	}
}

// shuffle permutes s in place (Fisher-Yates).
func shuffle(s []int, src rng.Source) {
	for i := len(s) - 1; i > 0; i-- {
		j := src.Intn(i + 1)
		s[i], s[j] = s[j], s[i]
	}
}

// Start returns the cave the player begins in.
func (d *Dungeon) Start() *Cell { return d.cells[d.start] }

// End returns the cave the player must reach.
func (d *Dungeon) End() *Cell { return d.cells[d.end] }

// CaveCount returns the number of caves.
func (d *Dungeon) CaveCount() int { return d.caves }

// TunnelCount returns the number of tunnels.
func (d *Dungeon) TunnelCount() int { return d.tunnels }

// Lairs returns the caves a monster dwells in, in row-major order.
func (d *Dungeon) Lairs() []*Cell {
	lairs := make([]*Cell, len(d.lairs))
	for i, idx := range d.lairs {
		lairs[i] = d.cells[idx]
	}
	return lairs
}

// Visit marks c as entered by the player.
func (d *Dungeon) Visit(c *Cell) {
	c.visited = true
}

// TakeItem removes one unit of item from c and reports whether one was there.
func (d *Dungeon) TakeItem(c *Cell, item Item) bool {
	return c.removeItem(item)
}
