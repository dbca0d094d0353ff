package game

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/samdwyer/otyugh/internal/world"
)

// Environment variables read by ConfigFromEnv.
const (
	EnvRows              = "OTYUGH_ROWS"
	EnvCols              = "OTYUGH_COLS"
	EnvWrap              = "OTYUGH_WRAP"
	EnvInterconnectivity = "OTYUGH_INTERCONNECTIVITY"
	EnvTreasurePercent   = "OTYUGH_TREASURE_PERCENT"
	EnvArrowPercent      = "OTYUGH_ARROW_PERCENT"
	EnvDifficulty        = "OTYUGH_DIFFICULTY"
	EnvSeed              = "OTYUGH_SEED"
)

// Rules holds the tunable gameplay constants.
type Rules struct {
	// SmellRadius is the passage distance within which a live monster is
	// smelt at all.
	SmellRadius int
	// StrongSmellRadius is the distance within which a single monster
	// smells strong.
	StrongSmellRadius int
	// StrongSmellCount monsters within SmellRadius also smell strong.
	StrongSmellCount int
	// DeadEndsReflect turns an arrow around in a dead-end cave instead of
	// letting it drop there.
	DeadEndsReflect bool
}

// DefaultRules returns the standard gameplay constants.
func DefaultRules() Rules {
	return Rules{
		SmellRadius:       2,
		StrongSmellRadius: 1,
		StrongSmellCount:  2,
	}
}

// Validate checks the rule constants are consistent.
func (r Rules) Validate() error {
	switch {
	case r.StrongSmellRadius < 0 || r.SmellRadius < r.StrongSmellRadius:
		return fmt.Errorf("%w: smell radii %d/%d", ErrConfiguration, r.SmellRadius, r.StrongSmellRadius)
	case r.StrongSmellCount < 1:
		return fmt.Errorf("%w: strong smell count %d", ErrConfiguration, r.StrongSmellCount)
	}
	return nil
}

// Config holds game configuration options.
type Config struct {
	Rows, Cols        int
	Wrapping          bool
	Interconnectivity int
	TreasurePercent   int
	ArrowPercent      int
	// Difficulty is the number of Otyughs, including the one guarding the
	// end cave.
	Difficulty int
	// Seed for random number generation. A seed of 0 means a random seed
	// will be generated.
	Seed                int64
	MinStartEndDistance int
	Rules               Rules
}

// DefaultConfig returns a small, playable dungeon.
func DefaultConfig() Config {
	return Config{
		Rows:                6,
		Cols:                8,
		Interconnectivity:   2,
		TreasurePercent:     20,
		ArrowPercent:        20,
		Difficulty:          2,
		MinStartEndDistance: world.DefaultMinStartEndDistance,
		Rules:               DefaultRules(),
	}
}

// Validate rejects parameters no dungeon could satisfy. Feasibility checks
// that depend on the generated maze happen during generation.
func (c Config) Validate() error {
	switch {
	case c.Rows <= 0 || c.Cols <= 0:
		return fmt.Errorf("%w: dimensions must be positive, got %dx%d", ErrConfiguration, c.Rows, c.Cols)
	case c.Interconnectivity < 0:
		return fmt.Errorf("%w: negative interconnectivity %d", ErrConfiguration, c.Interconnectivity)
	case c.Difficulty < 1:
		return fmt.Errorf("%w: difficulty must be at least 1, got %d", ErrConfiguration, c.Difficulty)
	case c.TreasurePercent < 0 || c.TreasurePercent > 100:
		return fmt.Errorf("%w: treasure percent %d outside [0,100]", ErrConfiguration, c.TreasurePercent)
	case c.ArrowPercent < 0 || c.ArrowPercent > 100:
		return fmt.Errorf("%w: arrow percent %d outside [0,100]", ErrConfiguration, c.ArrowPercent)
	case c.MinStartEndDistance < 0:
		return fmt.Errorf("%w: negative start/end distance %d", ErrConfiguration, c.MinStartEndDistance)
	}
	return c.Rules.Validate()
}

func (c Config) worldConfig() world.Config {
	return world.Config{
		Rows:                c.Rows,
		Cols:                c.Cols,
		Wrapping:            c.Wrapping,
		Interconnectivity:   c.Interconnectivity,
		TreasurePercent:     c.TreasurePercent,
		ArrowPercent:        c.ArrowPercent,
		Monsters:            c.Difficulty,
		MinStartEndDistance: c.MinStartEndDistance,
	}
}

// ConfigFromEnv overlays the OTYUGH_* environment variables onto
// DefaultConfig. Unset variables keep their defaults.
func ConfigFromEnv() (Config, error) {
	cfg := DefaultConfig()

	ints := []struct {
		key string
		dst *int
	}{
		{EnvRows, &cfg.Rows},
		{EnvCols, &cfg.Cols},
		{EnvInterconnectivity, &cfg.Interconnectivity},
		{EnvTreasurePercent, &cfg.TreasurePercent},
		{EnvArrowPercent, &cfg.ArrowPercent},
		{EnvDifficulty, &cfg.Difficulty},
	}
	for _, v := range ints {
		raw, ok := lookup(v.key)
		if !ok {
			continue
		}
		n, err := strconv.Atoi(raw)
		if err != nil {
			return Config{}, fmt.Errorf("%w: %s=%q is not an integer", ErrConfiguration, v.key, raw)
		}
		*v.dst = n
	}

	if raw, ok := lookup(EnvWrap); ok {
		b, err := strconv.ParseBool(raw)
		if err != nil {
			return Config{}, fmt.Errorf("%w: %s=%q is not a boolean", ErrConfiguration, EnvWrap, raw)
		}
		cfg.Wrapping = b
	}
	if raw, ok := lookup(EnvSeed); ok {
		seed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return Config{}, fmt.Errorf("%w: %s=%q is not an integer", ErrConfiguration, EnvSeed, raw)
		}
		cfg.Seed = seed
	}

	return cfg, cfg.Validate()
}

func lookup(key string) (string, bool) {
	raw, ok := os.LookupEnv(key)
	raw = strings.TrimSpace(raw)
	return raw, ok && raw != ""
}
