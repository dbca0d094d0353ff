package gamedata

import (
	"errors"
	"fmt"

	"github.com/samdwyer/otyugh/internal/rng"
)

// TreasureRegistry holds loaded treasure definitions and provides spawning utilities.
type TreasureRegistry struct {
	treasures   []TreasureDef
	totalWeight int
}

// NewTreasureRegistry creates a registry from loaded treasure definitions.
// Every definition needs a positive spawn weight and a unique ID.
func NewTreasureRegistry(treasures []TreasureDef) (*TreasureRegistry, error) {
	if len(treasures) == 0 {
		return nil, errors.New("no treasure definitions")
	}
	seen := make(map[string]bool, len(treasures))
	totalWeight := 0
	for _, t := range treasures {
		if t.ID == "" {
			return nil, errors.New("treasure definition without id")
		}
		if seen[t.ID] {
			return nil, fmt.Errorf("duplicate treasure id %q", t.ID)
		}
		if t.SpawnWeight <= 0 {
			return nil, fmt.Errorf("treasure %q has non-positive spawn weight %d", t.ID, t.SpawnWeight)
		}
		seen[t.ID] = true
		totalWeight += t.SpawnWeight
	}
	return &TreasureRegistry{
		treasures:   treasures,
		totalWeight: totalWeight,
	}, nil
}

// LoadTreasureRegistry loads and creates a registry from the embedded treasures.json.
func LoadTreasureRegistry() (*TreasureRegistry, error) {
	treasures, err := LoadTreasures()
	if err != nil {
		return nil, err
	}
	return NewTreasureRegistry(treasures)
}

// SpawnRandom selects a treasure definition using weighted probability.
// With equal weights every kind is equally likely.
func (r *TreasureRegistry) SpawnRandom(src rng.Source) *TreasureDef {
	roll := src.Intn(r.totalWeight)

	cumulative := 0
	for i := range r.treasures {
		cumulative += r.treasures[i].SpawnWeight
		if roll < cumulative {
			return &r.treasures[i]
		}
	}
	return &r.treasures[len(r.treasures)-1]
}

// GetByID returns the treasure definition with the given ID, or nil if not found.
func (r *TreasureRegistry) GetByID(id string) *TreasureDef {
	for i := range r.treasures {
		if r.treasures[i].ID == id {
			return &r.treasures[i]
		}
	}
	return nil
}

// All returns a copy of the treasure definitions in file order.
func (r *TreasureRegistry) All() []TreasureDef {
	out := make([]TreasureDef, len(r.treasures))
	copy(out, r.treasures)
	return out
}
