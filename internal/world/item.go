package world

import (
	"fmt"
	"strings"
)

// Treasure identifies a treasure kind by its gamedata ID.
type Treasure string

// Default treasure kinds shipped in gamedata/treasures.json.
const (
	Diamond  Treasure = "diamond"
	Ruby     Treasure = "ruby"
	Sapphire Treasure = "sapphire"
)

// ItemKind tags the variant an Item holds.
type ItemKind int

const (
	// ItemTreasure is one unit of a treasure kind.
	ItemTreasure ItemKind = iota
	// ItemArrow is one crooked arrow.
	ItemArrow
)

// Item is a unit of content lying in a cell. Treasure is set only for
// ItemTreasure. Items are comparable and can key maps.
type Item struct {
	Kind     ItemKind
	Treasure Treasure
}

// TreasureItem returns a treasure unit of the given kind.
func TreasureItem(t Treasure) Item {
	return Item{Kind: ItemTreasure, Treasure: t}
}

// ArrowItem returns an arrow unit.
func ArrowItem() Item {
	return Item{Kind: ItemArrow}
}

// IsArrow reports whether the item is an arrow.
func (i Item) IsArrow() bool {
	return i.Kind == ItemArrow
}

// String returns "arrow" or the treasure ID.
func (i Item) String() string {
	if i.Kind == ItemArrow {
		return "arrow"
	}
	return string(i.Treasure)
}

// ParseItem reads "arrow" or a treasure ID. Treasure IDs are not checked
// against a registry here; picking an unknown kind simply finds nothing.
func ParseItem(s string) (Item, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	switch name {
	case "":
		return Item{}, fmt.Errorf("%w: empty item name", ErrInvalidArgument)
	case "arrow", "arrows":
		return ArrowItem(), nil
	}
	return TreasureItem(Treasure(name)), nil
}
