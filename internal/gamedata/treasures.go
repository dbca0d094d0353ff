package gamedata

import "github.com/gdamore/tcell/v2"

// TreasureDef defines a treasure kind loaded from JSON.
type TreasureDef struct {
	ID          string `json:"id"`          // Unique identifier (e.g., "ruby")
	Name        string `json:"name"`        // Display name (e.g., "Ruby")
	Glyph       string `json:"glyph"`       // Single character for rendering (e.g., "r")
	Color       string `json:"color"`       // Hex color code (e.g., "#E0115F")
	SpawnWeight int    `json:"spawnWeight"` // Relative spawn frequency
}

// GlyphRune returns the glyph as a rune for rendering.
func (t *TreasureDef) GlyphRune() rune {
	if len(t.Glyph) == 0 {
		return '?'
	}
	return rune(t.Glyph[0])
}

// TCellColor returns the color as a tcell.Color.
func (t *TreasureDef) TCellColor() tcell.Color {
	color, err := ParseHexColor(t.Color)
	if err != nil {
		return tcell.ColorYellow
	}
	return color
}

// TreasuresFile represents the structure of treasures.json.
type TreasuresFile struct {
	Treasures []TreasureDef `json:"treasures"`
}

// LoadTreasures loads treasure definitions from the embedded treasures.json file.
func LoadTreasures() ([]TreasureDef, error) {
	file, err := Load[TreasuresFile]("treasures.json")
	if err != nil {
		return nil, err
	}
	return file.Treasures, nil
}
