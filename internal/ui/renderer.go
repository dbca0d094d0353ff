package ui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/otyugh/internal/game"
	"github.com/samdwyer/otyugh/internal/gamedata"
	"github.com/samdwyer/otyugh/internal/world"
)

// View is the read-only query surface the renderer draws from.
type View interface {
	Location() *world.Cell
	PlayerAlive() bool
	Treasure() map[world.Treasure]int
	Arrows() int
	Smell() game.Smell
	Outcome() game.Outcome
	Render(reveal bool) string
}

// Renderer handles drawing the game to the screen.
type Renderer struct {
	screen    *Screen
	treasures *gamedata.TreasureRegistry
}

// NewRenderer creates a renderer. treasures supplies display names and
// colors; unknown kinds fall back to their ID.
func NewRenderer(screen *Screen, treasures *gamedata.TreasureRegistry) *Renderer {
	return &Renderer{screen: screen, treasures: treasures}
}

// Render draws the map, the status panel and a message line.
func (r *Renderer) Render(v View, reveal bool, message string) {
	r.screen.Clear()

	lines := strings.Split(strings.TrimRight(v.Render(reveal || v.Outcome() != game.Playing), "\n"), "\n")
	width := 0
	for y, line := range lines {
		for x, ch := range line {
			r.screen.SetContent(x, y, ch, markerStyle(ch))
		}
		width = max(width, len(line))
	}

	x := width + 3
	y := 0
	for _, line := range StatusLines(v, r.treasureName) {
		r.screen.DrawText(x, y, line, tcell.StyleDefault.Foreground(tcell.ColorWhite))
		y++
	}
	r.drawItems(x, y+1, v.Location())
	r.drawLegend(x, y+3)

	msgY := max(len(lines), y+4) + 1
	r.screen.DrawText(0, msgY, message, tcell.StyleDefault.Foreground(tcell.ColorAqua))
	r.screen.DrawText(0, msgY+2, helpText, tcell.StyleDefault.Foreground(tcell.ColorDarkGray))

	r.screen.Show()
}

const helpText = "arrows move  p pick  s shoot  r reveal  q quit"

// StatusLines describes the player's situation in plain text.
func StatusLines(v View, name func(world.Treasure) string) []string {
	here := v.Location()
	kind := "tunnel"
	if here.IsCave() {
		kind = "cave"
	}
	exits := make([]string, 0, 4)
	for _, d := range here.Directions() {
		exits = append(exits, d.String())
	}

	lines := []string{
		fmt.Sprintf("You are in a %s at %v", kind, here.Point),
		"Exits: " + strings.Join(exits, ", "),
		"Smell: " + v.Smell().String(),
		fmt.Sprintf("Arrows: %d", v.Arrows()),
		"Treasure: " + formatTreasure(v.Treasure(), name),
	}
	switch v.Outcome() {
	case game.Won:
		lines = append(lines, "You escaped the dungeon!")
	case game.Lost:
		lines = append(lines, "Chomp, chomp. You were eaten by an Otyugh.")
	}
	return lines
}

func formatTreasure(held map[world.Treasure]int, name func(world.Treasure) string) string {
	if len(held) == 0 {
		return "none"
	}
	parts := make([]string, 0, len(held))
	for t, n := range held {
		parts = append(parts, fmt.Sprintf("%d %s", n, name(t)))
	}
	sort.Strings(parts)
	return strings.Join(parts, ", ")
}

func (r *Renderer) drawItems(x, y int, here *world.Cell) {
	x = r.screen.DrawText(x, y, "Here: ", tcell.StyleDefault)
	items := here.Items()
	if len(items) == 0 {
		r.screen.DrawText(x, y, "nothing", tcell.StyleDefault.Foreground(tcell.ColorGray))
		return
	}
	for i, it := range items {
		if i > 0 {
			x = r.screen.DrawText(x, y, ", ", tcell.StyleDefault)
		}
		style := tcell.StyleDefault.Foreground(tcell.ColorSilver)
		label := it.String()
		if !it.IsArrow() {
			label = r.treasureName(it.Treasure)
			if def := r.treasureDef(it.Treasure); def != nil {
				style = style.Foreground(def.TCellColor())
			}
		}
		x = r.screen.DrawText(x, y, label, style)
	}
}

// drawLegend lists every treasure kind with its glyph in its own color.
func (r *Renderer) drawLegend(x, y int) {
	for _, e := range LegendEntries(r.treasures) {
		cx := r.screen.DrawText(x, y, string(e.Glyph), tcell.StyleDefault.Foreground(e.Color))
		x = r.screen.DrawText(cx+1, y, e.Name, tcell.StyleDefault.Foreground(tcell.ColorGray)) + 2
	}
}

// LegendEntry is one treasure kind as shown in the legend.
type LegendEntry struct {
	Glyph rune
	Color tcell.Color
	Name  string
}

// LegendEntries returns the legend for every registered treasure kind in
// registry order. A nil registry has no legend.
func LegendEntries(treasures *gamedata.TreasureRegistry) []LegendEntry {
	if treasures == nil {
		return nil
	}
	defs := treasures.All()
	out := make([]LegendEntry, 0, len(defs))
	for _, def := range defs {
		out = append(out, LegendEntry{Glyph: def.GlyphRune(), Color: def.TCellColor(), Name: def.Name})
	}
	return out
}

func (r *Renderer) treasureDef(t world.Treasure) *gamedata.TreasureDef {
	if r.treasures == nil {
		return nil
	}
	return r.treasures.GetByID(string(t))
}

func (r *Renderer) treasureName(t world.Treasure) string {
	if def := r.treasureDef(t); def != nil {
		return def.Name
	}
	return string(t)
}

// markerStyle colors the bird's-eye map characters.
func markerStyle(ch rune) tcell.Style {
	switch ch {
	case '@':
		return tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	case 'M':
		return tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
	case 'S', 'E':
		return tcell.StyleDefault.Foreground(tcell.ColorGreen)
	case 'O', '#':
		return tcell.StyleDefault.Foreground(tcell.ColorWhite)
	default:
		return tcell.StyleDefault.Foreground(tcell.ColorDarkGray)
	}
}
