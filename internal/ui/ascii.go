package ui

import (
	"bufio"
	"io"

	"github.com/gookit/color"

	"github.com/samdwyer/levelforge/internal/presets"
	"github.com/samdwyer/levelforge/internal/world"
)

// Rows returns the grid as one string per row using the archetype palette.
func Rows(g *world.TileGrid, registry *presets.Registry, archetype string) []string {
	rows := make([]string, g.Height)
	line := make([]rune, g.Width)
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			tile := TopTile(g, x, y, AllLayers)
			line[x] = registry.Glyph(archetype, tile.Type).Rune()
		}
		rows[y] = string(line)
	}
	return rows
}

// WriteASCII prints the grid, one line per row. With colored set, every glyph
// is wrapped in its palette colour.
func WriteASCII(w io.Writer, g *world.TileGrid, registry *presets.Registry, archetype string, colored bool) error {
	bw := bufio.NewWriter(w)
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			tile := TopTile(g, x, y, AllLayers)
			glyph := registry.Glyph(archetype, tile.Type)
			text := string(glyph.Rune())
			if colored {
				text = color.HEX(glyph.Color).Sprint(text)
			}
			if _, err := bw.WriteString(text); err != nil {
				return err
			}
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}
