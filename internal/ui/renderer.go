package ui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/levelforge/internal/presets"
	"github.com/samdwyer/levelforge/internal/world"
)

// AllLayers draws decorations over walls over ground.
var AllLayers = []world.Layer{world.LayerGround, world.LayerWalls, world.LayerDecorations}

// TopTile returns the tile that is drawn at (x, y) when the given layers are
// stacked in order: the last non-empty one wins.
func TopTile(g *world.TileGrid, x, y int, layers []world.Layer) world.Tile {
	top := world.EmptyTile(x, y)
	for _, layer := range layers {
		if tile := g.At(layer, x, y); !tile.IsEmpty() {
			top = tile
		}
	}
	return top
}

// Renderer handles drawing grids to the screen.
type Renderer struct {
	screen   *Screen
	registry *presets.Registry
}

// NewRenderer creates a new renderer for the given screen. Glyphs and colours
// come from the archetype palettes in registry.
func NewRenderer(screen *Screen, registry *presets.Registry) *Renderer {
	return &Renderer{screen: screen, registry: registry}
}

// Render draws the visible window of the grid, starting at grid cell
// (offsetX, offsetY), leaving the bottom row free for a status line.
func (r *Renderer) Render(g *world.TileGrid, archetype string, layers []world.Layer, offsetX, offsetY int) {
	r.screen.Clear()

	width, height := r.screen.Size()
	for sy := 0; sy < height-1; sy++ {
		for sx := 0; sx < width; sx++ {
			x, y := offsetX+sx, offsetY+sy
			if !g.In(x, y) {
				continue
			}
			tile := TopTile(g, x, y, layers)
			glyph := r.registry.Glyph(archetype, tile.Type)
			r.screen.SetContent(sx, sy, glyph.Rune(), r.tileStyle(glyph, tile))
		}
	}
}

// tileStyle returns the style for a tile drawn with glyph.
func (r *Renderer) tileStyle(glyph presets.Glyph, tile world.Tile) tcell.Style {
	style := tcell.StyleDefault.Foreground(glyph.TCellColor())
	if tile.Solid {
		style = style.Bold(true)
	}
	return style
}

// RenderMessage displays a message on row y.
func (r *Renderer) RenderMessage(msg string, y int) {
	style := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	for i, ch := range []rune(msg) {
		r.screen.SetContent(i, y, ch, style)
	}
}

// Show flushes the frame.
func (r *Renderer) Show() {
	r.screen.Show()
}
