package presets

import (
	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/levelforge/internal/world"
)

// Recipe names the family of layout algorithms an archetype uses.
type Recipe string

const (
	RecipeStructured Recipe = "structured" // BSP rooms, corridors, derived walls
	RecipeOrganic    Recipe = "organic"    // cellular-automata caves
	RecipeFill       Recipe = "fill"       // probabilistic ground fill
)

// Params are the tunable generation parameters of an archetype.
// A zero value means "use the preset default".
type Params struct {
	MinRoomSize      int                      `json:"minRoomSize,omitempty"`
	MaxRoomSize      int                      `json:"maxRoomSize,omitempty"`
	SplitRounds      int                      `json:"splitRounds,omitempty"`
	CorridorWidth    int                      `json:"corridorWidth,omitempty"`
	FillProbability  float64                  `json:"fillProbability,omitempty"`
	Generations      int                      `json:"generations,omitempty"`
	Density          float64                  `json:"density,omitempty"`
	NoiseScale       float64                  `json:"noiseScale,omitempty"`
	DecorationChance float64                  `json:"decorationChance,omitempty"`
	Connectivity     world.ConnectivityPolicy `json:"connectivity,omitempty"`
}

// WithDefaults returns p with every zero field taken from defaults.
func (p Params) WithDefaults(defaults Params) Params {
	if p.MinRoomSize == 0 {
		p.MinRoomSize = defaults.MinRoomSize
	}
	if p.MaxRoomSize == 0 {
		p.MaxRoomSize = defaults.MaxRoomSize
	}
	if p.SplitRounds == 0 {
		p.SplitRounds = defaults.SplitRounds
	}
	if p.CorridorWidth == 0 {
		p.CorridorWidth = defaults.CorridorWidth
	}
	if p.FillProbability == 0 {
		p.FillProbability = defaults.FillProbability
	}
	if p.Generations == 0 {
		p.Generations = defaults.Generations
	}
	if p.Density == 0 {
		p.Density = defaults.Density
	}
	if p.NoiseScale == 0 {
		p.NoiseScale = defaults.NoiseScale
	}
	if p.DecorationChance == 0 {
		p.DecorationChance = defaults.DecorationChance
	}
	if p.Connectivity == "" {
		p.Connectivity = defaults.Connectivity
	}
	return p
}

// Glyph is how a tile type is drawn in text views.
type Glyph struct {
	Glyph string `json:"glyph"` // Single character for rendering (e.g., "#")
	Color string `json:"color"` // Hex color code (e.g., "#5C5C5C")
}

// Rune returns the glyph as a rune for rendering.
func (g Glyph) Rune() rune {
	for _, r := range g.Glyph {
		return r
	}
	return '?'
}

// TCellColor returns the color as a tcell.Color.
func (g Glyph) TCellColor() tcell.Color {
	color, err := ParseHexColor(g.Color)
	if err != nil {
		return tcell.ColorWhite // fallback
	}
	return color
}

// DecorationDef is a feature a decoration hook may scatter over a level.
type DecorationDef struct {
	Type   world.TileType `json:"type"`   // Tile type written to the decorations layer
	ID     uint32         `json:"id"`     // Tile ID for export collaborators
	Weight int            `json:"weight"` // Relative frequency (higher = more common)
	Solid  bool           `json:"solid"`  // Blocks movement when true
	Glyph  string         `json:"glyph"`
	Color  string         `json:"color"`
}

// Tile builds the decoration tile for (x, y).
func (d *DecorationDef) Tile(x, y int) world.Tile {
	return world.NewTile(d.ID, d.Type, !d.Solid, x, y)
}

// ArchetypeDef is one archetype preset.
type ArchetypeDef struct {
	ID          string           `json:"id"`
	Name        string           `json:"name"`
	Recipe      Recipe           `json:"recipe"`
	TileSize    int              `json:"tileSize"`
	Params      Params           `json:"params"`
	Palette     map[string]Glyph `json:"palette,omitempty"`
	Decorations []DecorationDef  `json:"decorations,omitempty"`
}

// ArchetypesFile represents the structure of archetypes.json.
type ArchetypesFile struct {
	Version    string           `json:"version"`
	Palette    map[string]Glyph `json:"palette"`
	Archetypes []ArchetypeDef   `json:"archetypes"`
}

// LoadArchetypes loads archetype presets from the embedded archetypes.json file.
func LoadArchetypes() (ArchetypesFile, error) {
	return Load[ArchetypesFile]("archetypes.json")
}
