// Package layout turns a level configuration into a populated tile grid by
// running the generation recipe registered for its archetype.
package layout

import (
	"errors"
	"fmt"

	"github.com/samdwyer/levelforge/internal/presets"
	"github.com/samdwyer/levelforge/internal/world"
)

// Archetype is a level style.
type Archetype string

const (
	Dungeon  Archetype = "dungeon"
	Cave     Archetype = "cave"
	Forest   Archetype = "forest"
	Town     Archetype = "town"
	Castle   Archetype = "castle"
	Ruins    Archetype = "ruins"
	Mountain Archetype = "mountain"
	Swamp    Archetype = "swamp"
)

// Archetypes lists the built-in archetypes.
var Archetypes = []Archetype{Dungeon, Cave, Forest, Town, Castle, Ruins, Mountain, Swamp}

// MaxDimension bounds width and height.
const MaxDimension = 4096

var (
	ErrInvalidDimensions = errors.New("invalid dimensions")
	ErrUnknownArchetype  = errors.New("unknown archetype")
	ErrInvalidParams     = errors.New("invalid params")
)

// Dimensions is the grid size in tiles.
type Dimensions struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// Config describes one generation request. Archetype parameters sit at the
// top level next to levelType and dimensions; zero parameters fall back to
// the archetype preset.
type Config struct {
	LevelType  Archetype  `json:"levelType"`
	Dimensions Dimensions `json:"dimensions"`
	TileSize   int        `json:"tileSize,omitempty"`
	// Seed for random number generation. Used for reproducible layouts.
	// A seed of 0 means a random seed will be generated.
	Seed int64 `json:"seed,omitempty"`

	presets.Params
}

// ParseConfig decodes a JSON level configuration. Unknown fields are rejected.
func ParseConfig(data []byte) (Config, error) {
	return presets.Decode[Config]("level config", data)
}

// builtinParams backs up archetypes that have no preset entry.
var builtinParams = presets.Params{
	MinRoomSize:     4,
	MaxRoomSize:     10,
	SplitRounds:     world.DefaultSplitRounds,
	CorridorWidth:   1,
	FillProbability: world.DefaultFillProbability,
	Generations:     world.DefaultGenerations,
	Density:         0.3,
	NoiseScale:      0.1,
	Connectivity:    world.PolicyReport,
}

const defaultTileSize = 32

func validateDimensions(d Dimensions) error {
	if d.Width <= 0 || d.Height <= 0 {
		return fmt.Errorf("%w: %dx%d must be positive", ErrInvalidDimensions, d.Width, d.Height)
	}
	if d.Width > MaxDimension || d.Height > MaxDimension {
		return fmt.Errorf("%w: %dx%d exceeds %d", ErrInvalidDimensions, d.Width, d.Height, MaxDimension)
	}
	return nil
}

func validateParams(p presets.Params) error {
	switch {
	case p.MinRoomSize < 1:
		return fmt.Errorf("%w: minRoomSize %d must be at least 1", ErrInvalidParams, p.MinRoomSize)
	case p.MaxRoomSize < p.MinRoomSize:
		return fmt.Errorf("%w: maxRoomSize %d below minRoomSize %d", ErrInvalidParams, p.MaxRoomSize, p.MinRoomSize)
	case p.SplitRounds < 0:
		return fmt.Errorf("%w: splitRounds %d is negative", ErrInvalidParams, p.SplitRounds)
	case p.CorridorWidth < 1:
		return fmt.Errorf("%w: corridorWidth %d must be at least 1", ErrInvalidParams, p.CorridorWidth)
	case p.FillProbability < 0 || p.FillProbability > 1:
		return fmt.Errorf("%w: fillProbability %v outside [0,1]", ErrInvalidParams, p.FillProbability)
	case p.Generations < 0:
		return fmt.Errorf("%w: generations %d is negative", ErrInvalidParams, p.Generations)
	case p.Density < 0 || p.Density > 1:
		return fmt.Errorf("%w: density %v outside [0,1]", ErrInvalidParams, p.Density)
	case p.NoiseScale < 0:
		return fmt.Errorf("%w: noiseScale %v is negative", ErrInvalidParams, p.NoiseScale)
	case p.DecorationChance < 0 || p.DecorationChance > 1:
		return fmt.Errorf("%w: decorationChance %v outside [0,1]", ErrInvalidParams, p.DecorationChance)
	case !p.Connectivity.Valid():
		return fmt.Errorf("%w: connectivity policy %q", ErrInvalidParams, p.Connectivity)
	}
	return nil
}
