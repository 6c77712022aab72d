package layout

import (
	"github.com/samdwyer/levelforge/internal/presets"
	"github.com/samdwyer/levelforge/internal/world"
)

// HookEnv carries the resolved parameters of the current request to hooks.
type HookEnv struct {
	Params      presets.Params
	Decorations *presets.DecorationTable
}

// Hook post-processes a grid after its archetype recipe ran. Hooks must leave
// the grid structurally valid.
type Hook interface {
	Name() string
	Apply(g *world.TileGrid, rng world.Rand, env HookEnv)
}

type hookFunc struct {
	name string
	fn   func(g *world.TileGrid, rng world.Rand, env HookEnv)
}

func (h hookFunc) Name() string { return h.name }

func (h hookFunc) Apply(g *world.TileGrid, rng world.Rand, env HookEnv) {
	h.fn(g, rng, env)
}

// NewHook wraps a function as a named Hook.
func NewHook(name string, fn func(g *world.TileGrid, rng world.Rand, env HookEnv)) Hook {
	return hookFunc{name: name, fn: fn}
}

// NoopHook does nothing. Archetypes without decoration passes list it so
// their pipeline still shows a hook stage.
var NoopHook = NewHook("noop", func(*world.TileGrid, world.Rand, HookEnv) {})

// CurtainWallHook walls off unplaced cells on the grid border.
var CurtainWallHook = NewHook("curtain-wall", func(g *world.TileGrid, _ world.Rand, _ HookEnv) {
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			if x != 0 && y != 0 && x != g.Width-1 && y != g.Height-1 {
				continue
			}
			if g.Ground[y][x].IsEmpty() {
				g.Walls[y][x] = world.WallTile(x, y)
			}
		}
	}
})

// PaveHook lays grass over unplaced ground that has no wall on it, then opens
// doorways through the wall ring so the grass and the buildings form one
// walkable region.
var PaveHook = NewHook("pave", func(g *world.TileGrid, rng world.Rand, _ HookEnv) {
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			if g.Ground[y][x].IsEmpty() && !g.Walls[y][x].Solid {
				g.Ground[y][x] = world.TileOf(world.TypeGrass, x, y)
			}
		}
	}
	world.JoinRegions(g, rng)
})

// DegradeHook knocks out walls with probability Params.Density, leaving
// walkable rubble where they stood.
var DegradeHook = NewHook("degrade", func(g *world.TileGrid, rng world.Rand, env HookEnv) {
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			if !g.Walls[y][x].Solid {
				continue
			}
			if rng.Float64() >= env.Params.Density {
				continue
			}
			g.Clear(world.LayerWalls, x, y)
			g.Ground[y][x] = world.TileOf(world.TypeRubble, x, y)
		}
	}
})

// ScatterHook places weighted decorations on passable cells with probability
// Params.DecorationChance.
var ScatterHook = NewHook("scatter", func(g *world.TileGrid, rng world.Rand, env HookEnv) {
	if env.Decorations == nil || env.Decorations.Len() == 0 || env.Params.DecorationChance <= 0 {
		return
	}
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			if !g.Passable(x, y) || !g.Decorations[y][x].IsEmpty() {
				continue
			}
			if rng.Float64() >= env.Params.DecorationChance {
				continue
			}
			if def := env.Decorations.Pick(rng); def != nil {
				g.Decorations[y][x] = def.Tile(x, y)
			}
		}
	}
})
