package layout

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/levelforge/internal/presets"
	"github.com/samdwyer/levelforge/internal/telemetry"
	"github.com/samdwyer/levelforge/internal/world"
)

// Version is the generator version stamped on every result.
const Version = "1.0.0"

type entry struct {
	recipe Recipe
	hooks  []Hook
}

// Director dispatches generation requests to archetype recipes.
// A Director holds no per-request state and is safe for concurrent use once
// registration is done.
type Director struct {
	registry *presets.Registry
	entries  map[Archetype]entry
}

// NewDirector creates a director with the eight built-in archetypes wired to
// their recipes and hooks. Parameter defaults come from registry.
func NewDirector(registry *presets.Registry) *Director {
	d := &Director{
		registry: registry,
		entries:  make(map[Archetype]entry, len(Archetypes)),
	}

	forest := FillRecipe(world.TypeGrass, world.TypeTree, world.LayerWalls)
	swamp := FillRecipe(world.TypeMud, world.TypeWater, world.LayerGround)

	d.Register(Dungeon, StructuredRecipe, NoopHook)
	d.Register(Castle, StructuredRecipe, CurtainWallHook)
	d.Register(Town, StructuredRecipe, PaveHook)
	d.Register(Ruins, StructuredRecipe, PaveHook, DegradeHook)
	d.Register(Cave, OrganicRecipe, NoopHook)
	d.Register(Mountain, OrganicRecipe, ScatterHook)
	d.Register(Forest, forest, ScatterHook)
	d.Register(Swamp, swamp, ScatterHook)
	return d
}

// Register sets the recipe and hooks for an archetype, replacing any
// previous registration. Hooks run in the order given.
func (d *Director) Register(a Archetype, recipe Recipe, hooks ...Hook) {
	d.entries[a] = entry{recipe: recipe, hooks: hooks}
}

// Hooks returns the names of the hooks registered for an archetype.
func (d *Director) Hooks(a Archetype) []string {
	e, ok := d.entries[a]
	if !ok {
		return nil
	}
	names := make([]string, len(e.hooks))
	for i, h := range e.hooks {
		names[i] = h.Name()
	}
	return names
}

// Resolve validates cfg and fills in preset defaults. It fails before any
// grid is allocated.
func (d *Director) Resolve(cfg Config) (Config, error) {
	if err := validateDimensions(cfg.Dimensions); err != nil {
		return cfg, err
	}
	if _, ok := d.entries[cfg.LevelType]; !ok {
		return cfg, fmt.Errorf("%w: %q", ErrUnknownArchetype, cfg.LevelType)
	}

	def := d.registry.GetByID(string(cfg.LevelType))
	if def != nil {
		cfg.Params = cfg.Params.WithDefaults(def.Params)
		if cfg.TileSize == 0 {
			cfg.TileSize = def.TileSize
		}
	}
	cfg.Params = cfg.Params.WithDefaults(builtinParams)
	if cfg.TileSize == 0 {
		cfg.TileSize = defaultTileSize
	}
	if cfg.TileSize < 0 {
		return cfg, fmt.Errorf("%w: tileSize %d is negative", ErrInvalidParams, cfg.TileSize)
	}

	if err := validateParams(cfg.Params); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Generate builds a level for cfg. When rng is nil one is seeded from
// cfg.Seed, or from the clock when the seed is zero; the seed used is
// reported in the result. An injected rng is used as is and cfg.Seed is
// reported unchanged, so a zero seed stays zero.
func (d *Director) Generate(ctx context.Context, cfg Config, rng world.Rand) (*Result, error) {
	tracer := telemetry.Tracer("layout")
	ctx, span := tracer.Start(ctx, "layout.generate")
	defer span.End()

	startTime := time.Now()

	resolved, err := d.Resolve(cfg)
	if err != nil {
		telemetry.RecordError(span, err)
		return nil, err
	}
	if rng == nil {
		if resolved.Seed == 0 {
			resolved.Seed = time.Now().UnixNano()
		}
		rng = rand.New(rand.NewSource(resolved.Seed))
	}

	e := d.entries[resolved.LevelType]
	grid := world.NewTileGrid(resolved.Dimensions.Width, resolved.Dimensions.Height, resolved.TileSize)

	plan := e.recipe(ctx, grid, resolved.Params, rng)

	d.runHooks(ctx, grid, e.hooks, rng, resolved)

	_, connSpan := tracer.Start(ctx, "layout.connectivity")
	report := world.EnsureConnectivity(grid, resolved.Params.Connectivity)
	connSpan.SetAttributes(
		attribute.String("layout.policy", string(resolved.Params.Connectivity)),
		attribute.Int("layout.walkable", report.Walkable),
		attribute.Int("layout.visited", report.Visited),
		attribute.Int("layout.regions", report.Regions),
		attribute.Int("layout.sealed", report.Sealed),
	)
	connSpan.End()

	result := &Result{
		ID:           uuid.NewString(),
		LevelType:    resolved.LevelType,
		Seed:         resolved.Seed,
		GeneratedAt:  time.Now().UTC(),
		Version:      Version,
		Config:       resolved,
		Grid:         grid,
		Rooms:        plan.Rooms,
		Corridors:    plan.Corridors,
		Connectivity: report,
		WallDensity:  world.WallDensity(grid),
		Stats:        grid.Stats(),
	}
	if !report.Connected {
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("%d of %d walkable tiles unreachable from the first walkable tile",
				report.Unreachable(), report.Walkable))
	}
	if d.isStructured(resolved.LevelType) && len(plan.Rooms) == 0 {
		result.Warnings = append(result.Warnings, "no rooms fit the configured room sizes")
	}

	span.SetAttributes(
		attribute.String("layout.id", result.ID),
		attribute.String("layout.level_type", string(resolved.LevelType)),
		attribute.Int("layout.width", grid.Width),
		attribute.Int("layout.height", grid.Height),
		attribute.Int64("layout.seed", resolved.Seed),
		attribute.Int("layout.room_count", len(plan.Rooms)),
		attribute.Bool("layout.connected", report.Connected),
		attribute.Int64("layout.generation_ms", time.Since(startTime).Milliseconds()),
	)
	return result, nil
}

func (d *Director) runHooks(ctx context.Context, g *world.TileGrid, hooks []Hook, rng world.Rand, cfg Config) {
	if len(hooks) == 0 {
		return
	}
	_, span := telemetry.Tracer("layout").Start(ctx, "layout.hooks")
	defer span.End()

	env := HookEnv{Params: cfg.Params}
	if def := d.registry.GetByID(string(cfg.LevelType)); def != nil {
		env.Decorations = presets.NewDecorationTable(def.Decorations)
	}

	names := make([]string, 0, len(hooks))
	for _, h := range hooks {
		h.Apply(g, rng, env)
		names = append(names, h.Name())
	}
	span.SetAttributes(attribute.StringSlice("layout.hooks", names))
}

// isStructured reports whether the archetype's preset uses the room recipe.
func (d *Director) isStructured(a Archetype) bool {
	def := d.registry.GetByID(string(a))
	return def != nil && def.Recipe == presets.RecipeStructured
}
