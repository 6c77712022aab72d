package layout

import (
	"context"

	"github.com/aquilax/go-perlin"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/levelforge/internal/presets"
	"github.com/samdwyer/levelforge/internal/telemetry"
	"github.com/samdwyer/levelforge/internal/world"
)

// Plan is what a recipe placed besides the tiles themselves.
type Plan struct {
	Rooms     []world.Room
	Corridors []world.Corridor
}

// Recipe fills an empty grid for one archetype.
type Recipe func(ctx context.Context, g *world.TileGrid, p presets.Params, rng world.Rand) Plan

// StructuredRecipe places BSP rooms, joins them with corridors and derives
// walls around the walkable area.
func StructuredRecipe(ctx context.Context, g *world.TileGrid, p presets.Params, rng world.Rand) Plan {
	tracer := telemetry.Tracer("layout")

	_, span := tracer.Start(ctx, "layout.partition")
	parts := world.SplitPartitions(g.Width, g.Height, p.MinRoomSize, p.MaxRoomSize, p.SplitRounds, rng)
	rooms := world.PlaceRooms(g, parts, p.MinRoomSize, p.MaxRoomSize)
	span.SetAttributes(
		attribute.Int("layout.partitions", len(parts)),
		attribute.Int("layout.rooms", len(rooms)),
	)
	span.End()

	_, span = tracer.Start(ctx, "layout.corridors")
	corridors := world.ConnectRooms(rooms, p.CorridorWidth)
	for _, c := range corridors {
		world.CarveCorridor(g, c)
	}
	span.SetAttributes(attribute.Int("layout.corridors", len(corridors)))
	span.End()

	_, span = tracer.Start(ctx, "layout.walls")
	walls := world.DeriveWalls(g)
	span.SetAttributes(attribute.Int("layout.walls", walls))
	span.End()

	return Plan{Rooms: rooms, Corridors: corridors}
}

// OrganicRecipe carves a cellular-automata cave over the whole grid.
func OrganicRecipe(ctx context.Context, g *world.TileGrid, p presets.Params, rng world.Rand) Plan {
	_, span := telemetry.Tracer("layout").Start(ctx, "layout.cave")
	defer span.End()

	density := world.CarveCave(g, world.CaveParams{
		FillProbability: p.FillProbability,
		Generations:     p.Generations,
	}, rng)

	span.SetAttributes(
		attribute.Float64("layout.fill_probability", p.FillProbability),
		attribute.Int("layout.generations", p.Generations),
		attribute.Float64("layout.wall_density", density),
	)
	return Plan{}
}

// FillRecipe returns a recipe that covers the grid with ground tiles and
// scatters obstacles with probability Params.Density, clumped by Perlin
// noise sampled at Params.NoiseScale. Obstacles go into obstacleLayer.
func FillRecipe(ground, obstacle world.TileType, obstacleLayer world.Layer) Recipe {
	return func(ctx context.Context, g *world.TileGrid, p presets.Params, rng world.Rand) Plan {
		_, span := telemetry.Tracer("layout").Start(ctx, "layout.fill")
		defer span.End()

		noise := perlin.NewPerlin(2, 2, 3, rng.Int63())
		obstacles := 0
		for y := 0; y < g.Height; y++ {
			for x := 0; x < g.Width; x++ {
				g.Ground[y][x] = world.TileOf(ground, x, y)

				n := noise.Noise2D(float64(x)*p.NoiseScale, float64(y)*p.NoiseScale)
				if rng.Float64() >= p.Density*(1+n) {
					continue
				}
				g.Set(obstacleLayer, x, y, world.TileOf(obstacle, x, y))
				obstacles++
			}
		}

		span.SetAttributes(
			attribute.String("layout.ground", string(ground)),
			attribute.String("layout.obstacle", string(obstacle)),
			attribute.Int("layout.obstacles", obstacles),
		)
		return Plan{}
	}
}
