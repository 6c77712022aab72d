package layout

import (
	"context"
	"encoding/json"
	"errors"
	"math/rand"
	"testing"

	"github.com/samdwyer/levelforge/internal/presets"
	"github.com/samdwyer/levelforge/internal/world"
)

func newTestDirector(t *testing.T) *Director {
	t.Helper()
	registry, err := presets.LoadRegistry()
	if err != nil {
		t.Fatalf("Failed to load presets: %v", err)
	}
	return NewDirector(registry)
}

func TestGenerateDungeonScenario(t *testing.T) {
	d := newTestDirector(t)
	cfg := Config{LevelType: Dungeon, Dimensions: Dimensions{Width: 40, Height: 30}}

	for _, seed := range []int64{1, 2, 3, 12345} {
		result, err := d.Generate(context.Background(), cfg, rand.New(rand.NewSource(seed)))
		if err != nil {
			t.Fatalf("seed %d: Generate failed: %v", seed, err)
		}
		if len(result.Rooms) < 1 {
			t.Fatalf("seed %d: expected at least one room", seed)
		}

		g := result.Grid
		for _, room := range result.Rooms {
			for y := room.Y; y < room.Y+room.Height; y++ {
				for x := room.X; x < room.X+room.Width; x++ {
					tile := g.Ground[y][x]
					if !tile.Walkable || tile.Solid {
						t.Fatalf("seed %d: room tile (%d,%d) not walkable: %+v", seed, x, y, tile)
					}
				}
			}
		}

		if len(result.Corridors) != len(result.Rooms)-1 {
			t.Errorf("seed %d: %d corridors for %d rooms", seed, len(result.Corridors), len(result.Rooms))
		}
		for _, c := range result.Corridors {
			pts := world.Rasterize(c)
			for i := 1; i < len(pts); i++ {
				dx := pts[i].X - pts[i-1].X
				dy := pts[i].Y - pts[i-1].Y
				if dx*dx+dy*dy != 1 {
					t.Fatalf("seed %d: corridor step %+v -> %+v not monotonic unit step", seed, pts[i-1], pts[i])
				}
				if !g.Passable(pts[i].X, pts[i].Y) {
					t.Fatalf("seed %d: corridor cell %+v not passable", seed, pts[i])
				}
			}
		}

		if !result.RoomsReachable() {
			t.Errorf("seed %d: not every room center is reachable", seed)
		}
		if !result.Connectivity.Connected {
			t.Errorf("seed %d: dungeon not fully connected: %+v", seed, result.Connectivity)
		}
		if result.Connectivity.Visited > result.Connectivity.Walkable {
			t.Errorf("seed %d: visited exceeds walkable", seed)
		}

		// walls never sit on walkable ground
		for y := 0; y < g.Height; y++ {
			for x := 0; x < g.Width; x++ {
				if g.Walls[y][x].Solid && g.Ground[y][x].IsFloor() {
					t.Fatalf("seed %d: wall on floor at (%d,%d)", seed, x, y)
				}
			}
		}
	}
}

func TestGenerateAllArchetypes(t *testing.T) {
	d := newTestDirector(t)

	for _, a := range Archetypes {
		cfg := Config{LevelType: a, Dimensions: Dimensions{Width: 64, Height: 48}, Seed: 99}
		result, err := d.Generate(context.Background(), cfg, nil)
		if err != nil {
			t.Errorf("%s: Generate failed: %v", a, err)
			continue
		}

		g := result.Grid
		if g.Width != 64 || g.Height != 48 {
			t.Errorf("%s: grid is %dx%d", a, g.Width, g.Height)
		}
		if result.Seed != 99 {
			t.Errorf("%s: expected seed 99 reported, got %d", a, result.Seed)
		}
		if result.ID == "" || result.Version != Version || result.GeneratedAt.IsZero() {
			t.Errorf("%s: incomplete metadata: %+v", a, result)
		}
		if result.Connectivity.Walkable == 0 {
			t.Errorf("%s: no walkable tiles", a)
		}

		for _, layer := range []world.Layer{world.LayerGround, world.LayerWalls, world.LayerDecorations} {
			tiles := g.Layer(layer)
			if len(tiles) != g.Height {
				t.Fatalf("%s: %s layer has %d rows", a, layer, len(tiles))
			}
			for y := range tiles {
				if len(tiles[y]) != g.Width {
					t.Fatalf("%s: %s row %d has %d cells", a, layer, y, len(tiles[y]))
				}
				for x, tile := range tiles[y] {
					if tile.Solid == tile.Walkable {
						t.Fatalf("%s: %s (%d,%d) breaks solid/walkable invariant", a, layer, x, y)
					}
				}
			}
		}
	}
}

func TestGenerateSealedArchetypes(t *testing.T) {
	d := newTestDirector(t)

	for _, a := range []Archetype{Cave, Mountain, Forest, Swamp} {
		cfg := Config{LevelType: a, Dimensions: Dimensions{Width: 50, Height: 50}, Seed: 42}
		result, err := d.Generate(context.Background(), cfg, nil)
		if err != nil {
			t.Fatalf("%s: Generate failed: %v", a, err)
		}
		if !result.Connectivity.Connected {
			t.Errorf("%s: seal policy should leave one region, report %+v", a, result.Connectivity)
		}
		if len(result.Warnings) != 0 {
			t.Errorf("%s: unexpected warnings %v", a, result.Warnings)
		}
	}
}

func TestGenerateSettlementsConnected(t *testing.T) {
	d := newTestDirector(t)

	// Paved ground outside the wall ring must be joined to the rooms
	for _, a := range []Archetype{Town, Ruins} {
		for seed := int64(1); seed <= 20; seed++ {
			cfg := Config{LevelType: a, Dimensions: Dimensions{Width: 40, Height: 30}, Seed: seed}
			result, err := d.Generate(context.Background(), cfg, nil)
			if err != nil {
				t.Fatalf("%s seed %d: Generate failed: %v", a, seed, err)
			}
			if !result.Connectivity.Connected {
				t.Errorf("%s seed %d: %d of %d walkable tiles unreachable", a, seed,
					result.Connectivity.Unreachable(), result.Connectivity.Walkable)
			}
			if !result.RoomsReachable() {
				t.Errorf("%s seed %d: room centers unreachable", a, seed)
			}
			if len(result.Warnings) != 0 {
				t.Errorf("%s seed %d: unexpected warnings %v", a, seed, result.Warnings)
			}
		}
	}
}

func TestGenerateInjectedRandWithoutSeed(t *testing.T) {
	d := newTestDirector(t)
	cfg := Config{LevelType: Dungeon, Dimensions: Dimensions{Width: 40, Height: 30}}

	result, err := d.Generate(context.Background(), cfg, rand.New(rand.NewSource(8)))
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if result.Seed != 0 {
		t.Errorf("Expected no seed to be reported for an injected source, got %d", result.Seed)
	}

	data, err := json.Marshal(result)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if _, ok := fields["seed"]; ok {
		t.Errorf("Seed should be omitted, got %s", fields["seed"])
	}
}

func TestGenerateCaveDensity(t *testing.T) {
	d := newTestDirector(t)
	cfg := Config{LevelType: Cave, Dimensions: Dimensions{Width: 50, Height: 50}}
	cfg.Connectivity = world.PolicyReport

	result, err := d.Generate(context.Background(), cfg, rand.New(rand.NewSource(42)))
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if result.WallDensity < 0.25 || result.WallDensity > 0.60 {
		t.Errorf("Wall density %.3f outside expected band", result.WallDensity)
	}
}

func TestGenerateReproducibility(t *testing.T) {
	d := newTestDirector(t)

	for _, a := range Archetypes {
		cfg := Config{LevelType: a, Dimensions: Dimensions{Width: 48, Height: 36}, Seed: 12345}

		r1, err := d.Generate(context.Background(), cfg, nil)
		if err != nil {
			t.Fatalf("%s: %v", a, err)
		}
		r2, err := d.Generate(context.Background(), cfg, nil)
		if err != nil {
			t.Fatalf("%s: %v", a, err)
		}

		if len(r1.Rooms) != len(r2.Rooms) {
			t.Fatalf("%s: room count mismatch: %d != %d", a, len(r1.Rooms), len(r2.Rooms))
		}
		for y := 0; y < r1.Grid.Height; y++ {
			for x := 0; x < r1.Grid.Width; x++ {
				if r1.Grid.Ground[y][x] != r2.Grid.Ground[y][x] ||
					r1.Grid.Walls[y][x] != r2.Grid.Walls[y][x] ||
					r1.Grid.Decorations[y][x] != r2.Grid.Decorations[y][x] {
					t.Fatalf("%s: tile mismatch at (%d,%d)", a, x, y)
				}
			}
		}
		if r1.ID == r2.ID {
			t.Errorf("%s: results should have distinct IDs", a)
		}
	}
}

func TestGenerateDifferentSeeds(t *testing.T) {
	d := newTestDirector(t)
	cfg := Config{LevelType: Dungeon, Dimensions: Dimensions{Width: 80, Height: 60}}

	r1, _ := d.Generate(context.Background(), cfg, rand.New(rand.NewSource(12345)))
	r2, _ := d.Generate(context.Background(), cfg, rand.New(rand.NewSource(54321)))

	identical := len(r1.Rooms) == len(r2.Rooms)
	for i := 0; identical && i < len(r1.Rooms); i++ {
		if r1.Rooms[i] != r2.Rooms[i] {
			identical = false
		}
	}
	if identical {
		t.Error("Dungeons with different seeds should not be identical")
	}
}

func TestGenerateConfigErrors(t *testing.T) {
	d := newTestDirector(t)

	tests := []struct {
		name string
		cfg  Config
		want error
	}{
		{"zero width", Config{LevelType: Dungeon, Dimensions: Dimensions{Width: 0, Height: 10}}, ErrInvalidDimensions},
		{"negative height", Config{LevelType: Cave, Dimensions: Dimensions{Width: 10, Height: -1}}, ErrInvalidDimensions},
		{"too large", Config{LevelType: Cave, Dimensions: Dimensions{Width: MaxDimension + 1, Height: 10}}, ErrInvalidDimensions},
		{"unknown archetype", Config{LevelType: "spaceship", Dimensions: Dimensions{Width: 10, Height: 10}}, ErrUnknownArchetype},
		{"empty archetype", Config{Dimensions: Dimensions{Width: 10, Height: 10}}, ErrUnknownArchetype},
		{"fill probability", Config{LevelType: Cave, Dimensions: Dimensions{Width: 10, Height: 10},
			Params: presets.Params{FillProbability: 1.5}}, ErrInvalidParams},
		{"max below min", Config{LevelType: Dungeon, Dimensions: Dimensions{Width: 10, Height: 10},
			Params: presets.Params{MinRoomSize: 8, MaxRoomSize: 5}}, ErrInvalidParams},
		{"bad policy", Config{LevelType: Dungeon, Dimensions: Dimensions{Width: 10, Height: 10},
			Params: presets.Params{Connectivity: "repair"}}, ErrInvalidParams},
		{"negative rounds", Config{LevelType: Dungeon, Dimensions: Dimensions{Width: 10, Height: 10},
			Params: presets.Params{SplitRounds: -1}}, ErrInvalidParams},
	}

	for _, tt := range tests {
		result, err := d.Generate(context.Background(), tt.cfg, nil)
		if !errors.Is(err, tt.want) {
			t.Errorf("%s: expected %v, got %v", tt.name, tt.want, err)
		}
		if result != nil {
			t.Errorf("%s: expected no result on error", tt.name)
		}
	}
}

func TestGenerateRoomsTooLarge(t *testing.T) {
	d := newTestDirector(t)
	cfg := Config{LevelType: Dungeon, Dimensions: Dimensions{Width: 12, Height: 12}}
	cfg.MinRoomSize = 20
	cfg.MaxRoomSize = 30

	result, err := d.Generate(context.Background(), cfg, rand.New(rand.NewSource(1)))
	if err != nil {
		t.Fatalf("Oversized rooms must not be fatal: %v", err)
	}
	if len(result.Rooms) != 0 || len(result.Corridors) != 0 {
		t.Errorf("Expected empty layout, got %d rooms", len(result.Rooms))
	}
	if len(result.Warnings) == 0 {
		t.Error("Expected a warning about missing rooms")
	}
	if !result.Connectivity.Connected || result.Connectivity.Walkable != 0 {
		t.Errorf("Empty layout should report nothing walkable: %+v", result.Connectivity)
	}
}

func TestResolveAppliesPresets(t *testing.T) {
	d := newTestDirector(t)

	cfg, err := d.Resolve(Config{LevelType: Castle, Dimensions: Dimensions{Width: 50, Height: 50}})
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if cfg.MinRoomSize != 6 || cfg.MaxRoomSize != 14 || cfg.CorridorWidth != 2 {
		t.Errorf("Castle presets not applied: %+v", cfg.Params)
	}
	if cfg.TileSize != 32 {
		t.Errorf("Expected tile size 32, got %d", cfg.TileSize)
	}

	cfg, err = d.Resolve(Config{LevelType: Castle, Dimensions: Dimensions{Width: 50, Height: 50}, Params: presets.Params{SplitRounds: 7}})
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if cfg.SplitRounds != 7 {
		t.Errorf("Explicit splitRounds should win, got %d", cfg.SplitRounds)
	}
}

func TestRegisterCustomRecipe(t *testing.T) {
	d := newTestDirector(t)
	var hookRan bool
	hook := NewHook("mark", func(g *world.TileGrid, _ world.Rand, _ HookEnv) {
		hookRan = true
	})
	d.Register("arena", func(_ context.Context, g *world.TileGrid, _ presets.Params, _ world.Rand) Plan {
		world.CarveRoom(g, world.NewRoom(1, 1, g.Width-2, g.Height-2))
		world.DeriveWalls(g)
		return Plan{Rooms: []world.Room{world.NewRoom(1, 1, g.Width-2, g.Height-2)}}
	}, hook)

	result, err := d.Generate(context.Background(), Config{LevelType: "arena", Dimensions: Dimensions{Width: 10, Height: 8}}, rand.New(rand.NewSource(1)))
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if !hookRan {
		t.Error("Custom hook did not run")
	}
	if result.Connectivity.Walkable != 8*6 {
		t.Errorf("Expected 48 walkable tiles, got %d", result.Connectivity.Walkable)
	}
	if names := d.Hooks("arena"); len(names) != 1 || names[0] != "mark" {
		t.Errorf("Unexpected hooks %v", names)
	}
}
