package world

import "testing"

func TestNewTileGridIsEmpty(t *testing.T) {
	g := NewTileGrid(7, 5, 16)

	if g.Width != 7 || g.Height != 5 || g.TileSize != 16 {
		t.Fatalf("Unexpected grid header: %dx%d tile %d", g.Width, g.Height, g.TileSize)
	}

	for _, layer := range []Layer{LayerGround, LayerWalls, LayerDecorations} {
		tiles := g.Layer(layer)
		if len(tiles) != g.Height {
			t.Fatalf("%s: expected %d rows, got %d", layer, g.Height, len(tiles))
		}
		for y := range tiles {
			if len(tiles[y]) != g.Width {
				t.Fatalf("%s: row %d has %d cells, want %d", layer, y, len(tiles[y]), g.Width)
			}
			for x, tile := range tiles[y] {
				if !tile.IsEmpty() || !tile.Walkable || tile.Solid {
					t.Errorf("%s (%d,%d): expected empty walkable tile, got %+v", layer, x, y, tile)
				}
				if tile.X != x || tile.Y != y {
					t.Errorf("%s (%d,%d): tile reports position (%d,%d)", layer, x, y, tile.X, tile.Y)
				}
			}
		}
	}
}

func TestTileSolidIsInverseOfWalkable(t *testing.T) {
	types := []TileType{TypeFloor, TypeWall, TypeGrass, TypeTree, TypeWater, TypeMud, TypeRubble, TypeRock, "unknown"}
	for _, tt := range types {
		tile := TileOf(tt, 1, 2)
		if tile.Solid == tile.Walkable {
			t.Errorf("%s: solid (%v) must be the inverse of walkable (%v)", tt, tile.Solid, tile.Walkable)
		}
	}
	if !TileOf("unknown", 0, 0).IsEmpty() {
		t.Error("Unknown tile type should produce an empty tile")
	}
}

func TestPassable(t *testing.T) {
	g := NewTileGrid(3, 3, 32)

	if g.Passable(1, 1) {
		t.Error("Unplaced ground should not be passable")
	}

	g.SetFloor(1, 1)
	if !g.Passable(1, 1) {
		t.Error("Floor should be passable")
	}

	g.Decorations[1][1] = NewTile(99, "statue", false, 1, 1)
	if g.Passable(1, 1) {
		t.Error("Solid decoration should block")
	}

	g.Clear(LayerDecorations, 1, 1)
	g.Walls[1][1] = WallTile(1, 1)
	if g.Passable(1, 1) {
		t.Error("Wall should block")
	}

	if g.Passable(-1, 0) || g.Passable(3, 0) {
		t.Error("Out of bounds should not be passable")
	}
}

func TestSetForcesCoordinates(t *testing.T) {
	g := NewTileGrid(4, 4, 32)
	g.Set(LayerDecorations, 2, 3, FloorTile(0, 0))

	tile := g.At(LayerDecorations, 2, 3)
	if tile.X != 2 || tile.Y != 3 {
		t.Errorf("Expected tile at (2,3), got (%d,%d)", tile.X, tile.Y)
	}
}

func TestStats(t *testing.T) {
	g := NewTileGrid(4, 2, 32)
	g.SetFloor(0, 0)
	g.SetFloor(1, 0)
	g.SetSolid(2, 0)

	s := g.Stats()
	if s.Cells != 8 || s.Passable != 2 || s.Walls != 1 || s.Empty != 5 {
		t.Errorf("Unexpected stats: %+v", s)
	}
}
