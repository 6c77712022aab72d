package world

var cardinals = [4]Point{{X: 0, Y: -1}, {X: 1, Y: 0}, {X: 0, Y: 1}, {X: -1, Y: 0}}

// DeriveWalls stamps a wall into the walls layer on every unplaced cell that
// is a cardinal neighbour of placed walkable ground. It runs a single pass and
// reads only the ground layer, so running it again changes nothing.
// Call it after all rooms and corridors have been carved.
func DeriveWalls(g *TileGrid) int {
	stamped := 0
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			if !g.Ground[y][x].IsFloor() {
				continue
			}
			for _, d := range cardinals {
				nx, ny := x+d.X, y+d.Y
				if !g.In(nx, ny) || !g.Ground[ny][nx].IsEmpty() {
					continue
				}
				if !g.Walls[ny][nx].Solid {
					stamped++
				}
				g.Walls[ny][nx] = WallTile(nx, ny)
			}
		}
	}
	return stamped
}
