package world

const (
	// DefaultGenerations is the number of automata passes used when none is given.
	DefaultGenerations = 5
	// DefaultFillProbability is the initial wall chance for caves.
	DefaultFillProbability = 0.45

	surviveThreshold = 4 // wall stays wall with at least this many solid neighbours
	birthThreshold   = 5 // floor turns to wall with at least this many solid neighbours
)

// CaveParams controls CarveCave.
type CaveParams struct {
	FillProbability float64
	Generations     int
}

// CarveCave fills the whole grid with a cellular-automata cave and returns the
// resulting wall density in [0, 1].
//
// Each cell starts as wall with probability FillProbability. Every generation
// is computed from a snapshot of the previous one; out-of-bounds neighbours
// count as solid.
func CarveCave(g *TileGrid, params CaveParams, rng Rand) float64 {
	solid := make([]bool, g.Width*g.Height)
	for i := range solid {
		solid[i] = rng.Float64() < params.FillProbability
	}

	next := make([]bool, len(solid))
	for gen := 0; gen < params.Generations; gen++ {
		for y := 0; y < g.Height; y++ {
			for x := 0; x < g.Width; x++ {
				i := g.Index(x, y)
				n := countSolidNeighbours(solid, g.Width, g.Height, x, y)
				if solid[i] {
					next[i] = n >= surviveThreshold
				} else {
					next[i] = n >= birthThreshold
				}
			}
		}
		solid, next = next, solid
	}

	walls := 0
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			if solid[g.Index(x, y)] {
				g.SetSolid(x, y)
				walls++
			} else {
				g.SetFloor(x, y)
			}
		}
	}

	if len(solid) == 0 {
		return 0
	}
	return float64(walls) / float64(len(solid))
}

func countSolidNeighbours(solid []bool, width, height, x, y int) int {
	count := 0
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			nx, ny := x+dx, y+dy
			if nx < 0 || nx >= width || ny < 0 || ny >= height {
				count++
				continue
			}
			if solid[ny*width+nx] {
				count++
			}
		}
	}
	return count
}

// WallDensity returns the share of cells whose ground or walls layer is solid.
func WallDensity(g *TileGrid) float64 {
	total := g.Width * g.Height
	if total == 0 {
		return 0
	}
	walls := 0
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			if g.Ground[y][x].Solid || g.Walls[y][x].Solid {
				walls++
			}
		}
	}
	return float64(walls) / float64(total)
}
