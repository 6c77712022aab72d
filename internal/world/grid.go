package world

// Layer selects one of the three parallel tile layers of a grid.
type Layer int

const (
	LayerGround Layer = iota
	LayerWalls
	LayerDecorations
)

// String returns a human-readable layer name.
func (l Layer) String() string {
	switch l {
	case LayerGround:
		return "ground"
	case LayerWalls:
		return "walls"
	case LayerDecorations:
		return "decorations"
	default:
		return "unknown"
	}
}

// Rand is the random source threaded through generation.
// *math/rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
	Float64() float64
	Int63() int64
}

// Point is a single grid coordinate.
type Point struct {
	X, Y int
}

// TileGrid holds the ground, walls and decorations layers of a level.
// All three layers share Width and Height and are indexed [y][x].
type TileGrid struct {
	Width       int
	Height      int
	TileSize    int
	Ground      [][]Tile
	Walls       [][]Tile
	Decorations [][]Tile
}

// NewTileGrid creates a grid with every cell of every layer unplaced.
// Dimensions are not validated.
func NewTileGrid(width, height, tileSize int) *TileGrid {
	return &TileGrid{
		Width:       width,
		Height:      height,
		TileSize:    tileSize,
		Ground:      newLayer(width, height),
		Walls:       newLayer(width, height),
		Decorations: newLayer(width, height),
	}
}

func newLayer(width, height int) [][]Tile {
	tiles := make([][]Tile, height)
	for y := range tiles {
		tiles[y] = make([]Tile, width)
		for x := range tiles[y] {
			tiles[y][x] = EmptyTile(x, y)
		}
	}
	return tiles
}

// In returns true if (x, y) lies inside the grid.
func (g *TileGrid) In(x, y int) bool {
	return x >= 0 && x < g.Width && y >= 0 && y < g.Height
}

// Index returns the flat index of (x, y).
func (g *TileGrid) Index(x, y int) int {
	return y*g.Width + x
}

// Layer returns the tiles of the requested layer.
func (g *TileGrid) Layer(layer Layer) [][]Tile {
	switch layer {
	case LayerWalls:
		return g.Walls
	case LayerDecorations:
		return g.Decorations
	default:
		return g.Ground
	}
}

// At returns the tile at (x, y) in the given layer.
func (g *TileGrid) At(layer Layer, x, y int) Tile {
	return g.Layer(layer)[y][x]
}

// Set writes a tile into a layer, forcing its coordinates to (x, y).
func (g *TileGrid) Set(layer Layer, x, y int, tile Tile) {
	tile.X, tile.Y = x, y
	g.Layer(layer)[y][x] = tile
}

// Clear resets (x, y) in the given layer to an unplaced tile.
func (g *TileGrid) Clear(layer Layer, x, y int) {
	g.Layer(layer)[y][x] = EmptyTile(x, y)
}

// Passable returns true if (x, y) has placed walkable ground and nothing solid
// stacked on top of it. Out-of-bounds positions are never passable.
func (g *TileGrid) Passable(x, y int) bool {
	if !g.In(x, y) {
		return false
	}
	if !g.Ground[y][x].IsFloor() {
		return false
	}
	return !g.Walls[y][x].Solid && !g.Decorations[y][x].Solid
}

// SetSolid makes (x, y) impassable: ground becomes wall and the walls layer
// holds a wall tile.
func (g *TileGrid) SetSolid(x, y int) {
	g.Ground[y][x] = WallTile(x, y)
	g.Walls[y][x] = WallTile(x, y)
}

// SetFloor makes (x, y) walkable floor and clears the walls layer there.
func (g *TileGrid) SetFloor(x, y int) {
	g.Ground[y][x] = FloorTile(x, y)
	g.Walls[y][x] = EmptyTile(x, y)
}

// Stats summarises a grid.
type Stats struct {
	Cells    int `json:"cells"`
	Passable int `json:"passable"`
	Walls    int `json:"walls"`
	Empty    int `json:"empty"`
}

// Stats counts passable, wall and unplaced cells.
func (g *TileGrid) Stats() Stats {
	s := Stats{Cells: g.Width * g.Height}
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			switch {
			case g.Passable(x, y):
				s.Passable++
			case g.Walls[y][x].Solid || g.Ground[y][x].Solid:
				s.Walls++
			}
			if g.Ground[y][x].IsEmpty() && g.Walls[y][x].IsEmpty() {
				s.Empty++
			}
		}
	}
	return s
}
