// Package world provides the tile grid and the layout algorithms that fill it.
package world

// TileType tags what a tile represents.
type TileType string

const (
	TypeEmpty  TileType = "empty"
	TypeFloor  TileType = "floor"
	TypeWall   TileType = "wall"
	TypeGrass  TileType = "grass"
	TypeTree   TileType = "tree"
	TypeWater  TileType = "water"
	TypeMud    TileType = "mud"
	TypeRubble TileType = "rubble"
	TypeRock   TileType = "rock"
)

// Tile IDs used by the export and rendering collaborators. Zero is reserved
// for unplaced cells.
const (
	IDEmpty uint32 = iota
	IDFloor
	IDWall
	IDGrass
	IDTree
	IDWater
	IDMud
	IDRubble
	IDRock
)

// Tile is a single cell in one layer of a TileGrid.
type Tile struct {
	ID       uint32   `json:"tileId"`
	Type     TileType `json:"tileType"`
	Walkable bool     `json:"walkable"`
	Solid    bool     `json:"solid"`
	X        int      `json:"x"`
	Y        int      `json:"y"`
}

// NewTile builds a tile at (x, y). Solid is always the inverse of walkable.
func NewTile(id uint32, tileType TileType, walkable bool, x, y int) Tile {
	return Tile{
		ID:       id,
		Type:     tileType,
		Walkable: walkable,
		Solid:    !walkable,
		X:        x,
		Y:        y,
	}
}

// EmptyTile returns the unplaced tile for (x, y).
func EmptyTile(x, y int) Tile {
	return NewTile(IDEmpty, TypeEmpty, true, x, y)
}

// FloorTile returns a walkable floor tile for (x, y).
func FloorTile(x, y int) Tile {
	return NewTile(IDFloor, TypeFloor, true, x, y)
}

// WallTile returns a solid wall tile for (x, y).
func WallTile(x, y int) Tile {
	return NewTile(IDWall, TypeWall, false, x, y)
}

// IsEmpty returns true if the tile has not been placed yet.
func (t Tile) IsEmpty() bool {
	return t.ID == IDEmpty && t.Type == TypeEmpty
}

// IsFloor returns true for placed tiles that can be walked on.
func (t Tile) IsFloor() bool {
	return !t.IsEmpty() && t.Walkable
}

// tileKinds describes the built-in tile types.
var tileKinds = map[TileType]struct {
	id       uint32
	walkable bool
}{
	TypeFloor:  {IDFloor, true},
	TypeWall:   {IDWall, false},
	TypeGrass:  {IDGrass, true},
	TypeTree:   {IDTree, false},
	TypeWater:  {IDWater, false},
	TypeMud:    {IDMud, true},
	TypeRubble: {IDRubble, true},
	TypeRock:   {IDRock, false},
}

// TileOf returns the built-in tile of type t at (x, y). Unknown types yield
// an unplaced tile.
func TileOf(t TileType, x, y int) Tile {
	kind, ok := tileKinds[t]
	if !ok {
		return EmptyTile(x, y)
	}
	return NewTile(kind.id, t, kind.walkable, x, y)
}
