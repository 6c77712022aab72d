package world

// Room is a walkable rectangle placed inside a partition.
type Room struct {
	X       int `json:"x"` // Top-left corner position
	Y       int `json:"y"`
	Width   int `json:"width"`
	Height  int `json:"height"`
	CenterX int `json:"centerX"`
	CenterY int `json:"centerY"`
}

// NewRoom builds a room and computes its center.
func NewRoom(x, y, width, height int) Room {
	return Room{
		X:       x,
		Y:       y,
		Width:   width,
		Height:  height,
		CenterX: x + width/2,
		CenterY: y + height/2,
	}
}

// Center returns the center coordinates of the room.
func (r Room) Center() (int, int) {
	return r.CenterX, r.CenterY
}

// Contains returns true if the given point is inside the room.
func (r Room) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.Width && y >= r.Y && y < r.Y+r.Height
}

// Intersects returns true if this room overlaps with another room.
func (r Room) Intersects(other Room) bool {
	return r.X < other.X+other.Width &&
		r.X+r.Width > other.X &&
		r.Y < other.Y+other.Height &&
		r.Y+r.Height > other.Y
}

// RoomFromPartition places a room centered in p with a one-tile margin on
// every side. Each dimension is clamped to [minSize, maxSize]; no room is
// returned when the partition cannot fit minSize plus the margin.
func RoomFromPartition(p Partition, minSize, maxSize int) (Room, bool) {
	availW := p.Width - 2
	availH := p.Height - 2
	if availW < minSize || availH < minSize {
		return Room{}, false
	}

	w := clamp(availW, minSize, maxSize)
	h := clamp(availH, minSize, maxSize)

	x := p.X + (p.Width-w)/2
	y := p.Y + (p.Height-h)/2
	return NewRoom(x, y, w, h), true
}

// CarveRoom sets all ground tiles within the room to floor.
func CarveRoom(g *TileGrid, room Room) {
	for y := room.Y; y < room.Y+room.Height; y++ {
		for x := room.X; x < room.X+room.Width; x++ {
			if g.In(x, y) {
				g.SetFloor(x, y)
			}
		}
	}
}

// PlaceRooms extracts a room from every partition that can hold one and
// carves it into the grid. Rooms keep partition order.
func PlaceRooms(g *TileGrid, parts []Partition, minSize, maxSize int) []Room {
	rooms := make([]Room, 0, len(parts))
	for _, p := range parts {
		room, ok := RoomFromPartition(p, minSize, maxSize)
		if !ok {
			continue
		}
		CarveRoom(g, room)
		rooms = append(rooms, room)
	}
	return rooms
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
