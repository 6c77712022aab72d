package world

// Corridor joins two room centers.
type Corridor struct {
	StartX int `json:"startX"`
	StartY int `json:"startY"`
	EndX   int `json:"endX"`
	EndY   int `json:"endY"`
	Width  int `json:"width"`
}

// ConnectRooms returns one corridor per consecutive pair of rooms, in the
// order the rooms were generated. Rooms that are far apart in that order may
// get long or crossing corridors.
func ConnectRooms(rooms []Room, width int) []Corridor {
	if len(rooms) < 2 {
		return nil
	}
	if width < 1 {
		width = 1
	}

	corridors := make([]Corridor, 0, len(rooms)-1)
	for i := 1; i < len(rooms); i++ {
		x1, y1 := rooms[i-1].Center()
		x2, y2 := rooms[i].Center()
		corridors = append(corridors, Corridor{
			StartX: x1,
			StartY: y1,
			EndX:   x2,
			EndY:   y2,
			Width:  width,
		})
	}
	return corridors
}

// Rasterize walks the corridor with integer Bresenham stepping, including
// both endpoints. Where Bresenham would step diagonally the x step is emitted
// as its own point first, so consecutive points always share an edge.
func Rasterize(c Corridor) []Point {
	x0, y0 := c.StartX, c.StartY
	x1, y1 := c.EndX, c.EndY

	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx := sign(x1 - x0)
	sy := sign(y1 - y0)
	err := dx + dy

	points := make([]Point, 0, dx-dy+1)
	for {
		points = append(points, Point{X: x0, Y: y0})
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		stepX := e2 >= dy
		stepY := e2 <= dx
		if stepX {
			err += dy
			x0 += sx
			if stepY {
				points = append(points, Point{X: x0, Y: y0})
			}
		}
		if stepY {
			err += dx
			y0 += sy
		}
	}
	return points
}

// CarveCorridor stamps floor along the rasterized corridor, overwriting any
// prior content. Widths above one use a square brush centered on each point.
func CarveCorridor(g *TileGrid, c Corridor) {
	lo := -(c.Width - 1) / 2
	hi := c.Width / 2
	if c.Width < 1 {
		lo, hi = 0, 0
	}

	for _, p := range Rasterize(c) {
		for oy := lo; oy <= hi; oy++ {
			for ox := lo; ox <= hi; ox++ {
				x, y := p.X+ox, p.Y+oy
				if g.In(x, y) {
					g.SetFloor(x, y)
				}
			}
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}
