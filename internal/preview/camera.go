package preview

// Camera is the top-left grid cell of the visible window.
type Camera struct {
	X, Y int
}

// Scroll moves the camera and keeps the window inside a grid of
// gridW x gridH when viewed through a viewW x viewH window.
func (c *Camera) Scroll(dx, dy, gridW, gridH, viewW, viewH int) {
	c.X = clampOffset(c.X+dx, gridW, viewW)
	c.Y = clampOffset(c.Y+dy, gridH, viewH)
}

// Center places the camera so (x, y) is in the middle of the window.
func (c *Camera) Center(x, y, gridW, gridH, viewW, viewH int) {
	c.X = clampOffset(x-viewW/2, gridW, viewW)
	c.Y = clampOffset(y-viewH/2, gridH, viewH)
}

func clampOffset(v, size, view int) int {
	if maxOffset := size - view; v > maxOffset {
		v = maxOffset
	}
	if v < 0 {
		v = 0
	}
	return v
}
