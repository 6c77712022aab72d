package world

import (
	"github.com/zyedidia/generic/mapset"
	"github.com/zyedidia/generic/stack"
)

// ConnectivityPolicy decides what happens to walkable tiles that cannot be
// reached from the first walkable tile.
type ConnectivityPolicy string

const (
	// PolicyReport only marks reachability; disconnection is left in the report.
	PolicyReport ConnectivityPolicy = "report"
	// PolicySeal keeps the largest walkable region and turns every other
	// region into wall.
	PolicySeal ConnectivityPolicy = "seal"
)

// Valid returns true for known policies.
func (p ConnectivityPolicy) Valid() bool {
	return p == PolicyReport || p == PolicySeal
}

// ConnectivityReport is the outcome of EnsureConnectivity.
type ConnectivityReport struct {
	Walkable  int  `json:"walkable"`  // passable tiles in the grid
	Visited   int  `json:"visited"`   // passable tiles reached by the flood fill
	Connected bool `json:"connected"` // Visited == Walkable
	Regions   int  `json:"regions"`   // 4-connected walkable regions before sealing
	Sealed    int  `json:"sealed"`    // tiles turned to wall by PolicySeal

	width   int
	visited []bool
}

// Reachable returns true if (x, y) was reached by the flood fill.
func (r ConnectivityReport) Reachable(x, y int) bool {
	if r.width <= 0 || x < 0 || x >= r.width || y < 0 {
		return false
	}
	i := y*r.width + x
	return i < len(r.visited) && r.visited[i]
}

// Unreachable returns how many walkable tiles the flood fill missed.
func (r ConnectivityReport) Unreachable() int {
	return r.Walkable - r.Visited
}

// EnsureConnectivity flood-fills from the first passable tile in scan order
// and reports how much of the walkable area it reached. With PolicySeal,
// every region except the largest is converted to wall first.
func EnsureConnectivity(g *TileGrid, policy ConnectivityPolicy) ConnectivityReport {
	labels, sizes := labelRegions(g)

	sealed := 0
	if policy == PolicySeal && len(sizes) > 1 {
		sealed = sealMinorRegions(g, labels, sizes)
	}

	report := ConnectivityReport{
		Regions: len(sizes),
		Sealed:  sealed,
		width:   g.Width,
		visited: make([]bool, g.Width*g.Height),
	}

	start := -1
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			if !g.Passable(x, y) {
				continue
			}
			report.Walkable++
			if start < 0 {
				start = g.Index(x, y)
			}
		}
	}
	if start < 0 {
		report.Connected = true // nothing walkable
		return report
	}

	report.Visited = floodFill(g, start, report.visited)
	report.Connected = report.Visited == report.Walkable
	return report
}

// floodFill marks every passable tile 4-connected to start and returns the
// number of tiles marked. It uses an explicit stack so grid size does not
// bound call depth.
func floodFill(g *TileGrid, start int, visited []bool) int {
	work := stack.New[int]()
	work.Push(start)
	visited[start] = true
	count := 0

	for work.Size() > 0 {
		i := work.Pop()
		count++
		x, y := i%g.Width, i/g.Width
		for _, d := range cardinals {
			nx, ny := x+d.X, y+d.Y
			if !g.Passable(nx, ny) {
				continue
			}
			ni := g.Index(nx, ny)
			if visited[ni] {
				continue
			}
			visited[ni] = true
			work.Push(ni)
		}
	}
	return count
}

// labelRegions assigns every passable tile a region number (1-based; 0 means
// not passable) and returns the per-region sizes indexed by label-1.
func labelRegions(g *TileGrid) ([]int, []int) {
	labels := make([]int, g.Width*g.Height)
	var sizes []int
	work := stack.New[int]()

	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			i := g.Index(x, y)
			if labels[i] != 0 || !g.Passable(x, y) {
				continue
			}
			label := len(sizes) + 1
			size := 0
			labels[i] = label
			work.Push(i)
			for work.Size() > 0 {
				cur := work.Pop()
				size++
				cx, cy := cur%g.Width, cur/g.Width
				for _, d := range cardinals {
					nx, ny := cx+d.X, cy+d.Y
					if !g.Passable(nx, ny) {
						continue
					}
					ni := g.Index(nx, ny)
					if labels[ni] != 0 {
						continue
					}
					labels[ni] = label
					work.Push(ni)
				}
			}
			sizes = append(sizes, size)
		}
	}
	return labels, sizes
}

// sealMinorRegions turns every region but the largest into wall. Ties keep
// the region found first in scan order.
func sealMinorRegions(g *TileGrid, labels, sizes []int) int {
	keep := 1
	for i, size := range sizes {
		if size > sizes[keep-1] {
			keep = i + 1
		}
	}

	minor := mapset.New[int]()
	for i := range sizes {
		if i+1 != keep {
			minor.Put(i + 1)
		}
	}

	sealed := 0
	for i, label := range labels {
		if label == 0 || !minor.Has(label) {
			continue
		}
		x, y := i%g.Width, i/g.Width
		g.SetSolid(x, y)
		g.Decorations[y][x] = EmptyTile(x, y)
		sealed++
	}
	return sealed
}
