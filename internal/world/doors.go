package world

// JoinRegions opens doorways so that walkable regions separated by a single
// wall tile become one region. A candidate is a wall tile whose cardinal
// neighbours belong to at least two different regions; candidates are tried
// in random order and one is opened only when it joins regions that are not
// yet connected, so each merge costs exactly one door. Regions separated by
// thicker walls stay apart. Returns the number of doors opened.
func JoinRegions(g *TileGrid, rng Rand) int {
	labels, sizes := labelRegions(g)
	if len(sizes) < 2 {
		return 0
	}

	var candidates []int
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			if !g.Walls[y][x].Solid || g.Decorations[y][x].Solid {
				continue
			}
			if len(adjacentRegions(g, labels, x, y)) >= 2 {
				candidates = append(candidates, g.Index(x, y))
			}
		}
	}
	for i := len(candidates) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		candidates[i], candidates[j] = candidates[j], candidates[i]
	}

	// union-find over region labels; index 0 is unused
	parent := make([]int, len(sizes)+1)
	for i := range parent {
		parent[i] = i
	}
	find := func(l int) int {
		for parent[l] != l {
			parent[l] = parent[parent[l]]
			l = parent[l]
		}
		return l
	}

	opened := 0
	merges := len(sizes) - 1
	for _, i := range candidates {
		if merges == 0 {
			break
		}
		x, y := i%g.Width, i/g.Width
		regions := adjacentRegions(g, labels, x, y)

		joins := false
		root := find(regions[0])
		for _, l := range regions[1:] {
			if find(l) != root {
				joins = true
			}
		}
		if !joins {
			continue
		}

		for _, l := range regions[1:] {
			if r := find(l); r != root {
				parent[r] = root
				merges--
			}
		}
		g.SetFloor(x, y)
		opened++
	}
	return opened
}

// adjacentRegions returns the distinct region labels of the passable
// cardinal neighbours of (x, y).
func adjacentRegions(g *TileGrid, labels []int, x, y int) []int {
	var regions []int
	for _, d := range cardinals {
		nx, ny := x+d.X, y+d.Y
		if !g.In(nx, ny) {
			continue
		}
		l := labels[g.Index(nx, ny)]
		if l == 0 {
			continue
		}
		seen := false
		for _, r := range regions {
			if r == l {
				seen = true
				break
			}
		}
		if !seen {
			regions = append(regions, l)
		}
	}
	return regions
}
