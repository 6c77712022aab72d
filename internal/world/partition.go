package world

// DefaultSplitRounds is the number of BSP split rounds used when none is given.
const DefaultSplitRounds = 4

// Partition is a working rectangle produced by BSP splitting.
type Partition struct {
	X, Y          int
	Width, Height int
}

// SplitPartitions subdivides a width x height rectangle into partitions.
//
// Each round visits every partition once. A partition wider or taller than
// 2*maxRoomSize is split along an eligible axis (chosen at random when both
// qualify) at an offset that leaves at least minRoomSize on each side.
// The number of rounds is fixed regardless of grid size.
func SplitPartitions(width, height, minRoomSize, maxRoomSize, rounds int, rng Rand) []Partition {
	parts := []Partition{{X: 0, Y: 0, Width: width, Height: height}}
	limit := maxRoomSize * 2

	for round := 0; round < rounds; round++ {
		next := make([]Partition, 0, len(parts)*2)
		for _, p := range parts {
			a, b, ok := splitPartition(p, minRoomSize, limit, rng)
			if !ok {
				next = append(next, p)
				continue
			}
			next = append(next, a, b)
		}
		if len(next) == len(parts) {
			break // nothing left to split
		}
		parts = next
	}

	return parts
}

// splitPartition splits p in two, returning false if neither axis qualifies.
func splitPartition(p Partition, minSize, limit int, rng Rand) (Partition, Partition, bool) {
	canSplitX := p.Width > limit && p.Width-2*minSize >= 0
	canSplitY := p.Height > limit && p.Height-2*minSize >= 0

	var vertical bool // vertical: cut along x, producing left/right halves
	switch {
	case canSplitX && canSplitY:
		vertical = rng.Intn(2) == 0
	case canSplitX:
		vertical = true
	case canSplitY:
		vertical = false
	default:
		return Partition{}, Partition{}, false
	}

	if vertical {
		offset := minSize + rng.Intn(p.Width-2*minSize+1)
		left := Partition{X: p.X, Y: p.Y, Width: offset, Height: p.Height}
		right := Partition{X: p.X + offset, Y: p.Y, Width: p.Width - offset, Height: p.Height}
		return left, right, true
	}

	offset := minSize + rng.Intn(p.Height-2*minSize+1)
	top := Partition{X: p.X, Y: p.Y, Width: p.Width, Height: offset}
	bottom := Partition{X: p.X, Y: p.Y + offset, Width: p.Width, Height: p.Height - offset}
	return top, bottom, true
}
