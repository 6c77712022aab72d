package world

import (
	"math/rand"
	"testing"
)

// gridFromRows builds a grid where '.' is floor, '#' is wall and ' ' is unplaced.
func gridFromRows(rows ...string) *TileGrid {
	g := NewTileGrid(len(rows[0]), len(rows), 32)
	for y, row := range rows {
		for x, ch := range row {
			switch ch {
			case '.':
				g.SetFloor(x, y)
			case '#':
				g.SetSolid(x, y)
			}
		}
	}
	return g
}

func TestEnsureConnectivityConnected(t *testing.T) {
	g := gridFromRows(
		"#####",
		"#...#",
		"#.#.#",
		"#...#",
		"#####",
	)

	report := EnsureConnectivity(g, PolicyReport)
	if !report.Connected {
		t.Errorf("Expected connected map, report %+v", report)
	}
	if report.Walkable != 8 || report.Visited != 8 {
		t.Errorf("Expected 8 walkable and visited, got %d/%d", report.Walkable, report.Visited)
	}
	if report.Regions != 1 {
		t.Errorf("Expected 1 region, got %d", report.Regions)
	}
	if !report.Reachable(1, 1) || report.Reachable(2, 2) {
		t.Error("Reachable disagrees with the layout")
	}
}

func TestEnsureConnectivityReportsPockets(t *testing.T) {
	g := gridFromRows(
		"..#....",
		"..#....",
		"###....",
		"#.#....",
	)

	report := EnsureConnectivity(g, PolicyReport)
	if report.Connected {
		t.Fatal("Expected disconnected map")
	}
	// first walkable tile in scan order is (0,0): its region has 4 tiles
	if report.Visited != 4 {
		t.Errorf("Expected 4 visited, got %d", report.Visited)
	}
	if report.Walkable != 4+16+1 {
		t.Errorf("Expected 21 walkable, got %d", report.Walkable)
	}
	if report.Visited > report.Walkable {
		t.Error("Visited must never exceed walkable")
	}
	if report.Unreachable() != 17 {
		t.Errorf("Expected 17 unreachable, got %d", report.Unreachable())
	}
	if report.Regions != 3 {
		t.Errorf("Expected 3 regions, got %d", report.Regions)
	}
	if report.Sealed != 0 {
		t.Errorf("Report policy must not seal, sealed %d", report.Sealed)
	}
	if !g.Passable(1, 3) {
		t.Error("Report policy must not modify the grid")
	}
}

func TestEnsureConnectivitySealKeepsLargestRegion(t *testing.T) {
	g := gridFromRows(
		"..#....",
		"..#....",
		"###....",
		"#.#....",
	)

	report := EnsureConnectivity(g, PolicySeal)
	if !report.Connected {
		t.Fatalf("Seal policy should leave a connected map, report %+v", report)
	}
	if report.Sealed != 5 {
		t.Errorf("Expected 5 sealed tiles, got %d", report.Sealed)
	}
	if report.Walkable != 16 || report.Visited != 16 {
		t.Errorf("Expected the 16-tile region to remain, got %d/%d", report.Walkable, report.Visited)
	}
	if g.Passable(0, 0) || g.Passable(1, 3) {
		t.Error("Minor regions should have become wall")
	}
	if !g.Walls[0][0].Solid || g.Ground[0][0].Walkable {
		t.Error("Sealed tile should be solid in ground and walls")
	}
}

func TestEnsureConnectivityIgnoresUnplacedCells(t *testing.T) {
	g := gridFromRows(
		"    ",
		" .. ",
		"    ",
	)
	report := EnsureConnectivity(g, PolicyReport)
	if report.Walkable != 2 || !report.Connected {
		t.Errorf("Unplaced cells must not count as walkable, report %+v", report)
	}
}

func TestEnsureConnectivityEmptyGrid(t *testing.T) {
	g := NewTileGrid(5, 5, 32)
	report := EnsureConnectivity(g, PolicySeal)
	if report.Walkable != 0 || report.Visited != 0 || !report.Connected {
		t.Errorf("Unexpected report for grid without floor: %+v", report)
	}
}

func TestEnsureConnectivityLargeGrid(t *testing.T) {
	// A fully open 512x512 grid would overflow a naively recursive fill
	g := NewTileGrid(512, 512, 32)
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			g.SetFloor(x, y)
		}
	}

	report := EnsureConnectivity(g, PolicyReport)
	if report.Visited != 512*512 || !report.Connected {
		t.Errorf("Expected all %d tiles visited, got %d", 512*512, report.Visited)
	}
}

func TestEnsureConnectivityCave(t *testing.T) {
	g := NewTileGrid(60, 40, 32)
	CarveCave(g, CaveParams{FillProbability: 0.45, Generations: 5}, rand.New(rand.NewSource(5)))

	report := EnsureConnectivity(g, PolicySeal)
	if !report.Connected {
		t.Fatalf("Sealed cave should be connected: %+v", report)
	}
	if report.Walkable == 0 {
		t.Fatal("Sealed cave has no floor left")
	}

	again := EnsureConnectivity(g, PolicyReport)
	if again.Regions != 1 || again.Visited != again.Walkable {
		t.Errorf("Revalidation found %d regions", again.Regions)
	}
}
