package layout

import (
	"time"

	"github.com/samdwyer/levelforge/internal/world"
)

// Result is a finished level plus the metadata of the request that built it.
// The grid is handed off read-only: nothing in this package touches it again.
// Seed is zero, and omitted from JSON, when the caller supplied its own random
// source without a seed; such a level cannot be reproduced from the result.
type Result struct {
	ID           string                   `json:"id"`
	LevelType    Archetype                `json:"levelType"`
	Seed         int64                    `json:"seed,omitempty"`
	GeneratedAt  time.Time                `json:"generatedAt"`
	Version      string                   `json:"version"`
	Config       Config                   `json:"config"`
	Grid         *world.TileGrid          `json:"-"`
	Rooms        []world.Room             `json:"rooms"`
	Corridors    []world.Corridor         `json:"corridors"`
	Connectivity world.ConnectivityReport `json:"connectivity"`
	WallDensity  float64                  `json:"wallDensity"`
	Stats        world.Stats              `json:"stats"`
	Warnings     []string                 `json:"warnings,omitempty"`
}

// RoomsReachable returns true if every room center was reached by the
// connectivity flood fill.
func (r *Result) RoomsReachable() bool {
	for _, room := range r.Rooms {
		if !r.Connectivity.Reachable(room.Center()) {
			return false
		}
	}
	return true
}
