package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/samdwyer/levelforge/internal/i18n"
	"github.com/samdwyer/levelforge/internal/layout"
	"github.com/samdwyer/levelforge/internal/presets"
	"github.com/samdwyer/levelforge/internal/ui"
)

// writeResult prints the level in the requested format.
func writeResult(w io.Writer, result *layout.Result, registry *presets.Registry, format string, color bool) error {
	if format == "json" {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(struct {
			*layout.Result
			Rows []string `json:"rows"`
		}{result, ui.Rows(result.Grid, registry, string(result.LevelType))})
	}
	return ui.WriteASCII(w, result.Grid, registry, string(result.LevelType), color)
}

// printSummary writes the human-readable generation report.
func printSummary(w io.Writer, catalog *i18n.Catalog, result *layout.Result) {
	report := result.Connectivity

	fmt.Fprintf(w, "%s: %s  %s  %s\n",
		catalog.Get("LEVEL_TYPE"), result.LevelType,
		catalog.Get("SIZE", result.Grid.Width, result.Grid.Height),
		catalog.Get("SEED", result.Seed))
	fmt.Fprintln(w, catalog.Get("ROOMS", len(result.Rooms), len(result.Corridors)))
	fmt.Fprintln(w, catalog.Get("WALL_DENSITY", result.WallDensity))
	if report.Connected {
		fmt.Fprintln(w, catalog.Get("CONNECTED", report.Walkable))
	} else {
		fmt.Fprintln(w, catalog.Get("DISCONNECTED", report.Visited, report.Walkable))
	}
	if report.Sealed > 0 {
		fmt.Fprintln(w, catalog.Get("SEALED", report.Sealed))
	}
	for _, warning := range result.Warnings {
		fmt.Fprintln(w, catalog.Get("WARNING", warning))
	}
}
