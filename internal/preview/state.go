// Package preview is an interactive terminal viewer for generated levels.
package preview

import "github.com/samdwyer/levelforge/internal/world"

// View selects which layers the viewer draws.
type View int

const (
	// ViewComposite stacks every layer.
	ViewComposite View = iota
	ViewGround
	ViewWalls
	ViewDecorations
	// ViewReachable draws the composite but blanks tiles the connectivity
	// flood fill did not reach.
	ViewReachable
	viewCount
)

// String returns a human-readable view name.
func (v View) String() string {
	switch v {
	case ViewComposite:
		return "composite"
	case ViewGround:
		return "ground"
	case ViewWalls:
		return "walls"
	case ViewDecorations:
		return "decorations"
	case ViewReachable:
		return "reachable"
	default:
		return "unknown"
	}
}

// Next cycles to the following view.
func (v View) Next() View {
	return (v + 1) % viewCount
}

// Layers returns the layers drawn for the view.
func (v View) Layers() []world.Layer {
	switch v {
	case ViewGround:
		return []world.Layer{world.LayerGround}
	case ViewWalls:
		return []world.Layer{world.LayerWalls}
	case ViewDecorations:
		return []world.Layer{world.LayerDecorations}
	default:
		return []world.Layer{world.LayerGround, world.LayerWalls, world.LayerDecorations}
	}
}
