package preview

import (
	"context"
	"math/rand"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/levelforge/internal/i18n"
	"github.com/samdwyer/levelforge/internal/layout"
	"github.com/samdwyer/levelforge/internal/presets"
	"github.com/samdwyer/levelforge/internal/telemetry"
	"github.com/samdwyer/levelforge/internal/ui"
	"github.com/samdwyer/levelforge/internal/world"
)

const scrollStep = 4

type action int

const (
	actionNone action = iota
	actionQuit
	actionUp
	actionDown
	actionLeft
	actionRight
	actionNextView
	actionReseed
)

// Viewer holds the state of one preview session.
type Viewer struct {
	screen   *ui.Screen
	renderer *ui.Renderer
	director *layout.Director
	catalog  *i18n.Catalog
	cfg      layout.Config
	result   *layout.Result
	camera   Camera
	view     View
	seeds    *rand.Rand
	running  bool
}

// New creates a viewer that generates levels for cfg.
func New(director *layout.Director, registry *presets.Registry, catalog *i18n.Catalog, cfg layout.Config) (*Viewer, error) {
	screen, err := ui.NewScreen()
	if err != nil {
		return nil, err
	}

	return &Viewer{
		screen:   screen,
		renderer: ui.NewRenderer(screen, registry),
		director: director,
		catalog:  catalog,
		cfg:      cfg,
		view:     ViewComposite,
		seeds:    rand.New(rand.NewSource(time.Now().UnixNano())),
		running:  true,
	}, nil
}

// Run generates the first level and executes the viewer loop until the user
// quits.
func (v *Viewer) Run(ctx context.Context) error {
	defer v.screen.Close()

	if err := v.generate(ctx, v.cfg.Seed); err != nil {
		return err
	}

	for v.running {
		v.render()

		if err := v.handleInput(ctx); err != nil {
			return err
		}
	}
	return nil
}

// generate builds a level with the given seed and centres the camera on it.
func (v *Viewer) generate(ctx context.Context, seed int64) error {
	ctx, span := telemetry.Tracer("preview").Start(ctx, "preview.generate")
	defer span.End()

	cfg := v.cfg
	cfg.Seed = seed
	result, err := v.director.Generate(ctx, cfg, nil)
	if err != nil {
		telemetry.RecordError(span, err)
		return err
	}
	v.result = result
	span.SetAttributes(attribute.Int64("preview.seed", result.Seed))

	w, h := v.viewport()
	v.camera.Center(result.Grid.Width/2, result.Grid.Height/2, result.Grid.Width, result.Grid.Height, w, h)
	return nil
}

func (v *Viewer) render() {
	grid := v.result.Grid
	if v.view == ViewReachable {
		grid = reachableOnly(v.result)
	}
	v.renderer.Render(grid, string(v.result.LevelType), v.view.Layers(), v.camera.X, v.camera.Y)

	_, h := v.screen.Size()
	v.renderer.RenderMessage(v.status(), h-1)
	v.renderer.Show()
}

// status is the bottom line of the viewer.
func (v *Viewer) status() string {
	r := v.result
	return string(r.LevelType) + "  " +
		v.catalog.Get("SEED", r.Seed) + "  " +
		v.catalog.Get("VIEW", v.view.String()) + "  " +
		v.catalog.Get("VIEWER_HELP")
}

// viewport returns the number of grid cells visible on screen.
func (v *Viewer) viewport() (int, int) {
	w, h := v.screen.Size()
	return w, h - 1
}

// handleInput processes a single input event.
func (v *Viewer) handleInput(ctx context.Context) error {
	switch ev := v.screen.PollEvent().(type) {
	case *tcell.EventKey:
		return v.apply(ctx, keyAction(ev))
	case *tcell.EventResize:
		v.screen.Sync()
		v.scroll(0, 0)
	}
	return nil
}

// keyAction maps keyboard input to a viewer action.
func keyAction(ev *tcell.EventKey) action {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return actionQuit
	case tcell.KeyUp:
		return actionUp
	case tcell.KeyDown:
		return actionDown
	case tcell.KeyLeft:
		return actionLeft
	case tcell.KeyRight:
		return actionRight
	case tcell.KeyTab:
		return actionNextView
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q', 'Q':
			return actionQuit
		case 'r', 'R':
			return actionReseed
		}
	}
	return actionNone
}

func (v *Viewer) apply(ctx context.Context, a action) error {
	switch a {
	case actionQuit:
		v.running = false
	case actionUp:
		v.scroll(0, -scrollStep)
	case actionDown:
		v.scroll(0, scrollStep)
	case actionLeft:
		v.scroll(-scrollStep, 0)
	case actionRight:
		v.scroll(scrollStep, 0)
	case actionNextView:
		v.view = v.view.Next()
	case actionReseed:
		return v.generate(ctx, v.seeds.Int63()+1)
	}
	return nil
}

func (v *Viewer) scroll(dx, dy int) {
	w, h := v.viewport()
	g := v.result.Grid
	v.camera.Scroll(dx, dy, g.Width, g.Height, w, h)
}

// reachableOnly copies the grid, blanking every cell the flood fill missed.
func reachableOnly(r *layout.Result) *world.TileGrid {
	src := r.Grid
	g := world.NewTileGrid(src.Width, src.Height, src.TileSize)
	for y := 0; y < src.Height; y++ {
		for x := 0; x < src.Width; x++ {
			if src.Passable(x, y) && !r.Connectivity.Reachable(x, y) {
				continue
			}
			g.Ground[y][x] = src.Ground[y][x]
			g.Walls[y][x] = src.Walls[y][x]
			g.Decorations[y][x] = src.Decorations[y][x]
		}
	}
	return g
}

// Close cleans up viewer resources.
func (v *Viewer) Close() {
	if v.screen != nil {
		v.screen.Close()
	}
}
