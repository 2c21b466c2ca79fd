// Package app is the raylib frontend: it draws the lens diagram every frame
// and feeds mouse drags to the diagram controller.
package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/philipparndt/golens/internal/preset"
	"github.com/philipparndt/golens/pkg/diagram"
	"github.com/philipparndt/golens/version"
)

// Options configures Run
type Options struct {
	Config     diagram.Config
	PresetFile string
	Watch      bool
	Logger     *slog.Logger
}

type App struct {
	Diagram     DiagramData
	View        ViewSettings
	Interaction InteractionState
	FileWatch   FileWatchState
	UI          UIState
	logger      *slog.Logger
}

// New prepares the diagram state without opening a window
func New(opts Options) (*App, error) {
	if err := opts.Config.Validate(); err != nil {
		return nil, err
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	app := &App{
		View: ViewSettings{
			showGrid:     true,
			showTicks:    true,
			showReadouts: true,
		},
		FileWatch: FileWatchState{presetFile: opts.PresetFile},
		logger:    logger,
	}

	layout := diagram.DefaultLayout(opts.Config)
	var name string
	if opts.PresetFile != "" {
		p, err := preset.Load(opts.PresetFile, opts.Config)
		if err != nil {
			return nil, err
		}
		layout = p.Layout
		name = p.Name
	}

	scene := diagram.NewScene()
	app.Diagram = DiagramData{
		cfg:        opts.Config,
		scene:      scene,
		controller: diagram.NewController(opts.Config, scene, layout, diagram.WithLogger(logger)),
		layout:     layout,
		presetName: name,
	}
	return app, nil
}

// Run opens the window and blocks until it is closed
func Run(ctx context.Context, opts Options) error {
	app, err := New(opts)
	if err != nil {
		return err
	}

	if opts.Watch && opts.PresetFile != "" {
		if err := app.setupFileWatcher(ctx); err != nil {
			app.logger.Warn("auto-reload disabled", "err", err)
		} else {
			defer app.FileWatch.fileWatcher.Close()
		}
	}

	cfg := app.Diagram.cfg
	rl.SetConfigFlags(rl.FlagMsaa4xHint) // Must be before InitWindow
	rl.InitWindow(int32(cfg.Width), int32(cfg.Height), fmt.Sprintf("GoLens %s", version.GetVersion()))
	rl.SetTargetFPS(60)

	app.UI.font = rl.GetFontDefault()
	app.UI.fontSize = 14

	for !rl.WindowShouldClose() {
		if ctx.Err() != nil {
			break
		}

		// Reload the preset on the render thread
		if app.FileWatch.needsReload.Swap(false) {
			app.reloadPreset()
		}

		app.handleInput()

		rl.BeginDrawing()
		rl.ClearBackground(toColor(diagram.BackgroundColor))
		app.drawDiagram()
		app.drawUI()
		rl.EndDrawing()
	}

	rl.CloseWindow()
	return nil
}
