package app

import (
	"context"
	"fmt"
	"time"

	"github.com/philipparndt/golens/internal/preset"
	"github.com/philipparndt/golens/pkg/watcher"
)

// setupFileWatcher watches the preset file and flags reloads for the render loop
func (app *App) setupFileWatcher(ctx context.Context) error {
	fw, err := watcher.New(app.FileWatch.presetFile, watcher.DefaultDebounce, app.logger)
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}

	fw.Start(ctx, func(path string) {
		app.logger.Info("preset changed", "path", path)
		app.FileWatch.needsReload.Store(true)
	})

	app.FileWatch.fileWatcher = fw
	app.logger.Info("watching preset", "path", fw.Path())
	return nil
}

// reloadPreset re-reads the preset file and resets the diagram to its layout.
// A broken preset keeps the current diagram and reports the error in the HUD.
func (app *App) reloadPreset() {
	p, err := preset.Load(app.FileWatch.presetFile, app.Diagram.cfg)
	if err != nil {
		app.logger.Warn("preset reload failed", "err", err)
		app.FileWatch.lastError = err.Error()
		return
	}

	app.FileWatch.lastError = ""
	app.FileWatch.lastReload = time.Now()
	app.Diagram.layout = p.Layout
	app.Diagram.presetName = p.Name
	app.Interaction.isDragging = false
	app.Diagram.controller.Reset(p.Layout)
}
