package app

import (
	"sync/atomic"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/philipparndt/golens/pkg/diagram"
	"github.com/philipparndt/golens/pkg/geometry"
	"github.com/philipparndt/golens/pkg/watcher"
)

// DiagramData holds the controller and the scene it drives
type DiagramData struct {
	cfg        diagram.Config
	scene      *diagram.Scene
	controller *diagram.Controller
	layout     diagram.Layout // Layout restored by reset
	presetName string
}

// ViewSettings holds display settings
type ViewSettings struct {
	showGrid     bool
	showTicks    bool
	showReadouts bool
	showHelp     bool
}

// InteractionState holds mouse and drag state
type InteractionState struct {
	dragging      diagram.PointID
	isDragging    bool
	grabOffset    geometry.Point2
	hovered       diagram.PointID
	hasHovered    bool
	lastMousePos  rl.Vector2
	lastProposed  rl.Vector2
	lastSnapped   bool
	snapFlashTime time.Time
}

// FileWatchState holds preset watching and reload state
type FileWatchState struct {
	presetFile  string
	fileWatcher *watcher.Watcher
	needsReload atomic.Bool // Set by the watcher goroutine, consumed by the render loop
	lastReload  time.Time
	lastError   string
}

// UIState holds UI-related state
type UIState struct {
	font     rl.Font
	fontSize float32
}
