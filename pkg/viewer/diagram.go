// Package viewer provides a fyne widget that shows the lens diagram and lets
// the user drag its control points.
package viewer

import (
	"image/color"
	"log/slog"
	"slices"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"
	"github.com/philipparndt/golens/pkg/diagram"
	"github.com/philipparndt/golens/pkg/geometry"
)

// DiagramWidget draws the diagram with fyne canvas objects. It is the
// controller's RenderAdapter, so every drag updates only the canvas objects
// whose primitives changed.
type DiagramWidget struct {
	widget.BaseWidget

	cfg        diagram.Config
	controller *diagram.Controller

	background []fyne.CanvasObject
	markers    map[diagram.PrimitiveID]*canvas.Circle
	polylines  map[diagram.PrimitiveID][]*canvas.Line
	visible    map[diagram.PrimitiveID]bool
	order      []diagram.PrimitiveID

	dragging   diagram.PointID
	isDragging bool
	missed     bool // gesture started away from every control point
	grab       geometry.Point2
	lastPos    geometry.Point2

	onChange func(diagram.State)
}

// NewDiagramWidget creates the widget and its controller
func NewDiagramWidget(cfg diagram.Config, layout diagram.Layout, logger *slog.Logger) *DiagramWidget {
	w := &DiagramWidget{
		cfg:       cfg,
		markers:   make(map[diagram.PrimitiveID]*canvas.Circle),
		polylines: make(map[diagram.PrimitiveID][]*canvas.Line),
		visible:   make(map[diagram.PrimitiveID]bool),
	}
	w.ExtendBaseWidget(w)
	w.background = buildBackground(cfg)

	var opts []diagram.Option
	if logger != nil {
		opts = append(opts, diagram.WithLogger(logger))
	}
	w.controller = diagram.NewController(cfg, w, layout, opts...)
	return w
}

// SetOnChange sets the callback invoked after every redraw request
func (w *DiagramWidget) SetOnChange(callback func(diagram.State)) {
	w.onChange = callback
	if callback != nil {
		callback(w.controller.State())
	}
}

// State returns the current diagram state
func (w *DiagramWidget) State() diagram.State {
	return w.controller.State()
}

// Reset moves both control points to layout. Call from the UI goroutine.
func (w *DiagramWidget) Reset(layout diagram.Layout) {
	w.isDragging = false
	w.controller.Reset(layout)
}

// CreatePoint adds a circle marker
func (w *DiagramWidget) CreatePoint(id diagram.PrimitiveID, at geometry.Point2, radius float64, visible bool) {
	c := canvas.NewCircle(diagram.StyleOf(id).Color)
	size := float32(2 * radius)
	c.Resize(fyne.NewSize(size, size))
	w.markers[id] = c
	w.order = append(w.order, id)
	w.SetPosition(id, at)
	w.SetVisible(id, visible)
}

// CreatePolyline adds a polyline made of line segments
func (w *DiagramWidget) CreatePolyline(id diagram.PrimitiveID, points []geometry.Point2, visible bool) {
	w.order = append(w.order, id)
	w.visible[id] = visible
	w.SetPoints(id, points)
}

// SetPosition moves a circle marker so it stays centered on at
func (w *DiagramWidget) SetPosition(id diagram.PrimitiveID, at geometry.Point2) {
	c, ok := w.markers[id]
	if !ok {
		return
	}
	r := c.Size().Width / 2
	c.Move(fyne.NewPos(float32(at.X)-r, float32(at.Y)-r))
}

// SetVisible shows or hides a primitive
func (w *DiagramWidget) SetVisible(id diagram.PrimitiveID, visible bool) {
	w.visible[id] = visible
	if c, ok := w.markers[id]; ok {
		setShown(c, visible)
	}
	for _, l := range w.polylines[id] {
		setShown(l, visible)
	}
}

// SetPoints rebuilds the segments of a polyline
func (w *DiagramWidget) SetPoints(id diagram.PrimitiveID, points []geometry.Point2) {
	style := diagram.StyleOf(id)
	var lines []*canvas.Line
	for i := 1; i < len(points); i++ {
		l := canvas.NewLine(style.Color)
		l.StrokeWidth = float32(style.StrokeWidth)
		l.Position1 = fyne.NewPos(float32(points[i-1].X), float32(points[i-1].Y))
		l.Position2 = fyne.NewPos(float32(points[i].X), float32(points[i].Y))
		setShown(l, w.visible[id])
		lines = append(lines, l)
	}
	w.polylines[id] = lines
}

// BatchDraw refreshes the widget and notifies the change callback
func (w *DiagramWidget) BatchDraw() {
	w.Refresh()
	if w.onChange != nil && w.controller != nil {
		w.onChange(w.controller.State())
	}
}

// Dragged moves the control point the gesture started on. A gesture that
// starts on empty canvas is ignored until it ends.
func (w *DiagramWidget) Dragged(event *fyne.DragEvent) {
	if w.missed {
		return
	}
	pos := geometry.NewPoint2(float64(event.Position.X), float64(event.Position.Y))

	if !w.isDragging {
		start := pos.Sub(geometry.NewPoint2(float64(event.Dragged.DX), float64(event.Dragged.DY)))
		id, ok := w.controller.HitTest(start)
		if !ok {
			w.missed = true
			return
		}
		w.dragging = id
		w.isDragging = true
		w.grab = start.Sub(w.controller.State().Position(id))
	}

	w.lastPos = pos.Sub(w.grab)
	w.controller.DragMove(w.dragging, w.lastPos)
}

// DragEnd releases the dragged control point at its last position
func (w *DiagramWidget) DragEnd() {
	w.missed = false
	if !w.isDragging {
		return
	}
	w.isDragging = false
	w.controller.DragEnd(w.dragging, w.lastPos)
}

// CreateRenderer creates the renderer for the widget
func (w *DiagramWidget) CreateRenderer() fyne.WidgetRenderer {
	r := &diagramWidgetRenderer{widget: w}
	r.rebuild()
	return r
}

// objects lists the background followed by the primitives in creation order
func (w *DiagramWidget) objects() []fyne.CanvasObject {
	objs := slices.Clone(w.background)
	for _, id := range w.order {
		if c, ok := w.markers[id]; ok {
			objs = append(objs, c)
		}
		for _, l := range w.polylines[id] {
			objs = append(objs, l)
		}
	}
	return objs
}

func setShown(obj fyne.CanvasObject, visible bool) {
	if visible {
		obj.Show()
	} else {
		obj.Hide()
	}
}

// buildBackground creates the grid, axes, ticks and labels
func buildBackground(cfg diagram.Config) []fyne.CanvasObject {
	var objs []fyne.CanvasObject

	bg := canvas.NewRectangle(diagram.BackgroundColor)
	bg.Resize(fyne.NewSize(float32(cfg.Width), float32(cfg.Height)))
	objs = append(objs, bg)

	segment := func(s diagram.Segment, col color.Color) {
		l := canvas.NewLine(col)
		l.StrokeWidth = 1
		l.Position1 = fyne.NewPos(float32(s.From.X), float32(s.From.Y))
		l.Position2 = fyne.NewPos(float32(s.To.X), float32(s.To.Y))
		objs = append(objs, l)
	}
	text := func(label diagram.Label, size float32) {
		t := canvas.NewText(label.Text, diagram.AxisColor)
		t.TextSize = size
		t.Move(fyne.NewPos(float32(label.At.X), float32(label.At.Y)))
		objs = append(objs, t)
	}

	for _, s := range diagram.GridLines(cfg) {
		segment(s, diagram.GridColor)
	}
	for _, s := range diagram.Axes(cfg) {
		segment(s, diagram.AxisColor)
	}
	for _, tick := range diagram.Ticks(cfg) {
		segment(tick.Mark, diagram.AxisColor)
		text(tick.Label, 10)
	}
	for _, label := range diagram.AxisLabels(cfg) {
		text(label, 12)
	}
	return objs
}

// diagramWidgetRenderer implements fyne.WidgetRenderer
type diagramWidgetRenderer struct {
	widget  *DiagramWidget
	objects []fyne.CanvasObject
}

func (r *diagramWidgetRenderer) rebuild() {
	r.objects = r.widget.objects()
}

func (r *diagramWidgetRenderer) Layout(fyne.Size) {}

func (r *diagramWidgetRenderer) MinSize() fyne.Size {
	return fyne.NewSize(float32(r.widget.cfg.Width), float32(r.widget.cfg.Height))
}

func (r *diagramWidgetRenderer) Refresh() {
	r.rebuild()
	for _, obj := range r.objects {
		canvas.Refresh(obj)
	}
}

func (r *diagramWidgetRenderer) Objects() []fyne.CanvasObject {
	return r.objects
}

func (r *diagramWidgetRenderer) Destroy() {}
