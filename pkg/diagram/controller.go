package diagram

import (
	"context"
	"log/slog"

	"github.com/philipparndt/golens/pkg/geometry"
)

// DragPhase is the per-point drag state
type DragPhase int

const (
	Idle DragPhase = iota
	Dragging
)

// String returns the phase name
func (p DragPhase) String() string {
	if p == Dragging {
		return "dragging"
	}
	return "idle"
}

// Controller owns the diagram state and reacts to pointer drags on the two
// control points. It is not safe for concurrent use: every call must come
// from the goroutine that delivers input events.
type Controller struct {
	cfg     Config
	adapter RenderAdapter
	logger  *slog.Logger

	state  State
	pushed []Primitive
	phases [2]DragPhase
}

// NewController derives the initial diagram from layout, creates all
// primitives on the adapter and requests the first draw
func NewController(cfg Config, adapter RenderAdapter, layout Layout, opts ...Option) *Controller {
	c := &Controller{
		cfg:     cfg,
		adapter: adapter,
		logger:  newNopLogger(),
	}
	for _, opt := range opts {
		opt(c)
	}

	c.state = Initial(cfg, layout)
	c.pushed = Primitives(cfg, c.state)
	create(adapter, c.pushed)

	c.logger.Debug("diagram created",
		"object", c.state.Object.Height,
		"focalPrime", c.state.Lens.FocalPrime,
		"focalLength", c.state.Lens.FocalLength)

	return c
}

// State returns a snapshot of the current diagram
func (c *Controller) State() State {
	return c.state
}

// Phase returns the drag phase of a control point
func (c *Controller) Phase(id PointID) DragPhase {
	return c.phases[id]
}

// DragMove handles a pointer move while dragging id and returns the
// position actually applied after clamping and snapping
func (c *Controller) DragMove(id PointID, proposed geometry.Point2) geometry.Point2 {
	if c.phases[id] == Idle {
		c.beginDrag(id)
	}
	return c.apply(id, proposed)
}

// DragEnd handles the pointer release for id. The final position gets the
// same clamp and snap treatment as a move.
func (c *Controller) DragEnd(id PointID, proposed geometry.Point2) geometry.Point2 {
	applied := c.apply(id, proposed)
	c.phases[id] = Idle
	c.logger.Debug("drag ended", "point", id, "at", applied)
	return applied
}

// HitTest returns the draggable point nearest to p within the hit radius.
// The object point wins when both are equally close.
func (c *Controller) HitTest(p geometry.Point2) (PointID, bool) {
	objectDist := p.Distance(c.state.Object.Height)
	focalDist := p.Distance(c.state.Lens.FocalPrime)

	switch {
	case objectDist <= c.cfg.HitRadius && objectDist <= focalDist:
		return ObjectPoint, true
	case focalDist <= c.cfg.HitRadius:
		return FocalPrimePoint, true
	default:
		return ObjectPoint, false
	}
}

// Reset moves both control points to a new layout, ending any drag
func (c *Controller) Reset(layout Layout) {
	c.phases = [2]DragPhase{}
	c.commit(Initial(c.cfg, layout))
	c.logger.Info("diagram reset",
		"object", c.state.Object.Height,
		"focalPrime", c.state.Lens.FocalPrime)
}

// beginDrag starts a drag on id. A single pointer drags one point at a
// time, so any other drag in progress is ended.
func (c *Controller) beginDrag(id PointID) {
	for other := range c.phases {
		if PointID(other) != id && c.phases[other] == Dragging {
			c.logger.Warn("drag started while another was active", "point", id, "active", PointID(other))
			c.phases[other] = Idle
		}
	}
	c.phases[id] = Dragging
}

// apply runs one recompute for id and pushes the result
func (c *Controller) apply(id PointID, proposed geometry.Point2) geometry.Point2 {
	next := Recompute(c.cfg, c.state, Event{Point: id, Proposed: proposed})
	c.commit(next)

	applied := next.Position(id)
	if c.logger.Enabled(context.Background(), slog.LevelDebug) {
		c.logger.Debug("recompute",
			"point", id,
			"proposed", proposed,
			"applied", applied,
			"focalLength", next.Lens.FocalLength,
			"image", next.Optics.Image,
			"onLensPlane", next.OnLensPlane,
			"atFocalPoint", next.AtFocalPoint)
	}
	return applied
}

// commit stores next and sends the changed primitives to the adapter
func (c *Controller) commit(next State) {
	prims := Primitives(c.cfg, next)
	push(c.adapter, c.pushed, prims)
	c.state = next
	c.pushed = prims
}
