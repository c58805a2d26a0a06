package editor

import (
	"errors"

	"github.com/smallbiznis/stencil/internal/designer/domain"
	"github.com/smallbiznis/stencil/internal/designer/geometry"
)

// DragState models the pointer interaction: idle -> dragging -> idle.
type DragState int

const (
	DragIdle DragState = iota
	Dragging
)

var (
	ErrNotDragging     = errors.New("not_dragging")
	ErrAlreadyDragging = errors.New("already_dragging")
)

// DragController translates raw pointer deltas into clamped position
// updates against the store. Updates are applied immediately on every
// move so the canvas feedback is live; pointer-up only finalizes.
type DragController struct {
	store  *Store
	canvas geometry.CanvasPixels

	state       DragState
	componentID string
	origin      domain.Position
	accumX      float64
	accumY      float64
}

// NewDragController binds a controller to a store and the current
// on-screen canvas extent.
func NewDragController(store *Store, canvas geometry.CanvasPixels) *DragController {
	return &DragController{store: store, canvas: canvas}
}

// State reports the current machine state.
func (d *DragController) State() DragState { return d.state }

// Resize updates the live canvas pixel extent mid-session (window
// resize). Percent coordinates are unaffected.
func (d *DragController) Resize(canvas geometry.CanvasPixels) { d.canvas = canvas }

// Begin starts a drag on pointer-down. Locked components never enter
// the dragging state.
func (d *DragController) Begin(componentID string) error {
	if d.state == Dragging {
		return ErrAlreadyDragging
	}
	comp, err := d.store.Component(componentID)
	if err != nil {
		return err
	}
	if comp.IsLocked {
		return ErrComponentLocked
	}
	d.state = Dragging
	d.componentID = componentID
	d.origin = comp.Position
	d.accumX = 0
	d.accumY = 0
	return nil
}

// Move applies a pointer movement in pixels. The proposed position is
// origin plus the accumulated delta, clamped by the store; clamping is
// not an error, the component just stops at the edge.
func (d *DragController) Move(dxPx, dyPx float64) error {
	if d.state != Dragging {
		return ErrNotDragging
	}
	dx, dy := geometry.DeltaFromPixels(dxPx, dyPx, d.canvas)
	d.accumX += dx
	d.accumY += dy
	proposed := domain.Position{X: d.origin.X + d.accumX, Y: d.origin.Y + d.accumY}
	return d.store.UpdatePosition(d.componentID, proposed)
}

// End commits the drag on pointer-up. The last clamped position is
// final; dropping outside the canvas needs no special handling because
// every intermediate move was already clamped.
func (d *DragController) End() (domain.Position, error) {
	if d.state != Dragging {
		return domain.Position{}, ErrNotDragging
	}
	comp, err := d.store.Component(d.componentID)
	d.state = DragIdle
	d.componentID = ""
	if err != nil {
		return domain.Position{}, err
	}
	return comp.Position, nil
}
