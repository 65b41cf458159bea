// Package editor implements the placement and drag interaction state
// machine that drives a field registry. It is independent of any particular
// UI event-dispatch mechanism: callers translate their pointer/keyboard
// events into the exported transition methods.
package editor

import (
	"github.com/goliatone/go-signfields/pkg/field"
	"github.com/goliatone/go-signfields/pkg/geometry"
	"github.com/goliatone/go-signfields/pkg/registry"
)

// Tool enumerates the editor tools. The placement tools mirror the field
// types; ToolMove repositions existing fields.
type Tool string

const (
	ToolNone      Tool = ""
	ToolSignature Tool = "signature"
	ToolText      Tool = "text"
	ToolDate      Tool = "date"
	ToolCheckbox  Tool = "checkbox"
	ToolSignBlock Tool = "signblock"
	ToolMove      Tool = "move"
)

// fieldType maps a placement tool to the field type it creates.
func (t Tool) fieldType() (field.Type, bool) {
	switch t {
	case ToolSignature, ToolText, ToolDate, ToolCheckbox, ToolSignBlock:
		return field.Type(t), true
	}
	return "", false
}

// State names the controller's interaction states.
type State string

const (
	StateIdle         State = "idle"
	StateToolSelected State = "tool-selected"
	StateDragging     State = "dragging"
)

// Option configures a Controller at construction time.
type Option func(*Controller)

// WithOrigin sets the device-space origin of the document canvas.
func WithOrigin(origin geometry.Point) Option {
	return func(c *Controller) { c.origin = origin }
}

// WithScale sets the zoom scale shared with the registry.
func WithScale(scale float64) Option {
	return func(c *Controller) {
		if scale > 0 {
			c.scale = scale
		}
	}
}

// WithPage sets the page new fields are anchored to.
func WithPage(page int) Option {
	return func(c *Controller) {
		if page >= 1 {
			c.page = page
		}
	}
}

// Controller is the interaction state machine between pointer events and the
// field registry. All methods execute synchronously; pointer events must be
// delivered in arrival order because drag deltas are cumulative.
type Controller struct {
	reg    *registry.Registry
	state  State
	tool   Tool
	dragID string
	lastX  float64
	lastY  float64
	origin geometry.Point
	scale  float64
	page   int
}

// New wires a controller to the registry it drives.
func New(reg *registry.Registry, options ...Option) *Controller {
	c := &Controller{
		reg:   reg,
		state: StateIdle,
		scale: 1,
		page:  1,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(c)
	}
	c.reg.SetScale(c.scale)
	return c
}

// State reports the controller's current interaction state.
func (c *Controller) State() State {
	return c.state
}

// ActiveTool reports the tool currently armed, if any.
func (c *Controller) ActiveTool() Tool {
	return c.tool
}

// SetOrigin updates the device-space canvas origin, typically after the
// preview container is re-laid-out.
func (c *Controller) SetOrigin(origin geometry.Point) {
	c.origin = origin
}

// SetScale updates the zoom scale, keeping the registry in sync.
func (c *Controller) SetScale(scale float64) {
	if scale <= 0 {
		return
	}
	c.scale = scale
	c.reg.SetScale(scale)
}

// SetPage changes the page new fields are placed on.
func (c *Controller) SetPage(page int) {
	if page >= 1 {
		c.page = page
	}
}

// SelectTool arms a tool and moves to ToolSelected. An in-flight drag is
// terminated in place, matching the no-rollback cancellation contract.
func (c *Controller) SelectTool(tool Tool) {
	c.dragID = ""
	c.tool = tool
	if tool == ToolNone {
		c.state = StateIdle
		return
	}
	c.state = StateToolSelected
}

// PointerDown handles a press at device coordinates. On empty canvas with a
// placement tool armed it creates a field at the converted position and
// keeps the tool active for repeated placement. On an existing field it
// selects the field; with the move tool armed it also begins a drag.
// The hit field, when any, is resolved against the registry so a field's
// hit area always intercepts creation.
func (c *Controller) PointerDown(deviceX, deviceY float64) {
	if c.state != StateToolSelected {
		return
	}

	pos := geometry.ToDocumentSpace(deviceX, deviceY, c.origin, c.scale)
	hit, onField := c.reg.FieldAt(pos.X, pos.Y, c.page)

	if c.tool == ToolMove {
		if !onField {
			return
		}
		c.reg.Select(hit.ID)
		c.state = StateDragging
		c.dragID = hit.ID
		c.lastX, c.lastY = deviceX, deviceY
		return
	}

	if onField {
		// Creation only fires on canvas background.
		c.reg.Select(hit.ID)
		return
	}

	if t, ok := c.tool.fieldType(); ok {
		c.reg.Create(t, pos.X, pos.Y, c.page)
	}
}

// PointerMove advances an in-flight drag by the incremental delta from the
// last recorded pointer position. Incremental rather than absolute deltas
// keep repeated moves drift-free.
func (c *Controller) PointerMove(deviceX, deviceY float64) {
	if c.state != StateDragging {
		return
	}
	dx := deviceX - c.lastX
	dy := deviceY - c.lastY
	c.reg.Move(c.dragID, dx, dy)
	c.lastX, c.lastY = deviceX, deviceY
}

// PointerUp ends a drag, returning to ToolSelected(move). The dragged field
// keeps whatever position was last computed.
func (c *Controller) PointerUp() {
	c.endDrag()
}

// PointerLeave cancels a drag exactly like PointerUp; there is no mid-drag
// rollback.
func (c *Controller) PointerLeave() {
	c.endDrag()
}

// DeleteSelected removes the selected field regardless of the current tool
// or state. Removing the field being dragged also terminates the drag.
func (c *Controller) DeleteSelected() {
	id, ok := c.reg.Selected()
	if !ok {
		return
	}
	if c.state == StateDragging && c.dragID == id {
		c.endDrag()
	}
	c.reg.Remove(id)
}

func (c *Controller) endDrag() {
	if c.state != StateDragging {
		return
	}
	c.state = StateToolSelected
	c.dragID = ""
}
