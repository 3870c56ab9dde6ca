// Package layout owns the sidebar's visibility and docking edge and derives
// the editor viewport from the window size.
package layout

import "math"

// SidebarState is the sidebar's position in its state machine.
type SidebarState int

const (
	Hidden SidebarState = iota
	VisibleLeft
	VisibleTop
)

func (s SidebarState) String() string {
	switch s {
	case VisibleLeft:
		return "visible(left)"
	case VisibleTop:
		return "visible(top)"
	default:
		return "hidden"
	}
}

// Controller reacts to sidebar and window events. Every method that can
// change geometry notifies subscribers exactly once per reflow.
type Controller struct {
	metrics     Metrics
	visible     bool
	orientation Orientation
	lastHandled Orientation
	window      Size
	extent      Size
	subs        []func(Geometry)
}

// New returns a controller with the sidebar hidden and docked left.
func New(m Metrics) *Controller {
	return &Controller{
		metrics:     m,
		orientation: Left,
		lastHandled: Unset,
		extent:      m.DefaultExtent,
	}
}

// Subscribe registers fn to receive the geometry of every reflow.
func (c *Controller) Subscribe(fn func(Geometry)) {
	c.subs = append(c.subs, fn)
}

func (c *Controller) reflow() Geometry {
	g := c.Geometry()
	for _, fn := range c.subs {
		fn(g)
	}
	return g
}

// Geometry computes the current layout without notifying anyone.
func (c *Controller) Geometry() Geometry {
	return Compute(c.metrics, Input{
		Window:      c.window,
		Visible:     c.visible,
		Orientation: c.orientation,
		Extent:      c.extent,
	})
}

// ToggleSidebar shows or hides the sidebar and reflows.
func (c *Controller) ToggleSidebar(visible bool) Geometry {
	c.visible = visible
	return c.reflow()
}

// SetOrientation stores o and reflows unless o was already handled.
// Toolkits report the same orientation repeatedly while a bar is dragged;
// the second report is a no-op. The stored orientation applies on the
// next show when the sidebar is hidden.
func (c *Controller) SetOrientation(o Orientation) (Geometry, bool) {
	if o != Left && o != Top {
		return c.Geometry(), false
	}
	c.orientation = o
	if o == c.lastHandled {
		return c.Geometry(), false
	}
	c.lastHandled = o
	return c.reflow(), true
}

// Resize records the outer window size and always reflows.
func (c *Controller) Resize(w, h int) Geometry {
	c.window = Size{W: max(w, 0), H: max(h, 0)}
	return c.reflow()
}

// ResizeSidebar records a user-driven change of the sidebar's extent
// along its docking axis, clamped to the current constraints.
func (c *Controller) ResizeSidebar(extent int) Geometry {
	lim := c.metrics.Limits(c.orientation)
	if c.orientation == Top {
		c.extent.H = c.clampExtent(extent, lim.MinH, lim.MaxH)
	} else {
		c.extent.W = c.clampExtent(extent, lim.MinW, lim.MaxW)
	}
	return c.reflow()
}

func (c *Controller) clampExtent(extent, lo, hi int) int {
	scale := c.metrics.Scale
	if scale <= 0 {
		scale = 1
	}
	return clamp(extent, int(math.Ceil(float64(lo)/scale)), int(math.Floor(float64(hi)/scale)))
}

// Extent returns the sidebar's extent along its current docking axis.
func (c *Controller) Extent() int {
	if c.orientation == Top {
		return c.extent.H
	}
	return c.extent.W
}

func (c *Controller) Visible() bool            { return c.visible }
func (c *Controller) Orientation() Orientation { return c.orientation }
func (c *Controller) Window() Size             { return c.window }

// State reports the sidebar state machine position.
func (c *Controller) State() SidebarState {
	switch {
	case !c.visible:
		return Hidden
	case c.orientation == Top:
		return VisibleTop
	default:
		return VisibleLeft
	}
}
