package layout

import "math"

// Orientation is the window edge the sidebar docks to.
// Unset is only used for the last orientation the controller reacted to.
type Orientation int

const (
	Unset Orientation = iota
	Left
	Top
)

func (o Orientation) String() string {
	switch o {
	case Left:
		return "left"
	case Top:
		return "top"
	default:
		return "unset"
	}
}

// Other returns the opposite docking edge.
func (o Orientation) Other() Orientation {
	if o == Top {
		return Left
	}
	return Top
}

// Axis is how a toolkit reports a container's orientation.
type Axis int

const (
	Vertical Axis = iota
	Horizontal
)

// OrientationFromAxis maps a container axis to the docking edge: a
// vertical bar docks left, a horizontal bar docks top.
func OrientationFromAxis(a Axis) Orientation {
	if a == Horizontal {
		return Top
	}
	return Left
}

// Rect is a rectangle in layout units. W and H are never negative.
type Rect struct {
	X, Y, W, H int
}

// Size is a width/height pair.
type Size struct {
	W, H int
}

// Insets are the fixed margins kept free around the editor.
type Insets struct {
	Left, Top, Right, Bottom int
}

// Constraints bound the sidebar's own size.
type Constraints struct {
	MinW, MaxW int
	MinH, MaxH int
}

// Metrics configure geometry. Scale is the sidebar extent factor: the
// band the sidebar occupies is its extent multiplied by Scale, clamped to
// the constraints of the current orientation.
type Metrics struct {
	Margins       Insets
	Gap           int
	Scale         float64
	LeftLimits    Constraints
	TopLimits     Constraints
	DefaultExtent Size
}

// DefaultMetrics mirrors a pixel-based desktop window.
func DefaultMetrics() Metrics {
	return Metrics{
		Margins:       Insets{Left: 10, Top: 30, Right: 10, Bottom: 10},
		Gap:           10,
		Scale:         4,
		LeftLimits:    Constraints{MinW: 50, MaxW: 350, MinH: 25, MaxH: 4000},
		TopLimits:     Constraints{MinW: 50, MaxW: 4000, MinH: 25, MaxH: 75},
		DefaultExtent: Size{W: 30, H: 10},
	}
}

// CellMetrics is tuned for a terminal: one title row, one status row.
func CellMetrics() Metrics {
	return Metrics{
		Margins:       Insets{Left: 0, Top: 1, Right: 0, Bottom: 1},
		Gap:           1,
		Scale:         1,
		LeftLimits:    Constraints{MinW: 12, MaxW: 48, MinH: 3, MaxH: 4000},
		TopLimits:     Constraints{MinW: 12, MaxW: 4000, MinH: 3, MaxH: 10},
		DefaultExtent: Size{W: 24, H: 5},
	}
}

// Limits returns the sidebar constraints for an orientation.
func (m Metrics) Limits(o Orientation) Constraints {
	if o == Top {
		return m.TopLimits
	}
	return m.LeftLimits
}

// Input is everything geometry depends on.
type Input struct {
	Window      Size
	Visible     bool
	Orientation Orientation
	Extent      Size
}

// Geometry is the derived view-model of one layout pass.
type Geometry struct {
	Editor      Rect
	Sidebar     Rect
	Visible     bool
	Orientation Orientation
	Limits      Constraints
}

// Compute derives the editor and sidebar rectangles. It is a pure
// function of its arguments.
func Compute(m Metrics, in Input) Geometry {
	mg := m.Margins
	innerW := nonNeg(in.Window.W - mg.Left - mg.Right)
	innerH := nonNeg(in.Window.H - mg.Top - mg.Bottom)
	g := Geometry{
		Editor:      Rect{X: mg.Left, Y: mg.Top, W: innerW, H: innerH},
		Visible:     in.Visible,
		Orientation: in.Orientation,
		Limits:      m.Limits(in.Orientation),
	}
	if !in.Visible {
		return g
	}
	switch in.Orientation {
	case Top:
		band := min(scaled(in.Extent.H, m.Scale, g.Limits.MinH, g.Limits.MaxH), innerH)
		g.Sidebar = Rect{X: mg.Left, Y: mg.Top, W: innerW, H: band}
		g.Editor.Y = mg.Top + band + m.Gap
		g.Editor.H = nonNeg(innerH - band - m.Gap)
	default:
		band := min(scaled(in.Extent.W, m.Scale, g.Limits.MinW, g.Limits.MaxW), innerW)
		g.Sidebar = Rect{X: mg.Left, Y: mg.Top, W: band, H: innerH}
		g.Editor.X = mg.Left + band + m.Gap
		g.Editor.W = nonNeg(innerW - band - m.Gap)
	}
	return g
}

func scaled(extent int, scale float64, lo, hi int) int {
	if scale <= 0 {
		scale = 1
	}
	return clamp(int(math.Round(float64(extent)*scale)), lo, hi)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		v = lo
	}
	if hi > 0 && v > hi {
		v = hi
	}
	return v
}

func nonNeg(v int) int {
	if v < 0 {
		return 0
	}
	return v
}
