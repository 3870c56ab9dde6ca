package layout

import "testing"

func TestHiddenGeometryUsesMargins(t *testing.T) {
	for _, o := range []Orientation{Left, Top} {
		c := New(DefaultMetrics())
		c.SetOrientation(o)
		g := c.Resize(700, 700)
		want := Rect{X: 10, Y: 30, W: 680, H: 660}
		if g.Editor != want {
			t.Fatalf("orientation %v: got %+v want %+v", o, g.Editor, want)
		}
		if g.Editor.W >= 700 || g.Editor.H >= 700 {
			t.Fatalf("editor must be smaller than the window")
		}
	}
}

func TestVisibleLeftAndTop(t *testing.T) {
	c := New(DefaultMetrics())
	c.Resize(700, 700)
	g := c.ToggleSidebar(true)
	// extent 30 * scale 4 = 120 wide band
	if g.Sidebar.W != 120 || g.Editor.X != 10+120+10 || g.Editor.W != 680-120-10 || g.Editor.H != 660 {
		t.Fatalf("left geometry: %+v", g)
	}
	if g.Limits.MaxW != 350 || g.Limits.MaxH != 4000 {
		t.Fatalf("left limits should be narrow and tall: %+v", g.Limits)
	}

	g, _ = c.SetOrientation(Top)
	// extent 10 * scale 4 = 40 high band
	if g.Sidebar.H != 40 || g.Editor.Y != 30+40+10 || g.Editor.H != 660-40-10 || g.Editor.W != 680 {
		t.Fatalf("top geometry: %+v", g)
	}
	if g.Limits.MaxH != 75 || g.Limits.MaxW != 4000 {
		t.Fatalf("top limits should be wide and short: %+v", g.Limits)
	}
}

func TestToggleIsPure(t *testing.T) {
	c := New(DefaultMetrics())
	c.Resize(700, 700)
	first := c.ToggleSidebar(true)
	c.ToggleSidebar(false)
	second := c.ToggleSidebar(true)
	if first != second {
		t.Fatalf("geometry drifted: %+v vs %+v", first, second)
	}
}

func TestOrientationDebounce(t *testing.T) {
	c := New(DefaultMetrics())
	reflows := 0
	c.Subscribe(func(Geometry) { reflows++ })
	if _, ok := c.SetOrientation(Left); !ok {
		t.Fatalf("first orientation report should reflow")
	}
	if _, ok := c.SetOrientation(Left); ok {
		t.Fatalf("repeated orientation should not reflow")
	}
	if reflows != 1 {
		t.Fatalf("expected 1 reflow, got %d", reflows)
	}
	c.SetOrientation(Top)
	c.Resize(10, 10)
	c.Resize(10, 10)
	if reflows != 4 {
		t.Fatalf("resizes always reflow, got %d", reflows)
	}
}

func TestOrientationWhileHidden(t *testing.T) {
	c := New(DefaultMetrics())
	c.Resize(700, 700)
	if c.State() != Hidden {
		t.Fatalf("initial state: %v", c.State())
	}
	g, _ := c.SetOrientation(Top)
	if g.Editor != (Rect{X: 10, Y: 30, W: 680, H: 660}) || c.State() != Hidden {
		t.Fatalf("orientation must not show the sidebar")
	}
	c.ToggleSidebar(true)
	if c.State() != VisibleTop {
		t.Fatalf("expected visible(top), got %v", c.State())
	}
	c.SetOrientation(Left)
	if c.State() != VisibleLeft {
		t.Fatalf("expected visible(left), got %v", c.State())
	}
	c.ToggleSidebar(false)
	if c.State() != Hidden {
		t.Fatalf("expected hidden, got %v", c.State())
	}
}

func TestNeverNegative(t *testing.T) {
	c := New(DefaultMetrics())
	c.ToggleSidebar(true)
	for _, sz := range []Size{{0, 0}, {15, 15}, {100, 35}, {-5, -5}} {
		for _, o := range []Orientation{Left, Top} {
			c.SetOrientation(o)
			g := c.Resize(sz.W, sz.H)
			if g.Editor.W < 0 || g.Editor.H < 0 || g.Sidebar.W < 0 || g.Sidebar.H < 0 {
				t.Fatalf("negative geometry for %+v/%v: %+v", sz, o, g)
			}
		}
	}
}

func TestResizeSidebarClamps(t *testing.T) {
	c := New(CellMetrics())
	c.Resize(120, 40)
	c.ToggleSidebar(true)
	g := c.ResizeSidebar(1000)
	if g.Sidebar.W != 48 || c.Extent() != 48 {
		t.Fatalf("expected clamp to max width, got %+v extent %d", g.Sidebar, c.Extent())
	}
	g = c.ResizeSidebar(1)
	if g.Sidebar.W != 12 {
		t.Fatalf("expected clamp to min width, got %+v", g.Sidebar)
	}
	c.SetOrientation(Top)
	g = c.ResizeSidebar(99)
	if g.Sidebar.H != 10 || g.Editor.Y != 1+10+1 {
		t.Fatalf("top clamp: %+v", g)
	}
}

func TestOrientationFromAxis(t *testing.T) {
	if OrientationFromAxis(Vertical) != Left || OrientationFromAxis(Horizontal) != Top {
		t.Fatalf("axis mapping is wrong")
	}
	if Left.Other() != Top || Top.Other() != Left {
		t.Fatalf("Other is wrong")
	}
}
