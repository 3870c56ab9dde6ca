// Package sidebar is the dockable bar listing recently used files.
package sidebar

import (
	"os"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"sidepad/internal/layout"
	"sidepad/internal/tui/util"
)

// Entry is one clickable item.
type Entry struct {
	Label      string
	OnActivate func() tea.Cmd
}

type Sidebar struct {
	entries []Entry
	cursor  int
	visible bool
	focused bool
	geom    layout.Geometry
	onAxis  []func(layout.Axis)
	noColor bool
}

func New(noColor bool) *Sidebar { return &Sidebar{noColor: noColor} }

func (s *Sidebar) Show()         { s.visible = true }
func (s *Sidebar) Hide()         { s.visible = false; s.focused = false }
func (s *Sidebar) Visible() bool { return s.visible }
func (s *Sidebar) Focus()        { s.focused = s.visible }
func (s *Sidebar) Blur()         { s.focused = false }
func (s *Sidebar) Focused() bool { return s.focused }

// AddEntry appends an item. Labels are unique; a repeated label is ignored.
func (s *Sidebar) AddEntry(label string, onActivate func() tea.Cmd) bool {
	for _, e := range s.entries {
		if e.Label == label {
			return false
		}
	}
	s.entries = append(s.entries, Entry{Label: label, OnActivate: onActivate})
	return true
}

func (s *Sidebar) Entries() []Entry { return s.entries }
func (s *Sidebar) Cursor() int      { return s.cursor }

// OnOrientationChanged subscribes fn to axis changes reported by Reorient.
func (s *Sidebar) OnOrientationChanged(fn func(layout.Axis)) {
	s.onAxis = append(s.onAxis, fn)
}

// Reorient lays the bar out along axis and notifies subscribers. Like a
// toolkit toolbar it reports every request, including repeats.
func (s *Sidebar) Reorient(axis layout.Axis) {
	for _, fn := range s.onAxis {
		fn(axis)
	}
}

// Axis is the bar's current axis.
func (s *Sidebar) Axis() layout.Axis {
	if s.geom.Orientation == layout.Top {
		return layout.Horizontal
	}
	return layout.Vertical
}

// SetGeometry applies a layout pass.
func (s *Sidebar) SetGeometry(g layout.Geometry) { s.geom = g }

// Update handles navigation and activation while focused.
func (s *Sidebar) Update(msg tea.Msg) tea.Cmd {
	k, ok := msg.(tea.KeyMsg)
	if !ok || !s.focused || len(s.entries) == 0 {
		return nil
	}
	prev, next := "up", "down"
	if s.geom.Orientation == layout.Top {
		prev, next = "left", "right"
	}
	switch k.String() {
	case prev, "k":
		if s.cursor > 0 {
			s.cursor--
		}
	case next, "j":
		if s.cursor < len(s.entries)-1 {
			s.cursor++
		}
	case "home":
		s.cursor = 0
	case "end":
		s.cursor = len(s.entries) - 1
	case "enter", " ":
		if e := s.entries[s.cursor]; e.OnActivate != nil {
			return e.OnActivate()
		}
	}
	return nil
}

// View renders the bar inside its layout rectangle.
func (s *Sidebar) View() string {
	r := s.geom.Sidebar
	if !s.visible || r.W < 2 || r.H < 2 {
		return ""
	}
	p := util.DefaultPalette()
	border := p.Muted
	if s.focused {
		border = p.Primary
	}
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Width(r.W - 2).
		Height(r.H - 2).
		MaxWidth(r.W).
		MaxHeight(r.H)

	inner := r.W - 2
	var body string
	if s.geom.Orientation == layout.Top {
		body = s.horizontal(inner)
	} else {
		body = s.vertical(inner, r.H-2)
	}
	return box.Render(body)
}

func (s *Sidebar) vertical(width, height int) string {
	if len(s.entries) == 0 {
		return s.faint(ShortLabel("(no recent files)", width))
	}
	// keep the cursor in view
	start := 0
	if height > 0 && s.cursor >= height {
		start = s.cursor - height + 1
	}
	var b strings.Builder
	for i := start; i < len(s.entries) && i-start < height; i++ {
		label := ShortLabel(s.entries[i].Label, width-2)
		if i == s.cursor && s.focused {
			b.WriteString(s.selected("> " + label))
		} else {
			b.WriteString("  " + label)
		}
		b.WriteString("\n")
	}
	return strings.TrimSuffix(b.String(), "\n")
}

func (s *Sidebar) horizontal(width int) string {
	if len(s.entries) == 0 {
		return s.faint("(no recent files)")
	}
	parts := make([]string, 0, len(s.entries))
	for i, e := range s.entries {
		label := ShortLabel(e.Label, 24)
		if i == s.cursor && s.focused {
			label = s.selected("[" + label + "]")
		} else {
			label = " " + label + " "
		}
		parts = append(parts, label)
	}
	return lipgloss.NewStyle().MaxWidth(width).Render(strings.Join(parts, "│"))
}

func (s *Sidebar) selected(str string) string {
	if util.NoColor(s.noColor) {
		return str
	}
	return lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "205", Dark: "213"}).Bold(true).Render(str)
}

func (s *Sidebar) faint(str string) string {
	if util.NoColor(s.noColor) {
		return str
	}
	return lipgloss.NewStyle().Faint(true).Render(str)
}

// ShortLabel abbreviates the home directory to ~ and trims from the left
// so the file name stays visible.
func ShortLabel(p string, width int) string {
	if h, err := os.UserHomeDir(); err == nil {
		p = tildeHome(p, h)
	}
	r := []rune(p)
	if width <= 0 || len(r) <= width {
		return p
	}
	if width == 1 {
		return "…"
	}
	return "…" + string(r[len(r)-width+1:])
}

// tildeHome replaces a leading home directory with ~. Only whole path
// elements match: /home/al does not shorten /home/alice.
func tildeHome(p, home string) string {
	home = strings.TrimSuffix(home, string(filepath.Separator))
	if home == "" {
		return p
	}
	if p == home {
		return "~"
	}
	if strings.HasPrefix(p, home+string(filepath.Separator)) {
		return "~" + p[len(home):]
	}
	return p
}
