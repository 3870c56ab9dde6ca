package statusbar

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"sidepad/internal/layout"
	"sidepad/internal/tui/state"
	"sidepad/internal/tui/util"
	chips "sidepad/internal/tui/widgets/tagchips"
)

type StatusBar struct {
	NoColor bool
}

func NewStatusBar(noColor bool) StatusBar { return StatusBar{NoColor: noColor} }

// View composes a concise status line reflecting document, layout and UI
// state, truncated to width.
func (b StatusBar) View(s state.UIState, tags []state.Tag, g layout.Geometry, width int) string {
	pos := fmt.Sprintf("%d:%d", s.Line, s.Col)
	side := "sidebar: hidden"
	if g.Visible {
		side = "sidebar: " + g.Orientation.String()
	}
	parts := []string{chips.View(tags, b.NoColor), pos, side}
	if s.Notice != "" {
		parts = append(parts, b.notice(s))
	}
	line := strings.Join(parts, "  ")
	if width > 0 {
		line = lipgloss.NewStyle().MaxWidth(width).Render(line)
	}
	return line
}

func (b StatusBar) notice(s state.UIState) string {
	if util.NoColor(b.NoColor) {
		if s.NoticeLevel == state.Error {
			return "! " + s.Notice
		}
		return s.Notice
	}
	p := util.DefaultPalette()
	if s.NoticeLevel == state.Error {
		return lipgloss.NewStyle().Foreground(p.Danger).Bold(true).Render(s.Notice)
	}
	return lipgloss.NewStyle().Foreground(p.Muted).Render(s.Notice)
}
