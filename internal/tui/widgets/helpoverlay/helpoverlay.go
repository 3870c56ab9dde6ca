package helpoverlay

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
)

// Section groups bindings under a title.
type Section struct {
	Title    string
	Bindings []key.Binding
}

type HelpOverlay struct {
	model help.Model
}

func NewHelpOverlay() HelpOverlay {
	h := help.New()
	h.ShowAll = true
	return HelpOverlay{model: h}
}

// View returns grouped key help with the focused pane indicated.
func (o HelpOverlay) View(focus string, sections []Section) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Help (focus: %s)\n", focus)
	for _, sec := range sections {
		fmt.Fprintf(&b, "\n%s:\n", sec.Title)
		for _, k := range sec.Bindings {
			if !k.Enabled() {
				continue
			}
			h := k.Help()
			fmt.Fprintf(&b, "  %-14s %s\n", h.Key, h.Desc)
		}
	}
	b.WriteString("\nf1/esc: close")
	return lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1).Render(b.String())
}

// Short renders a one-line hint for the status area.
func (o HelpOverlay) Short(bindings []key.Binding, width int) string {
	m := o.model
	m.Width = width
	return m.ShortHelpView(bindings)
}
