// Package confirm is the yes/no/cancel dialog. When given a diff it shows
// the unsaved changes in a scrollable preview.
package confirm

import (
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"sidepad/internal/document"
)

// AnswerMsg carries the user's choice.
type AnswerMsg struct {
	Answer document.Answer
}

type Dialog struct {
	message string
	preview viewport.Model
	hasDiff bool
}

func New() *Dialog {
	return &Dialog{preview: viewport.New(0, 0)}
}

// Start shows message and, when diff is non-empty, a preview sized to fit
// a width×height area.
func (d *Dialog) Start(message, diff string, width, height int) {
	d.message = message
	d.hasDiff = diff != ""
	d.preview = viewport.New(max(width-8, 10), max(min(height-10, 20), 3))
	d.preview.SetContent(diff)
}

func (d *Dialog) Message() string { return d.message }

func answer(a document.Answer) tea.Cmd {
	return func() tea.Msg { return AnswerMsg{Answer: a} }
}

// Update maps y/n/c (esc cancels) to answers and scrolls the preview.
func (d *Dialog) Update(msg tea.Msg) tea.Cmd {
	if k, ok := msg.(tea.KeyMsg); ok {
		switch strings.ToLower(k.String()) {
		case "y", "enter":
			return answer(document.Yes)
		case "n":
			return answer(document.No)
		case "c", "esc", "ctrl+c":
			return answer(document.Cancel)
		}
	}
	if !d.hasDiff {
		return nil
	}
	var cmd tea.Cmd
	d.preview, cmd = d.preview.Update(msg)
	return cmd
}

func (d *Dialog) View() string {
	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Bold(true).Render("Save changes") + "\n\n")
	b.WriteString(d.message + "\n")
	if d.hasDiff {
		b.WriteString("\n" + d.preview.View() + "\n")
	}
	b.WriteString("\ny: yes (save)   n: no (discard)   c/esc: cancel")
	return lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1).Render(b.String())
}
