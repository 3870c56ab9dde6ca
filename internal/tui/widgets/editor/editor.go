// Package editor is the text buffer widget: a textarea that reports every
// content change to its subscribers.
package editor

import (
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"sidepad/internal/config"
	"sidepad/internal/layout"
	"sidepad/internal/tui/util"
)

// MaxLines is the most lines the buffer can hold.
const MaxLines = 10000

type Editor struct {
	ta        textarea.Model
	settings  config.Settings
	listeners []func()
}

// New builds the buffer with the display settings fixed at construction.
func New(s config.Settings) *Editor {
	ta := textarea.New()
	ta.Prompt = ""
	ta.ShowLineNumbers = true
	ta.CharLimit = 0
	ta.MaxHeight = 0
	ta.Placeholder = "Start typing…"

	p := util.PaletteFor(s)
	text := lipgloss.NewStyle().Foreground(p.Text).Bold(s.Bold())
	ta.FocusedStyle.Text = text
	ta.FocusedStyle.Base = lipgloss.NewStyle().Background(p.Back)
	ta.BlurredStyle.Text = text.Faint(true)
	ta.BlurredStyle.Base = lipgloss.NewStyle().Background(p.Back)
	ta.Focus()
	return &Editor{ta: ta, settings: s}
}

// OnChanged subscribes fn to content changes, including SetText.
func (e *Editor) OnChanged(fn func()) { e.listeners = append(e.listeners, fn) }

func (e *Editor) notify() {
	for _, fn := range e.listeners {
		fn()
	}
}

func (e *Editor) Text() string { return e.ta.Value() }

// SetText replaces the whole buffer and notifies subscribers. The text
// is stored normalized; callers compare Text with s to detect conversion.
func (e *Editor) SetText(s string) {
	e.ta.SetValue(Normalize(s, e.settings.TabWidth))
	e.notify()
}

// Normalize converts CRLF and lone CR line endings to LF and expands tabs
// to tabWidth spaces, matching what typing Tab inserts.
func Normalize(s string, tabWidth int) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")
	return strings.ReplaceAll(s, "\t", strings.Repeat(" ", max(tabWidth, 0)))
}

// LineCount is the number of buffer lines s occupies once normalized.
func LineCount(s string) int {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.Count(s, "\n") + strings.Count(s, "\r") + 1
}

func (e *Editor) Settings() config.Settings { return e.settings }

// Cursor returns the 0-based row and column.
func (e *Editor) Cursor() (int, int) {
	li := e.ta.LineInfo()
	return e.ta.Line(), li.StartColumn + li.ColumnOffset
}

// SetRect sizes the textarea to the editor rectangle.
func (e *Editor) SetRect(r layout.Rect) {
	e.ta.SetWidth(r.W)
	e.ta.SetHeight(r.H)
}

func (e *Editor) Focus()        { e.ta.Focus() }
func (e *Editor) Blur()         { e.ta.Blur() }
func (e *Editor) Focused() bool { return e.ta.Focused() }

// Update forwards msg to the textarea. Tab inserts TabWidth spaces.
func (e *Editor) Update(msg tea.Msg) tea.Cmd {
	before := e.ta.Value()
	var cmd tea.Cmd
	if k, ok := msg.(tea.KeyMsg); ok && k.Type == tea.KeyTab && e.ta.Focused() {
		e.ta.InsertString(strings.Repeat(" ", e.settings.TabWidth))
	} else {
		e.ta, cmd = e.ta.Update(msg)
	}
	if e.ta.Value() != before {
		e.notify()
	}
	return cmd
}

func (e *Editor) View() string { return e.ta.View() }
