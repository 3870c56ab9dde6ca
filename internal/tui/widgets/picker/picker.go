// Package picker is the modal file-location prompt used for open and save.
package picker

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Mode tells the caller which dialog produced a ChosenMsg.
type Mode int

const (
	Open Mode = iota
	Save
)

// maxSuggestions bounds the completion list.
const maxSuggestions = 8

// ChosenMsg is sent when the prompt closes. OK is false when dismissed.
type ChosenMsg struct {
	Mode Mode
	Path string
	OK   bool
}

type Picker struct {
	input   textinput.Model
	mode    Mode
	title   string
	suggest []string
}

func New() *Picker {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.CharLimit = 4096
	ti.Width = 60
	return &Picker{input: ti}
}

// Start opens the prompt pre-filled with startDir.
func (p *Picker) Start(mode Mode, title, startDir string) tea.Cmd {
	p.mode = mode
	p.title = title
	v := startDir
	if v != "" && !strings.HasSuffix(v, string(filepath.Separator)) {
		v += string(filepath.Separator)
	}
	p.input.SetValue(v)
	p.input.CursorEnd()
	p.computeSuggestions()
	return p.input.Focus()
}

func (p *Picker) Mode() Mode            { return p.mode }
func (p *Picker) Value() string         { return p.input.Value() }
func (p *Picker) Suggestions() []string { return p.suggest }

func (p *Picker) done(path string, ok bool) tea.Cmd {
	p.input.Blur()
	mode := p.mode
	return func() tea.Msg { return ChosenMsg{Mode: mode, Path: path, OK: ok} }
}

// Update handles keys while the prompt is open.
func (p *Picker) Update(msg tea.Msg) tea.Cmd {
	if k, ok := msg.(tea.KeyMsg); ok {
		switch k.String() {
		case "esc", "ctrl+c":
			return p.done("", false)
		case "enter":
			raw := strings.TrimSpace(p.input.Value())
			if raw == "" {
				return p.done("", false)
			}
			path := ExpandPath(raw)
			if fi, err := os.Stat(path); err == nil && fi.IsDir() {
				p.input.SetValue(withSep(path))
				p.input.CursorEnd()
				p.computeSuggestions()
				return nil
			}
			return p.done(path, true)
		case "tab":
			if len(p.suggest) > 0 {
				p.input.SetValue(p.suggest[0])
				p.input.CursorEnd()
				p.computeSuggestions()
			}
			return nil
		}
	}
	var cmd tea.Cmd
	p.input, cmd = p.input.Update(msg)
	p.computeSuggestions()
	return cmd
}

func (p *Picker) computeSuggestions() {
	p.suggest = Suggestions(p.input.Value(), maxSuggestions)
}

// View renders the prompt box.
func (p *Picker) View(width int) string {
	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Bold(true).Render(p.title) + "\n\n")
	b.WriteString(p.input.View() + "\n")
	faint := lipgloss.NewStyle().Faint(true)
	for _, s := range p.suggest {
		b.WriteString(faint.Render("  • ") + s + "\n")
	}
	b.WriteString("\nenter: choose   tab: complete   esc: cancel")
	box := lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	if width > 4 {
		box = box.Width(min(width-4, 80))
	}
	return box.Render(b.String())
}

// Suggestions lists entries of the directory named by in whose names
// contain the trailing fragment, presenting paths under $HOME with ~.
// Directories get a trailing separator.
func Suggestions(in string, limit int) []string {
	if strings.TrimSpace(in) == "" {
		return nil
	}
	expanded := ExpandPath(in)
	dir, base := expanded, ""
	if !strings.HasSuffix(in, string(filepath.Separator)) {
		dir, base = filepath.Dir(expanded), filepath.Base(expanded)
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil
	}
	home, _ := os.UserHomeDir()
	var out []string
	for _, e := range entries {
		name := e.Name()
		if base != "" && !strings.Contains(strings.ToLower(name), strings.ToLower(base)) {
			continue
		}
		cand := filepath.Join(dir, name)
		if e.IsDir() {
			cand = withSep(cand)
		}
		if home != "" && strings.HasPrefix(cand, home+string(filepath.Separator)) {
			cand = "~" + strings.TrimPrefix(cand, home)
		}
		out = append(out, cand)
		if len(out) >= limit {
			break
		}
	}
	return out
}

// ExpandPath resolves ~, environment variables and relative paths.
func ExpandPath(p string) string {
	p = strings.TrimSpace(p)
	if p == "~" || strings.HasPrefix(p, "~/") {
		if h, err := os.UserHomeDir(); err == nil {
			p = filepath.Join(h, strings.TrimPrefix(p, "~"))
		}
	}
	p = os.ExpandEnv(p)
	if !filepath.IsAbs(p) {
		if abs, err := filepath.Abs(p); err == nil {
			p = abs
		}
	}
	return filepath.Clean(p)
}

func withSep(p string) string {
	if strings.HasSuffix(p, string(filepath.Separator)) {
		return p
	}
	return p + string(filepath.Separator)
}
