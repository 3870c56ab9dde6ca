package tui

import (
	"github.com/charmbracelet/bubbles/key"

	help "sidepad/internal/tui/widgets/helpoverlay"
)

type keyMap struct {
	Open     key.Binding
	Save     key.Binding
	SaveAs   key.Binding
	Run      key.Binding
	Stop     key.Binding
	Quit     key.Binding
	Sidebar  key.Binding
	Dock     key.Binding
	Grow     key.Binding
	Shrink   key.Binding
	Focus    key.Binding
	CopyPath key.Binding
	Help     key.Binding
	Back     key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Open:     key.NewBinding(key.WithKeys("ctrl+o"), key.WithHelp("ctrl+o", "open file")),
		Save:     key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "save")),
		SaveAs:   key.NewBinding(key.WithKeys("alt+s"), key.WithHelp("alt+s", "save as")),
		Run:      key.NewBinding(key.WithKeys("ctrl+r", "f5"), key.WithHelp("ctrl+r/f5", "save and run")),
		Stop:     key.NewBinding(key.WithKeys("ctrl+g"), key.WithHelp("ctrl+g", "stop script")),
		Quit:     key.NewBinding(key.WithKeys("ctrl+q", "ctrl+c"), key.WithHelp("ctrl+q", "quit")),
		Sidebar:  key.NewBinding(key.WithKeys("ctrl+b"), key.WithHelp("ctrl+b", "show/hide sidebar")),
		Dock:     key.NewBinding(key.WithKeys("ctrl+t"), key.WithHelp("ctrl+t", "dock sidebar left/top")),
		Grow:     key.NewBinding(key.WithKeys("alt+]"), key.WithHelp("alt+]", "grow sidebar")),
		Shrink:   key.NewBinding(key.WithKeys("alt+["), key.WithHelp("alt+[", "shrink sidebar")),
		Focus:    key.NewBinding(key.WithKeys("f2"), key.WithHelp("f2", "focus editor/sidebar")),
		CopyPath: key.NewBinding(key.WithKeys("ctrl+y"), key.WithHelp("ctrl+y", "copy path")),
		Help:     key.NewBinding(key.WithKeys("f1"), key.WithHelp("f1", "help")),
		Back:     key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
	}
}

// ShortHelp is the hint line under an empty buffer.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Open, k.Save, k.Run, k.Sidebar, k.Help, k.Quit}
}

func (k keyMap) sections() []help.Section {
	return []help.Section{
		{Title: "File", Bindings: []key.Binding{k.Open, k.Save, k.SaveAs, k.CopyPath, k.Quit}},
		{Title: "Script", Bindings: []key.Binding{k.Run, k.Stop}},
		{Title: "Sidebar", Bindings: []key.Binding{k.Sidebar, k.Dock, k.Grow, k.Shrink, k.Focus}},
		{Title: "General", Bindings: []key.Binding{k.Help, k.Back}},
	}
}
