package tui

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"sidepad/internal/config"
	"sidepad/internal/document"
	"sidepad/internal/layout"
	"sidepad/internal/logging"
	"sidepad/internal/runner"
	"sidepad/internal/tui/state"
	"sidepad/internal/tui/util"
	"sidepad/internal/tui/widgets/confirm"
	"sidepad/internal/tui/widgets/diff"
	"sidepad/internal/tui/widgets/editor"
	help "sidepad/internal/tui/widgets/helpoverlay"
	"sidepad/internal/tui/widgets/picker"
	"sidepad/internal/tui/widgets/sidebar"
	"sidepad/internal/tui/widgets/statusbar"
)

// DiscardMessage is asked before a dirty buffer is replaced by another file.
const DiscardMessage = "The current file has unsaved changes. Save them first?"

// errAwaitingLocation means a save needs the save picker first; the
// pending action continues once a location is chosen.
var errAwaitingLocation = errors.New("awaiting save location")

// Launcher starts and stops scripts.
type Launcher interface {
	Start(ctx context.Context, path string) (*runner.Run, error)
	Stop(ctx context.Context) error
}

// Options wire the shell to its collaborators. Zero fields get the
// file-system, clipboard and process defaults.
type Options struct {
	Settings  config.Settings
	Log       *slog.Logger
	Read      document.ReadFunc
	Write     document.WriteFunc
	Clipboard func(string) error
	Launcher  Launcher
	NoColor   bool
	File      string
	Context   context.Context
}

type action int

const (
	actNone action = iota
	actQuit
	actRun
	actOpenPicker
	actOpenPath
)

func (a action) String() string {
	switch a {
	case actQuit:
		return "quit"
	case actRun:
		return "run"
	case actOpenPicker:
		return "open-picker"
	case actOpenPath:
		return "open-path"
	default:
		return "none"
	}
}

type (
	openRecentMsg string
	runLineMsg    string
	runDoneMsg    struct{ err error }
)

// App is the bubbletea model of the editor shell.
type App struct {
	ctx     context.Context
	log     *slog.Logger
	read    document.ReadFunc
	write   document.WriteFunc
	copy    func(string) error
	launch  Launcher
	noColor bool

	doc    *document.State
	layout *layout.Controller
	geom   layout.Geometry
	ui     state.UIState
	keys   keyMap

	editor  *editor.Editor
	sidebar *sidebar.Sidebar
	picker  *picker.Picker
	confirm *confirm.Dialog
	output  viewport.Model
	help    help.HelpOverlay
	status  statusbar.StatusBar

	// buffer text as of the last open or save, for the unsaved-changes preview
	baseline string

	pending     action
	pendingPath string

	run      *runner.Run
	outLines []string

	title    string
	quitting bool
}

// New builds the shell. When opts.File is set it is opened immediately;
// a missing file becomes the path of a new document.
func New(opts Options) *App {
	if opts.Log == nil {
		opts.Log = logging.Discard()
	}
	if opts.Read == nil {
		opts.Read = document.ReadFile
	}
	if opts.Write == nil {
		opts.Write = document.WriteFile
	}
	if opts.Clipboard == nil {
		opts.Clipboard = clipboard.WriteAll
	}
	if opts.Launcher == nil {
		opts.Launcher = runner.New(opts.Log)
	}
	if opts.Context == nil {
		opts.Context = context.Background()
	}
	if opts.Settings == (config.Settings{}) {
		opts.Settings = config.Default()
	}

	noColor := util.NoColor(opts.NoColor)
	a := &App{
		ctx:     opts.Context,
		log:     opts.Log,
		read:    opts.Read,
		write:   opts.Write,
		copy:    opts.Clipboard,
		launch:  opts.Launcher,
		noColor: noColor,
		doc:     document.New(),
		layout:  layout.New(layout.CellMetrics()),
		keys:    defaultKeys(),
		editor:  editor.New(opts.Settings),
		sidebar: sidebar.New(noColor),
		picker:  picker.New(),
		confirm: confirm.New(),
		output:  viewport.New(0, 0),
		help:    help.NewHelpOverlay(),
		status:  statusbar.NewStatusBar(noColor),
	}
	a.editor.OnChanged(a.doc.MarkChanged)
	a.layout.Subscribe(a.applyGeometry)
	a.sidebar.OnOrientationChanged(func(axis layout.Axis) {
		a.layout.SetOrientation(layout.OrientationFromAxis(axis))
	})
	a.geom = a.layout.Geometry()
	a.ui = state.MoveCursor(a.ui, 0, 0)

	if opts.File != "" {
		a.openInitial(picker.ExpandPath(opts.File))
	}
	a.title = a.doc.Title()
	return a
}

func (a *App) openInitial(path string) {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		a.register(path, a.doc.BindToNewFile(path))
		a.ui = state.Notify(a.ui, "new file "+path)
		return
	}
	a.openPath(path)
}

// Run starts the program and blocks until the user quits.
func Run(opts Options) error {
	a := New(opts)
	p := tea.NewProgram(a, tea.WithAltScreen(), tea.WithContext(a.ctx))
	_, err := p.Run()
	return err
}

func (a *App) Init() tea.Cmd {
	return tea.Batch(textarea.Blink, tea.SetWindowTitle(a.title))
}

// Document exposes the document state for inspection.
func (a *App) Document() *document.State { return a.doc }

// Layout exposes the layout controller for inspection.
func (a *App) Layout() *layout.Controller { return a.layout }

// UI exposes the cross-widget UI state.
func (a *App) UI() state.UIState { return a.ui }

func (a *App) applyGeometry(g layout.Geometry) {
	a.geom = g
	a.editor.SetRect(g.Editor)
	a.sidebar.SetGeometry(g)
	a.log.Debug("reflow",
		"window", fmt.Sprintf("%dx%d", a.layout.Window().W, a.layout.Window().H),
		"sidebar", a.layout.State().String(),
		"editor", fmt.Sprintf("%+v", g.Editor))
}

// Update routes messages to overlays, global bindings and the focused pane.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmd := a.update(msg)
	if t := a.doc.Title(); t != a.title {
		a.title = t
		cmd = tea.Batch(cmd, tea.SetWindowTitle(t))
	}
	return a, cmd
}

func (a *App) update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.layout.Resize(msg.Width, msg.Height)
		a.output.Width = max(msg.Width-8, 10)
		a.output.Height = max(msg.Height-8, 3)
		return nil

	case picker.ChosenMsg:
		return a.onChosen(msg)

	case confirm.AnswerMsg:
		return a.onAnswer(msg)

	case openRecentMsg:
		a.pendingPath = string(msg)
		return a.guard(actOpenPath)

	case runLineMsg:
		a.appendOutput(string(msg))
		return waitLine(a.run)

	case runDoneMsg:
		return a.onRunDone(msg)

	case tea.KeyMsg:
		return a.onKey(msg)
	}

	// blink and other widget ticks
	if a.ui.Overlay == state.SavePicker || a.ui.Overlay == state.OpenPicker {
		return a.picker.Update(msg)
	}
	return a.editor.Update(msg)
}

func (a *App) onKey(msg tea.KeyMsg) tea.Cmd {
	switch a.ui.Overlay {
	case state.Help:
		if key.Matches(msg, a.keys.Help, a.keys.Back) {
			a.ui = state.ToggleHelp(a.ui)
		}
		return nil
	case state.OpenPicker, state.SavePicker:
		if key.Matches(msg, a.keys.Help) {
			a.ui = state.ToggleHelp(a.ui)
			return nil
		}
		return a.picker.Update(msg)
	case state.Confirm:
		return a.confirm.Update(msg)
	case state.Output:
		switch {
		case key.Matches(msg, a.keys.Back):
			a.ui = state.Close(a.ui)
			return nil
		case key.Matches(msg, a.keys.Stop):
			return a.stopRun()
		}
		var cmd tea.Cmd
		a.output, cmd = a.output.Update(msg)
		return cmd
	}

	// notices last until the next key
	a.ui = state.ClearNotice(a.ui)
	switch {
	case key.Matches(msg, a.keys.Quit):
		return a.guard(actQuit)
	case key.Matches(msg, a.keys.Open):
		return a.guard(actOpenPicker)
	case key.Matches(msg, a.keys.Save):
		return a.requestSave(actNone)
	case key.Matches(msg, a.keys.SaveAs):
		a.pending = actNone
		return a.startPicker(picker.Save)
	case key.Matches(msg, a.keys.Run):
		return a.requestSave(actRun)
	case key.Matches(msg, a.keys.Stop):
		return a.stopRun()
	case key.Matches(msg, a.keys.Sidebar):
		a.toggleSidebar()
		return nil
	case key.Matches(msg, a.keys.Dock):
		a.sidebar.Reorient(axisFor(a.layout.Orientation().Other()))
		return nil
	case key.Matches(msg, a.keys.Grow):
		a.layout.ResizeSidebar(a.layout.Extent() + 2)
		return nil
	case key.Matches(msg, a.keys.Shrink):
		a.layout.ResizeSidebar(a.layout.Extent() - 2)
		return nil
	case key.Matches(msg, a.keys.Focus):
		a.setFocus(state.ToggleFocus(a.ui, a.sidebar.Visible()).Focus)
		return nil
	case key.Matches(msg, a.keys.CopyPath):
		a.copyPath()
		return nil
	case key.Matches(msg, a.keys.Help):
		a.ui = state.ToggleHelp(a.ui)
		return nil
	}

	if a.ui.Focus == state.SidebarFocus {
		if key.Matches(msg, a.keys.Back) {
			a.setFocus(state.EditorFocus)
			return nil
		}
		return a.sidebar.Update(msg)
	}
	cmd := a.editor.Update(msg)
	row, col := a.editor.Cursor()
	a.ui = state.MoveCursor(a.ui, row, col)
	return cmd
}

func axisFor(o layout.Orientation) layout.Axis {
	if o == layout.Top {
		return layout.Horizontal
	}
	return layout.Vertical
}

func (a *App) setFocus(f state.Focus) {
	a.ui.Focus = f
	if f == state.SidebarFocus {
		a.editor.Blur()
		a.sidebar.Focus()
		return
	}
	a.sidebar.Blur()
	a.editor.Focus()
}

func (a *App) toggleSidebar() {
	if a.sidebar.Visible() {
		a.sidebar.Hide()
		a.layout.ToggleSidebar(false)
		a.setFocus(state.EditorFocus)
		return
	}
	a.sidebar.Show()
	a.layout.ToggleSidebar(true)
}

// ===== document flows =====

func (a *App) startDir() string {
	if p, ok := a.doc.Path(); ok {
		return filepath.Dir(p)
	}
	if h, err := os.UserHomeDir(); err == nil {
		return h
	}
	return "."
}

func (a *App) startPicker(mode picker.Mode) tea.Cmd {
	title, overlay := "Open file", state.OpenPicker
	if mode == picker.Save {
		title, overlay = "Save as", state.SavePicker
	}
	a.ui = state.Open(a.ui, overlay)
	return a.picker.Start(mode, title, a.startDir())
}

// requestSave saves to the current path, or asks for one first, and then
// performs then.
func (a *App) requestSave(then action) tea.Cmd {
	if _, ok := a.doc.Path(); !ok {
		a.pending = then
		return a.startPicker(picker.Save)
	}
	if err := a.commitSave(""); err != nil {
		a.ui = state.Fail(a.ui, err)
		a.pending = actNone
		return nil
	}
	return a.perform(then)
}

// commitSave writes the buffer. An empty chosen path saves in place.
func (a *App) commitSave(chosen string) error {
	text := a.editor.Text()
	prompt := func() (string, bool) { return chosen, chosen != "" }
	var (
		added bool
		err   error
	)
	if chosen != "" {
		added, err = a.doc.SaveAs(text, a.write, prompt)
	} else {
		added, err = a.doc.Save(text, a.write, prompt)
	}
	if err != nil {
		if !document.IsCancelled(err) {
			a.log.Warn("save failed", "err", err)
		}
		return err
	}
	path, _ := a.doc.Path()
	a.baseline = text
	a.register(path, added)
	a.ui = state.Notify(a.ui, "saved "+path)
	a.log.Info("saved", "path", path, "bytes", len(text))
	return nil
}

func (a *App) onChosen(msg picker.ChosenMsg) tea.Cmd {
	a.ui = state.Close(a.ui)
	then := a.pending
	a.pending = actNone
	if !msg.OK {
		a.log.Debug("picker dismissed", "mode", msg.Mode, "pending", then.String())
		return nil
	}
	if msg.Mode == picker.Open {
		a.openPath(msg.Path)
		return nil
	}
	if err := a.commitSave(msg.Path); err != nil {
		a.ui = state.Fail(a.ui, err)
		return nil
	}
	return a.perform(then)
}

// openPath replaces the buffer with the file at path. Files longer than
// the buffer are refused. When the buffer cannot hold the text verbatim
// (tabs, CR line endings, control characters) the document is loaded
// modified so a save never claims to write back what was read.
func (a *App) openPath(path string) {
	read := func(p string) (string, error) {
		s, err := a.read(p)
		if err != nil {
			return "", err
		}
		if n := editor.LineCount(s); n > editor.MaxLines {
			return "", fmt.Errorf("%d lines, the editor holds at most %d", n, editor.MaxLines)
		}
		return s, nil
	}
	var raw string
	added, err := a.doc.Open(path, read, func(s string) {
		raw = s
		a.editor.SetText(s)
	})
	if err != nil {
		a.log.Warn("open failed", "err", err)
		a.ui = state.Fail(a.ui, err)
		return
	}
	loaded := a.editor.Text()
	a.baseline = loaded
	a.register(path, added)
	notice := "opened " + path
	if loaded != raw {
		a.doc.MarkChanged()
		notice += " (tabs or line endings converted, unsaved)"
	}
	row, col := a.editor.Cursor()
	a.ui = state.MoveCursor(state.Notify(a.ui, notice), row, col)
	a.log.Info("opened", "path", path, "bytes", len(raw), "converted", loaded != raw, "new", added)
}

// register adds a sidebar shortcut for a newly registered path.
func (a *App) register(path string, added bool) {
	if !added {
		return
	}
	a.sidebar.AddEntry(path, func() tea.Cmd {
		return func() tea.Msg { return openRecentMsg(path) }
	})
}

// guard runs then, asking first when the buffer has unsaved changes.
func (a *App) guard(then action) tea.Cmd {
	if !a.doc.Dirty() {
		return a.perform(then)
	}
	a.pending = then
	message := DiscardMessage
	if then == actQuit {
		message = document.CloseMessage
	}
	a.confirm.Start(message, diff.Unified(a.baseline, a.editor.Text(), a.noColor), a.layout.Window().W, a.layout.Window().H)
	a.ui = state.Open(a.ui, state.Confirm)
	return nil
}

func (a *App) onAnswer(msg confirm.AnswerMsg) tea.Cmd {
	a.ui = state.Close(a.ui)
	then := a.pending
	a.pending = actNone
	ask := func(string) document.Answer { return msg.Answer }
	save := func() error {
		if _, ok := a.doc.Path(); !ok {
			return errAwaitingLocation
		}
		return a.commitSave("")
	}

	var (
		proceed bool
		err     error
	)
	if then == actQuit {
		proceed, err = a.doc.Close(ask, save)
	} else {
		proceed, err = a.doc.Guard(DiscardMessage, ask, save)
	}
	a.log.Debug("confirm answered", "answer", msg.Answer.String(), "pending", then.String(), "proceed", proceed)
	switch {
	case errors.Is(err, errAwaitingLocation):
		a.pending = then
		return a.startPicker(picker.Save)
	case err != nil:
		a.ui = state.Fail(a.ui, err)
		return nil
	case proceed:
		return a.perform(then)
	}
	return nil
}

func (a *App) perform(act action) tea.Cmd {
	switch act {
	case actQuit:
		return a.shutdown()
	case actRun:
		return a.startRun()
	case actOpenPicker:
		return a.startPicker(picker.Open)
	case actOpenPath:
		path := a.pendingPath
		a.pendingPath = ""
		a.openPath(path)
	}
	return nil
}

func (a *App) shutdown() tea.Cmd {
	a.quitting = true
	if err := a.launch.Stop(a.ctx); err != nil {
		a.log.Warn("stop script on exit", "err", err)
	}
	a.log.Info("closing", "dirty", a.doc.Dirty())
	return tea.Quit
}

func (a *App) copyPath() {
	text, what := a.editor.Text(), "buffer"
	if p, ok := a.doc.Path(); ok {
		text, what = p, "path"
	}
	if err := a.copy(text); err != nil {
		a.ui = state.Fail(a.ui, fmt.Errorf("copy %s: %w", what, err))
		return
	}
	a.ui = state.Notify(a.ui, "copied "+what)
}

// ===== script runner =====

func waitLine(run *runner.Run) tea.Cmd {
	if run == nil {
		return nil
	}
	return func() tea.Msg {
		l, ok := <-run.Lines
		if !ok {
			return runDoneMsg{err: run.Err()}
		}
		return runLineMsg(l)
	}
}

func (a *App) startRun() tea.Cmd {
	path, ok := a.doc.Path()
	if !ok {
		return nil
	}
	run, err := a.launch.Start(a.ctx, path)
	if err != nil {
		a.ui = state.Fail(a.ui, err)
		return nil
	}
	a.run = run
	a.ui.Running = true
	a.outLines = a.outLines[:0]
	a.appendOutput("$ " + strings.Join(run.Cmd.Args, " "))
	a.ui = state.Open(a.ui, state.Output)
	return waitLine(run)
}

func (a *App) stopRun() tea.Cmd {
	if !a.ui.Running {
		return nil
	}
	if err := a.launch.Stop(a.ctx); err != nil {
		a.ui = state.Fail(a.ui, err)
	}
	return nil
}

func (a *App) appendOutput(l string) {
	a.outLines = append(a.outLines, l)
	a.output.SetContent(strings.Join(a.outLines, "\n"))
	a.output.GotoBottom()
}

func (a *App) onRunDone(msg runDoneMsg) tea.Cmd {
	a.ui.Running = false
	a.run = nil
	status := "exit 0"
	if msg.err != nil {
		status = msg.err.Error()
	}
	a.appendOutput("[" + status + "]")
	a.ui = state.Notify(a.ui, "script finished: "+status)
	return nil
}

// ===== view =====

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Reverse(true)
	faintStyle = lipgloss.NewStyle().Faint(true)
)

func (a *App) View() string {
	win := a.layout.Window()
	if a.quitting || win.W == 0 || win.H == 0 {
		return ""
	}
	title := lipgloss.NewStyle().Width(win.W).MaxWidth(win.W).Render(" " + a.doc.Title())
	if !a.noColor {
		title = titleStyle.Width(win.W).MaxWidth(win.W).Render(" " + a.doc.Title())
	}
	bodyH := max(win.H-2, 0)

	var body string
	if a.ui.Overlay != state.NoOverlay {
		body = lipgloss.Place(win.W, bodyH, lipgloss.Center, lipgloss.Center, a.overlayView())
	} else {
		body = a.bodyView()
	}
	body = lipgloss.NewStyle().Height(bodyH).MaxHeight(bodyH).MaxWidth(win.W).Render(body)

	tags := util.ComputeTags(util.DocInfo{
		Text:    a.editor.Text(),
		HasPath: a.hasPath(),
		Dirty:   a.doc.Dirty(),
		Running: a.ui.Running,
	})
	status := a.status.View(a.ui, tags, a.geom, win.W)
	return lipgloss.JoinVertical(lipgloss.Left, title, body, status)
}

func (a *App) hasPath() bool {
	_, ok := a.doc.Path()
	return ok
}

func (a *App) bodyView() string {
	ed := a.editor.View()
	if a.editor.Text() == "" && a.geom.Editor.H > 2 {
		ed = lipgloss.JoinVertical(lipgloss.Left, ed, faintStyle.Render(a.help.Short(a.keys.ShortHelp(), a.geom.Editor.W)))
	}
	if !a.geom.Visible {
		return ed
	}
	side := a.sidebar.View()
	gap := a.geom.Editor.X - a.geom.Sidebar.X - a.geom.Sidebar.W
	if a.geom.Orientation == layout.Top {
		gap = a.geom.Editor.Y - a.geom.Sidebar.Y - a.geom.Sidebar.H
		return lipgloss.JoinVertical(lipgloss.Left, side, strings.Repeat("\n", max(gap-1, 0)), ed)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, side, strings.Repeat(" ", max(gap, 0)), ed)
}

func (a *App) overlayView() string {
	switch a.ui.Overlay {
	case state.OpenPicker, state.SavePicker:
		return a.picker.View(a.layout.Window().W)
	case state.Confirm:
		return a.confirm.View()
	case state.Output:
		head := lipgloss.NewStyle().Bold(true).Render("Script output")
		hint := faintStyle.Render("esc: hide   ctrl+g: stop   ↑/↓: scroll")
		return lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1).
			Render(head + "\n\n" + a.output.View() + "\n\n" + hint)
	case state.Help:
		focus := "editor"
		if a.ui.Focus == state.SidebarFocus {
			focus = "sidebar"
		}
		return a.help.View(focus, a.keys.sections())
	}
	return ""
}
