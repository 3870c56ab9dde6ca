package state

// Overlay is the modal currently drawn over the editor, if any.
type Overlay int

const (
	NoOverlay Overlay = iota
	OpenPicker
	SavePicker
	Confirm
	Output
	Help
)

func (o Overlay) String() string {
	switch o {
	case OpenPicker:
		return "open"
	case SavePicker:
		return "save"
	case Confirm:
		return "confirm"
	case Output:
		return "output"
	case Help:
		return "help"
	default:
		return "none"
	}
}

// Focus is the pane receiving keys when no overlay is open.
type Focus int

const (
	EditorFocus Focus = iota
	SidebarFocus
)

// NoticeLevel colours the status line message.
type NoticeLevel int

const (
	Info NoticeLevel = iota
	Error
)

// UIState holds cross-widget UI state used by the status bar, sidebar and
// overlays. The document and layout themselves live in their own packages.
type UIState struct {
	Overlay Overlay
	// Overlay to restore when the current one closes (help over a picker).
	Previous Overlay
	Focus    Focus

	// Cursor position in the buffer, 1-based.
	Line, Col int

	// Script runner
	Running bool

	// Notices and ephemeral messages
	Notice      string
	NoticeLevel NoticeLevel
}
