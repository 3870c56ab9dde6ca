package state

// Open shows overlay o, remembering the one it covers.
func Open(s UIState, o Overlay) UIState {
	if s.Overlay == o {
		return s
	}
	s.Previous = s.Overlay
	s.Overlay = o
	return s
}

// Close dismisses the current overlay and restores the covered one.
func Close(s UIState) UIState {
	s.Overlay = s.Previous
	s.Previous = NoOverlay
	return s
}

// ToggleHelp shows or hides the help overlay on top of whatever is open.
func ToggleHelp(s UIState) UIState {
	if s.Overlay == Help {
		return Close(s)
	}
	return Open(s, Help)
}

// ToggleFocus moves keyboard focus between editor and sidebar. Focus can
// only move to the sidebar while it is visible.
func ToggleFocus(s UIState, sidebarVisible bool) UIState {
	if s.Focus == EditorFocus && sidebarVisible {
		s.Focus = SidebarFocus
	} else {
		s.Focus = EditorFocus
	}
	return s
}

// Notify sets an informational notice.
func Notify(s UIState, msg string) UIState {
	s.Notice = msg
	s.NoticeLevel = Info
	return s
}

// Fail sets an error notice.
func Fail(s UIState, err error) UIState {
	if err == nil {
		return s
	}
	s.Notice = err.Error()
	s.NoticeLevel = Error
	return s
}

// ClearNotice drops the notice.
func ClearNotice(s UIState) UIState {
	s.Notice = ""
	s.NoticeLevel = Info
	return s
}

// MoveCursor records the buffer cursor (0-based in, 1-based stored).
func MoveCursor(s UIState, row, col int) UIState {
	s.Line = row + 1
	s.Col = col + 1
	return s
}
