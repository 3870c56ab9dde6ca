// Package document tracks the identity and dirty state of the single open
// document and the session's recently used paths.
package document

import (
	"os"
	"slices"
)

// BaseTitle is the window title of an unsaved new document.
const BaseTitle = "Editor"

// CloseMessage is the question asked before unsaved changes are dropped.
const CloseMessage = "You have an unsaved file. Do you want to save it?"

type (
	// ReadFunc loads the content stored at path.
	ReadFunc func(path string) (string, error)
	// WriteFunc persists content at path.
	WriteFunc func(path, content string) error
	// PromptFunc asks for a save location. ok is false when dismissed.
	PromptFunc func() (path string, ok bool)
	// AskFunc shows a yes/no/cancel question.
	AskFunc func(message string) Answer
)

// Answer is the result of a yes/no/cancel confirmation.
type Answer int

const (
	Yes Answer = iota
	No
	Cancel
)

func (a Answer) String() string {
	switch a {
	case Yes:
		return "yes"
	case No:
		return "no"
	default:
		return "cancel"
	}
}

// State holds the current path, dirty flag and recent paths.
// The zero value is not usable; call New.
type State struct {
	path    string
	hasPath bool
	dirty   bool
	recent  []string
}

// New returns the state of an empty, clean, untitled document.
func New() *State {
	return &State{recent: []string{}}
}

// Path returns the current file and whether there is one.
func (s *State) Path() (string, bool) { return s.path, s.hasPath }

// Dirty reports whether the buffer changed since the last load or save.
func (s *State) Dirty() bool { return s.dirty }

// Recent returns the registered paths in insertion order.
func (s *State) Recent() []string { return slices.Clone(s.recent) }

// MarkChanged records a buffer change notification.
func (s *State) MarkChanged() { s.dirty = true }

// BindToNewFile makes path the current file after a successful open or
// save-as and reports whether path was newly registered.
func (s *State) BindToNewFile(path string) bool {
	s.path, s.hasPath = path, true
	s.dirty = false
	return s.register(path)
}

func (s *State) register(path string) bool {
	if slices.Contains(s.recent, path) {
		return false
	}
	s.recent = append(s.recent, path)
	return true
}

// Save writes content to the current path, asking prompt for one when
// the document is untitled. It reports whether the saved-to path was
// newly registered.
//
// A dismissed prompt yields ErrCancelled; a failed write yields a
// *WriteError. In both cases the state is left as it was.
func (s *State) Save(content string, write WriteFunc, prompt PromptFunc) (bool, error) {
	if !s.hasPath {
		return s.SaveAs(content, write, prompt)
	}
	return s.commitSave(s.path, content, write)
}

// SaveAs always asks prompt for the target path before writing.
func (s *State) SaveAs(content string, write WriteFunc, prompt PromptFunc) (bool, error) {
	path, ok := prompt()
	if !ok || path == "" {
		return false, ErrCancelled
	}
	return s.commitSave(path, content, write)
}

func (s *State) commitSave(path, content string, write WriteFunc) (bool, error) {
	if err := write(path, content); err != nil {
		return false, &WriteError{Path: path, Err: err}
	}
	return s.BindToNewFile(path), nil
}

// Open reads path and, on success, hands the text to load before the
// clean state is committed, so change notifications fired while the
// buffer is replaced do not leave the document dirty. It reports whether
// path was newly registered. On failure it returns a *ReadError and
// neither load nor the state is touched.
func (s *State) Open(path string, read ReadFunc, load func(string)) (bool, error) {
	text, err := read(path)
	if err != nil {
		return false, &ReadError{Path: path, Err: err}
	}
	if load != nil {
		load(text)
	}
	return s.BindToNewFile(path), nil
}

// Guard decides whether unsaved changes may be dropped. A clean document
// always proceeds. Otherwise ask decides: Yes runs save and proceeds only
// when it succeeds, No proceeds without saving, Cancel aborts. The error
// is the one returned by save, if any.
func (s *State) Guard(message string, ask AskFunc, save func() error) (bool, error) {
	if !s.dirty {
		return true, nil
	}
	switch ask(message) {
	case Yes:
		if err := save(); err != nil {
			return false, err
		}
		return true, nil
	case No:
		return true, nil
	default:
		return false, nil
	}
}

// Close runs the application-close confirmation.
func (s *State) Close(ask AskFunc, save func() error) (bool, error) {
	return s.Guard(CloseMessage, ask, save)
}

// Title derives the window title from the current state.
func (s *State) Title() string {
	if !s.hasPath {
		return BaseTitle
	}
	if s.dirty {
		return BaseTitle + ": " + s.path + " *"
	}
	return BaseTitle + ": " + s.path
}

// ReadFile is the ReadFunc backed by the local file system.
func ReadFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// WriteFile is the WriteFunc backed by the local file system.
func WriteFile(path, content string) error {
	return os.WriteFile(path, []byte(content), 0644)
}
