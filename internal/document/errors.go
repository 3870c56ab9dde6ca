package document

import (
	"errors"
	"fmt"
)

// ErrCancelled is returned when a picker or confirmation was dismissed.
// Callers treat it as a silent abort, not as a failure to report.
var ErrCancelled = errors.New("cancelled by user")

// ReadError reports a failed load. The document state is left untouched.
type ReadError struct {
	Path string
	Err  error
}

func (e *ReadError) Error() string { return fmt.Sprintf("read %s: %v", e.Path, e.Err) }
func (e *ReadError) Unwrap() error { return e.Err }

// WriteError reports a failed save. The document stays dirty and keeps
// its previous path.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string { return fmt.Sprintf("write %s: %v", e.Path, e.Err) }
func (e *WriteError) Unwrap() error { return e.Err }

// IsCancelled reports whether err is (or wraps) ErrCancelled.
func IsCancelled(err error) bool { return errors.Is(err, ErrCancelled) }
