// Package logging builds the process logger. The terminal belongs to the
// editor, so records only go to an optional log file and, on request, to
// the systemd journal.
package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	slogmulti "github.com/samber/slog-multi"
	slogjournal "github.com/systemd/slog-journal"
)

// Options select the sinks.
type Options struct {
	File    string
	Debug   bool
	Journal bool
	Version string
}

// New returns a logger and a close func for the log file.
func New(opts Options) (*slog.Logger, func() error, error) {
	level := new(slog.LevelVar)
	if opts.Debug {
		level.Set(slog.LevelDebug)
	}

	var handlers []slog.Handler
	closer := func() error { return nil }

	out, err := openLogFile(opts.File, opts.Version)
	if err != nil {
		return nil, closer, fmt.Errorf("open log file: %w", err)
	}
	var w io.Writer = io.Discard
	if out != nil {
		w = out
		closer = out.Close
	}
	fileHandler := slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})
	handlers = append(handlers, fileHandler)

	if opts.Journal {
		jh, err := slogjournal.NewHandler(&slogjournal.Options{
			ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
				a.Key = journalKey(a.Key)
				return a
			},
		})
		if err != nil {
			record := slog.NewRecord(time.Now(), slog.LevelWarn, "new systemd journal handler", 0)
			record.Add("error", err)
			_ = fileHandler.Handle(context.Background(), record)
		} else {
			handlers = append(handlers, jh)
		}
	}

	return slog.New(slogmulti.Fanout(handlers...)), closer, nil
}

// Discard is a logger for tests and for callers that do not care.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func openLogFile(path, version string) (*os.File, error) {
	if path == "" {
		return nil, nil
	}
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		_ = os.MkdirAll(dir, 0o755)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, err
	}
	_, _ = fmt.Fprintf(f, "=== sidepad %s started at %s ===\n", version, time.Now().Format(time.RFC3339))
	return f, nil
}

// journalKey upper-cases a key and replaces characters journald rejects.
func journalKey(s string) string {
	s = strings.ToUpper(s)
	return strings.Map(func(r rune) rune {
		if (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') || r == '_' {
			return r
		}
		return '_'
	}, s)
}
