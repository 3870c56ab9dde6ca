// Package runner launches the current document as a script and streams its
// output back line by line.
package runner

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os/exec"
	"path/filepath"
	"strings"
	"sync"
	"time"
)

// ErrRunning is returned by Start while a previous script is still alive.
var ErrRunning = errors.New("a script is already running")

// interpreters maps a file extension to the command that runs it.
var interpreters = map[string][]string{
	".py": {"python3"},
	".sh": {"sh"},
	".go": {"go", "run"},
	".js": {"node"},
	".rb": {"ruby"},
	".pl": {"perl"},
}

// Command builds the command for path, run from the file's directory.
// Unknown extensions are executed directly.
func Command(ctx context.Context, path string) (*exec.Cmd, error) {
	if strings.TrimSpace(path) == "" {
		return nil, errors.New("no file to run")
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve %s: %w", path, err)
	}
	var cmd *exec.Cmd
	if argv, ok := interpreters[strings.ToLower(filepath.Ext(abs))]; ok {
		args := append(append([]string{}, argv[1:]...), abs)
		cmd = exec.CommandContext(ctx, argv[0], args...)
	} else {
		cmd = exec.CommandContext(ctx, abs)
	}
	cmd.Dir = filepath.Dir(abs)
	cmd.SysProcAttr = newSysProcAttrForGroup()
	return cmd, nil
}

// Run is one script execution. Lines carries stdout and stderr
// interleaved and is closed once the process has exited.
type Run struct {
	Name  string
	Cmd   *exec.Cmd
	Lines <-chan string

	err  error
	done chan struct{}
}

// Err returns the exit error. Valid once Lines is closed.
func (r *Run) Err() error {
	<-r.done
	return r.err
}

// Runner allows at most one script at a time.
type Runner struct {
	mu  sync.Mutex
	cur *Run
	log *slog.Logger
}

func New(log *slog.Logger) *Runner {
	return &Runner{log: log}
}

// Start launches path.
func (r *Runner) Start(ctx context.Context, path string) (*Run, error) {
	cmd, err := Command(ctx, path)
	if err != nil {
		return nil, err
	}
	return r.StartCmd(filepath.Base(path), cmd)
}

// StartCmd launches a prepared command under name.
func (r *Runner) StartCmd(name string, cmd *exec.Cmd) (*Run, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.cur != nil {
		return nil, ErrRunning
	}
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, err
	}
	stderr, err := cmd.StderrPipe()
	if err != nil {
		return nil, err
	}
	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("start %s: %w", name, err)
	}
	lines := make(chan string, 256)
	run := &Run{Name: name, Cmd: cmd, Lines: lines, done: make(chan struct{})}
	r.cur = run
	r.log.Info("script started", "name", name, "pid", cmd.Process.Pid)

	var wg sync.WaitGroup
	wg.Add(2)
	go r.pipeLines(&wg, stdout, lines)
	go r.pipeLines(&wg, stderr, lines)
	go func() {
		wg.Wait()
		run.err = cmd.Wait()
		r.mu.Lock()
		if r.cur == run {
			r.cur = nil
		}
		r.mu.Unlock()
		r.log.Info("script exited", "name", name, "err", run.err)
		close(lines)
		close(run.done)
	}()
	return run, nil
}

// maxLineBytes caps one output line; longer lines arrive in pieces.
const maxLineBytes = 64 * 1024

// scanCappedLines is bufio.ScanLines that never waits for more than
// maxLineBytes of a single line.
func scanCappedLines(data []byte, atEOF bool) (int, []byte, error) {
	if len(data) >= maxLineBytes && bytes.IndexByte(data[:maxLineBytes], '\n') < 0 {
		return maxLineBytes, data[:maxLineBytes], nil
	}
	return bufio.ScanLines(data, atEOF)
}

func (r *Runner) pipeLines(wg *sync.WaitGroup, rd io.Reader, out chan<- string) {
	defer wg.Done()
	sc := bufio.NewScanner(rd)
	sc.Buffer(make([]byte, 0, 4096), 2*maxLineBytes)
	sc.Split(scanCappedLines)
	for sc.Scan() {
		out <- sc.Text()
	}
	if err := sc.Err(); err != nil {
		r.log.Warn("script output", "err", err)
		out <- "[output error: " + err.Error() + "]"
		// keep the pipe flowing so the child can exit
		_, _ = io.Copy(io.Discard, rd)
	}
}

// Running reports whether a script is alive.
func (r *Runner) Running() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.cur != nil
}

// Stop terminates the running script's process group and waits briefly
// for it to exit before killing it.
func (r *Runner) Stop(ctx context.Context) error {
	r.mu.Lock()
	run := r.cur
	r.mu.Unlock()
	if run == nil || run.Cmd.Process == nil {
		return nil
	}
	r.log.Info("stopping script", "name", run.Name, "pid", run.Cmd.Process.Pid)
	if err := terminate(run.Cmd.Process.Pid); err != nil {
		return fmt.Errorf("%s: %w", run.Name, err)
	}
	waitCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	select {
	case <-run.done:
	case <-waitCtx.Done():
		_ = run.Cmd.Process.Kill()
	}
	return nil
}
