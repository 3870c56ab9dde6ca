package document

import (
	"errors"
	"os"
	"path/filepath"
	"slices"
	"testing"
)

var errDisk = errors.New("disk full")

func okWrite(string, string) error  { return nil }
func badWrite(string, string) error { return errDisk }

func pick(p string) PromptFunc { return func() (string, bool) { return p, true } }

func noPick() (string, bool) { return "", false }

func TestMarkChangedStaysDirtyUntilSave(t *testing.T) {
	s := New()
	s.BindToNewFile("/a.txt")
	for i := 0; i < 5; i++ {
		s.MarkChanged()
		if !s.Dirty() {
			t.Fatalf("expected dirty after change %d", i)
		}
	}
	if _, err := s.Save("x", badWrite, noPick); err == nil {
		t.Fatalf("expected write error")
	}
	if !s.Dirty() {
		t.Fatalf("failed save must keep dirty")
	}
	if _, err := s.Save("x", okWrite, noPick); err != nil {
		t.Fatalf("save: %v", err)
	}
	if s.Dirty() {
		t.Fatalf("expected clean after save")
	}
}

func TestOpenFailureLeavesStateUnchanged(t *testing.T) {
	s := New()
	s.BindToNewFile("/a.txt")
	s.MarkChanged()
	loaded := false
	_, err := s.Open("/b.txt", func(string) (string, error) { return "", errDisk }, func(string) { loaded = true })
	var re *ReadError
	if !errors.As(err, &re) || re.Path != "/b.txt" || !errors.Is(err, errDisk) {
		t.Fatalf("expected ReadError for /b.txt, got %v", err)
	}
	if loaded {
		t.Fatalf("load must not run on read failure")
	}
	if p, _ := s.Path(); p != "/a.txt" || !s.Dirty() || !slices.Equal(s.Recent(), []string{"/a.txt"}) {
		t.Fatalf("state changed: path=%q dirty=%v recent=%v", p, s.Dirty(), s.Recent())
	}
}

func TestOpenClearsDirtyAfterLoadNotification(t *testing.T) {
	s := New()
	var got string
	added, err := s.Open("/a.txt", func(string) (string, error) { return "hello", nil }, func(text string) {
		got = text
		// a buffer widget notifies on programmatic set
		s.MarkChanged()
	})
	if err != nil || !added {
		t.Fatalf("open: added=%v err=%v", added, err)
	}
	if got != "hello" {
		t.Fatalf("unexpected loaded text %q", got)
	}
	if s.Dirty() {
		t.Fatalf("open must leave the document clean")
	}
	added, _ = s.Open("/a.txt", func(string) (string, error) { return "", nil }, nil)
	if added {
		t.Fatalf("reopening must not register again")
	}
}

func TestSaveUntitledCancelled(t *testing.T) {
	s := New()
	s.MarkChanged()
	_, err := s.Save("x", func(string, string) error {
		t.Fatalf("write must not run")
		return nil
	}, noPick)
	if !errors.Is(err, ErrCancelled) || !IsCancelled(err) {
		t.Fatalf("expected ErrCancelled, got %v", err)
	}
	if _, ok := s.Path(); ok || !s.Dirty() || len(s.Recent()) != 0 {
		t.Fatalf("state changed after cancel")
	}
	if s.Title() != "Editor" {
		t.Fatalf("unexpected title %q", s.Title())
	}
}

func TestSaveAsWriteFailureRollsBackPath(t *testing.T) {
	s := New()
	s.BindToNewFile("/a.txt")
	s.MarkChanged()
	_, err := s.SaveAs("x", badWrite, pick("/b.txt"))
	var we *WriteError
	if !errors.As(err, &we) || we.Path != "/b.txt" {
		t.Fatalf("expected WriteError for /b.txt, got %v", err)
	}
	if p, _ := s.Path(); p != "/a.txt" || !s.Dirty() || slices.Contains(s.Recent(), "/b.txt") {
		t.Fatalf("failed save-as must not apply the new path")
	}
}

func TestSaveAsAlwaysPrompts(t *testing.T) {
	s := New()
	s.BindToNewFile("/a.txt")
	var wrote string
	added, err := s.SaveAs("x", func(p, _ string) error { wrote = p; return nil }, pick("/b.txt"))
	if err != nil || !added || wrote != "/b.txt" {
		t.Fatalf("save-as: added=%v err=%v wrote=%q", added, err, wrote)
	}
	if !slices.Equal(s.Recent(), []string{"/a.txt", "/b.txt"}) {
		t.Fatalf("unexpected recent %v", s.Recent())
	}
}

func TestBindToNewFileIdempotent(t *testing.T) {
	s := New()
	if !s.BindToNewFile("/p") {
		t.Fatalf("first bind should register")
	}
	if s.BindToNewFile("/p") {
		t.Fatalf("second bind should not register")
	}
	if !slices.Equal(s.Recent(), []string{"/p"}) {
		t.Fatalf("unexpected recent %v", s.Recent())
	}
}

func TestTitle(t *testing.T) {
	s := New()
	if s.Title() != "Editor" {
		t.Fatalf("got %q", s.Title())
	}
	s.BindToNewFile("/a.txt")
	if s.Title() != "Editor: /a.txt" {
		t.Fatalf("got %q", s.Title())
	}
	s.MarkChanged()
	if s.Title() != "Editor: /a.txt *" {
		t.Fatalf("got %q", s.Title())
	}
}

func TestNewDocumentSaveEndToEnd(t *testing.T) {
	s := New()
	s.MarkChanged()
	if _, err := s.Save("body", okWrite, pick("/tmp/x.txt")); err != nil {
		t.Fatalf("save: %v", err)
	}
	p, ok := s.Path()
	if !ok || p != "/tmp/x.txt" || s.Dirty() {
		t.Fatalf("path=%q ok=%v dirty=%v", p, ok, s.Dirty())
	}
	if !slices.Equal(s.Recent(), []string{"/tmp/x.txt"}) {
		t.Fatalf("unexpected recent %v", s.Recent())
	}
	if s.Title() != "Editor: /tmp/x.txt" {
		t.Fatalf("got %q", s.Title())
	}
}

func TestCloseFlow(t *testing.T) {
	asked := 0
	ask := func(a Answer) AskFunc {
		return func(string) Answer { asked++; return a }
	}
	saveOK := func() error { return nil }

	s := New()
	if ok, _ := s.Close(ask(Cancel), saveOK); !ok || asked != 0 {
		t.Fatalf("clean document must close without asking")
	}

	s.MarkChanged()
	if ok, _ := s.Close(ask(Cancel), saveOK); ok {
		t.Fatalf("cancel must abort close")
	}
	if ok, _ := s.Close(ask(No), func() error { t.Fatalf("no must not save"); return nil }); !ok {
		t.Fatalf("no must close")
	}
	if ok, _ := s.Close(ask(Yes), saveOK); !ok {
		t.Fatalf("yes with successful save must close")
	}
	ok, err := s.Close(ask(Yes), func() error { return ErrCancelled })
	if ok || !IsCancelled(err) {
		t.Fatalf("yes with cancelled save must abort: ok=%v err=%v", ok, err)
	}
	ok, err = s.Close(ask(Yes), func() error { return &WriteError{Path: "/a", Err: errDisk} })
	if ok || err == nil {
		t.Fatalf("yes with failed save must abort")
	}
}

func TestFileIO(t *testing.T) {
	p := filepath.Join(t.TempDir(), "doc.txt")
	if err := WriteFile(p, "line\n"); err != nil {
		t.Fatalf("write: %v", err)
	}
	got, err := ReadFile(p)
	if err != nil || got != "line\n" {
		t.Fatalf("read: %q %v", got, err)
	}
	if _, err := ReadFile(filepath.Join(t.TempDir(), "missing")); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected not-exist, got %v", err)
	}
}
