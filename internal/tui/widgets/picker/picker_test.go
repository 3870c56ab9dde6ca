package picker

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestSuggestionsFilterAndMarkDirs(t *testing.T) {
	dir := t.TempDir()
	_ = os.WriteFile(filepath.Join(dir, "notes.txt"), nil, 0644)
	_ = os.WriteFile(filepath.Join(dir, "other.md"), nil, 0644)
	_ = os.Mkdir(filepath.Join(dir, "nested"), 0755)

	got := Suggestions(filepath.Join(dir, "n"), 8)
	if len(got) != 2 {
		t.Fatalf("expected notes.txt and nested/, got %v", got)
	}
	foundDir := false
	for _, s := range got {
		if strings.HasSuffix(s, "nested"+string(filepath.Separator)) {
			foundDir = true
		}
	}
	if !foundDir {
		t.Fatalf("directories should carry a trailing separator: %v", got)
	}
	if all := Suggestions(dir+string(filepath.Separator), 8); len(all) != 3 {
		t.Fatalf("trailing separator lists the directory, got %v", all)
	}
	if Suggestions("  ", 8) != nil {
		t.Fatalf("blank input has no suggestions")
	}
}

func TestExpandPath(t *testing.T) {
	t.Setenv("SIDEPAD_TEST_DIR", "/tmp/sp")
	if got := ExpandPath("$SIDEPAD_TEST_DIR/a.txt"); got != "/tmp/sp/a.txt" {
		t.Fatalf("got %q", got)
	}
	if h, err := os.UserHomeDir(); err == nil {
		if got := ExpandPath("~/x"); got != filepath.Join(h, "x") {
			t.Fatalf("got %q", got)
		}
	}
	if !filepath.IsAbs(ExpandPath("rel.txt")) {
		t.Fatalf("relative paths must become absolute")
	}
}

func TestEnterChoosesFileAndEscCancels(t *testing.T) {
	dir := t.TempDir()
	p := New()
	p.Start(Save, "Save as", dir)
	for _, r := range "out.txt" {
		p.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	cmd := p.Update(tea.KeyMsg{Type: tea.KeyEnter})
	msg, ok := cmd().(ChosenMsg)
	if !ok || !msg.OK || msg.Mode != Save || msg.Path != filepath.Join(dir, "out.txt") {
		t.Fatalf("unexpected result %+v", msg)
	}

	p.Start(Open, "Open", dir)
	msg = p.Update(tea.KeyMsg{Type: tea.KeyEsc})().(ChosenMsg)
	if msg.OK || msg.Mode != Open {
		t.Fatalf("esc must cancel: %+v", msg)
	}
}

func TestEnterOnDirectoryNavigates(t *testing.T) {
	dir := t.TempDir()
	_ = os.Mkdir(filepath.Join(dir, "sub"), 0755)
	p := New()
	p.Start(Open, "Open", filepath.Join(dir, "sub"))
	p.input.SetValue(filepath.Join(dir, "sub"))
	if cmd := p.Update(tea.KeyMsg{Type: tea.KeyEnter}); cmd != nil {
		t.Fatalf("enter on a directory must not close the prompt")
	}
	if !strings.HasSuffix(p.Value(), "sub"+string(filepath.Separator)) {
		t.Fatalf("expected navigation into sub, got %q", p.Value())
	}
}
