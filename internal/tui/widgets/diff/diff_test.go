package diff

import (
	"strings"
	"testing"
)

func TestUnifiedMarksChanges(t *testing.T) {
	out := Unified("a\nb\nc\n", "a\nx\nc\n", true)
	if !strings.Contains(out, "- b") || !strings.Contains(out, "+ x") || !strings.Contains(out, "  a") {
		t.Fatalf("unexpected diff:\n%s", out)
	}
	if !strings.HasPrefix(out, "+1 -1\n") {
		t.Fatalf("missing stats header:\n%s", out)
	}
}

func TestUnifiedCollapsesContext(t *testing.T) {
	before := "1\n2\n3\n4\n5\n6\n7\n8\n"
	after := "1\n2\n3\n4\n5\n6\n7\nchanged\n"
	out := Unified(before, after, true)
	if strings.Contains(out, "  1\n") {
		t.Fatalf("far context should be collapsed:\n%s", out)
	}
	if !strings.Contains(out, "…") || !strings.Contains(out, "  6") {
		t.Fatalf("expected ellipsis and near context:\n%s", out)
	}
}

func TestNoChanges(t *testing.T) {
	if Unified("same", "same", true) != "No changes\n" {
		t.Fatalf("expected no changes")
	}
	if a, r := Stats("", "one\ntwo"); a != 2 || r != 0 {
		t.Fatalf("got +%d -%d", a, r)
	}
}
