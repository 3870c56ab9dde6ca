package util

import (
	"testing"

	"sidepad/internal/tui/state"
)

func findKind(tags []state.Tag, k state.TagKind) (idx int, ok bool) {
	for i, t := range tags {
		if t.Kind == k {
			return i, true
		}
	}
	return -1, false
}

func TestUntitledModified(t *testing.T) {
	tags := ComputeTags(DocInfo{Text: "héllo\nworld", Dirty: true})
	if _, ok := findKind(tags, state.UNTITLED); !ok {
		t.Fatalf("expected UNTITLED tag")
	}
	if _, ok := findKind(tags, state.MODIFIED); !ok {
		t.Fatalf("expected MODIFIED tag")
	}
	if idx, ok := findKind(tags, state.LINES); !ok || tags[idx].Value != 2 {
		t.Fatalf("expected LINES=2")
	}
	if idx, ok := findKind(tags, state.CHARS); !ok || tags[idx].Value != 11 {
		t.Fatalf("expected CHARS=11 runes")
	}
}

func TestSavedDocumentHasOnlyCounters(t *testing.T) {
	tags := ComputeTags(DocInfo{HasPath: true})
	if len(tags) != 2 || tags[0].Kind != state.LINES || tags[0].Value != 1 || tags[1].Kind != state.CHARS {
		t.Fatalf("unexpected tags %+v", tags)
	}
}

func TestStableOrder(t *testing.T) {
	tags := ComputeTags(DocInfo{Text: "x", Dirty: true, Running: true})
	order := []state.TagKind{state.UNTITLED, state.MODIFIED, state.RUNNING, state.LINES, state.CHARS}
	if len(tags) != len(order) {
		t.Fatalf("expected %d tags, got %d", len(order), len(tags))
	}
	for i, k := range order {
		if tags[i].Kind != k {
			t.Fatalf("tag %d: got %v want %v", i, tags[i].Kind, k)
		}
	}
}
