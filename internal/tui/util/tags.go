package util

import (
	"strings"

	"sidepad/internal/tui/state"
)

// DocInfo is what the status chips are derived from.
type DocInfo struct {
	Text    string
	HasPath bool
	Dirty   bool
	Running bool
}

// ComputeTags calculates the status chips for the document.
//
// The returned slice preserves a stable order:
//
//	Untitled, Modified, Running, Lines, Chars
//
// Lines and Chars are always included; an empty buffer has one line.
func ComputeTags(d DocInfo) []state.Tag {
	tags := make([]state.Tag, 0, 5)
	if !d.HasPath {
		tags = append(tags, state.Tag{Kind: state.UNTITLED})
	}
	if d.Dirty {
		tags = append(tags, state.Tag{Kind: state.MODIFIED})
	}
	if d.Running {
		tags = append(tags, state.Tag{Kind: state.RUNNING})
	}
	tags = append(tags, state.Tag{Kind: state.LINES, Value: lineCount(d.Text)})
	tags = append(tags, state.Tag{Kind: state.CHARS, Value: runeLen(d.Text)})
	return tags
}

func lineCount(s string) int {
	return strings.Count(s, "\n") + 1
}

// runeLen returns the length of s in runes (Unicode code points).
func runeLen(s string) int {
	return len([]rune(s))
}
