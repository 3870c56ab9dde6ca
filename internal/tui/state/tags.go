package state

// TagKind enumerates the status chips shown for the document.
type TagKind int

const (
	// Stable ordering for display: Untitled, Modified, Running, Lines, Chars
	UNTITLED TagKind = iota
	MODIFIED
	RUNNING
	LINES
	CHARS
)

// Tag represents a single status chip. Value is used for numeric counters
// (line and rune counts). Non-numeric tags use Value = 0.
type Tag struct {
	Kind  TagKind
	Value int
}
