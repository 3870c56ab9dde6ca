// Package diff renders the unsaved changes of the buffer against the last
// persisted content.
package diff

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	dmp "github.com/sergi/go-diff/diffmatchpatch"

	"sidepad/internal/tui/util"
)

// context is how many unchanged lines are kept around each change.
const context = 2

var (
	diffDelLine = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "160", Dark: "203"})
	diffAddLine = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "28", Dark: "114"})
	faint       = lipgloss.NewStyle().Faint(true)
)

type op int

const (
	opEqual op = iota
	opDel
	opAdd
)

type line struct {
	op   op
	text string
}

// lines computes a line-level diff.
func lines(before, after string) []line {
	d := dmp.New()
	a, b, table := d.DiffLinesToChars(before, after)
	diffs := d.DiffCharsToLines(d.DiffMain(a, b, false), table)
	var out []line
	for _, df := range diffs {
		o := opEqual
		switch df.Type {
		case dmp.DiffDelete:
			o = opDel
		case dmp.DiffInsert:
			o = opAdd
		}
		text := strings.TrimSuffix(df.Text, "\n")
		for _, l := range strings.Split(text, "\n") {
			out = append(out, line{op: o, text: l})
		}
	}
	return out
}

// Stats counts added and removed lines.
func Stats(before, after string) (added, removed int) {
	if before == after {
		return 0, 0
	}
	for _, l := range lines(before, after) {
		switch l.op {
		case opAdd:
			added++
		case opDel:
			removed++
		}
	}
	return added, removed
}

// Unified renders a unified diff with unchanged runs collapsed to a few
// lines of context.
func Unified(before, after string, noColor bool) string {
	if before == after {
		return "No changes\n"
	}
	noColor = util.NoColor(noColor)
	render := func(st lipgloss.Style, s string) string {
		if noColor {
			return s
		}
		return st.Render(s)
	}

	ls := lines(before, after)
	keep := make([]bool, len(ls))
	for i, l := range ls {
		if l.op == opEqual {
			continue
		}
		for j := max(0, i-context); j <= min(len(ls)-1, i+context); j++ {
			keep[j] = true
		}
	}

	var sb strings.Builder
	added, removed := Stats(before, after)
	fmt.Fprintf(&sb, "+%d -%d\n", added, removed)
	skipped := false
	for i, l := range ls {
		if !keep[i] {
			skipped = true
			continue
		}
		if skipped {
			sb.WriteString(render(faint, "  …") + "\n")
			skipped = false
		}
		switch l.op {
		case opDel:
			sb.WriteString(render(diffDelLine, "- "+l.text))
		case opAdd:
			sb.WriteString(render(diffAddLine, "+ "+l.text))
		default:
			sb.WriteString(render(faint, "  "+l.text))
		}
		sb.WriteString("\n")
	}
	if skipped {
		sb.WriteString(render(faint, "  …") + "\n")
	}
	return sb.String()
}
