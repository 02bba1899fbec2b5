package generator

import (
	"bytes"
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

// DefaultContext is the number of unchanged lines shown around a change.
const DefaultContext = 3

// maxDiffLines bounds the inputs Unified will diff.
const maxDiffLines = 10000

type editOp int

const (
	opEqual editOp = iota
	opInsert
	opDelete
)

// edit is one line of the script. a and b count the old and new lines
// consumed before it.
type edit struct {
	op   editOp
	text string
	a, b int
}

// Unified returns a unified diff of old and newer with DefaultContext lines
// of context, or "" when they are identical.
func Unified(oldName, newName string, old, newer []byte) string {
	return UnifiedContext(oldName, newName, old, newer, DefaultContext)
}

// UnifiedContext is Unified with an explicit context size.
func UnifiedContext(oldName, newName string, old, newer []byte, context int) string {
	if bytes.Equal(old, newer) {
		return ""
	}
	if isBinary(old) || isBinary(newer) {
		return "Binary files differ\n"
	}

	a, b := splitLines(old), splitLines(newer)
	if len(a) > maxDiffLines || len(b) > maxDiffLines {
		return fmt.Sprintf("Files too large for diff (%d and %d lines)\n", len(a), len(b))
	}

	edits := myers(a, b)
	hunks := groupHunks(edits, context)
	if len(hunks) == 0 {
		// Only the trailing newline differs.
		return ""
	}

	var buf strings.Builder
	fmt.Fprintf(&buf, "--- %s\n+++ %s\n", oldName, newName)
	for _, h := range hunks {
		writeHunk(&buf, edits[h[0]:h[1]])
	}
	return buf.String()
}

// myers computes the shortest edit script from a to b, following
// "An O(ND) Difference Algorithm and Its Variations" (Myers, 1986).
func myers(a, b []string) []edit {
	n, m := len(a), len(b)
	limit := n + m
	off := limit + 1
	v := make([]int, 2*limit+3)
	var trace [][]int

	for d := 0; d <= limit; d++ {
		trace = append(trace, append([]int(nil), v...))
		for k := -d; k <= d; k += 2 {
			var x int
			if k == -d || (k != d && v[off+k-1] < v[off+k+1]) {
				x = v[off+k+1]
			} else {
				x = v[off+k-1] + 1
			}
			y := x - k
			for x < n && y < m && a[x] == b[y] {
				x++
				y++
			}
			v[off+k] = x
			if x >= n && y >= m {
				return backtrack(a, b, trace, off)
			}
		}
	}
	return nil
}

func backtrack(a, b []string, trace [][]int, off int) []edit {
	x, y := len(a), len(b)
	var rev []edit

	for d := len(trace) - 1; d >= 0; d-- {
		v := trace[d]
		k := x - y

		prevK := k - 1
		if k == -d || (k != d && v[off+k-1] < v[off+k+1]) {
			prevK = k + 1
		}
		prevX := v[off+prevK]
		prevY := prevX - prevK

		for x > prevX && y > prevY {
			x--
			y--
			rev = append(rev, edit{op: opEqual, text: a[x], a: x, b: y})
		}
		if d == 0 {
			break
		}
		if x == prevX {
			y--
			rev = append(rev, edit{op: opInsert, text: b[y], a: x, b: y})
		} else {
			x--
			rev = append(rev, edit{op: opDelete, text: a[x], a: x, b: y})
		}
	}

	for i, j := 0, len(rev)-1; i < j; i, j = i+1, j-1 {
		rev[i], rev[j] = rev[j], rev[i]
	}
	return rev
}

// groupHunks returns [start, end) index ranges into edits. Changes closer
// than 2*context unchanged lines share a hunk.
func groupHunks(edits []edit, context int) [][2]int {
	var hunks [][2]int
	for i := 0; i < len(edits); i++ {
		if edits[i].op == opEqual {
			continue
		}
		start := max(0, i-context)
		end := i + 1
		for j := i + 1; j < len(edits); j++ {
			if edits[j].op != opEqual {
				end = j + 1
				continue
			}
			if j-end >= 2*context {
				break
			}
		}
		end = min(len(edits), end+context)

		if n := len(hunks); n > 0 && hunks[n-1][1] >= start {
			hunks[n-1][1] = end
		} else {
			hunks = append(hunks, [2]int{start, end})
		}
		i = end - 1
	}
	return hunks
}

func writeHunk(buf *strings.Builder, lines []edit) {
	var oldCount, newCount int
	for _, e := range lines {
		if e.op != opInsert {
			oldCount++
		}
		if e.op != opDelete {
			newCount++
		}
	}
	// An empty side is numbered by the line before the hunk.
	oldStart, newStart := lines[0].a+1, lines[0].b+1
	if oldCount == 0 {
		oldStart--
	}
	if newCount == 0 {
		newStart--
	}

	fmt.Fprintf(buf, "@@ -%d,%d +%d,%d @@\n", oldStart, oldCount, newStart, newCount)
	for _, e := range lines {
		switch e.op {
		case opInsert:
			buf.WriteString("+")
		case opDelete:
			buf.WriteString("-")
		default:
			buf.WriteString(" ")
		}
		buf.WriteString(e.text)
		buf.WriteString("\n")
	}
}

var (
	headerStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	hunkStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("cyan")).Bold(true)
	addedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("22"))
	removedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("52"))
)

// Colorize styles a unified diff for the terminal. Tabs are expanded to
// four columns and lines wider than width are truncated.
func Colorize(diff string, width int) string {
	if diff == "" {
		return ""
	}

	var buf strings.Builder
	for _, line := range strings.Split(strings.TrimSuffix(diff, "\n"), "\n") {
		line = truncateLine(expandTabs(line, 4), width)
		switch {
		case strings.HasPrefix(line, "--- "), strings.HasPrefix(line, "+++ "):
			line = headerStyle.Render(line)
		case strings.HasPrefix(line, "@@"):
			line = hunkStyle.Render(line)
		case strings.HasPrefix(line, "+"):
			line = addedStyle.Render(line)
		case strings.HasPrefix(line, "-"):
			line = removedStyle.Render(line)
		}
		buf.WriteString(line)
		buf.WriteString("\n")
	}
	return buf.String()
}

// isBinary reports content with a NUL byte in its first 8 KiB.
func isBinary(data []byte) bool {
	return bytes.IndexByte(data[:min(len(data), 8192)], 0) != -1
}

// splitLines splits on "\n", dropping the empty element after a final newline.
func splitLines(data []byte) []string {
	if len(data) == 0 {
		return nil
	}
	return strings.Split(strings.TrimSuffix(string(data), "\n"), "\n")
}

func expandTabs(s string, tabWidth int) string {
	if !strings.Contains(s, "\t") {
		return s
	}
	var buf strings.Builder
	col := 0
	for _, r := range s {
		if r == '\t' {
			spaces := tabWidth - col%tabWidth
			buf.WriteString(strings.Repeat(" ", spaces))
			col += spaces
			continue
		}
		buf.WriteRune(r)
		col++
	}
	return buf.String()
}

// truncateLine shortens s to maxWidth runes, marking the cut with "...".
func truncateLine(s string, maxWidth int) string {
	if maxWidth <= 0 {
		maxWidth = 80
	}
	if utf8.RuneCountInString(s) <= maxWidth {
		return s
	}
	if maxWidth < 3 {
		return "..."[:maxWidth]
	}
	return string([]rune(s)[:maxWidth-3]) + "..."
}

// TerminalWidth returns the width of stdout, or 80 when it is not a terminal.
func TerminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return 80
	}
	return width
}
