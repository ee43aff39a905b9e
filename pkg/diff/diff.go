// Package diff compares rendered pages line by line.
package diff

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

const (
	maxDiffLines    = 10000
	truncateMessage = "... (diff truncated, exceeds 10,000 lines) ..."
)

// Markup puts every tag of a rendered page on its own line so that a change to one
// element shows up as one changed line.
func Markup(html []byte) []byte {
	return bytes.ReplaceAll(html, []byte("><"), []byte(">\n<"))
}

// Unified returns a unified-style diff between before and after, or "" when they are
// identical. Diffs longer than 10,000 lines are truncated with a marker line.
func Unified(before, after []byte, beforeLabel, afterLabel string) string {
	if bytes.Equal(before, after) {
		return ""
	}

	dmp := diffmatchpatch.New()
	beforeChars, afterChars, lines := dmp.DiffLinesToChars(string(before), string(after))
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(beforeChars, afterChars, false), lines)

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "--- %s\n", beforeLabel)
	fmt.Fprintf(&buf, "+++ %s\n", afterLabel)
	fmt.Fprintf(&buf, "@@ -1,%d +1,%d @@\n", countLines(before), countLines(after))

	for _, d := range diffs {
		prefix := " "
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			prefix = "-"
		case diffmatchpatch.DiffInsert:
			prefix = "+"
		}
		for _, line := range splitLines(d.Text) {
			buf.WriteString(prefix)
			buf.WriteString(line)
			buf.WriteString("\n")
		}
	}

	out := strings.Split(buf.String(), "\n")
	if len(out) > maxDiffLines {
		return strings.Join(out[:maxDiffLines], "\n") + "\n" + truncateMessage + "\n"
	}
	return buf.String()
}

// Changed reports how many lines were added and removed between before and after.
func Changed(before, after []byte) (added, removed int) {
	dmp := diffmatchpatch.New()
	beforeChars, afterChars, lines := dmp.DiffLinesToChars(string(before), string(after))
	for _, d := range dmp.DiffCharsToLines(dmp.DiffMain(beforeChars, afterChars, false), lines) {
		switch d.Type {
		case diffmatchpatch.DiffInsert:
			added += len(splitLines(d.Text))
		case diffmatchpatch.DiffDelete:
			removed += len(splitLines(d.Text))
		}
	}
	return added, removed
}

func splitLines(text string) []string {
	if text == "" {
		return nil
	}
	return strings.Split(strings.TrimSuffix(text, "\n"), "\n")
}

func countLines(b []byte) int {
	return len(splitLines(string(b)))
}
