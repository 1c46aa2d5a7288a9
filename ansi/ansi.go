// Package ansi cleans untrusted markdown before it reaches the parser, so
// escape sequences embedded in chat output cannot drive the terminal.
package ansi

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// Clean strips ANSI escape sequences and control characters from source.
// Tabs and newlines are preserved. CRLF and lone CR line endings become LF.
func Clean(source string) string {
	s := ansi.Strip(source)
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")

	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r == '\t' || r == '\n' || !isControl(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// isControl reports C0, DEL and C1 control characters.
func isControl(r rune) bool {
	return r <= 0x1F || (r >= 0x7F && r <= 0x9F)
}
