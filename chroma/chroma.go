// Package chroma highlights code block lines for terminal output using the
// chroma syntax highlighter.
package chroma

import (
	"fmt"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/fwojciec/chatmd"
)

// DefaultStyle is the chroma style used when none is configured.
const DefaultStyle = "monokai"

var _ chatmd.Highlighter = (*Highlighter)(nil)

// Highlighter implements chatmd.Highlighter with the terminal256 formatter.
type Highlighter struct {
	Style string // chroma style name; unknown names use chroma's fallback
}

// New returns a Highlighter using style, or DefaultStyle when style is empty.
func New(style string) *Highlighter {
	if style == "" {
		style = DefaultStyle
	}
	return &Highlighter{Style: style}
}

// Highlight returns lines with ANSI color codes applied. Unknown languages
// are guessed from the code and fall back to plain text. An empty language
// returns lines unchanged. If highlighting does not preserve the line count,
// lines are returned unchanged.
func (h *Highlighter) Highlight(language string, lines []string) ([]string, error) {
	if language == "" || len(lines) == 0 {
		return lines, nil
	}
	code := strings.Join(lines, "\n")

	lexer := lexers.Get(language)
	if lexer == nil {
		lexer = lexers.Analyse(code)
	}
	if lexer == nil {
		lexer = lexers.Fallback
	}
	lexer = chroma.Coalesce(lexer)

	style := styles.Get(h.Style)
	if style == nil {
		style = styles.Fallback
	}
	formatter := formatters.Get("terminal256")
	if formatter == nil {
		formatter = formatters.Fallback
	}

	iterator, err := lexer.Tokenise(nil, code)
	if err != nil {
		return nil, fmt.Errorf("tokenise %s: %w", language, err)
	}
	var buf strings.Builder
	if err := formatter.Format(&buf, style, iterator); err != nil {
		return nil, fmt.Errorf("format %s: %w", language, err)
	}

	out := strings.Split(buf.String(), "\n")
	// Lexers end input with a newline; whatever follows it is reset codes.
	if len(out) == len(lines)+1 {
		tail := out[len(out)-1]
		out = out[:len(lines)]
		out[len(out)-1] += tail
	}
	if len(out) != len(lines) {
		return lines, nil
	}
	return out, nil
}
