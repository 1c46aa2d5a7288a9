// Package markdown converts chat message markdown into chatmd blocks using a
// line-oriented scanner and a regexp-based inline tokenizer. It handles the
// subset of markdown language models tend to emit: headings, lists, task
// lists, pipe tables, fenced code, quotes, rules and inline emphasis.
//
// Parsing is total and has no shared state, so Parse may be called
// concurrently.
package markdown

import (
	"strings"

	"github.com/fwojciec/chatmd"
)

var _ chatmd.Parser = Parser{}

// Parser implements chatmd.Parser with Parse.
type Parser struct{}

// Parse implements chatmd.Parser.
func (Parser) Parse(source string) []chatmd.Block {
	return Parse(source)
}

// Parse splits source on line feeds and classifies each line into blocks.
// An empty source yields no blocks.
func Parse(source string) []chatmd.Block {
	if source == "" {
		return nil
	}
	var (
		s      scanner
		out    []chatmd.Block
		blocks []chatmd.Block
	)
	for _, line := range strings.Split(source, "\n") {
		s, out = s.step(line)
		blocks = append(blocks, out...)
	}
	return append(blocks, s.finish()...)
}
