// Package chatmd turns markdown-formatted chat messages into typed display
// blocks. Sub-packages provide the parsers, presentation layers and
// encodings built around these types.
package chatmd

// Parser converts a message body into an ordered sequence of blocks.
// Implementations are total: every string yields a result, never an error.
type Parser interface {
	Parse(source string) []Block
}

// Renderer maps blocks to a visual representation at the given width.
type Renderer interface {
	Render(blocks []Block, width int) string
}

// Highlighter applies syntax highlighting to code lines. The returned
// slice must have the same length as lines.
type Highlighter interface {
	Highlight(language string, lines []string) ([]string, error)
}
