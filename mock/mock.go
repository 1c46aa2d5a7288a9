// Package mock provides test doubles for chatmd interfaces using function
// fields.
package mock

import "github.com/fwojciec/chatmd"

// Interface compliance checks.
var (
	_ chatmd.Parser      = (*Parser)(nil)
	_ chatmd.Renderer    = (*Renderer)(nil)
	_ chatmd.Highlighter = (*Highlighter)(nil)
)

// Parser is a test double for chatmd.Parser.
// Set ParseFn before calling Parse.
type Parser struct {
	ParseFn func(source string) []chatmd.Block
}

// Parse delegates to ParseFn.
func (p *Parser) Parse(source string) []chatmd.Block {
	return p.ParseFn(source)
}

// Renderer is a test double for chatmd.Renderer.
// Set RenderFn before calling Render.
type Renderer struct {
	RenderFn func(blocks []chatmd.Block, width int) string
}

// Render delegates to RenderFn.
func (r *Renderer) Render(blocks []chatmd.Block, width int) string {
	return r.RenderFn(blocks, width)
}

// Highlighter is a test double for chatmd.Highlighter.
// Set HighlightFn before calling Highlight.
type Highlighter struct {
	HighlightFn func(language string, lines []string) ([]string, error)
}

// Highlight delegates to HighlightFn.
func (h *Highlighter) Highlight(language string, lines []string) ([]string, error) {
	return h.HighlightFn(language, lines)
}
