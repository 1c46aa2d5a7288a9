// Package lipgloss renders chatmd blocks to ANSI-styled terminal output
// using lipgloss for styling.
package lipgloss

import (
	"bytes"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/fwojciec/chatmd"
)

const (
	defaultWidth = 80
	minWidth     = 10
)

var _ chatmd.Renderer = (*Renderer)(nil)

// Renderer implements chatmd.Renderer for terminals.
type Renderer struct {
	Theme chatmd.Theme

	// Highlighter colors code blocks that declare a language. Optional.
	Highlighter chatmd.Highlighter
}

// New returns a Renderer using theme and an optional highlighter.
func New(theme chatmd.Theme, h chatmd.Highlighter) *Renderer {
	return &Renderer{Theme: theme, Highlighter: h}
}

// Render returns the blocks as styled text. Paragraphs, quotes and list
// items are word-wrapped to width; code is never reflowed. A width of zero
// or less means 80 columns.
func (r *Renderer) Render(blocks []chatmd.Block, width int) string {
	if len(blocks) == 0 {
		return ""
	}
	if width <= 0 {
		width = defaultWidth
	}
	s := newStyles(r.Theme)
	var buf bytes.Buffer
	for _, b := range blocks {
		r.renderBlock(&buf, b, s, width)
	}
	return strings.TrimRight(buf.String(), "\n")
}

func (r *Renderer) renderBlock(buf *bytes.Buffer, block chatmd.Block, s styles, width int) {
	switch b := block.(type) {
	case chatmd.Heading:
		style := s.headings[2]
		if b.Level >= 1 && b.Level <= 4 {
			style = s.headings[b.Level]
		}
		buf.WriteString(wrap(style.Render(s.inline(b.Spans)), width))
		buf.WriteString("\n")

	case chatmd.Paragraph:
		buf.WriteString(wrap(s.inline(b.Spans), width))
		buf.WriteString("\n")

	case chatmd.Blockquote:
		gutter := s.quote.Render("│") + " "
		wrapped := wrap(s.italic.Render(s.inline(b.Spans)), width-2)
		for _, line := range strings.Split(wrapped, "\n") {
			buf.WriteString(gutter + line + "\n")
		}

	case chatmd.HorizontalRule:
		buf.WriteString(s.muted.Render(strings.Repeat("─", width)))
		buf.WriteString("\n")

	case chatmd.BulletItem:
		writeListItem(buf, s.accent.Render("•")+" ", 2, s.inline(b.Spans), width)

	case chatmd.OrderedItem:
		marker := b.Ordinal + ". "
		writeListItem(buf, s.accent.Render(marker), len(marker), s.inline(b.Spans), width)

	case chatmd.TaskItem:
		marker, content := s.muted.Render("☐")+" ", s.inline(b.Spans)
		if b.Checked {
			marker = s.success.Render("☑") + " "
			content = s.done.Render(chatmd.PlainText(b.Spans))
		}
		writeListItem(buf, marker, 2, content, width)

	case chatmd.CodeBlock:
		r.renderCode(buf, b, s)

	case chatmd.InlineCode:
		buf.WriteString(s.muted.Render("│") + " " + s.code.Render(b.Code))
		buf.WriteString("\n")

	case chatmd.Table:
		renderTable(buf, b, s, width)

	case chatmd.Spacer:
		buf.WriteString("\n")
	}
}

func (r *Renderer) renderCode(buf *bytes.Buffer, b chatmd.CodeBlock, s styles) {
	label := b.Language
	if label == "" {
		label = "code"
	}
	buf.WriteString(s.muted.Render(label))
	buf.WriteString("\n")

	lines := make([]string, len(b.Lines))
	for i, l := range b.Lines {
		lines[i] = s.code.Render(l)
	}
	if r.Highlighter != nil && b.Language != "" {
		hl, err := r.Highlighter.Highlight(b.Language, b.Lines)
		if err == nil && len(hl) == len(b.Lines) {
			lines = hl
		}
	}
	gutter := s.muted.Render("│") + " "
	for _, l := range lines {
		buf.WriteString(gutter + l + "\n")
	}
}

// inline renders spans as styled text. Formatting inside children is
// applied recursively.
func (s styles) inline(spans []chatmd.Span) string {
	var b strings.Builder
	for _, span := range spans {
		switch sp := span.(type) {
		case chatmd.Text:
			b.WriteString(sp.Text)
		case chatmd.Bold:
			b.WriteString(s.bold.Render(s.inline(sp.Children)))
		case chatmd.Italic:
			b.WriteString(s.italic.Render(s.inline(sp.Children)))
		case chatmd.BoldItalic:
			b.WriteString(s.boldItalic.Render(s.inline(sp.Children)))
		case chatmd.Strikethrough:
			b.WriteString(s.strike.Render(s.inline(sp.Children)))
		case chatmd.CodeSpan:
			b.WriteString(s.code.Render(sp.Code))
		case chatmd.Link:
			b.WriteString(s.link.Render(s.inline(sp.Children)))
			b.WriteString(" ")
			b.WriteString(s.muted.Render("(" + sp.URL + ")"))
		case chatmd.Image:
			label := "[image]"
			if sp.Alt != "" {
				label = "[image: " + sp.Alt + "]"
			}
			b.WriteString(s.link.Render(label))
			b.WriteString(" ")
			b.WriteString(s.muted.Render("(" + sp.URL + ")"))
		}
	}
	return b.String()
}

// writeListItem writes a list item with continuation lines indented under
// the content. markerWidth is the visible width of marker.
func writeListItem(buf *bytes.Buffer, marker string, markerWidth int, content string, width int) {
	wrapped := wrap(content, width-markerWidth)
	continuation := strings.Repeat(" ", markerWidth)
	for i, line := range strings.Split(wrapped, "\n") {
		if i == 0 {
			buf.WriteString(marker + line + "\n")
			continue
		}
		buf.WriteString(continuation + line + "\n")
	}
}

// wrap word-wraps s to width and drops the padding lipgloss adds to short
// lines.
func wrap(s string, width int) string {
	if width < minWidth {
		width = minWidth
	}
	wrapped := lipgloss.NewStyle().Width(width).Render(s)
	lines := strings.Split(wrapped, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimRight(l, " ")
	}
	return strings.Join(lines, "\n")
}
