// Package goldmark parses markdown with goldmark and its GitHub Flavored
// Markdown extensions, then maps the AST onto chatmd blocks. It follows
// CommonMark rules, so it is stricter than the line scanner in package
// markdown: tables need a delimiter row and nested emphasis is resolved.
package goldmark

import (
	"strconv"
	"strings"

	"github.com/fwojciec/chatmd"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	east "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/text"
)

var _ chatmd.Parser = Parser{}

// Parser implements chatmd.Parser with Parse.
type Parser struct{}

// Parse implements chatmd.Parser.
func (Parser) Parse(source string) []chatmd.Block {
	return Parse(source)
}

// Parse parses source and returns its blocks. Lists are flattened into one
// item block per list item, nested lists included. Headings deeper than
// level 4 become paragraphs.
func Parse(source string) []chatmd.Block {
	if source == "" {
		return nil
	}
	src := []byte(source)
	md := goldmark.New(goldmark.WithExtensions(extension.GFM))
	doc := md.Parser().Parse(text.NewReader(src))

	w := &walker{source: src}
	w.walkBlocks(doc)
	return w.blocks
}

type walker struct {
	source []byte
	blocks []chatmd.Block
}

func (w *walker) emit(b chatmd.Block) {
	w.blocks = append(w.blocks, b)
}

func (w *walker) walkBlocks(node ast.Node) {
	for c := node.FirstChild(); c != nil; c = c.NextSibling() {
		w.block(c)
	}
}

func (w *walker) block(node ast.Node) {
	switch n := node.(type) {
	case *ast.Heading:
		spans := w.inlines(n)
		if n.Level > 4 {
			w.emit(chatmd.Paragraph{Spans: spans})
			return
		}
		w.emit(chatmd.Heading{Level: n.Level, Spans: spans})

	case *ast.Paragraph, *ast.TextBlock:
		w.emit(chatmd.Paragraph{Spans: w.inlines(n)})

	case *ast.Blockquote:
		for c := n.FirstChild(); c != nil; c = c.NextSibling() {
			switch c.(type) {
			case *ast.Paragraph, *ast.TextBlock:
				w.emit(chatmd.Blockquote{Spans: w.inlines(c)})
			default:
				w.block(c)
			}
		}

	case *ast.ThematicBreak:
		w.emit(chatmd.HorizontalRule{})

	case *ast.FencedCodeBlock:
		w.emit(chatmd.CodeBlock{
			Language: string(n.Language(w.source)),
			Lines:    w.lines(n),
		})

	case *ast.CodeBlock:
		w.emit(chatmd.CodeBlock{Lines: w.lines(n)})

	case *ast.HTMLBlock:
		w.emit(chatmd.CodeBlock{Language: "html", Lines: w.lines(n)})

	case *ast.List:
		w.list(n)

	case *east.Table:
		w.table(n)

	default:
		w.walkBlocks(node)
	}
}

func (w *walker) lines(n ast.Node) []string {
	segs := n.Lines()
	out := make([]string, 0, segs.Len())
	for i := 0; i < segs.Len(); i++ {
		seg := segs.At(i)
		out = append(out, strings.TrimRight(string(seg.Value(w.source)), "\r\n"))
	}
	return out
}

func (w *walker) list(l *ast.List) {
	ordinal := l.Start
	for c := l.FirstChild(); c != nil; c = c.NextSibling() {
		item, ok := c.(*ast.ListItem)
		if !ok {
			continue
		}
		first := true
		for ic := item.FirstChild(); ic != nil; ic = ic.NextSibling() {
			switch in := ic.(type) {
			case *ast.Paragraph, *ast.TextBlock:
				if first {
					w.emit(w.listItem(l, in, ordinal))
					first = false
					continue
				}
				w.emit(chatmd.Paragraph{Spans: w.inlines(in)})
			case *ast.List:
				w.list(in)
			default:
				w.block(ic)
			}
		}
		ordinal++
	}
}

func (w *walker) listItem(l *ast.List, content ast.Node, ordinal int) chatmd.Block {
	if box, ok := content.FirstChild().(*east.TaskCheckBox); ok {
		return chatmd.TaskItem{
			Checked: box.IsChecked,
			Spans:   trimLeft(w.inlinesFrom(box.NextSibling())),
		}
	}
	spans := w.inlines(content)
	if l.IsOrdered() {
		return chatmd.OrderedItem{Ordinal: strconv.Itoa(ordinal), Spans: spans}
	}
	return chatmd.BulletItem{Spans: spans}
}

func (w *walker) table(t *east.Table) {
	var out chatmd.Table
	for c := t.FirstChild(); c != nil; c = c.NextSibling() {
		switch c.(type) {
		case *east.TableHeader:
			out.Header = w.cells(c)
		case *east.TableRow:
			out.Rows = append(out.Rows, w.cells(c))
		}
	}
	w.emit(out)
}

func (w *walker) cells(row ast.Node) [][]chatmd.Span {
	var cells [][]chatmd.Span
	for c := row.FirstChild(); c != nil; c = c.NextSibling() {
		cells = append(cells, w.inlines(c))
	}
	return cells
}

func (w *walker) inlines(n ast.Node) []chatmd.Span {
	return w.inlinesFrom(n.FirstChild())
}

func (w *walker) inlinesFrom(first ast.Node) []chatmd.Span {
	var spans []chatmd.Span
	for c := first; c != nil; c = c.NextSibling() {
		spans = w.inline(c, spans)
	}
	return mergeText(spans)
}

func (w *walker) inline(node ast.Node, spans []chatmd.Span) []chatmd.Span {
	switch n := node.(type) {
	case *ast.Text:
		s := string(n.Segment.Value(w.source))
		// Spans are single-line, so line breaks collapse to a space.
		if n.SoftLineBreak() || n.HardLineBreak() {
			s += " "
		}
		return append(spans, chatmd.Text{Text: s})

	case *ast.String:
		return append(spans, chatmd.Text{Text: string(n.Value)})

	case *ast.Emphasis:
		// goldmark represents ***x*** as emphasis nested in strong
		// emphasis (or the reverse).
		if inner, ok := n.FirstChild().(*ast.Emphasis); ok && n.FirstChild() == n.LastChild() && inner.Level != n.Level {
			return append(spans, chatmd.BoldItalic{Children: w.inlines(inner)})
		}
		if n.Level == 1 {
			return append(spans, chatmd.Italic{Children: w.inlines(n)})
		}
		return append(spans, chatmd.Bold{Children: w.inlines(n)})

	case *ast.CodeSpan:
		return append(spans, chatmd.CodeSpan{Code: chatmd.PlainText(w.inlines(n))})

	case *east.Strikethrough:
		return append(spans, chatmd.Strikethrough{Children: w.inlines(n)})

	case *ast.Link:
		return append(spans, chatmd.Link{Children: w.inlines(n), URL: string(n.Destination)})

	case *ast.AutoLink:
		return append(spans, chatmd.Link{
			Children: []chatmd.Span{chatmd.Text{Text: string(n.Label(w.source))}},
			URL:      string(n.URL(w.source)),
		})

	case *ast.Image:
		return append(spans, chatmd.Image{
			Alt: chatmd.PlainText(w.inlines(n)),
			URL: string(n.Destination),
		})

	case *ast.RawHTML:
		var b strings.Builder
		for i := 0; i < n.Segments.Len(); i++ {
			seg := n.Segments.At(i)
			b.Write(seg.Value(w.source))
		}
		return append(spans, chatmd.Text{Text: b.String()})

	case *east.TaskCheckBox:
		return spans

	default:
		for c := node.FirstChild(); c != nil; c = c.NextSibling() {
			spans = w.inline(c, spans)
		}
		return spans
	}
}

// mergeText joins adjacent Text spans; goldmark splits text at every
// delimiter it considered.
func mergeText(spans []chatmd.Span) []chatmd.Span {
	var out []chatmd.Span
	for _, s := range spans {
		t, ok := s.(chatmd.Text)
		if !ok {
			out = append(out, s)
			continue
		}
		if n := len(out); n > 0 {
			if prev, ok := out[n-1].(chatmd.Text); ok {
				out[n-1] = chatmd.Text{Text: prev.Text + t.Text}
				continue
			}
		}
		out = append(out, t)
	}
	return out
}

func trimLeft(spans []chatmd.Span) []chatmd.Span {
	if len(spans) == 0 {
		return spans
	}
	if t, ok := spans[0].(chatmd.Text); ok {
		trimmed := strings.TrimLeft(t.Text, " \t")
		if trimmed == "" {
			return spans[1:]
		}
		spans[0] = chatmd.Text{Text: trimmed}
	}
	return spans
}
