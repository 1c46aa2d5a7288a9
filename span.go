package chatmd

import "strings"

// Span is a sealed interface representing one typed fragment of inline
// text within a block. Spans of one block never overlap.
type Span interface {
	span()
}

// Text is literal text.
type Text struct {
	Text string
}

func (Text) span() {}

// Bold is strongly emphasized text.
type Bold struct {
	Children []Span
}

func (Bold) span() {}

// Italic is emphasized text.
type Italic struct {
	Children []Span
}

func (Italic) span() {}

// BoldItalic is text that is both bold and italic.
type BoldItalic struct {
	Children []Span
}

func (BoldItalic) span() {}

// CodeSpan is inline code. Its content is literal.
type CodeSpan struct {
	Code string
}

func (CodeSpan) span() {}

// Strikethrough is struck-out text.
type Strikethrough struct {
	Children []Span
}

func (Strikethrough) span() {}

// Link is a hyperlink with a label.
type Link struct {
	Children []Span
	URL      string
}

func (Link) span() {}

// Image is an image reference. Alt may be empty.
type Image struct {
	Alt string
	URL string
}

func (Image) span() {}

// Interface compliance checks.
var (
	_ Span = Text{}
	_ Span = Bold{}
	_ Span = Italic{}
	_ Span = BoldItalic{}
	_ Span = CodeSpan{}
	_ Span = Strikethrough{}
	_ Span = Link{}
	_ Span = Image{}
)

// PlainText returns the literal text carried by spans with all formatting
// removed. Link URLs are dropped; images contribute their alt text.
func PlainText(spans []Span) string {
	var b strings.Builder
	writePlain(&b, spans)
	return b.String()
}

func writePlain(b *strings.Builder, spans []Span) {
	for _, s := range spans {
		switch s := s.(type) {
		case Text:
			b.WriteString(s.Text)
		case Bold:
			writePlain(b, s.Children)
		case Italic:
			writePlain(b, s.Children)
		case BoldItalic:
			writePlain(b, s.Children)
		case CodeSpan:
			b.WriteString(s.Code)
		case Strikethrough:
			writePlain(b, s.Children)
		case Link:
			writePlain(b, s.Children)
		case Image:
			b.WriteString(s.Alt)
		}
	}
}
