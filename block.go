package chatmd

// Block is a sealed interface representing one structural unit of a
// rendered message. Blocks are produced in source line order.
// The unexported marker method prevents external implementations.
type Block interface {
	block()
}

// Heading is a heading line. Level is in the range 1-4.
type Heading struct {
	Level int
	Spans []Span
}

func (Heading) block() {}

// Paragraph is a line of ordinary text.
type Paragraph struct {
	Spans []Span
}

func (Paragraph) block() {}

// Blockquote is a quoted line.
type Blockquote struct {
	Spans []Span
}

func (Blockquote) block() {}

// HorizontalRule is a thematic break.
type HorizontalRule struct{}

func (HorizontalRule) block() {}

// BulletItem is an unordered list item.
type BulletItem struct {
	Spans []Span
}

func (BulletItem) block() {}

// OrderedItem is a numbered list item. Ordinal holds the digits exactly
// as written in the source.
type OrderedItem struct {
	Ordinal string
	Spans   []Span
}

func (OrderedItem) block() {}

// TaskItem is a checklist item.
type TaskItem struct {
	Checked bool
	Spans   []Span
}

func (TaskItem) block() {}

// CodeBlock is a fenced multi-line code block. Lines are kept verbatim and
// are never interpreted as markdown. Language may be empty.
type CodeBlock struct {
	Language string
	Lines    []string
}

func (CodeBlock) block() {}

// InlineCode is a fenced code block written on a single line.
type InlineCode struct {
	Code string
}

func (InlineCode) block() {}

// Table is a pipe table. Rows may have a different number of cells than
// Header; ragged rows are kept as they are.
type Table struct {
	Header [][]Span
	Rows   [][][]Span
}

func (Table) block() {}

// Spacer represents a blank source line.
type Spacer struct{}

func (Spacer) block() {}

// Interface compliance checks.
var (
	_ Block = Heading{}
	_ Block = Paragraph{}
	_ Block = Blockquote{}
	_ Block = HorizontalRule{}
	_ Block = BulletItem{}
	_ Block = OrderedItem{}
	_ Block = TaskItem{}
	_ Block = CodeBlock{}
	_ Block = InlineCode{}
	_ Block = Table{}
	_ Block = Spacer{}
)
