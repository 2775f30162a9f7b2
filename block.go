package mdpdf

import "strings"

// SpanKind identifies the inline formatting of a Span.
type SpanKind int

// Span kinds, in rendering precedence order. Code spans suppress
// emphasis parsing inside them.
const (
	SpanText SpanKind = iota
	SpanBold
	SpanItalic
	SpanCode
)

// Span is one inline-formatted fragment of text within a block.
// A block's content is an ordered sequence of spans.
type Span struct {
	Kind SpanKind
	Text string
}

// Block is one parsed unit of markdown content. The concrete types are
// Heading, Paragraph, ListItem, CodeBlock, Table, Blockquote and Rule.
// Blocks are immutable once parsed.
type Block interface {
	isBlock()
}

// Heading is a section heading, levels 1 through 6.
type Heading struct {
	Level int
	Spans []Span
}

// Paragraph is a run of plain lines joined into one flowing text.
type Paragraph struct {
	Spans []Span
}

// ListItem is a single bullet or numbered list entry.
type ListItem struct {
	Ordered bool
	Number  int // display number for ordered items, 0 otherwise
	Depth   int // nesting depth, 1-based
	Spans   []Span
}

// CodeBlock holds verbatim preformatted text. Content is never
// inline-parsed or entity-decoded.
type CodeBlock struct {
	Language string // fence info string, empty for indented blocks
	Text     string // lines joined with \n, no trailing newline
}

// Table holds a header row and zero or more body rows of plain cell text.
type Table struct {
	Header []string
	Rows   [][]string
}

// Blockquote is a quoted passage, one block per run of > lines.
type Blockquote struct {
	Spans []Span
}

// Rule is a thematic break.
type Rule struct{}

func (Heading) isBlock()    {}
func (Paragraph) isBlock()  {}
func (ListItem) isBlock()   {}
func (CodeBlock) isBlock()  {}
func (Table) isBlock()      {}
func (Blockquote) isBlock() {}
func (Rule) isBlock()       {}

// spanText flattens a span sequence to its raw text, dropping formatting.
func spanText(spans []Span) string {
	var b strings.Builder
	for _, s := range spans {
		b.WriteString(s.Text)
	}
	return b.String()
}
