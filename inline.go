package mdpdf

import (
	"html"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// inlineMD is a bare CommonMark instance used only for inline span
// parsing. Goldmark is safe for concurrent use once constructed.
var inlineMD = goldmark.New()

// parseInline converts one line of markdown into formatted spans using
// the goldmark inline engine. Unmatched or malformed markers stay
// literal, code spans suppress emphasis parsing inside them, and HTML
// entities decode everywhere except inside code.
func parseInline(s string) []Span {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	src := []byte(s)
	doc := inlineMD.Parser().Parse(text.NewReader(src))
	var spans []Span
	collectSpans(doc, src, spanState{}, &spans)
	if len(spans) == 0 {
		// Whatever goldmark made of it, the text must survive.
		return []Span{{Kind: SpanText, Text: html.UnescapeString(s)}}
	}
	return spans
}

// spanState tracks the emphasis context while walking inline nodes.
// Bold wins when both flags are set, matching the two-kind span model.
type spanState struct {
	bold   bool
	italic bool
}

func (st spanState) kind() SpanKind {
	switch {
	case st.bold:
		return SpanBold
	case st.italic:
		return SpanItalic
	default:
		return SpanText
	}
}

func collectSpans(node ast.Node, src []byte, st spanState, out *[]Span) {
	for child := node.FirstChild(); child != nil; child = child.NextSibling() {
		switch c := child.(type) {
		case *ast.Text:
			appendSpan(out, st.kind(), html.UnescapeString(string(c.Segment.Value(src))))
			if c.SoftLineBreak() || c.HardLineBreak() {
				appendSpan(out, st.kind(), " ")
			}
		case *ast.String:
			appendSpan(out, st.kind(), html.UnescapeString(string(c.Value)))
		case *ast.CodeSpan:
			appendSpan(out, SpanCode, codeSpanText(c, src))
		case *ast.Emphasis:
			next := st
			if c.Level >= 2 {
				next.bold = true
			} else {
				next.italic = true
			}
			collectSpans(c, src, next, out)
		case *ast.AutoLink:
			appendSpan(out, st.kind(), string(c.URL(src)))
		case *ast.RawHTML:
			// Inline HTML tags are dropped; the surrounding text stays.
		default:
			// Links, images and any other container degrade to their
			// text content.
			if child.HasChildren() {
				collectSpans(child, src, st, out)
			}
		}
	}
}

// codeSpanText gathers the verbatim content of a code span. No entity
// decoding: backtick content is literal.
func codeSpanText(node *ast.CodeSpan, src []byte) string {
	var b strings.Builder
	for child := node.FirstChild(); child != nil; child = child.NextSibling() {
		if t, ok := child.(*ast.Text); ok {
			b.Write(t.Segment.Value(src))
		}
	}
	return b.String()
}

// appendSpan adds text to the span list, merging with the previous
// span when the kind matches so runs stay contiguous.
func appendSpan(out *[]Span, kind SpanKind, text string) {
	if text == "" {
		return
	}
	spans := *out
	if n := len(spans); n > 0 && spans[n-1].Kind == kind {
		spans[n-1].Text += text
		return
	}
	*out = append(spans, Span{Kind: kind, Text: text})
}
