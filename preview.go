package mdpdf

import (
	"html"
	"strconv"
	"strings"
)

// escapeHTML escapes text for interpolation into markup.
func escapeHTML(s string) string { return html.EscapeString(s) }

// htmlPreview renders block sequences as an HTML fragment whose class
// names line up with the stylesheet served by StylesheetCSS.
type htmlPreview struct{}

func (htmlPreview) RenderHTML(blocks []Block) string {
	var sb strings.Builder
	var lists listStack
	for _, b := range blocks {
		if li, ok := b.(ListItem); ok {
			lists.open(&sb, li)
			writeListItemHTML(&sb, li)
			continue
		}
		lists.closeAll(&sb)
		writeBlockHTML(&sb, b)
	}
	lists.closeAll(&sb)
	return sb.String()
}

// listStack tracks open list elements so consecutive items nest into
// ul/ol trees. One entry per open level, true for ordered.
type listStack struct {
	kinds []bool
}

func (ls *listStack) open(sb *strings.Builder, li ListItem) {
	for len(ls.kinds) > li.Depth {
		ls.pop(sb)
	}
	if len(ls.kinds) == li.Depth && ls.kinds[li.Depth-1] != li.Ordered {
		ls.pop(sb)
	}
	for len(ls.kinds) < li.Depth {
		// Skipped depths open as plain wrappers; only the item's own
		// level takes its ordered kind.
		ordered := li.Ordered && len(ls.kinds) == li.Depth-1
		if ordered {
			sb.WriteString(`<ol class="` + styleName("list") + `">`)
		} else {
			sb.WriteString(`<ul class="` + styleName("list") + `">`)
		}
		ls.kinds = append(ls.kinds, ordered)
	}
}

func (ls *listStack) pop(sb *strings.Builder) {
	if len(ls.kinds) == 0 {
		return
	}
	if ls.kinds[len(ls.kinds)-1] {
		sb.WriteString("</ol>\n")
	} else {
		sb.WriteString("</ul>\n")
	}
	ls.kinds = ls.kinds[:len(ls.kinds)-1]
}

func (ls *listStack) closeAll(sb *strings.Builder) {
	for len(ls.kinds) > 0 {
		ls.pop(sb)
	}
}

func writeListItemHTML(sb *strings.Builder, li ListItem) {
	if li.Ordered {
		// The value attribute carries the computed number so restarted
		// runs survive the round trip through HTML.
		sb.WriteString(`<li value="` + strconv.Itoa(li.Number) + `">`)
	} else {
		sb.WriteString("<li>")
	}
	writeSpansHTML(sb, li.Spans)
	sb.WriteString("</li>")
}

func writeBlockHTML(sb *strings.Builder, b Block) {
	switch blk := b.(type) {
	case Heading:
		tag := "h" + strconv.Itoa(blk.Level)
		sb.WriteString("<" + tag + ` class="` + styleName(tag) + `">`)
		writeSpansHTML(sb, blk.Spans)
		sb.WriteString("</" + tag + ">\n")
	case Paragraph:
		sb.WriteString(`<p class="` + styleName("body") + `">`)
		writeSpansHTML(sb, blk.Spans)
		sb.WriteString("</p>\n")
	case CodeBlock:
		sb.WriteString(`<div class="` + styleName("code") + `">`)
		sb.WriteString(formatCodeHTML(blk.Language, blk.Text))
		sb.WriteString("</div>\n")
	case Table:
		writeTableHTML(sb, blk)
	case Blockquote:
		sb.WriteString(`<blockquote class="` + styleName("blockquote") + `">`)
		writeSpansHTML(sb, blk.Spans)
		sb.WriteString("</blockquote>\n")
	case Rule:
		sb.WriteString("<hr/>\n")
	}
}

func writeSpansHTML(sb *strings.Builder, spans []Span) {
	for _, sp := range spans {
		text := escapeHTML(sp.Text)
		switch sp.Kind {
		case SpanBold:
			sb.WriteString("<strong>" + text + "</strong>")
		case SpanItalic:
			sb.WriteString("<em>" + text + "</em>")
		case SpanCode:
			sb.WriteString(`<code class="` + styleName("inline-code") + `">` + text + "</code>")
		default:
			sb.WriteString(text)
		}
	}
}

func writeTableHTML(sb *strings.Builder, t Table) {
	sb.WriteString(`<table class="mdpdf-table"><thead><tr>`)
	for _, cell := range t.Header {
		sb.WriteString(`<th class="` + styleName("table-header") + `">` + escapeHTML(cell) + "</th>")
	}
	sb.WriteString("</tr></thead><tbody>")
	for _, row := range t.Rows {
		sb.WriteString("<tr>")
		for _, cell := range row {
			sb.WriteString(`<td class="` + styleName("table-cell") + `">` + escapeHTML(cell) + "</td>")
		}
		sb.WriteString("</tr>")
	}
	sb.WriteString("</tbody></table>\n")
}
