package mdpdf

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/jung-kurt/gofpdf"
)

// Page geometry in points on A4 portrait, matching the fixed design:
// 2cm margins, 2.5cm at the bottom, footer 1.5cm from both edges.
const (
	cm           = 28.3465
	marginLeft   = 2 * cm
	marginRight  = 2 * cm
	marginTop    = 2 * cm
	marginBottom = 2.5 * cm
	footerInset  = 1.5 * cm
)

// Block layout metrics, points.
const (
	codePadX       = 10.0
	codePadY       = 8.0
	listIndent     = 28.0
	listIndentStep = 24.0
	listHangIndent = 14.0
	cellPadX       = 12.0
	cellPadY       = 4.0
	tableSpace     = 12.0
	quoteRuleWidth = 2.0
	quoteRuleInset = 6.0
	ruleSpace      = 12.0
)

// Table and blockquote line colors.
var (
	tableBorderColor = hexColor("#cccccc")
	tableGridColor   = hexColor("#e0e0e0")
	quoteRuleColor   = hexColor("#cccccc")
)

// docRenderer lays out block sequences with gofpdf. One renderer is
// shared across conversions; each Render builds a fresh document.
type docRenderer struct {
	reg      *StyleRegistry
	fonts    *FontResolver
	footer   string
	compress bool
}

func newDocRenderer(reg *StyleRegistry, fonts *FontResolver, footer string, compress bool) *docRenderer {
	return &docRenderer{reg: reg, fonts: fonts, footer: footer, compress: compress}
}

// Render produces the PDF bytes for a block sequence. Output is always
// complete: a block whose style lookup misses renders with the body
// default, and an empty sequence yields a single page.
func (r *docRenderer) Render(blocks []Block, title string) ([]byte, error) {
	d := newDocWriter(r, title)
	for _, b := range blocks {
		d.writeBlock(b)
	}
	return d.output()
}

// docWriter carries the mutable layout state for one document.
type docWriter struct {
	pdf     *gofpdf.Fpdf
	reg     *StyleRegistry
	mapping FontMapping
	tr      func(string) string
	curCore bool
	pageW   float64
	pageH   float64
	breakY  float64 // content past this ordinate moves to a new page
}

func newDocWriter(r *docRenderer, title string) *docWriter {
	pdf := gofpdf.New("P", "pt", "A4", "")
	pdf.SetMargins(marginLeft, marginTop, marginRight)
	pdf.SetAutoPageBreak(true, marginBottom)
	pdf.SetCompression(r.compress)
	pdf.SetCreator("go-mdpdf", true)
	if title != "" {
		pdf.SetTitle(title, true)
	}
	r.fonts.Apply(pdf)

	d := &docWriter{
		pdf:     pdf,
		reg:     r.reg,
		mapping: r.fonts.Resolve(),
		tr:      pdf.UnicodeTranslatorFromDescriptor(""),
	}
	d.pageW, d.pageH = pdf.GetPageSize()
	d.breakY = d.pageH - marginBottom

	// The footer hook runs on every page close, so page breaks
	// triggered anywhere in the flow keep the footer line.
	footerStyle := r.reg.Lookup(styleName("footer"))
	footerText := r.footer
	pdf.SetFooterFunc(func() {
		if footerText == "" {
			return
		}
		d.setFont(footerStyle, SpanText)
		d.setColor(footerStyle.Color)
		line := d.text(footerText)
		x := d.pageW - footerInset - pdf.GetStringWidth(line)
		pdf.Text(x, d.pageH-footerInset, line)
	})

	pdf.AddPage()
	return d
}

func (d *docWriter) writeBlock(b Block) {
	switch blk := b.(type) {
	case Heading:
		d.writeHeading(blk)
	case Paragraph:
		d.writeParagraph(blk)
	case ListItem:
		d.writeListItem(blk)
	case CodeBlock:
		d.writeCodeBlock(blk)
	case Table:
		d.writeTable(blk)
	case Blockquote:
		d.writeBlockquote(blk)
	case Rule:
		d.pdf.Ln(ruleSpace)
	}
}

func (d *docWriter) output() ([]byte, error) {
	var buf bytes.Buffer
	if err := d.pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPDFGeneration, err)
	}
	return buf.Bytes(), nil
}

// setFont activates the family, style flags and size for a style,
// adjusted for the span kind being written.
func (d *docWriter) setFont(st Style, kind SpanKind) {
	family := d.mapping.Body
	flags := ""
	size := st.Size

	switch {
	case st.Mono:
		family = d.mapping.Mono
	case kind == SpanCode:
		family = d.mapping.Mono
		size = d.reg.Lookup(styleName("inline-code")).Size
	default:
		if st.Bold || kind == SpanBold {
			family = d.mapping.Bold
			flags += "B"
		}
		if st.Italic || kind == SpanItalic {
			flags += "I"
		}
	}
	if st.Underline {
		flags += "U"
	}
	d.curCore = isCoreFamily(family)
	d.pdf.SetFont(family, flags, size)
}

func (d *docWriter) setColor(c RGB) {
	d.pdf.SetTextColor(c.R, c.G, c.B)
}

// text encodes s for the active font: core families take Windows-1252,
// embedded fonts take UTF-8 directly.
func (d *docWriter) text(s string) string {
	if d.curCore {
		return d.tr(s)
	}
	return s
}

// blockSpacing applies space-before, suppressed at the top of a page.
func (d *docWriter) blockSpacing(before float64) {
	if before > 0 && d.pdf.GetY() > marginTop+0.1 {
		d.pdf.Ln(before)
	}
}

// writeSpans flows mixed-style spans with word wrap at the style's
// line height. Page breaks inside the flow are automatic.
func (d *docWriter) writeSpans(st Style, spans []Span) {
	for _, sp := range spans {
		d.setFont(st, sp.Kind)
		d.setColor(st.Color)
		d.pdf.Write(st.Leading, d.text(sp.Text))
	}
}

func (d *docWriter) writeHeading(b Heading) {
	st := d.reg.Heading(b.Level)
	body := d.reg.Lookup(styleName("body"))

	// Keep the heading with what follows: break first when fewer than
	// two body lines would fit beneath it.
	needed := st.Leading + 2*body.Leading
	if d.pdf.GetY()+st.SpaceBefore+needed > d.breakY {
		d.pdf.AddPage()
	} else {
		d.blockSpacing(st.SpaceBefore)
	}

	d.writeSpans(st, b.Spans)
	d.pdf.Ln(st.Leading)
	d.pdf.Ln(st.SpaceAfter)
}

func (d *docWriter) writeParagraph(b Paragraph) {
	if len(b.Spans) == 0 {
		return
	}
	st := d.reg.Lookup(styleName("body"))
	d.blockSpacing(st.SpaceBefore)
	d.writeSpans(st, b.Spans)
	d.pdf.Ln(st.Leading)
	d.pdf.Ln(st.SpaceAfter)
}

func (d *docWriter) writeListItem(b ListItem) {
	st := d.reg.Lookup(styleName("list"))
	d.blockSpacing(st.SpaceBefore)

	indent := listIndent + float64(b.Depth-1)*listIndentStep
	left := marginLeft + indent

	// Hanging layout: the label sits left of the text column and
	// wrapped lines align on the indented margin.
	d.pdf.SetLeftMargin(left)
	d.pdf.SetXY(left-listHangIndent, d.pdf.GetY())
	d.setFont(st, SpanText)
	d.setColor(st.Color)
	d.pdf.Write(st.Leading, d.text(d.listLabel(b)+" "))
	d.writeSpans(st, b.Spans)
	d.pdf.Ln(st.Leading)
	d.pdf.SetLeftMargin(marginLeft)
	d.pdf.Ln(st.SpaceAfter)
}

// listLabel formats the bullet or number for an item. Deep bullets use
// a hollow dot, except under core fallback fonts that lack the glyph.
func (d *docWriter) listLabel(b ListItem) string {
	if b.Ordered {
		return strconv.Itoa(b.Number) + "."
	}
	if b.Depth <= 1 {
		return "•"
	}
	if isCoreFamily(d.mapping.Body) {
		return "-"
	}
	return "◦"
}

func (d *docWriter) writeCodeBlock(b CodeBlock) {
	st := d.reg.Lookup(styleName("code"))
	d.blockSpacing(st.SpaceBefore)

	d.setFont(st, SpanText)
	charW := d.pdf.GetStringWidth("m")
	boxW := d.pageW - marginLeft - marginRight
	maxChars := 1
	if charW > 0 {
		if n := int((boxW - 2*codePadX) / charW); n > 1 {
			maxChars = n
		}
	}
	lines := wrapCodeLines(highlightCode(b.Language, b.Text), maxChars)

	// The box is drawn in page-sized segments with manual breaks so
	// the background never tears at a page boundary.
	d.pdf.SetAutoPageBreak(false, marginBottom)
	defer d.pdf.SetAutoPageBreak(true, marginBottom)

	d.pdf.SetFillColor(st.Fill.R, st.Fill.G, st.Fill.B)
	y := d.pdf.GetY()
	if y+st.Leading+2*codePadY > d.breakY {
		d.pdf.AddPage()
		y = d.pdf.GetY()
	}

	i := 0
	for i < len(lines) {
		fit := int((d.breakY - y - 2*codePadY) / st.Leading)
		if fit < 1 {
			fit = 1
		}
		n := len(lines) - i
		if n > fit {
			n = fit
		}
		segH := float64(n)*st.Leading + 2*codePadY
		d.pdf.Rect(marginLeft, y, boxW, segH, "F")

		ty := y + codePadY
		for _, line := range lines[i : i+n] {
			d.pdf.SetXY(marginLeft+codePadX, ty)
			for _, tok := range line {
				d.setColor(tok.color)
				d.pdf.Write(st.Leading, d.text(tok.text))
			}
			ty += st.Leading
		}
		y += segH
		i += n
		if i < len(lines) {
			d.pdf.AddPage()
			y = d.pdf.GetY()
			d.pdf.SetFillColor(st.Fill.R, st.Fill.G, st.Fill.B)
		}
	}
	d.pdf.SetY(y)
	d.pdf.Ln(st.SpaceAfter)
}

func (d *docWriter) writeTable(b Table) {
	headerStyle := d.reg.Lookup(styleName("table-header"))
	cellStyle := d.reg.Lookup(styleName("table-cell"))

	cols := len(b.Header)
	for _, row := range b.Rows {
		if len(row) > cols {
			cols = len(row)
		}
	}
	if cols == 0 {
		return
	}

	tableW := d.pageW - marginLeft - marginRight
	colW := tableW / float64(cols)

	d.blockSpacing(tableSpace)
	d.pdf.SetAutoPageBreak(false, marginBottom)
	defer d.pdf.SetAutoPageBreak(true, marginBottom)

	y := d.pdf.GetY()
	headerH := d.rowHeight(headerStyle, b.Header, cols, colW)
	if y+headerH+cellStyle.Leading+2*cellPadY > d.breakY {
		d.pdf.AddPage()
		y = d.pdf.GetY()
	}

	segTop := y
	d.drawTableRow(headerStyle, b.Header, cols, colW, y, headerH)
	y += headerH
	d.drawHeaderRule(y, tableW)
	needSep := false

	closeSegment := func(bottom float64) {
		d.setLine(0.5, tableGridColor)
		for i := 1; i < cols; i++ {
			x := marginLeft + float64(i)*colW
			d.pdf.Line(x, segTop, x, bottom)
		}
		d.setLine(1, tableBorderColor)
		d.pdf.Rect(marginLeft, segTop, tableW, bottom-segTop, "D")
	}

	for _, row := range b.Rows {
		h := d.rowHeight(cellStyle, row, cols, colW)
		if y+h > d.breakY && y > segTop+headerH {
			closeSegment(y)
			d.pdf.AddPage()
			y = d.pdf.GetY()
			segTop = y
			// The header row repeats at the top of every page segment.
			d.drawTableRow(headerStyle, b.Header, cols, colW, y, headerH)
			y += headerH
			d.drawHeaderRule(y, tableW)
			needSep = false
		}
		if needSep {
			d.setLine(0.5, tableGridColor)
			d.pdf.Line(marginLeft, y, marginLeft+tableW, y)
		}
		d.drawTableRow(cellStyle, row, cols, colW, y, h)
		y += h
		needSep = true
	}

	closeSegment(y)
	d.pdf.SetY(y)
	d.pdf.Ln(tableSpace)
}

// rowHeight measures a row as its tallest wrapped cell plus padding.
func (d *docWriter) rowHeight(st Style, row []string, cols int, colW float64) float64 {
	d.setFont(st, SpanText)
	maxLines := 1
	for i := 0; i < cols && i < len(row); i++ {
		if row[i] == "" {
			continue
		}
		n := len(d.pdf.SplitLines([]byte(d.text(row[i])), colW-2*cellPadX))
		if n > maxLines {
			maxLines = n
		}
	}
	return float64(maxLines)*st.Leading + 2*cellPadY
}

// drawTableRow paints one row's fill and cell text at y.
func (d *docWriter) drawTableRow(st Style, row []string, cols int, colW, y, h float64) {
	if st.Filled {
		d.pdf.SetFillColor(st.Fill.R, st.Fill.G, st.Fill.B)
		d.pdf.Rect(marginLeft, y, colW*float64(cols), h, "F")
	}
	d.setFont(st, SpanText)
	d.setColor(st.Color)
	for i := 0; i < cols && i < len(row); i++ {
		if row[i] == "" {
			continue
		}
		d.pdf.SetXY(marginLeft+float64(i)*colW+cellPadX, y+cellPadY)
		d.pdf.MultiCell(colW-2*cellPadX, st.Leading, d.text(row[i]), "", "L", false)
	}
}

func (d *docWriter) drawHeaderRule(y, tableW float64) {
	d.setLine(1, tableBorderColor)
	d.pdf.Line(marginLeft, y, marginLeft+tableW, y)
}

func (d *docWriter) setLine(width float64, c RGB) {
	d.pdf.SetLineWidth(width)
	d.pdf.SetDrawColor(c.R, c.G, c.B)
}

func (d *docWriter) writeBlockquote(b Blockquote) {
	if len(b.Spans) == 0 {
		return
	}
	st := d.reg.Lookup(styleName("blockquote"))
	d.blockSpacing(st.SpaceBefore)

	startPage := d.pdf.PageNo()
	startY := d.pdf.GetY()
	d.pdf.SetLeftMargin(marginLeft + st.LeftIndent)
	d.pdf.SetX(marginLeft + st.LeftIndent)
	d.writeSpans(st, b.Spans)
	d.pdf.Ln(st.Leading)
	endPage := d.pdf.PageNo()
	endY := d.pdf.GetY()
	d.pdf.SetLeftMargin(marginLeft)

	// Vertical rule along the quote on every page it touches.
	d.setLine(quoteRuleWidth, quoteRuleColor)
	for page := startPage; page <= endPage; page++ {
		top, bottom := marginTop, d.breakY
		if page == startPage {
			top = startY
		}
		if page == endPage {
			bottom = endY
		}
		if bottom <= top {
			continue
		}
		d.pdf.SetPage(page)
		d.pdf.Line(marginLeft+quoteRuleInset, top, marginLeft+quoteRuleInset, bottom)
	}
	d.pdf.SetPage(endPage)
	d.pdf.SetY(endY)
	d.pdf.Ln(st.SpaceAfter)
}

// wrapCodeLines splits token lines at character boundaries so no line
// exceeds the box width. Long tokens break mid-token.
func wrapCodeLines(lines [][]codeToken, maxChars int) [][]codeToken {
	out := make([][]codeToken, 0, len(lines))
	for _, line := range lines {
		out = append(out, splitCodeLine(line, maxChars)...)
	}
	return out
}

func splitCodeLine(line []codeToken, maxChars int) [][]codeToken {
	if len(line) == 0 {
		return [][]codeToken{nil}
	}
	var out [][]codeToken
	var cur []codeToken
	width := 0
	for _, tok := range line {
		runes := []rune(tok.text)
		for len(runes) > 0 {
			if width >= maxChars {
				out = append(out, cur)
				cur = nil
				width = 0
			}
			n := maxChars - width
			if n > len(runes) {
				n = len(runes)
			}
			cur = append(cur, codeToken{text: string(runes[:n]), color: tok.color})
			width += n
			runes = runes[n:]
		}
	}
	if len(cur) > 0 || len(out) == 0 {
		out = append(out, cur)
	}
	return out
}
