package mdpdf

import (
	"regexp"
	"strconv"
	"strings"
)

// maxListDepth caps list nesting recognized by the scanner.
const maxListDepth = 6

var (
	headingPattern  = regexp.MustCompile(`^(#{1,6}) +(.*)$`)
	listItemPattern = regexp.MustCompile(`^([ \t]*)([-*]|\d{1,9}\.) +(.*)$`)
	tableSepCell    = regexp.MustCompile(`^:?-+:?$`)
)

// markdownParser is the block-parsing stage of the pipeline.
type markdownParser struct{}

func (markdownParser) Parse(markdown string) []Block {
	return parseBlocks(markdown)
}

// parseBlocks converts normalized markdown into an ordered block
// sequence. It is total: any input yields a sequence and unrecognized
// syntax degrades to paragraph text.
func parseBlocks(src string) []Block {
	if src == "" {
		return nil
	}
	s := &blockScanner{prevBlank: true}
	for _, line := range strings.Split(src, "\n") {
		s.scanLine(line)
	}
	s.finish()
	return s.blocks
}

// blockScanner is a line-by-line state machine with one accumulator per
// multi-line block kind. At most one accumulator is active at a time.
type blockScanner struct {
	blocks []Block

	para     []string // pending paragraph lines
	quote    []string // pending blockquote lines, markers stripped
	tableRun []string // pending pipe-delimited lines
	indented []string // pending indented code lines

	inFence   bool
	fenceChar byte
	fenceLang string
	fenceBody []string

	// prevBlank reports whether the previous line was blank. True at
	// the start of input, false for any line consumed by a fence.
	prevBlank bool

	// counters holds the current ordered-list number per depth. A zero
	// entry means no active run at that depth.
	counters [maxListDepth + 1]int
}

func (s *blockScanner) scanLine(line string) {
	if s.inFence {
		if isClosingFence(strings.TrimSpace(line), s.fenceChar) {
			s.emitFence()
			return
		}
		s.fenceBody = append(s.fenceBody, line)
		return
	}

	trimmed := strings.TrimSpace(line)
	wasBlank := s.prevBlank
	s.prevBlank = trimmed == ""

	if trimmed == "" {
		s.flushAll()
		return
	}

	// Indented code opens only after a blank line or at the start of
	// input, then collects until the run ends. Elsewhere an indented
	// line is ordinary text for whatever block is open.
	if width, _ := leadingIndent(line); width >= 4 && (wasBlank || len(s.indented) > 0) && !listItemPattern.MatchString(line) {
		s.indented = append(s.indented, stripCodeIndent(line))
		return
	}

	if char, info, ok := openingFence(trimmed); ok {
		s.flushAll()
		s.inFence = true
		s.fenceChar = char
		s.fenceLang = info
		s.fenceBody = nil
		return
	}

	if m := headingPattern.FindStringSubmatch(trimmed); m != nil {
		s.flushAll()
		s.emit(Heading{Level: len(m[1]), Spans: parseInline(strings.TrimSpace(m[2]))})
		return
	}

	if isRuleLine(trimmed) {
		s.flushAll()
		s.emit(Rule{})
		return
	}

	if strings.HasPrefix(trimmed, "|") {
		s.flushPara()
		s.flushQuote()
		s.flushIndented()
		s.tableRun = append(s.tableRun, trimmed)
		return
	}

	if strings.HasPrefix(trimmed, ">") {
		s.flushPara()
		s.flushTable()
		s.flushIndented()
		rest := strings.TrimPrefix(trimmed[1:], " ")
		s.quote = append(s.quote, rest)
		return
	}

	if m := listItemPattern.FindStringSubmatch(line); m != nil {
		s.flushAll()
		s.emitListItem(m[1], m[2], m[3])
		return
	}

	s.flushQuote()
	s.flushTable()
	s.flushIndented()
	s.para = append(s.para, trimmed)
}

func (s *blockScanner) finish() {
	if s.inFence {
		// An unclosed fence runs to the end of input. Splitting input
		// that ends in a newline leaves one empty trailing entry, which
		// is the line terminator rather than fence content.
		if n := len(s.fenceBody); n > 0 && s.fenceBody[n-1] == "" {
			s.fenceBody = s.fenceBody[:n-1]
		}
		s.emitFence()
	}
	s.flushAll()
}

// emit appends a block. Any block other than a list item ends the
// current list run and resets ordered numbering.
func (s *blockScanner) emit(b Block) {
	if _, ok := b.(ListItem); !ok {
		s.counters = [maxListDepth + 1]int{}
	}
	s.blocks = append(s.blocks, b)
}

func (s *blockScanner) emitListItem(indent, marker, rest string) {
	width, _ := leadingIndent(indent)
	depth := 1 + width/2
	if depth > maxListDepth {
		depth = maxListDepth
	}

	ordered := marker != "-" && marker != "*"
	number := 0
	if ordered {
		if s.counters[depth] == 0 {
			// First item of a run keeps the number it was written with.
			number, _ = strconv.Atoi(strings.TrimSuffix(marker, "."))
			s.counters[depth] = number
		} else {
			s.counters[depth]++
			number = s.counters[depth]
		}
	} else {
		s.counters[depth] = 0
	}
	for d := depth + 1; d <= maxListDepth; d++ {
		s.counters[d] = 0
	}

	s.emit(ListItem{
		Ordered: ordered,
		Number:  number,
		Depth:   depth,
		Spans:   parseInline(strings.TrimSpace(rest)),
	})
}

func (s *blockScanner) emitFence() {
	body := s.fenceBody
	lang := s.fenceLang
	s.inFence = false
	s.fenceBody = nil
	s.fenceLang = ""
	s.emit(CodeBlock{Language: lang, Text: strings.Join(body, "\n")})
}

func (s *blockScanner) flushAll() {
	s.flushPara()
	s.flushQuote()
	s.flushTable()
	s.flushIndented()
}

func (s *blockScanner) flushPara() {
	if len(s.para) == 0 {
		return
	}
	text := strings.Join(s.para, " ")
	s.para = nil
	s.emit(Paragraph{Spans: parseInline(text)})
}

func (s *blockScanner) flushQuote() {
	if len(s.quote) == 0 {
		return
	}
	text := strings.Join(s.quote, " ")
	s.quote = nil
	s.emit(Blockquote{Spans: parseInline(text)})
}

func (s *blockScanner) flushIndented() {
	if len(s.indented) == 0 {
		return
	}
	body := s.indented
	s.indented = nil
	s.emit(CodeBlock{Text: strings.Join(body, "\n")})
}

func (s *blockScanner) flushTable() {
	if len(s.tableRun) == 0 {
		return
	}
	run := s.tableRun
	s.tableRun = nil

	if len(run) >= 2 && isTableSeparator(run[1]) {
		header := tableCells(run[0])
		rows := make([][]string, 0, len(run)-2)
		for _, line := range run[2:] {
			if isTableSeparator(line) {
				continue
			}
			rows = append(rows, tableCells(line))
		}
		s.emit(Table{Header: header, Rows: rows})
		return
	}

	// No separator row after the first line: the pipes were plain text.
	s.emit(Paragraph{Spans: parseInline(strings.Join(run, " "))})
}

// tableCells splits a pipe-delimited row into trimmed cell text.
// Inline markers are flattened away and entities decoded, leaving the
// visible text only.
func tableCells(line string) []string {
	trimmed := strings.TrimSpace(line)
	trimmed = strings.TrimPrefix(trimmed, "|")
	trimmed = strings.TrimSuffix(trimmed, "|")
	parts := strings.Split(trimmed, "|")
	cells := make([]string, len(parts))
	for i, p := range parts {
		cells[i] = spanText(parseInline(strings.TrimSpace(p)))
	}
	return cells
}

// isTableSeparator reports whether the row is a dash separator like
// |---|:--:|, which marks the previous row as the table header.
func isTableSeparator(line string) bool {
	trimmed := strings.TrimSpace(line)
	if !strings.HasPrefix(trimmed, "|") {
		return false
	}
	trimmed = strings.TrimPrefix(trimmed, "|")
	trimmed = strings.TrimSuffix(trimmed, "|")
	cells := strings.Split(trimmed, "|")
	for _, c := range cells {
		if !tableSepCell.MatchString(strings.TrimSpace(c)) {
			return false
		}
	}
	return len(cells) > 0
}

// isRuleLine reports a thematic break: three or more of the same
// marker character, spaces allowed between them.
func isRuleLine(trimmed string) bool {
	stripped := strings.ReplaceAll(trimmed, " ", "")
	if len(stripped) < 3 {
		return false
	}
	c := stripped[0]
	if c != '-' && c != '*' && c != '_' {
		return false
	}
	for i := 1; i < len(stripped); i++ {
		if stripped[i] != c {
			return false
		}
	}
	return true
}

// openingFence reports whether a trimmed line opens a fenced code
// block, returning the fence character and the info string language.
func openingFence(trimmed string) (char byte, info string, ok bool) {
	if len(trimmed) < 3 {
		return 0, "", false
	}
	c := trimmed[0]
	if c != '`' && c != '~' {
		return 0, "", false
	}
	run := 0
	for run < len(trimmed) && trimmed[run] == c {
		run++
	}
	if run < 3 {
		return 0, "", false
	}
	rest := strings.TrimSpace(trimmed[run:])
	if fields := strings.Fields(rest); len(fields) > 0 {
		rest = fields[0]
	}
	return c, rest, true
}

// isClosingFence reports whether a trimmed line closes a fence opened
// with char: nothing but three or more of the same character.
func isClosingFence(trimmed string, char byte) bool {
	if len(trimmed) < 3 {
		return false
	}
	for i := 0; i < len(trimmed); i++ {
		if trimmed[i] != char {
			return false
		}
	}
	return true
}

// leadingIndent measures leading whitespace in columns (tab = 4) and
// returns the rest of the line.
func leadingIndent(line string) (width int, rest string) {
	for i := 0; i < len(line); i++ {
		switch line[i] {
		case ' ':
			width++
		case '\t':
			width += 4
		default:
			return width, line[i:]
		}
	}
	return width, ""
}

// stripCodeIndent removes one level of code indentation: up to four
// columns of leading whitespace.
func stripCodeIndent(line string) string {
	cols := 0
	i := 0
	for i < len(line) && cols < 4 {
		switch line[i] {
		case ' ':
			cols++
		case '\t':
			cols += 4
		default:
			return line[i:]
		}
		i++
	}
	return line[i:]
}
