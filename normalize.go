package mdpdf

import (
	"regexp"
	"strings"
)

// crlfOrCR matches Windows (CRLF) and old Mac (CR) line endings.
var crlfOrCR = regexp.MustCompile(`\r\n?`)

// markdownNormalizer prepares raw input for the block scanner.
type markdownNormalizer struct{}

func (markdownNormalizer) Preprocess(markdown string) string {
	return normalizeMarkdown(markdown)
}

func normalizeMarkdown(s string) string {
	s = normalizeLineEndings(s)
	s = compressBlankLines(s)
	return ensureTrailingNewline(s)
}

// normalizeLineEndings converts CRLF and CR to LF.
func normalizeLineEndings(s string) string {
	return crlfOrCR.ReplaceAllString(s, "\n")
}

// compressBlankLines collapses each run of blank lines into a single
// blank line. Content inside fenced code blocks is kept verbatim.
func compressBlankLines(s string) string {
	if s == "" {
		return ""
	}
	lines := strings.Split(s, "\n")
	out := make([]string, 0, len(lines))
	var fence byte
	blanks := false
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if fence != 0 {
			out = append(out, line)
			if isClosingFence(trimmed, fence) {
				fence = 0
			}
			continue
		}
		if trimmed == "" {
			blanks = true
			continue
		}
		if blanks {
			if len(out) > 0 {
				out = append(out, "")
			}
			blanks = false
		}
		out = append(out, line)
		if char, _, ok := openingFence(trimmed); ok {
			fence = char
		}
	}
	return strings.Join(out, "\n")
}

// ensureTrailingNewline terminates non-empty input with a newline so
// the scanner always sees complete lines.
func ensureTrailingNewline(s string) string {
	if s == "" || strings.HasSuffix(s, "\n") {
		return s
	}
	return s + "\n"
}
