package mdpdf

import (
	"strings"
	"testing"
)

func TestHighlightCode_LineCounts(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		lang     string
		source   string
		expected int
	}{
		{name: "single line", lang: "go", source: "x := 1", expected: 1},
		{name: "two lines", lang: "go", source: "a := 1\nb := 2", expected: 2},
		{name: "blank line inside", lang: "go", source: "a := 1\n\nb := 2", expected: 3},
		{name: "unknown language", lang: "notalang", source: "x\ny", expected: 2},
		{name: "no language", lang: "", source: "plain", expected: 1},
		{name: "empty source", lang: "go", source: "", expected: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			lines := highlightCode(tt.lang, tt.source)
			if len(lines) != tt.expected {
				t.Errorf("highlightCode(%q, %q) = %d lines, want %d",
					tt.lang, tt.source, len(lines), tt.expected)
			}
		})
	}
}

func TestHighlightCode_ReassemblesToSource(t *testing.T) {
	t.Parallel()

	source := "package main\n\nfunc main() {\n\tprintln(\"hi\")\n}"
	lines := highlightCode("go", source)

	parts := make([]string, len(lines))
	for i, line := range lines {
		var b strings.Builder
		for _, tok := range line {
			b.WriteString(tok.text)
		}
		parts[i] = b.String()
	}
	if got := strings.Join(parts, "\n"); got != source {
		t.Errorf("token text reassembles to %q, want %q", got, source)
	}
}

func TestHighlightCode_KeywordsGetTheirOwnColor(t *testing.T) {
	t.Parallel()

	plain := highlightTextColor()
	lines := highlightCode("go", "package main")

	colored := false
	for _, tok := range lines[0] {
		if tok.color != plain {
			colored = true
		}
	}
	if !colored {
		t.Error("expected at least one token colored differently from plain text")
	}
}

func TestHighlightCode_UnknownLanguageUsesPlainColor(t *testing.T) {
	t.Parallel()

	plain := highlightTextColor()
	lines := highlightCode("notalang", "whatever text")

	for _, line := range lines {
		for _, tok := range line {
			if tok.color != plain {
				t.Errorf("token %q colored %+v, want plain %+v", tok.text, tok.color, plain)
			}
		}
	}
}

func TestHighlightThemeColors(t *testing.T) {
	t.Parallel()

	// Monokai constants.
	if got := highlightBackground().Hex(); got != "#272822" {
		t.Errorf("highlightBackground() = %s, want #272822", got)
	}
	if got := highlightTextColor().Hex(); got != "#f8f8f2" {
		t.Errorf("highlightTextColor() = %s, want #f8f8f2", got)
	}
}

func TestPlainCodeLines(t *testing.T) {
	t.Parallel()

	lines := plainCodeLines("a\n\nb")
	if len(lines) != 3 {
		t.Fatalf("plainCodeLines() = %d lines, want 3", len(lines))
	}
	if lines[1] != nil {
		t.Errorf("blank line = %#v, want nil", lines[1])
	}
	if len(lines[0]) != 1 || lines[0][0].text != "a" {
		t.Errorf("first line = %#v, want single token %q", lines[0], "a")
	}
}

func TestFormatCodeHTML(t *testing.T) {
	t.Parallel()

	got := formatCodeHTML("go", "x := 1")
	if !strings.Contains(got, "chroma") {
		t.Errorf("formatCodeHTML() = %q, want chroma class markup", got)
	}

	// Markup characters in source must come out escaped.
	got = formatCodeHTML("", "<b>&</b>")
	if strings.Contains(got, "<b>") {
		t.Errorf("formatCodeHTML() leaked raw markup: %q", got)
	}
	if !strings.Contains(got, "&lt;b&gt;") {
		t.Errorf("formatCodeHTML() = %q, want escaped source", got)
	}
}

func TestHighlightCSS(t *testing.T) {
	t.Parallel()

	css := highlightCSS()
	if !strings.Contains(css, ".chroma") {
		t.Errorf("highlightCSS() = %q, want .chroma rules", css)
	}
}
