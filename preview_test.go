package mdpdf

import (
	"strings"
	"testing"
)

func TestRenderHTML_Blocks(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		blocks   []Block
		expected string
	}{
		{
			name:     "heading",
			blocks:   []Block{Heading{Level: 1, Spans: []Span{{Kind: SpanText, Text: "Hi"}}}},
			expected: `<h1 class="mdpdf-h1">Hi</h1>` + "\n",
		},
		{
			name:     "paragraph escapes text",
			blocks:   []Block{Paragraph{Spans: []Span{{Kind: SpanText, Text: "a < b"}}}},
			expected: `<p class="mdpdf-body">a &lt; b</p>` + "\n",
		},
		{
			name: "span kinds",
			blocks: []Block{Paragraph{Spans: []Span{
				{Kind: SpanBold, Text: "b"},
				{Kind: SpanItalic, Text: "i"},
				{Kind: SpanCode, Text: "c"},
			}}},
			expected: `<p class="mdpdf-body"><strong>b</strong><em>i</em>` +
				`<code class="mdpdf-inline-code">c</code></p>` + "\n",
		},
		{
			name:     "blockquote",
			blocks:   []Block{Blockquote{Spans: []Span{{Kind: SpanText, Text: "q"}}}},
			expected: `<blockquote class="mdpdf-blockquote">q</blockquote>` + "\n",
		},
		{
			name:     "rule",
			blocks:   []Block{Rule{}},
			expected: "<hr/>\n",
		},
		{
			name: "table",
			blocks: []Block{Table{
				Header: []string{"A"},
				Rows:   [][]string{{"1"}},
			}},
			expected: `<table class="mdpdf-table"><thead><tr>` +
				`<th class="mdpdf-table-header">A</th></tr></thead><tbody>` +
				`<tr><td class="mdpdf-table-cell">1</td></tr></tbody></table>` + "\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := htmlPreview{}.RenderHTML(tt.blocks)
			if got != tt.expected {
				t.Errorf("RenderHTML() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestRenderHTML_Lists(t *testing.T) {
	t.Parallel()

	item := func(depth int, text string) ListItem {
		return ListItem{Depth: depth, Spans: []Span{{Kind: SpanText, Text: text}}}
	}
	ordered := func(number int, text string) ListItem {
		return ListItem{Ordered: true, Number: number, Depth: 1,
			Spans: []Span{{Kind: SpanText, Text: text}}}
	}

	tests := []struct {
		name     string
		blocks   []Block
		expected string
	}{
		{
			name:     "flat unordered",
			blocks:   []Block{item(1, "a"), item(1, "b")},
			expected: `<ul class="mdpdf-list"><li>a</li><li>b</li></ul>` + "\n",
		},
		{
			name:   "ordered carries computed numbers",
			blocks: []Block{ordered(3, "a"), ordered(4, "b")},
			expected: `<ol class="mdpdf-list"><li value="3">a</li>` +
				`<li value="4">b</li></ol>` + "\n",
		},
		{
			name:   "nesting opens and closes levels",
			blocks: []Block{item(1, "a"), item(2, "b"), item(1, "c")},
			expected: `<ul class="mdpdf-list"><li>a</li>` +
				`<ul class="mdpdf-list"><li>b</li></ul>` + "\n" +
				`<li>c</li></ul>` + "\n",
		},
		{
			name:   "kind switch reopens the level",
			blocks: []Block{item(1, "u"), ordered(1, "o")},
			expected: `<ul class="mdpdf-list"><li>u</li></ul>` + "\n" +
				`<ol class="mdpdf-list"><li value="1">o</li></ol>` + "\n",
		},
		{
			name:   "non-list block closes everything",
			blocks: []Block{item(1, "a"), Paragraph{Spans: []Span{{Kind: SpanText, Text: "t"}}}},
			expected: `<ul class="mdpdf-list"><li>a</li></ul>` + "\n" +
				`<p class="mdpdf-body">t</p>` + "\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := htmlPreview{}.RenderHTML(tt.blocks)
			if got != tt.expected {
				t.Errorf("RenderHTML() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestRenderHTML_CodeBlock(t *testing.T) {
	t.Parallel()

	got := htmlPreview{}.RenderHTML([]Block{CodeBlock{Language: "go", Text: "x := 1"}})

	if !strings.HasPrefix(got, `<div class="mdpdf-code">`) {
		t.Errorf("RenderHTML() = %q, want mdpdf-code wrapper", got)
	}
	if !strings.Contains(got, "chroma") {
		t.Errorf("RenderHTML() = %q, want chroma markup inside", got)
	}
	if !strings.HasSuffix(got, "</div>\n") {
		t.Errorf("RenderHTML() = %q, want closed wrapper", got)
	}
}

func TestRenderHTML_Empty(t *testing.T) {
	t.Parallel()

	got := htmlPreview{}.RenderHTML(nil)
	if got != "" {
		t.Errorf("RenderHTML(nil) = %q, want empty", got)
	}
}

func TestEscapeHTML(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input    string
		expected string
	}{
		{`<script>`, "&lt;script&gt;"},
		{`a & b`, "a &amp; b"},
		{`"quoted"`, "&#34;quoted&#34;"},
		{`plain`, "plain"},
	}

	for _, tt := range tests {
		if got := escapeHTML(tt.input); got != tt.expected {
			t.Errorf("escapeHTML(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}
