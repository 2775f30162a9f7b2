package mdpdf

import (
	"context"
	"strings"
	"testing"
)

func TestHTMLExporter_Export(t *testing.T) {
	t.Parallel()

	e := newHTMLExporter()

	tests := []struct {
		name     string
		markdown string
		contains []string
	}{
		{
			name:     "heading with anchor id",
			markdown: "# Section One\n",
			contains: []string{"<h1 id=\"section-one\">Section One</h1>"},
		},
		{
			name:     "gfm table",
			markdown: "| a | b |\n|---|---|\n| 1 | 2 |\n",
			contains: []string{"<table>", "<th>a</th>", "<td>2</td>"},
		},
		{
			name:     "strikethrough enabled in export",
			markdown: "~~gone~~\n",
			contains: []string{"<del>gone</del>"},
		},
		{
			name:     "highlighted code fence",
			markdown: "```go\nx := 1\n```\n",
			contains: []string{"chroma"},
		},
		{
			name:     "footnote",
			markdown: "ref[^1]\n\n[^1]: the note\n",
			contains: []string{"fn:1"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := e.Export(context.Background(), tt.markdown)
			if err != nil {
				t.Fatalf("Export() error = %v", err)
			}
			for _, want := range tt.contains {
				if !strings.Contains(got, want) {
					t.Errorf("Export(%q) = %q, want it to contain %q", tt.markdown, got, want)
				}
			}
		})
	}
}

func TestDocumentHTML(t *testing.T) {
	t.Parallel()

	doc := documentHTML("A <B>", "body { color: red; }", "<p>hi</p>")

	if !strings.HasPrefix(doc, "<!DOCTYPE html>") {
		t.Error("documentHTML() lacks the doctype")
	}
	if !strings.Contains(doc, "<title>A &lt;B&gt;</title>") {
		t.Error("documentHTML() title not escaped")
	}
	if !strings.Contains(doc, "body { color: red; }") {
		t.Error("documentHTML() stylesheet not inlined")
	}
	if !strings.Contains(doc, "<p>hi</p>") {
		t.Error("documentHTML() body dropped")
	}
}

func TestDocumentHTML_DefaultTitle(t *testing.T) {
	t.Parallel()

	doc := documentHTML("", "", "")
	if !strings.Contains(doc, "<title>Document</title>") {
		t.Error("documentHTML() empty title not defaulted")
	}
}
