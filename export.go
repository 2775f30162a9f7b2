package mdpdf

import (
	"bytes"
	"context"
	"fmt"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"
)

// htmlExporter converts markdown to a full HTML document body with the
// complete goldmark pipeline: GFM, footnotes, and highlighted code
// using the same theme as the PDF renderer.
type htmlExporter struct {
	gm goldmark.Markdown
}

func newHTMLExporter() *htmlExporter {
	return &htmlExporter{
		gm: goldmark.New(
			goldmark.WithExtensions(
				extension.GFM,
				extension.Footnote,
				highlighting.NewHighlighting(
					highlighting.WithStyle(highlightThemeName),
					highlighting.WithFormatOptions(
						chromahtml.WithClasses(true),
					),
				),
			),
			goldmark.WithParserOptions(
				parser.WithAutoHeadingID(),
			),
			goldmark.WithRendererOptions(
				html.WithHardWraps(),
				html.WithXHTML(),
			),
		),
	}
}

// Export renders markdown to an HTML fragment. goldmark takes no
// context, so conversion runs aside and cancellation returns promptly.
func (e *htmlExporter) Export(ctx context.Context, markdown string) (string, error) {
	type result struct {
		html string
		err  error
	}
	resCh := make(chan result, 1)

	go func() {
		var buf bytes.Buffer
		if err := e.gm.Convert([]byte(markdown), &buf); err != nil {
			resCh <- result{err: fmt.Errorf("%w: %v", ErrHTMLExport, err)}
			return
		}
		resCh <- result{html: buf.String()}
	}()

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case res := <-resCh:
		return res.html, res.err
	}
}

const documentShell = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8"/>
<meta name="viewport" content="width=device-width, initial-scale=1"/>
<title>%s</title>
<style>
%s</style>
</head>
<body class="%s">
%s</body>
</html>
`

// documentHTML wraps a rendered fragment into a standalone page with
// the stylesheet inlined.
func documentHTML(title, css, body string) string {
	if title == "" {
		title = "Document"
	}
	return fmt.Sprintf(documentShell, escapeHTML(title), css, styleName("body"), body)
}
