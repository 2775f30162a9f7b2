package mdpdf

import (
	"strings"

	"github.com/alecthomas/chroma/v2"
	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
)

// highlightThemeName selects the chroma style shared by the PDF code
// boxes, the HTML preview and the standalone export.
const highlightThemeName = "monokai"

// Theme colors used when the chroma style leaves an entry unset.
var (
	defaultCodeText       = hexColor("#f8f8f2")
	defaultCodeBackground = hexColor("#272822")
)

var highlightStyle = styles.Get(highlightThemeName)

// highlightFormatter emits class-based markup so the generated
// stylesheet carries the colors once for every code block.
var highlightFormatter = chromahtml.New(chromahtml.WithClasses(true))

// highlightBackground returns the theme's code box background.
func highlightBackground() RGB {
	if entry := highlightStyle.Get(chroma.Background); entry.Background.IsSet() {
		return colourRGB(entry.Background)
	}
	return defaultCodeBackground
}

// highlightTextColor returns the theme's plain code text color.
func highlightTextColor() RGB {
	if entry := highlightStyle.Get(chroma.Text); entry.Colour.IsSet() {
		return colourRGB(entry.Colour)
	}
	return defaultCodeText
}

func colourRGB(c chroma.Colour) RGB {
	return RGB{R: int(c.Red()), G: int(c.Green()), B: int(c.Blue())}
}

// codeToken is one colored fragment of a code block line.
type codeToken struct {
	text  string
	color RGB
}

// highlightCode tokenizes source into per-line colored tokens. Unknown
// or empty languages fall back to plain theme text, never an error.
func highlightCode(lang, source string) [][]codeToken {
	lexer := lexers.Get(lang)
	if lexer == nil {
		lexer = lexers.Fallback
	}
	lexer = chroma.Coalesce(lexer)

	it, err := lexer.Tokenise(nil, source)
	if err != nil {
		return plainCodeLines(source)
	}

	lines := [][]codeToken{nil}
	for _, tok := range it.Tokens() {
		color := tokenColor(tok.Type)
		parts := strings.Split(tok.Value, "\n")
		for i, part := range parts {
			if i > 0 {
				lines = append(lines, nil)
			}
			if part == "" {
				continue
			}
			last := len(lines) - 1
			lines[last] = append(lines[last], codeToken{text: part, color: color})
		}
	}

	// Lexers append a trailing newline; keep line count equal to the
	// source so box heights stay honest.
	if want := strings.Count(source, "\n") + 1; len(lines) > want {
		lines = lines[:want]
	}
	return lines
}

// plainCodeLines renders every line as a single token in the theme's
// plain text color.
func plainCodeLines(source string) [][]codeToken {
	split := strings.Split(source, "\n")
	lines := make([][]codeToken, len(split))
	color := highlightTextColor()
	for i, line := range split {
		if line == "" {
			continue
		}
		lines[i] = []codeToken{{text: line, color: color}}
	}
	return lines
}

// tokenColor resolves a token type through the theme, inheriting from
// parent token types, with the plain text color as last resort.
func tokenColor(t chroma.TokenType) RGB {
	if entry := highlightStyle.Get(t); entry.Colour.IsSet() {
		return colourRGB(entry.Colour)
	}
	return highlightTextColor()
}

// formatCodeHTML renders a code block as class-based chroma markup for
// the HTML preview. On formatter failure the raw text survives inside
// a plain pre element.
func formatCodeHTML(lang, source string) string {
	lexer := lexers.Get(lang)
	if lexer == nil {
		lexer = lexers.Fallback
	}
	lexer = chroma.Coalesce(lexer)

	var b strings.Builder
	it, err := lexer.Tokenise(nil, source)
	if err == nil {
		err = highlightFormatter.Format(&b, highlightStyle, it)
	}
	if err != nil {
		return "<pre><code>" + escapeHTML(source) + "</code></pre>"
	}
	return b.String()
}

// highlightCSS returns the class rules for the chroma markup emitted
// by formatCodeHTML and the standalone export.
func highlightCSS() string {
	var b strings.Builder
	if err := highlightFormatter.WriteCSS(&b, highlightStyle); err != nil {
		return ""
	}
	return b.String()
}
