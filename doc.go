// Package mdpdf converts Markdown documents to PDF without external tools.
//
// # Quick Start
//
// Create a service, convert markdown, and write the result:
//
//	svc := mdpdf.New()
//	pdf, err := svc.Convert(ctx, mdpdf.Input{
//	    Markdown: "# Hello\n\nWorld",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	os.WriteFile("output.pdf", pdf, 0644)
//
// Use Service.Preview to render the same parsed block sequence as an HTML
// fragment, and Service.ConvertHTML for a self-contained HTML document.
//
// # Conversion Pipeline
//
// The conversion process follows these stages:
//
//  1. Markdown preprocessing (line ending normalization, tab expansion)
//  2. Line scanning into a flat block sequence (headings, lists, tables,
//     code blocks, blockquotes, rules, paragraphs)
//  3. Inline span parsing via Goldmark (bold, italic, inline code)
//  4. PDF layout via gofpdf (A4 portrait, point units, embedded fonts)
//
// Every stage is total: malformed markdown degrades to paragraph text
// rather than failing the conversion.
//
// # Configuration
//
// Use functional options to customize the service:
//
//	svc := mdpdf.New(
//	    mdpdf.WithTimeout(time.Minute),
//	    mdpdf.WithFontDir("/usr/share/fonts/custom"),
//	    mdpdf.WithFooterText("Powered by Draup"),
//	)
//
// Per-conversion options are passed via Input:
//
//	pdf, err := svc.Convert(ctx, mdpdf.Input{
//	    Markdown: content,
//	    Title:    "Quarterly Report",
//	})
//
// # Fonts
//
// The renderer embeds Barlow (body), Barlow Bold, and Fira Code (monospace)
// from the configured font directory. A missing or unreadable font file
// falls back to the built-in Helvetica and Courier faces for its role, and
// the conversion proceeds.
package mdpdf
