package mdpdf

import "errors"

// Sentinel errors returned by the conversion pipeline. Wrap with
// fmt.Errorf("%w: ...") to add context; callers match with errors.Is.
var (
	// Input validation errors.
	ErrEmptyMarkdown    = errors.New("markdown content is empty")
	ErrMarkdownTooLarge = errors.New("markdown content exceeds maximum size")

	// Font loading errors. These are reported, never fatal: the renderer
	// substitutes built-in faces and continues.
	ErrFontUnavailable = errors.New("font file unavailable")
	ErrFontInvalid     = errors.New("font file is not a TrueType font")

	// Rendering errors.
	ErrPDFGeneration = errors.New("failed to generate PDF")
	ErrHTMLExport    = errors.New("failed to export HTML")

	// Style registry errors.
	ErrUnknownStyle = errors.New("unknown style name")
)
