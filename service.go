package mdpdf

import (
	"context"
	"fmt"
	"sync"
)

// Pipeline stages. Each is an interface so tests can substitute fakes.
type markdownPreprocessor interface {
	Preprocess(markdown string) string
}

type blockParser interface {
	Parse(markdown string) []Block
}

type pdfRenderer interface {
	Render(blocks []Block, title string) ([]byte, error)
}

type previewRenderer interface {
	RenderHTML(blocks []Block) string
}

type documentExporter interface {
	Export(ctx context.Context, markdown string) (string, error)
}

// Service orchestrates the markdown-to-PDF pipeline.
type Service struct {
	cfg          serviceConfig
	preprocessor markdownPreprocessor
	parser       blockParser
	renderer     pdfRenderer
	preview      previewRenderer
	exporter     documentExporter

	styles *StyleRegistry
	fonts  *FontResolver

	cssOnce sync.Once
	css     string
}

// New creates a Service with default configuration.
// Use options to customize behavior (e.g., WithTimeout).
func New(opts ...Option) *Service {
	s := &Service{
		cfg: serviceConfig{
			timeout:    defaultTimeout,
			footerText: defaultFooterText,
			maxBytes:   defaultMaxBytes,
			compress:   true,
		},
		preprocessor: markdownNormalizer{},
		parser:       markdownParser{},
		preview:      htmlPreview{},
		exporter:     newHTMLExporter(),
		styles:       NewStyleRegistry(),
	}

	for _, opt := range opts {
		opt(s)
	}

	// Create the renderer if not injected (e.g., by tests). It binds
	// the font dir and footer text fixed by the applied options.
	if s.fonts == nil {
		s.fonts = NewFontResolver(s.cfg.fontDir)
	}
	if s.renderer == nil {
		s.renderer = newDocRenderer(s.styles, s.fonts, s.cfg.footerText, s.cfg.compress)
	}

	return s
}

// Convert runs the full pipeline and returns the PDF as bytes.
// The context is used for cancellation and timeout.
func (s *Service) Convert(ctx context.Context, input Input) ([]byte, error) {
	if err := input.Validate(s.cfg.maxBytes); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, s.cfg.timeout)
	defer cancel()

	md := s.preprocessor.Preprocess(input.Markdown)
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	blocks := s.parser.Parse(md)
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	title := input.Title
	if title == "" {
		title = s.cfg.title
	}

	// gofpdf takes no context, so rendering runs aside and oversized
	// documents still honor cancellation.
	type result struct {
		pdf []byte
		err error
	}
	resCh := make(chan result, 1)
	go func() {
		pdf, err := s.renderer.Render(blocks, title)
		resCh <- result{pdf: pdf, err: err}
	}()

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-resCh:
		if res.err != nil {
			return nil, fmt.Errorf("rendering PDF: %w", res.err)
		}
		return res.pdf, nil
	}
}

// Preview renders the markdown as an HTML fragment laid out like the
// PDF output. The fragment pairs with the stylesheet from
// StylesheetCSS.
func (s *Service) Preview(ctx context.Context, input Input) (string, error) {
	if err := input.Validate(s.cfg.maxBytes); err != nil {
		return "", err
	}

	blocks := s.parser.Parse(s.preprocessor.Preprocess(input.Markdown))
	if ctx.Err() != nil {
		return "", ctx.Err()
	}
	return s.preview.RenderHTML(blocks), nil
}

// ConvertHTML converts the markdown to a standalone HTML document with
// the stylesheet inlined.
func (s *Service) ConvertHTML(ctx context.Context, input Input) (string, error) {
	if err := input.Validate(s.cfg.maxBytes); err != nil {
		return "", err
	}

	ctx, cancel := context.WithTimeout(ctx, s.cfg.timeout)
	defer cancel()

	body, err := s.exporter.Export(ctx, s.preprocessor.Preprocess(input.Markdown))
	if err != nil {
		return "", fmt.Errorf("exporting HTML: %w", err)
	}

	title := input.Title
	if title == "" {
		title = s.cfg.title
	}
	return documentHTML(title, s.StylesheetCSS(), body), nil
}

// StylesheetCSS returns the CSS matching the preview markup. The
// stylesheet is deterministic, built once and cached.
func (s *Service) StylesheetCSS() string {
	s.cssOnce.Do(func() {
		s.css = buildStylesheet(s.styles)
	})
	return s.css
}

// Fonts reports the font families the renderer resolved, after
// fallback substitution for files that could not be loaded.
func (s *Service) Fonts() FontMapping {
	return s.fonts.Resolve()
}
