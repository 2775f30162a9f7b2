package mdpdf

import (
	"fmt"
	"strings"
	"time"
)

// Input contains conversion parameters.
type Input struct {
	Markdown string // Markdown content (required)
	Title    string // PDF metadata title (optional, overrides the service default)
}

// Validate checks the input against the service limits.
// Whitespace-only markdown counts as empty.
func (in Input) Validate(maxBytes int) error {
	if strings.TrimSpace(in.Markdown) == "" {
		return ErrEmptyMarkdown
	}
	if maxBytes > 0 && len(in.Markdown) > maxBytes {
		return fmt.Errorf("%w: %d bytes (max %d)", ErrMarkdownTooLarge, len(in.Markdown), maxBytes)
	}
	return nil
}

// Option configures a Service.
type Option func(*Service)

// serviceConfig holds internal configuration for Service.
type serviceConfig struct {
	timeout    time.Duration
	footerText string
	fontDir    string
	title      string
	compress   bool
	maxBytes   int
}

// Defaults used when no option overrides them.
const (
	defaultTimeout    = 30 * time.Second
	defaultFooterText = "Powered by Draup"
	defaultMaxBytes   = 2 << 20 // 2 MiB
)

// WithTimeout sets the conversion timeout.
// Panics if d <= 0 (programmer error, similar to time.NewTicker).
func WithTimeout(d time.Duration) Option {
	if d <= 0 {
		panic("mdpdf: WithTimeout duration must be positive")
	}
	return func(s *Service) {
		s.cfg.timeout = d
	}
}

// WithFooterText sets the text printed at the bottom of every page.
// Empty disables the footer.
func WithFooterText(text string) Option {
	return func(s *Service) {
		s.cfg.footerText = text
	}
}

// WithFontDir sets the directory searched for Barlow-Regular.ttf,
// Barlow-Bold.ttf and FiraCode-Regular.ttf. Missing files fall back
// to built-in faces.
func WithFontDir(dir string) Option {
	return func(s *Service) {
		s.cfg.fontDir = dir
	}
}

// WithDocumentTitle sets the default PDF metadata title, used when
// Input.Title is empty.
func WithDocumentTitle(title string) Option {
	return func(s *Service) {
		s.cfg.title = title
	}
}

// WithCompression toggles PDF stream compression. With compression off
// the content streams are plain text, which tests rely on.
func WithCompression(enabled bool) Option {
	return func(s *Service) {
		s.cfg.compress = enabled
	}
}

// WithMaxBytes sets the maximum accepted markdown size in bytes.
// Zero or negative disables the limit.
func WithMaxBytes(n int) Option {
	return func(s *Service) {
		s.cfg.maxBytes = n
	}
}
