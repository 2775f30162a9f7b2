package web

import (
	"context"
	"errors"
	"io"
	"log"
	"net/http"
	"strconv"
	"strings"

	mdpdf "github.com/alnah/go-mdpdf"
	"github.com/alnah/go-mdpdf/internal/assets"
	"github.com/alnah/go-mdpdf/internal/hints"
)

// User-facing messages. Kept short; the page shows them verbatim.
const (
	promptEmptyInput = "Paste some markdown first."
	msgTooLarge      = "The markdown exceeds the size limit."
	msgTimeout       = "The conversion took too long and was aborted."
	msgBusy          = "The server is busy; try again shortly."
	msgFailed        = "The conversion failed."
)

type indexData struct {
	Title         string
	MaxInputBytes int
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	tmpl, err := assets.IndexTemplate()
	if err != nil {
		log.Printf("loading index template: %v", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	data := indexData{Title: brandTitle, MaxInputBytes: s.cfg.Server.MaxInputBytes}
	if err := tmpl.Execute(w, data); err != nil {
		log.Printf("rendering index template: %v", err)
	}
}

func (s *Server) handleStylesheet(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/css; charset=utf-8")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	_, _ = io.WriteString(w, s.svc.StylesheetCSS())
}

func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = io.WriteString(w, "ok\n")
}

// handlePreview renders the fragment shown in the live pane. Previews
// skip the render gate and the cache: they are cheap, frequent, and
// already rate limited per IP.
func (s *Server) handlePreview(w http.ResponseWriter, r *http.Request) {
	input, ok := s.readInput(w, r)
	if !ok {
		return
	}
	fragment, err := s.svc.Preview(r.Context(), input)
	if err != nil {
		s.writeConversionError(w, r, "preview", err)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = io.WriteString(w, fragment)
}

func (s *Server) handleConvert(w http.ResponseWriter, r *http.Request) {
	input, ok := s.readInput(w, r)
	if !ok {
		return
	}

	key := cacheKey("pdf", input.Title, input.Markdown)
	if pdf, hit := s.cache.bytes(key); hit {
		w.Header().Set("X-Cache", "HIT")
		writePDF(w, pdf)
		return
	}

	release, ok := s.acquireGate(w, r)
	if !ok {
		return
	}
	defer release()

	pdf, err := s.svc.Convert(r.Context(), input)
	if err != nil {
		s.writeConversionError(w, r, "convert", err)
		return
	}

	s.cache.put(key, pdf)
	w.Header().Set("X-Cache", "MISS")
	writePDF(w, pdf)
}

func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	input, ok := s.readInput(w, r)
	if !ok {
		return
	}

	key := cacheKey("html", input.Title, input.Markdown)
	if doc, hit := s.cache.text(key); hit {
		w.Header().Set("X-Cache", "HIT")
		writeHTMLAttachment(w, doc)
		return
	}

	release, ok := s.acquireGate(w, r)
	if !ok {
		return
	}
	defer release()

	doc, err := s.svc.ConvertHTML(r.Context(), input)
	if err != nil {
		s.writeConversionError(w, r, "export", err)
		return
	}

	s.cache.put(key, doc)
	w.Header().Set("X-Cache", "MISS")
	writeHTMLAttachment(w, doc)
}

// acquireGate claims a render slot, waiting at most the configured
// conversion timeout. Saturation answers 503 rather than queueing
// requests indefinitely.
func (s *Server) acquireGate(w http.ResponseWriter, r *http.Request) (func(), bool) {
	ctx, cancel := context.WithTimeout(r.Context(), s.cfg.Timeout())
	defer cancel()

	if err := s.gate.Acquire(ctx); err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			http.Error(w, msgBusy, http.StatusServiceUnavailable)
		}
		return nil, false
	}
	return s.gate.Release, true
}

// readInput parses the form and validates the markdown field against
// the configured size cap. The body reader allows for URL encoding
// inflating each byte up to threefold before the decoded check runs.
func (s *Server) readInput(w http.ResponseWriter, r *http.Request) (mdpdf.Input, bool) {
	maxBytes := s.cfg.Server.MaxInputBytes
	r.Body = http.MaxBytesReader(w, r.Body, 3*int64(maxBytes)+4096)

	if err := r.ParseForm(); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			http.Error(w, msgTooLarge, http.StatusRequestEntityTooLarge)
		} else {
			http.Error(w, "malformed form data", http.StatusBadRequest)
		}
		return mdpdf.Input{}, false
	}

	markdown := r.PostFormValue("markdown")
	if strings.TrimSpace(markdown) == "" {
		http.Error(w, promptEmptyInput, http.StatusBadRequest)
		return mdpdf.Input{}, false
	}
	if len(markdown) > maxBytes {
		http.Error(w, msgTooLarge, http.StatusRequestEntityTooLarge)
		return mdpdf.Input{}, false
	}

	return mdpdf.Input{Markdown: markdown, Title: r.PostFormValue("title")}, true
}

// writeConversionError maps service failures to HTTP responses. A
// canceled request gets no response; the client is gone.
func (s *Server) writeConversionError(w http.ResponseWriter, r *http.Request, op string, err error) {
	switch {
	case errors.Is(err, mdpdf.ErrEmptyMarkdown):
		http.Error(w, promptEmptyInput, http.StatusBadRequest)
	case errors.Is(err, mdpdf.ErrMarkdownTooLarge):
		http.Error(w, msgTooLarge, http.StatusRequestEntityTooLarge)
	case errors.Is(err, context.DeadlineExceeded):
		log.Printf("%s timed out (request %s): %v%s", op, r.Header.Get(requestHeaderID), err, hints.ForTimeout())
		http.Error(w, msgTimeout, http.StatusServiceUnavailable)
	case errors.Is(err, context.Canceled):
	default:
		log.Printf("%s failed (request %s): %v", op, r.Header.Get(requestHeaderID), err)
		http.Error(w, msgFailed, http.StatusInternalServerError)
	}
}

func writePDF(w http.ResponseWriter, pdf []byte) {
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="document.pdf"`)
	w.Header().Set("Content-Length", strconv.Itoa(len(pdf)))
	_, _ = w.Write(pdf)
}

func writeHTMLAttachment(w http.ResponseWriter, doc string) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="document.html"`)
	w.Header().Set("Content-Length", strconv.Itoa(len(doc)))
	_, _ = io.WriteString(w, doc)
}
