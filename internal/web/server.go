package web

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/httprate"

	mdpdf "github.com/alnah/go-mdpdf"
	"github.com/alnah/go-mdpdf/internal/assets"
	"github.com/alnah/go-mdpdf/internal/config"
)

// Converter is the slice of the conversion service the handlers use.
// *mdpdf.Service satisfies it; tests substitute fakes.
type Converter interface {
	Convert(ctx context.Context, input mdpdf.Input) ([]byte, error)
	ConvertHTML(ctx context.Context, input mdpdf.Input) (string, error)
	Preview(ctx context.Context, input mdpdf.Input) (string, error)
	StylesheetCSS() string
}

// Compile-time interface implementation check.
var _ Converter = (*mdpdf.Service)(nil)

// ErrListen indicates the HTTP listener could not start or crashed.
var ErrListen = errors.New("failed to listen and serve")

// Per-IP rate limits. Downloads render a full document; previews are
// cheap but fire on every pause in typing.
const (
	downloadRateLimit = 60  // per minute, shared by /convert and /export
	previewRateLimit  = 600 // per minute
)

// brandTitle names the UI page, independent of the configured PDF title.
const brandTitle = "go-mdpdf"

// shutdownGrace bounds how long Run waits for in-flight requests.
const shutdownGrace = 10 * time.Second

// Server wires the conversion service into an HTTP interface.
type Server struct {
	cfg   *config.Config
	svc   Converter
	cache *conversionCache
	gate  *renderGate
	mux   chi.Router
}

// NewServer builds the router and middleware around svc.
// A nil cfg uses the defaults.
func NewServer(cfg *config.Config, svc Converter) *Server {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	s := &Server{
		cfg:   cfg,
		svc:   svc,
		cache: newConversionCache(cfg.CacheTTL()),
		gate:  newRenderGate(cfg.Server.Workers),
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	r := chi.NewRouter()

	r.Use(requestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(securityHeaders)

	r.Get("/", s.handleIndex)
	r.Get("/styles.css", s.handleStylesheet)
	r.Get("/healthz", s.handleHealthz)
	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.FS(assets.StaticFS()))))

	r.Group(func(r chi.Router) {
		r.Use(httprate.LimitByIP(previewRateLimit, time.Minute))
		r.Post("/preview", s.handlePreview)
	})

	r.Group(func(r chi.Router) {
		r.Use(httprate.LimitByIP(downloadRateLimit, time.Minute))
		r.Post("/convert", s.handleConvert)
		r.Post("/export", s.handleExport)
	})

	s.mux = r
}

// Handler returns the root handler, primarily for tests.
func (s *Server) Handler() http.Handler {
	return s.mux
}

// Workers returns the concurrent render capacity.
func (s *Server) Workers() int {
	return s.gate.Size()
}

// Run serves on the configured address until ctx is canceled, then
// shuts down gracefully. A listener failure returns ErrListen.
func (s *Server) Run(ctx context.Context) error {
	httpServer := &http.Server{
		Addr:              s.cfg.Server.Addr,
		Handler:           s.mux,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      s.cfg.Timeout() + 30*time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("%w: %v", ErrListen, err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutting down: %w", err)
	}
	return nil
}
