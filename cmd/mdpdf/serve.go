package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	mdpdf "github.com/alnah/go-mdpdf"
	"github.com/alnah/go-mdpdf/internal/config"
	"github.com/alnah/go-mdpdf/internal/fileutil"
	"github.com/alnah/go-mdpdf/internal/hints"
	"github.com/alnah/go-mdpdf/internal/web"
)

// runServe loads configuration, builds the conversion service, and
// serves HTTP until ctx is canceled.
func runServe(ctx context.Context, flags *serveFlags, env *Environment) error {
	cfg, err := loadServeConfig(flags)
	if err != nil {
		return err
	}

	svc := buildService(cfg)
	warnFontFallback(cfg, svc, env)

	srv := web.NewServer(cfg, svc)
	if !flags.quiet {
		fmt.Fprintf(env.Stdout, "mdpdf %s listening on %s (%d workers)\n",
			Version, cfg.Server.Addr, srv.Workers())
	}

	if err := srv.Run(ctx); err != nil {
		if strings.Contains(err.Error(), "address already in use") {
			return fmt.Errorf("%w%s", err, hints.ForAddrInUse(cfg.Server.Addr))
		}
		return err
	}

	if !flags.quiet {
		fmt.Fprintln(env.Stdout, "mdpdf stopped")
	}
	return nil
}

// loadServeConfig resolves the effective configuration. Flags win over
// environment variables, which win over the config file.
func loadServeConfig(flags *serveFlags) (*config.Config, error) {
	name := flags.config
	if name == "" {
		name = os.Getenv("MDPDF_CONFIG")
	}

	cfg, err := config.LoadConfig(name)
	if err != nil {
		if errors.Is(err, config.ErrConfigNotFound) {
			return nil, fmt.Errorf("%w%s", err, hints.ForConfigNotFound(config.SearchPaths()))
		}
		return nil, err
	}

	if flags.addr != "" {
		cfg.Server.Addr = flags.addr
	}
	if flags.fontsDir != "" {
		cfg.Fonts.Dir = flags.fontsDir
	}

	// Flag values bypass LoadConfig, so the merged result is validated
	// again.
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// buildService maps the configuration onto service options.
func buildService(cfg *config.Config) *mdpdf.Service {
	opts := []mdpdf.Option{
		mdpdf.WithTimeout(cfg.Timeout()),
		mdpdf.WithMaxBytes(cfg.Server.MaxInputBytes),
		mdpdf.WithFooterText(cfg.Document.Footer),
		mdpdf.WithFontDir(cfg.Fonts.Dir),
	}
	if cfg.Document.Title != "" {
		opts = append(opts, mdpdf.WithDocumentTitle(cfg.Document.Title))
	}
	return mdpdf.New(opts...)
}

// warnFontFallback reports once at startup when the bundled fonts are
// absent and the renderer substitutes built-in faces. The server still
// starts; PDFs just lose the custom typography.
func warnFontFallback(cfg *config.Config, svc *mdpdf.Service, env *Environment) {
	if !svc.Fonts().UsesFallback() {
		return
	}
	if !fileutil.DirExists(cfg.Fonts.Dir) {
		fmt.Fprintf(env.Stderr, "warning: fonts directory %s not found, using built-in fonts%s\n",
			cfg.Fonts.Dir, hints.ForFontsMissing(cfg.Fonts.Dir))
		return
	}
	fmt.Fprintf(env.Stderr, "warning: font files missing, using built-in fonts%s\n",
		hints.ForFontsMissing(cfg.Fonts.Dir))
}
