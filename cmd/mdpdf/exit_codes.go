package main

import (
	"errors"

	"github.com/alnah/go-mdpdf/internal/config"
	"github.com/alnah/go-mdpdf/internal/web"
)

// Exit codes for the mdpdf server.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // Clean shutdown
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Invalid flags
	ExitConfig  = 3 // Config file missing, unparseable, or invalid
	ExitListen  = 4 // Listener failed to start
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Listener errors (exit 4)
	if errors.Is(err, web.ErrListen) {
		return ExitListen
	}

	// Config errors (exit 3)
	if errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrInvalidAddr) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, config.ErrOutOfRange) {
		return ExitConfig
	}

	return ExitGeneral
}
