package main

import (
	"errors"
	"fmt"
	"testing"

	"github.com/alnah/go-mdpdf/internal/config"
	"github.com/alnah/go-mdpdf/internal/web"
)

// ---------------------------------------------------------------------------
// TestExitCodeFor - Error to exit code mapping
// ---------------------------------------------------------------------------

func TestExitCodeFor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want int
	}{
		// Success
		{"nil error", nil, ExitSuccess},

		// Listener errors (exit 4)
		{"listen failure", web.ErrListen, ExitListen},
		{"wrapped listen failure", fmt.Errorf("%w: bind: address already in use", web.ErrListen), ExitListen},

		// Config errors (exit 3)
		{"config not found", config.ErrConfigNotFound, ExitConfig},
		{"config parse", config.ErrConfigParse, ExitConfig},
		{"invalid addr", config.ErrInvalidAddr, ExitConfig},
		{"field too long", config.ErrFieldTooLong, ExitConfig},
		{"out of range", config.ErrOutOfRange, ExitConfig},
		{"wrapped config parse", fmt.Errorf("loading config: %w", config.ErrConfigParse), ExitConfig},
		{"wrapped invalid addr", fmt.Errorf("loading config: %w", config.ErrInvalidAddr), ExitConfig},

		// General errors (exit 1)
		{"unknown error", errors.New("something unexpected"), ExitGeneral},
		{"wrapped unknown", fmt.Errorf("context: %w", errors.New("unknown")), ExitGeneral},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := exitCodeFor(tt.err)
			if got != tt.want {
				t.Errorf("exitCodeFor(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestExitCodeConstants - Unix convention compliance
// ---------------------------------------------------------------------------

func TestExitCodeConstants(t *testing.T) {
	t.Parallel()

	if ExitSuccess != 0 {
		t.Errorf("ExitSuccess = %d, want 0", ExitSuccess)
	}
	if ExitGeneral != 1 {
		t.Errorf("ExitGeneral = %d, want 1", ExitGeneral)
	}
	if ExitUsage != 2 {
		t.Errorf("ExitUsage = %d, want 2", ExitUsage)
	}

	if ExitConfig >= 126 {
		t.Errorf("ExitConfig = %d, should be < 126", ExitConfig)
	}
	if ExitListen >= 126 {
		t.Errorf("ExitListen = %d, should be < 126", ExitListen)
	}
}
